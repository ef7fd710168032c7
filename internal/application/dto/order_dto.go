package dto

import "github.com/shopspring/decimal"

// CreateOrderLineRequest línea de una orden nueva.
type CreateOrderLineRequest struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UomID     string          `json:"uom_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateOrderRequest creación de una orden draft.
type CreateOrderRequest struct {
	PartnerID    string                   `json:"partner_id"`
	WarehouseID  string                   `json:"warehouse_id"`
	AutoWorkflow bool                     `json:"auto_workflow"`
	Lines        []CreateOrderLineRequest `json:"lines"`
}

// OrderLineResponse línea en respuestas de orden.
type OrderLineResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UomID     string          `json:"uom_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// OrderResponse orden completa. ManagerReference es legible por todos los
// actores autenticados; solo su escritura está restringida.
type OrderResponse struct {
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	PartnerID        string              `json:"partner_id"`
	WarehouseID      string              `json:"warehouse_id"`
	Status           string              `json:"status"`
	InvoiceStatus    string              `json:"invoice_status"`
	AmountTotal      decimal.Decimal     `json:"amount_total"`
	ManagerReference string              `json:"manager_reference"`
	AutoWorkflow     bool                `json:"auto_workflow"`
	Lines            []OrderLineResponse `json:"lines"`
}

// WorkflowResponse resumen del workflow automático tras la confirmación.
type WorkflowResponse struct {
	DeliveryIDs []string `json:"delivery_ids"`
	InvoiceID   string   `json:"invoice_id,omitempty"`
	PaymentID   string   `json:"payment_id,omitempty"`
}

// ConfirmOrderResponse respuesta de la confirmación.
type ConfirmOrderResponse struct {
	Order    OrderResponse     `json:"order"`
	Workflow *WorkflowResponse `json:"workflow,omitempty"`
}

// ManagerReferenceRequest escritura del campo privilegiado.
type ManagerReferenceRequest struct {
	Reference string `json:"reference"`
}

// OrderLimitResponse límite global de monto de órdenes (0 = sin límite).
type OrderLimitResponse struct {
	Limit decimal.Decimal `json:"limit"`
}

// OrderLimitRequest actualización del límite global.
type OrderLimitRequest struct {
	Limit decimal.Decimal `json:"limit"`
}
