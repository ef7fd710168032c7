package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-flow/internal/application/dto"
	"github.com/jhoicas/ventas-flow/internal/domain"
	"github.com/jhoicas/ventas-flow/internal/domain/entity"
	"github.com/jhoicas/ventas-flow/internal/domain/repository"
)

// OrderEntryUseCase alta y consulta de órdenes draft.
type OrderEntryUseCase struct {
	orderRepo     repository.OrderRepository
	partnerRepo   repository.PartnerRepository
	warehouseRepo repository.WarehouseRepository
}

// NewOrderEntryUseCase construye el caso de uso.
func NewOrderEntryUseCase(
	orderRepo repository.OrderRepository,
	partnerRepo repository.PartnerRepository,
	warehouseRepo repository.WarehouseRepository,
) *OrderEntryUseCase {
	return &OrderEntryUseCase{orderRepo: orderRepo, partnerRepo: partnerRepo, warehouseRepo: warehouseRepo}
}

// Create valida cliente, bodega y líneas, calcula el total y persiste la orden
// en draft con sus líneas.
func (uc *OrderEntryUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.PartnerID == "" || in.WarehouseID == "" {
		return nil, domain.ErrInvalidInput
	}
	partner, err := uc.partnerRepo.GetByID(in.PartnerID)
	if err != nil || partner == nil {
		return nil, domain.ErrNotFound
	}
	warehouse, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil || warehouse == nil {
		return nil, domain.ErrNotFound
	}
	for _, line := range in.Lines {
		if line.ProductID == "" || line.UomID == "" {
			return nil, domain.ErrInvalidInput
		}
		if !line.Quantity.GreaterThan(decimal.Zero) || line.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	order := &entity.Order{
		ID:            uuid.New().String(),
		Name:          fmt.Sprintf("SO-%d", now.Unix()),
		PartnerID:     in.PartnerID,
		WarehouseID:   in.WarehouseID,
		Status:        entity.OrderStatusDraft,
		InvoiceStatus: entity.InvoiceStatusNothing,
		AutoWorkflow:  in.AutoWorkflow,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	total := decimal.Zero
	for _, line := range in.Lines {
		name := line.Name
		if name == "" {
			name = line.ProductID
		}
		ol := entity.OrderLine{
			ID:        uuid.New().String(),
			OrderID:   order.ID,
			ProductID: line.ProductID,
			Name:      name,
			UomID:     line.UomID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		}
		order.Lines = append(order.Lines, ol)
		total = total.Add(ol.Subtotal())
	}
	order.AmountTotal = total

	if err := uc.orderRepo.Create(order); err != nil {
		return nil, err
	}
	for i := range order.Lines {
		if err := uc.orderRepo.CreateLine(&order.Lines[i]); err != nil {
			return nil, err
		}
	}
	return ToOrderResponse(order), nil
}

// Get devuelve la orden con sus líneas (incluye manager_reference, legible por todos).
func (uc *OrderEntryUseCase) Get(ctx context.Context, id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return ToOrderResponse(order), nil
}

// ToOrderResponse mapea la entidad al DTO de respuesta.
func ToOrderResponse(order *entity.Order) *dto.OrderResponse {
	resp := &dto.OrderResponse{
		ID:               order.ID,
		Name:             order.Name,
		PartnerID:        order.PartnerID,
		WarehouseID:      order.WarehouseID,
		Status:           order.Status,
		InvoiceStatus:    order.InvoiceStatus,
		AmountTotal:      order.AmountTotal,
		ManagerReference: order.ManagerReference,
		AutoWorkflow:     order.AutoWorkflow,
		Lines:            make([]dto.OrderLineResponse, 0, len(order.Lines)),
	}
	for _, line := range order.Lines {
		resp.Lines = append(resp.Lines, dto.OrderLineResponse{
			ID:        line.ID,
			ProductID: line.ProductID,
			Name:      line.Name,
			UomID:     line.UomID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}
	return resp
}
