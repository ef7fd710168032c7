package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ventas-flow/internal/domain/entity"
	"github.com/jhoicas/ventas-flow/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste la cabecera de la orden.
func (r *OrderRepo) Create(order *entity.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	query := `
		INSERT INTO orders (id, name, partner_id, warehouse_id, status, invoice_status, amount_total, manager_reference, auto_workflow, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.Name, order.PartnerID, order.WarehouseID,
		order.Status, order.InvoiceStatus, order.AmountTotal,
		nullIfEmpty(order.ManagerReference), order.AutoWorkflow,
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("order name already exists: %w", err)
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// CreateLine persiste una línea de la orden.
func (r *OrderRepo) CreateLine(line *entity.OrderLine) error {
	if line.ID == "" {
		line.ID = uuid.New().String()
	}
	query := `
		INSERT INTO order_lines (id, order_id, product_id, name, uom_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.OrderID, line.ProductID, line.Name, line.UomID,
		line.Quantity, line.UnitPrice,
	)
	if err != nil {
		return fmt.Errorf("insert order line: %w", err)
	}
	return nil
}

// GetByID obtiene la orden con sus líneas en orden de inserción.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `
		SELECT id, name, partner_id, warehouse_id, status, invoice_status,
		       amount_total, COALESCE(manager_reference, ''), auto_workflow,
		       created_at, updated_at
		FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.Name, &o.PartnerID, &o.WarehouseID, &o.Status, &o.InvoiceStatus,
		&o.AmountTotal, &o.ManagerReference, &o.AutoWorkflow,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	linesQuery := `
		SELECT id, order_id, product_id, name, uom_id, quantity, unit_price
		FROM order_lines WHERE order_id = $1 ORDER BY seq`
	rows, err := r.q.Query(context.Background(), linesQuery, id)
	if err != nil {
		return nil, fmt.Errorf("list order lines: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var l entity.OrderLine
		if err := rows.Scan(&l.ID, &l.OrderID, &l.ProductID, &l.Name, &l.UomID, &l.Quantity, &l.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan order line: %w", err)
		}
		o.Lines = append(o.Lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateStatus actualiza estado y estado de facturación.
func (r *OrderRepo) UpdateStatus(id, status, invoiceStatus string) error {
	query := `UPDATE orders SET status = $2, invoice_status = $3, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, status, invoiceStatus)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update order status: orden %s no existe", id)
	}
	return nil
}

// UpdateManagerReference escribe el campo privilegiado.
// El gate de rol ya se aplicó en el caso de uso.
func (r *OrderRepo) UpdateManagerReference(id, reference string) error {
	query := `UPDATE orders SET manager_reference = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, nullIfEmpty(reference))
	if err != nil {
		return fmt.Errorf("update manager reference: %w", err)
	}
	return nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
