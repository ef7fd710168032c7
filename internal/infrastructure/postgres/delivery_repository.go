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

var _ repository.DeliveryRepository = (*DeliveryRepo)(nil)

// DeliveryRepo implementación de DeliveryRepository (usable con pool o tx).
type DeliveryRepo struct {
	q Querier
}

// NewDeliveryRepository construye el adaptador.
func NewDeliveryRepository(q Querier) *DeliveryRepo {
	return &DeliveryRepo{q: q}
}

// Create persiste la cabecera y los movimientos de la entrega.
func (r *DeliveryRepo) Create(delivery *entity.Delivery) error {
	if delivery.ID == "" {
		delivery.ID = uuid.New().String()
	}
	query := `
		INSERT INTO deliveries (id, order_id, origin, partner_id, warehouse_id, location_id, location_dest_id, picking_type_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		delivery.ID, delivery.OrderID, delivery.Origin, delivery.PartnerID,
		delivery.WarehouseID, delivery.LocationID, delivery.LocationDestID,
		delivery.PickingTypeID, delivery.Status, delivery.CreatedAt, delivery.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert delivery: %w", err)
	}
	moveQuery := `
		INSERT INTO stock_moves (id, delivery_id, product_id, name, uom_id, quantity, done_quantity, location_id, location_dest_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	for i := range delivery.Moves {
		m := &delivery.Moves[i]
		if m.ID == "" {
			m.ID = uuid.New().String()
		}
		_, err := r.q.Exec(context.Background(), moveQuery,
			m.ID, delivery.ID, m.ProductID, m.Name, m.UomID,
			m.Quantity, m.DoneQuantity, m.LocationID, m.LocationDestID,
		)
		if err != nil {
			return fmt.Errorf("insert stock move: %w", err)
		}
	}
	return nil
}

// GetByID obtiene la entrega con sus movimientos.
func (r *DeliveryRepo) GetByID(id string) (*entity.Delivery, error) {
	query := `
		SELECT id, order_id, origin, partner_id, warehouse_id, location_id, location_dest_id, picking_type_id, status, created_at, updated_at
		FROM deliveries WHERE id = $1`
	var d entity.Delivery
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.OrderID, &d.Origin, &d.PartnerID, &d.WarehouseID,
		&d.LocationID, &d.LocationDestID, &d.PickingTypeID, &d.Status,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get delivery: %w", err)
	}
	moves, err := r.movesByDelivery(id)
	if err != nil {
		return nil, err
	}
	d.Moves = moves
	return &d, nil
}

// ListByOrder devuelve las entregas de una orden en orden de creación.
func (r *DeliveryRepo) ListByOrder(orderID string) ([]*entity.Delivery, error) {
	query := `
		SELECT id, order_id, origin, partner_id, warehouse_id, location_id, location_dest_id, picking_type_id, status, created_at, updated_at
		FROM deliveries WHERE order_id = $1 ORDER BY created_at, id`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	defer rows.Close()
	var list []*entity.Delivery
	for rows.Next() {
		var d entity.Delivery
		if err := rows.Scan(
			&d.ID, &d.OrderID, &d.Origin, &d.PartnerID, &d.WarehouseID,
			&d.LocationID, &d.LocationDestID, &d.PickingTypeID, &d.Status,
			&d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan delivery: %w", err)
		}
		list = append(list, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, d := range list {
		moves, err := r.movesByDelivery(d.ID)
		if err != nil {
			return nil, err
		}
		d.Moves = moves
	}
	return list, nil
}

func (r *DeliveryRepo) movesByDelivery(deliveryID string) ([]entity.StockMove, error) {
	query := `
		SELECT id, delivery_id, product_id, name, uom_id, quantity, done_quantity, location_id, location_dest_id
		FROM stock_moves WHERE delivery_id = $1 ORDER BY seq`
	rows, err := r.q.Query(context.Background(), query, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("list stock moves: %w", err)
	}
	defer rows.Close()
	var moves []entity.StockMove
	for rows.Next() {
		var m entity.StockMove
		if err := rows.Scan(&m.ID, &m.DeliveryID, &m.ProductID, &m.Name, &m.UomID, &m.Quantity, &m.DoneQuantity, &m.LocationID, &m.LocationDestID); err != nil {
			return nil, fmt.Errorf("scan stock move: %w", err)
		}
		moves = append(moves, m)
	}
	return moves, rows.Err()
}

// UpdateStatus actualiza el estado del documento.
func (r *DeliveryRepo) UpdateStatus(id, status string) error {
	query := `UPDATE deliveries SET status = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, status)
	if err != nil {
		return fmt.Errorf("update delivery status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update delivery status: entrega %s no existe", id)
	}
	return nil
}

// SetMovesDone marca done_quantity = quantity en todos los movimientos.
func (r *DeliveryRepo) SetMovesDone(deliveryID string) error {
	query := `UPDATE stock_moves SET done_quantity = quantity WHERE delivery_id = $1`
	_, err := r.q.Exec(context.Background(), query, deliveryID)
	if err != nil {
		return fmt.Errorf("set moves done: %w", err)
	}
	return nil
}
