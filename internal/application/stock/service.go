package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/ventas-flow/internal/application/sales"
	"github.com/jhoicas/ventas-flow/internal/domain"
	"github.com/jhoicas/ventas-flow/internal/domain/entity"
	"github.com/jhoicas/ventas-flow/internal/domain/repository"
)

var _ sales.StockService = (*PickingService)(nil)

// PickingService ciclo de vida del documento de entrega:
// draft -> confirmed -> cantidades hechas -> done (terminal).
// La validación descuenta las existencias de la bodega origen con bloqueo de
// fila, en una sola transacción con el cambio de estado.
type PickingService struct {
	deliveryRepo repository.DeliveryRepository
	txRunner     TxRunner
}

// NewPickingService construye el servicio.
func NewPickingService(deliveryRepo repository.DeliveryRepository, txRunner TxRunner) *PickingService {
	return &PickingService{deliveryRepo: deliveryRepo, txRunner: txRunner}
}

// CreateDelivery persiste la entrega en draft con un movimiento por línea del lote.
func (s *PickingService) CreateDelivery(ctx context.Context, spec sales.DeliverySpec) (*entity.Delivery, error) {
	now := time.Now()
	delivery := &entity.Delivery{
		ID:             uuid.New().String(),
		OrderID:        spec.OrderID,
		Origin:         spec.Origin,
		PartnerID:      spec.PartnerID,
		WarehouseID:    spec.WarehouseID,
		LocationID:     spec.LocationID,
		LocationDestID: spec.LocationDestID,
		PickingTypeID:  spec.PickingTypeID,
		Status:         entity.DeliveryStatusDraft,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for _, move := range spec.Moves {
		delivery.Moves = append(delivery.Moves, entity.StockMove{
			ID:             uuid.New().String(),
			DeliveryID:     delivery.ID,
			ProductID:      move.ProductID,
			Name:           move.Name,
			UomID:          move.UomID,
			Quantity:       move.Quantity,
			LocationID:     spec.LocationID,
			LocationDestID: spec.LocationDestID,
		})
	}
	if err := s.deliveryRepo.Create(delivery); err != nil {
		return nil, err
	}
	return delivery, nil
}

// Confirm transición draft -> confirmed (reserva externa del stock).
func (s *PickingService) Confirm(ctx context.Context, delivery *entity.Delivery) error {
	if delivery.Status != entity.DeliveryStatusDraft {
		return fmt.Errorf("entrega %s en estado %s: %w", delivery.ID, delivery.Status, domain.ErrConflict)
	}
	if err := s.deliveryRepo.UpdateStatus(delivery.ID, entity.DeliveryStatusConfirmed); err != nil {
		return err
	}
	delivery.Status = entity.DeliveryStatusConfirmed
	return nil
}

// SetDoneQuantities marca la cantidad hecha de cada movimiento igual a la ordenada.
func (s *PickingService) SetDoneQuantities(ctx context.Context, delivery *entity.Delivery) error {
	if err := s.deliveryRepo.SetMovesDone(delivery.ID); err != nil {
		return err
	}
	for i := range delivery.Moves {
		delivery.Moves[i].DoneQuantity = delivery.Moves[i].Quantity
	}
	return nil
}

// Validate transición confirmed -> done. Descuenta las existencias de la
// bodega origen por cada movimiento (SELECT FOR UPDATE) y marca el documento
// terminal en la misma transacción.
func (s *PickingService) Validate(ctx context.Context, delivery *entity.Delivery) error {
	if delivery.Status != entity.DeliveryStatusConfirmed {
		return fmt.Errorf("entrega %s en estado %s: %w", delivery.ID, delivery.Status, domain.ErrConflict)
	}
	err := s.txRunner.RunStock(ctx, func(
		deliveryRepo repository.DeliveryRepository,
		stockRepo repository.StockRepository,
	) error {
		now := time.Now()
		for _, move := range delivery.Moves {
			stock, err := stockRepo.GetForUpdate(move.ProductID, delivery.WarehouseID)
			if err != nil {
				return err
			}
			if stock.Quantity.LessThan(move.DoneQuantity) {
				return fmt.Errorf("producto %s en bodega %s: %w", move.ProductID, delivery.WarehouseID, domain.ErrInsufficientStock)
			}
			stock.Quantity = stock.Quantity.Sub(move.DoneQuantity)
			stock.UpdatedAt = now
			if err := stockRepo.Upsert(stock); err != nil {
				return err
			}
		}
		return deliveryRepo.UpdateStatus(delivery.ID, entity.DeliveryStatusDone)
	})
	if err != nil {
		return err
	}
	delivery.Status = entity.DeliveryStatusDone
	return nil
}
