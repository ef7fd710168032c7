package sales

import (
	"context"

	"github.com/jhoicas/ventas-flow/internal/domain"
	"github.com/jhoicas/ventas-flow/internal/domain/entity"
	"github.com/jhoicas/ventas-flow/internal/domain/repository"
	"github.com/jhoicas/ventas-flow/pkg/logger"
)

// ConfirmResult orden confirmada y, si corrió el workflow automático, su resumen.
type ConfirmResult struct {
	Order    *entity.Order
	Workflow *WorkflowResult
}

// ConfirmOrderUseCase punto de entrada de la confirmación de una orden.
// Secuencia explícita y con corte en la primera falla:
// guard de límite -> gate de rol -> confirmación base -> workflow automático.
type ConfirmOrderUseCase struct {
	orderRepo repository.OrderRepository
	roles     RoleDirectory
	guard     *LimitGuard
	orders    OrderService
	workflow  *AutoWorkflow
	log       *logger.Logger
}

// NewConfirmOrderUseCase construye el caso de uso.
func NewConfirmOrderUseCase(
	orderRepo repository.OrderRepository,
	roles RoleDirectory,
	guard *LimitGuard,
	orders OrderService,
	workflow *AutoWorkflow,
	log *logger.Logger,
) *ConfirmOrderUseCase {
	return &ConfirmOrderUseCase{
		orderRepo: orderRepo,
		roles:     roles,
		guard:     guard,
		orders:    orders,
		workflow:  workflow,
		log:       log.Component("confirm_order"),
	}
}

// Confirm confirma la orden en nombre del actor.
//
// Las fallas del guard y del gate rechazan ANTES de cualquier efecto (la orden
// sigue draft). Una falla del workflow retorna *domain.WorkflowError con la
// orden ya confirmada en ConfirmResult: la confirmación no se revierte y los
// efectos parciales (ej. una entrega creada sin validar) quedan para
// remediación manual. No hay reintento automático.
func (uc *ConfirmOrderUseCase) Confirm(ctx context.Context, actorID, orderID string) (*ConfirmResult, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}

	// 1) Límite global de monto.
	if err := uc.guard.CheckLimit(order); err != nil {
		return nil, err
	}

	// 2) Solo sale_admin confirma. Consulta por chequeo, nunca cacheada.
	ok, err := uc.roles.HasRole(actorID, entity.RoleSaleAdmin)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrForbidden
	}

	// 3) Confirmación base: draft -> confirmed, deriva el estado de facturación.
	if err := uc.orders.Confirm(ctx, order); err != nil {
		return nil, err
	}
	uc.log.Info().Str("order_id", order.ID).Str("actor_id", actorID).Msg("orden confirmada")

	result := &ConfirmResult{Order: order}
	if !order.AutoWorkflow {
		return result, nil
	}

	// 4) Workflow automático. Su falla no revierte el paso 3.
	wf, err := uc.workflow.Run(ctx, order)
	result.Workflow = wf
	if err != nil {
		uc.log.Error().Err(err).Str("order_id", order.ID).Msg("workflow automático falló; la orden queda confirmada")
		return result, &domain.WorkflowError{OrderID: order.ID, Cause: err}
	}
	return result, nil
}
