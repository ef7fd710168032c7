package sales

import (
	"context"

	"github.com/jhoicas/ventas-flow/internal/domain"
	"github.com/jhoicas/ventas-flow/internal/domain/entity"
	"github.com/jhoicas/ventas-flow/internal/domain/repository"
)

// ManagerReferenceUseCase escritura del campo privilegiado ManagerReference.
// La lectura es universal (viaja en la respuesta de la orden); la escritura se
// rechaza aquí, en el punto de mutación, no solo en la vista.
type ManagerReferenceUseCase struct {
	orderRepo repository.OrderRepository
	roles     RoleDirectory
}

// NewManagerReferenceUseCase construye el caso de uso.
func NewManagerReferenceUseCase(orderRepo repository.OrderRepository, roles RoleDirectory) *ManagerReferenceUseCase {
	return &ManagerReferenceUseCase{orderRepo: orderRepo, roles: roles}
}

// Set escribe la anotación. Solo actores con rol sale_admin; el resto recibe
// domain.ErrForbidden sin que se toque la orden.
func (uc *ManagerReferenceUseCase) Set(ctx context.Context, actorID, orderID, reference string) error {
	ok, err := uc.roles.HasRole(actorID, entity.RoleSaleAdmin)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrForbidden
	}
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	return uc.orderRepo.UpdateManagerReference(orderID, reference)
}
