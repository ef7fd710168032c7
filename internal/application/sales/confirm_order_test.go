package sales_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-flow/internal/application/sales"
	"github.com/jhoicas/ventas-flow/internal/domain"
	"github.com/jhoicas/ventas-flow/internal/domain/entity"
	"github.com/jhoicas/ventas-flow/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Entorno del gatekeeper: guard de límite + gate de rol + confirmación base +
// workflow automático, sobre los mismos fakes del orquestador.
// ──────────────────────────────────────────────────────────────────────────────

const (
	actorGerente  = "usr-gerente"  // rol sale_admin
	actorVendedor = "usr-vendedor" // rol vendedor
)

type confirmEnv struct {
	*workflowEnv
	params *fakeConfigStore
	roles  *fakeRoleDirectory
	uc     *sales.ConfirmOrderUseCase
}

func newConfirmEnv(t *testing.T) *confirmEnv {
	t.Helper()
	wf := newWorkflowEnv(t, nil)
	params := newFakeConfigStore()
	roles := newFakeRoleDirectory(map[string]string{
		actorGerente:  entity.RoleSaleAdmin,
		actorVendedor: entity.RoleVendedor,
	})
	uc := sales.NewConfirmOrderUseCase(
		wf.orderRepo, roles,
		sales.NewLimitGuard(params),
		wf.orderSvc, wf.workflow,
		logger.Nop(),
	)
	return &confirmEnv{workflowEnv: wf, params: params, roles: roles, uc: uc}
}

// draftOrder persiste una orden draft lista para confirmar.
func (env *confirmEnv) draftOrder(t *testing.T, lines ...entity.OrderLine) *entity.Order {
	t.Helper()
	order := buildOrder(lines...)
	require.NoError(t, env.orderRepo.Create(order))
	return order
}

func (env *confirmEnv) storedStatus(t *testing.T, id string) string {
	t.Helper()
	order, err := env.orderRepo.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, order)
	return order.Status
}

// ──────────────────────────────────────────────────────────────────────────────
// Guard de límite
// ──────────────────────────────────────────────────────────────────────────────

// Total 1500 contra límite 1000: rechazo tipado con el límite vigente y la
// orden intacta en draft.
func TestConfirm_LimiteExcedido_RechazaAntesDeTodo(t *testing.T) {
	env := newConfirmEnv(t)
	require.NoError(t, env.params.SetParam(sales.OrderLimitParamKey, "1000"))
	order := env.draftOrder(t, testLine("prod-a", "EA", 15, 100)) // total 1500

	_, err := env.uc.Confirm(context.Background(), actorGerente, order.ID)

	var limitErr *domain.LimitExceededError
	require.ErrorAs(t, err, &limitErr, "el rechazo por límite debe ser tipado")
	assert.True(t, limitErr.Limit.Equal(price(1000)), "el error debe llevar el límite vigente")
	assert.Equal(t, entity.OrderStatusDraft, env.storedStatus(t, order.ID), "la orden debe seguir draft")
	assert.Empty(t, env.stock.created, "no debe haber ningún efecto del workflow")
}

// El guard corre antes que el gate de rol: con ambos motivos de rechazo
// presentes gana el límite y el directorio de roles ni se consulta.
func TestConfirm_GuardCorreAntesQueElGate(t *testing.T) {
	env := newConfirmEnv(t)
	require.NoError(t, env.params.SetParam(sales.OrderLimitParamKey, "1000"))
	order := env.draftOrder(t, testLine("prod-a", "EA", 15, 100))

	_, err := env.uc.Confirm(context.Background(), actorVendedor, order.ID)

	var limitErr *domain.LimitExceededError
	require.ErrorAs(t, err, &limitErr)
	assert.Empty(t, env.roles.checks, "con el límite excedido no se consulta el rol")
}

// Límite 0 (default) desactiva el chequeo sin importar el total.
func TestConfirm_LimiteCeroEsSinLimite(t *testing.T) {
	env := newConfirmEnv(t)
	order := env.draftOrder(t, testLine("prod-a", "EA", 1000, 1000)) // total 1.000.000

	result, err := env.uc.Confirm(context.Background(), actorGerente, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusInvoiced, result.Order.Status)
}

// Total exactamente igual al límite pasa: el rechazo es solo por estrictamente mayor.
func TestConfirm_TotalIgualAlLimitePasa(t *testing.T) {
	env := newConfirmEnv(t)
	require.NoError(t, env.params.SetParam(sales.OrderLimitParamKey, "1500"))
	order := env.draftOrder(t, testLine("prod-a", "EA", 15, 100)) // total 1500

	_, err := env.uc.Confirm(context.Background(), actorGerente, order.ID)
	require.NoError(t, err)
}

// Un valor ilegible en el parámetro equivale a sin límite.
func TestConfirm_LimiteIlegibleEquivaleASinLimite(t *testing.T) {
	env := newConfirmEnv(t)
	require.NoError(t, env.params.SetParam(sales.OrderLimitParamKey, "no-es-numero"))
	order := env.draftOrder(t, testLine("prod-a", "EA", 15, 100))

	_, err := env.uc.Confirm(context.Background(), actorGerente, order.ID)
	require.NoError(t, err)
}

// El límite se relee en cada confirmación: cambiarlo entre llamadas cambia el
// resultado sin reconstruir nada.
func TestConfirm_LimiteSeLeeEnCadaConfirmacion(t *testing.T) {
	env := newConfirmEnv(t)
	require.NoError(t, env.params.SetParam(sales.OrderLimitParamKey, "1000"))
	order := env.draftOrder(t, testLine("prod-a", "EA", 15, 100))

	_, err := env.uc.Confirm(context.Background(), actorGerente, order.ID)
	require.Error(t, err, "con límite 1000 debe rechazar")

	require.NoError(t, env.params.SetParam(sales.OrderLimitParamKey, "2000"))
	_, err = env.uc.Confirm(context.Background(), actorGerente, order.ID)
	require.NoError(t, err, "con el límite subido la misma orden pasa")
}

// ──────────────────────────────────────────────────────────────────────────────
// Gate de rol
// ──────────────────────────────────────────────────────────────────────────────

// Un vendedor no confirma: ErrForbidden y la orden sigue draft.
func TestConfirm_VendedorRechazado(t *testing.T) {
	env := newConfirmEnv(t)
	order := env.draftOrder(t, testLine("prod-a", "EA", 5, 100))

	_, err := env.uc.Confirm(context.Background(), actorVendedor, order.ID)

	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, entity.OrderStatusDraft, env.storedStatus(t, order.ID))
	assert.Empty(t, env.stock.created)
}

// Un actor desconocido tampoco: la ausencia de membresía es rechazo, no error de DB.
func TestConfirm_ActorDesconocidoRechazado(t *testing.T) {
	env := newConfirmEnv(t)
	order := env.draftOrder(t, testLine("prod-a", "EA", 5, 100))

	_, err := env.uc.Confirm(context.Background(), "usr-fantasma", order.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// El rol se consulta en el directorio en cada confirmación: revocarlo entre
// llamadas surte efecto inmediato aunque el token del actor siga vivo.
func TestConfirm_RevocacionDeRolSurteEfectoInmediato(t *testing.T) {
	env := newConfirmEnv(t)
	order1 := buildOrder(testLine("prod-a", "EA", 1, 100))
	order1.ID = "order-1"
	require.NoError(t, env.orderRepo.Create(order1))
	order2 := buildOrder(testLine("prod-a", "EA", 1, 100))
	order2.ID = "order-2"
	require.NoError(t, env.orderRepo.Create(order2))

	_, err := env.uc.Confirm(context.Background(), actorGerente, order1.ID)
	require.NoError(t, err)

	env.roles.roles[actorGerente] = entity.RoleVendedor // degradado
	_, err = env.uc.Confirm(context.Background(), actorGerente, order2.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden, "el rol revocado debe rechazar la siguiente confirmación")
}

// ──────────────────────────────────────────────────────────────────────────────
// Confirmación y workflow
// ──────────────────────────────────────────────────────────────────────────────

// Camino feliz completo del gatekeeper: confirma, corre el workflow y devuelve
// el resumen de documentos.
func TestConfirm_GerenteConfirmaConWorkflow(t *testing.T) {
	env := newConfirmEnv(t)
	order := env.draftOrder(t,
		testLine("prod-a", "EA", 5, 100),
		testLine("prod-b", "EA", 2, 50),
	)

	result, err := env.uc.Confirm(context.Background(), actorGerente, order.ID)
	require.NoError(t, err)
	require.NotNil(t, result.Workflow)
	assert.Len(t, result.Workflow.DeliveryIDs, 2)
	assert.NotEmpty(t, result.Workflow.InvoiceID)
	assert.NotEmpty(t, result.Workflow.PaymentID)
	assert.Equal(t, entity.OrderStatusInvoiced, result.Order.Status)
}

// Sin AutoWorkflow la confirmación termina en confirmed y no toca stock ni
// contabilidad.
func TestConfirm_SinAutoWorkflowSoloConfirma(t *testing.T) {
	env := newConfirmEnv(t)
	order := buildOrder(testLine("prod-a", "EA", 5, 100))
	order.AutoWorkflow = false
	require.NoError(t, env.orderRepo.Create(order))

	result, err := env.uc.Confirm(context.Background(), actorGerente, order.ID)
	require.NoError(t, err)
	assert.Nil(t, result.Workflow)
	assert.Equal(t, entity.OrderStatusConfirmed, result.Order.Status)
	assert.Equal(t, entity.InvoiceStatusToInvoice, result.Order.InvoiceStatus)
	assert.Empty(t, env.stock.created)
}

// Reconfirmar una orden ya confirmada es conflicto, no doble confirmación.
func TestConfirm_OrdenNoDraftEsConflicto(t *testing.T) {
	env := newConfirmEnv(t)
	order := env.draftOrder(t, testLine("prod-a", "EA", 5, 100))

	_, err := env.uc.Confirm(context.Background(), actorGerente, order.ID)
	require.NoError(t, err)

	_, err = env.uc.Confirm(context.Background(), actorGerente, order.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestConfirm_OrdenInexistente(t *testing.T) {
	env := newConfirmEnv(t)
	_, err := env.uc.Confirm(context.Background(), actorGerente, "order-fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Falla del workflow: la confirmación no se revierte
// ──────────────────────────────────────────────────────────────────────────────

// Si el workflow falla tras confirmar, el error es *domain.WorkflowError, la
// causa es inspeccionable y la orden queda confirmada en la DB.
func TestConfirm_FallaDelWorkflowDejaOrdenConfirmada(t *testing.T) {
	env := newConfirmEnv(t)
	env.accounting.journal = nil // sin diario bank: el pago fallará
	order := env.draftOrder(t, testLine("prod-a", "EA", 5, 100))

	result, err := env.uc.Confirm(context.Background(), actorGerente, order.ID)

	var wfErr *domain.WorkflowError
	require.ErrorAs(t, err, &wfErr)
	assert.Equal(t, order.ID, wfErr.OrderID)
	assert.ErrorIs(t, err, domain.ErrNoPaymentJournal, "la causa raíz debe ser inspeccionable")

	// La confirmación (y aquí también la facturación) quedaron cometidas.
	stored, _ := env.orderRepo.GetByID(order.ID)
	require.NotNil(t, stored)
	assert.NotEqual(t, entity.OrderStatusDraft, stored.Status, "la confirmación no se revierte")

	// El resultado parcial acompaña al error para remediación.
	require.NotNil(t, result)
	require.NotNil(t, result.Workflow)
	assert.Len(t, result.Workflow.DeliveryIDs, 1)
	assert.NotEmpty(t, result.Workflow.InvoiceID)
	assert.Empty(t, result.Workflow.PaymentID)
}

// La causa de una falla de validación de entrega viaja envuelta en WorkflowError.
func TestConfirm_CausaDeFallaEnvuelta(t *testing.T) {
	env := newConfirmEnv(t)
	bodegaLlena := errors.New("stock insuficiente en bodega")
	env.stock.failValidateOn = 1
	env.stock.failErr = bodegaLlena
	order := env.draftOrder(t, testLine("prod-a", "EA", 5, 100))

	_, err := env.uc.Confirm(context.Background(), actorGerente, order.ID)

	var wfErr *domain.WorkflowError
	require.ErrorAs(t, err, &wfErr)
	assert.ErrorIs(t, err, bodegaLlena)
}
