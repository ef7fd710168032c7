package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sentinelas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrNoPaymentJournal  = errors.New("no hay diario de pagos de tipo bank configurado")
)

// LimitExceededError la orden supera el límite global de monto configurado.
// Lleva el límite vigente para formatear el mensaje al usuario.
type LimitExceededError struct {
	Limit decimal.Decimal
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("el monto total de la orden supera el límite permitido de %s; ajuste la orden o el límite", e.Limit.StringFixed(2))
}

// WorkflowError envuelve una falla dentro del workflow automático posterior a
// la confirmación. La confirmación NO se revierte: la orden queda confirmada
// con los efectos parciales ya cometidos (entregas/factura) para remediación manual.
type WorkflowError struct {
	OrderID string
	Cause   error
}

func (e *WorkflowError) Error() string {
	return fmt.Sprintf("workflow automático de la orden %s falló: %v", e.OrderID, e.Cause)
}

func (e *WorkflowError) Unwrap() error { return e.Cause }
