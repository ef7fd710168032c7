package sales

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-flow/internal/domain"
)

// SettingsUseCase lectura/escritura del límite global de monto de órdenes.
// El valor vive en el almacén de parámetros para poder cambiarlo en runtime;
// la autorización (solo admin) se aplica en la ruta.
type SettingsUseCase struct {
	params ConfigStore
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(params ConfigStore) *SettingsUseCase {
	return &SettingsUseCase{params: params}
}

// GetOrderLimit devuelve el límite vigente; 0 significa sin límite.
func (uc *SettingsUseCase) GetOrderLimit() (decimal.Decimal, error) {
	raw, err := uc.params.GetParam(OrderLimitParamKey, "0")
	if err != nil {
		return decimal.Zero, err
	}
	limit, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, nil
	}
	return limit, nil
}

// SetOrderLimit guarda el límite. 0 desactiva el chequeo; negativos se rechazan.
func (uc *SettingsUseCase) SetOrderLimit(limit decimal.Decimal) error {
	if limit.IsNegative() {
		return domain.ErrInvalidInput
	}
	return uc.params.SetParam(OrderLimitParamKey, limit.String())
}
