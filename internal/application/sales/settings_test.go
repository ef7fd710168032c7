package sales_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-flow/internal/application/sales"
	"github.com/jhoicas/ventas-flow/internal/domain"
)

func TestSettings_LimiteDefaultEsCero(t *testing.T) {
	uc := sales.NewSettingsUseCase(newFakeConfigStore())
	limit, err := uc.GetOrderLimit()
	require.NoError(t, err)
	assert.True(t, limit.IsZero(), "sin parámetro el límite es 0 (sin límite)")
}

func TestSettings_SetYGet(t *testing.T) {
	params := newFakeConfigStore()
	uc := sales.NewSettingsUseCase(params)

	require.NoError(t, uc.SetOrderLimit(decimal.RequireFromString("2500.50")))

	limit, err := uc.GetOrderLimit()
	require.NoError(t, err)
	assert.True(t, limit.Equal(decimal.RequireFromString("2500.50")))

	// El guard lee la misma clave que escribe el caso de uso.
	raw, _ := params.GetParam(sales.OrderLimitParamKey, "")
	assert.Equal(t, "2500.5", raw)
}

func TestSettings_LimiteNegativoRechazado(t *testing.T) {
	uc := sales.NewSettingsUseCase(newFakeConfigStore())
	err := uc.SetOrderLimit(decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettings_ValorIlegibleSeLeeComoCero(t *testing.T) {
	params := newFakeConfigStore()
	require.NoError(t, params.SetParam(sales.OrderLimitParamKey, "basura"))
	uc := sales.NewSettingsUseCase(params)

	limit, err := uc.GetOrderLimit()
	require.NoError(t, err)
	assert.True(t, limit.IsZero())
}
