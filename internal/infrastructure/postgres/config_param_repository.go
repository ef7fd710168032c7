package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ventas-flow/internal/domain/repository"
)

var _ repository.ConfigParamRepository = (*ConfigParamRepo)(nil)

// ConfigParamRepo almacén clave/valor de parámetros globales en DB.
// Implementa el ConfigStore del núcleo de ventas (sales.ConfigStore).
type ConfigParamRepo struct {
	q Querier
}

// NewConfigParamRepository construye el adaptador.
func NewConfigParamRepository(q Querier) *ConfigParamRepo {
	return &ConfigParamRepo{q: q}
}

// GetParam devuelve el valor de la clave o def si no existe.
func (r *ConfigParamRepo) GetParam(key, def string) (string, error) {
	query := `SELECT value FROM config_parameters WHERE key = $1`
	var value string
	err := r.q.QueryRow(context.Background(), query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return def, nil
		}
		return "", fmt.Errorf("get param %s: %w", key, err)
	}
	return value, nil
}

// SetParam inserta o reemplaza el valor de la clave.
func (r *ConfigParamRepo) SetParam(key, value string) error {
	query := `
		INSERT INTO config_parameters (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, key, value)
	if err != nil {
		return fmt.Errorf("set param %s: %w", key, err)
	}
	return nil
}
