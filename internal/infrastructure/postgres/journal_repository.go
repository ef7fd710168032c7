package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ventas-flow/internal/domain/entity"
	"github.com/jhoicas/ventas-flow/internal/domain/repository"
)

var _ repository.JournalRepository = (*JournalRepo)(nil)

// JournalRepo implementación de JournalRepository.
type JournalRepo struct {
	q Querier
}

// NewJournalRepository construye el adaptador.
func NewJournalRepository(q Querier) *JournalRepo {
	return &JournalRepo{q: q}
}

// FirstByType devuelve el primer diario del tipo (orden de creación), o nil si no hay.
func (r *JournalRepo) FirstByType(journalType string) (*entity.Journal, error) {
	query := `
		SELECT id, name, type, created_at
		FROM journals WHERE type = $1 ORDER BY created_at, id LIMIT 1`
	var j entity.Journal
	err := r.q.QueryRow(context.Background(), query, journalType).Scan(
		&j.ID, &j.Name, &j.Type, &j.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get journal: %w", err)
	}
	return &j, nil
}
