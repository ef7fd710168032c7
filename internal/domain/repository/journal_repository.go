package repository

import "github.com/jhoicas/ventas-flow/internal/domain/entity"

// JournalRepository define el puerto de consulta de diarios contables.
type JournalRepository interface {
	// FirstByType devuelve el primer diario del tipo dado (orden de creación),
	// o nil si no existe ninguno.
	FirstByType(journalType string) (*entity.Journal, error)
}
