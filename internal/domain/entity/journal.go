package entity

import "time"

// Tipos de diario contable.
const (
	JournalTypeBank = "bank"
	JournalTypeCash = "cash"
)

// Journal diario contable contra el que se registran pagos.
// El workflow automático usa el primer diario de tipo bank.
type Journal struct {
	ID        string
	Name      string
	Type      string // bank, cash
	CreatedAt time.Time
}
