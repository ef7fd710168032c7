package entity

import "time"

// Partner representa un cliente de ventas.
// CustomerLocationID es la ubicación de stock "de cara al cliente": destino
// de las entregas generadas por el workflow automático.
type Partner struct {
	ID                 string
	Name               string
	Email              string
	CustomerLocationID string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
