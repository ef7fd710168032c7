package repository

import "github.com/jhoicas/ventas-flow/internal/domain/entity"

// StockRepository define el puerto para consultar/actualizar existencias por
// bodega+producto. Usado dentro de transacciones para garantizar consistencia.
type StockRepository interface {
	Get(productID, warehouseID string) (*entity.Stock, error)
	Upsert(stock *entity.Stock) error
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetForUpdate(productID, warehouseID string) (*entity.Stock, error)
}
