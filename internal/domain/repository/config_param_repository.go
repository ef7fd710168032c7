package repository

// ConfigParamRepository define el puerto del almacén clave/valor de
// parámetros globales de configuración (ej. sale.order_limit).
type ConfigParamRepository interface {
	// GetParam devuelve el valor de la clave o def si no existe.
	GetParam(key, def string) (string, error)
	SetParam(key, value string) error
}
