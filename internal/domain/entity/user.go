package entity

import "time"

// Roles válidos para User. El rol sale_admin habilita confirmar órdenes y
// editar el campo ManagerReference; admin administra la configuración global.
const (
	RoleAdmin     = "admin"
	RoleSaleAdmin = "sale_admin"
	RoleVendedor  = "vendedor"
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, sale_admin, vendedor
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
