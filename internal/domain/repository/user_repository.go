package repository

import "github.com/jhoicas/ventas-flow/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	// HasRole consulta en DB si el usuario activo tiene el rol.
	// No cachea: la membresía puede cambiar dentro de la vida de un token.
	HasRole(userID, role string) (bool, error)
}
