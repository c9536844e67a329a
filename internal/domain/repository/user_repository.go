package repository

import "github.com/jcastellanos/sweetshop-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	// AdminExists responde "¿hay alguna cuenta ADMIN?" con una consulta
	// EXISTS indexada, sin cargar usuarios.
	AdminExists() (bool, error)
	Update(user *entity.User) error
	List(limit, offset int) ([]*entity.User, error)
	Delete(id string) error
}
