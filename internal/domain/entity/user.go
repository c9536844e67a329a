package entity

import "time"

// Roles válidos para User.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User representa una cuenta del sistema. El rol se fija al crearla:
// USER en el registro normal, ADMIN vía bootstrap o por otro admin.
type User struct {
	ID           string
	Firstname    string
	Lastname     string
	Email        string // único en toda la tabla
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // USER | ADMIN
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin indica si la cuenta tiene rol ADMIN.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
