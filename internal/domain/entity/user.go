package entity

import (
	"strings"
	"time"
)

// Role rol cerrado de un usuario.
type Role string

// Roles válidos para User.
const (
	RoleAdmin    Role = "ADMIN"
	RoleDesigner Role = "DESIGNER"
	RoleCustomer Role = "CUSTOMER"
)

// ParseRole convierte un string en Role. ok=false si no es un rol conocido.
func ParseRole(s string) (Role, bool) {
	switch r := Role(strings.ToUpper(strings.TrimSpace(s))); r {
	case RoleAdmin, RoleDesigner, RoleCustomer:
		return r, true
	}
	return "", false
}

// User representa una cuenta (cliente, diseñador o administrador).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Image        string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
