package auth

import "github.com/jhoicas/Interiores-api/internal/domain/entity"

// Principal identidad autenticada de la petición. Los use cases la reciben explícitamente.
type Principal struct {
	UserID string
	Email  string
	Name   string
	Role   entity.Role
}

// IsAdmin indica rol ADMIN.
func (p Principal) IsAdmin() bool { return p.Role == entity.RoleAdmin }

// HasRole indica si el rol está en el conjunto.
func (p Principal) HasRole(roles ...entity.Role) bool {
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}

// CanAccess es verdadero para el dueño del recurso o un ADMIN.
func (p Principal) CanAccess(ownerID string) bool {
	return p.IsAdmin() || (p.UserID != "" && p.UserID == ownerID)
}
