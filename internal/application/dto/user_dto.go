package dto

import "time"

// RegisterRequest alta pública de clientes. El rol siempre es CUSTOMER.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Name     string `json:"name" validate:"required,min=2,max=100"`
}

// LoginRequest credenciales.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token firmado (también viaja en la cookie de sesión) y usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// CreateUserRequest alta de usuarios por un ADMIN (password en texto, se hashea en use case).
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Role     string `json:"role" validate:"required,oneof=ADMIN DESIGNER CUSTOMER"`
	Image    string `json:"image" validate:"omitempty,url"`
}

// UpdateUserRequest campos opcionales; role solo lo puede cambiar un ADMIN.
type UpdateUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=2,max=100"`
	Image    *string `json:"image" validate:"omitempty,url"`
	Password *string `json:"password" validate:"omitempty,min=8,max=72"`
	Role     *string `json:"role" validate:"omitempty,oneof=ADMIN DESIGNER CUSTOMER"`
}

// UserListQuery filtros de GET /api/users.
type UserListQuery struct {
	PageQuery
	Role   string `query:"role" validate:"omitempty,oneof=ADMIN DESIGNER CUSTOMER"`
	Search string `query:"search" validate:"max=100"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Image     string    `json:"image,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateAddressRequest dirección de envío.
type CreateAddressRequest struct {
	Line1      string `json:"line1" validate:"required,min=3,max=200"`
	Line2      string `json:"line2" validate:"max=200"`
	City       string `json:"city" validate:"required,max=100"`
	State      string `json:"state" validate:"max=100"`
	PostalCode string `json:"postalCode" validate:"required,max=20"`
	Country    string `json:"country" validate:"required,min=2,max=56"`
	Phone      string `json:"phone" validate:"max=30"`
	IsDefault  bool   `json:"isDefault"`
}

// AddressResponse salida de una dirección.
type AddressResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Line1      string    `json:"line1"`
	Line2      string    `json:"line2,omitempty"`
	City       string    `json:"city"`
	State      string    `json:"state,omitempty"`
	PostalCode string    `json:"postalCode"`
	Country    string    `json:"country"`
	Phone      string    `json:"phone,omitempty"`
	IsDefault  bool      `json:"isDefault"`
	CreatedAt  time.Time `json:"createdAt"`
}
