package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Interiores-api/internal/application/dto"
	"github.com/jhoicas/Interiores-api/internal/application/usecase"
)

// UserHandler administración de usuarios y direcciones propias.
type UserHandler struct {
	users     *usecase.UserUseCase
	addresses *usecase.AddressUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(users *usecase.UserUseCase, addresses *usecase.AddressUseCase) *UserHandler {
	return &UserHandler{users: users, addresses: addresses}
}

// List godoc
// @Summary      Listar usuarios
// @Tags         users
// @Produce      json
// @Param        role    query  string  false  "ADMIN | DESIGNER | CUSTOMER"
// @Param        search  query  string  false  "Nombre o email"
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	var q dto.UserListQuery
	if err := parseQuery(c, &q); err != nil {
		return handleError(c, err)
	}
	out, err := h.users.List(c.UserContext(), q)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Create godoc
// @Summary      Crear usuario con rol
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "Usuario"
// @Success      201   {object}  dto.UserResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := parseBody(c, &in); err != nil {
		return handleError(c, err)
	}
	out, err := h.users.Create(c.UserContext(), in)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusCreated, out)
}

// GetByID godoc
// @Summary      Obtener usuario (propio o ADMIN)
// @Tags         users
// @Produce      json
// @Param        id  path  string  true  "ID"
// @Success      200  {object}  dto.UserResponse
// @Router       /api/users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return handleError(c, err)
	}
	out, err := h.users.GetByID(c.UserContext(), principal(c), id)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Update godoc
// @Summary      Actualizar usuario (el rol solo lo cambia un ADMIN)
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID"
// @Param        body  body  dto.UpdateUserRequest  true  "Campos"
// @Success      200   {object}  dto.UserResponse
// @Router       /api/users/{id} [patch]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return handleError(c, err)
	}
	var in dto.UpdateUserRequest
	if err := parseBody(c, &in); err != nil {
		return handleError(c, err)
	}
	out, err := h.users.Update(c.UserContext(), principal(c), id, in)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Delete godoc
// @Summary      Eliminar usuario
// @Tags         users
// @Param        id  path  string  true  "ID"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return handleError(c, err)
	}
	if err := h.users.Delete(c.UserContext(), principal(c), id); err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, dto.MessageResponse{Message: "usuario eliminado"})
}

// ListAddresses direcciones del usuario autenticado.
// @Router       /api/addresses [get]
func (h *UserHandler) ListAddresses(c *fiber.Ctx) error {
	out, err := h.addresses.List(c.UserContext(), principal(c))
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// CreateAddress alta de dirección; la primera queda como predeterminada.
// @Router       /api/addresses [post]
func (h *UserHandler) CreateAddress(c *fiber.Ctx) error {
	var in dto.CreateAddressRequest
	if err := parseBody(c, &in); err != nil {
		return handleError(c, err)
	}
	out, err := h.addresses.Create(c.UserContext(), principal(c), in)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusCreated, out)
}

// DeleteAddress
// @Router       /api/addresses/{id} [delete]
func (h *UserHandler) DeleteAddress(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return handleError(c, err)
	}
	if err := h.addresses.Delete(c.UserContext(), principal(c), id); err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, dto.MessageResponse{Message: "dirección eliminada"})
}
