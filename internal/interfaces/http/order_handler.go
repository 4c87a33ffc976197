package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Interiores-api/internal/application/dto"
	"github.com/jhoicas/Interiores-api/internal/application/usecase"
)

// OrderHandler pedidos y checkout. El ADMIN ve todos; el resto solo los propios.
type OrderHandler struct {
	uc       *usecase.OrderUseCase
	checkout *usecase.CheckoutUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderUseCase, checkout *usecase.CheckoutUseCase) *OrderHandler {
	return &OrderHandler{uc: uc, checkout: checkout}
}

// List godoc
// @Summary      Listar pedidos
// @Tags         orders
// @Produce      json
// @Param        status  query  string  false  "Estado (solo ADMIN)"
// @Param        userId  query  string  false  "Usuario (solo ADMIN)"
// @Param        page    query  int     false  "Página"
// @Param        limit   query  int     false  "Límite"
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	var q dto.OrderListQuery
	if err := parseQuery(c, &q); err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.List(c.UserContext(), principal(c), q)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Create godoc
// @Summary      Crear pedido (precios congelados al momento de la compra)
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Dirección y líneas"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := parseBody(c, &in); err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), principal(c), in)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusCreated, out)
}

// GetByID godoc
// @Summary      Obtener pedido
// @Tags         orders
// @Produce      json
// @Param        id  path  string  true  "ID"
// @Success      200  {object}  dto.OrderResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), principal(c), id)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Update godoc
// @Summary      Cambiar estado (dueño: solo cancelar; ADMIN: estado y pago)
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID"
// @Param        body  body  dto.UpdateOrderRequest  true  "Campos"
// @Success      200   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [patch]
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return handleError(c, err)
	}
	var in dto.UpdateOrderRequest
	if err := parseBody(c, &in); err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), principal(c), id, in)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Delete godoc
// @Summary      Eliminar pedido
// @Tags         orders
// @Param        id  path  string  true  "ID"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/orders/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return handleError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, dto.MessageResponse{Message: "pedido eliminado"})
}

// Receipt godoc
// @Summary      Comprobante PDF del pedido
// @Tags         orders
// @Produce      application/pdf
// @Param        id  path  string  true  "ID"
// @Success      200  {file}  binary
// @Router       /api/orders/{id}/receipt [get]
func (h *OrderHandler) Receipt(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return handleError(c, err)
	}
	pdf, err := h.uc.Receipt(c.UserContext(), principal(c), id)
	if err != nil {
		return handleError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="pedido-`+id+`.pdf"`)
	return c.Status(fiber.StatusOK).Send(pdf)
}

// Checkout godoc
// @Summary      Crear pedido y su intención de pago
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Dirección y líneas"
// @Success      201   {object}  dto.CheckoutResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/checkout [post]
func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := parseBody(c, &in); err != nil {
		return handleError(c, err)
	}
	out, err := h.checkout.Checkout(c.UserContext(), principal(c), in)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusCreated, out)
}
