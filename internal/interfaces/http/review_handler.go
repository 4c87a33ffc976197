package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Interiores-api/internal/application/dto"
	"github.com/jhoicas/Interiores-api/internal/application/usecase"
)

// ReviewHandler reseñas anidadas en /api/products/{id}/reviews.
type ReviewHandler struct {
	uc *usecase.ReviewUseCase
}

// NewReviewHandler construye el handler.
func NewReviewHandler(uc *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{uc: uc}
}

func reviewIDs(c *fiber.Ctx) (productID, reviewID string, err error) {
	if productID, err = paramID(c, "id"); err != nil {
		return "", "", err
	}
	if reviewID, err = paramID(c, "reviewId"); err != nil {
		return "", "", err
	}
	return productID, reviewID, nil
}

// List godoc
// @Summary      Reseñas de un producto con su promedio
// @Tags         reviews
// @Produce      json
// @Param        id     path   string  true   "ID del producto"
// @Param        page   query  int     false  "Página"
// @Param        limit  query  int     false  "Límite"
// @Success      200  {object}  dto.ReviewListResponse
// @Router       /api/products/{id}/reviews [get]
func (h *ReviewHandler) List(c *fiber.Ctx) error {
	productID, err := paramID(c, "id")
	if err != nil {
		return handleError(c, err)
	}
	var q dto.PageQuery
	if err := parseQuery(c, &q); err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.List(c.UserContext(), productID, q)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Create godoc
// @Summary      Publicar reseña (una por usuario y producto)
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del producto"
// @Param        body  body  dto.CreateReviewRequest  true  "rating 1..5, comment"
// @Success      201   {object}  dto.ReviewResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/reviews [post]
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	productID, err := paramID(c, "id")
	if err != nil {
		return handleError(c, err)
	}
	var in dto.CreateReviewRequest
	if err := parseBody(c, &in); err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), principal(c), productID, in)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusCreated, out)
}

// GetByID godoc
// @Summary      Obtener reseña
// @Tags         reviews
// @Produce      json
// @Param        id        path  string  true  "ID del producto"
// @Param        reviewId  path  string  true  "ID de la reseña"
// @Success      200  {object}  dto.ReviewResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/reviews/{reviewId} [get]
func (h *ReviewHandler) GetByID(c *fiber.Ctx) error {
	productID, reviewID, err := reviewIDs(c)
	if err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), productID, reviewID)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Update godoc
// @Summary      Editar reseña propia
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        id        path  string                   true  "ID del producto"
// @Param        reviewId  path  string                   true  "ID de la reseña"
// @Param        body      body  dto.UpdateReviewRequest  true  "Campos"
// @Success      200  {object}  dto.ReviewResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/reviews/{reviewId} [patch]
func (h *ReviewHandler) Update(c *fiber.Ctx) error {
	productID, reviewID, err := reviewIDs(c)
	if err != nil {
		return handleError(c, err)
	}
	var in dto.UpdateReviewRequest
	if err := parseBody(c, &in); err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), principal(c), productID, reviewID, in)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Delete godoc
// @Summary      Eliminar reseña (dueño o ADMIN)
// @Tags         reviews
// @Param        id        path  string  true  "ID del producto"
// @Param        reviewId  path  string  true  "ID de la reseña"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/reviews/{reviewId} [delete]
func (h *ReviewHandler) Delete(c *fiber.Ctx) error {
	productID, reviewID, err := reviewIDs(c)
	if err != nil {
		return handleError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), principal(c), productID, reviewID); err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, dto.MessageResponse{Message: "reseña eliminada"})
}
