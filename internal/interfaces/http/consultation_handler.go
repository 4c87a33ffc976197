package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Interiores-api/internal/application/dto"
	"github.com/jhoicas/Interiores-api/internal/application/usecase"
)

// ConsultationHandler reservas de asesoría.
type ConsultationHandler struct {
	uc *usecase.ConsultationUseCase
}

// NewConsultationHandler construye el handler.
func NewConsultationHandler(uc *usecase.ConsultationUseCase) *ConsultationHandler {
	return &ConsultationHandler{uc: uc}
}

// List godoc
// @Summary      Listar asesorías (ADMIN todas, resto las propias)
// @Tags         consultations
// @Produce      json
// @Param        status  query  string  false  "Estado"
// @Param        type    query  string  false  "VIRTUAL | IN_PERSON"
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/consultations [get]
func (h *ConsultationHandler) List(c *fiber.Ctx) error {
	var q dto.ConsultationListQuery
	if err := parseQuery(c, &q); err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.List(c.UserContext(), principal(c), q)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Availability godoc
// @Summary      Cupos libres por franja en un día
// @Tags         consultations
// @Produce      json
// @Param        date  query  string  true  "YYYY-MM-DD"
// @Param        type  query  string  true  "VIRTUAL | IN_PERSON"
// @Success      200  {object}  dto.AvailabilityResponse
// @Router       /api/consultations/availability [get]
func (h *ConsultationHandler) Availability(c *fiber.Ctx) error {
	var q dto.AvailabilityQuery
	if err := parseQuery(c, &q); err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.Availability(c.UserContext(), q)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Create godoc
// @Summary      Reservar asesoría (máximo 3 por fecha, hora y modalidad)
// @Tags         consultations
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateConsultationRequest  true  "Reserva"
// @Success      201   {object}  dto.ConsultationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/consultations [post]
func (h *ConsultationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateConsultationRequest
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
// @Summary      Obtener asesoría
// @Tags         consultations
// @Produce      json
// @Param        id  path  string  true  "ID"
// @Success      200  {object}  dto.ConsultationResponse
// @Router       /api/consultations/{id} [get]
func (h *ConsultationHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Reprogramar, anotar o cambiar estado
// @Tags         consultations
// @Accept       json
// @Produce      json
// @Param        id    path  string                         true  "ID"
// @Param        body  body  dto.UpdateConsultationRequest  true  "Campos"
// @Success      200   {object}  dto.ConsultationResponse
// @Router       /api/consultations/{id} [patch]
func (h *ConsultationHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return handleError(c, err)
	}
	var in dto.UpdateConsultationRequest
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
// @Summary      Eliminar asesoría
// @Tags         consultations
// @Param        id  path  string  true  "ID"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/consultations/{id} [delete]
func (h *ConsultationHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return handleError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), principal(c), id); err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, dto.MessageResponse{Message: "asesoría eliminada"})
}
