package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Interiores-api/internal/application/analytics"
	"github.com/jhoicas/Interiores-api/internal/application/dto"
	"github.com/jhoicas/Interiores-api/internal/application/usecase"
	"github.com/jhoicas/Interiores-api/internal/application/validation"
)

// CalculatorHandler presupuesto estimado de un espacio.
type CalculatorHandler struct {
	uc *usecase.CalculatorUseCase
}

// NewCalculatorHandler construye el handler.
func NewCalculatorHandler(uc *usecase.CalculatorUseCase) *CalculatorHandler {
	return &CalculatorHandler{uc: uc}
}

// Estimate godoc
// @Summary      Estimar presupuesto
// @Tags         calculator
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EstimateRequest  true  "Dimensiones, tipo de espacio, materiales y muebles"
// @Success      200   {object}  dto.EstimateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/calculator/estimate [post]
func (h *CalculatorHandler) Estimate(c *fiber.Ctx) error {
	var in dto.EstimateRequest
	if err := parseBody(c, &in); err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.Estimate(in)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Rates tabla de tarifas vigente.
// @Router       /api/calculator/rates [get]
func (h *CalculatorHandler) Rates(c *fiber.Ctx) error {
	return ok(c, fiber.StatusOK, h.uc.Rates())
}

// UploadHandler subida de imágenes al almacenamiento de medios.
type UploadHandler struct {
	uc *usecase.UploadUseCase
}

// NewUploadHandler construye el handler.
func NewUploadHandler(uc *usecase.UploadUseCase) *UploadHandler {
	return &UploadHandler{uc: uc}
}

// Upload godoc
// @Summary      Subir imagen
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Imagen"
// @Success      201   {object}  dto.UploadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/upload [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return handleError(c, validation.FieldErr("file", "es obligatorio"))
	}
	f, err := fh.Open()
	if err != nil {
		return handleError(c, err)
	}
	defer f.Close()

	out, err := h.uc.Upload(c.UserContext(), f, fh.Size, fh.Header.Get(fiber.HeaderContentType))
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusCreated, out)
}

// DashboardHandler métricas del panel de administración.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetStats godoc
// @Summary      Resumen del panel de administración
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsResponse
// @Router       /api/admin/dashboard [get]
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	out, err := h.uc.GetStats(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}
