package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Interiores-api/internal/application/dto"
	"github.com/jhoicas/Interiores-api/internal/application/usecase"
)

// ContentHandler ideas de diseño y portafolio. Lectura pública, escritura ADMIN/DESIGNER.
type ContentHandler struct {
	ideas     *usecase.DesignIdeaUseCase
	portfolio *usecase.PortfolioUseCase
}

// NewContentHandler construye el handler.
func NewContentHandler(ideas *usecase.DesignIdeaUseCase, portfolio *usecase.PortfolioUseCase) *ContentHandler {
	return &ContentHandler{ideas: ideas, portfolio: portfolio}
}

// ListIdeas godoc
// @Summary      Listar ideas de diseño (borradores solo para ADMIN/DESIGNER)
// @Tags         design-ideas
// @Produce      json
// @Param        category  query  string  false  "Categoría"
// @Param        tag       query  string  false  "Etiqueta"
// @Param        search    query  string  false  "Texto"
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/design-ideas [get]
func (h *ContentHandler) ListIdeas(c *fiber.Ctx) error {
	var q dto.ContentListQuery
	if err := parseQuery(c, &q); err != nil {
		return handleError(c, err)
	}
	out, err := h.ideas.List(c.UserContext(), optionalPrincipal(c), q)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// GetIdea
// @Router       /api/design-ideas/{id} [get]
func (h *ContentHandler) GetIdea(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return handleError(c, err)
	}
	out, err := h.ideas.GetByID(c.UserContext(), optionalPrincipal(c), id)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// CreateIdea
// @Router       /api/design-ideas [post]
func (h *ContentHandler) CreateIdea(c *fiber.Ctx) error {
	var in dto.CreateDesignIdeaRequest
	if err := parseBody(c, &in); err != nil {
		return handleError(c, err)
	}
	out, err := h.ideas.Create(c.UserContext(), principal(c), in)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusCreated, out)
}

// UpdateIdea
// @Router       /api/design-ideas/{id} [patch]
func (h *ContentHandler) UpdateIdea(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return handleError(c, err)
	}
	var in dto.UpdateDesignIdeaRequest
	if err := parseBody(c, &in); err != nil {
		return handleError(c, err)
	}
	out, err := h.ideas.Update(c.UserContext(), id, in)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// DeleteIdea
// @Router       /api/design-ideas/{id} [delete]
func (h *ContentHandler) DeleteIdea(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return handleError(c, err)
	}
	if err := h.ideas.Delete(c.UserContext(), id); err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, dto.MessageResponse{Message: "idea eliminada"})
}

// ListPortfolio godoc
// @Summary      Listar proyectos del portafolio
// @Tags         portfolio
// @Produce      json
// @Param        category  query  string  false  "Categoría"
// @Param        tag       query  string  false  "Etiqueta"
// @Param        search    query  string  false  "Texto"
// @Param        featured  query  bool    false  "Solo destacados"
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/portfolio [get]
func (h *ContentHandler) ListPortfolio(c *fiber.Ctx) error {
	var q dto.ContentListQuery
	if err := parseQuery(c, &q); err != nil {
		return handleError(c, err)
	}
	out, err := h.portfolio.List(c.UserContext(), q)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// GetProject
// @Router       /api/portfolio/{id} [get]
func (h *ContentHandler) GetProject(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return handleError(c, err)
	}
	out, err := h.portfolio.GetByID(c.UserContext(), id)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// CreateProject
// @Router       /api/portfolio [post]
func (h *ContentHandler) CreateProject(c *fiber.Ctx) error {
	var in dto.CreatePortfolioRequest
	if err := parseBody(c, &in); err != nil {
		return handleError(c, err)
	}
	out, err := h.portfolio.Create(c.UserContext(), in)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusCreated, out)
}

// UpdateProject
// @Router       /api/portfolio/{id} [patch]
func (h *ContentHandler) UpdateProject(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return handleError(c, err)
	}
	var in dto.UpdatePortfolioRequest
	if err := parseBody(c, &in); err != nil {
		return handleError(c, err)
	}
	out, err := h.portfolio.Update(c.UserContext(), id, in)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// DeleteProject
// @Router       /api/portfolio/{id} [delete]
func (h *ContentHandler) DeleteProject(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return handleError(c, err)
	}
	if err := h.portfolio.Delete(c.UserContext(), id); err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, dto.MessageResponse{Message: "proyecto eliminado"})
}
