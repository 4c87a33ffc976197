package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Interiores-api/internal/application/dto"
	"github.com/jhoicas/Interiores-api/internal/application/validation"
	"github.com/jhoicas/Interiores-api/internal/domain"
)

// ok envuelve data en {success: true, data}.
func ok(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(dto.SuccessResponse{Success: true, Data: data})
}

func fail(c *fiber.Ctx, status int, code, message string, fields ...dto.FieldError) error {
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: message, Errors: fields})
}

// handleError traduce errores de dominio a HTTP. Lo no clasificado se registra y responde 500 genérico.
func handleError(c *fiber.Ctx, err error) error {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "datos inválidos", verr.Fields...)
	case errors.Is(err, domain.ErrValidation):
		return fail(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		return fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "sesión inválida o ausente")
	case errors.Is(err, domain.ErrForbidden):
		return fail(c, fiber.StatusForbidden, "FORBIDDEN", "no tienes permiso para esta operación")
	case errors.Is(err, domain.ErrNotFound):
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, domain.ErrConflict):
		return fail(c, fiber.StatusBadRequest, conflictCode(err), conflictMessage(err))
	case errors.Is(err, domain.ErrPaymentFailed):
		logFailure(c, err, "pasarela de pagos")
		return fail(c, fiber.StatusBadGateway, "PAYMENT_FAILED", domain.ErrPaymentFailed.Error())
	}
	logFailure(c, err, "error no controlado")
	return fail(c, fiber.StatusInternalServerError, "INTERNAL", "error interno del servidor")
}

func logFailure(c *fiber.Ctx, err error, msg string) {
	log.Error().Err(err).
		Str("request_id", requestID(c)).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg(msg)
}

func conflictCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return "EMAIL_EXISTS"
	case errors.Is(err, domain.ErrCircularReference):
		return "CIRCULAR_REFERENCE"
	case errors.Is(err, domain.ErrHasChildren):
		return "HAS_CHILDREN"
	case errors.Is(err, domain.ErrSlotFull):
		return "SLOT_FULL"
	case errors.Is(err, domain.ErrAlreadyReviewed):
		return "ALREADY_REVIEWED"
	case errors.Is(err, domain.ErrInvalidTransition):
		return "INVALID_TRANSITION"
	case errors.Is(err, domain.ErrOutOfStock):
		return "OUT_OF_STOCK"
	case errors.Is(err, domain.ErrDuplicate):
		return "DUPLICATE"
	}
	return "CONFLICT"
}

// conflictMessage quita el prefijo de la clase: "conflicto ...: el email ya está registrado" → "el email ya está registrado".
func conflictMessage(err error) string {
	msg := err.Error()
	if i := strings.LastIndex(msg, domain.ErrConflict.Error()+": "); i >= 0 {
		return msg[i+len(domain.ErrConflict.Error())+2:]
	}
	return msg
}

func requestID(c *fiber.Ctx) string {
	if v, ok := c.Locals("requestid").(string); ok {
		return v
	}
	return c.GetRespHeader(fiber.HeaderXRequestID)
}

// parseBody decodifica el JSON y aplica las etiquetas validate.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return validation.FieldErr("body", "JSON inválido")
	}
	return validation.Struct(out)
}

// parseQuery decodifica los parámetros de query y los valida.
func parseQuery(c *fiber.Ctx, out interface{}) error {
	if err := c.QueryParser(out); err != nil {
		return validation.FieldErr("query", "parámetros inválidos")
	}
	return validation.Struct(out)
}

// paramID devuelve el parámetro de ruta name si es un UUID.
func paramID(c *fiber.Ctx, name string) (string, error) {
	return uuidOrErr(name, c.Params(name))
}

func uuidOrErr(field, v string) (string, error) {
	if _, err := uuid.Parse(v); err != nil {
		return "", validation.FieldErr(field, "debe ser un UUID válido")
	}
	return v, nil
}
