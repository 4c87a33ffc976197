package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Interiores-api/internal/application/dto"
	"github.com/jhoicas/Interiores-api/internal/application/validation"
	"github.com/jhoicas/Interiores-api/internal/domain"
)

func TestHandleError_Mapeo(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{validation.FieldErr("price", "debe ser positivo"), fiber.StatusBadRequest, "VALIDATION"},
		{fmt.Errorf("%w: fecha", domain.ErrPastDate), fiber.StatusBadRequest, "VALIDATION"},
		{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
		{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
		{fmt.Errorf("pedido: %w", domain.ErrNotFound), fiber.StatusNotFound, "NOT_FOUND"},
		{domain.ErrEmailAlreadyExists, fiber.StatusBadRequest, "EMAIL_EXISTS"},
		{domain.ErrCircularReference, fiber.StatusBadRequest, "CIRCULAR_REFERENCE"},
		{domain.ErrHasChildren, fiber.StatusBadRequest, "HAS_CHILDREN"},
		{domain.ErrSlotFull, fiber.StatusBadRequest, "SLOT_FULL"},
		{domain.ErrAlreadyReviewed, fiber.StatusBadRequest, "ALREADY_REVIEWED"},
		{domain.ErrInvalidTransition, fiber.StatusBadRequest, "INVALID_TRANSITION"},
		{domain.ErrOutOfStock, fiber.StatusBadRequest, "OUT_OF_STOCK"},
		{domain.ErrDuplicate, fiber.StatusBadRequest, "DUPLICATE"},
		{domain.ErrConflict, fiber.StatusBadRequest, "CONFLICT"},
		{fmt.Errorf("stripe: %w", domain.ErrPaymentFailed), fiber.StatusBadGateway, "PAYMENT_FAILED"},
		{errors.New("dial tcp: connection refused"), fiber.StatusInternalServerError, "INTERNAL"},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error { return handleError(c, tc.err) })
			resp, err := app.Test(httptest.NewRequest("GET", "/", nil), -1)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tc.status, resp.StatusCode)

			var body dto.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.False(t, body.Success)
			assert.Equal(t, tc.code, body.Code)
			if tc.status == fiber.StatusInternalServerError {
				assert.NotContains(t, body.Message, "connection refused", "no se filtran detalles internos")
			}
		})
	}
}

func TestConflictMessage_SinPrefijo(t *testing.T) {
	assert.NotContains(t, conflictMessage(domain.ErrSlotFull), domain.ErrConflict.Error()+":")
	assert.NotEmpty(t, conflictMessage(domain.ErrSlotFull))
}
