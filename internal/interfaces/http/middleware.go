package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// RequestLogger escribe una línea estructurada por petición.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Str("request_id", requestID(c)).
			Str("ip", c.IP()).
			Msg("http")
		return err
	}
}

// RateLimiter cuota por clave (IP del cliente).
type RateLimiter interface {
	Allow(ctx context.Context, key string) bool
}

// RateLimit responde 429 cuando la IP agotó su cuota. limiter nil = sin límite.
func RateLimit(limiter RateLimiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if limiter == nil {
			return c.Next()
		}
		if !limiter.Allow(c.UserContext(), c.IP()) {
			return fail(c, fiber.StatusTooManyRequests, "RATE_LIMITED", "demasiados intentos, espera un minuto")
		}
		return c.Next()
	}
}

// ErrorHandler último recurso para errores que escapan a los handlers (rutas inexistentes, panics recuperados).
func ErrorHandler(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		code := "HTTP_ERROR"
		if fe.Code == fiber.StatusNotFound {
			code = "NOT_FOUND"
		}
		return fail(c, fe.Code, code, fe.Message)
	}
	return handleError(c, err)
}
