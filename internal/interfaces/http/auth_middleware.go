package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Interiores-api/internal/application/auth"
	"github.com/jhoicas/Interiores-api/internal/domain/entity"
)

// LocalPrincipal clave de c.Locals donde queda la identidad autenticada.
const LocalPrincipal = "principal"

// TokenParser valida el token de sesión (lo implementa auth.AuthUseCase).
type TokenParser interface {
	ParseToken(token string) (auth.Principal, error)
}

// sessionToken lee la cookie de sesión y, si no existe, el header Authorization: Bearer.
func sessionToken(c *fiber.Ctx, cookieName string) string {
	if tok := strings.TrimSpace(c.Cookies(cookieName)); tok != "" {
		return tok
	}
	parts := strings.SplitN(c.Get(fiber.HeaderAuthorization), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// AuthMiddleware exige una sesión válida y guarda el Principal en c.Locals.
func AuthMiddleware(parser TokenParser, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tok := sessionToken(c, cookieName)
		if tok == "" {
			return fail(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "inicia sesión para continuar")
		}
		p, err := parser.ParseToken(tok)
		if err != nil {
			return fail(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "sesión inválida o expirada")
		}
		c.Locals(LocalPrincipal, p)
		return c.Next()
	}
}

// OptionalAuth carga el Principal si hay una sesión válida; nunca rechaza.
func OptionalAuth(parser TokenParser, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if tok := sessionToken(c, cookieName); tok != "" {
			if p, err := parser.ParseToken(tok); err == nil {
				c.Locals(LocalPrincipal, p)
			}
		}
		return c.Next()
	}
}

// RequireRole permite el paso solo a los roles indicados. Debe ir después de AuthMiddleware.
func RequireRole(roles ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, ok := GetPrincipal(c)
		if !ok {
			return fail(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "inicia sesión para continuar")
		}
		if !p.HasRole(roles...) {
			return fail(c, fiber.StatusForbidden, "FORBIDDEN", "no tienes permiso para esta operación")
		}
		return c.Next()
	}
}

// GetPrincipal devuelve la identidad autenticada de la petición.
func GetPrincipal(c *fiber.Ctx) (auth.Principal, bool) {
	p, ok := c.Locals(LocalPrincipal).(auth.Principal)
	return p, ok
}

// principal versión para handlers detrás de AuthMiddleware.
func principal(c *fiber.Ctx) auth.Principal {
	p, _ := GetPrincipal(c)
	return p
}

// optionalPrincipal nil para visitantes anónimos.
func optionalPrincipal(c *fiber.Ctx) *auth.Principal {
	if p, ok := GetPrincipal(c); ok {
		return &p
	}
	return nil
}
