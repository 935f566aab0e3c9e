package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ims-api/internal/application/dto"
	"github.com/jhoicas/ims-api/internal/domain/authz"
	"github.com/jhoicas/ims-api/pkg/token"
)

// Locals key para el principal en Fiber.
const localPrincipal = "principal"

// PrincipalMiddleware resuelve el principal de cada petición desde el Bearer
// token. Sin header la petición sigue como anónima (el catálogo es público y
// Decide se encarga del resto); un token presente pero inválido corta con 401.
// El servidor re-deriva rol y scoping en cada petición desde el token firmado:
// nada de lo que el cliente asegure sobre sí mismo cuenta para autorizar.
func PrincipalMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			c.Locals(localPrincipal, authz.Anonymous())
			return c.Next()
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			c.Locals(localPrincipal, authz.Anonymous())
			return c.Next()
		}
		userID, role, supplierID, err := token.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(localPrincipal, authz.Principal{
			UserID:     userID,
			Role:       role,
			SupplierID: supplierID,
		})
		return c.Next()
	}
}

// RequireAuth corta con 401 si la petición es anónima. Debe usarse DESPUÉS
// de PrincipalMiddleware.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetPrincipal(c).IsAnonymous() {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "AUTH_REQUIRED", Message: "no autorizado, inicie sesión"})
		}
		return c.Next()
	}
}

// GetPrincipal devuelve el principal del contexto (anónimo si no hay).
func GetPrincipal(c *fiber.Ctx) authz.Principal {
	v := c.Locals(localPrincipal)
	if v == nil {
		return authz.Anonymous()
	}
	p, ok := v.(authz.Principal)
	if !ok {
		return authz.Anonymous()
	}
	return p
}
