package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/erp-api/internal/application/dto"
)

// permissionChecker contrato mínimo que necesita el middleware para autorizar.
// Lo implementa *usecase.PermissionService.
type permissionChecker interface {
	HasPermission(ctx context.Context, roleName, permission string) (bool, error)
}

// RequirePermission verifica que el rol del token tenga el permiso del catálogo.
// Debe usarse DESPUÉS de AuthMiddleware.
//
//   - 401 si el token no trae rol.
//   - 403 si el rol no tiene el permiso.
//   - 503 ante fallo al consultar la base.
func RequirePermission(permission string, checker permissionChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "MISSING_ROLE",
				Message: "el token no incluye rol",
			})
		}

		ok, err := checker.HasPermission(c.Context(), role, permission)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "PERMISSION_CHECK_FAILED",
				Message: "no se pudo verificar el permiso, intente más tarde",
			})
		}
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "se requiere el permiso '" + permission + "'",
			})
		}
		return c.Next()
	}
}
