package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bravo-menu-api/internal/application/dto"
	"github.com/jhoicas/bravo-menu-api/internal/domain"
)

// featureChecker contrato mínimo para verificar funciones del plan.
// Lo implementa *usecase.BusinessUseCase.
type featureChecker interface {
	HasFeature(ctx context.Context, businessID, feature string) (bool, error)
}

// RequireFeature verifica que el plan vigente del negocio autenticado incluya la función.
// Debe usarse DESPUÉS de AuthMiddleware.
//
// Comportamiento:
//   - 403 PLAN_REQUIRED → plan FREE o PRO vencido.
//   - 401 SESSION_ENDED → el negocio de la sesión ya no existe.
//   - 503 Service Unavailable → fallo al consultar el negocio.
func RequireFeature(feature string, checker featureChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		businessID := GetBusinessID(c)
		if businessID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "business_id no encontrado en la sesión",
			})
		}

		ok, err := checker.HasFeature(c.UserContext(), businessID, feature)
		if errors.Is(err, domain.ErrNotFound) {
			return writeError(c, domain.ErrSessionEnded)
		}
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "PLAN_CHECK_FAILED",
				Message: "no se pudo verificar el plan, intente más tarde",
			})
		}
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "PLAN_REQUIRED",
				Message: "función disponible solo en el plan PRO",
			})
		}
		return c.Next()
	}
}
