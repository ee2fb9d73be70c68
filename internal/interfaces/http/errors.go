package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bravo-menu-api/internal/application/dto"
	"github.com/jhoicas/bravo-menu-api/internal/domain"
)

// errInvalidBody el cuerpo no es JSON válido para el DTO.
var errInvalidBody = errors.New("cuerpo inválido")

type errorMapping struct {
	err    error
	status int
	code   string
}

// El orden importa: ErrSessionEnded antes que los genéricos.
var errorMappings = []errorMapping{
	{errInvalidBody, fiber.StatusBadRequest, "INVALID_BODY"},
	{domain.ErrSessionEnded, fiber.StatusUnauthorized, "SESSION_ENDED"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrPlanRequired, fiber.StatusForbidden, "PLAN_REQUIRED"},
	{domain.ErrPlanLimit, fiber.StatusForbidden, "PLAN_LIMIT"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
	{domain.ErrLastCategory, fiber.StatusConflict, "LAST_CATEGORY"},
	{domain.ErrOrderingDisabled, fiber.StatusConflict, "ORDERING_DISABLED"},
	{domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
	{domain.ErrEmptyCart, fiber.StatusBadRequest, "EMPTY_CART"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
}

// writeError traduce errores de dominio a dto.ErrorResponse. Lo no mapeado es 500 sin detalles.
func writeError(c *fiber.Ctx, err error) error {
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno del servidor"})
}

// ErrorHandler manejador global de Fiber: respeta los *fiber.Error y delega el resto en writeError.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: "HTTP_ERROR", Message: fe.Message})
	}
	return writeError(c, err)
}
