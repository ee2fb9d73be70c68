package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bravo-menu-api/internal/application/dto"
	"github.com/jhoicas/bravo-menu-api/internal/application/usecase"
)

// AdminHandler panel del súper administrador.
type AdminHandler struct {
	uc *usecase.AdminUseCase
}

// NewAdminHandler construye el handler.
func NewAdminHandler(uc *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// List godoc
// @Summary      Todos los negocios
// @Description  Incluye ocultos, con el tiempo restante de PRO.
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AdminBusinessItem
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/businesses [get]
func (h *AdminHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Stats godoc
// @Summary      Métricas de la plataforma
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AdminStatsResponse
// @Router       /api/admin/stats [get]
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GrantPro godoc
// @Summary      Conceder PRO
// @Description  Vence al final del día de hoy más N días.
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del negocio"
// @Param        body  body  dto.GrantProRequest  true  "Días"
// @Success      200   {object}  dto.TransitionResponse
// @Router       /api/admin/businesses/{id}/pro [post]
func (h *AdminHandler) GrantPro(c *fiber.Ctx) error {
	var in dto.GrantProRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.GrantPro(c.UserContext(), c.Params("id"), in.Days)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RevokePro godoc
// @Summary      Quitar PRO
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del negocio"
// @Success      200  {object}  dto.TransitionResponse
// @Router       /api/admin/businesses/{id}/pro [delete]
func (h *AdminHandler) RevokePro(c *fiber.Ctx) error {
	out, err := h.uc.RevokePro(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SetVisibility godoc
// @Summary      Mostrar u ocultar negocio
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del negocio"
// @Param        body  body  dto.VisibilityRequest  true  "is_visible"
// @Success      200   {object}  dto.TransitionResponse
// @Router       /api/admin/businesses/{id}/visibility [patch]
func (h *AdminHandler) SetVisibility(c *fiber.Ctx) error {
	var in dto.VisibilityRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.SetVisibility(c.UserContext(), c.Params("id"), in.IsVisible)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar negocio
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del negocio"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/admin/businesses/{id} [delete]
func (h *AdminHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "negocio eliminado"})
}
