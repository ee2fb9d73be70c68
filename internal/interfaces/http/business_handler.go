package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bravo-menu-api/internal/application/dto"
	"github.com/jhoicas/bravo-menu-api/internal/application/usecase"
)

// BusinessHandler perfil del negocio autenticado (rutas /api/me).
type BusinessHandler struct {
	uc *usecase.BusinessUseCase
}

// NewBusinessHandler construye el handler.
func NewBusinessHandler(uc *usecase.BusinessUseCase) *BusinessHandler {
	return &BusinessHandler{uc: uc}
}

// Me godoc
// @Summary      Negocio autenticado
// @Tags         me
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BusinessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/me [get]
func (h *BusinessHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Me(c.UserContext(), GetBusinessID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Settings godoc
// @Summary      Configuración del negocio
// @Description  Perfil con el horario completado con los valores por defecto.
// @Tags         me
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SettingsResponse
// @Router       /api/me/settings [get]
func (h *BusinessHandler) Settings(c *fiber.Ctx) error {
	out, err := h.uc.Settings(c.UserContext(), GetBusinessID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar perfil
// @Description  Solo se escriben los campos enviados.
// @Tags         me
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateBusinessRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.BusinessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/me [patch]
func (h *BusinessHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBusinessRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Patch(c.UserContext(), GetBusinessID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar negocio
// @Description  Borra el negocio con todo su contenido y cierra la sesión.
// @Tags         me
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/me [delete]
func (h *BusinessHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetBusinessID(c)); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "negocio eliminado"})
}

// MenuPDF godoc
// @Summary      Menú imprimible
// @Description  PDF con los productos visibles y el QR al menú público.
// @Tags         me
// @Security     Bearer
// @Produce      application/pdf
// @Success      200
// @Router       /api/me/menu.pdf [get]
func (h *BusinessHandler) MenuPDF(c *fiber.Ctx) error {
	pdf, err := h.uc.MenuPDF(c.UserContext(), GetBusinessID(c))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="menu.pdf"`)
	return c.Send(pdf)
}
