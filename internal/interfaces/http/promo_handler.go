package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bravo-menu-api/internal/application/dto"
	"github.com/jhoicas/bravo-menu-api/internal/application/usecase"
)

// EventHandler eventos del negocio (PRO) y contador público de interesados.
type EventHandler struct {
	uc *usecase.EventUseCase
}

// NewEventHandler construye el handler.
func NewEventHandler(uc *usecase.EventUseCase) *EventHandler {
	return &EventHandler{uc: uc}
}

// List godoc
// @Summary      Listar eventos
// @Tags         events
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.EventResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/me/events [get]
func (h *EventHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetBusinessID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear evento
// @Tags         events
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEventRequest  true  "Datos del evento"
// @Success      201   {object}  dto.EventResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/me/events [post]
func (h *EventHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEventRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), GetBusinessID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar evento
// @Tags         events
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del evento"
// @Param        body  body  dto.UpdateEventRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.EventResponse
// @Router       /api/me/events/{id} [patch]
func (h *EventHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEventRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), GetBusinessID(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar evento
// @Tags         events
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del evento"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/me/events/{id} [delete]
func (h *EventHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetBusinessID(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "evento eliminado"})
}

// Interest godoc
// @Summary      Marcar interés en un evento
// @Tags         public
// @Produce      json
// @Param        id   path  string  true  "ID del evento"
// @Success      200  {object}  dto.CounterResponse
// @Router       /api/events/{id}/interest [post]
func (h *EventHandler) Interest(c *fiber.Ctx) error {
	out, err := h.uc.Interest(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// BannerHandler banners del negocio (PRO) y contador público de clics.
type BannerHandler struct {
	uc *usecase.BannerUseCase
}

// NewBannerHandler construye el handler.
func NewBannerHandler(uc *usecase.BannerUseCase) *BannerHandler {
	return &BannerHandler{uc: uc}
}

// List godoc
// @Summary      Listar banners
// @Tags         banners
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.BannerResponse
// @Router       /api/me/banners [get]
func (h *BannerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetBusinessID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear banner
// @Tags         banners
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBannerRequest  true  "Datos del banner"
// @Success      201   {object}  dto.BannerResponse
// @Router       /api/me/banners [post]
func (h *BannerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBannerRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), GetBusinessID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar banner
// @Tags         banners
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del banner"
// @Param        body  body  dto.UpdateBannerRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.BannerResponse
// @Router       /api/me/banners/{id} [patch]
func (h *BannerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBannerRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), GetBusinessID(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar banner
// @Tags         banners
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del banner"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/me/banners/{id} [delete]
func (h *BannerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetBusinessID(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "banner eliminado"})
}

// Click godoc
// @Summary      Registrar clic en un banner
// @Tags         public
// @Produce      json
// @Param        id   path  string  true  "ID del banner"
// @Success      200  {object}  dto.CounterResponse
// @Router       /api/banners/{id}/clicks [post]
func (h *BannerHandler) Click(c *fiber.Ctx) error {
	out, err := h.uc.Click(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
