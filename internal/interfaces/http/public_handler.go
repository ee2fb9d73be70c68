package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bravo-menu-api/internal/application/dto"
	"github.com/jhoicas/bravo-menu-api/internal/application/usecase"
)

// PublicHandler directorio y menú público (sin sesión).
type PublicHandler struct {
	businesses *usecase.BusinessUseCase
	orders     *usecase.OrderUseCase
}

// NewPublicHandler construye el handler.
func NewPublicHandler(businesses *usecase.BusinessUseCase, orders *usecase.OrderUseCase) *PublicHandler {
	return &PublicHandler{businesses: businesses, orders: orders}
}

// Directory godoc
// @Summary      Directorio de negocios
// @Description  Negocios visibles, PRO primero.
// @Tags         public
// @Produce      json
// @Param        q             query  string  false  "Texto en nombre o descripción"
// @Param        province      query  string  false  "Provincia"
// @Param        municipality  query  string  false  "Municipio"
// @Param        type          query  string  false  "Tipo (Todos = cualquiera)"
// @Success      200           {array}  dto.DirectoryItem
// @Router       /api/businesses [get]
func (h *PublicHandler) Directory(c *fiber.Ctx) error {
	var q dto.DirectoryQuery
	if err := c.QueryParser(&q); err != nil {
		return writeError(c, errInvalidBody)
	}
	out, err := h.businesses.Directory(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Detail godoc
// @Summary      Menú público de un negocio
// @Tags         public
// @Produce      json
// @Param        id   path  string  true  "ID del negocio"
// @Success      200  {object}  dto.BusinessDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/businesses/{id} [get]
func (h *PublicHandler) Detail(c *fiber.Ctx) error {
	out, err := h.businesses.Detail(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Products godoc
// @Summary      Productos visibles por categoría
// @Tags         public
// @Produce      json
// @Param        id        path   string  true   "ID del negocio"
// @Param        category  query  string  false  "ID de categoría (Todo = todas)"
// @Success      200       {array}  dto.ProductResponse
// @Router       /api/businesses/{id}/products [get]
func (h *PublicHandler) Products(c *fiber.Ctx) error {
	out, err := h.businesses.PublicProducts(c.UserContext(), c.Params("id"), c.Query("category"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Rate godoc
// @Summary      Calificar negocio
// @Tags         public
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del negocio"
// @Param        body  body  dto.RatingRequest  true  "Estrellas (1..5)"
// @Success      200   {object}  dto.RatingResponse
// @Router       /api/businesses/{id}/ratings [post]
func (h *PublicHandler) Rate(c *fiber.Ctx) error {
	var in dto.RatingRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.businesses.Rate(c.UserContext(), c.Params("id"), in.Stars)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Visit godoc
// @Summary      Registrar visita al menú
// @Tags         public
// @Produce      json
// @Param        id   path   string  true   "ID del negocio"
// @Param        qr   query  bool    false  "La visita llegó por el código QR"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/businesses/{id}/visits [post]
func (h *PublicHandler) Visit(c *fiber.Ctx) error {
	if err := h.businesses.Visit(c.UserContext(), c.Params("id"), c.QueryBool("qr", false)); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "visita registrada"})
}

// Order godoc
// @Summary      Armar pedido a domicilio
// @Description  Calcula el total con precios del catálogo y devuelve el enlace de WhatsApp. No se guarda nada.
// @Tags         public
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del negocio"
// @Param        body  body  dto.OrderRequest  true  "Carrito y datos de entrega"
// @Success      200   {object}  dto.OrderResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/businesses/{id}/orders [post]
func (h *PublicHandler) Order(c *fiber.Ctx) error {
	var in dto.OrderRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.orders.Place(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
