package http

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bravo-menu-api/internal/application/dto"
	"github.com/jhoicas/bravo-menu-api/internal/application/usecase"
)

// MaxUploadBytes tamaño máximo de la imagen original.
const MaxUploadBytes = 10 << 20

// MediaHandler subida de imágenes del negocio autenticado.
type MediaHandler struct {
	uc *usecase.MediaUseCase
}

// NewMediaHandler construye el handler.
func NewMediaHandler(uc *usecase.MediaUseCase) *MediaHandler {
	return &MediaHandler{uc: uc}
}

// Upload godoc
// @Summary      Subir imagen
// @Description  Comprime a JPEG y la sube. Si el almacenamiento falla devuelve un data URL con fallback=true.
// @Tags         media
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        kind  path      string  true  "logo | cover | product | event | banner"
// @Param        file  formData  file    true  "Imagen"
// @Success      201   {object}  dto.MediaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/me/media/{kind} [post]
func (h *MediaHandler) Upload(c *fiber.Ctx) error {
	kind := c.Params("kind")
	if !usecase.IsMediaKind(kind) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_KIND", Message: "tipo de imagen no admitido"})
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo 'file' requerido"})
	}
	if fh.Size > MaxUploadBytes {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{Code: "FILE_TOO_LARGE", Message: "la imagen supera los 10 MB"})
	}
	f, err := fh.Open()
	if err != nil {
		return writeError(c, err)
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, MaxUploadBytes))
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.Upload(c.UserContext(), GetBusinessID(c), kind, data)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
