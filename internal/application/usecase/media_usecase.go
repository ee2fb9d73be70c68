package usecase

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/bravo-menu-api/internal/application/dto"
	"github.com/jhoicas/bravo-menu-api/internal/application/ports"
	"github.com/jhoicas/bravo-menu-api/internal/domain"
	"github.com/jhoicas/bravo-menu-api/pkg/logger"
)

// Tipos de imagen admitidos; también son la carpeta raíz en el almacenamiento.
const (
	MediaLogo    = "logo"
	MediaCover   = "cover"
	MediaProduct = "product"
	MediaEvent   = "event"
	MediaBanner  = "banner"
)

const (
	maxWidthProduct = 800
	maxWidthDefault = 1200
)

// MediaUseCase comprime y sube imágenes. Si la subida falla devuelve la imagen embebida como data URL.
type MediaUseCase struct {
	storage    ports.ObjectStorage
	compressor ports.ImageCompressor
	businesses *BusinessUseCase
	log        *logger.Logger
	now        ports.Clock
}

// NewMediaUseCase construye el caso de uso.
func NewMediaUseCase(storage ports.ObjectStorage, compressor ports.ImageCompressor, businesses *BusinessUseCase, log *logger.Logger) *MediaUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &MediaUseCase{storage: storage, compressor: compressor, businesses: businesses, log: log.Component("media"), now: time.Now}
}

// IsMediaKind indica si kind es un tipo de imagen admitido.
func IsMediaKind(kind string) bool {
	switch kind {
	case MediaLogo, MediaCover, MediaProduct, MediaEvent, MediaBanner:
		return true
	}
	return false
}

// Upload procesa una imagen subida por el dueño del negocio.
func (uc *MediaUseCase) Upload(ctx context.Context, businessID, kind string, data []byte) (*dto.MediaResponse, error) {
	if !IsMediaKind(kind) {
		return nil, fmt.Errorf("%w: tipo de imagen %q", domain.ErrInvalidInput, kind)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: archivo vacío", domain.ErrInvalidInput)
	}
	b, err := uc.businesses.Load(ctx, businessID)
	if err != nil {
		return nil, err
	}
	limits := uc.businesses.limits(b)
	if (kind == MediaEvent && !limits.Events) || (kind == MediaBanner && !limits.Banners) {
		return nil, domain.ErrPlanRequired
	}

	maxWidth := maxWidthDefault
	if kind == MediaProduct {
		maxWidth = maxWidthProduct
	}
	img, err := uc.compressor.Compress(data, maxWidth)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	path := uc.objectPath(kind, businessID)
	url, err := uc.storage.Upload(ctx, path, "image/jpeg", img)
	if err != nil {
		uc.log.Warn().Err(err).Str("path", path).Msg("subida fallida, usando data URL")
		return &dto.MediaResponse{
			URL:       "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(img),
			SizeBytes: len(img),
			Fallback:  true,
		}, nil
	}
	return &dto.MediaResponse{URL: url, Path: path, SizeBytes: len(img)}, nil
}

func (uc *MediaUseCase) objectPath(kind, businessID string) string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:7]
	return fmt.Sprintf("%s/%s/%d-%s.jpg", kind, businessID, uc.now().UnixMilli(), suffix)
}
