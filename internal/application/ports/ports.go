package ports

import (
	"context"
	"time"

	"github.com/jhoicas/bravo-menu-api/internal/domain/entity"
	"github.com/jhoicas/bravo-menu-api/internal/domain/repository"
)

// Repositories conjunto de repositorios atados a una misma conexión o transacción.
type Repositories struct {
	Businesses repository.BusinessRepository
	Products   repository.ProductRepository
	Categories repository.CategoryRepository
	Events     repository.EventRepository
	Banners    repository.BannerRepository
	Leads      repository.LeadRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn retorna error se hace rollback de todo lo escrito.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos Repositories) error) error
}

// ObjectStorage puerto de salida para guardar imágenes públicas.
// Upload devuelve la URL pública del objeto.
type ObjectStorage interface {
	Upload(ctx context.Context, path, contentType string, data []byte) (string, error)
}

// ImageCompressor reduce y recodifica imágenes antes de subirlas.
// El resultado siempre es JPEG.
type ImageCompressor interface {
	Compress(data []byte, maxWidth int) ([]byte, error)
}

// MenuPDFGenerator genera el menú imprimible con el QR hacia el menú público.
type MenuPDFGenerator interface {
	Generate(b *entity.Business, publicURL string) ([]byte, error)
}

// Clock fuente de la hora actual; inyectable en tests.
type Clock func() time.Time
