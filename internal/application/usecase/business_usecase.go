package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/bravo-menu-api/internal/application/dto"
	"github.com/jhoicas/bravo-menu-api/internal/application/ports"
	"github.com/jhoicas/bravo-menu-api/internal/domain"
	"github.com/jhoicas/bravo-menu-api/internal/domain/catalog"
	"github.com/jhoicas/bravo-menu-api/internal/domain/directory"
	"github.com/jhoicas/bravo-menu-api/internal/domain/entity"
	"github.com/jhoicas/bravo-menu-api/internal/domain/location"
	"github.com/jhoicas/bravo-menu-api/internal/domain/plan"
	"github.com/jhoicas/bravo-menu-api/internal/domain/schedule"
)

// BusinessUseCase perfil del negocio (vista del dueño) y menú público.
type BusinessUseCase struct {
	repos     ports.Repositories
	tx        ports.TxRunner
	ent       *EntitlementUseCase
	pdf       ports.MenuPDFGenerator
	publicURL string
}

// NewBusinessUseCase construye el caso de uso. publicURL es la base del menú público (se le concatena el ID).
func NewBusinessUseCase(repos ports.Repositories, tx ports.TxRunner, ent *EntitlementUseCase, pdf ports.MenuPDFGenerator, publicURL string) *BusinessUseCase {
	return &BusinessUseCase{repos: repos, tx: tx, ent: ent, pdf: pdf, publicURL: publicURL}
}

// Load obtiene el negocio reconciliado. ErrNotFound si no existe.
func (uc *BusinessUseCase) Load(ctx context.Context, id string) (*entity.Business, error) {
	b, err := uc.repos.Businesses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	return uc.ent.ReconcileOne(ctx, b), nil
}

// Me negocio del dueño con todas sus colecciones.
func (uc *BusinessUseCase) Me(ctx context.Context, id string) (*dto.BusinessResponse, error) {
	b, err := uc.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.loadCollections(ctx, b, true); err != nil {
		return nil, err
	}
	return toBusinessResponse(b), nil
}

// Settings perfil con el horario completado con los valores por defecto.
func (uc *BusinessUseCase) Settings(ctx context.Context, id string) (*dto.SettingsResponse, error) {
	b, err := uc.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.SettingsResponse{
		Business: *toBusinessResponse(b),
		Schedule: schedule.WithDefaults(b.Schedule),
	}, nil
}

// Patch actualiza solo los campos enviados.
func (uc *BusinessUseCase) Patch(ctx context.Context, id string, in dto.UpdateBusinessRequest) (*dto.BusinessResponse, error) {
	b, err := uc.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	patch := entity.BusinessPatch{
		Name:                 in.Name,
		Description:          in.Description,
		Type:                 in.Type,
		Province:             in.Province,
		Municipality:         in.Municipality,
		Address:              in.Address,
		WhatsApp:             in.WhatsApp,
		Instagram:            in.Instagram,
		Facebook:             in.Facebook,
		Email:                in.Email,
		LogoURL:              in.LogoURL,
		CoverPhotos:          in.CoverPhotos,
		CuisineTypes:         in.CuisineTypes,
		Schedule:             in.Schedule,
		DeliveryEnabled:      in.DeliveryEnabled,
		DeliveryPriceInside:  in.DeliveryPriceInside,
		DeliveryPriceOutside: in.DeliveryPriceOutside,
	}
	if patch.IsEmpty() {
		return toBusinessResponse(b), nil
	}
	if err := uc.validatePatch(b, patch); err != nil {
		return nil, err
	}
	if err := uc.repos.Businesses.Patch(ctx, id, patch); err != nil {
		return nil, err
	}
	patch.Apply(b)
	return toBusinessResponse(b), nil
}

func (uc *BusinessUseCase) validatePatch(b *entity.Business, p entity.BusinessPatch) error {
	if p.Province != nil || p.Municipality != nil {
		province, municipality := b.Province, b.Municipality
		if p.Province != nil {
			province = *p.Province
		}
		if p.Municipality != nil {
			municipality = *p.Municipality
		}
		if !location.Valid(province, municipality) {
			return fmt.Errorf("%w: municipio %q no pertenece a %q", domain.ErrInvalidInput, municipality, province)
		}
	}
	if p.Schedule != nil {
		if err := schedule.Validate(*p.Schedule); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
	}
	if p.DeliveryPriceInside != nil && p.DeliveryPriceInside.IsNegative() {
		return fmt.Errorf("%w: precio de envío negativo", domain.ErrInvalidInput)
	}
	if p.DeliveryPriceOutside != nil && p.DeliveryPriceOutside.IsNegative() {
		return fmt.Errorf("%w: precio de envío negativo", domain.ErrInvalidInput)
	}
	if p.CoverPhotos != nil {
		limits := uc.limits(b)
		if len(*p.CoverPhotos) > limits.MaxCoverPhotos {
			return fmt.Errorf("%w: máximo %d fotos de portada", domain.ErrPlanLimit, limits.MaxCoverPhotos)
		}
	}
	return nil
}

// Delete elimina el negocio y todo su contenido en una sola transacción.
func (uc *BusinessUseCase) Delete(ctx context.Context, id string) error {
	b, err := uc.repos.Businesses.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b == nil {
		return domain.ErrNotFound
	}
	return uc.tx.Run(ctx, func(r ports.Repositories) error {
		if err := r.Products.DeleteByBusiness(ctx, id); err != nil {
			return err
		}
		if err := r.Categories.DeleteByBusiness(ctx, id); err != nil {
			return err
		}
		if err := r.Events.DeleteByBusiness(ctx, id); err != nil {
			return err
		}
		if err := r.Banners.DeleteByBusiness(ctx, id); err != nil {
			return err
		}
		if err := r.Leads.DeleteByBusiness(ctx, id); err != nil {
			return err
		}
		return r.Businesses.Delete(ctx, id)
	})
}

// MenuPDF menú imprimible con el QR al menú público.
func (uc *BusinessUseCase) MenuPDF(ctx context.Context, id string) ([]byte, error) {
	b, err := uc.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.loadCollections(ctx, b, false); err != nil {
		return nil, err
	}
	b.Products = catalog.Visible(b.Products)
	return uc.pdf.Generate(b, uc.PublicURL(id))
}

// Funciones del plan que se pueden exigir por ruta.
const (
	FeatureEvents   = "events"
	FeatureBanners  = "banners"
	FeatureOrdering = "ordering"
)

// HasFeature indica si el plan vigente del negocio incluye la función.
func (uc *BusinessUseCase) HasFeature(ctx context.Context, id, feature string) (bool, error) {
	b, err := uc.Load(ctx, id)
	if err != nil {
		return false, err
	}
	limits := uc.limits(b)
	switch feature {
	case FeatureEvents:
		return limits.Events, nil
	case FeatureBanners:
		return limits.Banners, nil
	case FeatureOrdering:
		return limits.Ordering, nil
	}
	return false, fmt.Errorf("%w: función %q", domain.ErrInvalidInput, feature)
}

// limits límites del plan vigente: un PRO vencido cuenta como FREE aunque la
// reconciliación no haya podido escribirse.
func (uc *BusinessUseCase) limits(b *entity.Business) plan.Limits {
	return plan.LimitsAt(b, uc.ent.Now())
}

// PublicURL enlace al menú público del negocio (destino del QR).
func (uc *BusinessUseCase) PublicURL(id string) string {
	return uc.publicURL + id
}

// Directory listado público reconciliado, filtrado y con PRO primero.
func (uc *BusinessUseCase) Directory(ctx context.Context, q dto.DirectoryQuery) ([]dto.DirectoryItem, error) {
	list, err := uc.repos.Businesses.List(ctx, false)
	if err != nil {
		return nil, err
	}
	list = uc.ent.ReconcileList(ctx, list)
	filtered := directory.Apply(list, directory.Filter{
		Search:       q.Search,
		Province:     q.Province,
		Municipality: q.Municipality,
		Type:         q.Type,
	})
	now := uc.ent.Now()
	out := make([]dto.DirectoryItem, 0, len(filtered))
	for _, b := range filtered {
		out = append(out, toDirectoryItem(b, schedule.IsOpen(b.Schedule, now)))
	}
	return out, nil
}

// Detail menú público: productos visibles y, solo para PRO, eventos y banners.
// Un negocio oculto se trata como inexistente.
func (uc *BusinessUseCase) Detail(ctx context.Context, id string) (*dto.BusinessDetailResponse, error) {
	b, err := uc.publicBusiness(ctx, id)
	if err != nil {
		return nil, err
	}
	pro := plan.Effective(b, uc.ent.Now()) == entity.PlanPro
	if err := uc.loadCollections(ctx, b, false); err != nil {
		return nil, err
	}
	now := uc.ent.Now()
	visible := catalog.Visible(b.Products)
	out := &dto.BusinessDetailResponse{
		DirectoryItem:        toDirectoryItem(b, schedule.IsOpen(b.Schedule, now)),
		Address:              b.Address,
		Phone:                b.Phone,
		WhatsApp:             b.WhatsApp,
		Instagram:            b.Instagram,
		Facebook:             b.Facebook,
		Email:                b.Email,
		Weekly:               schedule.Weekly(b.Schedule),
		Today:                schedule.DayName(now),
		DeliveryEnabled:      b.DeliveryEnabled,
		CanOrder:             catalog.CanOrder(b, now) == nil,
		DeliveryPriceInside:  b.DeliveryPriceInside,
		DeliveryPriceOutside: b.DeliveryPriceOutside,
		Categories:           toCategoryResponses(b.Categories, visible),
		Products:             toProductResponses(visible),
		Events:               []dto.EventResponse{},
		Banners:              []dto.BannerResponse{},
	}
	if pro {
		out.Events = toEventResponses(b.Events)
		out.Banners = toBannerResponses(b.Banners)
	}
	return out, nil
}

// PublicProducts productos visibles filtrados por ID de categoría ("Todo" = todos).
func (uc *BusinessUseCase) PublicProducts(ctx context.Context, id, category string) ([]dto.ProductResponse, error) {
	if _, err := uc.publicBusiness(ctx, id); err != nil {
		return nil, err
	}
	products, err := uc.repos.Products.ListByBusiness(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponses(catalog.PublicMenu(products, category)), nil
}

// Rate registra una calificación de 1 a 5 estrellas.
func (uc *BusinessUseCase) Rate(ctx context.Context, id string, stars int) (*dto.RatingResponse, error) {
	if stars < 1 || stars > 5 {
		return nil, fmt.Errorf("%w: la calificación va de 1 a 5", domain.ErrInvalidInput)
	}
	if _, err := uc.publicBusiness(ctx, id); err != nil {
		return nil, err
	}
	avg, count, err := uc.repos.Businesses.AddRating(ctx, id, stars)
	if err != nil {
		return nil, err
	}
	return &dto.RatingResponse{AverageRating: avg, RatingsCount: count}, nil
}

// Visit cuenta una visita al menú; qr indica que llegó escaneando el código.
func (uc *BusinessUseCase) Visit(ctx context.Context, id string, qr bool) error {
	if _, err := uc.publicBusiness(ctx, id); err != nil {
		return err
	}
	return uc.repos.Businesses.IncrementStats(ctx, id, qr)
}

func (uc *BusinessUseCase) publicBusiness(ctx context.Context, id string) (*entity.Business, error) {
	b, err := uc.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !b.IsVisible {
		return nil, domain.ErrNotFound
	}
	return b, nil
}

func (uc *BusinessUseCase) loadCollections(ctx context.Context, b *entity.Business, withLeads bool) error {
	var err error
	if b.Categories, err = uc.repos.Categories.ListByBusiness(ctx, b.ID); err != nil {
		return err
	}
	if b.Products, err = uc.repos.Products.ListByBusiness(ctx, b.ID); err != nil {
		return err
	}
	if b.Events, err = uc.repos.Events.ListByBusiness(ctx, b.ID); err != nil {
		return err
	}
	if b.Banners, err = uc.repos.Banners.ListByBusiness(ctx, b.ID); err != nil {
		return err
	}
	if withLeads {
		if b.Leads, err = uc.repos.Leads.ListByBusiness(ctx, b.ID); err != nil {
			return err
		}
	}
	return nil
}
