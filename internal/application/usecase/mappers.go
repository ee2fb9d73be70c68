package usecase

import (
	"github.com/jhoicas/bravo-menu-api/internal/application/dto"
	"github.com/jhoicas/bravo-menu-api/internal/domain/entity"
)

func toBusinessResponse(b *entity.Business) *dto.BusinessResponse {
	if b == nil {
		return nil
	}
	out := &dto.BusinessResponse{
		ID:                   b.ID,
		Name:                 b.Name,
		Description:          b.Description,
		Type:                 b.Type,
		Province:             b.Province,
		Municipality:         b.Municipality,
		Address:              b.Address,
		Phone:                b.Phone,
		WhatsApp:             b.WhatsApp,
		Instagram:            b.Instagram,
		Facebook:             b.Facebook,
		Email:                b.Email,
		LogoURL:              b.LogoURL,
		CoverPhotos:          nonNil(b.CoverPhotos),
		Plan:                 string(b.Plan),
		PlanExpiresAt:        b.PlanExpiresAt,
		IsVisible:            b.IsVisible,
		AverageRating:        b.AverageRating,
		RatingsCount:         b.RatingsCount,
		CuisineTypes:         nonNil(b.CuisineTypes),
		Schedule:             b.Schedule,
		DeliveryEnabled:      b.DeliveryEnabled,
		DeliveryPriceInside:  b.DeliveryPriceInside,
		DeliveryPriceOutside: b.DeliveryPriceOutside,
		Role:                 string(b.Role),
		Stats:                b.Stats,
		CreatedAt:            b.CreatedAt,
	}
	if b.Categories != nil {
		out.Categories = toCategoryResponses(b.Categories, b.Products)
	}
	if b.Products != nil {
		out.Products = toProductResponses(b.Products)
	}
	if b.Events != nil {
		out.Events = toEventResponses(b.Events)
	}
	if b.Banners != nil {
		out.Banners = toBannerResponses(b.Banners)
	}
	if b.Leads != nil {
		out.Leads = make([]dto.LeadResponse, 0, len(b.Leads))
		for _, l := range b.Leads {
			out.Leads = append(out.Leads, toLeadResponse(l))
		}
	}
	return out
}

func toDirectoryItem(b *entity.Business, open bool) dto.DirectoryItem {
	return dto.DirectoryItem{
		ID:            b.ID,
		Name:          b.Name,
		Description:   b.Description,
		Type:          b.Type,
		Province:      b.Province,
		Municipality:  b.Municipality,
		LogoURL:       b.LogoURL,
		CoverPhotos:   nonNil(b.CoverPhotos),
		Plan:          string(b.Plan),
		AverageRating: b.AverageRating,
		RatingsCount:  b.RatingsCount,
		CuisineTypes:  nonNil(b.CuisineTypes),
		IsOpen:        open,
	}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		BusinessID:    p.BusinessID,
		CategoryID:    p.CategoryID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		ImageURL:      p.ImageURL,
		IsHighlighted: p.IsHighlighted,
		IsVisible:     p.IsVisible,
	}
}

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toProductResponse(p))
	}
	return out
}

func toCategoryResponses(cats []*entity.Category, products []*entity.Product) []dto.CategoryResponse {
	counts := make(map[string]int)
	for _, p := range products {
		if p.CategoryID != "" {
			counts[p.CategoryID]++
		}
	}
	out := make([]dto.CategoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, dto.CategoryResponse{ID: c.ID, Name: c.Name, ProductCount: counts[c.ID]})
	}
	return out
}

func toEventResponse(e *entity.Event) dto.EventResponse {
	return dto.EventResponse{
		ID:              e.ID,
		Title:           e.Title,
		Description:     e.Description,
		DateTime:        e.DateTime,
		ImageURL:        e.ImageURL,
		Price:           e.Price,
		InterestedCount: e.InterestedCount,
	}
}

func toEventResponses(list []*entity.Event) []dto.EventResponse {
	out := make([]dto.EventResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toEventResponse(e))
	}
	return out
}

func toBannerResponse(b *entity.Banner) dto.BannerResponse {
	return dto.BannerResponse{
		ID:       b.ID,
		Title:    b.Title,
		ImageURL: b.ImageURL,
		LinkURL:  b.LinkURL,
		Position: b.Position,
		Clicks:   b.Clicks,
	}
}

func toBannerResponses(list []*entity.Banner) []dto.BannerResponse {
	out := make([]dto.BannerResponse, 0, len(list))
	for _, b := range list {
		out = append(out, toBannerResponse(b))
	}
	return out
}

func toLeadResponse(l *entity.Lead) dto.LeadResponse {
	return dto.LeadResponse{ID: l.ID, Name: l.Name, Phone: l.Phone, CreatedAt: l.CreatedAt}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
