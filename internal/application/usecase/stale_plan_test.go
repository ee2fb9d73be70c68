package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bravo-menu-api/internal/application/dto"
	"github.com/jhoicas/bravo-menu-api/internal/application/usecase"
	"github.com/jhoicas/bravo-menu-api/internal/domain"
	"github.com/jhoicas/bravo-menu-api/internal/domain/entity"
)

// Si la degradación no se puede escribir, el negocio sigue guardado como PRO pero
// ninguna función PRO debe quedar disponible.
func TestProVencidoSinReconciliar_PierdeFuncionesPro(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	require.NoError(t, e.repos.Businesses.Create(ctx, &entity.Business{
		ID: "bar", Name: "La Bodeguita", Type: entity.TypeBar, Province: "La Habana", Municipality: "Habana Vieja",
		Phone: "78671374", WhatsApp: "+53 5555 4321", Plan: entity.PlanPro, PlanExpiresAt: timePtr(fixedAt.Add(-time.Hour)),
		IsVisible: true, DeliveryEnabled: true, DeliveryPriceInside: decimal.NewFromInt(100),
		Role: entity.RoleUser, CreatedAt: fixedAt, UpdatedAt: fixedAt,
	}))
	require.NoError(t, e.repos.Categories.Create(ctx, &entity.Category{ID: "bar-general", BusinessID: "bar", Name: entity.DefaultCategoryName}))
	for i := 0; i < 10; i++ {
		e.product(t, "bar", "p"+string(rune('a'+i)), 50, true)
	}
	require.NoError(t, e.repos.Events.Create(ctx, &entity.Event{ID: "ev", BusinessID: "bar", Title: "Son en vivo", DateTime: fixedAt.Add(48 * time.Hour)}))

	failing := &failingBusinessRepo{BusinessRepository: e.repos.Businesses}
	repos := e.repos
	repos.Businesses = failing
	ent := usecase.NewEntitlementUseCase(failing, nil, clock, havana)
	biz := usecase.NewBusinessUseCase(repos, e.tx, ent, nil, "")

	b, err := biz.Load(ctx, "bar")
	require.NoError(t, err)
	require.Equal(t, entity.PlanPro, b.Plan, "la escritura falló y el registro sigue como PRO")
	assert.Positive(t, failing.downgrades)

	products := usecase.NewProductUseCase(repos.Products, repos.Categories, biz)
	_, err = products.Create(ctx, "bar", dto.CreateProductRequest{Name: "Mojito"})
	assert.ErrorIs(t, err, domain.ErrPlanLimit)

	for _, f := range []string{usecase.FeatureEvents, usecase.FeatureBanners, usecase.FeatureOrdering} {
		ok, err := biz.HasFeature(ctx, "bar", f)
		require.NoError(t, err)
		assert.False(t, ok, f)
	}

	events := usecase.NewEventUseCase(repos.Events, biz)
	_, err = events.Create(ctx, "bar", dto.CreateEventRequest{Title: "Otro", DateTime: fixedAt.Add(72 * time.Hour)})
	assert.ErrorIs(t, err, domain.ErrPlanRequired)

	orders := usecase.NewOrderUseCase(biz, "es")
	_, err = orders.Place(ctx, "bar", dto.OrderRequest{
		Items: []dto.OrderItemRequest{{ProductID: "pa", Quantity: 1}},
		Zone:  "inside", ReceiverName: "Ana", ClientPhone: "53111111", Address: "Obispo 557",
	})
	assert.ErrorIs(t, err, domain.ErrOrderingDisabled)

	detail, err := biz.Detail(ctx, "bar")
	require.NoError(t, err)
	assert.False(t, detail.CanOrder)
	assert.Empty(t, detail.Events)
}
