package usecase_test

import (
	"context"
	"strings"
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

func boolPtr(b bool) *bool { return &b }

func TestProductCreate_VisiblePorDefecto(t *testing.T) {
	e := newEnv(t)
	e.seed(t, "a", entity.PlanFree, nil)
	uc := usecase.NewProductUseCase(e.repos.Products, e.repos.Categories, e.biz)
	ctx := context.Background()

	p, err := uc.Create(ctx, "a", dto.CreateProductRequest{Name: "Tostones", Price: decimal.NewFromInt(80)})
	require.NoError(t, err)
	assert.True(t, p.IsVisible)

	hidden, err := uc.Create(ctx, "a", dto.CreateProductRequest{Name: "Secreto", IsVisible: boolPtr(false)})
	require.NoError(t, err)
	assert.False(t, hidden.IsVisible)

	_, err = uc.Create(ctx, "a", dto.CreateProductRequest{Name: "Caro", Price: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, "a", dto.CreateProductRequest{Name: "Ajeno", CategoryID: "otro-general"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_TopeDelPlanGratuito(t *testing.T) {
	e := newEnv(t)
	e.seed(t, "a", entity.PlanFree, nil)
	uc := usecase.NewProductUseCase(e.repos.Products, e.repos.Categories, e.biz)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		_, err := uc.Create(ctx, "a", dto.CreateProductRequest{Name: "P"})
		require.NoError(t, err)
	}
	_, err := uc.Create(ctx, "a", dto.CreateProductRequest{Name: "P11"})
	assert.ErrorIs(t, err, domain.ErrPlanLimit)
}

func TestProductCreate_ProVencidoCuentaComoGratuito(t *testing.T) {
	e := newEnv(t)
	e.seed(t, "a", entity.PlanPro, timePtr(fixedAt.Add(-time.Hour)))
	for i := 0; i < 10; i++ {
		e.product(t, "a", "p"+string(rune('a'+i)), 10, true)
	}
	uc := usecase.NewProductUseCase(e.repos.Products, e.repos.Categories, e.biz)
	_, err := uc.Create(context.Background(), "a", dto.CreateProductRequest{Name: "Otro"})
	assert.ErrorIs(t, err, domain.ErrPlanLimit)
}

func TestProductSetVisibility_Transicion(t *testing.T) {
	e := newEnv(t)
	e.seed(t, "a", entity.PlanFree, nil)
	e.seed(t, "b", entity.PlanFree, nil)
	e.product(t, "a", "p1", 100, true)
	uc := usecase.NewProductUseCase(e.repos.Products, e.repos.Categories, e.biz)
	ctx := context.Background()

	tr, err := uc.SetVisibility(ctx, "a", "p1", false)
	require.NoError(t, err)
	assert.Equal(t, string(usecase.StateCommitted), tr.State)
	assert.Equal(t, true, tr.Previous)
	assert.Equal(t, false, tr.Current)

	_, err = uc.SetVisibility(ctx, "b", "p1", true)
	assert.ErrorIs(t, err, domain.ErrNotFound, "un negocio no toca productos ajenos")

	list, err := uc.List(ctx, "a", dto.ProductListQuery{})
	require.NoError(t, err)
	require.Len(t, list, 1, "el panel incluye ocultos")
	assert.False(t, list[0].IsVisible)
}

func TestCategoryDelete_UltimaCategoria(t *testing.T) {
	e := newEnv(t)
	e.seed(t, "a", entity.PlanFree, nil)
	e.product(t, "a", "p1", 100, true)
	uc := usecase.NewCategoryUseCase(e.repos, e.tx, e.biz)
	ctx := context.Background()

	err := uc.Delete(ctx, "a", "a-general")
	assert.ErrorIs(t, err, domain.ErrLastCategory)

	bebidas, err := uc.Create(ctx, "a", "Bebidas")
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, "a", "a-general"))
	p, err := e.repos.Products.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Empty(t, p.CategoryID, "el producto queda sin categoría")

	err = uc.Delete(ctx, "a", bebidas.ID)
	assert.ErrorIs(t, err, domain.ErrLastCategory)
}

func TestCategoryCreate_TopeYDuplicado(t *testing.T) {
	e := newEnv(t)
	e.seed(t, "a", entity.PlanFree, nil)
	uc := usecase.NewCategoryUseCase(e.repos, e.tx, e.biz)
	ctx := context.Background()

	_, err := uc.Create(ctx, "a", "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, "a", "General")
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Create(ctx, "a", "Bebidas")
	require.NoError(t, err)
	_, err = uc.Create(ctx, "a", "Postres")
	require.NoError(t, err)
	_, err = uc.Create(ctx, "a", "Entrantes")
	assert.ErrorIs(t, err, domain.ErrPlanLimit)

	list, err := uc.List(ctx, "a")
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

// seedDelivery negocio PRO con domicilio habilitado.
func seedDelivery(t *testing.T, e *env) {
	t.Helper()
	require.NoError(t, e.repos.Businesses.Create(context.Background(), &entity.Business{
		ID: "bar", Name: "El Floridita", Type: entity.TypeBar, Province: "La Habana", Municipality: "Habana Vieja",
		Phone: "78671299", WhatsApp: "+53 5555 1234", Plan: entity.PlanPro, PlanExpiresAt: timePtr(fixedAt.Add(240 * time.Hour)),
		IsVisible: true, DeliveryEnabled: true,
		DeliveryPriceInside: decimal.NewFromInt(100), DeliveryPriceOutside: decimal.NewFromInt(300),
		Role: entity.RoleUser, CreatedAt: fixedAt, UpdatedAt: fixedAt,
	}))
}

func TestOrderPlace(t *testing.T) {
	e := newEnv(t)
	seedDelivery(t, e)
	e.product(t, "bar", "daiquiri", 250, true)
	e.product(t, "bar", "oculto", 999, false)
	uc := usecase.NewOrderUseCase(e.biz, "es")
	ctx := context.Background()

	req := dto.OrderRequest{
		Items:        []dto.OrderItemRequest{{ProductID: "daiquiri", Quantity: 3}},
		Zone:         "outside",
		ReceiverName: "Ana",
		ClientPhone:  "53111111",
		Address:      "Obispo 557",
	}
	out, err := uc.Place(ctx, "bar", req)
	require.NoError(t, err)
	assert.Equal(t, 3, out.ItemCount)
	assert.True(t, out.Subtotal.Equal(decimal.NewFromInt(750)))
	assert.True(t, out.DeliveryCost.Equal(decimal.NewFromInt(300)))
	assert.True(t, out.Total.Equal(decimal.NewFromInt(1050)))
	assert.True(t, strings.HasPrefix(out.WhatsAppURL, "https://wa.me/5355551234?text="), out.WhatsAppURL)
	assert.Contains(t, out.Message, "3x Producto daiquiri")

	req.Items = []dto.OrderItemRequest{{ProductID: "oculto", Quantity: 1}}
	_, err = uc.Place(ctx, "bar", req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "los productos ocultos no se pueden pedir")
}

func TestOrderPlace_Rechazos(t *testing.T) {
	e := newEnv(t)
	e.seed(t, "free", entity.PlanFree, nil)
	uc := usecase.NewOrderUseCase(e.biz, "es")
	ctx := context.Background()

	_, err := uc.Place(ctx, "free", dto.OrderRequest{Items: []dto.OrderItemRequest{{ProductID: "x", Quantity: 1}}, Zone: "inside"})
	assert.ErrorIs(t, err, domain.ErrOrderingDisabled)

	_, err = uc.Place(ctx, "nope", dto.OrderRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDirectory_ProPrimeroYOcultosFuera(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.seed(t, "free", entity.PlanFree, nil)
	e.seed(t, "pro", entity.PlanPro, timePtr(fixedAt.Add(24*time.Hour)))
	e.seed(t, "vencido", entity.PlanPro, timePtr(fixedAt.Add(-24*time.Hour)))
	e.seed(t, "oculto", entity.PlanPro, nil)
	require.NoError(t, e.repos.Businesses.SetVisibility(ctx, "oculto", false))

	list, err := e.biz.Directory(ctx, dto.DirectoryQuery{})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "pro", list[0].ID)
	for _, it := range list {
		assert.NotEqual(t, "oculto", it.ID)
		if it.ID == "vencido" {
			assert.Equal(t, string(entity.PlanFree), it.Plan)
		}
	}

	_, err = e.biz.Detail(ctx, "oculto")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRateYVisit(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.seed(t, "a", entity.PlanFree, nil)

	_, err := e.biz.Rate(ctx, "a", 5)
	require.NoError(t, err)
	out, err := e.biz.Rate(ctx, "a", 4)
	require.NoError(t, err)
	assert.Equal(t, 2, out.RatingsCount)
	assert.InDelta(t, 4.5, out.AverageRating, 0.001)

	_, err = e.biz.Rate(ctx, "a", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	require.NoError(t, e.biz.Visit(ctx, "a", true))
	require.NoError(t, e.biz.Visit(ctx, "a", false))
	b, _ := e.repos.Businesses.GetByID(ctx, "a")
	assert.Equal(t, int64(2), b.Stats.Visits)
	assert.Equal(t, int64(1), b.Stats.QRScans)
}

func TestLeads(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.seed(t, "a", entity.PlanFree, nil)
	uc := usecase.NewLeadUseCase(e.repos.Leads, e.biz)

	_, err := uc.Create(ctx, "a", dto.CreateLeadRequest{Name: "Pedro", Phone: "53222222"})
	require.NoError(t, err)
	list, err := uc.List(ctx, "a")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Pedro", list[0].Name)

	_, err = uc.Create(ctx, "nope", dto.CreateLeadRequest{Name: "X", Phone: "1"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
