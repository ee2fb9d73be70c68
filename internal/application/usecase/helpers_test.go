package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bravo-menu-api/internal/application/ports"
	"github.com/jhoicas/bravo-menu-api/internal/application/usecase"
	"github.com/jhoicas/bravo-menu-api/internal/domain/entity"
	"github.com/jhoicas/bravo-menu-api/internal/domain/repository"
	"github.com/jhoicas/bravo-menu-api/internal/infrastructure/memory"
)

var (
	havana  = time.FixedZone("CST", -5*3600)
	fixedAt = time.Date(2026, 3, 10, 15, 0, 0, 0, havana)
	errDown = errors.New("base de datos caída")
)

func clock() time.Time { return fixedAt }

// env casos de uso sobre un almacén en memoria con reloj fijo.
type env struct {
	store *memory.Store
	repos ports.Repositories
	tx    ports.TxRunner
	ent   *usecase.EntitlementUseCase
	biz   *usecase.BusinessUseCase
}

func newEnv(t *testing.T) *env {
	t.Helper()
	store := memory.NewStore()
	repos := store.Repositories()
	tx := memory.NewTxRunner(store)
	ent := usecase.NewEntitlementUseCase(repos.Businesses, nil, clock, havana)
	return &env{
		store: store,
		repos: repos,
		tx:    tx,
		ent:   ent,
		biz:   usecase.NewBusinessUseCase(repos, tx, ent, nil, "https://bravomenu.test/#/negocio/"),
	}
}

// seed guarda un negocio visible con la categoría "General".
func (e *env) seed(t *testing.T, id string, p entity.Plan, expires *time.Time) *entity.Business {
	t.Helper()
	ctx := context.Background()
	b := &entity.Business{
		ID: id, Name: "Negocio " + id, Type: entity.TypeRestaurant,
		Province: "La Habana", Municipality: "Plaza de la Revolución",
		Phone: "5" + id, WhatsApp: "+53 5" + id, Plan: p, PlanExpiresAt: expires,
		IsVisible: true, Role: entity.RoleUser, CreatedAt: fixedAt, UpdatedAt: fixedAt,
	}
	require.NoError(t, e.repos.Businesses.Create(ctx, b))
	require.NoError(t, e.repos.Categories.Create(ctx, &entity.Category{
		ID: id + "-general", BusinessID: id, Name: entity.DefaultCategoryName, CreatedAt: fixedAt,
	}))
	return b
}

func (e *env) product(t *testing.T, businessID, id string, price int64, visible bool) {
	t.Helper()
	require.NoError(t, e.repos.Products.Create(context.Background(), &entity.Product{
		ID: id, BusinessID: businessID, CategoryID: businessID + "-general", Name: "Producto " + id,
		Price: decimal.NewFromInt(price), IsVisible: visible, CreatedAt: fixedAt, UpdatedAt: fixedAt,
	}))
}

func timePtr(t time.Time) *time.Time { return &t }

// failingBusinessRepo falla en las escrituras de plan.
type failingBusinessRepo struct {
	repository.BusinessRepository
	downgrades int
}

func (f *failingBusinessRepo) DowngradeExpired(context.Context, []string, time.Time) (int64, error) {
	f.downgrades++
	return 0, errDown
}

func (f *failingBusinessRepo) SetPlan(context.Context, string, entity.Plan, *time.Time) error {
	return errDown
}

func (f *failingBusinessRepo) SetVisibility(context.Context, string, bool) error {
	return errDown
}

// countingBusinessRepo cuenta las escrituras de degradación.
type countingBusinessRepo struct {
	repository.BusinessRepository
	downgrades int
}

func (c *countingBusinessRepo) DowngradeExpired(ctx context.Context, ids []string, now time.Time) (int64, error) {
	c.downgrades++
	return c.BusinessRepository.DowngradeExpired(ctx, ids, now)
}
