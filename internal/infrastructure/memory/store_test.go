package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bravo-menu-api/internal/application/auth"
	"github.com/jhoicas/bravo-menu-api/internal/application/ports"
	"github.com/jhoicas/bravo-menu-api/internal/domain"
	"github.com/jhoicas/bravo-menu-api/internal/domain/entity"
	"github.com/jhoicas/bravo-menu-api/internal/infrastructure/memory"
)

func TestTxRunner_RollbackConservaEscriturasConcurrentes(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repos := store.Repositories()
	tx := memory.NewTxRunner(store)
	require.NoError(t, repos.Businesses.Create(ctx, &entity.Business{ID: "b1", Phone: "1"}))

	boom := errors.New("boom")
	started, release := make(chan struct{}), make(chan struct{})
	txErr := make(chan error, 1)
	go func() {
		txErr <- tx.Run(ctx, func(r ports.Repositories) error {
			close(started)
			<-release
			return boom
		})
	}()
	<-started

	visit := make(chan error, 1)
	go func() { visit <- repos.Businesses.IncrementStats(ctx, "b1", false) }()
	select {
	case err := <-visit:
		t.Fatalf("la visita no debe escribirse durante la transacción: %v", err)
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	require.ErrorIs(t, <-txErr, boom)
	require.NoError(t, <-visit)

	b, err := repos.Businesses.GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.EqualValues(t, 1, b.Stats.Visits, "el rollback no deshace la visita")
}

func TestTxRunner_RollbackRestauraTodo(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repos := store.Repositories()
	tx := memory.NewTxRunner(store)

	boom := errors.New("boom")
	err := tx.Run(ctx, func(r ports.Repositories) error {
		require.NoError(t, r.Businesses.Create(ctx, &entity.Business{ID: "b1", Phone: "1"}))
		require.NoError(t, r.Categories.Create(ctx, &entity.Category{ID: "c1", BusinessID: "b1", Name: "General"}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	b, err := repos.Businesses.GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.Nil(t, b)
	n, err := repos.Categories.CountByBusiness(ctx, "b1")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestBusinessRepo_DowngradeCondicional(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewStore().Repositories()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(24 * time.Hour)

	require.NoError(t, repos.Businesses.Create(ctx, &entity.Business{ID: "vencido", Phone: "1", Plan: entity.PlanPro, PlanExpiresAt: &past}))
	require.NoError(t, repos.Businesses.Create(ctx, &entity.Business{ID: "renovado", Phone: "2", Plan: entity.PlanPro, PlanExpiresAt: &future}))

	n, err := repos.Businesses.DowngradeExpired(ctx, []string{"vencido", "renovado"}, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n, "un PRO renovado no se degrada")

	b, _ := repos.Businesses.GetByID(ctx, "renovado")
	assert.Equal(t, entity.PlanPro, b.Plan)

	n, err = repos.Businesses.DowngradeExpired(ctx, []string{"vencido"}, now)
	require.NoError(t, err)
	assert.Zero(t, n, "idempotente")
}

func TestBusinessRepo_TelefonoUnico(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewStore().Repositories()
	require.NoError(t, repos.Businesses.Create(ctx, &entity.Business{ID: "a", Phone: "555"}))
	assert.ErrorIs(t, repos.Businesses.Create(ctx, &entity.Business{ID: "b", Phone: "555"}), domain.ErrDuplicate)
}

func TestBusinessRepo_AddRating(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewStore().Repositories()
	require.NoError(t, repos.Businesses.Create(ctx, &entity.Business{ID: "a", Phone: "1"}))

	_, _, err := repos.Businesses.AddRating(ctx, "a", 5)
	require.NoError(t, err)
	avg, count, err := repos.Businesses.AddRating(ctx, "a", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.InDelta(t, 3.5, avg, 0.0001)
}

func TestSessionStore(t *testing.T) {
	ctx := context.Background()
	st := memory.NewSessionStore()
	s := &auth.Session{ID: "s1", BusinessID: "b1", Role: entity.RoleUser, CreatedAt: time.Now()}

	require.NoError(t, st.Save(ctx, s, time.Hour))
	got, err := st.Get(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "b1", got.BusinessID)

	require.NoError(t, st.Delete(ctx, "s1"))
	got, err = st.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, st.Save(ctx, s, -time.Second))
	got, _ = st.Get(ctx, "s1")
	assert.Nil(t, got, "sesión expirada")
}
