package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bravo-menu-api/internal/application/dto"
	"github.com/jhoicas/bravo-menu-api/internal/application/usecase"
	"github.com/jhoicas/bravo-menu-api/internal/domain"
	"github.com/jhoicas/bravo-menu-api/internal/domain/entity"
)

type fakeStorage struct {
	err   error
	paths []string
}

func (f *fakeStorage) Upload(_ context.Context, path, _ string, _ []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.paths = append(f.paths, path)
	return "https://cdn.test/" + path, nil
}

type fakeCompressor struct {
	widths []int
}

func (f *fakeCompressor) Compress(data []byte, maxWidth int) ([]byte, error) {
	f.widths = append(f.widths, maxWidth)
	if string(data) == "not-an-image" {
		return nil, errors.New("formato no soportado")
	}
	return []byte("jpeg"), nil
}

func TestMediaUpload(t *testing.T) {
	e := newEnv(t)
	e.seed(t, "a", entity.PlanFree, nil)
	st := &fakeStorage{}
	comp := &fakeCompressor{}
	uc := usecase.NewMediaUseCase(st, comp, e.biz, nil)
	ctx := context.Background()

	out, err := uc.Upload(ctx, "a", usecase.MediaProduct, []byte("img"))
	require.NoError(t, err)
	assert.False(t, out.Fallback)
	assert.True(t, strings.HasPrefix(out.Path, "product/a/"), out.Path)
	assert.True(t, strings.HasSuffix(out.Path, ".jpg"))
	assert.Equal(t, "https://cdn.test/"+out.Path, out.URL)

	_, err = uc.Upload(ctx, "a", usecase.MediaCover, []byte("img"))
	require.NoError(t, err)
	assert.Equal(t, []int{800, 1200}, comp.widths)

	_, err = uc.Upload(ctx, "a", usecase.MediaBanner, []byte("img"))
	assert.ErrorIs(t, err, domain.ErrPlanRequired)

	_, err = uc.Upload(ctx, "a", "avatar", []byte("img"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Upload(ctx, "a", usecase.MediaLogo, []byte("not-an-image"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMediaUpload_FalloDeSubidaDevuelveDataURL(t *testing.T) {
	e := newEnv(t)
	e.seed(t, "a", entity.PlanFree, nil)
	uc := usecase.NewMediaUseCase(&fakeStorage{err: errors.New("timeout")}, &fakeCompressor{}, e.biz, nil)

	out, err := uc.Upload(context.Background(), "a", usecase.MediaLogo, []byte("img"))
	require.NoError(t, err)
	assert.True(t, out.Fallback)
	assert.Equal(t, "data:image/jpeg;base64,anBlZw==", out.URL)
	assert.Empty(t, out.Path)
}

func TestEventsYBanners_SoloPro(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.seed(t, "free", entity.PlanFree, nil)
	e.seed(t, "pro", entity.PlanPro, timePtr(fixedAt.Add(24*time.Hour)))
	events := usecase.NewEventUseCase(e.repos.Events, e.biz)
	banners := usecase.NewBannerUseCase(e.repos.Banners, e.biz)

	_, err := events.Create(ctx, "free", dto.CreateEventRequest{Title: "Trova", DateTime: fixedAt})
	assert.ErrorIs(t, err, domain.ErrPlanRequired)

	ev, err := events.Create(ctx, "pro", dto.CreateEventRequest{Title: "Trova", DateTime: fixedAt.Add(time.Hour)})
	require.NoError(t, err)
	c, err := events.Interest(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Count)

	_, err = banners.Create(ctx, "free", dto.CreateBannerRequest{Title: "2x1", ImageURL: "https://cdn.test/b.jpg", Position: "header"})
	assert.ErrorIs(t, err, domain.ErrPlanRequired)

	detail, err := e.biz.Detail(ctx, "pro")
	require.NoError(t, err)
	assert.Len(t, detail.Events, 1)
}

func TestAdmin_StatsYVisibilidad(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.seed(t, "a", entity.PlanFree, nil)
	e.seed(t, "b", entity.PlanPro, timePtr(fixedAt.Add(72*time.Hour)))
	e.seed(t, "c", entity.PlanPro, timePtr(fixedAt.Add(-time.Hour)))
	uc := usecase.NewAdminUseCase(e.biz, e.ent, 500)

	stats, err := uc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Pro)
	assert.Equal(t, 2, stats.Free)
	assert.Equal(t, 500, stats.EstimatedRevenue)

	tr, err := uc.SetVisibility(ctx, "a", false)
	require.NoError(t, err)
	assert.Equal(t, string(usecase.StateCommitted), tr.State)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for _, it := range list {
		switch it.ID {
		case "a":
			assert.False(t, it.IsVisible)
		case "b":
			assert.Equal(t, "3d restantes", it.Remaining)
		}
	}

	require.NoError(t, uc.Delete(ctx, "a"))
	_, err = e.biz.Load(ctx, "a")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdmin_SetVisibility_FalloRevierte(t *testing.T) {
	e := newEnv(t)
	e.seed(t, "a", entity.PlanFree, nil)
	repos := e.repos
	repos.Businesses = &failingBusinessRepo{BusinessRepository: e.repos.Businesses}
	biz := usecase.NewBusinessUseCase(repos, e.tx, e.ent, nil, "")
	uc := usecase.NewAdminUseCase(biz, e.ent, 500)

	tr, err := uc.SetVisibility(context.Background(), "a", false)
	require.NoError(t, err)
	assert.Equal(t, string(usecase.StateRolledBack), tr.State)
	assert.Equal(t, true, tr.Current)
}
