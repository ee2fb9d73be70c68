package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/bravo-menu-api/internal/application/auth"
	"github.com/jhoicas/bravo-menu-api/internal/application/usecase"
	"github.com/jhoicas/bravo-menu-api/internal/domain/entity"
	"github.com/jhoicas/bravo-menu-api/internal/infrastructure/imaging"
	"github.com/jhoicas/bravo-menu-api/internal/infrastructure/memory"
	"github.com/jhoicas/bravo-menu-api/internal/infrastructure/pdf"
	"github.com/jhoicas/bravo-menu-api/internal/infrastructure/storage"
	apphttp "github.com/jhoicas/bravo-menu-api/internal/interfaces/http"
)

const (
	adminPhone    = "55500000"
	adminPassword = "admin-secreto"
)

// testServer app completa sobre repositorios en memoria.
type testServer struct {
	app   *fiber.App
	store *memory.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	store := memory.NewStore()
	repos := store.Repositories()
	tx := memory.NewTxRunner(store)

	ent := usecase.NewEntitlementUseCase(repos.Businesses, nil, time.Now, time.UTC)
	businessUC := usecase.NewBusinessUseCase(repos, tx, ent, pdf.NewMarotoMenuGenerator(), "https://bravomenu.test/#/negocio/")
	authUC := auth.NewAuthUseCase(repos.Businesses, tx, businessUC, memory.NewSessionStore(), auth.JWTConfig{
		Secret: "test-secret", ExpMinutes: 60, Issuer: "bravo-menu-test",
	})
	deps := apphttp.RouterDeps{
		AuthUC:     authUC,
		BusinessUC: businessUC,
		ProductUC:  usecase.NewProductUseCase(repos.Products, repos.Categories, businessUC),
		CategoryUC: usecase.NewCategoryUseCase(repos, tx, businessUC),
		EventUC:    usecase.NewEventUseCase(repos.Events, businessUC),
		BannerUC:   usecase.NewBannerUseCase(repos.Banners, businessUC),
		LeadUC:     usecase.NewLeadUseCase(repos.Leads, businessUC),
		OrderUC:    usecase.NewOrderUseCase(businessUC, "es"),
		MediaUC:    usecase.NewMediaUseCase(storage.NewLocalStorageFs(afero.NewMemMapFs(), "/uploads"), imaging.NewCompressor(70), businessUC, nil),
		AdminUC:    usecase.NewAdminUseCase(businessUC, ent, 500),
	}
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	apphttp.Router(app, deps)
	return &testServer{app: app, store: store}
}

// seedAdmin crea la cuenta del súper administrador directamente en el almacén.
func (s *testServer) seedAdmin(t *testing.T) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.MinCost)
	require.NoError(t, err)
	now := time.Now()
	require.NoError(t, s.store.Repositories().Businesses.Create(context.Background(), &entity.Business{
		ID: "admin-1", Name: "Bravo Menú", Type: entity.TypeRestaurant, Province: "La Habana", Municipality: "Playa",
		Phone: adminPhone, PasswordHash: string(hash), Plan: entity.PlanFree, Role: entity.RoleAdmin,
		CreatedAt: now, UpdatedAt: now,
	}))
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	out := map[string]any{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

// register registra un negocio y devuelve (token, id).
func (s *testServer) register(t *testing.T, phone string) (string, string) {
	t.Helper()
	code, body := s.do(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name": "La Bodeguita", "phone": phone, "password": "secreto1",
		"province": "La Habana", "municipality": "Habana Vieja",
	})
	require.Equal(t, http.StatusCreated, code, body)
	business := body["business"].(map[string]any)
	return body["token"].(string), business["id"].(string)
}

func TestRegisterLoginMe(t *testing.T) {
	s := newTestServer(t)
	token, id := s.register(t, "53000001")

	code, me := s.do(t, http.MethodGet, "/api/me", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, id, me["id"])
	assert.Equal(t, "FREE", me["plan"])
	assert.Equal(t, true, me["is_visible"])

	code, cats := s.do(t, http.MethodGet, "/api/me/categories", token, nil)
	require.Equal(t, http.StatusOK, code)
	_ = cats

	code, body := s.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{"phone": "53000001", "password": "secreto1"})
	assert.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, body["token"])

	code, body = s.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{"phone": "53000001", "password": "incorrecta"})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "UNAUTHORIZED", body["code"])
}

func TestRegister_TelefonoDuplicado_409(t *testing.T) {
	s := newTestServer(t)
	s.register(t, "53000002")
	code, body := s.do(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name": "Otro", "phone": "53000002", "password": "secreto1",
		"province": "La Habana", "municipality": "Playa",
	})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "DUPLICATE", body["code"])
}

func TestRegister_ValidacionYJSONMalFormado(t *testing.T) {
	s := newTestServer(t)
	code, body := s.do(t, http.MethodPost, "/api/auth/register", "", map[string]any{"name": "X"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION", body["code"])

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString("{no-json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProducto_VisiblePorDefectoYSanitizado(t *testing.T) {
	s := newTestServer(t)
	token, id := s.register(t, "53000003")

	code, p := s.do(t, http.MethodPost, "/api/me/products", token, map[string]any{
		"name": "Pizza <b>napolitana</b><script>alert(1)</script>", "price": 1200,
	})
	require.Equal(t, http.StatusCreated, code, p)
	assert.Equal(t, "Pizza napolitana", p["name"])
	assert.Equal(t, true, p["is_visible"])

	code, _ = s.do(t, http.MethodPatch, "/api/me/products/"+p["id"].(string)+"/visibility", token, map[string]any{"is_visible": false})
	require.Equal(t, http.StatusOK, code)

	req := httptest.NewRequest(http.MethodGet, "/api/businesses/"+id+"/products", nil)
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	var public []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&public))
	assert.Empty(t, public)
}

func TestProducto_SanitizaTextoCodificado(t *testing.T) {
	s := newTestServer(t)
	token, _ := s.register(t, "53000013")

	cases := []struct {
		in   string
		want string
	}{
		{"&lt;script&gt;alert(1)&lt;/script&gt;Mojito", "Mojito"},
		{"&amp;lt;img src=x onerror=alert(1)&amp;gt;Flan", "Flan"},
		{"Café & Ron \"Havana\"", "Café & Ron \"Havana\""},
	}
	for _, tc := range cases {
		code, p := s.do(t, http.MethodPost, "/api/me/products", token, map[string]any{"name": tc.in, "price": 100})
		require.Equal(t, http.StatusCreated, code, p)
		assert.Equal(t, tc.want, p["name"], tc.in)
		assert.NotContains(t, p["name"], "<")
	}
}

func TestEventos_RequierenPlanPro(t *testing.T) {
	s := newTestServer(t)
	s.seedAdmin(t)
	token, id := s.register(t, "53000004")

	code, body := s.do(t, http.MethodGet, "/api/me/events", token, nil)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "PLAN_REQUIRED", body["code"])

	_, login := s.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{"phone": adminPhone, "password": adminPassword})
	adminToken := login["token"].(string)

	code, tr := s.do(t, http.MethodPost, "/api/admin/businesses/"+id+"/pro", adminToken, map[string]any{"days": 30})
	require.Equal(t, http.StatusOK, code, tr)
	assert.Equal(t, "committed", tr["state"])

	code, _ = s.do(t, http.MethodPost, "/api/me/events", token, map[string]any{
		"title": "Noche de son", "date_time": time.Now().Add(48 * time.Hour).Format(time.RFC3339),
	})
	assert.Equal(t, http.StatusCreated, code)
}

func TestAdmin_UsuarioNormal_403(t *testing.T) {
	s := newTestServer(t)
	token, _ := s.register(t, "53000005")
	code, body := s.do(t, http.MethodGet, "/api/admin/stats", token, nil)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "FORBIDDEN", body["code"])
}

func TestSesion_NegocioEliminado_SessionEnded(t *testing.T) {
	s := newTestServer(t)
	token, _ := s.register(t, "53000006")

	code, _ := s.do(t, http.MethodGet, "/api/auth/session", token, nil)
	require.Equal(t, http.StatusOK, code)

	code, _ = s.do(t, http.MethodDelete, "/api/me", token, nil)
	require.Equal(t, http.StatusOK, code)

	code, body := s.do(t, http.MethodGet, "/api/auth/session", token, nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "SESSION_ENDED", body["code"])

	code, _ = s.do(t, http.MethodGet, "/api/auth/session", token, nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestPedido_PlanGratuito_OrderingDisabled(t *testing.T) {
	s := newTestServer(t)
	token, id := s.register(t, "53000007")
	_, p := s.do(t, http.MethodPost, "/api/me/products", token, map[string]any{"name": "Café", "price": 50})

	code, body := s.do(t, http.MethodPost, "/api/businesses/"+id+"/orders", "", map[string]any{
		"items":         []map[string]any{{"product_id": p["id"], "quantity": 2}},
		"zone":          "inside",
		"receiver_name": "Ana",
		"client_phone":  "53111111",
	})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "ORDERING_DISABLED", body["code"])
}

func TestPublico_DirectorioYCalificacion(t *testing.T) {
	s := newTestServer(t)
	_, id := s.register(t, "53000008")

	code, _ := s.do(t, http.MethodGet, "/api/businesses/"+id, "", nil)
	require.Equal(t, http.StatusOK, code)

	code, body := s.do(t, http.MethodPost, "/api/businesses/"+id+"/ratings", "", map[string]any{"stars": 4})
	require.Equal(t, http.StatusOK, code, body)

	code, body = s.do(t, http.MethodPost, "/api/businesses/"+id+"/ratings", "", map[string]any{"stars": 9})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION", body["code"])

	code, _ = s.do(t, http.MethodGet, "/api/businesses/no-existe", "", nil)
	assert.Equal(t, http.StatusNotFound, code)
}
