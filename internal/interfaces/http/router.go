package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bravo-menu-api/internal/application/auth"
	"github.com/jhoicas/bravo-menu-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	BusinessUC *usecase.BusinessUseCase
	ProductUC  *usecase.ProductUseCase
	CategoryUC *usecase.CategoryUseCase
	EventUC    *usecase.EventUseCase
	BannerUC   *usecase.BannerUseCase
	LeadUC     *usecase.LeadUseCase
	OrderUC    *usecase.OrderUseCase
	MediaUC    *usecase.MediaUseCase
	AdminUC    *usecase.AdminUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", SanitizeInput())
	requireAuth := AuthMiddleware(deps.AuthUC)

	authHandler := NewAuthHandler(deps.AuthUC)
	businessHandler := NewBusinessHandler(deps.BusinessUC)
	productHandler := NewProductHandler(deps.ProductUC)
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	eventHandler := NewEventHandler(deps.EventUC)
	bannerHandler := NewBannerHandler(deps.BannerUC)
	leadHandler := NewLeadHandler(deps.LeadUC)
	mediaHandler := NewMediaHandler(deps.MediaUC)
	publicHandler := NewPublicHandler(deps.BusinessUC, deps.OrderUC)
	adminHandler := NewAdminHandler(deps.AdminUC)

	// Auth
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/session", requireAuth, authHandler.Session)
	authGroup.Post("/logout", requireAuth, authHandler.Logout)

	// Público
	businesses := api.Group("/businesses")
	businesses.Get("/", publicHandler.Directory)
	businesses.Get("/:id", publicHandler.Detail)
	businesses.Get("/:id/products", publicHandler.Products)
	businesses.Post("/:id/orders", publicHandler.Order)
	businesses.Post("/:id/ratings", publicHandler.Rate)
	businesses.Post("/:id/visits", publicHandler.Visit)
	businesses.Post("/:id/leads", leadHandler.Create)
	api.Post("/banners/:id/clicks", bannerHandler.Click)
	api.Post("/events/:id/interest", eventHandler.Interest)

	// Dueño del negocio (requiere Bearer Token)
	me := api.Group("/me", requireAuth)
	me.Get("/", businessHandler.Me)
	me.Patch("/", businessHandler.Update)
	me.Delete("/", businessHandler.Delete)
	me.Get("/settings", businessHandler.Settings)
	me.Get("/menu.pdf", businessHandler.MenuPDF)

	products := me.Group("/products")
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Patch("/:id", productHandler.Update)
	products.Patch("/:id/visibility", productHandler.SetVisibility)
	products.Delete("/:id", productHandler.Delete)

	categories := me.Group("/categories")
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Put("/:id", categoryHandler.Rename)
	categories.Delete("/:id", categoryHandler.Delete)

	events := me.Group("/events", RequireFeature(usecase.FeatureEvents, deps.BusinessUC))
	events.Get("/", eventHandler.List)
	events.Post("/", eventHandler.Create)
	events.Patch("/:id", eventHandler.Update)
	events.Delete("/:id", eventHandler.Delete)

	banners := me.Group("/banners", RequireFeature(usecase.FeatureBanners, deps.BusinessUC))
	banners.Get("/", bannerHandler.List)
	banners.Post("/", bannerHandler.Create)
	banners.Patch("/:id", bannerHandler.Update)
	banners.Delete("/:id", bannerHandler.Delete)

	me.Get("/leads", leadHandler.List)
	me.Post("/media/:kind", mediaHandler.Upload)

	// Súper administrador
	admin := api.Group("/admin", requireAuth, RequireAdmin())
	admin.Get("/businesses", adminHandler.List)
	admin.Get("/stats", adminHandler.Stats)
	admin.Post("/businesses/:id/pro", adminHandler.GrantPro)
	admin.Delete("/businesses/:id/pro", adminHandler.RevokePro)
	admin.Patch("/businesses/:id/visibility", adminHandler.SetVisibility)
	admin.Delete("/businesses/:id", adminHandler.Delete)
}
