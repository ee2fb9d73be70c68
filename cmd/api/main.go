// @title        Bravo Menú API
// @version      1.0
// @description  Menús digitales para restaurantes y bares de Cuba.
// @BasePath     /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/swaggo/swag"

	"github.com/jhoicas/bravo-menu-api/docs"
	"github.com/jhoicas/bravo-menu-api/internal/application/auth"
	"github.com/jhoicas/bravo-menu-api/internal/application/ports"
	"github.com/jhoicas/bravo-menu-api/internal/application/usecase"
	"github.com/jhoicas/bravo-menu-api/internal/infrastructure/imaging"
	"github.com/jhoicas/bravo-menu-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/bravo-menu-api/internal/infrastructure/pdf"
	"github.com/jhoicas/bravo-menu-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/bravo-menu-api/internal/infrastructure/redis"
	"github.com/jhoicas/bravo-menu-api/internal/infrastructure/scheduler"
	"github.com/jhoicas/bravo-menu-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/bravo-menu-api/internal/interfaces/http"
	"github.com/jhoicas/bravo-menu-api/pkg/config"
	"github.com/jhoicas/bravo-menu-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Warn().Err(err).Str("timezone", cfg.App.Timezone).Msg("zona horaria desconocida, usando UTC")
		loc = time.UTC
	}

	ctx := context.Background()

	// Datos: PostgreSQL o memoria (demo local)
	var (
		repos ports.Repositories
		tx    ports.TxRunner
	)
	switch cfg.DB.Driver {
	case "memory":
		store := memory.NewStore()
		repos = store.Repositories()
		tx = memory.NewTxRunner(store)
		log.Warn().Msg("repositorios en memoria: los datos se pierden al reiniciar")
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if cfg.DB.AutoMigrate {
			if err := postgres.NewMigrator(pool, log).Up(ctx); err != nil {
				log.Fatal().Err(err).Msg("migraciones")
			}
		}
		repos = postgres.NewRepositories(pool)
		tx = postgres.NewTxRunner(pool)
	}

	// Sesiones: Redis si está configurado
	var sessions auth.SessionStore = memory.NewSessionStore()
	if cfg.Redis.Addr != "" {
		client, err := infraredis.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("conexión a Redis")
		}
		defer client.Close()
		sessions = infraredis.NewSessionStore(client)
	}

	// Imágenes
	var objects ports.ObjectStorage
	switch cfg.Storage.Driver {
	case "supabase":
		objects = storage.NewSupabaseStorage(cfg.Storage.SupabaseURL, cfg.Storage.SupabaseKey, cfg.Storage.Bucket)
	default:
		objects = storage.NewLocalStorage(cfg.Storage.LocalDir, cfg.Storage.LocalPublicURL)
	}

	entitlementUC := usecase.NewEntitlementUseCase(repos.Businesses, log, time.Now, loc)
	businessUC := usecase.NewBusinessUseCase(repos, tx, entitlementUC, infrapdf.NewMarotoMenuGenerator(), cfg.App.PublicSiteURL)
	authUC := auth.NewAuthUseCase(repos.Businesses, tx, businessUC, sessions, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Barrido periódico de planes PRO vencidos
	jobs, err := scheduler.NewManager(loc, log)
	if err != nil {
		log.Fatal().Err(err).Msg("scheduler")
	}
	if cfg.Plans.ReconcileEvery > 0 {
		if err := jobs.RegisterPlanReconciler(entitlementUC, cfg.Plans.ReconcileEvery); err != nil {
			log.Fatal().Err(err).Msg("registrar reconciliador de planes")
		}
	}
	jobs.Start()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    httpRouter.MaxUploadBytes + 1<<20,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	if err != nil {
		log.Fatal().Err(err).Msg("documentación OpenAPI")
	}
	app.Use(swagger.New(swagger.Config{
		BasePath:    "/",
		FileContent: []byte(doc),
		Path:        "docs",
		Title:       "Bravo Menú API",
	}))

	if cfg.Storage.Driver != "supabase" {
		app.Static(cfg.Storage.LocalPublicURL, cfg.Storage.LocalDir)
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		BusinessUC: businessUC,
		ProductUC:  usecase.NewProductUseCase(repos.Products, repos.Categories, businessUC),
		CategoryUC: usecase.NewCategoryUseCase(repos, tx, businessUC),
		EventUC:    usecase.NewEventUseCase(repos.Events, businessUC),
		BannerUC:   usecase.NewBannerUseCase(repos.Banners, businessUC),
		LeadUC:     usecase.NewLeadUseCase(repos.Leads, businessUC),
		OrderUC:    usecase.NewOrderUseCase(businessUC, cfg.App.Locale),
		MediaUC:    usecase.NewMediaUseCase(objects, imaging.NewCompressor(70), businessUC, log),
		AdminUC:    usecase.NewAdminUseCase(businessUC, entitlementUC, cfg.Plans.ProPrice),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if err := jobs.Stop(); err != nil {
		log.Error().Err(err).Msg("apagado del scheduler")
	}

	log.Info().Msg("aplicación detenida")
}
