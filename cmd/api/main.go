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
	appanalytics "github.com/zapcom/resource-pulse-api/internal/application/analytics"
	"github.com/zapcom/resource-pulse-api/internal/application/auth"
	"github.com/zapcom/resource-pulse-api/internal/application/export"
	"github.com/zapcom/resource-pulse-api/internal/application/usecase"
	"github.com/zapcom/resource-pulse-api/internal/infrastructure/postgres"
	httpRouter "github.com/zapcom/resource-pulse-api/internal/interfaces/http"
	"github.com/zapcom/resource-pulse-api/pkg/config"
	"github.com/zapcom/resource-pulse-api/pkg/logger"
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
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	resourceRepo := postgres.NewResourceRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	lookupRepo := postgres.NewLookupRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	resourceUC := usecase.NewResourceUseCase(resourceRepo, txRunner)
	projectUC := usecase.NewProjectUseCase(projectRepo)
	allocationUC := usecase.NewAllocationUseCase(txRunner)
	lookupUC := usecase.NewLookupUseCase(lookupRepo)
	reportUC := usecase.NewReportUseCase(reportRepo)
	analyticsUC := appanalytics.NewAnalyticsUseCase(analyticsRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(dashboardRepo)
	exportUC := export.NewResourceExportUseCase(resourceRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Resource Pulse API",
	}))

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy", "timestamp": time.Now().UTC().Format(time.RFC3339)})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		ResourceUC:   resourceUC,
		ProjectUC:    projectUC,
		AllocationUC: allocationUC,
		LookupUC:     lookupUC,
		ReportUC:     reportUC,
		AnalyticsUC:  analyticsUC,
		DashboardUC:  dashboardUC,
		ExportUC:     exportUC,
		JWTSecret:    cfg.JWT.Secret,
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

	log.Info().Msg("aplicación detenida")
}
