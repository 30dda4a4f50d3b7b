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

	"github.com/umkone/umkone-api/internal/application/auth"
	"github.com/umkone/umkone-api/internal/application/usecase"
	"github.com/umkone/umkone-api/internal/infrastructure/export"
	"github.com/umkone/umkone-api/internal/infrastructure/memory"
	httpRouter "github.com/umkone/umkone-api/internal/interfaces/http"
	"github.com/umkone/umkone-api/pkg/config"
	"github.com/umkone/umkone-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("muat konfigurasi: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("menjalankan aplikasi")

	// Seluruh data hidup di memori; restart berarti kembali ke katalog contoh.
	stores := memory.NewStores()
	if err := stores.Seed(); err != nil {
		log.Fatal().Err(err).Msg("isi katalog contoh")
	}

	exporters := map[string]usecase.ReportExporter{
		"json": export.NewJSONExporter(),
		"xml":  export.NewXMLExporter(),
		"xlsx": export.NewExcelExporter(),
		"pdf":  export.NewPDFExporter(),
	}

	productUC := usecase.NewProductUseCase(stores.Products)
	materialUC := usecase.NewMaterialUseCase(stores.Materials)
	compositionUC := usecase.NewCompositionUseCase(stores.Compositions, stores.Products, stores.Materials)
	productionCostUC := usecase.NewProductionCostUseCase(stores.LaborRates, stores.Overheads)
	cashflowUC := usecase.NewCashflowUseCase(stores.Incomes, stores.Expenses)
	hppUC := usecase.NewHPPUseCase(
		stores.Products, stores.Materials, stores.Compositions,
		stores.LaborRates, stores.Overheads,
	)
	reportUC := usecase.NewReportUseCase(
		stores.Incomes, stores.Expenses,
		stores.Products, stores.Materials, stores.Compositions,
		exporters,
	)
	authUC := auth.NewAuthUseCase(stores.Users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI lokal: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Umkone API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:        productUC,
		MaterialUC:       materialUC,
		CompositionUC:    compositionUC,
		ProductionCostUC: productionCostUC,
		CashflowUC:       cashflowUC,
		HPPUC:            hppUC,
		ReportUC:         reportUC,
		AuthUC:           authUC,
		JWTSecret:        cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("server HTTP berhenti")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinyal berhenti diterima, menutup server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("penutupan server")
	}

	log.Info().Msg("aplikasi berhenti")
}
