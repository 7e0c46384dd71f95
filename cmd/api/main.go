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
	"github.com/stashkeeper/stashkeeper-api/internal/application/auth"
	"github.com/stashkeeper/stashkeeper-api/internal/application/report"
	"github.com/stashkeeper/stashkeeper-api/internal/application/stock"
	"github.com/stashkeeper/stashkeeper-api/internal/application/usecase"
	infrapdf "github.com/stashkeeper/stashkeeper-api/internal/infrastructure/pdf"
	"github.com/stashkeeper/stashkeeper-api/internal/infrastructure/postgres"
	httpRouter "github.com/stashkeeper/stashkeeper-api/internal/interfaces/http"
	"github.com/stashkeeper/stashkeeper-api/pkg/config"
	"github.com/stashkeeper/stashkeeper-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()

	if err := postgres.RunMigrations(cfg.DB.ConnectionString(), log); err != nil {
		log.Fatal().Err(err).Msg("migrações")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := usecase.NewProductUseCase(productRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	registerMovementUC := stock.NewRegisterMovementUseCase(txRunner, productRepo)
	deleteMovementUC := stock.NewDeleteMovementUseCase(txRunner)
	listMovementsUC := stock.NewListMovementsUseCase(movementRepo)
	validateStockUC := stock.NewValidateStockUseCase(productRepo)
	recalculateUC := stock.NewRecalculateUseCase(txRunner, productRepo)

	pdfGenerator := infrapdf.NewStockReportGenerator()
	reportUC := report.NewReportUseCase(productRepo, pdfGenerator)

	authUC := auth.NewAuthUseCase(employeeRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Consumidor LISTEN/NOTIFY do razão de movimentações
	listenCtx, stopListener := context.WithCancel(ctx)
	defer stopListener()
	listener := postgres.NewListener(pool, log)
	go listener.Run(listenCtx)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	// O arquivo é gerado pelo swag CLI; sem ele a API sobe sem a UI.
	const swaggerFile = "./docs/swagger.json"
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "StashKeeper API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger.json não encontrado; UI de documentação desabilitada")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		ProductUC:        productUC,
		CategoryUC:       categoryUC,
		EmployeeUC:       employeeUC,
		RegisterMovement: registerMovementUC,
		DeleteMovement:   deleteMovementUC,
		ListMovements:    listMovementsUC,
		ValidateStock:    validateStockUC,
		Recalculate:      recalculateUC,
		ReportUC:         reportUC,
		JWTSecret:        cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	stopListener()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação finalizada")
}
