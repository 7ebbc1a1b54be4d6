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

	appanalytics "github.com/tecnolife/dashboard-vendas/internal/application/analytics"
	appdataset "github.com/tecnolife/dashboard-vendas/internal/application/dataset"
	"github.com/tecnolife/dashboard-vendas/internal/application/report"
	"github.com/tecnolife/dashboard-vendas/internal/infrastructure/configstore"
	"github.com/tecnolife/dashboard-vendas/internal/infrastructure/cubo"
	"github.com/tecnolife/dashboard-vendas/internal/infrastructure/memoria"
	infrapdf "github.com/tecnolife/dashboard-vendas/internal/infrastructure/pdf"
	httpRouter "github.com/tecnolife/dashboard-vendas/internal/interfaces/http"
	"github.com/tecnolife/dashboard-vendas/pkg/config"
	"github.com/tecnolife/dashboard-vendas/pkg/logger"
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

	// Infra: cliente do feed + snapshot em memória
	feed := cubo.NewClient(cfg.Feed.URL, time.Duration(cfg.Feed.TimeoutSeconds)*time.Second)
	store := memoria.NewDatasetStore()
	configStore := configstore.NewFileStore(cfg.Dashboard.ConfigPath)

	carregarUC := appdataset.NewCarregarUseCase(feed, store, appdataset.OpcoesNormalizacao{
		HorizonteAnos: cfg.Dataset.HorizonteAnos,
	})

	// Carga inicial: sem dataset o serviço não tem o que servir.
	ctx := context.Background()
	ds, err := carregarUC.Executar(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("carga inicial do feed")
	}
	log.Info().
		Str("versao", ds.Versao.String()).
		Int("total_feed", ds.TotalFeed).
		Int("total_linhas", len(ds.Linhas)).
		Msg("dataset carregado")

	consultaUC := appdataset.NewConsultaUseCase(store)
	faturamentoUC := appanalytics.NewFaturamentoUseCase(store)
	vendedoresUC := appanalytics.NewVendedoresUseCase(store)
	clientesUC := appanalytics.NewClientesUseCase(store)
	budgetUC := appanalytics.NewBudgetUseCase(store)
	relatorioUC := report.NewRelatorioUseCase(
		cfg.App.Name, store, faturamentoUC, infrapdf.NewMarotoReportGenerator(),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Dashboard de Vendas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		info, err := consultaUC.Info()
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "sem_dataset", "service": cfg.App.Name,
			})
		}
		return c.JSON(fiber.Map{
			"status": "ok", "service": cfg.App.Name, "dataset": info,
		})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ConsultaUC:    consultaUC,
		CarregarUC:    carregarUC,
		FaturamentoUC: faturamentoUC,
		VendedoresUC:  vendedoresUC,
		ClientesUC:    clientesUC,
		BudgetUC:      budgetUC,
		RelatorioUC:   relatorioUC,
		ConfigStore:   configStore,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
