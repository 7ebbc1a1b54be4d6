package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/tecnolife/dashboard-vendas/internal/application/analytics"
	appdataset "github.com/tecnolife/dashboard-vendas/internal/application/dataset"
	"github.com/tecnolife/dashboard-vendas/internal/application/report"
	"github.com/tecnolife/dashboard-vendas/internal/infrastructure/configstore"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	ConsultaUC    *appdataset.ConsultaUseCase
	CarregarUC    *appdataset.CarregarUseCase
	FaturamentoUC *appanalytics.FaturamentoUseCase
	VendedoresUC  *appanalytics.VendedoresUseCase
	ClientesUC    *appanalytics.ClientesUseCase
	BudgetUC      *appanalytics.BudgetUseCase
	RelatorioUC   *report.RelatorioUseCase
	ConfigStore   *configstore.FileStore
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Tabela detalhada e ciclo de carga
	datasetGroup := api.Group("/dataset")
	datasetHandler := NewDatasetHandler(deps.ConsultaUC, deps.CarregarUC)
	datasetGroup.Get("/", datasetHandler.Consultar)
	datasetGroup.Get("/export", datasetHandler.Exportar)
	datasetGroup.Get("/info", datasetHandler.Info)
	datasetGroup.Post("/reload", datasetHandler.Recarregar)

	// Agregados da visão de vendas
	faturamento := api.Group("/faturamento")
	faturamentoHandler := NewFaturamentoHandler(deps.FaturamentoUC)
	faturamento.Get("/estados", faturamentoHandler.PorEstado)
	faturamento.Get("/estados/top5", faturamentoHandler.Top5Estados)
	faturamento.Get("/meses", faturamentoHandler.PorMes)
	faturamento.Get("/subgrupos", faturamentoHandler.PorSubGrupo)
	faturamento.Get("/subgrupos/top5", faturamentoHandler.Top5SubGrupos)
	faturamento.Get("/resumo", faturamentoHandler.Resumo)

	// Equipe de vendas
	vendedores := api.Group("/vendedores")
	vendedoresHandler := NewVendedoresHandler(deps.VendedoresUC)
	vendedores.Get("/metricas", vendedoresHandler.Metricas)

	// Carteira de clientes
	clientes := api.Group("/clientes")
	clientesHandler := NewClientesHandler(deps.ClientesUC)
	clientes.Get("/analise", clientesHandler.Analise)

	// Meta anual
	budgetHandler := NewBudgetHandler(deps.BudgetUC)
	api.Get("/budget", budgetHandler.Acompanhamento)

	// Preferências de gráficos
	configGroup := api.Group("/config")
	configHandler := NewConfigHandler(deps.ConfigStore)
	configGroup.Get("/graficos", configHandler.Graficos)
	configGroup.Put("/graficos", configHandler.SalvarGraficos)

	// Relatório executivo
	relatorioHandler := NewRelatorioHandler(deps.RelatorioUC)
	api.Get("/relatorio/pdf", relatorioHandler.Gerar)
}
