package http

import (
	"github.com/gofiber/fiber/v2"

	appdataset "github.com/tecnolife/dashboard-vendas/internal/application/dataset"
	"github.com/tecnolife/dashboard-vendas/internal/application/dto"
)

// DatasetHandler endpoints da tabela detalhada e do ciclo de carga.
type DatasetHandler struct {
	consulta *appdataset.ConsultaUseCase
	carregar *appdataset.CarregarUseCase
}

// NewDatasetHandler constrói o handler.
func NewDatasetHandler(consulta *appdataset.ConsultaUseCase, carregar *appdataset.CarregarUseCase) *DatasetHandler {
	return &DatasetHandler{consulta: consulta, carregar: carregar}
}

// Consultar página da tabela detalhada.
// GET /api/dataset?colunas=Razão Social,Valor Nota&ano=2024&mes=3&busca=...&limit=20&offset=0
//
// Colunas por nome de exibição, projetadas na ordem canônica; valores já
// formatados pt-BR. Resposta: PaginaDatasetDTO.
func (h *DatasetHandler) Consultar(c *fiber.Ctx) error {
	var req dto.ConsultaDatasetRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "ENTRADA_INVALIDA", Message: "parâmetros de consulta inválidos",
		})
	}

	pagina, err := h.consulta.Consultar(req)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(pagina)
}

// Exportar download CSV da tabela com os filtros da consulta aplicados.
// GET /api/dataset/export?ano=2024&mes=3&busca=...
func (h *DatasetHandler) Exportar(c *fiber.Ctx) error {
	var req dto.ConsultaDatasetRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "ENTRADA_INVALIDA", Message: "parâmetros de consulta inválidos",
		})
	}

	csv, err := h.consulta.ExportarCSV(req)
	if err != nil {
		return responderErro(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="faturamento.csv"`)
	return c.Send(csv)
}

// Info metadados do snapshot corrente.
// GET /api/dataset/info
func (h *DatasetHandler) Info(c *fiber.Ctx) error {
	info, err := h.consulta.Info()
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(info)
}

// Recarregar dispara uma nova carga do feed. Em caso de falha o snapshot
// anterior permanece publicado e o erro volta como 502.
// POST /api/dataset/reload
func (h *DatasetHandler) Recarregar(c *fiber.Ctx) error {
	ds, err := h.carregar.Executar(c.Context())
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(fiber.Map{
		"versao":       ds.Versao.String(),
		"total_feed":   ds.TotalFeed,
		"total_linhas": len(ds.Linhas),
	})
}
