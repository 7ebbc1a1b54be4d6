package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/tecnolife/dashboard-vendas/internal/application/analytics"
	"github.com/tecnolife/dashboard-vendas/internal/application/report"
)

// RelatorioHandler endpoint do relatório executivo em PDF.
type RelatorioHandler struct {
	uc *report.RelatorioUseCase
}

// NewRelatorioHandler constrói o handler.
func NewRelatorioHandler(uc *report.RelatorioUseCase) *RelatorioHandler {
	return &RelatorioHandler{uc: uc}
}

// Gerar download do relatório de vendas com o filtro de anos aplicado.
// GET /api/relatorio/pdf?anos=2023,2024
func (h *RelatorioHandler) Gerar(c *fiber.Ctx) error {
	anos, err := appanalytics.ParseListaAnos(c.Query("anos"))
	if err != nil {
		return responderErro(c, err)
	}

	pdf, err := h.uc.Gerar(c.Context(), anos)
	if err != nil {
		return responderErro(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="relatorio_vendas.pdf"`)
	return c.Send(pdf)
}
