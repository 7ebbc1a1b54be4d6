package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/tecnolife/dashboard-vendas/internal/application/analytics"
	"github.com/tecnolife/dashboard-vendas/internal/application/dto"
)

// ClientesHandler endpoint da análise de carteira.
type ClientesHandler struct {
	uc *appanalytics.ClientesUseCase
}

// NewClientesHandler constrói o handler.
func NewClientesHandler(uc *appanalytics.ClientesUseCase) *ClientesHandler {
	return &ClientesHandler{uc: uc}
}

// Analise análise completa da carteira no período: ranking, recência,
// distribuição geográfica, mix de categorias, concentração e Pareto.
// GET /api/clientes/analise?inicio=2024-01-01&fim=2024-12-31&ufs=SP,RJ
func (h *ClientesHandler) Analise(c *fiber.Ctx) error {
	var req dto.AnaliseClientesRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "ENTRADA_INVALIDA", Message: "parâmetros de consulta inválidos",
		})
	}

	analise, err := h.uc.Analise(req.Inicio, req.Fim, appanalytics.ParseListaNomes(req.UFs))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(analise)
}
