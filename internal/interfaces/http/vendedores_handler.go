package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/tecnolife/dashboard-vendas/internal/application/analytics"
	"github.com/tecnolife/dashboard-vendas/internal/application/dto"
)

// VendedoresHandler endpoints de desempenho da equipe de vendas.
type VendedoresHandler struct {
	uc *appanalytics.VendedoresUseCase
}

// NewVendedoresHandler constrói o handler.
func NewVendedoresHandler(uc *appanalytics.VendedoresUseCase) *VendedoresHandler {
	return &VendedoresHandler{uc: uc}
}

// Metricas pedidos, faturamento e ticket médio por vendedor no período,
// mais a evolução mensal. Datas vazias usam o intervalo completo do
// conjunto.
// GET /api/vendedores/metricas?inicio=2024-01-01&fim=2024-06-30&vendedores=A,B
func (h *VendedoresHandler) Metricas(c *fiber.Ctx) error {
	var req dto.MetricasVendedoresRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "ENTRADA_INVALIDA", Message: "parâmetros de consulta inválidos",
		})
	}

	metricas, err := h.uc.Metricas(req.Inicio, req.Fim, appanalytics.ParseListaNomes(req.Vendedores))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(metricas)
}
