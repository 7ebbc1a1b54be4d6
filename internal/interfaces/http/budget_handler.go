package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/tecnolife/dashboard-vendas/internal/application/analytics"
	"github.com/tecnolife/dashboard-vendas/internal/application/dto"
)

// BudgetHandler endpoint do acompanhamento de meta anual.
type BudgetHandler struct {
	uc *appanalytics.BudgetUseCase
}

// NewBudgetHandler constrói o handler.
func NewBudgetHandler(uc *appanalytics.BudgetUseCase) *BudgetHandler {
	return &BudgetHandler{uc: uc}
}

// Acompanhamento quadro de meta do ano: meta derivada do ano anterior,
// realizado mês a mês, projeção de fechamento e percentual atingido.
// GET /api/budget?ano=2024&percentual_meta=10
func (h *BudgetHandler) Acompanhamento(c *fiber.Ctx) error {
	var req dto.BudgetRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "ENTRADA_INVALIDA", Message: "parâmetros de consulta inválidos",
		})
	}

	budget, err := h.uc.Acompanhamento(req.Ano, req.PercentualMeta)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(budget)
}
