package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tecnolife/dashboard-vendas/internal/application/dto"
	"github.com/tecnolife/dashboard-vendas/internal/domain"
	"github.com/tecnolife/dashboard-vendas/internal/infrastructure/cubo"
)

// responderErro traduz erros de domínio em respostas HTTP. Apenas a
// indisponibilidade do feed e o dataset ausente são condições de serviço;
// o restante é erro de entrada do cliente.
func responderErro(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrDatasetNaoCarregado):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Code: "DATASET_NAO_CARREGADO", Message: err.Error(),
		})
	case errors.Is(err, cubo.ErrFeedIndisponivel):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Code: "FEED_INDISPONIVEL", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrColunaDesconhecida), errors.Is(err, domain.ErrEntradaInvalida):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "ENTRADA_INVALIDA", Message: err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
}
