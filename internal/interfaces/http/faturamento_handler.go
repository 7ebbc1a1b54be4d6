package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/tecnolife/dashboard-vendas/internal/application/analytics"
)

// FaturamentoHandler endpoints dos agregados da visão de vendas.
// Todos aceitam ?anos=2023,2024 (filtro pelo ano de emissão).
type FaturamentoHandler struct {
	uc *appanalytics.FaturamentoUseCase
}

// NewFaturamentoHandler constrói o handler.
func NewFaturamentoHandler(uc *appanalytics.FaturamentoUseCase) *FaturamentoHandler {
	return &FaturamentoHandler{uc: uc}
}

// PorEstado faturamento somado por estado/país de destino, com coordenadas
// e tamanho de bolha para o mapa.
// GET /api/faturamento/estados
func (h *FaturamentoHandler) PorEstado(c *fiber.Ctx) error {
	anos, err := appanalytics.ParseListaAnos(c.Query("anos"))
	if err != nil {
		return responderErro(c, err)
	}
	estados, err := h.uc.PorEstado(anos)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(estados)
}

// Top5Estados os cinco estados de maior faturamento (sem o bucket EX).
// GET /api/faturamento/estados/top5
func (h *FaturamentoHandler) Top5Estados(c *fiber.Ctx) error {
	anos, err := appanalytics.ParseListaAnos(c.Query("anos"))
	if err != nil {
		return responderErro(c, err)
	}
	estados, err := h.uc.Top5Estados(anos)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(estados)
}

// PorMes faturamento mês a mês, em ordem cronológica.
// GET /api/faturamento/meses
func (h *FaturamentoHandler) PorMes(c *fiber.Ctx) error {
	anos, err := appanalytics.ParseListaAnos(c.Query("anos"))
	if err != nil {
		return responderErro(c, err)
	}
	meses, err := h.uc.PorMes(anos)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(meses)
}

// PorSubGrupo faturamento por sub-categoria, zero-preenchido contra a
// lista de referência do snapshot.
// GET /api/faturamento/subgrupos
func (h *FaturamentoHandler) PorSubGrupo(c *fiber.Ctx) error {
	anos, err := appanalytics.ParseListaAnos(c.Query("anos"))
	if err != nil {
		return responderErro(c, err)
	}
	subGrupos, err := h.uc.PorSubGrupo(anos)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(subGrupos)
}

// Top5SubGrupos as cinco sub-categorias de maior faturamento.
// GET /api/faturamento/subgrupos/top5
func (h *FaturamentoHandler) Top5SubGrupos(c *fiber.Ctx) error {
	anos, err := appanalytics.ParseListaAnos(c.Query("anos"))
	if err != nil {
		return responderErro(c, err)
	}
	subGrupos, err := h.uc.Top5SubGrupos(anos)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(subGrupos)
}

// Resumo KPIs gerais da visão de vendas.
// GET /api/faturamento/resumo
func (h *FaturamentoHandler) Resumo(c *fiber.Ctx) error {
	anos, err := appanalytics.ParseListaAnos(c.Query("anos"))
	if err != nil {
		return responderErro(c, err)
	}
	resumo, err := h.uc.Resumo(anos)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(resumo)
}
