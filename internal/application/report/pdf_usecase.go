// Package report monta o relatório executivo de vendas em PDF a partir
// dos agregados do dashboard.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/tecnolife/dashboard-vendas/internal/application/analytics"
	"github.com/tecnolife/dashboard-vendas/internal/application/dto"
	"github.com/tecnolife/dashboard-vendas/internal/domain"
)

// RelatorioVendas é o insumo do gerador: os mesmos agregados servidos
// pela API, já filtrados e formatados.
type RelatorioVendas struct {
	Empresa       string
	Anos          []int // filtro aplicado; vazio = todos os anos
	GeradoEm      time.Time
	VersaoDataset string

	Resumo       dto.ResumoFaturamentoDTO
	TopEstados   []dto.FaturamentoEstadoDTO
	PorMes       []dto.FaturamentoMesDTO
	TopSubGrupos []dto.FaturamentoSubGrupoDTO
}

// GeradorPDF porta do renderizador do documento.
type GeradorPDF interface {
	GerarRelatorio(ctx context.Context, rel *RelatorioVendas) ([]byte, error)
}

// RelatorioUseCase compõe os agregados do dashboard no relatório e
// delega a renderização ao gerador.
type RelatorioUseCase struct {
	empresa     string
	store       analytics.Snapshot
	faturamento *analytics.FaturamentoUseCase
	gerador     GeradorPDF
}

// NewRelatorioUseCase constrói o caso de uso.
func NewRelatorioUseCase(empresa string, store analytics.Snapshot, faturamento *analytics.FaturamentoUseCase, gerador GeradorPDF) *RelatorioUseCase {
	return &RelatorioUseCase{empresa: empresa, store: store, faturamento: faturamento, gerador: gerador}
}

// Gerar produz o PDF do relatório para o filtro de anos informado.
func (uc *RelatorioUseCase) Gerar(ctx context.Context, anos []int) ([]byte, error) {
	ds := uc.store.Atual()
	if ds == nil {
		return nil, domain.ErrDatasetNaoCarregado
	}

	resumo, err := uc.faturamento.Resumo(anos)
	if err != nil {
		return nil, err
	}
	topEstados, err := uc.faturamento.Top5Estados(anos)
	if err != nil {
		return nil, err
	}
	porMes, err := uc.faturamento.PorMes(anos)
	if err != nil {
		return nil, err
	}
	topSubGrupos, err := uc.faturamento.Top5SubGrupos(anos)
	if err != nil {
		return nil, err
	}

	rel := &RelatorioVendas{
		Empresa:       uc.empresa,
		Anos:          anos,
		GeradoEm:      time.Now(),
		VersaoDataset: ds.Versao.String(),
		Resumo:        *resumo,
		TopEstados:    topEstados,
		PorMes:        porMes,
		TopSubGrupos:  topSubGrupos,
	}

	bytes, err := uc.gerador.GerarRelatorio(ctx, rel)
	if err != nil {
		return nil, fmt.Errorf("gerar relatório: %w", err)
	}
	return bytes, nil
}
