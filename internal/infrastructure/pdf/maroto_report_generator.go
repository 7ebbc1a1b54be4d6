// Package pdf renderiza o relatório executivo de vendas com Maroto v2.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + título  │  Anos filtrados + data geração  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: Faturamento | Clientes | Ticket médio                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Top 5 estados por faturamento                       │
//	│  TABELA: Faturamento mês a mês                               │
//	│  TABELA: Top 5 sub-categorias                                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: versão do snapshot + observação                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tecnolife/dashboard-vendas/internal/application/report"
	"github.com/tecnolife/dashboard-vendas/pkg/brformat"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	corPrimaria = &props.Color{Red: 13, Green: 71, Blue: 161}
	corCinza    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Gerador ───────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa report.GeradorPDF usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator constrói o gerador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GerarRelatorio renderiza o relatório e devolve os bytes do PDF.
func (g *MarotoReportGenerator) GerarRelatorio(_ context.Context, rel *report.RelatorioVendas) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de Vendas", true).
		WithAuthor(rel.Empresa, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(cabecalhoRow(rel))
	m.AddRows(line.NewRow(1, props.Line{Color: corPrimaria, Thickness: 0.5}))
	m.AddRows(kpisRow(rel))
	m.AddRows(line.NewRow(1, props.Line{Color: corPrimaria, Thickness: 0.3}))

	m.AddRows(tituloSecaoRow("TOP 5 ESTADOS POR FATURAMENTO"))
	m.AddRows(tabelaEstadosHeaderRow())
	for _, e := range rel.TopEstados {
		m.AddRows(row.New(6).Add(
			col.New(2).Add(text.New(e.UF, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(6).Add(text.New(e.Nome, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(4).Add(text.New(e.FaturamentoFmt, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}

	m.AddRows(tituloSecaoRow("FATURAMENTO MÊS A MÊS"))
	m.AddRows(tabelaMesesHeaderRow())
	for _, p := range rel.PorMes {
		m.AddRows(row.New(6).Add(
			col.New(5).Add(text.New(p.Mes, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(3).Add(text.New(strconv.Itoa(p.Ano), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(4).Add(text.New(p.FaturamentoFmt, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}

	m.AddRows(tituloSecaoRow("TOP 5 SUB-CATEGORIAS"))
	for _, sg := range rel.TopSubGrupos {
		m.AddRows(row.New(6).Add(
			col.New(8).Add(text.New(sg.SubGrupo, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(4).Add(text.New(sg.FaturamentoFmt, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: corCinza, Thickness: 0.3}))
	m.AddRows(rodapeRow(rel))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// cabecalhoRow: empresa + título (esq) e filtro de anos + data (dir).
func cabecalhoRow(rel *report.RelatorioVendas) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(rel.Empresa, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: corPrimaria, Top: 1,
			}),
			text.New("Relatório de Vendas", props.Text{
				Size: 9, Top: 9, Color: corCinza,
			}),
		),
		col.New(5).Add(
			text.New(rotuloAnos(rel.Anos), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 3,
			}),
			text.New("Gerado em: "+brformat.FormatarDataHora(rel.GeradoEm), props.Text{
				Size: 8, Align: align.Right, Top: 11, Color: corCinza,
			}),
		),
	)
}

// kpisRow: os três indicadores principais lado a lado.
func kpisRow(rel *report.RelatorioVendas) core.Row {
	kpi := func(rotulo, valor string) core.Col {
		return col.New(4).Add(
			text.New(rotulo, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center,
				Color: corCinza, Top: 1,
			}),
			text.New(valor, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center,
				Color: corPrimaria, Top: 7,
			}),
		)
	}
	return row.New(16).Add(
		kpi("FATURAMENTO TOTAL", rel.Resumo.FaturamentoTotalFmt),
		kpi("CLIENTES", rel.Resumo.TotalClientesFmt),
		kpi("TICKET MÉDIO", rel.Resumo.TicketMedioFmt),
	)
}

func tituloSecaoRow(titulo string) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(titulo, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: corPrimaria, Top: 4,
		}),
	))
}

func tabelaEstadosHeaderRow() core.Row {
	return row.New(7).Add(
		cabecalhoTabela("UF", 2, align.Center),
		cabecalhoTabela("Estado / País", 6, align.Left),
		cabecalhoTabela("Faturamento", 4, align.Right),
	)
}

func tabelaMesesHeaderRow() core.Row {
	return row.New(7).Add(
		cabecalhoTabela("Mês", 5, align.Left),
		cabecalhoTabela("Ano", 3, align.Center),
		cabecalhoTabela("Faturamento", 4, align.Right),
	)
}

func cabecalhoTabela(rotulo string, tamanho int, a align.Type) core.Col {
	return col.New(tamanho).Add(text.New(rotulo, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a,
		Color: corPrimaria, Top: 2, Left: 1, Right: 1,
	}))
}

// rodapeRow: versão do snapshot para rastrear de qual carga o relatório saiu.
func rodapeRow(rel *report.RelatorioVendas) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Relatório gerado a partir do snapshot "+rel.VersaoDataset+
				". Valores somados sobre o valor de nota fiscal.",
			props.Text{Size: 6.5, Color: corCinza, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// rotuloAnos "Anos: 2023, 2024" ou "Todos os anos" quando sem filtro.
func rotuloAnos(anos []int) string {
	if len(anos) == 0 {
		return "Todos os anos"
	}
	partes := make([]string, len(anos))
	for i, a := range anos {
		partes[i] = strconv.Itoa(a)
	}
	return "Anos: " + strings.Join(partes, ", ")
}
