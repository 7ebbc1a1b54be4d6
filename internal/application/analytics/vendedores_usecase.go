package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tecnolife/dashboard-vendas/internal/application/dto"
	"github.com/tecnolife/dashboard-vendas/internal/domain"
	"github.com/tecnolife/dashboard-vendas/internal/domain/entity"
	"github.com/tecnolife/dashboard-vendas/pkg/brformat"
)

// VendedoresUseCase métricas de desempenho da equipe de vendas em um
// período, com recorte opcional por vendedor.
type VendedoresUseCase struct {
	store Snapshot
}

// NewVendedoresUseCase constrói o caso de uso.
func NewVendedoresUseCase(store Snapshot) *VendedoresUseCase {
	return &VendedoresUseCase{store: store}
}

// Metricas agrega pedidos, faturamento e ticket médio por vendedor no
// período, mais a evolução mensal do conjunto filtrado. Pedido = nota
// fiscal distinta, não linha de item. Período sem linhas devolve listas
// vazias e SemDados, nunca erro.
func (uc *VendedoresUseCase) Metricas(inicio, fim string, vendedores []string) (*dto.MetricasVendedoresDTO, error) {
	ds := uc.store.Atual()
	if ds == nil {
		return nil, domain.ErrDatasetNaoCarregado
	}

	ini, fimT, err := parsePeriodo(inicio, fim, ds.Linhas)
	if err != nil {
		return nil, err
	}
	linhas := filtrarPorPeriodo(ds.Linhas, ini, fimT)
	if len(vendedores) > 0 {
		permitidos := make(map[string]bool, len(vendedores))
		for _, v := range vendedores {
			permitidos[v] = true
		}
		var recorte []entity.LinhaFaturamento
		for i := range linhas {
			if permitidos[linhas[i].Vendedor] {
				recorte = append(recorte, linhas[i])
			}
		}
		linhas = recorte
	}

	resp := &dto.MetricasVendedoresDTO{
		Periodo: dto.PeriodoDTO{
			Inicio: ini.Format(layoutDia),
			Fim:    fimT.Format(layoutDia),
		},
		Vendedores: []dto.MetricaVendedorDTO{},
		Evolucao:   []dto.EvolucaoMensalDTO{},
	}
	if len(linhas) == 0 {
		resp.SemDados = true
		return resp, nil
	}

	// ── Métricas por vendedor ──────────────────────────────────────
	type acumulador struct {
		notas map[int64]bool
		total decimal.Decimal
	}
	porVendedor := make(map[string]*acumulador)
	for i := range linhas {
		v := linhas[i].Vendedor
		acc := porVendedor[v]
		if acc == nil {
			acc = &acumulador{notas: make(map[int64]bool)}
			porVendedor[v] = acc
		}
		acc.notas[linhas[i].Nota] = true
		acc.total = acc.total.Add(linhas[i].ValorNota)
	}

	for nome, acc := range porVendedor {
		pedidos := len(acc.notas)
		ticket := divisaoSegura(acc.total, int64(pedidos), 2)
		resp.Vendedores = append(resp.Vendedores, dto.MetricaVendedorDTO{
			Vendedor:       nome,
			Pedidos:        pedidos,
			Total:          acc.total,
			TotalFmt:       brformat.FormatarMoeda(acc.total),
			TicketMedio:    ticket,
			TicketMedioFmt: brformat.FormatarMoeda(ticket),
		})
	}
	sort.Slice(resp.Vendedores, func(i, j int) bool {
		return resp.Vendedores[i].Vendedor < resp.Vendedores[j].Vendedor
	})
	sort.SliceStable(resp.Vendedores, func(i, j int) bool {
		return resp.Vendedores[i].Pedidos > resp.Vendedores[j].Pedidos
	})

	// ── Evolução mensal ────────────────────────────────────────────
	somasMes := make(map[string]decimal.Decimal)
	for i := range linhas {
		chave := linhas[i].Data.Format("2006-01")
		somasMes[chave] = somasMes[chave].Add(linhas[i].ValorNota)
	}
	for periodo, total := range somasMes {
		resp.Evolucao = append(resp.Evolucao, dto.EvolucaoMensalDTO{
			Periodo:        periodo,
			Faturamento:    total,
			FaturamentoFmt: brformat.FormatarMoeda(total),
		})
	}
	sort.Slice(resp.Evolucao, func(i, j int) bool {
		return resp.Evolucao[i].Periodo < resp.Evolucao[j].Periodo
	})

	return resp, nil
}
