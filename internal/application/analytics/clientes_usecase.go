package analytics

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tecnolife/dashboard-vendas/internal/application/dto"
	"github.com/tecnolife/dashboard-vendas/internal/domain"
	"github.com/tecnolife/dashboard-vendas/internal/domain/referencia"
	"github.com/tecnolife/dashboard-vendas/pkg/brformat"
)

// Faixas de recência, em dias desde a última compra.
var faixasRecencia = []struct {
	rotulo string
	ate    int // limite superior inclusivo; 0 = sem limite
}{
	{"Até 30 dias", 30},
	{"31-90 dias", 90},
	{"91-180 dias", 180},
	{"Mais de 180 dias", 0},
}

// ClientesUseCase análise da carteira de clientes: ranking, recência,
// distribuição geográfica, mix de categorias e concentração de receita.
type ClientesUseCase struct {
	store Snapshot
}

// NewClientesUseCase constrói o caso de uso.
func NewClientesUseCase(store Snapshot) *ClientesUseCase {
	return &ClientesUseCase{store: store}
}

// Analise executa a análise completa da carteira no período, opcionalmente
// restrita a um conjunto de UFs (pelo bucket de exibição). Filtro sem linhas
// devolve estruturas vazias e SemDados, nunca erro.
func (uc *ClientesUseCase) Analise(inicio, fim string, ufs []string) (*dto.AnaliseClientesDTO, error) {
	ds := uc.store.Atual()
	if ds == nil {
		return nil, domain.ErrDatasetNaoCarregado
	}

	ini, fimT, err := parsePeriodo(inicio, fim, ds.Linhas)
	if err != nil {
		return nil, err
	}
	linhas := filtrarPorPeriodo(ds.Linhas, ini, fimT)

	if len(ufs) > 0 {
		alvo := make(map[string]bool, len(ufs))
		for _, uf := range ufs {
			alvo[strings.ToUpper(uf)] = true
		}
		recorte := linhas[:0:0]
		for i := range linhas {
			if alvo[referencia.Bucket(linhas[i].UF)] {
				recorte = append(recorte, linhas[i])
			}
		}
		linhas = recorte
	}

	resp := &dto.AnaliseClientesDTO{
		Periodo: dto.PeriodoDTO{
			Inicio: ini.Format(layoutDia),
			Fim:    fimT.Format(layoutDia),
		},
		TopClientes: []dto.TopClienteDTO{},
		Recencia:    []dto.RecenciaFaixaDTO{},
		PorUF:       []dto.ClientesUFDTO{},
		PorRegiao:   []dto.ClientesRegiaoDTO{},
		TopGrupos:   []dto.GrupoValorDTO{},
		Hierarquia:  []dto.HierarquiaDTO{},
		Pareto:      dto.ParetoDTO{Curva: []dto.ParetoPontoDTO{}},
	}
	if len(linhas) == 0 {
		resp.SemDados = true
		return resp, nil
	}

	// ── Acumuladores por cliente ───────────────────────────────────
	type cliente struct {
		razao      string
		total      decimal.Decimal
		ultimaData time.Time
		ufs        map[string]bool
	}
	porCliente := make(map[string]*cliente)
	var faturamentoTotal decimal.Decimal
	var dataRef time.Time // data mais recente do conjunto filtrado

	for i := range linhas {
		l := &linhas[i]
		chave := l.ChaveCliente()
		c := porCliente[chave]
		if c == nil {
			c = &cliente{razao: l.Razao, ufs: make(map[string]bool)}
			porCliente[chave] = c
		}
		c.total = c.total.Add(l.ValorNota)
		if l.Data.After(c.ultimaData) {
			c.ultimaData = l.Data
		}
		c.ufs[referencia.Bucket(l.UF)] = true

		faturamentoTotal = faturamentoTotal.Add(l.ValorNota)
		if l.Data.After(dataRef) {
			dataRef = l.Data
		}
	}

	totalClientes := len(porCliente)
	pedidos := notasDistintas(linhas)
	ticket := divisaoSegura(faturamentoTotal, int64(len(linhas)), 2)

	resp.TotalClientes = totalClientes
	resp.TotalClientesFmt = brformat.FormatarInteiro(int64(totalClientes))
	resp.FaturamentoTotal = faturamentoTotal
	resp.FaturamentoTotalFmt = brformat.FormatarMoeda(faturamentoTotal)
	resp.TicketMedio = ticket
	resp.TicketMedioFmt = brformat.FormatarMoeda(ticket)
	resp.MediaPedidosCliente = divisaoSegura(decimal.NewFromInt(int64(pedidos)), int64(totalClientes), 1)

	// ── Ranking e Pareto ───────────────────────────────────────────
	ordenados := make([]*cliente, 0, totalClientes)
	for _, c := range porCliente {
		ordenados = append(ordenados, c)
	}
	sort.Slice(ordenados, func(i, j int) bool { return ordenados[i].razao < ordenados[j].razao })
	ordenarDesc(ordenados, func(c *cliente) decimal.Decimal { return c.total })

	for _, c := range ordenados[:min(10, len(ordenados))] {
		resp.TopClientes = append(resp.TopClientes, dto.TopClienteDTO{
			Razao:          c.razao,
			Faturamento:    c.total,
			FaturamentoFmt: brformat.FormatarMoeda(c.total),
		})
	}
	resp.Pareto = pareto(ordenados, faturamentoTotal, func(c *cliente) decimal.Decimal { return c.total })

	// ── Recência ───────────────────────────────────────────────────
	// A referência de "hoje" é a data mais recente do período filtrado,
	// não o relógio; a análise é reprodutível sobre dados históricos.
	contagem := make([]int, len(faixasRecencia))
	for _, c := range ordenados {
		if c.ultimaData.IsZero() {
			continue
		}
		dias := int(dataRef.Sub(c.ultimaData).Hours() / 24)
		for f, faixa := range faixasRecencia {
			if faixa.ate == 0 || dias <= faixa.ate {
				contagem[f]++
				break
			}
		}
	}
	for f, faixa := range faixasRecencia {
		resp.Recencia = append(resp.Recencia, dto.RecenciaFaixaDTO{Faixa: faixa.rotulo, Clientes: contagem[f]})
	}

	// ── Distribuição geográfica ────────────────────────────────────
	clientesUF := make(map[string]map[string]bool)
	for chave, c := range porCliente {
		for uf := range c.ufs {
			if clientesUF[uf] == nil {
				clientesUF[uf] = make(map[string]bool)
			}
			clientesUF[uf][chave] = true
		}
	}
	for uf, cls := range clientesUF {
		nome := referencia.Nome(uf)
		if uf == referencia.BucketExportacao {
			nome = "Exportação"
		}
		resp.PorUF = append(resp.PorUF, dto.ClientesUFDTO{UF: uf, Nome: nome, Clientes: len(cls)})
	}
	sort.Slice(resp.PorUF, func(i, j int) bool { return resp.PorUF[i].UF < resp.PorUF[j].UF })
	sort.SliceStable(resp.PorUF, func(i, j int) bool { return resp.PorUF[i].Clientes > resp.PorUF[j].Clientes })

	clientesRegiao := make(map[string]map[string]bool)
	for uf, cls := range clientesUF {
		regiao := referencia.Regiao(uf)
		if regiao == "" {
			regiao = "Exportação"
		}
		if clientesRegiao[regiao] == nil {
			clientesRegiao[regiao] = make(map[string]bool)
		}
		for chave := range cls {
			clientesRegiao[regiao][chave] = true
		}
	}
	for regiao, cls := range clientesRegiao {
		resp.PorRegiao = append(resp.PorRegiao, dto.ClientesRegiaoDTO{Regiao: regiao, Clientes: len(cls)})
	}
	sort.Slice(resp.PorRegiao, func(i, j int) bool { return resp.PorRegiao[i].Regiao < resp.PorRegiao[j].Regiao })
	sort.SliceStable(resp.PorRegiao, func(i, j int) bool { return resp.PorRegiao[i].Clientes > resp.PorRegiao[j].Clientes })

	// ── Mix de categorias ──────────────────────────────────────────
	type chaveHier struct{ grupo, subGrupo string }
	somasGrupo := make(map[string]decimal.Decimal)
	somasHier := make(map[chaveHier]decimal.Decimal)
	subGruposAtivos := make(map[string]bool)
	for i := range linhas {
		l := &linhas[i]
		somasGrupo[l.Grupo] = somasGrupo[l.Grupo].Add(l.ValorNota)
		k := chaveHier{l.Grupo, l.SubGrupo}
		somasHier[k] = somasHier[k].Add(l.ValorNota)
		subGruposAtivos[l.SubGrupo] = true
	}

	grupos := make([]dto.GrupoValorDTO, 0, len(somasGrupo))
	for g, total := range somasGrupo {
		grupos = append(grupos, dto.GrupoValorDTO{
			Grupo:          g,
			Faturamento:    total,
			FaturamentoFmt: brformat.FormatarMoeda(total),
		})
	}
	sort.Slice(grupos, func(i, j int) bool { return grupos[i].Grupo < grupos[j].Grupo })
	ordenarDesc(grupos, func(g dto.GrupoValorDTO) decimal.Decimal { return g.Faturamento })
	resp.TopGrupos = grupos[:min(10, len(grupos))]

	for k, total := range somasHier {
		resp.Hierarquia = append(resp.Hierarquia, dto.HierarquiaDTO{
			Grupo:       k.grupo,
			SubGrupo:    k.subGrupo,
			Faturamento: total,
		})
	}
	sort.Slice(resp.Hierarquia, func(i, j int) bool {
		if resp.Hierarquia[i].Grupo != resp.Hierarquia[j].Grupo {
			return resp.Hierarquia[i].Grupo < resp.Hierarquia[j].Grupo
		}
		return resp.Hierarquia[i].SubGrupo < resp.Hierarquia[j].SubGrupo
	})

	// ── Concentração ───────────────────────────────────────────────
	if len(resp.PorUF) > 0 {
		resp.Concentracao.MaiorUF = resp.PorUF[0].UF
		resp.Concentracao.MaiorUFPct = percentual(
			decimal.NewFromInt(int64(resp.PorUF[0].Clientes)),
			decimal.NewFromInt(int64(totalClientes)),
		)
	}
	var top3Regioes int
	for _, r := range resp.PorRegiao[:min(3, len(resp.PorRegiao))] {
		top3Regioes += r.Clientes
	}
	resp.Concentracao.Top3RegioesPct = percentual(
		decimal.NewFromInt(int64(top3Regioes)),
		decimal.NewFromInt(int64(totalClientes)),
	)
	if len(grupos) > 0 {
		resp.Concentracao.MaiorGrupo = grupos[0].Grupo
		resp.Concentracao.MaiorGrupoPct = percentual(grupos[0].Faturamento, faturamentoTotal)
	}
	var top3Grupos decimal.Decimal
	for _, g := range grupos[:min(3, len(grupos))] {
		top3Grupos = top3Grupos.Add(g.Faturamento)
	}
	resp.Concentracao.Top3GruposPct = percentual(top3Grupos, faturamentoTotal)
	resp.Concentracao.SubGruposAtivos = len(subGruposAtivos)

	return resp, nil
}

// pareto calcula a fração de clientes que concentra 80% da receita e a
// curva acumulada em decis. Recebe os clientes já ordenados por valor
// decrescente.
func pareto[T any](ordenados []T, total decimal.Decimal, valor func(T) decimal.Decimal) dto.ParetoDTO {
	out := dto.ParetoDTO{Curva: []dto.ParetoPontoDTO{}}
	n := len(ordenados)
	if n == 0 || total.IsZero() {
		return out
	}

	acumulado := make([]decimal.Decimal, n)
	var soma decimal.Decimal
	for i, c := range ordenados {
		soma = soma.Add(valor(c))
		acumulado[i] = soma
	}

	limite := total.Mul(decimal.NewFromFloat(0.8))
	corte := n
	for i := range acumulado {
		if acumulado[i].GreaterThanOrEqual(limite) {
			corte = i + 1
			break
		}
	}
	out.PctClientes80 = percentual(decimal.NewFromInt(int64(corte)), decimal.NewFromInt(int64(n)))

	for decil := 1; decil <= 10; decil++ {
		k := (n*decil + 9) / 10 // teto de n×decil/10
		out.Curva = append(out.Curva, dto.ParetoPontoDTO{
			PctClientes:    decimal.NewFromInt(int64(decil * 10)),
			PctFaturamento: percentual(acumulado[k-1], total),
		})
	}
	return out
}
