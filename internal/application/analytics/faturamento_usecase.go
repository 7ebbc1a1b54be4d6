package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tecnolife/dashboard-vendas/internal/application/dto"
	"github.com/tecnolife/dashboard-vendas/internal/domain"
	"github.com/tecnolife/dashboard-vendas/internal/domain/referencia"
	"github.com/tecnolife/dashboard-vendas/pkg/brformat"
)

// Escala das bolhas do mapa de estados.
const (
	bolhaMin = 5.0
	bolhaMax = 50.0
)

// FaturamentoUseCase agregados da visão de vendas: estados, meses,
// sub-categorias e KPIs gerais. Todos aceitam um filtro opcional de anos
// de emissão; filtros que não deixam nenhuma linha produzem agregados
// vazios (ou zerados, no caso das sub-categorias), nunca erro.
type FaturamentoUseCase struct {
	store Snapshot
}

// NewFaturamentoUseCase constrói o caso de uso.
func NewFaturamentoUseCase(store Snapshot) *FaturamentoUseCase {
	return &FaturamentoUseCase{store: store}
}

// PorEstado soma o valor de nota por estado/país de destino. Códigos fora
// das tabelas de referência caem no bucket de exportação. O resultado sai
// em ordem decrescente de faturamento, com o tamanho de bolha em escala
// min-max calculado sobre o próprio resultado.
func (uc *FaturamentoUseCase) PorEstado(anos []int) ([]dto.FaturamentoEstadoDTO, error) {
	ds := uc.store.Atual()
	if ds == nil {
		return nil, domain.ErrDatasetNaoCarregado
	}
	linhas := filtrarPorAnos(ds.Linhas, anos)

	somas := make(map[string]decimal.Decimal)
	for i := range linhas {
		b := referencia.Bucket(linhas[i].UF)
		somas[b] = somas[b].Add(linhas[i].ValorNota)
	}

	out := make([]dto.FaturamentoEstadoDTO, 0, len(somas))
	for codigo, total := range somas {
		item := dto.FaturamentoEstadoDTO{
			UF:             codigo,
			Nome:           referencia.Nome(codigo),
			Faturamento:    total,
			FaturamentoFmt: brformat.FormatarMoeda(total),
		}
		if codigo == referencia.BucketExportacao {
			item.Nome = "Exportação"
		} else if lat, lon, ok := referencia.Coordenadas(codigo); ok {
			item.Latitude, item.Longitude = &lat, &lon
		}
		out = append(out, item)
	}

	// Ordena por código antes do sort por valor para manter o desempate
	// determinístico.
	sort.Slice(out, func(i, j int) bool { return out[i].UF < out[j].UF })
	ordenarDesc(out, func(e dto.FaturamentoEstadoDTO) decimal.Decimal { return e.Faturamento })
	escalarBolhas(out)
	return out, nil
}

// Top5Estados os cinco estados de maior faturamento. O bucket de
// exportação agrega códigos heterogêneos e fica fora do ranking; os
// totais dos demais agregados não são afetados.
func (uc *FaturamentoUseCase) Top5Estados(anos []int) ([]dto.FaturamentoEstadoDTO, error) {
	todos, err := uc.PorEstado(anos)
	if err != nil {
		return nil, err
	}
	top := make([]dto.FaturamentoEstadoDTO, 0, 5)
	for _, e := range todos {
		if e.UF == referencia.BucketExportacao {
			continue
		}
		top = append(top, e)
		if len(top) == 5 {
			break
		}
	}
	return top, nil
}

// PorMes soma o valor de nota mês a mês pela data de emissão. Linhas com
// emissão nula ficam de fora. Ordenação cronológica: ano, depois número
// do mês, nunca o nome.
func (uc *FaturamentoUseCase) PorMes(anos []int) ([]dto.FaturamentoMesDTO, error) {
	ds := uc.store.Atual()
	if ds == nil {
		return nil, domain.ErrDatasetNaoCarregado
	}
	linhas := filtrarPorAnos(ds.Linhas, anos)

	type chaveMes struct {
		ano int
		mes int
	}
	somas := make(map[chaveMes]decimal.Decimal)
	for i := range linhas {
		e := linhas[i].Emissao
		if e.IsZero() {
			continue
		}
		k := chaveMes{e.Year(), int(e.Month())}
		somas[k] = somas[k].Add(linhas[i].ValorNota)
	}

	out := make([]dto.FaturamentoMesDTO, 0, len(somas))
	for k, total := range somas {
		out = append(out, dto.FaturamentoMesDTO{
			Mes:            referencia.NomeMes(time.Month(k.mes)),
			Ano:            k.ano,
			NumMes:         k.mes,
			Faturamento:    total,
			FaturamentoFmt: brformat.FormatarMoeda(total),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Ano != out[j].Ano {
			return out[i].Ano < out[j].Ano
		}
		return out[i].NumMes < out[j].NumMes
	})
	return out, nil
}

// PorSubGrupo soma o valor de nota por sub-categoria, preenchendo com
// zero toda sub-categoria da lista de referência que o filtro deixou sem
// linhas. O total de categorias é invariante sob filtros.
func (uc *FaturamentoUseCase) PorSubGrupo(anos []int) ([]dto.FaturamentoSubGrupoDTO, error) {
	ds := uc.store.Atual()
	if ds == nil {
		return nil, domain.ErrDatasetNaoCarregado
	}
	linhas := filtrarPorAnos(ds.Linhas, anos)

	somas := make(map[string]decimal.Decimal, len(ds.SubGrupos))
	for i := range linhas {
		sg := linhas[i].SubGrupo
		somas[sg] = somas[sg].Add(linhas[i].ValorNota)
	}

	out := make([]dto.FaturamentoSubGrupoDTO, 0, len(ds.SubGrupos))
	for _, sg := range ds.SubGrupos {
		total := somas[sg]
		out = append(out, dto.FaturamentoSubGrupoDTO{
			SubGrupo:       sg,
			Faturamento:    total,
			FaturamentoFmt: brformat.FormatarMoeda(total),
		})
	}
	ordenarDesc(out, func(s dto.FaturamentoSubGrupoDTO) decimal.Decimal { return s.Faturamento })
	return out, nil
}

// Top5SubGrupos as cinco sub-categorias de maior faturamento.
func (uc *FaturamentoUseCase) Top5SubGrupos(anos []int) ([]dto.FaturamentoSubGrupoDTO, error) {
	todos, err := uc.PorSubGrupo(anos)
	if err != nil {
		return nil, err
	}
	if len(todos) > 5 {
		todos = todos[:5]
	}
	return todos, nil
}

// Resumo KPIs gerais do conjunto filtrado.
func (uc *FaturamentoUseCase) Resumo(anos []int) (*dto.ResumoFaturamentoDTO, error) {
	ds := uc.store.Atual()
	if ds == nil {
		return nil, domain.ErrDatasetNaoCarregado
	}
	linhas := filtrarPorAnos(ds.Linhas, anos)

	var total decimal.Decimal
	for i := range linhas {
		total = total.Add(linhas[i].ValorNota)
	}
	pedidos := notasDistintas(linhas)
	clientes := clientesDistintos(linhas)
	ticket := divisaoSegura(total, int64(pedidos), 2)

	return &dto.ResumoFaturamentoDTO{
		FaturamentoTotal:    total,
		FaturamentoTotalFmt: brformat.FormatarMoeda(total),
		TotalClientes:       clientes,
		TotalClientesFmt:    brformat.FormatarInteiro(int64(clientes)),
		TicketMedio:         ticket,
		TicketMedioFmt:      brformat.FormatarMoeda(ticket),
		MediaPedidosCliente: divisaoSegura(decimal.NewFromInt(int64(pedidos)), int64(clientes), 1),
		TotalLinhas:         len(linhas),
	}, nil
}

// escalarBolhas aplica a escala min-max [bolhaMin, bolhaMax] sobre os
// faturamentos do resultado. Resultado de valor único (ou todos iguais)
// recebe o ponto médio da escala.
func escalarBolhas(itens []dto.FaturamentoEstadoDTO) {
	if len(itens) == 0 {
		return
	}
	minV, maxV := itens[0].Faturamento, itens[0].Faturamento
	for _, e := range itens[1:] {
		if e.Faturamento.LessThan(minV) {
			minV = e.Faturamento
		}
		if e.Faturamento.GreaterThan(maxV) {
			maxV = e.Faturamento
		}
	}
	amplitude := maxV.Sub(minV)
	for i := range itens {
		if amplitude.IsZero() {
			itens[i].TamanhoBolha = (bolhaMin + bolhaMax) / 2
			continue
		}
		frac, _ := itens[i].Faturamento.Sub(minV).Div(amplitude).Float64()
		itens[i].TamanhoBolha = bolhaMin + frac*(bolhaMax-bolhaMin)
	}
}
