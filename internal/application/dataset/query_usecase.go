package dataset

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tecnolife/dashboard-vendas/internal/application/dto"
	"github.com/tecnolife/dashboard-vendas/internal/domain"
	"github.com/tecnolife/dashboard-vendas/internal/domain/entity"
	"github.com/tecnolife/dashboard-vendas/pkg/brformat"
)

// Leitor porta de leitura do snapshot corrente.
type Leitor interface {
	Atual() *entity.Dataset
}

// ConsultaUseCase visão detalhada da tabela: seleção de colunas por nome
// de exibição, filtro por ano/mês de emissão, busca textual e paginação.
// Os valores saem já formatados para exibição (moeda, data, número pt-BR).
type ConsultaUseCase struct {
	store Leitor
}

// NewConsultaUseCase constrói o caso de uso.
func NewConsultaUseCase(store Leitor) *ConsultaUseCase {
	return &ConsultaUseCase{store: store}
}

// Consultar monta uma página da tabela detalhada.
//
// A seleção de colunas usa nomes de exibição; qualquer que seja a ordem
// pedida, a projeção sai na ordem canônica do esquema. Nome desconhecido
// devolve ErrColunaDesconhecida.
func (uc *ConsultaUseCase) Consultar(req dto.ConsultaDatasetRequest) (*dto.PaginaDatasetDTO, error) {
	ds := uc.store.Atual()
	if ds == nil {
		return nil, domain.ErrDatasetNaoCarregado
	}

	colunas, err := resolverColunas(req.Colunas)
	if err != nil {
		return nil, err
	}
	linhas, err := filtrarAnoMes(ds.Linhas, req.Ano, req.Mes)
	if err != nil {
		return nil, err
	}

	// A busca textual varre todas as colunas do esquema, formatadas como
	// na exibição (o usuário busca o que vê); a seleção de colunas só
	// recorta a projeção, nunca o alcance da busca.
	busca := normalizarBusca(req.Busca)
	var formatadas [][]string
	for i := range linhas {
		if busca != "" {
			todas := make([]string, len(entity.ColunasCanonicas))
			for c, col := range entity.ColunasCanonicas {
				todas[c] = formatarValor(col, linhas[i].ValorBruto(col))
			}
			if !contemBusca(todas, busca) {
				continue
			}
		}
		celulas := make([]string, len(colunas))
		for c, col := range colunas {
			celulas[c] = formatarValor(col, linhas[i].ValorBruto(col))
		}
		formatadas = append(formatadas, celulas)
	}

	req.DefaultPage()
	total := len(formatadas)
	ini := req.Offset
	if ini > total {
		ini = total
	}
	fim := ini + req.Limit
	if fim > total {
		fim = total
	}

	exibicao := make([]string, len(colunas))
	for i, col := range colunas {
		exibicao[i] = entity.NomesExibicao[col]
	}

	return &dto.PaginaDatasetDTO{
		Versao:      ds.Versao.String(),
		CarregadoEm: brformat.FormatarDataHora(ds.CarregadoEm),
		Colunas:     exibicao,
		Linhas:      formatadas[ini:fim],
		Page: dto.PageResponse{
			Limit:  req.Limit,
			Offset: req.Offset,
			Total:  total,
		},
	}, nil
}

// Info metadados do snapshot corrente.
func (uc *ConsultaUseCase) Info() (*dto.InfoDatasetDTO, error) {
	ds := uc.store.Atual()
	if ds == nil {
		return nil, domain.ErrDatasetNaoCarregado
	}
	return &dto.InfoDatasetDTO{
		Versao:          ds.Versao.String(),
		CarregadoEm:     brformat.FormatarDataHora(ds.CarregadoEm),
		TotalFeed:       ds.TotalFeed,
		TotalLinhas:     len(ds.Linhas),
		AnosDisponiveis: ds.AnosDisponiveis(),
	}, nil
}

// resolverColunas converte a lista de nomes de exibição em colunas brutas,
// re-projetadas na ordem canônica. Vazio = todas.
func resolverColunas(selecao string) ([]string, error) {
	if strings.TrimSpace(selecao) == "" {
		return entity.ColunasCanonicas, nil
	}
	pedidas := make(map[string]bool)
	for _, nome := range strings.Split(selecao, ",") {
		nome = strings.TrimSpace(nome)
		if nome == "" {
			continue
		}
		col, ok := entity.ColunaPorExibicao(nome)
		if !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrColunaDesconhecida, nome)
		}
		pedidas[col] = true
	}
	var colunas []string
	for _, col := range entity.ColunasCanonicas {
		if pedidas[col] {
			colunas = append(colunas, col)
		}
	}
	return colunas, nil
}

// filtrarAnoMes filtra pela data de emissão. mes exige ano; linhas com
// emissão nula ficam de fora quando há filtro.
func filtrarAnoMes(linhas []entity.LinhaFaturamento, ano, mes int) ([]entity.LinhaFaturamento, error) {
	if mes < 0 || mes > 12 {
		return nil, fmt.Errorf("%w: mes %d", domain.ErrEntradaInvalida, mes)
	}
	if mes > 0 && ano == 0 {
		return nil, fmt.Errorf("%w: filtro de mês exige ano", domain.ErrEntradaInvalida)
	}
	if ano == 0 {
		return linhas, nil
	}
	var out []entity.LinhaFaturamento
	for i := range linhas {
		e := linhas[i].Emissao
		if e.IsZero() || e.Year() != ano {
			continue
		}
		if mes > 0 && int(e.Month()) != mes {
			continue
		}
		out = append(out, linhas[i])
	}
	return out, nil
}

func normalizarBusca(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func contemBusca(celulas []string, busca string) bool {
	for _, c := range celulas {
		if strings.Contains(strings.ToLower(c), busca) {
			return true
		}
	}
	return false
}

// formatarValor formata um valor bruto para exibição conforme a classe da
// coluna: moeda pt-BR para colunas monetárias, duas casas para os demais
// decimais, datas dd-mm-aaaa, identificadores inteiros sem separador.
func formatarValor(coluna string, v any) string {
	switch valor := v.(type) {
	case nil:
		return ""
	case string:
		return valor
	case int64:
		return strconv.FormatInt(valor, 10)
	case float64:
		return strconv.FormatFloat(valor, 'f', -1, 64)
	case time.Time:
		if coluna == "libFatura" {
			return brformat.FormatarDataHora(valor)
		}
		return brformat.FormatarData(valor)
	case decimal.Decimal:
		if entity.ColunasMonetarias[coluna] {
			return brformat.FormatarMoeda(valor)
		}
		return brformat.FormatarNumero(valor, 2)
	}
	return fmt.Sprint(v)
}
