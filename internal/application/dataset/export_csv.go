package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/tecnolife/dashboard-vendas/internal/application/dto"
	"github.com/tecnolife/dashboard-vendas/internal/domain"
	"github.com/tecnolife/dashboard-vendas/internal/domain/entity"
)

func init() {
	// Padrão de planilha brasileira: ponto e vírgula como separador (a
	// vírgula é o separador decimal) e CRLF para o Excel.
	gocsv.SetCSVWriter(func(out io.Writer) *gocsv.SafeCSVWriter {
		w := csv.NewWriter(out)
		w.Comma = ';'
		w.UseCRLF = true
		return gocsv.NewSafeCSVWriter(w)
	})
}

// linhaCSV projeção de exportação: todas as colunas canônicas, já
// formatadas para exibição, com cabeçalhos de exibição.
type linhaCSV struct {
	Sequencial      string `csv:"Sequencial"`
	Tipo            string `csv:"Tipo"`
	Filial          string `csv:"Filial"`
	Codtra          string `csv:"Código Transação"`
	OS              string `csv:"OS"`
	ItemOS          string `csv:"Item OS"`
	CodCli          string `csv:"Código Cliente"`
	CNPJ            string `csv:"CNPJ"`
	Razao           string `csv:"Razão Social"`
	Fantasia        string `csv:"Nome Fantasia"`
	CFOP            string `csv:"CFOP"`
	Data            string `csv:"Data"`
	Emissao         string `csv:"Emissão"`
	Nota            string `csv:"Nota"`
	Serie           string `csv:"Série"`
	ChaveNfe        string `csv:"Chave NFe"`
	Item            string `csv:"Item"`
	CodProduto      string `csv:"Código Produto"`
	Produto         string `csv:"Produto"`
	UnidSaida       string `csv:"Unidade Saída"`
	NCM             string `csv:"NCM"`
	CodGrupo        string `csv:"Código Grupo"`
	Grupo           string `csv:"Grupo"`
	CodSubGrupo     string `csv:"Código SubGrupo"`
	SubGrupo        string `csv:"Sub Grupo"`
	CodVendedor     string `csv:"Código Vendedor"`
	Vendedor        string `csv:"Vendedor"`
	VendedorRed     string `csv:"Vendedor (Red.)"`
	Cidade          string `csv:"Cidade"`
	UF              string `csv:"UF"`
	TipoOS          string `csv:"Tipo OS"`
	DescricaoTipoOS string `csv:"Descrição Tipo OS"`
	CodRegiao       string `csv:"Código Região"`
	Regiao          string `csv:"Região"`
	ValorFaturado   string `csv:"Valor Faturado"`
	Quant           string `csv:"Quantidade"`
	ValorUni        string `csv:"Valor Unitário"`
	ValorIPI        string `csv:"Valor IPI"`
	ValorICMS       string `csv:"Valor ICMS"`
	ValorISS        string `csv:"Valor ISS"`
	ValorSubs       string `csv:"Valor Substituição"`
	ValorFrete      string `csv:"Valor Frete"`
	ValorNota       string `csv:"Valor Nota"`
	ValorContabil   string `csv:"Valor Contábil"`
	RetVlrPis       string `csv:"Retenção PIS"`
	RetVlrCofins    string `csv:"Retenção COFINS"`
	RetVlrCsll      string `csv:"Retenção CSLL"`
	ValorPis        string `csv:"Valor PIS"`
	ValorCofins     string `csv:"Valor COFINS"`
	AliqIPI         string `csv:"Alíquota IPI"`
	AliqICMS        string `csv:"Alíquota ICMS"`
	PorcReducaoICMS string `csv:"% Redução ICMS"`
	CstICMS         string `csv:"CST ICMS"`
	BaseICMS        string `csv:"Base ICMS"`
	ValorCusto      string `csv:"Valor Custo"`
	ValorDesconto   string `csv:"Valor Desconto"`
	Desctra         string `csv:"Descrição Transação"`
	Servico         string `csv:"Serviço"`
	LibFatura       string `csv:"Liberação Fatura"`
	Latitude        string `csv:"Latitude"`
	Longitude       string `csv:"Longitude"`
}

// ExportarCSV gera o download da tabela detalhada. Aplica os mesmos
// filtros da consulta (ano/mês e busca), sempre com todas as colunas e
// sem paginação.
func (uc *ConsultaUseCase) ExportarCSV(req dto.ConsultaDatasetRequest) ([]byte, error) {
	ds := uc.store.Atual()
	if ds == nil {
		return nil, domain.ErrDatasetNaoCarregado
	}
	linhas, err := filtrarAnoMes(ds.Linhas, req.Ano, req.Mes)
	if err != nil {
		return nil, err
	}

	busca := normalizarBusca(req.Busca)
	registros := make([]linhaCSV, 0, len(linhas))
	for i := range linhas {
		reg, celulas := novaLinhaCSV(&linhas[i])
		if busca != "" && !contemBusca(celulas, busca) {
			continue
		}
		registros = append(registros, reg)
	}

	var buf bytes.Buffer
	if err := gocsv.Marshal(registros, &buf); err != nil {
		return nil, fmt.Errorf("exportar csv: %w", err)
	}
	return buf.Bytes(), nil
}

// novaLinhaCSV formata uma linha do dataset na projeção de exportação.
// Devolve também as células na ordem canônica para a busca textual.
func novaLinhaCSV(l *entity.LinhaFaturamento) (linhaCSV, []string) {
	celulas := make([]string, len(entity.ColunasCanonicas))
	for i, col := range entity.ColunasCanonicas {
		celulas[i] = formatarValor(col, l.ValorBruto(col))
	}
	return linhaCSV{
		Sequencial:      celulas[0],
		Tipo:            celulas[1],
		Filial:          celulas[2],
		Codtra:          celulas[3],
		OS:              celulas[4],
		ItemOS:          celulas[5],
		CodCli:          celulas[6],
		CNPJ:            celulas[7],
		Razao:           celulas[8],
		Fantasia:        celulas[9],
		CFOP:            celulas[10],
		Data:            celulas[11],
		Emissao:         celulas[12],
		Nota:            celulas[13],
		Serie:           celulas[14],
		ChaveNfe:        celulas[15],
		Item:            celulas[16],
		CodProduto:      celulas[17],
		Produto:         celulas[18],
		UnidSaida:       celulas[19],
		NCM:             celulas[20],
		CodGrupo:        celulas[21],
		Grupo:           celulas[22],
		CodSubGrupo:     celulas[23],
		SubGrupo:        celulas[24],
		CodVendedor:     celulas[25],
		Vendedor:        celulas[26],
		VendedorRed:     celulas[27],
		Cidade:          celulas[28],
		UF:              celulas[29],
		TipoOS:          celulas[30],
		DescricaoTipoOS: celulas[31],
		CodRegiao:       celulas[32],
		Regiao:          celulas[33],
		ValorFaturado:   celulas[34],
		Quant:           celulas[35],
		ValorUni:        celulas[36],
		ValorIPI:        celulas[37],
		ValorICMS:       celulas[38],
		ValorISS:        celulas[39],
		ValorSubs:       celulas[40],
		ValorFrete:      celulas[41],
		ValorNota:       celulas[42],
		ValorContabil:   celulas[43],
		RetVlrPis:       celulas[44],
		RetVlrCofins:    celulas[45],
		RetVlrCsll:      celulas[46],
		ValorPis:        celulas[47],
		ValorCofins:     celulas[48],
		AliqIPI:         celulas[49],
		AliqICMS:        celulas[50],
		PorcReducaoICMS: celulas[51],
		CstICMS:         celulas[52],
		BaseICMS:        celulas[53],
		ValorCusto:      celulas[54],
		ValorDesconto:   celulas[55],
		Desctra:         celulas[56],
		Servico:         celulas[57],
		LibFatura:       celulas[58],
		Latitude:        celulas[59],
		Longitude:       celulas[60],
	}, celulas
}
