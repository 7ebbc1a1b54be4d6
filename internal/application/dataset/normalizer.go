// Package dataset contém o pipeline de construção do dataset normalizado:
// coerção de tipos por coluna, política de valores ausentes, enriquecimento
// geográfico e o pré-filtro de horizonte.
package dataset

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tecnolife/dashboard-vendas/internal/domain/entity"
	"github.com/tecnolife/dashboard-vendas/internal/domain/referencia"
)

// Formatos de data do feed.
const (
	formatoData     = "2006-01-02"
	formatoDataHora = "2006-01-02 15:04:05"
)

// OpcoesNormalizacao parametriza o pipeline (um único pipeline configurável,
// em vez de variantes quase idênticas por visão).
type OpcoesNormalizacao struct {
	// HorizonteAnos descarta linhas com emissão anterior a
	// (ano corrente − HorizonteAnos). Zero desativa o pré-filtro.
	// Linhas com emissão nula são mantidas.
	HorizonteAnos int
	// Agora referência de "hoje" para o horizonte; zero usa time.Now().
	Agora time.Time
}

// Normalizar converte os registros brutos do feed no conjunto de linhas
// canônicas. É total e determinística: falha de coerção em um campo degrada
// para o default da coluna, nunca derruba a linha nem propaga erro.
// Colunas extras do feed são ignoradas; colunas esperadas ausentes recebem
// o default da sua classe.
func Normalizar(brutos []map[string]any, opts OpcoesNormalizacao) []entity.LinhaFaturamento {
	agora := opts.Agora
	if agora.IsZero() {
		agora = time.Now()
	}
	anoLimite := 0
	if opts.HorizonteAnos > 0 {
		anoLimite = agora.Year() - opts.HorizonteAnos
	}

	linhas := make([]entity.LinhaFaturamento, 0, len(brutos))
	for _, reg := range brutos {
		emissao := dataDia(reg, "emissao")
		if anoLimite > 0 && !emissao.IsZero() && emissao.Year() < anoLimite {
			continue
		}

		l := entity.LinhaFaturamento{
			Sequencial:      inteiro(reg, "sequencial"),
			Tipo:            inteiro(reg, "tipo"),
			Filial:          texto(reg, "filial"),
			Codtra:          inteiro(reg, "codtra"),
			OS:              inteiro(reg, "os"),
			ItemOS:          inteiro(reg, "itemOs"),
			CodCli:          inteiro(reg, "codcli"),
			CNPJ:            texto(reg, "cnpj"),
			Razao:           texto(reg, "razao"),
			Fantasia:        texto(reg, "fantasia"),
			CFOP:            texto(reg, "cfop"),
			Data:            dataDia(reg, "data"),
			Emissao:         emissao,
			Nota:            inteiro(reg, "nota"),
			Serie:           inteiro(reg, "serie"),
			ChaveNfe:        texto(reg, "chaveNfe"),
			Item:            inteiro(reg, "item"),
			CodProduto:      texto(reg, "codProduto"),
			Produto:         texto(reg, "produto"),
			UnidSaida:       texto(reg, "unidSaida"),
			NCM:             texto(reg, "ncm"),
			CodGrupo:        inteiro(reg, "codGrupo"),
			Grupo:           textoNC(reg, "grupo"),
			CodSubGrupo:     inteiro(reg, "codSubGrupo"),
			SubGrupo:        textoNC(reg, "subGrupo"),
			CodVendedor:     inteiro(reg, "codVendedor"),
			Vendedor:        textoNC(reg, "vendedor"),
			VendedorRed:     textoNC(reg, "vendedorRed"),
			Cidade:          texto(reg, "cidade"),
			UF:              texto(reg, "uf"),
			TipoOS:          inteiro(reg, "tipoOs"),
			DescricaoTipoOS: textoNC(reg, "descricaoTipoOs"),
			CodRegiao:       inteiro(reg, "codRegiao"),
			Regiao:          textoNC(reg, "regiao"),
			ValorFaturado:   monetario(reg, "valorfaturado").Round(2),
			Quant:           monetario(reg, "quant"),
			ValorUni:        monetario(reg, "valoruni"),
			ValorIPI:        monetario(reg, "valoripi"),
			ValorICMS:       monetario(reg, "valoricms"),
			ValorISS:        monetario(reg, "valoriss"),
			ValorSubs:       monetario(reg, "valorSubs"),
			ValorFrete:      monetario(reg, "valorFrete"),
			ValorNota:       monetario(reg, "valorNota").Round(2),
			ValorContabil:   monetario(reg, "valorContabil"),
			RetVlrPis:       monetario(reg, "retVlrPis"),
			RetVlrCofins:    monetario(reg, "retVlrCofins"),
			RetVlrCsll:      monetario(reg, "retVlrCsll"),
			ValorPis:        monetario(reg, "valorPis"),
			ValorCofins:     monetario(reg, "valorCofins"),
			AliqIPI:         monetario(reg, "aliqIpi"),
			AliqICMS:        monetario(reg, "aliqIcms"),
			PorcReducaoICMS: monetario(reg, "porcReducaoIcms"),
			CstICMS:         texto(reg, "cstIcms"),
			BaseICMS:        monetario(reg, "baseIcms"),
			ValorCusto:      monetario(reg, "valorCusto"),
			ValorDesconto:   monetario(reg, "valorDesconto"),
			Desctra:         texto(reg, "desctra"),
			Servico:         inteiro(reg, "servico"),
			LibFatura:       dataHora(reg, "libFatura"),
		}

		// Enriquecimento geográfico: a coluna uf fica intacta; apenas as
		// derivadas latitude/longitude são anexadas quando há referência.
		if lat, lon, ok := referencia.Coordenadas(l.UF); ok {
			l.Latitude, l.Longitude = &lat, &lon
		}

		linhas = append(linhas, l)
	}
	return linhas
}

// ── Coerções por classe de coluna ─────────────────────────────────────────────

// inteiro identificadores inteiros: default 0, com remoção do sufixo ".0"
// que o feed produz ao serializar números como string.
func inteiro(reg map[string]any, chave string) int64 {
	v, ok := reg[chave]
	if !ok || v == nil {
		return 0
	}
	switch t := v.(type) {
	case json.Number:
		return parseInteiro(t.String())
	case string:
		return parseInteiro(t)
	case float64:
		return int64(t)
	case int64:
		return t
	case int:
		return int64(t)
	}
	return 0
}

func parseInteiro(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	// Sufixo ".0" (numérico re-serializado como string pelo upstream)
	if recortado, achou := strings.CutSuffix(s, ".0"); achou {
		if n, err := strconv.ParseInt(recortado, 10, 64); err == nil {
			return n
		}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(f)
	}
	return 0
}

// monetario colunas decimais: default 0.00. Aceita número JSON, string com
// ponto decimal e, como contingência de locale, string com vírgula decimal.
func monetario(reg map[string]any, chave string) decimal.Decimal {
	v, ok := reg[chave]
	if !ok || v == nil {
		return decimal.Zero
	}
	switch t := v.(type) {
	case json.Number:
		if d, err := decimal.NewFromString(t.String()); err == nil {
			return d
		}
	case float64:
		return decimal.NewFromFloat(t)
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return decimal.Zero
		}
		if d, err := decimal.NewFromString(s); err == nil {
			return d
		}
		// Formato brasileiro: "1.234,56"
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
		if d, err := decimal.NewFromString(s); err == nil {
			return d
		}
	}
	return decimal.Zero
}

// texto colunas livres: default string vazia; nunca recebe sentinela.
func texto(reg map[string]any, chave string) string {
	v, ok := reg[chave]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	}
	return ""
}

// textoNC colunas categóricas de exibição: ausente/vazio vira "N/C".
// A substituição é só de apresentação: colunas de chave (uf, códigos)
// usam texto/inteiro e ficam com o valor cru.
func textoNC(reg map[string]any, chave string) string {
	s := texto(reg, chave)
	if s == "" {
		return entity.SentinelaNC
	}
	return s
}

// dataDia datas sem hora (formato YYYY-MM-DD); inválida/ausente → zero,
// linha mantida.
func dataDia(reg map[string]any, chave string) time.Time {
	s := texto(reg, chave)
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(formatoData, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// dataHora timestamps (formato YYYY-MM-DD HH:MM:SS); inválida → zero.
func dataHora(reg map[string]any, chave string) time.Time {
	s := texto(reg, chave)
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(formatoDataHora, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
