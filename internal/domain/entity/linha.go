package entity

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// SentinelaNC marcador de exibição para valores categóricos ausentes
// ("não classificado"). Aplicado apenas a colunas de texto de exibição,
// nunca a colunas usadas como chave de junção ou filtro.
const SentinelaNC = "N/C"

// LinhaFaturamento é a unidade canônica do dataset: uma linha por item de
// nota fiscal, já com tipos coagidos e enriquecimento geográfico.
//
// A ordem dos campos segue a ordem canônica de colunas publicada
// (ColunasCanonicas); consumidores indexam por posição em alguns pontos,
// portanto essa ordem é contrato, não estética.
//
// Datas inválidas ou ausentes ficam com o valor zero de time.Time (IsZero);
// a linha nunca é descartada por falha de parse de data.
type LinhaFaturamento struct {
	Sequencial      int64           `json:"sequencial"`
	Tipo            int64           `json:"tipo"`
	Filial          string          `json:"filial"`
	Codtra          int64           `json:"codtra"`
	OS              int64           `json:"os"`
	ItemOS          int64           `json:"itemOs"`
	CodCli          int64           `json:"codcli"`
	CNPJ            string          `json:"cnpj"`
	Razao           string          `json:"razao"`
	Fantasia        string          `json:"fantasia"`
	CFOP            string          `json:"cfop"`
	Data            time.Time       `json:"data"`
	Emissao         time.Time       `json:"emissao"`
	Nota            int64           `json:"nota"`
	Serie           int64           `json:"serie"`
	ChaveNfe        string          `json:"chaveNfe"`
	Item            int64           `json:"item"`
	CodProduto      string          `json:"codProduto"`
	Produto         string          `json:"produto"`
	UnidSaida       string          `json:"unidSaida"`
	NCM             string          `json:"ncm"`
	CodGrupo        int64           `json:"codGrupo"`
	Grupo           string          `json:"grupo"`
	CodSubGrupo     int64           `json:"codSubGrupo"`
	SubGrupo        string          `json:"subGrupo"`
	CodVendedor     int64           `json:"codVendedor"`
	Vendedor        string          `json:"vendedor"`
	VendedorRed     string          `json:"vendedorRed"`
	Cidade          string          `json:"cidade"`
	UF              string          `json:"uf"`
	TipoOS          int64           `json:"tipoOs"`
	DescricaoTipoOS string          `json:"descricaoTipoOs"`
	CodRegiao       int64           `json:"codRegiao"`
	Regiao          string          `json:"regiao"`
	ValorFaturado   decimal.Decimal `json:"valorfaturado"`
	Quant           decimal.Decimal `json:"quant"`
	ValorUni        decimal.Decimal `json:"valoruni"`
	ValorIPI        decimal.Decimal `json:"valoripi"`
	ValorICMS       decimal.Decimal `json:"valoricms"`
	ValorISS        decimal.Decimal `json:"valoriss"`
	ValorSubs       decimal.Decimal `json:"valorSubs"`
	ValorFrete      decimal.Decimal `json:"valorFrete"`
	ValorNota       decimal.Decimal `json:"valorNota"`
	ValorContabil   decimal.Decimal `json:"valorContabil"`
	RetVlrPis       decimal.Decimal `json:"retVlrPis"`
	RetVlrCofins    decimal.Decimal `json:"retVlrCofins"`
	RetVlrCsll      decimal.Decimal `json:"retVlrCsll"`
	ValorPis        decimal.Decimal `json:"valorPis"`
	ValorCofins     decimal.Decimal `json:"valorCofins"`
	AliqIPI         decimal.Decimal `json:"aliqIpi"`
	AliqICMS        decimal.Decimal `json:"aliqIcms"`
	PorcReducaoICMS decimal.Decimal `json:"porcReducaoIcms"`
	CstICMS         string          `json:"cstIcms"`
	BaseICMS        decimal.Decimal `json:"baseIcms"`
	ValorCusto      decimal.Decimal `json:"valorCusto"`
	ValorDesconto   decimal.Decimal `json:"valorDesconto"`
	Desctra         string          `json:"desctra"`
	Servico         int64           `json:"servico"`
	LibFatura       time.Time       `json:"libFatura"`

	// Derivadas do enriquecimento geográfico; nil quando o uf não consta
	// em nenhuma tabela de referência.
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// ChaveCliente identifica o cliente para agregações: código quando presente,
// razão social como contingência (feeds antigos vêm sem codcli).
func (l *LinhaFaturamento) ChaveCliente() string {
	if l.CodCli > 0 {
		return "c:" + strconv.FormatInt(l.CodCli, 10)
	}
	return "r:" + l.Razao
}
