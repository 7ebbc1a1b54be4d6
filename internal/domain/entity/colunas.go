package entity

// ColunasCanonicas é a ordem publicada das colunas do dataset. Qualquer
// exportação ou re-projeção de colunas deve respeitar esta ordem; o feed pode
// trazer colunas extras (descartadas) ou faltantes (criadas com o default da
// política de coerção).
var ColunasCanonicas = []string{
	"sequencial", "tipo", "filial", "codtra", "os", "itemOs", "codcli", "cnpj",
	"razao", "fantasia", "cfop", "data", "emissao", "nota", "serie", "chaveNfe",
	"item", "codProduto", "produto", "unidSaida", "ncm", "codGrupo", "grupo",
	"codSubGrupo", "subGrupo", "codVendedor", "vendedor", "vendedorRed",
	"cidade", "uf", "tipoOs", "descricaoTipoOs", "codRegiao", "regiao",
	"valorfaturado", "quant", "valoruni", "valoripi", "valoricms", "valoriss",
	"valorSubs", "valorFrete", "valorNota", "valorContabil", "retVlrPis",
	"retVlrCofins", "retVlrCsll", "valorPis", "valorCofins", "aliqIpi",
	"aliqIcms", "porcReducaoIcms", "cstIcms", "baseIcms", "valorCusto",
	"valorDesconto", "desctra", "servico", "libFatura",
	// Derivadas (enriquecimento geográfico)
	"latitude", "longitude",
}

// NomesExibicao mapeamento estático coluna → nome de exibição. O inverso é
// construído uma vez em init (nada de dicionários ad hoc montados por visão).
var NomesExibicao = map[string]string{
	"sequencial": "Sequencial", "tipo": "Tipo", "filial": "Filial",
	"codtra": "Código Transação", "os": "OS", "itemOs": "Item OS",
	"codcli": "Código Cliente", "cnpj": "CNPJ", "razao": "Razão Social",
	"fantasia": "Nome Fantasia", "cfop": "CFOP", "data": "Data",
	"emissao": "Emissão", "nota": "Nota", "serie": "Série",
	"chaveNfe": "Chave NFe", "item": "Item", "codProduto": "Código Produto",
	"produto": "Produto", "unidSaida": "Unidade Saída", "ncm": "NCM",
	"codGrupo": "Código Grupo", "grupo": "Grupo",
	"codSubGrupo": "Código SubGrupo", "subGrupo": "Sub Grupo",
	"codVendedor": "Código Vendedor", "vendedor": "Vendedor",
	"vendedorRed": "Vendedor (Red.)", "cidade": "Cidade", "uf": "UF",
	"tipoOs": "Tipo OS", "descricaoTipoOs": "Descrição Tipo OS",
	"codRegiao": "Código Região", "regiao": "Região",
	"valorfaturado": "Valor Faturado", "quant": "Quantidade",
	"valoruni": "Valor Unitário", "valoripi": "Valor IPI",
	"valoricms": "Valor ICMS", "valoriss": "Valor ISS",
	"valorSubs": "Valor Substituição", "valorFrete": "Valor Frete",
	"valorNota": "Valor Nota", "valorContabil": "Valor Contábil",
	"retVlrPis": "Retenção PIS", "retVlrCofins": "Retenção COFINS",
	"retVlrCsll": "Retenção CSLL", "valorPis": "Valor PIS",
	"valorCofins": "Valor COFINS", "aliqIpi": "Alíquota IPI",
	"aliqIcms": "Alíquota ICMS", "porcReducaoIcms": "% Redução ICMS",
	"cstIcms": "CST ICMS", "baseIcms": "Base ICMS",
	"valorCusto": "Valor Custo", "valorDesconto": "Valor Desconto",
	"desctra": "Descrição Transação", "servico": "Serviço",
	"libFatura": "Liberação Fatura",
	"latitude": "Latitude", "longitude": "Longitude",
}

// colunaPorExibicao inverso de NomesExibicao.
var colunaPorExibicao = map[string]string{}

func init() {
	for col, nome := range NomesExibicao {
		colunaPorExibicao[nome] = col
	}
}

// ColunaPorExibicao resolve um nome de exibição de volta para a coluna bruta.
func ColunaPorExibicao(nome string) (string, bool) {
	col, ok := colunaPorExibicao[nome]
	return col, ok
}

// Classes de coluna usadas pelo normalizador e pela formatação de exibição.
var (
	// ColunasInteiras identificadores inteiros; parse com default 0 e
	// remoção do sufixo ".0" herdado da codificação numérica do feed.
	ColunasInteiras = map[string]bool{
		"sequencial": true, "tipo": true, "codtra": true, "os": true,
		"itemOs": true, "codcli": true, "nota": true, "serie": true,
		"item": true, "codGrupo": true, "codSubGrupo": true,
		"codVendedor": true, "tipoOs": true, "codRegiao": true, "servico": true,
	}

	// ColunasMonetarias valores em reais; parse decimal com default 0.00.
	ColunasMonetarias = map[string]bool{
		"valorfaturado": true, "valoruni": true, "valoripi": true,
		"valoricms": true, "valoriss": true, "valorSubs": true,
		"valorFrete": true, "valorNota": true, "valorContabil": true,
		"retVlrPis": true, "retVlrCofins": true, "retVlrCsll": true,
		"valorPis": true, "valorCofins": true, "baseIcms": true,
		"valorCusto": true, "valorDesconto": true,
	}

	// ColunasSentinelaNC colunas de exibição que recebem "N/C" quando nulas.
	ColunasSentinelaNC = map[string]bool{
		"grupo": true, "subGrupo": true, "vendedor": true,
		"vendedorRed": true, "descricaoTipoOs": true, "regiao": true,
	}
)

// ValorBruto devolve o valor tipado da coluna indicada, para busca textual e
// montagem de visões por posição. Colunas desconhecidas devolvem nil.
func (l *LinhaFaturamento) ValorBruto(coluna string) any {
	switch coluna {
	case "sequencial":
		return l.Sequencial
	case "tipo":
		return l.Tipo
	case "filial":
		return l.Filial
	case "codtra":
		return l.Codtra
	case "os":
		return l.OS
	case "itemOs":
		return l.ItemOS
	case "codcli":
		return l.CodCli
	case "cnpj":
		return l.CNPJ
	case "razao":
		return l.Razao
	case "fantasia":
		return l.Fantasia
	case "cfop":
		return l.CFOP
	case "data":
		return l.Data
	case "emissao":
		return l.Emissao
	case "nota":
		return l.Nota
	case "serie":
		return l.Serie
	case "chaveNfe":
		return l.ChaveNfe
	case "item":
		return l.Item
	case "codProduto":
		return l.CodProduto
	case "produto":
		return l.Produto
	case "unidSaida":
		return l.UnidSaida
	case "ncm":
		return l.NCM
	case "codGrupo":
		return l.CodGrupo
	case "grupo":
		return l.Grupo
	case "codSubGrupo":
		return l.CodSubGrupo
	case "subGrupo":
		return l.SubGrupo
	case "codVendedor":
		return l.CodVendedor
	case "vendedor":
		return l.Vendedor
	case "vendedorRed":
		return l.VendedorRed
	case "cidade":
		return l.Cidade
	case "uf":
		return l.UF
	case "tipoOs":
		return l.TipoOS
	case "descricaoTipoOs":
		return l.DescricaoTipoOS
	case "codRegiao":
		return l.CodRegiao
	case "regiao":
		return l.Regiao
	case "valorfaturado":
		return l.ValorFaturado
	case "quant":
		return l.Quant
	case "valoruni":
		return l.ValorUni
	case "valoripi":
		return l.ValorIPI
	case "valoricms":
		return l.ValorICMS
	case "valoriss":
		return l.ValorISS
	case "valorSubs":
		return l.ValorSubs
	case "valorFrete":
		return l.ValorFrete
	case "valorNota":
		return l.ValorNota
	case "valorContabil":
		return l.ValorContabil
	case "retVlrPis":
		return l.RetVlrPis
	case "retVlrCofins":
		return l.RetVlrCofins
	case "retVlrCsll":
		return l.RetVlrCsll
	case "valorPis":
		return l.ValorPis
	case "valorCofins":
		return l.ValorCofins
	case "aliqIpi":
		return l.AliqIPI
	case "aliqIcms":
		return l.AliqICMS
	case "porcReducaoIcms":
		return l.PorcReducaoICMS
	case "cstIcms":
		return l.CstICMS
	case "baseIcms":
		return l.BaseICMS
	case "valorCusto":
		return l.ValorCusto
	case "valorDesconto":
		return l.ValorDesconto
	case "desctra":
		return l.Desctra
	case "servico":
		return l.Servico
	case "libFatura":
		return l.LibFatura
	case "latitude":
		if l.Latitude == nil {
			return nil
		}
		return *l.Latitude
	case "longitude":
		if l.Longitude == nil {
			return nil
		}
		return *l.Longitude
	}
	return nil
}
