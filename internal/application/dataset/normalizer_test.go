package dataset

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tecnolife/dashboard-vendas/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

// registroBase um registro de feed válido e completo nos campos que importam.
func registroBase() map[string]any {
	return map[string]any{
		"sequencial":    json.Number("1"),
		"codcli":        json.Number("100"),
		"razao":         "Cliente Exemplo LTDA",
		"data":          "2024-03-07",
		"emissao":       "2024-03-05",
		"nota":          json.Number("5001"),
		"grupo":         "Equipamentos",
		"subGrupo":      "Bombas",
		"vendedor":      "Maria",
		"uf":            "SP",
		"valorfaturado": json.Number("100.456"),
		"valorNota":     json.Number("120.994"),
		"libFatura":     "2024-03-07 14:30:00",
	}
}

func normalizarUm(t *testing.T, reg map[string]any) entity.LinhaFaturamento {
	t.Helper()
	linhas := Normalizar([]map[string]any{reg}, OpcoesNormalizacao{})
	require.Len(t, linhas, 1)
	return linhas[0]
}

// ──────────────────────────────────────────────────────────────────────────────
// Coerção por classe de coluna
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalizar_CamposValidos(t *testing.T) {
	l := normalizarUm(t, registroBase())

	assert.Equal(t, int64(1), l.Sequencial)
	assert.Equal(t, int64(100), l.CodCli)
	assert.Equal(t, "Cliente Exemplo LTDA", l.Razao)
	assert.Equal(t, time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC), l.Data)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), l.Emissao)
	assert.Equal(t, time.Date(2024, 3, 7, 14, 30, 0, 0, time.UTC), l.LibFatura)
}

func TestNormalizar_ValoresMonetarios_ArredondadosParaDuasCasas(t *testing.T) {
	l := normalizarUm(t, registroBase())

	assert.True(t, decimal.RequireFromString("100.46").Equal(l.ValorFaturado),
		"valorfaturado deve sair arredondado a duas casas, veio %s", l.ValorFaturado)
	assert.True(t, decimal.RequireFromString("120.99").Equal(l.ValorNota),
		"valorNota deve sair arredondado a duas casas, veio %s", l.ValorNota)
}

func TestNormalizar_InteiroInvalido_DegradaParaZero(t *testing.T) {
	reg := registroBase()
	reg["nota"] = "abc"
	l := normalizarUm(t, reg)
	assert.Equal(t, int64(0), l.Nota, `"abc" em coluna inteira deve virar 0`)
}

func TestNormalizar_InteiroComSufixoPontoZero(t *testing.T) {
	reg := registroBase()
	reg["nota"] = "5001.0"
	reg["codcli"] = "77.0"
	l := normalizarUm(t, reg)
	assert.Equal(t, int64(5001), l.Nota)
	assert.Equal(t, int64(77), l.CodCli)
}

func TestNormalizar_MonetarioInvalido_DegradaParaZero(t *testing.T) {
	reg := registroBase()
	reg["valorNota"] = "não é número"
	l := normalizarUm(t, reg)
	assert.True(t, l.ValorNota.IsZero())
}

func TestNormalizar_MonetarioFormatoBrasileiro(t *testing.T) {
	reg := registroBase()
	reg["valorNota"] = "1.234,56"
	l := normalizarUm(t, reg)
	assert.True(t, decimal.RequireFromString("1234.56").Equal(l.ValorNota))
}

func TestNormalizar_DataInvalida_ViraZero_LinhaMantida(t *testing.T) {
	reg := registroBase()
	reg["data"] = "07/03/2024" // formato errado
	reg["emissao"] = nil
	l := normalizarUm(t, reg)

	assert.True(t, l.Data.IsZero(), "data inválida deve virar o valor zero")
	assert.True(t, l.Emissao.IsZero())
}

func TestNormalizar_CamposAusentes_RecebemDefaultDaClasse(t *testing.T) {
	l := normalizarUm(t, map[string]any{"uf": "RJ"})

	assert.Equal(t, int64(0), l.Sequencial)
	assert.True(t, l.ValorNota.IsZero())
	assert.Equal(t, "", l.Razao, "coluna de texto livre fica vazia, sem sentinela")
}

// ──────────────────────────────────────────────────────────────────────────────
// Política do sentinela N/C
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalizar_SentinelaNC_SoNasColunasDeExibicao(t *testing.T) {
	reg := registroBase()
	delete(reg, "grupo")
	delete(reg, "subGrupo")
	delete(reg, "vendedor")
	delete(reg, "razao")
	delete(reg, "uf")
	l := normalizarUm(t, reg)

	assert.Equal(t, entity.SentinelaNC, l.Grupo)
	assert.Equal(t, entity.SentinelaNC, l.SubGrupo)
	assert.Equal(t, entity.SentinelaNC, l.Vendedor)
	assert.Equal(t, entity.SentinelaNC, l.VendedorRed)
	assert.Equal(t, entity.SentinelaNC, l.DescricaoTipoOS)
	assert.Equal(t, entity.SentinelaNC, l.Regiao)

	// Colunas de chave/filtro ficam cruas
	assert.Equal(t, "", l.Razao)
	assert.Equal(t, "", l.UF, "uf nunca recebe sentinela: é chave de junção geográfica")
}

// ──────────────────────────────────────────────────────────────────────────────
// Horizonte e enriquecimento geográfico
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalizar_Horizonte_DescartaEmissoesAntigas(t *testing.T) {
	antiga := registroBase()
	antiga["emissao"] = "2017-06-01"
	recente := registroBase()
	recente["emissao"] = "2023-06-01"
	semEmissao := registroBase()
	semEmissao["emissao"] = nil

	linhas := Normalizar([]map[string]any{antiga, recente, semEmissao}, OpcoesNormalizacao{
		HorizonteAnos: 5,
		Agora:         time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC),
	})

	// Limite: 2024−5 = 2019. A de 2017 cai; a sem emissão fica.
	require.Len(t, linhas, 2)
	assert.Equal(t, 2023, linhas[0].Emissao.Year())
	assert.True(t, linhas[1].Emissao.IsZero(), "linha sem emissão não é cortada pelo horizonte")
}

func TestNormalizar_HorizonteZero_DesativaPreFiltro(t *testing.T) {
	antiga := registroBase()
	antiga["emissao"] = "1999-01-01"
	linhas := Normalizar([]map[string]any{antiga}, OpcoesNormalizacao{})
	assert.Len(t, linhas, 1)
}

func TestNormalizar_EnriquecimentoGeografico(t *testing.T) {
	sp := normalizarUm(t, registroBase()) // uf SP
	require.NotNil(t, sp.Latitude)
	require.NotNil(t, sp.Longitude)
	assert.InDelta(t, -23.55, *sp.Latitude, 0.01)
	assert.Equal(t, "SP", sp.UF, "a coluna uf fica intacta após o enriquecimento")

	desconhecida := registroBase()
	desconhecida["uf"] = "ZZ"
	zz := normalizarUm(t, desconhecida)
	assert.Nil(t, zz.Latitude, "uf sem referência não ganha coordenadas")
	assert.Equal(t, "ZZ", zz.UF, "uf desconhecida não é reescrita no dataset")
}

// ──────────────────────────────────────────────────────────────────────────────
// Determinismo
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalizar_Deterministica(t *testing.T) {
	brutos := []map[string]any{registroBase(), {"uf": "RJ"}, {"nota": "x"}}
	a := Normalizar(brutos, OpcoesNormalizacao{})
	b := Normalizar(brutos, OpcoesNormalizacao{})
	assert.Equal(t, a, b, "duas execuções sobre o mesmo bruto devem ser idênticas")
}
