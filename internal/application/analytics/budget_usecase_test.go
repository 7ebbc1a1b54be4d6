package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tecnolife/dashboard-vendas/internal/application/analytics"
	"github.com/tecnolife/dashboard-vendas/internal/domain/entity"
)

func TestAcompanhamento_MetaDerivadaDoAnoAnterior(t *testing.T) {
	uc := analytics.NewBudgetUseCase(novoStoreTeste(t))

	b, err := uc.Acompanhamento(2024, 10)
	require.NoError(t, err)

	assert.Equal(t, 2024, b.AnoAtual)
	assert.Equal(t, 2023, b.AnoAnterior)
	// 2023 realizou vf 12000 → meta = 12000 × 1,10
	assert.True(t, dec("12000").Equal(b.FaturamentoAnterior))
	assert.True(t, dec("13200").Equal(b.MetaAnual))
	assert.True(t, dec("1100").Equal(b.MetaMensal))
	assert.Equal(t, "R$ 13.200,00", b.MetaAnualFmt)
}

func TestAcompanhamento_RealizadoMesAMes(t *testing.T) {
	uc := analytics.NewBudgetUseCase(novoStoreTeste(t))

	b, err := uc.Acompanhamento(2024, 10)
	require.NoError(t, err)
	require.Len(t, b.Meses, 12, "os doze meses sempre aparecem, zerados quando sem venda")

	// Jan: vf 900+1800 = 2700; Fev: 450
	assert.Equal(t, "Janeiro", b.Meses[0].Mes)
	assert.True(t, dec("2700").Equal(b.Meses[0].Realizado))
	assert.True(t, dec("450").Equal(b.Meses[1].Realizado))
	assert.True(t, dec("3150").Equal(b.Meses[1].Acumulado))
	assert.True(t, b.Meses[11].Realizado.IsZero())
	assert.True(t, dec("3150").Equal(b.Meses[11].Acumulado))
}

func TestAcompanhamento_ProjecaoEPercentual(t *testing.T) {
	uc := analytics.NewBudgetUseCase(novoStoreTeste(t))

	b, err := uc.Acompanhamento(2024, 10)
	require.NoError(t, err)

	// Último mês com venda = fevereiro → média 3150/2 = 1575;
	// projeção = 3150 + 1575 × 10 meses restantes = 18900
	assert.True(t, dec("3150").Equal(b.RealizadoAcumulado))
	assert.True(t, dec("18900").Equal(b.ProjecaoAnual), "projeção veio %s", b.ProjecaoAnual)
	// 3150 / 13200 = 23,86%
	assert.True(t, dec("23.86").Equal(b.PercentualAtingido),
		"percentual atingido veio %s", b.PercentualAtingido)
}

func TestAcompanhamento_VariacaoDoUltimoMes(t *testing.T) {
	uc := analytics.NewBudgetUseCase(novoStoreTeste(t))

	b, err := uc.Acompanhamento(2024, 10)
	require.NoError(t, err)

	// Fevereiro realizou 450 contra meta mensal de 1100:
	// (450/1100 − 1) × 100 = −59,09%
	assert.Equal(t, 2, b.UltimoMes)
	assert.True(t, dec("-59.09").Equal(b.VariacaoUltimoMes), "variação veio %s", b.VariacaoUltimoMes)
	assert.Equal(t, "-59,1%", b.VariacaoUltimoMesFmt)
}

func TestAcompanhamento_AnoZero_UsaOMaisRecente(t *testing.T) {
	uc := analytics.NewBudgetUseCase(novoStoreTeste(t))

	b, err := uc.Acompanhamento(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 2024, b.AnoAtual)
	assert.Equal(t, 10, b.PercentualMeta, "percentual não informado usa o padrão")
}

func TestAcompanhamento_AnoSemDados(t *testing.T) {
	uc := analytics.NewBudgetUseCase(novoStoreTeste(t))

	b, err := uc.Acompanhamento(2019, 10)
	require.NoError(t, err)
	assert.True(t, b.SemDados)
	assert.True(t, b.MetaAnual.IsZero())
	assert.True(t, b.PercentualAtingido.IsZero(), "meta zero não divide")
}

func TestAcompanhamento_SemAnoAnterior_MetaZero(t *testing.T) {
	linhas := []entity.LinhaFaturamento{
		linhaVenda(t, "SP", "Ana", "Alfa", 1, 1, "2024-01-10", "1000", "1000", "G1", "S1"),
	}
	store := &storeTeste{ds: entity.NovoDataset(linhas, len(linhas))}
	uc := analytics.NewBudgetUseCase(store)

	b, err := uc.Acompanhamento(2024, 10)
	require.NoError(t, err)
	assert.False(t, b.SemDados, "há realizado no ano alvo")
	assert.True(t, b.MetaAnual.IsZero())
	assert.True(t, dec("1000").Equal(b.RealizadoAcumulado))
}
