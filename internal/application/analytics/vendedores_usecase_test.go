package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tecnolife/dashboard-vendas/internal/application/analytics"
	"github.com/tecnolife/dashboard-vendas/internal/domain"
)

func TestMetricas_PedidosContamNotasDistintas(t *testing.T) {
	uc := analytics.NewVendedoresUseCase(novoStoreTeste(t))

	m, err := uc.Metricas("2024-01-01", "2024-12-31", nil)
	require.NoError(t, err)
	require.Len(t, m.Vendedores, 2)
	assert.False(t, m.SemDados)

	// Ana: notas 1 e 3 → 2 pedidos, total 1500, ticket 750
	ana := m.Vendedores[0]
	assert.Equal(t, "Ana", ana.Vendedor, "ordenação por pedidos desc")
	assert.Equal(t, 2, ana.Pedidos)
	assert.True(t, dec("1500").Equal(ana.Total))
	assert.True(t, dec("750").Equal(ana.TicketMedio))
	assert.Equal(t, "R$ 750,00", ana.TicketMedioFmt)

	bruno := m.Vendedores[1]
	assert.Equal(t, 1, bruno.Pedidos)
	assert.True(t, dec("2000").Equal(bruno.Total))
}

func TestMetricas_EvolucaoMensal(t *testing.T) {
	uc := analytics.NewVendedoresUseCase(novoStoreTeste(t))

	m, err := uc.Metricas("2024-01-01", "2024-12-31", nil)
	require.NoError(t, err)
	require.Len(t, m.Evolucao, 2)

	assert.Equal(t, "2024-01", m.Evolucao[0].Periodo)
	assert.True(t, dec("3000").Equal(m.Evolucao[0].Faturamento))
	assert.Equal(t, "2024-02", m.Evolucao[1].Periodo)
	assert.True(t, dec("500").Equal(m.Evolucao[1].Faturamento))
}

func TestMetricas_RecortePorVendedor(t *testing.T) {
	uc := analytics.NewVendedoresUseCase(novoStoreTeste(t))

	m, err := uc.Metricas("2024-01-01", "2024-12-31", []string{"Bruno"})
	require.NoError(t, err)
	require.Len(t, m.Vendedores, 1)
	assert.Equal(t, "Bruno", m.Vendedores[0].Vendedor)
}

func TestMetricas_DatasVazias_UsamIntervaloDoConjunto(t *testing.T) {
	uc := analytics.NewVendedoresUseCase(novoStoreTeste(t))

	m, err := uc.Metricas("", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "2023-05-10", m.Periodo.Inicio)
	assert.Equal(t, "2024-02-15", m.Periodo.Fim)
	assert.Len(t, m.Vendedores, 3, "sem filtro todos os vendedores entram")
}

func TestMetricas_PeriodoSemLinhas_DevolveSemDados(t *testing.T) {
	uc := analytics.NewVendedoresUseCase(novoStoreTeste(t))

	m, err := uc.Metricas("2019-01-01", "2019-12-31", nil)
	require.NoError(t, err)
	assert.True(t, m.SemDados)
	assert.Empty(t, m.Vendedores)
	assert.Empty(t, m.Evolucao)
}

func TestMetricas_DataInvalida_DevolveErroDeEntrada(t *testing.T) {
	uc := analytics.NewVendedoresUseCase(novoStoreTeste(t))

	_, err := uc.Metricas("10/01/2024", "", nil)
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}
