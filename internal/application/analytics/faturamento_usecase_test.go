package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tecnolife/dashboard-vendas/internal/application/analytics"
	"github.com/tecnolife/dashboard-vendas/internal/domain"
	"github.com/tecnolife/dashboard-vendas/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// PorEstado
// ──────────────────────────────────────────────────────────────────────────────

func TestPorEstado_AgregaEOrdenaDesc(t *testing.T) {
	uc := analytics.NewFaturamentoUseCase(novoStoreTeste(t))

	estados, err := uc.PorEstado([]int{2024})
	require.NoError(t, err)
	require.Len(t, estados, 2)

	// RJ 2000 > SP 1500
	assert.Equal(t, "RJ", estados[0].UF)
	assert.True(t, dec("2000").Equal(estados[0].Faturamento))
	assert.Equal(t, "SP", estados[1].UF)
	assert.True(t, dec("1500").Equal(estados[1].Faturamento))

	assert.Equal(t, "R$ 2.000,00", estados[0].FaturamentoFmt)
	require.NotNil(t, estados[0].Latitude, "estado conhecido deve ter coordenadas")
}

func TestPorEstado_EscalaDeBolhas(t *testing.T) {
	uc := analytics.NewFaturamentoUseCase(novoStoreTeste(t))

	estados, err := uc.PorEstado([]int{2024})
	require.NoError(t, err)
	require.Len(t, estados, 2)

	assert.Equal(t, 50.0, estados[0].TamanhoBolha, "maior faturamento recebe a bolha máxima")
	assert.Equal(t, 5.0, estados[1].TamanhoBolha, "menor faturamento recebe a bolha mínima")
}

func TestPorEstado_CodigoDesconhecido_CaiNoBucketEX(t *testing.T) {
	linhas := []entity.LinhaFaturamento{
		linhaVenda(t, "ZZ", "Ana", "Alfa", 1, 1, "2024-01-10", "300", "300", "G1", "S1"),
		linhaVenda(t, "SP", "Ana", "Alfa", 1, 2, "2024-01-11", "700", "700", "G1", "S1"),
	}
	store := &storeTeste{ds: entity.NovoDataset(linhas, len(linhas))}
	uc := analytics.NewFaturamentoUseCase(store)

	estados, err := uc.PorEstado(nil)
	require.NoError(t, err)
	require.Len(t, estados, 2)

	assert.Equal(t, "SP", estados[0].UF)
	assert.Equal(t, "EX", estados[1].UF)
	assert.Equal(t, "Exportação", estados[1].Nome)
	assert.Nil(t, estados[1].Latitude, "bucket EX não tem coordenadas")
}

func TestTop5Estados_ExcluiBucketEX_DoRanking(t *testing.T) {
	linhas := []entity.LinhaFaturamento{
		linhaVenda(t, "ZZ", "Ana", "Alfa", 1, 1, "2024-01-10", "9000", "9000", "G1", "S1"),
		linhaVenda(t, "SP", "Ana", "Alfa", 1, 2, "2024-01-11", "700", "700", "G1", "S1"),
		linhaVenda(t, "RJ", "Ana", "Alfa", 1, 3, "2024-01-12", "500", "500", "G1", "S1"),
	}
	store := &storeTeste{ds: entity.NovoDataset(linhas, len(linhas))}
	uc := analytics.NewFaturamentoUseCase(store)

	top, err := uc.Top5Estados(nil)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "SP", top[0].UF, "EX fica fora do ranking mesmo sendo o maior valor")
	assert.Equal(t, "RJ", top[1].UF)
}

// ──────────────────────────────────────────────────────────────────────────────
// PorMes
// ──────────────────────────────────────────────────────────────────────────────

func TestPorMes_OrdenaCronologicamente(t *testing.T) {
	uc := analytics.NewFaturamentoUseCase(novoStoreTeste(t))

	meses, err := uc.PorMes([]int{2024})
	require.NoError(t, err)
	require.Len(t, meses, 2)

	assert.Equal(t, "Janeiro", meses[0].Mes)
	assert.Equal(t, 2024, meses[0].Ano)
	assert.Equal(t, 1, meses[0].NumMes)
	assert.True(t, dec("3000").Equal(meses[0].Faturamento))

	assert.Equal(t, "Fevereiro", meses[1].Mes)
	assert.True(t, dec("500").Equal(meses[1].Faturamento))
}

func TestPorMes_SemFiltro_AtravessaAnos(t *testing.T) {
	uc := analytics.NewFaturamentoUseCase(novoStoreTeste(t))

	meses, err := uc.PorMes(nil)
	require.NoError(t, err)
	require.Len(t, meses, 3)
	assert.Equal(t, 2023, meses[0].Ano, "ano anterior vem primeiro na ordem cronológica")
	assert.Equal(t, "Maio", meses[0].Mes)
}

func TestPorMes_AnoSemLinhas_DevolveVazio(t *testing.T) {
	uc := analytics.NewFaturamentoUseCase(novoStoreTeste(t))

	meses, err := uc.PorMes([]int{2019})
	require.NoError(t, err)
	assert.Empty(t, meses, "filtro sem linhas devolve agregado vazio, não erro")
}

// ──────────────────────────────────────────────────────────────────────────────
// PorSubGrupo
// ──────────────────────────────────────────────────────────────────────────────

func TestPorSubGrupo_ZeroPreenchidoContraReferencia(t *testing.T) {
	uc := analytics.NewFaturamentoUseCase(novoStoreTeste(t))

	// 2024: S1 = 1500, S2 = 2000
	subGrupos, err := uc.PorSubGrupo([]int{2024})
	require.NoError(t, err)
	require.Len(t, subGrupos, 2)
	assert.Equal(t, "S2", subGrupos[0].SubGrupo)
	assert.True(t, dec("2000").Equal(subGrupos[0].Faturamento))

	// Ano sem linhas: as mesmas categorias aparecem, zeradas.
	vazios, err := uc.PorSubGrupo([]int{2019})
	require.NoError(t, err)
	require.Len(t, vazios, 2, "a contagem de categorias é invariante sob filtros")
	for _, sg := range vazios {
		assert.True(t, sg.Faturamento.IsZero())
		assert.Equal(t, "R$ 0,00", sg.FaturamentoFmt)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Resumo
// ──────────────────────────────────────────────────────────────────────────────

func TestResumo_KPIs(t *testing.T) {
	uc := analytics.NewFaturamentoUseCase(novoStoreTeste(t))

	resumo, err := uc.Resumo([]int{2024})
	require.NoError(t, err)

	assert.True(t, dec("3500").Equal(resumo.FaturamentoTotal))
	assert.Equal(t, "R$ 3.500,00", resumo.FaturamentoTotalFmt)
	assert.Equal(t, 2, resumo.TotalClientes)
	assert.Equal(t, 3, resumo.TotalLinhas)
	// 3 notas distintas → ticket 3500/3
	assert.True(t, dec("1166.67").Equal(resumo.TicketMedio), "ticket veio %s", resumo.TicketMedio)
	assert.True(t, dec("1.5").Equal(resumo.MediaPedidosCliente))
}

func TestResumo_FiltroSemLinhas_DevolveZeros(t *testing.T) {
	uc := analytics.NewFaturamentoUseCase(novoStoreTeste(t))

	resumo, err := uc.Resumo([]int{2019})
	require.NoError(t, err)
	assert.True(t, resumo.FaturamentoTotal.IsZero())
	assert.Zero(t, resumo.TotalClientes)
	assert.True(t, resumo.TicketMedio.IsZero(), "divisão por zero degrada para zero")
}

// ──────────────────────────────────────────────────────────────────────────────
// Dataset ausente
// ──────────────────────────────────────────────────────────────────────────────

func TestFaturamento_SemSnapshot_DevolveErroDeDominio(t *testing.T) {
	uc := analytics.NewFaturamentoUseCase(&storeTeste{})

	_, err := uc.PorEstado(nil)
	assert.ErrorIs(t, err, domain.ErrDatasetNaoCarregado)
}
