package dataset_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appdataset "github.com/tecnolife/dashboard-vendas/internal/application/dataset"
	"github.com/tecnolife/dashboard-vendas/internal/application/dto"
	"github.com/tecnolife/dashboard-vendas/internal/domain"
	"github.com/tecnolife/dashboard-vendas/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

type storeTeste struct {
	ds *entity.Dataset
}

func (s *storeTeste) Atual() *entity.Dataset { return s.ds }

func novoStoreConsulta(t *testing.T) *storeTeste {
	t.Helper()
	dia := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		require.NoError(t, err)
		return d
	}
	linhas := []entity.LinhaFaturamento{
		{
			Razao: "Alfa Comércio", UF: "SP", Nota: 1,
			Emissao: dia("2024-01-10"), Data: dia("2024-01-10"),
			ValorNota: decimal.RequireFromString("1234.50"),
		},
		{
			Razao: "Beta Serviços", UF: "RJ", Nota: 2,
			Emissao: dia("2024-02-20"), Data: dia("2024-02-20"),
			ValorNota: decimal.RequireFromString("2000"),
		},
		{
			Razao: "Gama Indústria", UF: "MG", Nota: 3,
			Emissao: dia("2023-06-01"), Data: dia("2023-06-01"),
			ValorNota: decimal.RequireFromString("500"),
		},
	}
	return &storeTeste{ds: entity.NovoDataset(linhas, len(linhas))}
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultar
// ──────────────────────────────────────────────────────────────────────────────

func TestConsultar_TodasAsColunasNaOrdemCanonica(t *testing.T) {
	uc := appdataset.NewConsultaUseCase(novoStoreConsulta(t))

	pagina, err := uc.Consultar(dto.ConsultaDatasetRequest{})
	require.NoError(t, err)

	require.Len(t, pagina.Colunas, len(entity.ColunasCanonicas))
	assert.Equal(t, "Sequencial", pagina.Colunas[0])
	assert.Equal(t, "Longitude", pagina.Colunas[len(pagina.Colunas)-1])
	assert.Equal(t, 3, pagina.Page.Total)
}

func TestConsultar_SelecaoDeColunas_ReprojetadaNaOrdemCanonica(t *testing.T) {
	uc := appdataset.NewConsultaUseCase(novoStoreConsulta(t))

	// Pedidas fora de ordem; saem na ordem canônica (razao antes de uf,
	// uf antes de valorNota).
	pagina, err := uc.Consultar(dto.ConsultaDatasetRequest{
		Colunas: "Valor Nota, UF, Razão Social",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Razão Social", "UF", "Valor Nota"}, pagina.Colunas)
	require.NotEmpty(t, pagina.Linhas)
	assert.Equal(t, []string{"Alfa Comércio", "SP", "R$ 1.234,50"}, pagina.Linhas[0])
}

func TestConsultar_ColunaDesconhecida_DevolveErro(t *testing.T) {
	uc := appdataset.NewConsultaUseCase(novoStoreConsulta(t))

	_, err := uc.Consultar(dto.ConsultaDatasetRequest{Colunas: "Coluna Inventada"})
	assert.ErrorIs(t, err, domain.ErrColunaDesconhecida)
}

func TestConsultar_FiltroAnoMes(t *testing.T) {
	uc := appdataset.NewConsultaUseCase(novoStoreConsulta(t))

	pagina, err := uc.Consultar(dto.ConsultaDatasetRequest{Ano: 2024, Mes: 2})
	require.NoError(t, err)
	assert.Equal(t, 1, pagina.Page.Total, "só a nota de fevereiro/2024")

	// Mês sem ano não tem semântica
	_, err = uc.Consultar(dto.ConsultaDatasetRequest{Mes: 2})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)

	_, err = uc.Consultar(dto.ConsultaDatasetRequest{Ano: 2024, Mes: 13})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestConsultar_BuscaTextual_SobreValoresFormatados(t *testing.T) {
	uc := appdataset.NewConsultaUseCase(novoStoreConsulta(t))

	pagina, err := uc.Consultar(dto.ConsultaDatasetRequest{Busca: "beta"})
	require.NoError(t, err)
	assert.Equal(t, 1, pagina.Page.Total, "busca sem distinção de caixa")

	// O usuário busca o que vê: a moeda formatada
	pagina, err = uc.Consultar(dto.ConsultaDatasetRequest{Busca: "1.234,50"})
	require.NoError(t, err)
	assert.Equal(t, 1, pagina.Page.Total)
}

func TestConsultar_BuscaVarreColunasForaDaSelecao(t *testing.T) {
	uc := appdataset.NewConsultaUseCase(novoStoreConsulta(t))

	// "RJ" só existe na coluna UF, que não está na projeção pedida.
	pagina, err := uc.Consultar(dto.ConsultaDatasetRequest{
		Colunas: "Razão Social",
		Busca:   "RJ",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, pagina.Page.Total, "a seleção de colunas não restringe o alcance da busca")
	require.NotEmpty(t, pagina.Linhas)
	assert.Equal(t, []string{"Beta Serviços"}, pagina.Linhas[0])
}

func TestConsultar_Paginacao(t *testing.T) {
	uc := appdataset.NewConsultaUseCase(novoStoreConsulta(t))

	pagina, err := uc.Consultar(dto.ConsultaDatasetRequest{
		PageRequest: dto.PageRequest{Limit: 2, Offset: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, pagina.Page.Total)
	assert.Len(t, pagina.Linhas, 1, "última página parcial")

	fora, err := uc.Consultar(dto.ConsultaDatasetRequest{
		PageRequest: dto.PageRequest{Limit: 2, Offset: 50},
	})
	require.NoError(t, err)
	assert.Empty(t, fora.Linhas, "offset além do fim devolve página vazia, não erro")
}

func TestConsultar_SemSnapshot_DevolveErroDeDominio(t *testing.T) {
	uc := appdataset.NewConsultaUseCase(&storeTeste{})

	_, err := uc.Consultar(dto.ConsultaDatasetRequest{})
	assert.ErrorIs(t, err, domain.ErrDatasetNaoCarregado)
}

// ──────────────────────────────────────────────────────────────────────────────
// ExportarCSV
// ──────────────────────────────────────────────────────────────────────────────

func TestExportarCSV_SeparadorECabecalho(t *testing.T) {
	uc := appdataset.NewConsultaUseCase(novoStoreConsulta(t))

	raw, err := uc.ExportarCSV(dto.ConsultaDatasetRequest{})
	require.NoError(t, err)

	conteudo := string(raw)
	linhas := strings.Split(strings.TrimSpace(conteudo), "\r\n")
	require.Len(t, linhas, 4, "cabeçalho + três registros com CRLF")

	cabecalho := strings.Split(linhas[0], ";")
	assert.Equal(t, "Sequencial", cabecalho[0])
	assert.Equal(t, "Longitude", cabecalho[len(cabecalho)-1])
	assert.Contains(t, conteudo, "Alfa Comércio")
	assert.Contains(t, conteudo, "R$ 1.234,50", "valores saem formatados como na tabela")
}

func TestExportarCSV_RespeitaFiltros(t *testing.T) {
	uc := appdataset.NewConsultaUseCase(novoStoreConsulta(t))

	raw, err := uc.ExportarCSV(dto.ConsultaDatasetRequest{Ano: 2023})
	require.NoError(t, err)

	linhas := strings.Split(strings.TrimSpace(string(raw)), "\r\n")
	assert.Len(t, linhas, 2, "cabeçalho + só o registro de 2023")
	assert.Contains(t, linhas[1], "Gama Indústria")
}
