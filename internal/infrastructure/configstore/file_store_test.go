package configstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tecnolife/dashboard-vendas/internal/infrastructure/configstore"
)

func TestCarregar_ArquivoAusente_DevolvePadroes(t *testing.T) {
	store := configstore.NewFileStore(filepath.Join(t.TempDir(), "nao_existe.json"))

	cfg, err := store.Carregar()
	require.NoError(t, err)
	assert.Equal(t, configstore.GraficosPadrao, cfg)

	// O resultado é uma cópia: alterá-lo não contamina os padrões
	cfg["mapa_estados"] = false
	assert.True(t, configstore.GraficosPadrao["mapa_estados"])
}

func TestSalvarECarregar_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config_dashboard.json")
	store := configstore.NewFileStore(path)

	require.NoError(t, store.Salvar(map[string]bool{
		"mapa_estados": false,
		"linha_mensal": true,
	}))

	cfg, err := store.Carregar()
	require.NoError(t, err)
	assert.False(t, cfg["mapa_estados"])
	assert.True(t, cfg["linha_mensal"])
	// Chaves não mencionadas no arquivo voltam com o padrão
	assert.True(t, cfg["barras_subgrupos"])
}

func TestCarregar_PreservaChavesDesconhecidas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config_dashboard.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"grafico_novo": false}`), 0o644))

	cfg, err := configstore.NewFileStore(path).Carregar()
	require.NoError(t, err)
	assert.False(t, cfg["grafico_novo"], "gráficos de versões mais novas do front são preservados")
	assert.True(t, cfg["mapa_estados"])
}

func TestCarregar_JSONInvalido_DevolveErro(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config_dashboard.json")
	require.NoError(t, os.WriteFile(path, []byte(`{quebrado`), 0o644))

	_, err := configstore.NewFileStore(path).Carregar()
	assert.Error(t, err)
}
