// Package configstore persiste as preferências de visibilidade de gráficos
// do dashboard em um arquivo JSON plano (chave do gráfico → habilitado).
package configstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// GraficosPadrao gráficos conhecidos, todos habilitados por padrão.
// A ausência do arquivo de configuração não é erro: significa padrões.
var GraficosPadrao = map[string]bool{
	"mapa_estados":     true,
	"barras_estados":   true,
	"linha_mensal":     true,
	"barras_subgrupos": true,
}

// FileStore store de configuração baseado em arquivo.
type FileStore struct {
	path string
}

// NewFileStore constrói o store apontando para o arquivo indicado.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Carregar lê a configuração. Arquivo ausente devolve os padrões; chaves
// desconhecidas no arquivo são preservadas (gráficos adicionados por versões
// mais novas do front).
func (s *FileStore) Carregar() (map[string]bool, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return clonar(GraficosPadrao), nil
	}
	if err != nil {
		return nil, fmt.Errorf("configstore: ler %s: %w", s.path, err)
	}

	var cfg map[string]bool
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("configstore: JSON inválido em %s: %w", s.path, err)
	}

	// Completa com os padrões para gráficos que o arquivo não menciona
	for k, v := range GraficosPadrao {
		if _, ok := cfg[k]; !ok {
			cfg[k] = v
		}
	}
	return cfg, nil
}

// Salvar grava a configuração de forma atômica (arquivo temporário + rename).
func (s *FileStore) Salvar(cfg map[string]bool) error {
	raw, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("configstore: serializar: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".config_dashboard-*")
	if err != nil {
		return fmt.Errorf("configstore: criar temporário: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("configstore: gravar: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("configstore: fechar temporário: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("configstore: publicar %s: %w", s.path, err)
	}
	return nil
}

func clonar(m map[string]bool) map[string]bool {
	c := make(map[string]bool, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
