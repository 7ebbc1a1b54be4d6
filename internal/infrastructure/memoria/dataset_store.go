// Package memoria guarda o snapshot do dataset em memória. Não há
// persistência: o dataset é reconstruído por inteiro a cada carga.
package memoria

import (
	"sync/atomic"

	"github.com/tecnolife/dashboard-vendas/internal/domain/entity"
)

// DatasetStore publica snapshots imutáveis do dataset. Leitores concorrentes
// compartilham o mesmo snapshot sem lock; um reload troca o ponteiro de forma
// atômica e nunca altera um snapshot já publicado.
type DatasetStore struct {
	atual atomic.Pointer[entity.Dataset]
}

// NewDatasetStore constrói o store vazio.
func NewDatasetStore() *DatasetStore {
	return &DatasetStore{}
}

// Publicar torna o snapshot o conjunto corrente.
func (s *DatasetStore) Publicar(d *entity.Dataset) {
	s.atual.Store(d)
}

// Atual devolve o snapshot corrente; nil antes da primeira carga.
func (s *DatasetStore) Atual() *entity.Dataset {
	return s.atual.Load()
}
