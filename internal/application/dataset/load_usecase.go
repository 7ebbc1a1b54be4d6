package dataset

import (
	"context"
	"fmt"

	"github.com/tecnolife/dashboard-vendas/internal/domain/entity"
)

// FeedClient porta para a origem dos registros brutos (o cubo de faturamento).
type FeedClient interface {
	BuscarRegistros(ctx context.Context) ([]map[string]any, error)
}

// Publicador porta para o destino do snapshot construído.
type Publicador interface {
	Publicar(d *entity.Dataset)
}

// CarregarUseCase executa o ciclo completo de carga: fetch do feed →
// normalização → snapshot → publicação.
//
// Na inicialização uma falha do feed é fatal (o processo não sobe sem
// dataset). Em um reload posterior o erro é devolvido ao chamador e o
// snapshot anterior permanece publicado.
type CarregarUseCase struct {
	feed  FeedClient
	store Publicador
	opts  OpcoesNormalizacao
}

// NewCarregarUseCase constrói o caso de uso.
func NewCarregarUseCase(feed FeedClient, store Publicador, opts OpcoesNormalizacao) *CarregarUseCase {
	return &CarregarUseCase{feed: feed, store: store, opts: opts}
}

// Executar carrega e publica um novo snapshot, devolvendo-o para log/inspeção.
func (uc *CarregarUseCase) Executar(ctx context.Context) (*entity.Dataset, error) {
	brutos, err := uc.feed.BuscarRegistros(ctx)
	if err != nil {
		return nil, fmt.Errorf("carregar dataset: %w", err)
	}

	linhas := Normalizar(brutos, uc.opts)
	ds := entity.NovoDataset(linhas, len(brutos))
	uc.store.Publicar(ds)
	return ds, nil
}
