// Package cubo implementa o cliente HTTP do cubo de faturamento: o endpoint
// upstream que devolve, em uma única resposta, o array JSON com todos os
// itens de nota fiscal.
package cubo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrFeedIndisponivel indica que o feed não pôde ser obtido (rede, status
// não-200 ou JSON de topo inválido). É a única falha fatal do pipeline:
// na inicialização ela aborta o processo.
var ErrFeedIndisponivel = errors.New("feed de faturamento indisponível")

// Client cliente do feed. O fetch é único e bloqueante, com timeout limitado;
// não há contrato de paginação.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient constrói o cliente com o timeout informado.
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// BuscarRegistros faz o GET do feed e decodifica o array de registros brutos.
// Os valores numéricos são preservados como json.Number para que a coerção
// por coluna decida o tipo final sem perda de precisão.
func (c *Client) BuscarRegistros(ctx context.Context) ([]map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: montar requisição: %v", ErrFeedIndisponivel, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFeedIndisponivel, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status HTTP %d", ErrFeedIndisponivel, resp.StatusCode)
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()

	var registros []map[string]any
	if err := dec.Decode(&registros); err != nil {
		return nil, fmt.Errorf("%w: decodificar JSON: %v", ErrFeedIndisponivel, err)
	}
	return registros, nil
}
