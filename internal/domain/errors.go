package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	// ErrDatasetNaoCarregado nenhuma carga do feed foi publicada ainda.
	ErrDatasetNaoCarregado = errors.New("dataset ainda não carregado")
	// ErrColunaDesconhecida nome de coluna/exibição fora do esquema canônico.
	ErrColunaDesconhecida = errors.New("coluna desconhecida")
	// ErrEntradaInvalida parâmetros de consulta inválidos.
	ErrEntradaInvalida = errors.New("entrada inválida")
)
