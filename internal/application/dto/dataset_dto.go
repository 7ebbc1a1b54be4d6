package dto

// ConsultaDatasetRequest parâmetros para GET /api/dataset.
type ConsultaDatasetRequest struct {
	// Colunas nomes de exibição separados por vírgula; vazio = todas, na
	// ordem canônica do esquema.
	Colunas string `query:"colunas"`
	Ano     int    `query:"ano"` // filtro pela data de emissão; 0 = todos
	Mes     int    `query:"mes"` // 1..12; 0 = todos (exige Ano quando informado)
	// Busca substring aplicada, sem distinção de caixa, sobre toda célula
	// das colunas selecionadas já formatadas.
	Busca string `query:"busca"`
	PageRequest
}

// PaginaDatasetDTO página da tabela detalhada, já formatada para exibição.
type PaginaDatasetDTO struct {
	Versao      string       `json:"versao"`       // identificador do snapshot
	CarregadoEm string       `json:"carregado_em"` // "02-01-2006 15:04:05"
	Colunas     []string     `json:"colunas"`      // nomes de exibição, em ordem canônica
	Linhas      [][]string   `json:"linhas"`       // valores formatados, alinhados a Colunas
	Page        PageResponse `json:"page"`
}

// InfoDatasetDTO metadados do snapshot corrente.
type InfoDatasetDTO struct {
	Versao          string `json:"versao"`
	CarregadoEm     string `json:"carregado_em"`
	TotalFeed       int    `json:"total_feed"`   // registros recebidos do feed
	TotalLinhas     int    `json:"total_linhas"` // linhas após o corte de horizonte
	AnosDisponiveis []int  `json:"anos_disponiveis"`
}
