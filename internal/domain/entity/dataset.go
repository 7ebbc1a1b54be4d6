package entity

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Dataset é o snapshot imutável do conjunto normalizado. É construído de uma
// vez a partir do feed e publicado por referência; nenhum consumidor o altera
// depois de publicado; filtros sempre produzem visões derivadas novas.
type Dataset struct {
	// Versao identifica o snapshot em logs e no /health.
	Versao uuid.UUID
	// CarregadoEm instante da publicação.
	CarregadoEm time.Time
	// TotalFeed registros recebidos do feed, antes do pré-filtro de horizonte.
	TotalFeed int

	Linhas []LinhaFaturamento

	// SubGrupos lista de referência de todos os sub-grupos do conjunto sem
	// filtro, em ordem alfabética. As agregações por sub-categoria preenchem
	// com zero as categorias ausentes após filtragem, usando esta lista,
	// a contagem de categorias é invariante sob filtros de data/ano.
	SubGrupos []string
}

// NovoDataset monta o snapshot e deriva a lista de referência de sub-grupos.
func NovoDataset(linhas []LinhaFaturamento, totalFeed int) *Dataset {
	vistos := make(map[string]bool)
	var subGrupos []string
	for i := range linhas {
		sg := linhas[i].SubGrupo
		if !vistos[sg] {
			vistos[sg] = true
			subGrupos = append(subGrupos, sg)
		}
	}
	sort.Strings(subGrupos)

	return &Dataset{
		Versao:      uuid.New(),
		CarregadoEm: time.Now(),
		TotalFeed:   totalFeed,
		Linhas:      linhas,
		SubGrupos:   subGrupos,
	}
}

// AnosDisponiveis anos distintos de emissão presentes no snapshot, ascendente.
// Datas nulas são ignoradas.
func (d *Dataset) AnosDisponiveis() []int {
	vistos := make(map[int]bool)
	var anos []int
	for i := range d.Linhas {
		if d.Linhas[i].Emissao.IsZero() {
			continue
		}
		ano := d.Linhas[i].Emissao.Year()
		if !vistos[ano] {
			vistos[ano] = true
			anos = append(anos, ano)
		}
	}
	sort.Ints(anos)
	return anos
}
