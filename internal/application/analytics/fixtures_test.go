package analytics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tecnolife/dashboard-vendas/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture compartilhada dos casos de uso de analytics
// ──────────────────────────────────────────────────────────────────────────────

// storeTeste snapshot fixo em memória.
type storeTeste struct {
	ds *entity.Dataset
}

func (s *storeTeste) Atual() *entity.Dataset { return s.ds }

func dia(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("data de teste inválida %q: %v", s, err)
	}
	return d
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// linhaVenda constrói uma linha mínima mas coerente para os agregados.
// Data e emissão recebem o mesmo dia.
func linhaVenda(t *testing.T, uf, vendedor, razao string, codcli, nota int64, d, valorNota, valorFaturado, grupo, subGrupo string) entity.LinhaFaturamento {
	t.Helper()
	return entity.LinhaFaturamento{
		CodCli:        codcli,
		Razao:         razao,
		Data:          dia(t, d),
		Emissao:       dia(t, d),
		Nota:          nota,
		Grupo:         grupo,
		SubGrupo:      subGrupo,
		Vendedor:      vendedor,
		UF:            uf,
		ValorFaturado: dec(valorFaturado),
		ValorNota:     dec(valorNota),
	}
}

// novoStoreTeste cenário padrão:
//
//	2023: Gama   (cli 3)  SP  nota 10  13000 / vf 12000  G1/S1
//	2024: Alfa   (cli 1)  SP  nota 1   1000  / vf 900    G1/S1  (10/jan, Ana)
//	      Beta   (cli 2)  RJ  nota 2   2000  / vf 1800   G1/S2  (20/jan, Bruno)
//	      Alfa   (cli 1)  SP  nota 3   500   / vf 450    G2/S1  (15/fev, Ana)
func novoStoreTeste(t *testing.T) *storeTeste {
	t.Helper()
	linhas := []entity.LinhaFaturamento{
		linhaVenda(t, "SP", "Carla", "Gama Indústria", 3, 10, "2023-05-10", "13000", "12000", "G1", "S1"),
		linhaVenda(t, "SP", "Ana", "Alfa Comércio", 1, 1, "2024-01-10", "1000", "900", "G1", "S1"),
		linhaVenda(t, "RJ", "Bruno", "Beta Serviços", 2, 2, "2024-01-20", "2000", "1800", "G1", "S2"),
		linhaVenda(t, "SP", "Ana", "Alfa Comércio", 1, 3, "2024-02-15", "500", "450", "G2", "S1"),
	}
	return &storeTeste{ds: entity.NovoDataset(linhas, len(linhas))}
}
