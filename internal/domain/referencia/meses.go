package referencia

import "time"

// meses nomes dos meses em português, indexados por time.Month−1.
var meses = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// NomeMes devolve o nome do mês em pt-BR: time.March -> "Março".
func NomeMes(m time.Month) string {
	return meses[m-1]
}
