// Package referencia contém as tabelas estáticas de referência geográfica e
// de calendário usadas no enriquecimento do dataset e nas visualizações.
package referencia

// BucketExportacao é o código de região usado para agrupar linhas cujo
// uf/país não consta em nenhuma tabela de referência (vendas de exportação
// ou códigos desconhecidos).
const BucketExportacao = "EX"

// Estado dados de referência de uma unidade federativa.
// As coordenadas são as da capital.
type Estado struct {
	Nome      string
	Latitude  float64
	Longitude float64
	Regiao    string // macro-região: Norte, Nordeste, Centro-Oeste, Sudeste, Sul
}

// Estados tabela das 27 unidades federativas brasileiras.
var Estados = map[string]Estado{
	"AC": {"Acre", -9.975377, -67.824897, "Norte"},
	"AL": {"Alagoas", -9.665972, -35.735117, "Nordeste"},
	"AP": {"Amapá", 0.034934, -51.066753, "Norte"},
	"AM": {"Amazonas", -3.119028, -60.021731, "Norte"},
	"BA": {"Bahia", -12.971606, -38.501587, "Nordeste"},
	"CE": {"Ceará", -3.731862, -38.526669, "Nordeste"},
	"DF": {"Distrito Federal", -15.794229, -47.882166, "Centro-Oeste"},
	"ES": {"Espírito Santo", -20.310055, -40.296432, "Sudeste"},
	"GO": {"Goiás", -16.686882, -49.264789, "Centro-Oeste"},
	"MA": {"Maranhão", -2.532621, -44.298914, "Nordeste"},
	"MT": {"Mato Grosso", -15.601411, -56.097892, "Centro-Oeste"},
	"MS": {"Mato Grosso do Sul", -20.464146, -54.615895, "Centro-Oeste"},
	"MG": {"Minas Gerais", -19.916681, -43.934493, "Sudeste"},
	"PA": {"Pará", -1.455833, -48.490277, "Norte"},
	"PB": {"Paraíba", -7.119496, -34.845016, "Nordeste"},
	"PR": {"Paraná", -25.427337, -49.273356, "Sul"},
	"PE": {"Pernambuco", -8.057838, -34.882897, "Nordeste"},
	"PI": {"Piauí", -5.089967, -42.809588, "Nordeste"},
	"RJ": {"Rio de Janeiro", -22.906847, -43.172897, "Sudeste"},
	"RN": {"Rio Grande do Norte", -5.794478, -35.211675, "Nordeste"},
	"RS": {"Rio Grande do Sul", -30.034647, -51.217658, "Sul"},
	"RO": {"Rondônia", -8.761160, -63.901089, "Norte"},
	"RR": {"Roraima", 2.819725, -60.672683, "Norte"},
	"SC": {"Santa Catarina", -27.596910, -48.549172, "Sul"},
	"SP": {"São Paulo", -23.550520, -46.633308, "Sudeste"},
	"SE": {"Sergipe", -10.916206, -37.077466, "Nordeste"},
	"TO": {"Tocantins", -10.249091, -48.324285, "Norte"},
}

// Pais dados de referência de um país de destino de exportação.
// Coordenadas da capital.
type Pais struct {
	Nome      string
	Latitude  float64
	Longitude float64
}

// Paises tabela secundária para linhas de exportação.
var Paises = map[string]Pais{
	"AR": {"Argentina", -34.603684, -58.381559},
	"BO": {"Bolívia", -16.489689, -68.119294},
	"CL": {"Chile", -33.448890, -70.669265},
	"CO": {"Colômbia", 4.710989, -74.072092},
	"CR": {"Costa Rica", 9.928069, -84.090725},
	"EC": {"Equador", -0.180653, -78.467838},
	"GT": {"Guatemala", 14.634915, -90.506882},
	"MX": {"México", 19.432608, -99.133208},
	"PA": {"Panamá", 8.537981, -80.782127},
	"PE": {"Peru", -12.046374, -77.042793},
	"PY": {"Paraguai", -25.263740, -57.575926},
	"UY": {"Uruguai", -34.901113, -56.164531},
	"VE": {"Venezuela", 10.480594, -66.903606},
	"US": {"Estados Unidos", 38.907192, -77.036871},
	"PT": {"Portugal", 38.722252, -9.139337},
}

// Coordenadas devolve a latitude/longitude do código informado.
// Estados têm prioridade sobre países (PA = Pará, não Panamá).
func Coordenadas(codigo string) (lat, lon float64, ok bool) {
	if e, found := Estados[codigo]; found {
		return e.Latitude, e.Longitude, true
	}
	if p, found := Paises[codigo]; found {
		return p.Latitude, p.Longitude, true
	}
	return 0, 0, false
}

// Nome devolve o nome de exibição do código (estado ou país).
// Códigos desconhecidos devolvem o próprio código.
func Nome(codigo string) string {
	if e, found := Estados[codigo]; found {
		return e.Nome
	}
	if p, found := Paises[codigo]; found {
		return p.Nome
	}
	return codigo
}

// Bucket resolve o código de região para fins de agrupamento visual:
// códigos conhecidos voltam inalterados, o restante cai no bucket de
// exportação. A coluna uf da linha nunca é alterada.
func Bucket(codigo string) string {
	if _, found := Estados[codigo]; found {
		return codigo
	}
	if _, found := Paises[codigo]; found {
		return codigo
	}
	return BucketExportacao
}

// Regiao devolve a macro-região do estado; vazio para países e desconhecidos.
func Regiao(codigo string) string {
	if e, found := Estados[codigo]; found {
		return e.Regiao
	}
	return ""
}
