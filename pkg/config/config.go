package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa a configuração da aplicação (leitura via Viper de env e opcionalmente arquivo).
type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	Feed      FeedConfig
	Dataset   DatasetConfig
	Dashboard DashboardConfig
}

// AppConfig configuração geral da aplicação.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuração do servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devolve o endereço de escuta (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// FeedConfig origem dos dados brutos (cubo de faturamento).
type FeedConfig struct {
	URL            string // endpoint que devolve o array JSON de itens de nota
	TimeoutSeconds int    // timeout da requisição; o fetch inicial é fatal se falhar
}

// DatasetConfig políticas de construção do dataset normalizado.
type DatasetConfig struct {
	// HorizonteAnos limita o dataset às emissões dos últimos N anos
	// (ano corrente − N). Zero desativa o pré-filtro.
	HorizonteAnos int
}

// DashboardConfig persistência das preferências de visibilidade de gráficos.
type DashboardConfig struct {
	ConfigPath string // arquivo JSON; ausência significa "todos habilitados"
}

// Load lê a configuração de variáveis de ambiente (e opcionalmente de arquivo).
// As env vars têm prioridade. Nomes esperados: APP_ENV, HTTP_PORT, FEED_URL, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: arquivo de configuração (.env ou config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos erro se não existir

	// Também tenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos erro se não existir

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "dashboard-vendas"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Feed: FeedConfig{
			URL:            getString(v, "FEED_URL", ""),
			TimeoutSeconds: getInt(v, "FEED_TIMEOUT_SECONDS", 60),
		},
		Dataset: DatasetConfig{
			HorizonteAnos: getInt(v, "DATASET_HORIZONTE_ANOS", 5),
		},
		Dashboard: DashboardConfig{
			ConfigPath: getString(v, "DASHBOARD_CONFIG_PATH", "config_dashboard.json"),
		},
	}

	if cfg.Feed.URL == "" {
		return nil, fmt.Errorf("config: FEED_URL é obrigatório")
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
