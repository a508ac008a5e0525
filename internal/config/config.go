package config

import (
	"github.com/kelseyhightower/envconfig"
)

var singleConfig *Config = nil

type Config struct {
	Database *dbConfig
	Service  *svcConfig
	Redis    *redisConfig
}

type dbConfig struct {
	Type     string `envconfig:"DB_TYPE" default:"pgsql"`
	Hostname string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	Name     string `envconfig:"DB_NAME" default:"hr"`
	User     string `envconfig:"DB_USER" default:"admin"`
	Password string `envconfig:"DB_PASS" default:"adminpass"`
}

type svcConfig struct {
	Address          string `envconfig:"HR_API_ADDRESS" default:":3443"`
	MetricsAddress   string `envconfig:"HR_API_METRICS_ADDRESS" default:":8080"`
	BaseUrl          string `envconfig:"HR_API_BASE_URL" default:"https://localhost:3443"`
	DocumentsBaseUrl string `envconfig:"HR_API_DOCUMENTS_BASE_URL" default:"https://localhost:9443"`
	SigningBaseUrl   string `envconfig:"HR_API_SIGNING_BASE_URL" default:"https://api.trustme.kz"`
	SigningAPIKey    string `envconfig:"HR_API_SIGNING_API_KEY" default:""`
	LogLevel         string `envconfig:"HR_API_LOG_LEVEL" default:"info"`
}

type redisConfig struct {
	Address  string `envconfig:"HR_API_REDIS_ADDRESS" default:""`
	Password string `envconfig:"HR_API_REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"HR_API_REDIS_DB" default:"0"`
}

func New() (*Config, error) {
	if singleConfig == nil {
		singleConfig = new(Config)
		if err := envconfig.Process("", singleConfig); err != nil {
			return nil, err
		}
	}
	return singleConfig, nil
}

// NewDefault returns a self-contained configuration backed by an
// in-memory sqlite database. Used by the test suites.
func NewDefault() *Config {
	return &Config{
		Database: &dbConfig{Type: "sqlite", Name: ":memory:"},
		Service:  &svcConfig{Address: ":3443", MetricsAddress: ":8080", LogLevel: "info"},
		Redis:    &redisConfig{},
	}
}
