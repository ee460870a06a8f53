package config

import "github.com/kelseyhightower/envconfig"

type Config struct {
	HttpPort    uint16 `envconfig:"HOSPITAL_HTTP_SERVER_PORT" default:"8080" required:"true"`
	CorsOrigins string `envconfig:"HOSPITAL_CORS_ALLOW_ORIGINS" default:"*"`
}

func New() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
