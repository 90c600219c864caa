package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config interface {
	EnvConfig
	OidcConfig
	SessionConfig
	CorsConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
}

type CorsConfig interface {
	GetAllowedOrigins() AllowedOrigins
	GetAllowedMethods() string
	GetAllowedHeaders() string
}

type mainConfig struct {
	EnvVars
	Oidc
	Session
	Cors
}

// New loads all configuration from environment variables. It is called once
// at startup; the returned value is immutable and shared by every component.
func New() (Config, error) {
	var c mainConfig
	for _, section := range []any{&c.EnvVars, &c.Oidc, &c.Session, &c.Cors} {
		if err := env.Parse(section); err != nil {
			return nil, fmt.Errorf("parse env config: %w", err)
		}
	}
	if err := c.Session.validate(); err != nil {
		return nil, err
	}
	return c, nil
}
