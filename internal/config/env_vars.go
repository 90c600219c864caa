package config

import "strings"

type EnvVars struct {
	Port    string `env:"PORT" envDefault:"8081"`
	AppName string `env:"APP_NAME" envDefault:"Go OIDC Client"`
	Env     string `env:"ENV" envDefault:"DEV"`
}

var _ EnvConfig = EnvVars{}

func (e EnvVars) GetPort() string {
	if strings.HasPrefix(e.Port, ":") {
		return e.Port
	}
	return ":" + e.Port
}

func (e EnvVars) GetAppName() string {
	return e.AppName
}

func (e EnvVars) GetEnv() string {
	return e.Env
}
