package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/undoable/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"UNDOABLE_RUNTIME_PATH" envDefault:".undoable"`

	// Demo values
	Accumulator int   `env:"UNDOABLE_ACCUMULATOR" envDefault:"2"`
	Addend      int   `env:"UNDOABLE_ADDEND" envDefault:"3"`
	AddendSteps []int `env:"UNDOABLE_ADDEND_STEPS" envDefault:"4,1" envSeparator:","`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c, err := ParseAppConfig()
	if err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func ParseAppConfig() (*AppConfig, error) {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		return nil, err
	}
	c.RuntimePath = resolveRuntimePath(c.RuntimePath)
	return c, nil
}
