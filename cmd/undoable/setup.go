package main

import (
	"context"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/sandevgo/undoable/internal/button"
	"github.com/sandevgo/undoable/internal/cell"
	"github.com/sandevgo/undoable/internal/command"
	"github.com/sandevgo/undoable/internal/config"
	"github.com/sandevgo/undoable/internal/service/console"
	"github.com/sandevgo/undoable/pkg/log"
)

// session is a live addition button wired to a console router.
type session struct {
	accumulator *cell.Cell
	addend      *cell.Cell
	button      *button.SimpleButton
	router      *console.Router
}

func newSession(cfg *config.AppConfig, out io.Writer) *session {
	acc := cell.New(cfg.Accumulator)
	addend := cell.New(cfg.Addend)
	b := button.NewSimpleButton(command.NewAdd(acc, addend, out), out)

	return &session{
		accumulator: acc,
		addend:      addend,
		button:      b,
		router:      console.New(console.NewActions(b, acc, addend, out)),
	}
}

// loadConfig reads the runtime .env, if any, then parses the environment.
func loadConfig(ctx context.Context) *config.AppConfig {
	if err := initEnv(ctx, config.GetEnvPath()); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to init env")
	}
	return config.NewAppConfig(ctx)
}

func initEnv(ctx context.Context, envFile string) error {
	logger := log.FromCtx(ctx)

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
