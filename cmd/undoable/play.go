package main

import (
	"bytes"

	"github.com/sandevgo/undoable/internal/service/ui"
	"github.com/sandevgo/undoable/pkg/log"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:          "play",
	Short:        "Press the button interactively",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		cfg := loadConfig(ctx)
		log.FromCtx(ctx).Info().Msg("starting play session")

		trace := &bytes.Buffer{}
		s := newSession(cfg, trace)
		m := ui.NewPlayModel(ctx, s.router, s.button, s.accumulator, s.addend, trace)
		return ui.RunPlay(ctx, m)
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
}
