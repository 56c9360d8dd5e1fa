package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sandevgo/undoable/internal/config"
	"github.com/sandevgo/undoable/pkg/log"
	"github.com/spf13/cobra"
)

var listActions bool

var runCmd = &cobra.Command{
	Use:   "run ACTION...",
	Short: "Run a scripted button session",
	Long: `Runs each argument as one action against a button holding an addition.
The first failing action stops the session.`,
	Example:      `  undoable run click "set 4" click unclick reclick show`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		cfg := loadConfig(ctx)
		out := cmd.OutOrStdout()

		if listActions {
			return printActions(cfg, out)
		}
		if len(args) == 0 {
			return errors.New("at least one action is required, see --list")
		}

		if err := runScript(ctx, cfg, out, args); err != nil {
			log.FromCtx(ctx).Error().Err(err).Msg("session aborted")
			return err
		}
		return nil
	},
}

func init() {
	runCmd.Flags().BoolVarP(&listActions, "list", "l", false, "list available actions")
	rootCmd.AddCommand(runCmd)
}

func runScript(ctx context.Context, cfg *config.AppConfig, out io.Writer, lines []string) error {
	s := newSession(cfg, out)
	for i, line := range lines {
		if err := s.router.Execute(ctx, line); err != nil {
			return fmt.Errorf("action %d (%q): %w", i+1, line, err)
		}
	}
	return nil
}

func printActions(cfg *config.AppConfig, out io.Writer) error {
	s := newSession(cfg, io.Discard)
	for _, a := range s.router.ListActions() {
		if _, err := fmt.Fprintf(out, "%-8s %s\n", a.Name(), a.Description()); err != nil {
			return err
		}
	}
	return nil
}
