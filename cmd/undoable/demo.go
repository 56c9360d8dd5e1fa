package main

import (
	"context"
	"fmt"
	"io"

	"github.com/sandevgo/undoable/internal/button"
	"github.com/sandevgo/undoable/internal/cell"
	"github.com/sandevgo/undoable/internal/command"
	"github.com/sandevgo/undoable/internal/config"
	"github.com/sandevgo/undoable/pkg/log"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the command and button demonstration",
	Long: `Runs an addition through execute, undo and redo, does the same with the
dollar giver, then clicks, unclicks and reclicks a button holding the addition
while the addend changes between clicks.`,
	SilenceUsage: true,
	RunE:         runDemoE,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemoE(cmd *cobra.Command, args []string) error {
	ctx, flushLog := setupLogger(cmd.Context())
	defer flushLog()

	cfg := loadConfig(ctx)
	if err := runDemo(ctx, cfg, cmd.OutOrStdout()); err != nil {
		log.FromCtx(ctx).Error().Err(err).Msg("demo aborted")
		return err
	}
	return nil
}

func runDemo(ctx context.Context, cfg *config.AppConfig, out io.Writer) error {
	logger := log.FromCtx(ctx)
	logger.Debug().
		Int("accumulator", cfg.Accumulator).
		Int("addend", cfg.Addend).
		Ints("steps", cfg.AddendSteps).
		Msg("starting demo")

	x := cell.New(cfg.Accumulator)
	y := cell.New(cfg.Addend)

	addition := command.NewAdd(x, y, out)
	if err := runSteps(ctx, addition.Execute, addition.Undo, addition.Redo); err != nil {
		return fmt.Errorf("addition: %w", err)
	}

	dollarGiver := command.NewDollarGiver(out)
	if err := runSteps(ctx, dollarGiver.Execute, dollarGiver.Undo, dollarGiver.Redo); err != nil {
		return fmt.Errorf("dollar giver: %w", err)
	}

	b := button.NewSimpleButton(addition, out)
	if err := b.Click(ctx); err != nil {
		return err
	}
	for _, step := range cfg.AddendSteps {
		y.Set(step)
		if err := b.Click(ctx); err != nil {
			return err
		}
	}
	if err := runSteps(ctx, b.Unclick, b.Unclick, b.Reclick); err != nil {
		return err
	}

	logger.Debug().Int("accumulator", x.Value()).Msg("demo finished")
	return nil
}

func runSteps(ctx context.Context, steps ...func(context.Context) error) error {
	for _, step := range steps {
		if err := step(ctx); err != nil {
			return err
		}
	}
	return nil
}
