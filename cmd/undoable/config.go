package main

import (
	"fmt"

	"github.com/sandevgo/undoable/pkg/env"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:          "config",
	Short:        "Print the effective configuration as .env lines",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		cfg := loadConfig(ctx)
		content, err := env.MarshalEnv(cfg)
		if err != nil {
			return fmt.Errorf("failed to render config: %w", err)
		}

		_, err = fmt.Fprint(cmd.OutOrStdout(), content)
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
