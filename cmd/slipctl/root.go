package main

import (
	"context"
	"fmt"
	"packslip/internal/adapter/persistence/repository"
	"packslip/internal/config"
	"packslip/internal/usecase"
	"packslip/pkg/logger"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "slipctl",
		Short:         "Generate packing slips from marketplace CSV exports",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := "warn"
			if opts.verbose {
				level = "debug"
			}
			if _, err := logger.Init(level, "console"); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose logging")

	cmd.AddCommand(newBulkCmd(), newValidateCmd())
	return cmd
}

// openEventLogger records CLI runs in the configured event store so they show
// up on the dashboard next to API traffic.
func openEventLogger(ctx context.Context) (*usecase.EventLogger, func() error, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, nil, err
	}
	repo, closeFn := repository.OpenEventRepositoryWithFallback(ctx, cfg)
	return usecase.NewEventLogger(repo), closeFn, nil
}
