// Command workflowctl is the operator tool for the residence workflow: it
// prints the step catalog, runs migrations, inspects cases and issues staff
// tokens.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/SscSPs/travel_desk_backend/internal/platform/config"
	"github.com/spf13/cobra"
)

var cfg *config.Config

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "workflowctl",
		Short:         "Operate the travel desk residence workflow",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			loaded, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			cfg = loaded
			return nil
		},
	}

	root.AddCommand(stepsCmd())
	root.AddCommand(migrateCmd())
	root.AddCommand(destinationsCmd())
	root.AddCommand(historyCmd())
	root.AddCommand(cacheCmd())
	root.AddCommand(tokenCmd())
	return root
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
