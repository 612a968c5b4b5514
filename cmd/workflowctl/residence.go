package main

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/SscSPs/travel_desk_backend/internal/adapters/database/pgsql"
	"github.com/SscSPs/travel_desk_backend/internal/core/domain"
	portssvc "github.com/SscSPs/travel_desk_backend/internal/core/ports/services"
	"github.com/SscSPs/travel_desk_backend/internal/core/services"
	"github.com/SscSPs/travel_desk_backend/internal/core/workflow"
	"github.com/SscSPs/travel_desk_backend/pkg/database"
	"github.com/spf13/cobra"
)

// withResidenceService opens a short-lived pool and hands fn the service.
func withResidenceService(ctx context.Context, fn func(portssvc.ResidenceSvcFacade) error) error {
	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, 2, true)
	if err != nil {
		return err
	}
	defer pool.Close()
	container := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(pool))
	return fn(container.Residence)
}

func parseRecordID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("record ID must be a positive integer, got %q", raw)
	}
	return id, nil
}

func destinationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "destinations <recordID>",
		Short: "List the legal cursor destinations of a case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRecordID(args[0])
			if err != nil {
				return err
			}
			return withResidenceService(cmd.Context(), func(svc portssvc.ResidenceSvcFacade) error {
				dests, err := svc.ListLegalDestinations(cmd.Context(), id)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "current step %s (version %d)\n", dests.CurrentStep, dests.Version)
				if dests.Empty() {
					fmt.Fprintln(out, workflow.ReasonNoDestination)
					return nil
				}
				w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "DIRECTION\tCODE\tNAME")
				for _, s := range dests.Backward {
					fmt.Fprintf(w, "back\t%s\t%s\n", s.Code, s.DisplayName)
				}
				for _, s := range dests.Forward {
					fmt.Fprintf(w, "forward\t%s\t%s\n", s.Code, s.DisplayName)
				}
				return w.Flush()
			})
		},
	}
}

func historyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history <recordID>",
		Short: "Print the cursor-move history of a case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRecordID(args[0])
			if err != nil {
				return err
			}
			return withResidenceService(cmd.Context(), func(svc portssvc.ResidenceSvcFacade) error {
				entries, err := svc.ListTransitions(cmd.Context(), id)
				if err != nil {
					return err
				}
				return printHistory(cmd, entries)
			})
		},
	}
}

func printHistory(cmd *cobra.Command, entries []domain.TransitionEntry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tFROM\tTO\tREASON\tACTOR")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", e.OccurredAt.Format(time.RFC3339), e.From, e.To, e.Reason, e.Actor)
	}
	return w.Flush()
}
