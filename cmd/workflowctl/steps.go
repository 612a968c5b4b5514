package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/SscSPs/travel_desk_backend/internal/core/domain"
	"github.com/SscSPs/travel_desk_backend/internal/core/workflow"
	"github.com/spf13/cobra"
)

func stepsCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "steps <primary|family>",
		Short:     "Print the step catalog of a residence kind",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(domain.KindPrimary), string(domain.KindFamily)},
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, err := workflow.DefaultRegistry.StepsFor(domain.ResidenceKind(args[0]))
			if err != nil {
				return err
			}
			return printSteps(cmd.OutOrStdout(), steps)
		},
	}
}

func printSteps(out io.Writer, steps []domain.StepDefinition) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tORDINAL\tNAME\tTYPE\tDEFAULT COST\tREQUIRED FIELDS")
	for _, s := range steps {
		kind := "record"
		switch {
		case s.IsCheckpoint():
			kind = fmt.Sprintf("checkpoint %s->%s", s.Checkpoint.Origin, s.Checkpoint.Next)
		case s.RequiresTransaction:
			kind = "transaction"
		}
		cost := "-"
		if s.DefaultCost != nil {
			cost = s.DefaultCost.String()
		}
		var required []string
		for _, f := range s.Fields {
			if f.Required {
				required = append(required, f.Key)
			}
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\n", s.Code, s.Ordinal, s.DisplayName, kind, cost, strings.Join(required, ","))
	}
	return w.Flush()
}
