package main

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/taxweave/taxweave/internal/adapter/report"
	"github.com/taxweave/taxweave/internal/domain"
)

func deadlinesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deadlines <state>",
		Short: "Generate the filing calendar for a state and year",
		Long: `Generate sales tax filing deadlines for a state and year.

When --frequency is omitted it is chosen from the estimated annual
liability: $4,800+ files monthly, $1,200+ quarterly, less annually.`,
		Args: cobra.ExactArgs(1),
		RunE: runDeadlines,
	}

	cmd.Flags().Int("year", time.Now().UTC().Year(), "Filing year")
	cmd.Flags().String("frequency", "", "Filing frequency (monthly, quarterly, annual)")
	cmd.Flags().String("liability", "0", "Estimated annual tax liability")
	cmd.Flags().String("as-of", "", "Status evaluation date (YYYY-MM-DD, default today)")

	return cmd
}

func runDeadlines(cmd *cobra.Command, args []string) error {
	year, _ := cmd.Flags().GetInt("year")
	frequency, _ := cmd.Flags().GetString("frequency")

	rawLiability, _ := cmd.Flags().GetString("liability")
	liability, err := decimal.NewFromString(rawLiability)
	if err != nil {
		return fmt.Errorf("invalid liability %q: %w", rawLiability, err)
	}

	rawAsOf, _ := cmd.Flags().GetString("as-of")
	asOf, err := parseDateFlag(rawAsOf)
	if err != nil {
		return err
	}

	deadlines := newChecker().FilingDeadlines(
		args[0], year, domain.FilingFrequency(frequency), liability, asOf)

	return emit(deadlines, func(r *report.Renderer) error {
		return r.FilingDeadlines(deadlines)
	})
}
