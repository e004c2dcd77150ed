package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/taxweave/taxweave/internal/adapter/report"
	"github.com/taxweave/taxweave/internal/domain"
)

func ratesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rates",
		Short: "Inspect the jurisdiction rate table",
	}

	cmd.AddCommand(ratesListCmd())
	cmd.AddCommand(ratesShowCmd())
	cmd.AddCommand(ratesHighestCmd())
	cmd.AddCommand(ratesLowestCmd())
	cmd.AddCommand(ratesExemptingCmd())

	return cmd
}

func ratesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all jurisdictions and their rates",
		RunE: func(_ *cobra.Command, _ []string) error {
			rates := newRates()
			all := rates.AllJurisdictions()
			return emit(all, func(r *report.Renderer) error {
				return r.Rates(all)
			})
		},
	}
}

func ratesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <state>",
		Short: "Show the full rate profile for one state",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			rates := newRates()
			state, ok := rates.Jurisdiction(args[0])
			if !ok {
				return fmt.Errorf("%w: %s", domain.ErrUnknownJurisdiction, args[0])
			}

			if jsonOutput() {
				return renderer().WriteJSON(state)
			}

			fmt.Printf("%s (%s)\n", state.StateName, state.StateCode)
			fmt.Printf("  Base rate:     %.3f%%\n", state.BaseRate*100)
			fmt.Printf("  Avg combined:  %.3f%%\n", state.AvgCombinedRate*100)
			if state.HasLocalTaxes {
				fmt.Printf("  Max local:     %.3f%%\n", state.MaxLocalRate*100)
				for _, local := range state.LocalRates {
					fmt.Printf("    %-20s %.3f%% (%s)\n", local.Jurisdiction, local.Rate*100, local.JurisdictionType)
				}
			}
			if len(state.Exemptions) > 0 {
				exemptions := make([]string, len(state.Exemptions))
				for i, category := range state.Exemptions {
					exemptions[i] = string(category)
				}
				fmt.Printf("  Exemptions:    %s\n", strings.Join(exemptions, ", "))
			}
			if state.Notes != "" {
				fmt.Printf("  Notes:         %s\n", state.Notes)
			}
			return nil
		},
	}
}

func ratesHighestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "highest",
		Short: "Show the jurisdictions with the highest combined rates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, _ := cmd.Flags().GetInt("count")
			rates := newRates()
			top := rates.HighestRates(n)
			return emit(top, func(r *report.Renderer) error {
				return r.Rates(top)
			})
		},
	}
	cmd.Flags().IntP("count", "n", 10, "Number of jurisdictions to show")
	return cmd
}

func ratesLowestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lowest",
		Short: "Show the taxing jurisdictions with the lowest combined rates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, _ := cmd.Flags().GetInt("count")
			rates := newRates()
			bottom := rates.LowestNonzeroRates(n)
			return emit(bottom, func(r *report.Renderer) error {
				return r.Rates(bottom)
			})
		},
	}
	cmd.Flags().IntP("count", "n", 10, "Number of jurisdictions to show")
	return cmd
}

func ratesExemptingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exempting <category>",
		Short: "List states that exempt a category, e.g. grocery",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			rates := newRates()
			states := rates.StatesExempting(domain.ExemptionCategory(strings.ToLower(args[0])))

			if jsonOutput() {
				return renderer().WriteJSON(states)
			}

			if len(states) == 0 {
				fmt.Printf("No states exempt %q\n", args[0])
				return nil
			}
			fmt.Printf("%d states exempt %s: %s\n", len(states), args[0], strings.Join(states, ", "))
			return nil
		},
	}
}
