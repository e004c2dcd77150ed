package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/taxweave/taxweave/internal/adapter/report"
	"github.com/taxweave/taxweave/internal/domain"
)

func nexusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nexus",
		Short: "Evaluate economic nexus exposure",
	}

	cmd.AddCommand(nexusCheckCmd())
	cmd.AddCommand(nexusScanCmd())
	cmd.AddCommand(nexusAlertsCmd())

	return cmd
}

func nexusCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <state>",
		Short: "Check nexus status for one state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rawRevenue, _ := cmd.Flags().GetString("revenue")
			revenue, err := decimal.NewFromString(rawRevenue)
			if err != nil {
				return fmt.Errorf("invalid revenue %q: %w", rawRevenue, err)
			}
			transactions, _ := cmd.Flags().GetInt("transactions")
			physical, _ := cmd.Flags().GetBool("physical")

			status := newChecker().CheckNexus(args[0], revenue, transactions, physical)
			statuses := []domain.NexusStatus{status}
			return emit(status, func(r *report.Renderer) error {
				return r.NexusStatuses(statuses)
			})
		},
	}

	cmd.Flags().String("revenue", "0", "Annual revenue into the state")
	cmd.Flags().Int("transactions", 0, "Annual transaction count into the state")
	cmd.Flags().Bool("physical", false, "Physical presence in the state")

	return cmd
}

// parseStateAmounts parses repeated STATE=VALUE flag values
func parseStateAmounts(pairs []string) (map[string]decimal.Decimal, error) {
	amounts := make(map[string]decimal.Decimal, len(pairs))
	for _, pair := range pairs {
		state, raw, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid value %q (expected STATE=AMOUNT)", pair)
		}
		amount, err := decimal.NewFromString(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("invalid amount in %q: %w", pair, err)
		}
		amounts[strings.ToUpper(strings.TrimSpace(state))] = amount
	}
	return amounts, nil
}

// parseStateCounts parses repeated STATE=COUNT flag values
func parseStateCounts(pairs []string) (map[string]int, error) {
	counts := make(map[string]int, len(pairs))
	for _, pair := range pairs {
		state, raw, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid value %q (expected STATE=COUNT)", pair)
		}
		count, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("invalid count in %q: %w", pair, err)
		}
		counts[strings.ToUpper(strings.TrimSpace(state))] = count
	}
	return counts, nil
}

func nexusScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Evaluate nexus across all states with recorded activity",
		Long: `Evaluate nexus across every state with recorded activity. Activity is
given as repeated STATE=VALUE flags:

  taxweave nexus scan --revenue CA=600000 --revenue TX=450000 \
      --transactions NY=120 --physical WA`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rawRevenues, _ := cmd.Flags().GetStringSlice("revenue")
			revenues, err := parseStateAmounts(rawRevenues)
			if err != nil {
				return err
			}

			rawCounts, _ := cmd.Flags().GetStringSlice("transactions")
			counts, err := parseStateCounts(rawCounts)
			if err != nil {
				return err
			}

			physicalList, _ := cmd.Flags().GetStringSlice("physical")
			physical := make(map[string]bool, len(physicalList))
			for _, state := range physicalList {
				physical[strings.ToUpper(strings.TrimSpace(state))] = true
			}

			statuses := newChecker().CheckNexusAllStates(revenues, counts, physical)
			return emit(statuses, func(r *report.Renderer) error {
				return r.NexusStatuses(statuses)
			})
		},
	}

	cmd.Flags().StringSlice("revenue", nil, "Per-state revenue as STATE=AMOUNT")
	cmd.Flags().StringSlice("transactions", nil, "Per-state transaction count as STATE=COUNT")
	cmd.Flags().StringSlice("physical", nil, "States with physical presence")

	return cmd
}

func nexusAlertsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alerts",
		Short: "Generate compliance alerts from current activity",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rawRevenues, _ := cmd.Flags().GetStringSlice("revenue")
			revenues, err := parseStateAmounts(rawRevenues)
			if err != nil {
				return err
			}

			rawCounts, _ := cmd.Flags().GetStringSlice("transactions")
			counts, err := parseStateCounts(rawCounts)
			if err != nil {
				return err
			}

			registered, _ := cmd.Flags().GetStringSlice("registered")
			for i, state := range registered {
				registered[i] = strings.ToUpper(strings.TrimSpace(state))
			}

			rawAsOf, _ := cmd.Flags().GetString("as-of")
			asOf, err := parseDateFlag(rawAsOf)
			if err != nil {
				return err
			}

			checker := newChecker()
			checker.RegisterStates(registered)
			alerts := checker.GenerateAlerts(revenues, counts, registered, asOf)
			return emit(alerts, func(r *report.Renderer) error {
				return r.Alerts(alerts)
			})
		},
	}

	cmd.Flags().StringSlice("revenue", nil, "Per-state revenue as STATE=AMOUNT")
	cmd.Flags().StringSlice("transactions", nil, "Per-state transaction count as STATE=COUNT")
	cmd.Flags().StringSlice("registered", nil, "States already registered for collection")
	cmd.Flags().String("as-of", "", "Evaluation date (YYYY-MM-DD, default today)")

	return cmd
}
