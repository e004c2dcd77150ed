package main

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/taxweave/taxweave/internal/adapter/csvloader"
	"github.com/taxweave/taxweave/internal/adapter/report"
)

func refundCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refund",
		Short: "Analyze historical transactions for refundable overpayments",
	}

	cmd.AddCommand(refundAnalyzeCmd())
	cmd.AddCommand(refundClaimsCmd())
	cmd.AddCommand(refundScanCmd())

	return cmd
}

func refundAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Full overpayment analysis of a payments CSV",
		Long: `Analyze a CSV of historical transactions for tax overpayments.

The CSV must carry a tax_paid column alongside the transaction columns.
Each row's tax paid is compared against the correctly calculated tax;
positive differences are classified and checked against each state's
refund statute of limitations.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			file, _ := cmd.Flags().GetString("file")
			rawAsOf, _ := cmd.Flags().GetString("as-of")
			asOf, err := parseDateFlag(rawAsOf)
			if err != nil {
				return err
			}

			loader := csvloader.NewLoader(slog.Default())
			payments, err := loader.LoadPaymentsFile(file)
			if err != nil {
				return err
			}
			slog.Info("loaded payment records", "count", len(payments), "file", file)

			summary := newAnalyzer().AnalyzeBatch(payments, asOf)
			return emit(summary, func(r *report.Renderer) error {
				return r.RefundSummary(summary)
			})
		},
	}

	cmd.Flags().StringP("file", "f", "", "CSV file of transactions with tax_paid")
	cmd.Flags().String("as-of", "", "Statute evaluation date (YYYY-MM-DD, default today)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func refundClaimsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claims",
		Short: "Analyze a payments CSV and generate per-state refund claims",
		RunE: func(cmd *cobra.Command, _ []string) error {
			file, _ := cmd.Flags().GetString("file")
			rawAsOf, _ := cmd.Flags().GetString("as-of")
			asOf, err := parseDateFlag(rawAsOf)
			if err != nil {
				return err
			}

			loader := csvloader.NewLoader(slog.Default())
			payments, err := loader.LoadPaymentsFile(file)
			if err != nil {
				return err
			}

			analyzer := newAnalyzer()
			summary := analyzer.AnalyzeBatch(payments, asOf)
			claims := analyzer.GenerateClaims(summary)
			return emit(claims, func(r *report.Renderer) error {
				return r.Claims(claims)
			})
		},
	}

	cmd.Flags().StringP("file", "f", "", "CSV file of transactions with tax_paid")
	cmd.Flags().String("as-of", "", "Statute evaluation date (YYYY-MM-DD, default today)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func refundScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Quick scan for overpayments above a minimum",
		RunE: func(cmd *cobra.Command, _ []string) error {
			file, _ := cmd.Flags().GetString("file")
			rawMinimum, _ := cmd.Flags().GetString("minimum")
			minimum, err := decimal.NewFromString(rawMinimum)
			if err != nil {
				return fmt.Errorf("invalid minimum %q: %w", rawMinimum, err)
			}

			loader := csvloader.NewLoader(slog.Default())
			payments, err := loader.LoadPaymentsFile(file)
			if err != nil {
				return err
			}

			hits := newAnalyzer().QuickScan(payments, minimum)

			if jsonOutput() {
				return renderer().WriteJSON(hits)
			}

			if len(hits) == 0 {
				fmt.Println("No overpayments found.")
				return nil
			}
			for _, record := range hits {
				fmt.Printf("%s  %s  $%s overpaid — %s\n",
					record.TransactionID, record.StateCode,
					record.Overpayment.StringFixed(2), record.Reason)
			}
			return nil
		},
	}

	cmd.Flags().StringP("file", "f", "", "CSV file of transactions with tax_paid")
	cmd.Flags().String("minimum", "0.01", "Minimum overpayment to report")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
