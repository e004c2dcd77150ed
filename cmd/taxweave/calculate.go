package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/taxweave/taxweave/internal/adapter/csvloader"
	"github.com/taxweave/taxweave/internal/adapter/report"
	"github.com/taxweave/taxweave/internal/domain"
)

func calculateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate sales tax for a single sale or a CSV batch",
		Long: `Calculate sales tax for a transaction, or for a whole CSV file of
transactions when --file is given.

The CSV must have a header row naming at least "amount" and "state";
transaction_id, transaction_date, city, item_category, customer_type,
and exemption_certificate columns are recognized when present.`,
		RunE: runCalculate,
	}

	cmd.Flags().StringP("file", "f", "", "CSV file of transactions to calculate")
	cmd.Flags().StringP("amount", "a", "", "Sale amount, e.g. 500.00")
	cmd.Flags().StringP("state", "s", "", "Two-letter state code")
	cmd.Flags().StringP("city", "c", "", "City for local rate lookup")
	cmd.Flags().String("category", "", "Item category, e.g. grocery")
	cmd.Flags().String("customer-type", "retail", "Customer type (retail, wholesale, exempt)")
	cmd.Flags().String("certificate", "", "Exemption certificate identifier")
	cmd.Flags().Bool("inclusive", false, "Treat the amount as tax-inclusive")
	cmd.Flags().String("export-csv", "", "Write batch results to a CSV file")

	_ = viper.BindPFlag("calculate.file", cmd.Flags().Lookup("file"))
	_ = viper.BindPFlag("calculate.export_csv", cmd.Flags().Lookup("export-csv"))

	return cmd
}

func runCalculate(cmd *cobra.Command, _ []string) error {
	calc := newCalculator()

	if file := viper.GetString("calculate.file"); file != "" {
		loader := csvloader.NewLoader(slog.Default())
		transactions, err := loader.LoadTransactionsFile(file)
		if err != nil {
			return err
		}
		slog.Info("loaded transactions", "count", len(transactions), "file", file)

		batch := calc.CalculateBatch(transactions)

		if out := viper.GetString("calculate.export_csv"); out != "" {
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create export file: %w", err)
			}
			defer f.Close()
			if err := report.ExportBatchCSV(f, batch); err != nil {
				return err
			}
			slog.Info("exported results", "file", out)
		}

		return emit(batch, func(r *report.Renderer) error {
			return r.BatchResult(batch)
		})
	}

	rawAmount, _ := cmd.Flags().GetString("amount")
	state, _ := cmd.Flags().GetString("state")
	if rawAmount == "" || state == "" {
		return fmt.Errorf("either --file or both --amount and --state are required")
	}

	amount, err := decimal.NewFromString(rawAmount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", rawAmount, err)
	}

	city, _ := cmd.Flags().GetString("city")
	category, _ := cmd.Flags().GetString("category")
	customerType, _ := cmd.Flags().GetString("customer-type")
	certificate, _ := cmd.Flags().GetString("certificate")
	inclusive, _ := cmd.Flags().GetBool("inclusive")

	pricing := domain.PricingTaxExclusive
	if inclusive {
		pricing = domain.PricingTaxInclusive
	}

	txn := domain.Transaction{
		ID:                   "cli",
		Date:                 time.Now().UTC(),
		Amount:               amount,
		StateCode:            state,
		City:                 city,
		ItemCategory:         category,
		ExemptionCertificate: certificate,
		CustomerType:         domain.CustomerType(customerType),
		PricingModel:         pricing,
	}
	if err := txn.Validate(); err != nil {
		return err
	}

	result := calc.Calculate(txn)
	batch := domain.BatchResult{
		Results:          []domain.TaxResult{result},
		TotalTaxable:     result.TaxableAmount,
		TotalTax:         result.TotalTax,
		TransactionCount: 1,
		StateBreakdown:   map[string]decimal.Decimal{txn.StateCode: result.TotalTax},
	}
	if result.IsExempt {
		batch.ExemptCount = 1
		batch.TotalExempt = result.TaxableAmount
	}

	return emit(result, func(r *report.Renderer) error {
		return r.BatchResult(batch)
	})
}

func useTaxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "use-tax",
		Short: "Calculate use tax owed on an out-of-state purchase",
		RunE:  runUseTax,
	}

	cmd.Flags().StringP("amount", "a", "", "Purchase amount")
	cmd.Flags().StringP("state", "s", "", "Destination state code")
	cmd.Flags().StringP("city", "c", "", "Destination city")
	cmd.Flags().String("tax-paid", "0", "Sales tax already paid to the origin state")

	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("state")

	return cmd
}

func runUseTax(cmd *cobra.Command, _ []string) error {
	rawAmount, _ := cmd.Flags().GetString("amount")
	amount, err := decimal.NewFromString(rawAmount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", rawAmount, err)
	}

	rawPaid, _ := cmd.Flags().GetString("tax-paid")
	taxPaid, err := decimal.NewFromString(rawPaid)
	if err != nil {
		return fmt.Errorf("invalid tax-paid %q: %w", rawPaid, err)
	}

	state, _ := cmd.Flags().GetString("state")
	city, _ := cmd.Flags().GetString("city")

	calc := newCalculator()
	result := calc.CalculateUseTax(amount, state, city, taxPaid)

	if jsonOutput() {
		return renderer().WriteJSON(result)
	}

	fmt.Printf("Use tax owed in %s: $%s\n", result.StateCode, result.TotalTax.StringFixed(2))
	for _, warning := range result.Warnings {
		fmt.Println(report.WarningStyle.Render("⚠ " + warning))
	}
	return nil
}
