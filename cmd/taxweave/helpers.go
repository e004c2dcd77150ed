package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
	"github.com/taxweave/taxweave/internal/adapter/report"
	"github.com/taxweave/taxweave/internal/adapter/repository/static"
	"github.com/taxweave/taxweave/internal/domain"
	"github.com/taxweave/taxweave/internal/usecase/calculator"
	"github.com/taxweave/taxweave/internal/usecase/compliance"
	"github.com/taxweave/taxweave/internal/usecase/refund"
)

// newRates loads the embedded rate table
func newRates() domain.RateRepository {
	return static.NewRateRepository()
}

// newCalculator wires the calculator onto the embedded rate table
func newCalculator() *calculator.Calculator {
	return calculator.NewCalculator(newRates())
}

// newAnalyzer wires the refund analyzer onto a fresh calculator
func newAnalyzer() *refund.Analyzer {
	return refund.NewAnalyzer(newCalculator())
}

// newChecker wires the compliance checker
func newChecker() *compliance.Checker {
	return compliance.NewChecker()
}

// renderer returns a table renderer over stdout
func renderer() *report.Renderer {
	return report.NewRenderer(os.Stdout)
}

// jsonOutput reports whether the global --json flag is set
func jsonOutput() bool {
	return viper.GetBool("output.json")
}

// emit writes a payload as JSON when --json is set, otherwise calls the
// table renderer
func emit(payload any, table func(*report.Renderer) error) error {
	r := renderer()
	if jsonOutput() {
		return r.WriteJSON(payload)
	}
	return table(r)
}

// parseDateFlag parses an optional YYYY-MM-DD flag value; empty means
// the zero time, which downstream code treats as "now"
func parseDateFlag(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", value, err)
	}
	return t.UTC(), nil
}
