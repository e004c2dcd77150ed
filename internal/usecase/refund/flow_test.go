package refund

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxweave/taxweave/internal/adapter/csvloader"
)

// Exercises the whole pipeline: CSV in, calculator-backed analysis,
// per-state claims out.
func TestRefundFlow_CSVToClaims(t *testing.T) {
	input := strings.NewReader(strings.Join([]string{
		"transaction_id,transaction_date,amount,state,city,item_category,tax_paid",
		"f1,2024-01-10,1000.00,TX,Houston,,100.00",
		"f2,2024-01-20,200.00,TX,Houston,grocery,16.50",
		"f3,2024-02-05,500.00,CA,Los Angeles,,48.75",
		"f4,2024-02-10,300.00,OR,Portland,,15.00",
	}, "\n"))

	loader := csvloader.NewLoader(nil)
	payments, err := loader.LoadPayments(input)
	require.NoError(t, err)
	require.Len(t, payments, 4)

	analyzer := newTestAnalyzer()
	asOf := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	summary := analyzer.AnalyzeBatch(payments, asOf)
	assert.Equal(t, 4, summary.TransactionsReviewed)
	// f3 paid exactly the right amount; the rest overpaid
	assert.Equal(t, 3, summary.OverpaymentCount)
	assert.True(t, summary.TotalOverpayment.Equal(decimal.RequireFromString("49.00")))

	claims := analyzer.GenerateClaims(summary)
	require.Len(t, claims, 2)
	assert.Equal(t, "TX", claims[0].StateCode)
	assert.True(t, claims[0].TotalRequested.Equal(decimal.RequireFromString("34.00")))
	assert.Equal(t, "OR", claims[1].StateCode)
	assert.Equal(t, []string{"Tax collected in no-tax jurisdiction"}, claims[1].SupportingReasons)
}
