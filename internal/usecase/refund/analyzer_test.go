package refund

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxweave/taxweave/internal/adapter/repository/static"
	"github.com/taxweave/taxweave/internal/domain"
	"github.com/taxweave/taxweave/internal/usecase/calculator"
)

func newTestAnalyzer() *Analyzer {
	return NewAnalyzer(calculator.NewCalculator(static.NewRateRepository()))
}

func paidTxn(id, state, city, amount, taxPaid string, txnDate time.Time) domain.TransactionPayment {
	return domain.TransactionPayment{
		Transaction: domain.Transaction{
			ID:           id,
			Date:         txnDate,
			Amount:       decimal.RequireFromString(amount),
			StateCode:    state,
			City:         city,
			CustomerType: domain.CustomerRetail,
			PricingModel: domain.PricingTaxExclusive,
		},
		TaxPaid: decimal.RequireFromString(taxPaid),
	}
}

func TestStatuteYears(t *testing.T) {
	assert.Equal(t, 4, StatuteYears("TX"))
	assert.Equal(t, 3, StatuteYears("CA"))
	assert.Equal(t, 4, StatuteYears("wa"), "lookup should be case-insensitive")
	assert.Equal(t, 3, StatuteYears("ZZ"), "unknown states fall back to three years")
}

func TestAnalyzeTransaction_RateMismatch(t *testing.T) {
	analyzer := newTestAnalyzer()
	asOf := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	payment := paidTxn("r1", "TX", "Houston", "1000.00", "100.00",
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	record := analyzer.AnalyzeTransaction(payment.Transaction, payment.TaxPaid, asOf)

	require.NotNil(t, record)
	// Correct tax is 82.50 at 8.25%
	assert.True(t, record.TaxOwed.Equal(decimal.RequireFromString("82.50")))
	assert.True(t, record.Overpayment.Equal(decimal.RequireFromString("17.50")))
	assert.Equal(t, "Rate mismatch: paid 10.0000%, correct rate 8.2500%", record.Reason)
	assert.Equal(t, "Rate mismatch", record.ReasonCategory())
	assert.True(t, record.RefundEligible)
	// TX statute is four years from the transaction date
	assert.Equal(t, time.Date(2028, 1, 1, 0, 0, 0, 0, time.UTC), record.StatuteExpiry)
}

func TestAnalyzeTransaction_NoOverpaymentReturnsNil(t *testing.T) {
	analyzer := newTestAnalyzer()
	asOf := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	// Paid exactly the right amount
	correct := paidTxn("r2", "TX", "Houston", "1000.00", "82.50",
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Nil(t, analyzer.AnalyzeTransaction(correct.Transaction, correct.TaxPaid, asOf))

	// Underpaid is not a refund case
	under := paidTxn("r3", "TX", "Houston", "1000.00", "50.00",
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Nil(t, analyzer.AnalyzeTransaction(under.Transaction, under.TaxPaid, asOf))
}

func TestAnalyzeTransaction_ExemptTransactionTaxed(t *testing.T) {
	analyzer := newTestAnalyzer()
	asOf := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	payment := paidTxn("r4", "TX", "Houston", "200.00", "16.50",
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
	payment.Transaction.ItemCategory = "grocery"
	record := analyzer.AnalyzeTransaction(payment.Transaction, payment.TaxPaid, asOf)

	require.NotNil(t, record)
	assert.True(t, record.TaxOwed.IsZero())
	assert.True(t, record.Overpayment.Equal(decimal.RequireFromString("16.50")))
	assert.Equal(t, "Exempt transaction taxed: TX exempts grocery", record.Reason)
	assert.Equal(t, "Exempt transaction taxed", record.ReasonCategory())
}

func TestAnalyzeTransaction_NoTaxJurisdiction(t *testing.T) {
	analyzer := newTestAnalyzer()
	asOf := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	payment := paidTxn("r5", "OR", "Portland", "500.00", "25.00",
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	record := analyzer.AnalyzeTransaction(payment.Transaction, payment.TaxPaid, asOf)

	require.NotNil(t, record)
	assert.Equal(t, "Tax collected in no-tax jurisdiction", record.Reason)
	assert.True(t, record.Overpayment.Equal(decimal.RequireFromString("25.00")))
}

func TestAnalyzeTransaction_StatuteOfLimitations(t *testing.T) {
	analyzer := newTestAnalyzer()
	asOf := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	// CA statute is three years; a 2020 transaction is out of reach
	expired := paidTxn("r6", "CA", "Los Angeles", "1000.00", "120.00",
		time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))
	record := analyzer.AnalyzeTransaction(expired.Transaction, expired.TaxPaid, asOf)
	require.NotNil(t, record)
	assert.False(t, record.RefundEligible)

	// The same age in TX is still inside the four-year window
	within := paidTxn("r7", "TX", "Houston", "1000.00", "120.00",
		time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC))
	record = analyzer.AnalyzeTransaction(within.Transaction, within.TaxPaid, asOf)
	require.NotNil(t, record)
	assert.True(t, record.RefundEligible)
}

func TestAnalyzeBatch(t *testing.T) {
	analyzer := newTestAnalyzer()
	asOf := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	payments := []domain.TransactionPayment{
		paidTxn("b1", "TX", "Houston", "1000.00", "100.00",
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)), // 17.50 over
		paidTxn("b2", "TX", "Houston", "1000.00", "82.50",
			time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)), // exact
		paidTxn("b3", "CA", "Los Angeles", "1000.00", "120.00",
			time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)), // 22.50 over, expired
	}

	summary := analyzer.AnalyzeBatch(payments, asOf)

	assert.Equal(t, 3, summary.TransactionsReviewed)
	assert.Equal(t, 2, summary.OverpaymentCount)
	assert.True(t, summary.TotalOverpayment.Equal(decimal.RequireFromString("40.00")))

	// Only the eligible 17.50 feeds the recovery estimate: 17.50 * 0.85
	assert.True(t, summary.EstimatedRecovery.Equal(decimal.RequireFromString("14.88")),
		"estimated recovery should be 14.88, got %s", summary.EstimatedRecovery)

	assert.True(t, summary.StateBreakdown["TX"].Equal(decimal.RequireFromString("17.50")))
	assert.True(t, summary.StateBreakdown["CA"].Equal(decimal.RequireFromString("22.50")))
	assert.True(t, summary.ReasonBreakdown["Rate mismatch"].Equal(decimal.RequireFromString("40.00")))

	require.Len(t, summary.Warnings, 1)
	assert.Equal(t, "Transaction b3 in CA is past statute of limitations ($22.50)", summary.Warnings[0])

	require.NotNil(t, summary.OldestEligible)
	require.NotNil(t, summary.NewestEligible)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *summary.OldestEligible)
	assert.Equal(t, *summary.OldestEligible, *summary.NewestEligible)
}

func TestGenerateClaims(t *testing.T) {
	analyzer := newTestAnalyzer()
	asOf := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	grocery := paidTxn("c3", "TX", "Houston", "200.00", "16.50",
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	grocery.Transaction.ItemCategory = "grocery"

	payments := []domain.TransactionPayment{
		paidTxn("c1", "TX", "Houston", "1000.00", "100.00",
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		paidTxn("c2", "CA", "Los Angeles", "500.00", "60.00",
			time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)),
		grocery,
	}

	summary := analyzer.AnalyzeBatch(payments, asOf)
	claims := analyzer.GenerateClaims(summary)

	require.Len(t, claims, 2)

	// Sorted descending by requested amount: TX 34.00, CA 11.25
	tx := claims[0]
	assert.Equal(t, "TX", tx.StateCode)
	assert.True(t, tx.TotalRequested.Equal(decimal.RequireFromString("34.00")))
	assert.Equal(t, 2, tx.TransactionCount)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), tx.ClaimPeriodStart)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), tx.ClaimPeriodEnd)
	assert.Equal(t, []string{"Exempt transaction taxed", "Rate mismatch"}, tx.SupportingReasons)
	assert.Equal(t,
		"Refund claim for 2 transactions. SOL: 4 years from transaction date. Total requested: $34.00",
		tx.FilingNotes)
	assert.NotEqual(t, tx.ID, claims[1].ID)

	ca := claims[1]
	assert.Equal(t, "CA", ca.StateCode)
	assert.True(t, ca.TotalRequested.Equal(decimal.RequireFromString("11.25")))
}

func TestGenerateClaims_SkipsExpiredRecords(t *testing.T) {
	analyzer := newTestAnalyzer()
	asOf := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	summary := analyzer.AnalyzeBatch([]domain.TransactionPayment{
		paidTxn("c4", "CA", "Los Angeles", "1000.00", "120.00",
			time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)),
	}, asOf)

	assert.Empty(t, analyzer.GenerateClaims(summary))
}

func TestQuickScan(t *testing.T) {
	analyzer := newTestAnalyzer()
	now := time.Now().UTC()

	payments := []domain.TransactionPayment{
		paidTxn("q1", "TX", "Houston", "1000.00", "100.00", now), // 17.50 over
		paidTxn("q2", "TX", "Houston", "100.00", "8.30", now),    // 0.05 over
		paidTxn("q3", "TX", "Houston", "100.00", "8.25", now),    // exact
	}

	hits := analyzer.QuickScan(payments, decimal.RequireFromString("1.00"))

	require.Len(t, hits, 1)
	assert.Equal(t, "q1", hits[0].TransactionID)
}
