package calculator

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxweave/taxweave/internal/adapter/repository/static"
	"github.com/taxweave/taxweave/internal/domain"
)

func newTestCalculator() *Calculator {
	return NewCalculator(static.NewRateRepository())
}

func retailTxn(id, state, city string, amount string) domain.Transaction {
	return domain.Transaction{
		ID:           id,
		Date:         time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		Amount:       decimal.RequireFromString(amount),
		StateCode:    state,
		City:         city,
		CustomerType: domain.CustomerRetail,
		PricingModel: domain.PricingTaxExclusive,
	}
}

func TestCalculate_TexasWithHoustonLocalRate(t *testing.T) {
	calc := newTestCalculator()

	result := calc.Calculate(retailTxn("t1", "TX", "Houston", "500.00"))

	// 6.25% state + 2% Houston local
	assert.True(t, result.StateTax.Equal(decimal.RequireFromString("31.25")), "state tax should be 31.25, got %s", result.StateTax)
	assert.True(t, result.LocalTax.Equal(decimal.RequireFromString("10.00")), "local tax should be 10.00, got %s", result.LocalTax)
	assert.True(t, result.TotalTax.Equal(decimal.RequireFromString("41.25")), "total tax should be 41.25, got %s", result.TotalTax)
	assert.InDelta(t, 0.0825, result.EffectiveRate, 1e-9)
	assert.True(t, result.TotalWithTax().Equal(decimal.RequireFromString("541.25")))
	assert.False(t, result.IsExempt)
	assert.Empty(t, result.Warnings)
}

func TestCalculate_CaliforniaLosAngeles(t *testing.T) {
	calc := newTestCalculator()

	result := calc.Calculate(retailTxn("t2", "CA", "Los Angeles", "200.00"))

	// 7.25% state + 2.5% LA local
	assert.True(t, result.StateTax.Equal(decimal.RequireFromString("14.50")))
	assert.True(t, result.LocalTax.Equal(decimal.RequireFromString("5.00")))
	assert.True(t, result.TotalTax.Equal(decimal.RequireFromString("19.50")))
}

func TestCalculate_GroceryExemptInTexas(t *testing.T) {
	calc := newTestCalculator()

	txn := retailTxn("t3", "TX", "Houston", "150.00")
	txn.ItemCategory = "grocery"
	result := calc.Calculate(txn)

	assert.True(t, result.IsExempt)
	assert.Equal(t, "TX exempts grocery", result.ExemptionReason)
	assert.True(t, result.TotalTax.IsZero())
}

func TestCalculate_NoTaxState(t *testing.T) {
	calc := newTestCalculator()

	result := calc.Calculate(retailTxn("t4", "OR", "Portland", "1000.00"))

	assert.True(t, result.IsExempt)
	assert.Equal(t, "Oregon has no sales tax", result.ExemptionReason)
	assert.True(t, result.TotalTax.IsZero())
}

func TestCalculate_UnknownStateDegradesWithWarning(t *testing.T) {
	calc := newTestCalculator()

	result := calc.Calculate(retailTxn("t5", "ZZ", "", "100.00"))

	assert.True(t, result.TotalTax.IsZero())
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "Unknown state code: ZZ", result.Warnings[0])
}

func TestCalculate_ExemptionPriority(t *testing.T) {
	calc := newTestCalculator()

	// Customer type outranks certificate and category
	txn := retailTxn("t6", "TX", "Houston", "100.00")
	txn.CustomerType = domain.CustomerWholesale
	txn.ExemptionCertificate = "CERT-42"
	txn.ItemCategory = "grocery"
	result := calc.Calculate(txn)
	require.True(t, result.IsExempt)
	assert.Equal(t, "Customer type: wholesale", result.ExemptionReason)

	// Certificate outranks category
	txn.CustomerType = domain.CustomerRetail
	result = calc.Calculate(txn)
	require.True(t, result.IsExempt)
	assert.Equal(t, "Exemption cert: CERT-42", result.ExemptionReason)
}

func TestCalculate_CategoryNotExemptInState(t *testing.T) {
	calc := newTestCalculator()

	// California taxes clothing; the category alone must not exempt
	txn := retailTxn("t7", "CA", "Los Angeles", "100.00")
	txn.ItemCategory = "clothing"
	result := calc.Calculate(txn)

	assert.False(t, result.IsExempt)
	assert.True(t, result.TotalTax.IsPositive())
}

func TestCalculate_UnknownCityUsesAverageLocalRate(t *testing.T) {
	calc := newTestCalculator()

	result := calc.Calculate(retailTxn("t8", "TX", "Nowheresville", "100.00"))

	// Avg combined 8.2% minus 6.25% state leaves 1.95% local
	assert.True(t, result.StateTax.Equal(decimal.RequireFromString("6.25")))
	assert.True(t, result.LocalTax.Equal(decimal.RequireFromString("1.95")))
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "No local rate found for Nowheresville, TX; used average local rate", result.Warnings[0])
}

func TestCalculate_NoCityUsesAverageLocalRate(t *testing.T) {
	calc := newTestCalculator()

	result := calc.Calculate(retailTxn("t9", "TX", "", "100.00"))

	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "No city specified for TX; used average local rate", result.Warnings[0])
}

func TestCalculate_IndependentComponentRounding(t *testing.T) {
	calc := newTestCalculator()

	// 100.40 * 6.25% = 6.275 -> 6.28; 100.40 * 2% = 2.008 -> 2.01.
	// Rounding the combined 8.283 once would give 8.28, not 8.29.
	result := calc.Calculate(retailTxn("t10", "TX", "Houston", "100.40"))

	assert.True(t, result.StateTax.Equal(decimal.RequireFromString("6.28")))
	assert.True(t, result.LocalTax.Equal(decimal.RequireFromString("2.01")))
	assert.True(t, result.TotalTax.Equal(decimal.RequireFromString("8.29")))
}

func TestCalculate_TaxInclusivePricing(t *testing.T) {
	calc := newTestCalculator()

	txn := retailTxn("t11", "TX", "Houston", "108.25")
	txn.PricingModel = domain.PricingTaxInclusive
	result := calc.Calculate(txn)

	// 108.25 / 1.0825 backs out to exactly 100.00
	assert.True(t, result.TaxableAmount.Equal(decimal.RequireFromString("100.00")))
	assert.True(t, result.StateTax.Equal(decimal.RequireFromString("6.25")))
	assert.True(t, result.LocalTax.Equal(decimal.RequireFromString("2.00")))
	assert.True(t, result.TotalTax.Equal(decimal.RequireFromString("8.25")))
}

func TestCalculateBatch(t *testing.T) {
	calc := newTestCalculator()

	grocery := retailTxn("b2", "TX", "Houston", "50.00")
	grocery.ItemCategory = "grocery"
	invalid := retailTxn("b3", "", "", "10.00")

	batch := calc.CalculateBatch([]domain.Transaction{
		retailTxn("b1", "TX", "Houston", "500.00"),
		grocery,
		invalid,
	})

	assert.Equal(t, 3, batch.TransactionCount)
	require.Len(t, batch.Results, 2)
	assert.Equal(t, 1, batch.ExemptCount)
	assert.True(t, batch.TotalExempt.Equal(decimal.RequireFromString("50.00")))
	assert.True(t, batch.TotalTax.Equal(decimal.RequireFromString("41.25")))

	require.Len(t, batch.Errors, 1)
	assert.Contains(t, batch.Errors[0], "Transaction b3:")
	assert.Contains(t, batch.Errors[0], "state code cannot be empty")

	stateTotal, ok := batch.StateBreakdown["TX"]
	require.True(t, ok)
	assert.True(t, stateTotal.Equal(decimal.RequireFromString("41.25")))
}

func TestCalculateUseTax(t *testing.T) {
	calc := newTestCalculator()

	result := calc.CalculateUseTax(
		decimal.RequireFromString("1000.00"), "TX", "Houston",
		decimal.RequireFromString("30.00"))

	// Owed 82.50, credit 30.00
	assert.True(t, result.TotalTax.Equal(decimal.RequireFromString("52.50")), "net use tax should be 52.50, got %s", result.TotalTax)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "Credit applied for $30.00 tax already paid", result.Warnings[0])

	// Gross components stay unreduced
	assert.True(t, result.StateTax.Equal(decimal.RequireFromString("62.50")))
	assert.True(t, result.LocalTax.Equal(decimal.RequireFromString("20.00")))
}

func TestCalculateUseTax_CreditCappedAtOwed(t *testing.T) {
	calc := newTestCalculator()

	result := calc.CalculateUseTax(
		decimal.RequireFromString("100.00"), "TX", "Houston",
		decimal.RequireFromString("50.00"))

	// Owed 8.25, credit capped there; nothing further due
	assert.True(t, result.TotalTax.IsZero())
}

func TestCalculateUseTax_NoTaxDestination(t *testing.T) {
	calc := newTestCalculator()

	result := calc.CalculateUseTax(
		decimal.RequireFromString("100.00"), "OR", "",
		decimal.Zero)

	assert.True(t, result.TotalTax.IsZero())
	assert.True(t, result.IsExempt)
}
