package domain

import "github.com/shopspring/decimal"

// TaxResult represents the outcome of a tax calculation for a single
// transaction. Derived data, never mutated after creation.
//
// Invariant: TotalTax equals StateTax plus LocalTax, each rounded to the
// cent independently before summing.
type TaxResult struct {
	TransactionID   string
	StateCode       string
	City            string
	TaxableAmount   decimal.Decimal
	StateTax        decimal.Decimal
	LocalTax        decimal.Decimal
	TotalTax        decimal.Decimal
	EffectiveRate   float64 // combined state + local fraction, 0 when exempt
	IsExempt        bool
	ExemptionReason string
	Warnings        []string
}

// TotalWithTax returns the taxable amount plus the total tax due
func (r *TaxResult) TotalWithTax() decimal.Decimal {
	return r.TaxableAmount.Add(r.TotalTax)
}

// BatchResult represents the aggregated outcome for a batch of transactions.
// Results preserve input order. Errors hold per-transaction failure
// descriptions keyed by transaction ID; one bad transaction never aborts
// the batch.
type BatchResult struct {
	Results          []TaxResult
	TotalTaxable     decimal.Decimal
	TotalTax         decimal.Decimal
	TotalExempt      decimal.Decimal
	TransactionCount int
	ExemptCount      int
	StateBreakdown   map[string]decimal.Decimal
	Errors           []string
}
