package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// CustomerType represents the buyer classification of a transaction
type CustomerType string

const (
	CustomerRetail    CustomerType = "retail"
	CustomerWholesale CustomerType = "wholesale"
	CustomerExempt    CustomerType = "exempt"
)

// PricingModel represents how tax relates to the transaction amount
type PricingModel string

const (
	// PricingTaxExclusive means tax is added on top of the amount
	PricingTaxExclusive PricingModel = "exclusive"
	// PricingTaxInclusive means tax is already embedded in the amount
	PricingTaxInclusive PricingModel = "inclusive"
)

// Transaction represents a single taxable transaction in the domain layer.
// Constructed once per input row and never mutated.
type Transaction struct {
	ID                   string
	Date                 time.Time
	Amount               decimal.Decimal // exact decimal, never binary float
	StateCode            string
	City                 string // optional
	ItemCategory         string // optional free-text category
	ExemptionCertificate string // optional certificate identifier
	CustomerType         CustomerType
	PricingModel         PricingModel
}

// Validate ensures the transaction adheres to domain rules
// Returns an error if validation fails
func (t *Transaction) Validate() error {
	if t.ID == "" {
		return errors.New("transaction ID cannot be empty")
	}

	if t.StateCode == "" {
		return errors.New("transaction state code cannot be empty")
	}

	if t.Amount.IsNegative() {
		return errors.New("transaction amount cannot be negative")
	}

	// Customer type defaults to retail upstream; anything else must be
	// one of the known classifications
	if t.CustomerType != CustomerRetail &&
		t.CustomerType != CustomerWholesale &&
		t.CustomerType != CustomerExempt {
		return errors.New("customer type must be retail, wholesale, or exempt")
	}

	if t.PricingModel != PricingTaxExclusive && t.PricingModel != PricingTaxInclusive {
		return errors.New("pricing model must be exclusive or inclusive")
	}

	return nil
}

// TransactionPayment pairs a transaction with the tax actually collected
// on it. This is the input unit for refund analysis.
type TransactionPayment struct {
	Transaction Transaction
	TaxPaid     decimal.Decimal
}
