package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OverpaymentRecord represents a single identified tax overpayment.
// Only created when the overpayment is strictly positive.
type OverpaymentRecord struct {
	TransactionID   string
	TransactionDate time.Time
	StateCode       string
	City            string
	SaleAmount      decimal.Decimal
	TaxPaid         decimal.Decimal
	TaxOwed         decimal.Decimal
	Overpayment     decimal.Decimal
	Reason          string
	RefundEligible  bool      // false once the statute of limitations has run
	StatuteExpiry   time.Time // transaction date plus the state's SOL years
}

// ReasonCategory returns the classification portion of the reason,
// the text before the first colon
func (r *OverpaymentRecord) ReasonCategory() string {
	for i := 0; i < len(r.Reason); i++ {
		if r.Reason[i] == ':' {
			return r.Reason[:i]
		}
	}
	return r.Reason
}

// RefundSummary represents the aggregated outcome of a refund analysis run
type RefundSummary struct {
	TotalOverpayment     decimal.Decimal
	TransactionsReviewed int
	OverpaymentCount     int
	Records              []OverpaymentRecord
	StateBreakdown       map[string]decimal.Decimal
	ReasonBreakdown      map[string]decimal.Decimal
	OldestEligible       *time.Time
	NewestEligible       *time.Time
	EstimatedRecovery    decimal.Decimal // after the assumed claim success rate
	Warnings             []string
}

// RefundClaim represents the data needed to file a refund claim with a
// single state
type RefundClaim struct {
	ID                uuid.UUID
	StateCode         string
	ClaimPeriodStart  time.Time
	ClaimPeriodEnd    time.Time
	TotalRequested    decimal.Decimal
	TransactionCount  int
	Records           []OverpaymentRecord
	SupportingReasons []string
	FilingNotes       string
}
