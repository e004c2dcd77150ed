package refund

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/taxweave/taxweave/internal/domain"
	"github.com/taxweave/taxweave/internal/usecase/calculator"
)

// statuteYears holds per-state statute of limitations for refund claims,
// in years from the transaction date
var statuteYears = map[string]int{
	"CA": 3,
	"NY": 3,
	"TX": 4,
	"FL": 3,
	"IL": 4,
	"PA": 3,
	"OH": 4,
	"NJ": 4,
	"WA": 4,
	"GA": 3,
	"NC": 3,
	"VA": 3,
	"MA": 3,
	"MN": 3,
	"CO": 3,
	"SC": 3,
	"AZ": 4,
	"TN": 3,
	"MO": 3,
}

const defaultStatuteYears = 3

// recoveryRate is the assumed claim success rate applied when projecting
// recoverable amounts
var recoveryRate = decimal.NewFromFloat(0.85)

// StatuteYears returns the refund statute of limitations for a state in
// years, falling back to the common three-year window
func StatuteYears(stateCode string) int {
	if years, ok := statuteYears[strings.ToUpper(stateCode)]; ok {
		return years
	}
	return defaultStatuteYears
}

// Analyzer identifies tax overpayments by comparing tax actually paid
// against the correctly calculated amount, considering rates,
// exemptions, and jurisdiction assignments
type Analyzer struct {
	Calculator *calculator.Calculator
}

// NewAnalyzer creates a new Analyzer instance
func NewAnalyzer(calc *calculator.Calculator) *Analyzer {
	return &Analyzer{Calculator: calc}
}

// checkStatute reports whether a transaction date is still within the
// state's refund window as of the reference date, and the date the
// window closes
func checkStatute(txnDate time.Time, stateCode string, asOf time.Time) (bool, time.Time) {
	years := StatuteYears(stateCode)
	cutoff := asOf.AddDate(-years, 0, 0)
	expiry := txnDate.AddDate(years, 0, 0)
	return !txnDate.Before(cutoff), expiry
}

// AnalyzeTransaction analyzes a single transaction for overpayment.
//
// Returns nil when no overpayment exists; records are only created for
// strictly positive overpayments. A zero as-of date means now.
func (a *Analyzer) AnalyzeTransaction(
	txn domain.Transaction,
	taxPaid decimal.Decimal,
	asOf time.Time,
) *domain.OverpaymentRecord {
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	result := a.Calculator.Calculate(txn)
	overpayment := taxPaid.Sub(result.TotalTax).Round(2)
	if !overpayment.IsPositive() {
		return nil
	}

	// Classify the overpayment. No-tax jurisdictions come back from the
	// calculator as exempt, so they are distinguished first.
	state, known := a.Calculator.Rates.Jurisdiction(txn.StateCode)
	var reason string
	switch {
	case known && state.BaseRate == 0 && !state.HasLocalTaxes:
		reason = "Tax collected in no-tax jurisdiction"
	case result.IsExempt:
		reason = fmt.Sprintf("Exempt transaction taxed: %s", result.ExemptionReason)
	case result.TotalTax.IsPositive():
		actualRate := taxPaid.Div(txn.Amount).InexactFloat64()
		reason = fmt.Sprintf(
			"Rate mismatch: paid %.4f%%, correct rate %.4f%%",
			actualRate*100, result.EffectiveRate*100)
	default:
		reason = "Overpayment detected"
	}

	eligible, expiry := checkStatute(txn.Date, txn.StateCode, asOf)

	return &domain.OverpaymentRecord{
		TransactionID:   txn.ID,
		TransactionDate: txn.Date,
		StateCode:       txn.StateCode,
		City:            txn.City,
		SaleAmount:      txn.Amount,
		TaxPaid:         taxPaid,
		TaxOwed:         result.TotalTax,
		Overpayment:     overpayment,
		Reason:          reason,
		RefundEligible:  eligible,
		StatuteExpiry:   expiry,
	}
}

// AnalyzeBatch analyzes a batch of (transaction, tax paid) pairs and
// aggregates the identified overpayments into a RefundSummary with
// state and reason breakdowns and an estimated recovery amount.
// Records past the statute of limitations stay in the summary but add a
// warning and are excluded from the recovery projection.
func (a *Analyzer) AnalyzeBatch(payments []domain.TransactionPayment, asOf time.Time) domain.RefundSummary {
	summary := domain.RefundSummary{
		TotalOverpayment:     decimal.Zero,
		TransactionsReviewed: len(payments),
		StateBreakdown:       make(map[string]decimal.Decimal),
		ReasonBreakdown:      make(map[string]decimal.Decimal),
		EstimatedRecovery:    decimal.Zero,
	}

	eligibleOverpayment := decimal.Zero

	for _, payment := range payments {
		record := a.AnalyzeTransaction(payment.Transaction, payment.TaxPaid, asOf)
		if record == nil {
			continue
		}

		summary.Records = append(summary.Records, *record)
		summary.OverpaymentCount++
		summary.TotalOverpayment = summary.TotalOverpayment.Add(record.Overpayment)

		addTo(summary.StateBreakdown, record.StateCode, record.Overpayment)
		addTo(summary.ReasonBreakdown, record.ReasonCategory(), record.Overpayment)

		if !record.RefundEligible {
			summary.Warnings = append(summary.Warnings, fmt.Sprintf(
				"Transaction %s in %s is past statute of limitations ($%s)",
				record.TransactionID, record.StateCode, record.Overpayment.StringFixed(2)))
			continue
		}

		eligibleOverpayment = eligibleOverpayment.Add(record.Overpayment)

		date := record.TransactionDate
		if summary.OldestEligible == nil || date.Before(*summary.OldestEligible) {
			oldest := date
			summary.OldestEligible = &oldest
		}
		if summary.NewestEligible == nil || date.After(*summary.NewestEligible) {
			newest := date
			summary.NewestEligible = &newest
		}
	}

	summary.EstimatedRecovery = eligibleOverpayment.Mul(recoveryRate).Round(2)
	return summary
}

// GenerateClaims groups a summary's eligible overpayments by state and
// produces the per-state claim data needed for each refund filing.
// Claims are sorted descending by requested amount.
func (a *Analyzer) GenerateClaims(summary domain.RefundSummary) []domain.RefundClaim {
	byState := make(map[string][]domain.OverpaymentRecord)
	for _, record := range summary.Records {
		if !record.RefundEligible {
			continue
		}
		byState[record.StateCode] = append(byState[record.StateCode], record)
	}

	states := make([]string, 0, len(byState))
	for state := range byState {
		states = append(states, state)
	}
	sort.Strings(states)

	claims := make([]domain.RefundClaim, 0, len(states))
	for _, state := range states {
		records := byState[state]

		start, end := records[0].TransactionDate, records[0].TransactionDate
		total := decimal.Zero
		reasonSet := make(map[string]bool)
		for _, record := range records {
			if record.TransactionDate.Before(start) {
				start = record.TransactionDate
			}
			if record.TransactionDate.After(end) {
				end = record.TransactionDate
			}
			total = total.Add(record.Overpayment)
			reasonSet[record.ReasonCategory()] = true
		}

		reasons := make([]string, 0, len(reasonSet))
		for reason := range reasonSet {
			reasons = append(reasons, reason)
		}
		sort.Strings(reasons)

		claims = append(claims, domain.RefundClaim{
			ID:                uuid.New(),
			StateCode:         state,
			ClaimPeriodStart:  start,
			ClaimPeriodEnd:    end,
			TotalRequested:    total,
			TransactionCount:  len(records),
			Records:           records,
			SupportingReasons: reasons,
			FilingNotes: fmt.Sprintf(
				"Refund claim for %d transactions. SOL: %d years from transaction date. Total requested: $%s",
				len(records), StatuteYears(state), total.StringFixed(2)),
		})
	}

	sort.SliceStable(claims, func(i, j int) bool {
		return claims[i].TotalRequested.GreaterThan(claims[j].TotalRequested)
	})
	return claims
}

// QuickScan runs the per-transaction analysis without statute or
// aggregation overhead, returning only overpayments at or above the
// minimum. Useful as a fast pre-check before a full analysis.
func (a *Analyzer) QuickScan(
	payments []domain.TransactionPayment,
	minimumOverpayment decimal.Decimal,
) []domain.OverpaymentRecord {
	var hits []domain.OverpaymentRecord
	for _, payment := range payments {
		record := a.AnalyzeTransaction(payment.Transaction, payment.TaxPaid, time.Time{})
		if record != nil && record.Overpayment.GreaterThanOrEqual(minimumOverpayment) {
			hits = append(hits, *record)
		}
	}
	return hits
}

// addTo accumulates an amount into a breakdown map
func addTo(breakdown map[string]decimal.Decimal, key string, amount decimal.Decimal) {
	current, ok := breakdown[key]
	if !ok {
		current = decimal.Zero
	}
	breakdown[key] = current.Add(amount)
}
