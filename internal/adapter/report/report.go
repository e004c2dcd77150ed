package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/taxweave/taxweave/internal/domain"
)

// Renderer writes formatted reports to a single output stream
type Renderer struct {
	w io.Writer
}

// NewRenderer creates a new Renderer instance
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// table returns a tabwriter over the renderer's output stream.
// Callers must flush it.
func (r *Renderer) table() *tabwriter.Writer {
	return tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
}

func (r *Renderer) title(text string) {
	fmt.Fprintln(r.w, TitleStyle.Render(text))
	fmt.Fprintln(r.w)
}

func (r *Renderer) header(w io.Writer, columns ...string) {
	styled := make([]string, len(columns))
	seps := make([]string, len(columns))
	for i, col := range columns {
		styled[i] = HeaderStyle.Render(col)
		seps[i] = strings.Repeat("─", len(col)+2)
	}
	fmt.Fprintln(w, strings.Join(styled, "\t"))
	fmt.Fprintln(w, strings.Join(seps, "\t"))
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// BatchResult renders a calculation batch as a per-transaction table
// followed by totals, the state breakdown, and any errors
func (r *Renderer) BatchResult(batch domain.BatchResult) error {
	r.title("Tax Calculation Results")

	w := r.table()
	r.header(w, "Transaction", "State", "City", "Taxable", "State Tax", "Local Tax", "Total", "Exempt")
	for _, result := range batch.Results {
		exempt := ""
		if result.IsExempt {
			exempt = result.ExemptionReason
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			result.TransactionID,
			result.StateCode,
			result.City,
			result.TaxableAmount.StringFixed(2),
			result.StateTax.StringFixed(2),
			result.LocalTax.StringFixed(2),
			result.TotalTax.StringFixed(2),
			exempt)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush results table: %w", err)
	}

	fmt.Fprintln(r.w)
	fmt.Fprintf(r.w, "Transactions: %d (%d exempt)\n", batch.TransactionCount, batch.ExemptCount)
	fmt.Fprintf(r.w, "Total taxable: $%s\n", batch.TotalTaxable.StringFixed(2))
	fmt.Fprintf(r.w, "Total tax:     $%s\n", batch.TotalTax.StringFixed(2))

	if len(batch.StateBreakdown) > 0 {
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, HeaderStyle.Render("Tax by state"))
		w = r.table()
		for _, state := range sortedKeys(batch.StateBreakdown) {
			fmt.Fprintf(w, "%s\t$%s\n", state, batch.StateBreakdown[state].StringFixed(2))
		}
		if err := w.Flush(); err != nil {
			return fmt.Errorf("flush state breakdown: %w", err)
		}
	}

	for _, result := range batch.Results {
		for _, warning := range result.Warnings {
			fmt.Fprintln(r.w, WarningStyle.Render("⚠ "+warning))
		}
	}
	for _, errMsg := range batch.Errors {
		fmt.Fprintln(r.w, ErrorStyle.Render("✗ "+errMsg))
	}
	return nil
}

// NexusStatuses renders nexus evaluation results, one row per state
func (r *Renderer) NexusStatuses(statuses []domain.NexusStatus) error {
	r.title("Economic Nexus Status")

	w := r.table()
	r.header(w, "State", "Nexus", "Revenue", "Txns", "Rev %", "Details")
	for _, status := range statuses {
		nexus := "no"
		if status.HasNexus {
			nexus = "YES"
		} else if status.ApproachingThreshold {
			nexus = "approaching"
		}
		fmt.Fprintf(w, "%s\t%s\t$%s\t%d\t%.1f%%\t%s\n",
			status.StateCode,
			nexus,
			status.Revenue.StringFixed(2),
			status.TransactionCount,
			status.RevenuePctOfThreshold,
			status.Details)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush nexus table: %w", err)
	}
	return nil
}

// FilingDeadlines renders a filing calendar table
func (r *Renderer) FilingDeadlines(deadlines []domain.FilingDeadline) error {
	r.title("Filing Deadlines")

	w := r.table()
	r.header(w, "State", "Period", "Due", "Frequency", "Status", "Days")
	for _, deadline := range deadlines {
		status := string(deadline.Status)
		if deadline.IsOverdue {
			status = ErrorStyle.Render(status)
		}
		fmt.Fprintf(w, "%s\t%s to %s\t%s\t%s\t%s\t%d\n",
			deadline.StateCode,
			formatDate(deadline.PeriodStart),
			formatDate(deadline.PeriodEnd),
			formatDate(deadline.DueDate),
			deadline.Frequency,
			status,
			deadline.DaysUntilDue)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush deadlines table: %w", err)
	}
	return nil
}

// Alerts renders compliance alerts grouped under their severity styling
func (r *Renderer) Alerts(alerts []domain.ComplianceAlert) error {
	r.title("Compliance Alerts")

	if len(alerts) == 0 {
		fmt.Fprintln(r.w, SubtleStyle.Render("No alerts."))
		return nil
	}

	for _, alert := range alerts {
		line := fmt.Sprintf("[%s] %s: %s", strings.ToUpper(string(alert.Severity)), alert.StateCode, alert.Message)
		switch alert.Severity {
		case domain.SeverityCritical:
			line = ErrorStyle.Render(line)
		case domain.SeverityWarning:
			line = WarningStyle.Render(line)
		default:
			line = SubtleStyle.Render(line)
		}
		fmt.Fprintln(r.w, line)
		fmt.Fprintf(r.w, "    → %s\n", alert.ActionRequired)
		if alert.Deadline != nil {
			fmt.Fprintf(r.w, "    due %s\n", formatDate(*alert.Deadline))
		}
	}
	return nil
}

// RefundSummary renders the outcome of a refund analysis run
func (r *Renderer) RefundSummary(summary domain.RefundSummary) error {
	r.title("Refund Analysis")

	fmt.Fprintf(r.w, "Transactions reviewed: %d\n", summary.TransactionsReviewed)
	fmt.Fprintf(r.w, "Overpayments found:    %d\n", summary.OverpaymentCount)
	fmt.Fprintf(r.w, "Total overpayment:     $%s\n", summary.TotalOverpayment.StringFixed(2))
	fmt.Fprintf(r.w, "Estimated recovery:    $%s\n", summary.EstimatedRecovery.StringFixed(2))
	if summary.OldestEligible != nil && summary.NewestEligible != nil {
		fmt.Fprintf(r.w, "Eligible period:       %s to %s\n",
			formatDate(*summary.OldestEligible), formatDate(*summary.NewestEligible))
	}

	if len(summary.Records) > 0 {
		fmt.Fprintln(r.w)
		w := r.table()
		r.header(w, "Transaction", "Date", "State", "Paid", "Owed", "Overpaid", "Eligible", "Reason")
		for _, record := range summary.Records {
			eligible := "yes"
			if !record.RefundEligible {
				eligible = "expired"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				record.TransactionID,
				formatDate(record.TransactionDate),
				record.StateCode,
				record.TaxPaid.StringFixed(2),
				record.TaxOwed.StringFixed(2),
				record.Overpayment.StringFixed(2),
				eligible,
				record.Reason)
		}
		if err := w.Flush(); err != nil {
			return fmt.Errorf("flush records table: %w", err)
		}
	}

	if len(summary.ReasonBreakdown) > 0 {
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, HeaderStyle.Render("By reason"))
		w := r.table()
		for _, reason := range sortedKeys(summary.ReasonBreakdown) {
			fmt.Fprintf(w, "%s\t$%s\n", reason, summary.ReasonBreakdown[reason].StringFixed(2))
		}
		if err := w.Flush(); err != nil {
			return fmt.Errorf("flush reason breakdown: %w", err)
		}
	}

	for _, warning := range summary.Warnings {
		fmt.Fprintln(r.w, WarningStyle.Render("⚠ "+warning))
	}
	return nil
}

// Claims renders generated refund claims, one block per state
func (r *Renderer) Claims(claims []domain.RefundClaim) error {
	r.title("Refund Claims")

	if len(claims) == 0 {
		fmt.Fprintln(r.w, SubtleStyle.Render("No eligible claims."))
		return nil
	}

	for _, claim := range claims {
		fmt.Fprintln(r.w, HeaderStyle.Render(fmt.Sprintf("%s — $%s (%d transactions)",
			claim.StateCode, claim.TotalRequested.StringFixed(2), claim.TransactionCount)))
		fmt.Fprintf(r.w, "  Claim ID: %s\n", claim.ID)
		fmt.Fprintf(r.w, "  Period:   %s to %s\n",
			formatDate(claim.ClaimPeriodStart), formatDate(claim.ClaimPeriodEnd))
		fmt.Fprintf(r.w, "  Reasons:  %s\n", strings.Join(claim.SupportingReasons, ", "))
		fmt.Fprintf(r.w, "  %s\n", SubtleStyle.Render(claim.FilingNotes))
		fmt.Fprintln(r.w)
	}
	return nil
}

// Rates renders jurisdiction rate profiles as a table
func (r *Renderer) Rates(states []*domain.JurisdictionRate) error {
	r.title("Jurisdiction Rates")

	w := r.table()
	r.header(w, "State", "Name", "Base", "Avg Combined", "Max Local", "Exemptions")
	for _, state := range states {
		exemptions := make([]string, len(state.Exemptions))
		for i, category := range state.Exemptions {
			exemptions[i] = string(category)
		}
		fmt.Fprintf(w, "%s\t%s\t%.2f%%\t%.2f%%\t%.2f%%\t%s\n",
			state.StateCode,
			state.StateName,
			state.BaseRate*100,
			state.AvgCombinedRate*100,
			state.MaxLocalRate*100,
			strings.Join(exemptions, ", "))
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush rates table: %w", err)
	}
	return nil
}

// WriteJSON writes any report payload as indented JSON
func (r *Renderer) WriteJSON(payload any) error {
	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(payload); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// ExportBatchCSV writes a calculation batch as CSV, one row per result
func ExportBatchCSV(w io.Writer, batch domain.BatchResult) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{
		"transaction_id", "state", "city", "taxable_amount",
		"state_tax", "local_tax", "total_tax", "exempt", "exemption_reason",
	}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, result := range batch.Results {
		exempt := "false"
		if result.IsExempt {
			exempt = "true"
		}
		if err := writer.Write([]string{
			result.TransactionID,
			result.StateCode,
			result.City,
			result.TaxableAmount.StringFixed(2),
			result.StateTax.StringFixed(2),
			result.LocalTax.StringFixed(2),
			result.TotalTax.StringFixed(2),
			exempt,
			result.ExemptionReason,
		}); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// sortedKeys returns the keys of a breakdown map in ascending order
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
