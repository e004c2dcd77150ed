package compliance

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/taxweave/taxweave/internal/domain"
)

// approachingPct is the share of a nexus threshold at which a state is
// flagged as approaching
const approachingPct = 80.0

// Checker monitors filing obligations, nexus thresholds, and compliance
// status for multi-state sellers.
//
// The registered-state set and filed-periods registry are instance-scoped
// mutable state; construct a fresh Checker per analysis run to avoid
// carryover.
type Checker struct {
	thresholds   map[string]domain.NexusThreshold
	registered   map[string]bool
	filedPeriods map[string]map[string]bool // state -> set of period keys
}

// NewChecker creates a new Checker with the embedded threshold table and
// empty registration and filing registries
func NewChecker() *Checker {
	thresholds := make(map[string]domain.NexusThreshold, len(nexusThresholdData))
	for code, data := range nexusThresholdData {
		thresholds[code] = domain.NexusThreshold{
			StateCode:            code,
			RevenueThreshold:     decimal.NewFromInt(data.revenue),
			TransactionThreshold: data.transactions,
			MeasurementPeriod:    data.period,
		}
	}

	return &Checker{
		thresholds:   thresholds,
		registered:   make(map[string]bool),
		filedPeriods: make(map[string]map[string]bool),
	}
}

// RegisterState marks a state as registered for sales tax collection
func (c *Checker) RegisterState(stateCode string) {
	c.registered[strings.ToUpper(stateCode)] = true
}

// RegisterStates bulk registers multiple states
func (c *Checker) RegisterStates(stateCodes []string) {
	for _, code := range stateCodes {
		c.RegisterState(code)
	}
}

// RegisteredStates returns the registered state codes sorted by code
func (c *Checker) RegisteredStates() []string {
	states := make([]string, 0, len(c.registered))
	for code := range c.registered {
		states = append(states, code)
	}
	sort.Strings(states)
	return states
}

// MarkFiled records that a return has been filed for a given period
func (c *Checker) MarkFiled(stateCode string, periodStart, periodEnd time.Time) {
	if c.filedPeriods[stateCode] == nil {
		c.filedPeriods[stateCode] = make(map[string]bool)
	}
	c.filedPeriods[stateCode][periodKey(periodStart, periodEnd)] = true
}

func (c *Checker) isFiled(stateCode string, periodStart, periodEnd time.Time) bool {
	return c.filedPeriods[stateCode][periodKey(periodStart, periodEnd)]
}

func periodKey(periodStart, periodEnd time.Time) string {
	return periodStart.Format("2006-01-02") + "_" + periodEnd.Format("2006-01-02")
}

// CheckNexus evaluates nexus status for a single state, considering both
// economic thresholds and physical presence.
//
// Economic nexus triggers when revenue meets the revenue threshold, or
// when the state defines a transaction threshold and the count meets it.
// ApproachingThreshold is only raised while nexus has not been
// established, to avoid redundant alerting afterwards.
func (c *Checker) CheckNexus(
	stateCode string,
	revenue decimal.Decimal,
	transactionCount int,
	physicalPresence bool,
) domain.NexusStatus {
	stateCode = strings.ToUpper(stateCode)

	if noNexusStates[stateCode] {
		return domain.NexusStatus{
			StateCode:        stateCode,
			Revenue:          revenue,
			TransactionCount: transactionCount,
			RevenueThreshold: decimal.Zero,
			Details:          fmt.Sprintf("%s has no sales tax", stateCode),
		}
	}

	threshold, ok := c.thresholds[stateCode]
	if !ok {
		// No economic nexus data; only physical presence can apply
		status := domain.NexusStatus{
			StateCode:        stateCode,
			HasNexus:         physicalPresence,
			Revenue:          revenue,
			TransactionCount: transactionCount,
			RevenueThreshold: decimal.Zero,
			Details:          "No economic nexus data available",
		}
		if physicalPresence {
			status.NexusTypes = []domain.NexusType{domain.NexusPhysical}
		}
		return status
	}

	var nexusTypes []domain.NexusType
	if physicalPresence {
		nexusTypes = append(nexusTypes, domain.NexusPhysical)
	}

	revenuePct := 0.0
	if threshold.RevenueThreshold.IsPositive() {
		revenuePct = revenue.Div(threshold.RevenueThreshold).InexactFloat64() * 100
	}

	var transactionPct *float64
	if threshold.TransactionThreshold != nil {
		pct := float64(transactionCount) / float64(*threshold.TransactionThreshold) * 100
		transactionPct = &pct
	}

	economicNexus := revenue.GreaterThanOrEqual(threshold.RevenueThreshold)
	if !economicNexus && threshold.TransactionThreshold != nil {
		economicNexus = transactionCount >= *threshold.TransactionThreshold
	}
	if economicNexus {
		nexusTypes = append(nexusTypes, domain.NexusEconomic)
	}

	hasNexus := len(nexusTypes) > 0
	approaching := revenuePct >= approachingPct ||
		(transactionPct != nil && *transactionPct >= approachingPct)

	details := []string{fmt.Sprintf(
		"Revenue: $%s / $%s (%.1f%%)",
		revenue.StringFixed(2), threshold.RevenueThreshold.StringFixed(2), revenuePct)}
	if threshold.TransactionThreshold != nil {
		details = append(details, fmt.Sprintf(
			"Transactions: %d / %d (%.1f%%)",
			transactionCount, *threshold.TransactionThreshold, *transactionPct))
	}
	details = append(details, fmt.Sprintf("Period: %s", threshold.MeasurementPeriod))

	return domain.NexusStatus{
		StateCode:                 stateCode,
		HasNexus:                  hasNexus,
		NexusTypes:                nexusTypes,
		Revenue:                   revenue,
		TransactionCount:          transactionCount,
		RevenueThreshold:          threshold.RevenueThreshold,
		TransactionThreshold:      threshold.TransactionThreshold,
		RevenuePctOfThreshold:     revenuePct,
		TransactionPctOfThreshold: transactionPct,
		ApproachingThreshold:      approaching && !hasNexus,
		Details:                   strings.Join(details, "; "),
	}
}

// CheckNexusAllStates evaluates nexus across every state with recorded
// activity. Results are sorted descending by revenue percentage of
// threshold; ties keep state-code order.
func (c *Checker) CheckNexusAllStates(
	stateRevenues map[string]decimal.Decimal,
	stateTransactions map[string]int,
	physicalStates map[string]bool,
) []domain.NexusStatus {
	results := make([]domain.NexusStatus, 0, len(stateRevenues))

	for _, state := range activityStates(stateRevenues, stateTransactions) {
		revenue, ok := stateRevenues[state]
		if !ok {
			revenue = decimal.Zero
		}
		status := c.CheckNexus(
			state,
			revenue,
			stateTransactions[state],
			physicalStates[strings.ToUpper(state)],
		)
		results = append(results, status)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RevenuePctOfThreshold > results[j].RevenuePctOfThreshold
	})
	return results
}

// activityStates returns the sorted union of states with any recorded
// revenue or transaction activity
func activityStates(
	stateRevenues map[string]decimal.Decimal,
	stateTransactions map[string]int,
) []string {
	seen := make(map[string]bool, len(stateRevenues))
	states := make([]string, 0, len(stateRevenues))
	for state := range stateRevenues {
		if !seen[state] {
			seen[state] = true
			states = append(states, state)
		}
	}
	for state := range stateTransactions {
		if !seen[state] {
			seen[state] = true
			states = append(states, state)
		}
	}
	sort.Strings(states)
	return states
}

// FilingDeadlines generates filing deadlines for a state and year.
//
// When frequency is empty it is auto-selected from the estimated annual
// liability: $4,800 or more files monthly, $1,200 or more quarterly,
// anything below annually. Deadline status reflects the filed-periods
// registry and the as-of date; a zero as-of date means now.
func (c *Checker) FilingDeadlines(
	stateCode string,
	year int,
	frequency domain.FilingFrequency,
	estimatedAnnualLiability decimal.Decimal,
	asOf time.Time,
) []domain.FilingDeadline {
	if asOf.IsZero() {
		asOf = time.Now().UTC().Truncate(24 * time.Hour)
	}
	if frequency == "" {
		frequency = determineFrequency(estimatedAnnualLiability)
	}

	var deadlines []domain.FilingDeadline

	switch frequency {
	case domain.FilingMonthly:
		perPeriod := estimatedAnnualLiability.Div(decimal.NewFromInt(12))
		for month := 1; month <= 12; month++ {
			start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
			end := start.AddDate(0, 1, 0).AddDate(0, 0, -1)
			deadlines = append(deadlines, c.buildDeadline(stateCode, start, end, frequency, perPeriod, asOf))
		}

	case domain.FilingQuarterly:
		perPeriod := estimatedAnnualLiability.Div(decimal.NewFromInt(4))
		for quarter := 0; quarter < 4; quarter++ {
			start := time.Date(year, time.Month(quarter*3+1), 1, 0, 0, 0, 0, time.UTC)
			end := start.AddDate(0, 3, 0).AddDate(0, 0, -1)
			deadlines = append(deadlines, c.buildDeadline(stateCode, start, end, frequency, perPeriod, asOf))
		}

	default: // annual
		start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
		deadlines = append(deadlines, c.buildDeadline(
			stateCode, start, end, domain.FilingAnnual, estimatedAnnualLiability, asOf))
	}

	return deadlines
}

// buildDeadline assembles a single deadline with its due date and status
func (c *Checker) buildDeadline(
	stateCode string,
	periodStart, periodEnd time.Time,
	frequency domain.FilingFrequency,
	estimatedLiability decimal.Decimal,
	asOf time.Time,
) domain.FilingDeadline {
	due := dueDate(periodEnd, stateCode)
	filed := c.isFiled(stateCode, periodStart, periodEnd)
	overdue := due.Before(asOf) && !filed

	status := domain.FilingStatusPending
	if filed {
		status = domain.FilingStatusFiled
	} else if overdue {
		status = domain.FilingStatusOverdue
	}

	return domain.FilingDeadline{
		StateCode:          stateCode,
		PeriodStart:        periodStart,
		PeriodEnd:          periodEnd,
		DueDate:            due,
		Frequency:          frequency,
		Status:             status,
		IsOverdue:          overdue,
		DaysUntilDue:       int(due.Sub(asOf).Hours() / 24),
		EstimatedLiability: estimatedLiability,
	}
}

// dueDate computes the filing due date for a period end: the state's due
// day in the following month, wrapping December into January
func dueDate(periodEnd time.Time, stateCode string) time.Time {
	year, month := periodEnd.Year(), periodEnd.Month()
	if month == time.December {
		return time.Date(year+1, time.January, dueDay(stateCode), 0, 0, 0, 0, time.UTC)
	}
	return time.Date(year, month+1, dueDay(stateCode), 0, 0, 0, 0, time.UTC)
}

// determineFrequency picks a filing frequency from estimated annual
// liability using common state thresholds
func determineFrequency(annualLiability decimal.Decimal) domain.FilingFrequency {
	switch {
	case annualLiability.GreaterThanOrEqual(decimal.NewFromInt(4800)):
		return domain.FilingMonthly
	case annualLiability.GreaterThanOrEqual(decimal.NewFromInt(1200)):
		return domain.FilingQuarterly
	default:
		return domain.FilingAnnual
	}
}

// OverdueFilings returns all overdue filing deadlines across the given
// states for a year, sorted ascending by due date. A nil state list
// falls back to the instance's registered states.
func (c *Checker) OverdueFilings(states []string, year int, asOf time.Time) []domain.FilingDeadline {
	if states == nil {
		states = c.RegisteredStates()
	}

	var overdue []domain.FilingDeadline
	for _, state := range states {
		for _, deadline := range c.FilingDeadlines(state, year, "", decimal.Zero, asOf) {
			if deadline.IsOverdue {
				overdue = append(overdue, deadline)
			}
		}
	}

	sort.SliceStable(overdue, func(i, j int) bool {
		return overdue[i].DueDate.Before(overdue[j].DueDate)
	})
	return overdue
}

// GenerateAlerts produces compliance alerts from current activity:
//   - critical: nexus established in an unregistered state, or a return
//     more than 30 days past due
//   - warning: approaching a nexus threshold, or a return up to 30 days
//     past due
//
// A nil registered list falls back to the instance's registered states.
// Alerts are ordered critical before warning before info, stable within
// each tier.
func (c *Checker) GenerateAlerts(
	stateRevenues map[string]decimal.Decimal,
	stateTransactions map[string]int,
	registeredStates []string,
	asOf time.Time,
) []domain.ComplianceAlert {
	if asOf.IsZero() {
		asOf = time.Now().UTC().Truncate(24 * time.Hour)
	}

	registered := make(map[string]bool)
	if registeredStates == nil {
		registeredStates = c.RegisteredStates()
	}
	for _, state := range registeredStates {
		registered[strings.ToUpper(state)] = true
	}

	var alerts []domain.ComplianceAlert

	// Nexus alerts for every state with activity
	for _, state := range activityStates(stateRevenues, stateTransactions) {
		revenue, ok := stateRevenues[state]
		if !ok {
			revenue = decimal.Zero
		}
		status := c.CheckNexus(state, revenue, stateTransactions[state], false)

		if status.HasNexus && !registered[strings.ToUpper(state)] {
			alerts = append(alerts, domain.ComplianceAlert{
				ID:        uuid.New(),
				Severity:  domain.SeverityCritical,
				StateCode: state,
				Message: fmt.Sprintf(
					"Economic nexus established in %s but not registered for sales tax collection", state),
				ActionRequired: fmt.Sprintf(
					"Register for sales tax in %s immediately. Revenue: $%s",
					state, status.Revenue.StringFixed(2)),
			})
		} else if status.ApproachingThreshold {
			alerts = append(alerts, domain.ComplianceAlert{
				ID:        uuid.New(),
				Severity:  domain.SeverityWarning,
				StateCode: state,
				Message: fmt.Sprintf(
					"Approaching economic nexus threshold in %s (%.0f%% of revenue limit)",
					state, status.RevenuePctOfThreshold),
				ActionRequired: fmt.Sprintf(
					"Monitor %s activity. Prepare registration materials proactively.", state),
			})
		}
	}

	// Overdue filing alerts for registered states
	sortedRegistered := make([]string, 0, len(registered))
	for state := range registered {
		sortedRegistered = append(sortedRegistered, state)
	}
	sort.Strings(sortedRegistered)

	for _, state := range sortedRegistered {
		for _, deadline := range c.FilingDeadlines(state, asOf.Year(), "", decimal.Zero, asOf) {
			if !deadline.IsOverdue {
				continue
			}
			daysLate := int(asOf.Sub(deadline.DueDate).Hours() / 24)
			severity := domain.SeverityWarning
			if daysLate > 30 {
				severity = domain.SeverityCritical
			}
			due := deadline.DueDate
			alerts = append(alerts, domain.ComplianceAlert{
				ID:        uuid.New(),
				Severity:  severity,
				StateCode: state,
				Message: fmt.Sprintf(
					"%s return for %s to %s is %d days past due",
					state,
					deadline.PeriodStart.Format("2006-01-02"),
					deadline.PeriodEnd.Format("2006-01-02"),
					daysLate),
				ActionRequired: fmt.Sprintf(
					"File %s return immediately. Late penalties may apply.", state),
				Deadline: &due,
			})
		}
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return severityRank(alerts[i].Severity) < severityRank(alerts[j].Severity)
	})
	return alerts
}

func severityRank(severity domain.AlertSeverity) int {
	switch severity {
	case domain.SeverityCritical:
		return 0
	case domain.SeverityWarning:
		return 1
	default:
		return 2
	}
}
