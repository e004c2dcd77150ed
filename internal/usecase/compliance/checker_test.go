package compliance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxweave/taxweave/internal/domain"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestCheckNexus_RevenueThresholdExceeded(t *testing.T) {
	checker := NewChecker()

	status := checker.CheckNexus("CA", decimal.NewFromInt(600000), 0, false)

	assert.True(t, status.HasNexus)
	assert.Equal(t, []domain.NexusType{domain.NexusEconomic}, status.NexusTypes)
	assert.InDelta(t, 120.0, status.RevenuePctOfThreshold, 1e-9)
	assert.Nil(t, status.TransactionPctOfThreshold, "CA has a revenue-only test")
	// Approaching is suppressed once nexus is established
	assert.False(t, status.ApproachingThreshold)
	assert.Contains(t, status.Details, "Revenue: $600000.00 / $500000.00 (120.0%)")
}

func TestCheckNexus_ApproachingThreshold(t *testing.T) {
	checker := NewChecker()

	status := checker.CheckNexus("CA", decimal.NewFromInt(450000), 0, false)

	assert.False(t, status.HasNexus)
	assert.True(t, status.ApproachingThreshold)
	assert.InDelta(t, 90.0, status.RevenuePctOfThreshold, 1e-9)
}

func TestCheckNexus_BelowThreshold(t *testing.T) {
	checker := NewChecker()

	status := checker.CheckNexus("CA", decimal.NewFromInt(100000), 0, false)

	assert.False(t, status.HasNexus)
	assert.False(t, status.ApproachingThreshold)
}

func TestCheckNexus_TransactionCountTrigger(t *testing.T) {
	checker := NewChecker()

	// NY: $500k or 100 transactions; count alone triggers
	status := checker.CheckNexus("NY", decimal.NewFromInt(50000), 150, false)

	assert.True(t, status.HasNexus)
	assert.Equal(t, []domain.NexusType{domain.NexusEconomic}, status.NexusTypes)
	require.NotNil(t, status.TransactionPctOfThreshold)
	assert.InDelta(t, 150.0, *status.TransactionPctOfThreshold, 1e-9)
}

func TestCheckNexus_PhysicalPresence(t *testing.T) {
	checker := NewChecker()

	status := checker.CheckNexus("GA", decimal.NewFromInt(1000), 2, true)

	assert.True(t, status.HasNexus)
	assert.Equal(t, []domain.NexusType{domain.NexusPhysical}, status.NexusTypes)
}

func TestCheckNexus_NoSalesTaxState(t *testing.T) {
	checker := NewChecker()

	status := checker.CheckNexus("DE", decimal.NewFromInt(9000000), 5000, true)

	assert.False(t, status.HasNexus)
	assert.Empty(t, status.NexusTypes)
	assert.Equal(t, "DE has no sales tax", status.Details)
}

func TestCheckNexusAllStates_SortedByRevenuePct(t *testing.T) {
	checker := NewChecker()

	statuses := checker.CheckNexusAllStates(
		map[string]decimal.Decimal{
			"CA": decimal.NewFromInt(250000), // 50%
			"TX": decimal.NewFromInt(600000), // 120%
			"FL": decimal.NewFromInt(90000),  // 90%
		},
		map[string]int{"GA": 250}, // transaction-only activity
		nil,
	)

	require.Len(t, statuses, 4)
	assert.Equal(t, "TX", statuses[0].StateCode)
	assert.Equal(t, "FL", statuses[1].StateCode)
	assert.Equal(t, "CA", statuses[2].StateCode)
	assert.Equal(t, "GA", statuses[3].StateCode)
	assert.True(t, statuses[3].HasNexus, "250 transactions exceed GA's 200 count test")
}

func TestFilingDeadlines_MonthlyCalendar(t *testing.T) {
	checker := NewChecker()

	deadlines := checker.FilingDeadlines(
		"TX", 2024, domain.FilingMonthly, decimal.NewFromInt(12000), date(2024, time.January, 1))

	require.Len(t, deadlines, 12)

	january := deadlines[0]
	assert.Equal(t, date(2024, time.January, 1), january.PeriodStart)
	assert.Equal(t, date(2024, time.January, 31), january.PeriodEnd)
	assert.Equal(t, date(2024, time.February, 20), january.DueDate)
	assert.Equal(t, domain.FilingStatusPending, january.Status)
	assert.True(t, january.EstimatedLiability.Equal(decimal.NewFromInt(1000)))

	// December rolls into January of the following year
	december := deadlines[11]
	assert.Equal(t, date(2024, time.December, 31), december.PeriodEnd)
	assert.Equal(t, date(2025, time.January, 20), december.DueDate)
}

func TestFilingDeadlines_QuarterlyWithStateDueDay(t *testing.T) {
	checker := NewChecker()

	// CA returns are due on the 25th
	deadlines := checker.FilingDeadlines(
		"CA", 2024, domain.FilingQuarterly, decimal.NewFromInt(4000), date(2024, time.January, 1))

	require.Len(t, deadlines, 4)
	assert.Equal(t, date(2024, time.March, 31), deadlines[0].PeriodEnd)
	assert.Equal(t, date(2024, time.April, 25), deadlines[0].DueDate)
	assert.True(t, deadlines[0].EstimatedLiability.Equal(decimal.NewFromInt(1000)))
}

func TestFilingDeadlines_FrequencyAutoSelection(t *testing.T) {
	checker := NewChecker()
	asOf := date(2024, time.January, 1)

	monthly := checker.FilingDeadlines("TX", 2024, "", decimal.NewFromInt(6000), asOf)
	assert.Len(t, monthly, 12)

	quarterly := checker.FilingDeadlines("TX", 2024, "", decimal.NewFromInt(2000), asOf)
	assert.Len(t, quarterly, 4)

	annual := checker.FilingDeadlines("TX", 2024, "", decimal.NewFromInt(500), asOf)
	require.Len(t, annual, 1)
	assert.Equal(t, domain.FilingAnnual, annual[0].Frequency)
	assert.Equal(t, date(2025, time.January, 20), annual[0].DueDate)
}

func TestFilingDeadlines_OverdueAndDaysUntilDue(t *testing.T) {
	checker := NewChecker()

	deadlines := checker.FilingDeadlines(
		"TX", 2024, domain.FilingMonthly, decimal.Zero, date(2024, time.March, 1))

	january := deadlines[0]
	assert.True(t, january.IsOverdue)
	assert.Equal(t, domain.FilingStatusOverdue, january.Status)
	assert.Equal(t, -10, january.DaysUntilDue)

	february := deadlines[1]
	assert.False(t, february.IsOverdue)
	assert.Equal(t, 19, february.DaysUntilDue)
}

func TestFilingDeadlines_MarkFiledClearsOverdue(t *testing.T) {
	checker := NewChecker()
	checker.MarkFiled("TX", date(2024, time.January, 1), date(2024, time.January, 31))

	deadlines := checker.FilingDeadlines(
		"TX", 2024, domain.FilingMonthly, decimal.Zero, date(2024, time.March, 1))

	january := deadlines[0]
	assert.Equal(t, domain.FilingStatusFiled, january.Status)
	assert.False(t, january.IsOverdue)
}

func TestOverdueFilings_SortedByDueDate(t *testing.T) {
	checker := NewChecker()
	checker.RegisterStates([]string{"TX", "CA"})

	// Annual frequency (zero liability); both 2023 returns past due
	overdue := checker.OverdueFilings(nil, 2023, date(2024, time.June, 1))

	require.Len(t, overdue, 2)
	assert.Equal(t, "TX", overdue[0].StateCode) // due Jan 20
	assert.Equal(t, "CA", overdue[1].StateCode) // due Jan 25
	assert.True(t, overdue[0].DueDate.Before(overdue[1].DueDate))
}

func TestGenerateAlerts_UnregisteredNexusIsCritical(t *testing.T) {
	checker := NewChecker()

	alerts := checker.GenerateAlerts(
		map[string]decimal.Decimal{
			"CA": decimal.NewFromInt(600000), // nexus, unregistered
			"TX": decimal.NewFromInt(450000), // approaching
		},
		nil,
		[]string{},
		date(2024, time.June, 1),
	)

	require.Len(t, alerts, 2)

	critical := alerts[0]
	assert.Equal(t, domain.SeverityCritical, critical.Severity)
	assert.Equal(t, "CA", critical.StateCode)
	assert.Contains(t, critical.Message, "Economic nexus established in CA")
	assert.Contains(t, critical.ActionRequired, "Register for sales tax in CA")

	warning := alerts[1]
	assert.Equal(t, domain.SeverityWarning, warning.Severity)
	assert.Equal(t, "TX", warning.StateCode)
	assert.Contains(t, warning.Message, "Approaching economic nexus threshold in TX (90% of revenue limit)")
}

func TestGenerateAlerts_RegisteredNexusStaysQuiet(t *testing.T) {
	checker := NewChecker()

	alerts := checker.GenerateAlerts(
		map[string]decimal.Decimal{"CA": decimal.NewFromInt(600000)},
		nil,
		[]string{"CA"},
		date(2024, time.June, 1),
	)

	for _, alert := range alerts {
		assert.NotContains(t, alert.Message, "Economic nexus established")
	}
}
