package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FilingFrequency represents how often a sales tax return is due
type FilingFrequency string

const (
	FilingMonthly    FilingFrequency = "monthly"
	FilingQuarterly  FilingFrequency = "quarterly"
	FilingSemiAnnual FilingFrequency = "semi_annual"
	FilingAnnual     FilingFrequency = "annual"
)

// NexusType represents the legal basis for a state's taxing authority
// over a seller
type NexusType string

const (
	NexusPhysical     NexusType = "physical"      // office, warehouse, employees
	NexusEconomic     NexusType = "economic"      // revenue/transaction threshold
	NexusClickThrough NexusType = "click_through" // affiliate referrals
	NexusMarketplace  NexusType = "marketplace"   // marketplace facilitator
)

// FilingStatus represents the state of a filing deadline
type FilingStatus string

const (
	FilingStatusPending FilingStatus = "pending"
	FilingStatusFiled   FilingStatus = "filed"
	FilingStatusOverdue FilingStatus = "overdue"
)

// AlertSeverity represents the urgency tier of a compliance alert
type AlertSeverity string

const (
	SeverityCritical AlertSeverity = "critical"
	SeverityWarning  AlertSeverity = "warning"
	SeverityInfo     AlertSeverity = "info"
)

// NexusThreshold represents a state's economic nexus threshold.
//
// Post-Wayfair, most states adopted $100k revenue OR 200 transactions as
// the bright-line test, though specifics vary. TransactionThreshold is nil
// for states with a revenue-only test.
type NexusThreshold struct {
	StateCode            string
	RevenueThreshold     decimal.Decimal
	TransactionThreshold *int
	MeasurementPeriod    string // current_year, prior_year, rolling_12, ...
}

// NexusStatus represents the result of a nexus evaluation for one state
type NexusStatus struct {
	StateCode                 string
	HasNexus                  bool
	NexusTypes                []NexusType
	Revenue                   decimal.Decimal
	TransactionCount          int
	RevenueThreshold          decimal.Decimal
	TransactionThreshold      *int
	RevenuePctOfThreshold     float64
	TransactionPctOfThreshold *float64 // nil when no transaction threshold exists
	ApproachingThreshold      bool     // >=80% of either threshold, nexus not yet triggered
	Details                   string
}

// FilingDeadline represents a return filing deadline for a state and period
type FilingDeadline struct {
	StateCode          string
	PeriodStart        time.Time
	PeriodEnd          time.Time
	DueDate            time.Time
	Frequency          FilingFrequency
	Status             FilingStatus
	IsOverdue          bool
	DaysUntilDue       int // negative once past due
	EstimatedLiability decimal.Decimal
}

// ComplianceAlert represents an actionable compliance finding
type ComplianceAlert struct {
	ID             uuid.UUID
	Severity       AlertSeverity
	StateCode      string
	Message        string
	ActionRequired string
	Deadline       *time.Time // set for filing-related alerts
}
