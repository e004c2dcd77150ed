package calculator

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/taxweave/taxweave/internal/domain"
)

// categoryAliases maps common free-text item category labels onto the
// closed exemption category set. Matching is case-insensitive on the
// trimmed label.
var categoryAliases = map[string]domain.ExemptionCategory{
	"grocery":           domain.ExemptionGrocery,
	"groceries":         domain.ExemptionGrocery,
	"food":              domain.ExemptionGrocery,
	"clothing":          domain.ExemptionClothing,
	"apparel":           domain.ExemptionClothing,
	"prescription":      domain.ExemptionPrescriptionDrug,
	"prescription_drug": domain.ExemptionPrescriptionDrug,
	"rx":                domain.ExemptionPrescriptionDrug,
	"medical":           domain.ExemptionMedicalDevice,
	"medical_device":    domain.ExemptionMedicalDevice,
	"manufacturing":     domain.ExemptionManufacturingEquipment,
	"agricultural":      domain.ExemptionAgricultural,
	"resale":            domain.ExemptionResale,
	"software":          domain.ExemptionSoftwareSaaS,
	"saas":              domain.ExemptionSoftwareSaaS,
	"digital":           domain.ExemptionDigitalGoods,
}

// roundCents rounds a money amount to the nearest cent, half up
func roundCents(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

// Calculator resolves jurisdiction rates, applies exemptions, and
// computes sales tax for individual transactions or batches
type Calculator struct {
	Rates domain.RateRepository
}

// NewCalculator creates a new Calculator instance
func NewCalculator(rates domain.RateRepository) *Calculator {
	return &Calculator{Rates: rates}
}

// resolveExemption determines whether a transaction qualifies for an
// exemption. Rules apply in priority order, first match wins:
//  1. Wholesale or exempt customer type
//  2. Exemption certificate on file
//  3. Item category mapped to a class the jurisdiction exempts
//
// Returns (isExempt, reason).
func (c *Calculator) resolveExemption(txn domain.Transaction) (bool, string) {
	if txn.CustomerType == domain.CustomerWholesale || txn.CustomerType == domain.CustomerExempt {
		return true, fmt.Sprintf("Customer type: %s", txn.CustomerType)
	}

	if txn.ExemptionCertificate != "" {
		return true, fmt.Sprintf("Exemption cert: %s", txn.ExemptionCertificate)
	}

	if txn.ItemCategory != "" {
		key := strings.ToLower(strings.TrimSpace(txn.ItemCategory))
		if category, ok := categoryAliases[key]; ok {
			exempt, err := c.Rates.IsExempt(txn.StateCode, category)
			if err == nil && exempt {
				return true, fmt.Sprintf("%s exempts %s", strings.ToUpper(txn.StateCode), category)
			}
		}
	}

	return false, ""
}

// Calculate computes sales tax for a single transaction
// Logic:
//  1. Resolve jurisdiction; unknown codes degrade to a zero-tax result
//     with a warning instead of an error
//  2. Short-circuit jurisdictions with no sales tax at all
//  3. Apply exemptions in priority order
//  4. Resolve state and local rates (explicit city rate, else the
//     average local portion when the state levies local taxes)
//  5. Back out embedded tax for tax-inclusive pricing
//  6. Round state and local tax to the cent independently, then sum
//
// State and local tax are deliberately rounded separately; rounding the
// combined rate once can differ by a cent.
func (c *Calculator) Calculate(txn domain.Transaction) domain.TaxResult {
	state, ok := c.Rates.Jurisdiction(txn.StateCode)
	if !ok {
		return domain.TaxResult{
			TransactionID: txn.ID,
			StateCode:     txn.StateCode,
			City:          txn.City,
			TaxableAmount: txn.Amount,
			StateTax:      decimal.Zero,
			LocalTax:      decimal.Zero,
			TotalTax:      decimal.Zero,
			Warnings:      []string{fmt.Sprintf("Unknown state code: %s", txn.StateCode)},
		}
	}

	// No-tax jurisdictions
	if state.BaseRate == 0 && !state.HasLocalTaxes {
		return domain.TaxResult{
			TransactionID:   txn.ID,
			StateCode:       txn.StateCode,
			City:            txn.City,
			TaxableAmount:   txn.Amount,
			StateTax:        decimal.Zero,
			LocalTax:        decimal.Zero,
			TotalTax:        decimal.Zero,
			IsExempt:        true,
			ExemptionReason: fmt.Sprintf("%s has no sales tax", state.StateName),
		}
	}

	if exempt, reason := c.resolveExemption(txn); exempt {
		return domain.TaxResult{
			TransactionID:   txn.ID,
			StateCode:       txn.StateCode,
			City:            txn.City,
			TaxableAmount:   txn.Amount,
			StateTax:        decimal.Zero,
			LocalTax:        decimal.Zero,
			TotalTax:        decimal.Zero,
			IsExempt:        true,
			ExemptionReason: reason,
		}
	}

	// Resolve rates. Rate fractions enter decimal arithmetic here so the
	// one multiply-then-round step stays exact.
	stateRate := decimal.NewFromFloat(state.BaseRate)
	localRate := decimal.Zero
	var warnings []string

	if local, found := c.Rates.LocalRate(txn.StateCode, txn.City); txn.City != "" && found {
		localRate = decimal.NewFromFloat(local.Rate)
	} else if state.HasLocalTaxes {
		// Approximate with the average local portion
		avgLocal := decimal.NewFromFloat(state.AvgCombinedRate).Sub(stateRate)
		if avgLocal.IsPositive() {
			localRate = avgLocal
		}
		if txn.City != "" {
			warnings = append(warnings, fmt.Sprintf(
				"No local rate found for %s, %s; used average local rate", txn.City, txn.StateCode))
		} else {
			warnings = append(warnings, fmt.Sprintf(
				"No city specified for %s; used average local rate", txn.StateCode))
		}
	}

	combinedRate := stateRate.Add(localRate)

	// Compute taxable amount
	taxable := txn.Amount
	if txn.PricingModel == domain.PricingTaxInclusive {
		// Back out the embedded tax from the total
		taxable = roundCents(txn.Amount.Div(decimal.NewFromInt(1).Add(combinedRate)))
	}

	stateTax := roundCents(taxable.Mul(stateRate))
	localTax := roundCents(taxable.Mul(localRate))

	return domain.TaxResult{
		TransactionID: txn.ID,
		StateCode:     txn.StateCode,
		City:          txn.City,
		TaxableAmount: taxable,
		StateTax:      stateTax,
		LocalTax:      localTax,
		TotalTax:      stateTax.Add(localTax),
		EffectiveRate: combinedRate.InexactFloat64(),
		Warnings:      warnings,
	}
}

// CalculateBatch computes tax for a batch of transactions
//
// Each transaction is calculated independently; a failure on one is
// recorded in the Errors list by transaction ID and never aborts the
// batch. Results preserve input order.
func (c *Calculator) CalculateBatch(transactions []domain.Transaction) domain.BatchResult {
	batch := domain.BatchResult{
		Results:          make([]domain.TaxResult, 0, len(transactions)),
		TotalTaxable:     decimal.Zero,
		TotalTax:         decimal.Zero,
		TotalExempt:      decimal.Zero,
		TransactionCount: len(transactions),
		StateBreakdown:   make(map[string]decimal.Decimal),
	}

	for _, txn := range transactions {
		if err := txn.Validate(); err != nil {
			batch.Errors = append(batch.Errors, fmt.Sprintf("Transaction %s: %v", txn.ID, err))
			continue
		}

		result := c.Calculate(txn)
		batch.Results = append(batch.Results, result)
		batch.TotalTaxable = batch.TotalTaxable.Add(result.TaxableAmount)
		batch.TotalTax = batch.TotalTax.Add(result.TotalTax)

		if result.IsExempt {
			batch.ExemptCount++
			batch.TotalExempt = batch.TotalExempt.Add(result.TaxableAmount)
		}

		current, ok := batch.StateBreakdown[txn.StateCode]
		if !ok {
			current = decimal.Zero
		}
		batch.StateBreakdown[txn.StateCode] = current.Add(result.TotalTax)
	}

	return batch
}

// CalculateUseTax computes use tax owed on an out-of-state purchase.
//
// Use tax applies when sales tax was not collected at the point of sale
// but the item is used in a state that imposes sales/use tax. Credit is
// given for any tax already paid to the origin state, capped at the
// amount owed; the result's TotalTax is net of that credit.
func (c *Calculator) CalculateUseTax(
	amount decimal.Decimal,
	destinationState string,
	destinationCity string,
	taxAlreadyPaid decimal.Decimal,
) domain.TaxResult {
	txn := domain.Transaction{
		ID:           "use-tax-calc",
		Date:         time.Now().UTC(),
		Amount:       amount,
		StateCode:    destinationState,
		City:         destinationCity,
		CustomerType: domain.CustomerRetail,
		PricingModel: domain.PricingTaxExclusive,
	}

	result := c.Calculate(txn)

	credit := taxAlreadyPaid
	if result.TotalTax.LessThan(credit) {
		credit = result.TotalTax
	}

	var warnings []string
	if credit.IsPositive() {
		warnings = append(warnings, fmt.Sprintf(
			"Credit applied for $%s tax already paid", credit.StringFixed(2)))
	}

	return domain.TaxResult{
		TransactionID: "use-tax-calc",
		StateCode:     destinationState,
		City:          destinationCity,
		TaxableAmount: amount,
		StateTax:      result.StateTax,
		LocalTax:      result.LocalTax,
		TotalTax:      roundCents(result.TotalTax.Sub(credit)),
		EffectiveRate: result.EffectiveRate,
		IsExempt:      result.IsExempt,
		Warnings:      warnings,
	}
}
