package domain

import "strings"

// ExemptionCategory represents a sales tax exemption class recognized
// across states. The set is closed; free-text item categories are mapped
// onto it by the calculator's alias table.
type ExemptionCategory string

const (
	ExemptionGrocery                ExemptionCategory = "grocery"
	ExemptionClothing               ExemptionCategory = "clothing"
	ExemptionPrescriptionDrug       ExemptionCategory = "prescription_drug"
	ExemptionMedicalDevice          ExemptionCategory = "medical_device"
	ExemptionManufacturingEquipment ExemptionCategory = "manufacturing_equipment"
	ExemptionAgricultural           ExemptionCategory = "agricultural"
	ExemptionResale                 ExemptionCategory = "resale"
	ExemptionNonprofit              ExemptionCategory = "nonprofit"
	ExemptionGovernment             ExemptionCategory = "government"
	ExemptionDigitalGoods           ExemptionCategory = "digital_goods"
	ExemptionSoftwareSaaS           ExemptionCategory = "software_saas"
)

// LocalRate represents a local jurisdiction tax rate overlay
type LocalRate struct {
	Jurisdiction     string
	County           string
	Rate             float64 // decimal fraction, e.g. 0.02 = 2%
	JurisdictionType string  // city, county, district
}

// JurisdictionRate represents the complete tax rate profile for a single
// state-level jurisdiction. Immutable once loaded by the rate repository.
type JurisdictionRate struct {
	StateCode       string
	StateName       string
	BaseRate        float64 // decimal fraction
	HasLocalTaxes   bool
	MaxLocalRate    float64
	AvgCombinedRate float64
	Exemptions      []ExemptionCategory
	LocalRates      []LocalRate
	Notes           string
}

// Exempts reports whether the jurisdiction exempts the given category
func (j *JurisdictionRate) Exempts(category ExemptionCategory) bool {
	for _, c := range j.Exemptions {
		if c == category {
			return true
		}
	}
	return false
}

// FindLocalRate looks up a local rate by jurisdiction name.
// Matching is case-insensitive and exact.
// Returns nil if no local rate is recorded for that name.
func (j *JurisdictionRate) FindLocalRate(city string) *LocalRate {
	for i := range j.LocalRates {
		if strings.EqualFold(j.LocalRates[i].Jurisdiction, city) {
			return &j.LocalRates[i]
		}
	}
	return nil
}
