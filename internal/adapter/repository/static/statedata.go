package static

import "github.com/taxweave/taxweave/internal/domain"

// stateData holds the full 50-state + DC rate table. Rates current as of
// the 2024 legislative sessions; sourced from state revenue department
// publications and Tax Foundation compilations.
//
// Local rates with no JurisdictionType default to "city" at load time.
var stateData = []domain.JurisdictionRate{
	{
		StateCode:       "AL",
		StateName:       "Alabama",
		BaseRate:        0.04,
		HasLocalTaxes:   true,
		MaxLocalRate:    0.075,
		AvgCombinedRate: 0.0924,
		Exemptions:      []domain.ExemptionCategory{domain.ExemptionPrescriptionDrug},
		LocalRates: []domain.LocalRate{
			{Jurisdiction: "Birmingham", County: "Jefferson", Rate: 0.04},
			{Jurisdiction: "Montgomery", County: "Montgomery", Rate: 0.035},
			{Jurisdiction: "Mobile", County: "Mobile", Rate: 0.04},
			{Jurisdiction: "Huntsville", County: "Madison", Rate: 0.03},
		},
		Notes: "Origin-based sourcing. Self-administered local taxes.",
	},
	{
		StateCode:       "AK",
		StateName:       "Alaska",
		BaseRate:        0.0,
		HasLocalTaxes:   true,
		MaxLocalRate:    0.075,
		AvgCombinedRate: 0.0182,
		LocalRates: []domain.LocalRate{
			{Jurisdiction: "Juneau", County: "Juneau", Rate: 0.05},
			{Jurisdiction: "Kodiak", County: "Kodiak Island", Rate: 0.07},
		},
		Notes: "No state sales tax. Localities may impose their own.",
	},
	{
		StateCode:       "AZ",
		StateName:       "Arizona",
		BaseRate:        0.056,
		HasLocalTaxes:   true,
		MaxLocalRate:    0.058,
		AvgCombinedRate: 0.084,
		Exemptions:      []domain.ExemptionCategory{domain.ExemptionGrocery, domain.ExemptionPrescriptionDrug},
		LocalRates: []domain.LocalRate{
			{Jurisdiction: "Phoenix", County: "Maricopa", Rate: 0.023},
			{Jurisdiction: "Tucson", County: "Pima", Rate: 0.026},
			{Jurisdiction: "Scottsdale", County: "Maricopa", Rate: 0.0175},
			{Jurisdiction: "Mesa", County: "Maricopa", Rate: 0.0175},
		},
		Notes: "TPT (Transaction Privilege Tax), origin-based.",
	},
	{
		StateCode:       "AR",
		StateName:       "Arkansas",
		BaseRate:        0.065,
		HasLocalTaxes:   true,
		MaxLocalRate:    0.0625,
		AvgCombinedRate: 0.0951,
		Exemptions:      []domain.ExemptionCategory{domain.ExemptionPrescriptionDrug},
		LocalRates: []domain.LocalRate{
			{Jurisdiction: "Little Rock", County: "Pulaski", Rate: 0.03},
			{Jurisdiction: "Fort Smith", County: "Sebastian", Rate: 0.0275},
		},
		Notes: "Grocery taxed at reduced 0.125% state rate.",
	},
	{
		StateCode:       "CA",
		StateName:       "California",
		BaseRate:        0.0725,
		HasLocalTaxes:   true,
		MaxLocalRate:    0.0375,
		AvgCombinedRate: 0.0882,
		Exemptions:      []domain.ExemptionCategory{domain.ExemptionGrocery, domain.ExemptionPrescriptionDrug},
		LocalRates: []domain.LocalRate{
			{Jurisdiction: "Los Angeles", County: "Los Angeles", Rate: 0.025},
			{Jurisdiction: "San Francisco", County: "San Francisco", Rate: 0.0125},
			{Jurisdiction: "San Diego", County: "San Diego", Rate: 0.0075},
			{Jurisdiction: "San Jose", County: "Santa Clara", Rate: 0.0125},
			{Jurisdiction: "Sacramento", County: "Sacramento", Rate: 0.0075},
		},
		Notes: "Destination-based sourcing. CDTFA administers.",
	},
	{
		StateCode:       "CO",
		StateName:       "Colorado",
		BaseRate:        0.029,
		HasLocalTaxes:   true,
		MaxLocalRate:    0.083,
		AvgCombinedRate: 0.0777,
		Exemptions:      []domain.ExemptionCategory{domain.ExemptionGrocery, domain.ExemptionPrescriptionDrug},
		LocalRates: []domain.LocalRate{
			{Jurisdiction: "Denver", County: "Denver", Rate: 0.0481},
			{Jurisdiction: "Colorado Springs", County: "El Paso", Rate: 0.031},
			{Jurisdiction: "Aurora", County: "Arapahoe", Rate: 0.0375},
		},
		Notes: "Home-rule cities self-administer. Complex local landscape.",
	},
	{
		StateCode:       "CT",
		StateName:       "Connecticut",
		BaseRate:        0.0635,
		AvgCombinedRate: 0.0635,
		Exemptions:      []domain.ExemptionCategory{domain.ExemptionGrocery, domain.ExemptionClothing, domain.ExemptionPrescriptionDrug},
		Notes:           "Clothing under $50 exempt. Luxury tax 7.75% on vehicles > $50k.",
	},
	{
		StateCode: "DE",
		StateName: "Delaware",
		BaseRate:  0.0,
		Notes:     "No sales tax. Gross receipts tax applies to sellers instead.",
	},
	{
		StateCode:       "FL",
		StateName:       "Florida",
		BaseRate:        0.06,
		HasLocalTaxes:   true,
		MaxLocalRate:    0.025,
		AvgCombinedRate: 0.0702,
		Exemptions:      []domain.ExemptionCategory{domain.ExemptionGrocery, domain.ExemptionPrescriptionDrug, domain.ExemptionMedicalDevice},
		LocalRates: []domain.LocalRate{
			{Jurisdiction: "Miami", County: "Miami-Dade", Rate: 0.01},
			{Jurisdiction: "Orlando", County: "Orange", Rate: 0.005},
			{Jurisdiction: "Tampa", County: "Hillsborough", Rate: 0.015},
			{Jurisdiction: "Jacksonville", County: "Duval", Rate: 0.005},
		},
		Notes: "Destination-based. DR-15 monthly/quarterly return.",
	},
	{
		StateCode:       "GA",
		StateName:       "Georgia",
		BaseRate:        0.04,
		HasLocalTaxes:   true,
		MaxLocalRate:    0.05,
		AvgCombinedRate: 0.0735,
		Exemptions:      []domain.ExemptionCategory{domain.ExemptionGrocery, domain.ExemptionPrescriptionDrug},
		LocalRates: []domain.LocalRate{
			{Jurisdiction: "Atlanta", County: "Fulton", Rate: 0.0389},
			{Jurisdiction: "Savannah", County: "Chatham", Rate: 0.04},
		},
		Notes: "Destination-based. LOST/SPLOST local option taxes.",
	},
	{
		StateCode:       "HI",
		StateName:       "Hawaii",
		BaseRate:        0.04,
		HasLocalTaxes:   true,
		MaxLocalRate:    0.005,
		AvgCombinedRate: 0.0444,
		Exemptions:      []domain.ExemptionCategory{domain.ExemptionPrescriptionDrug},
		LocalRates: []domain.LocalRate{
			{Jurisdiction: "Honolulu", County: "Honolulu", Rate: 0.005},
		},
		Notes: "GET (General Excise Tax) on gross receipts, not a true sales tax.",
	},
	{
		StateCode:       "ID",
		StateName:       "Idaho",
		BaseRate:        0.06,
		HasLocalTaxes:   true,
		MaxLocalRate:    0.03,
		AvgCombinedRate: 0.0602,
		Exemptions:      []domain.ExemptionCategory{domain.ExemptionGrocery, domain.ExemptionPrescriptionDrug},
		LocalRates: []domain.LocalRate{
			{Jurisdiction: "Sun Valley", County: "Blaine", Rate: 0.03, JurisdictionType: "district"},
		},
		Notes: "Destination-based. Resort city local option.",
	},
	{
		StateCode:       "IL",
		StateName:       "Illinois",
		BaseRate:        0.0625,
		HasLocalTaxes:   true,
		MaxLocalRate:    0.0525,
		AvgCombinedRate: 0.0882,
		Exemptions:      []domain.ExemptionCategory{domain.ExemptionGrocery, domain.ExemptionPrescriptionDrug, domain.ExemptionMedicalDevice},
		LocalRates: []domain.LocalRate{
			{Jurisdiction: "Chicago", County: "Cook", Rate: 0.0475},
			{Jurisdiction: "Springfield", County: "Sangamon", Rate: 0.0225},
			{Jurisdiction: "Naperville", County: "DuPage", Rate: 0.0175},
		},
		Notes: "Origin-based. Grocery taxed at reduced 1% state rate.",
	},
	{
		StateCode:       "IN",
		StateName:       "Indiana",
		BaseRate:        0.07,
		AvgCombinedRate: 0.07,
		Exemptions:      []domain.ExemptionCategory{domain.ExemptionGrocery, domain.ExemptionPrescriptionDrug},
		Notes:           "Destination-based. Uniform state rate, no local sales taxes.",
	},
	{
		StateCode:       "IA",
		StateName:       "Iowa",
		BaseRate:        0.06,
		HasLocalTaxes:   true,
		MaxLocalRate:    0.01,
		AvgCombinedRate: 0.0694,
		Exemptions:      []domain.ExemptionCategory{domain.ExemptionGrocery, domain.ExemptionPrescriptionDrug},
		LocalRates: []domain.LocalRate{
			{Jurisdiction: "Des Moines", County: "Polk", Rate: 0.01},
			{Jurisdiction: "Cedar Rapids", County: "Linn", Rate: 0.01},
		},
		Notes: "Destination-based.",
	},
	{
		StateCode:       "KS",
		StateName:       "Kansas",
		BaseRate:        0.065,
		HasLocalTaxes:   true,
		MaxLocalRate:    0.05,
		AvgCombinedRate: 0.0872,
		Exemptions:      []domain.ExemptionCategory{domain.ExemptionPrescriptionDrug},
		LocalRates: []domain.LocalRate{
			{Jurisdiction: "Wichita", County: "Sedgwick", Rate: 0.0225},
			{Jurisdiction: "Topeka", County: "Shawnee", Rate: 0.0215},
		},
		Notes: "Grocery taxed at full rate (phase-down in progress).",
	},
	{
		StateCode:       "KY",
		StateName:       "Kentucky",
		BaseRate:        0.06,
		AvgCombinedRate: 0.06,
		Exemptions:      []domain.ExemptionCategory{domain.ExemptionGrocery, domain.ExemptionPrescriptionDrug},
		Notes:           "Destination-based. Uniform state rate.",
	},
	{
		StateCode:       "LA",
		StateName:       "Louisiana",
		BaseRate:        0.0445,
		HasLocalTaxes:   true,
		MaxLocalRate:    0.07,
		AvgCombinedRate: 0.0955,
		Exemptions:      []domain.ExemptionCategory{domain.ExemptionGrocery, domain.ExemptionPrescriptionDrug},
		LocalRates: []domain.LocalRate{
			{Jurisdiction: "New Orleans", County: "Orleans", Rate: 0.05},
			{Jurisdiction: "Baton Rouge", County: "East Baton Rouge", Rate: 0.05},
		},
		Notes: "Destination-based. Separate state and local returns.",
	},
	{
		StateCode:       "ME",
		StateName:       "Maine",
		BaseRate:        0.055,
		AvgCombinedRate: 0.055,
		Exemptions:      []domain.ExemptionCategory{domain.ExemptionGrocery, domain.ExemptionPrescriptionDrug},
		Notes:           "Destination-based.",
	},
	{
		StateCode:       "MD",
		StateName:       "Maryland",
		BaseRate:        0.06,
		AvgCombinedRate: 0.06,
		Exemptions:      []domain.ExemptionCategory{domain.ExemptionGrocery, domain.ExemptionClothing, domain.ExemptionPrescriptionDrug, domain.ExemptionMedicalDevice},
		Notes:           "Destination-based. Digital goods taxable.",
	},
	{
		StateCode:       "MA",
		StateName:       "Massachusetts",
		BaseRate:        0.0625,
		AvgCombinedRate: 0.0625,
		Exemptions:      []domain.ExemptionCategory{domain.ExemptionGrocery, domain.ExemptionClothing, domain.ExemptionPrescriptionDrug},
		Notes:           "Clothing under $175 exempt. Destination-based.",
	},
	{
		StateCode:       "MI",
		StateName:       "Michigan",
		BaseRate:        0.06,
		AvgCombinedRate: 0.06,
		Exemptions:      []domain.ExemptionCategory{domain.ExemptionGrocery, domain.ExemptionPrescriptionDrug},
		Notes:           "Destination-based. Uniform state rate.",
	},
	{
		StateCode:       "MN",
		StateName:       "Minnesota",
		BaseRate:        0.06875,
		HasLocalTaxes:   true,
		MaxLocalRate:    0.02,
		AvgCombinedRate: 0.0783,
		Exemptions:      []domain.ExemptionCategory{domain.ExemptionGrocery, domain.ExemptionClothing, domain.ExemptionPrescriptionDrug},
		LocalRates: []domain.LocalRate{
			{Jurisdiction: "Minneapolis", County: "Hennepin", Rate: 0.02},
			{Jurisdiction: "St. Paul", County: "Ramsey", Rate: 0.0175},
		},
		Notes: "Destination-based.",
	},
	{
		StateCode:       "MS",
		StateName:       "Mississippi",
		BaseRate:        0.07,
		HasLocalTaxes:   true,
		MaxLocalRate:    0.01,
		AvgCombinedRate: 0.0707,
		Exemptions:      []domain.ExemptionCategory{domain.ExemptionPrescriptionDrug},
		LocalRates: []domain.LocalRate{
			{Jurisdiction: "Jackson", County: "Hinds", Rate: 0.01},
		},
		Notes: "Origin-based. Grocery taxed at full rate.",
	},
	{
		StateCode:       "MO",
		StateName:       "Missouri",
		BaseRate:        0.04225,
		HasLocalTaxes:   true,
		MaxLocalRate:    0.0588,
		AvgCombinedRate: 0.0825,
		Exemptions:      []domain.ExemptionCategory{domain.ExemptionGrocery, domain.ExemptionPrescriptionDrug},
		LocalRates: []domain.LocalRate{
			{Jurisdiction: "St. Louis City", County: "St. Louis City", Rate: 0.049},
			{Jurisdiction: "Kansas City", County: "Jackson", Rate: 0.04},
			{Jurisdiction: "Springfield", County: "Greene", Rate: 0.0335},
		},
		Notes: "Origin-based. Grocery taxed at reduced 1.225% state rate.",
	},
	{
		StateCode: "MT",
		StateName: "Montana",
		BaseRate:  0.0,
		Notes:     "No sales tax. Resort tax in select areas.",
	},
	{
		StateCode:       "NE",
		StateName:       "Nebraska",
		BaseRate:        0.055,
		HasLocalTaxes:   true,
		MaxLocalRate:    0.02,
		AvgCombinedRate: 0.0694,
		Exemptions:      []domain.ExemptionCategory{domain.ExemptionGrocery, domain.ExemptionPrescriptionDrug},
		LocalRates: []domain.LocalRate{
			{Jurisdiction: "Omaha", County: "Douglas", Rate: 0.02},
			{Jurisdiction: "Lincoln", County: "Lancaster", Rate: 0.0175},
		},
		Notes: "Destination-based.",
	},
	{
		StateCode:       "NV",
		StateName:       "Nevada",
		BaseRate:        0.0685,
		HasLocalTaxes:   true,
		MaxLocalRate:    0.0153,
		AvgCombinedRate: 0.0823,
		Exemptions:      []domain.ExemptionCategory{domain.ExemptionGrocery, domain.ExemptionPrescriptionDrug},
		LocalRates: []domain.LocalRate{
			{Jurisdiction: "Las Vegas", County: "Clark", Rate: 0.0138},
			{Jurisdiction: "Reno", County: "Washoe", Rate: 0.0098},
		},
		Notes: "Destination-based.",
	},
	{
		StateCode: "NH",
		StateName: "New Hampshire",
		BaseRate:  0.0,
		Notes:     "No sales tax. Meals and rooms tax (8.5%) applies separately.",
	},
	{
		StateCode:       "NJ",
		StateName:       "New Jersey",
		BaseRate:        0.06625,
		AvgCombinedRate: 0.06625,
		Exemptions:      []domain.ExemptionCategory{domain.ExemptionGrocery, domain.ExemptionClothing, domain.ExemptionPrescriptionDrug, domain.ExemptionMedicalDevice},
		Notes:           "Destination-based. UEZ zones have reduced 3.3125% rate.",
	},
	{
		StateCode:       "NM",
		StateName:       "New Mexico",
		BaseRate:        0.04875,
		HasLocalTaxes:   true,
		MaxLocalRate:    0.0481,
		AvgCombinedRate: 0.0729,
		Exemptions:      []domain.ExemptionCategory{domain.ExemptionGrocery, domain.ExemptionPrescriptionDrug},
		LocalRates: []domain.LocalRate{
			{Jurisdiction: "Albuquerque", County: "Bernalillo", Rate: 0.0281},
			{Jurisdiction: "Santa Fe", County: "Santa Fe", Rate: 0.0344},
		},
		Notes: "GRT (Gross Receipts Tax). Origin-based.",
	},
	{
		StateCode:       "NY",
		StateName:       "New York",
		BaseRate:        0.04,
		HasLocalTaxes:   true,
		MaxLocalRate:    0.0875,
		AvgCombinedRate: 0.0852,
		Exemptions:      []domain.ExemptionCategory{domain.ExemptionGrocery, domain.ExemptionClothing, domain.ExemptionPrescriptionDrug},
		LocalRates: []domain.LocalRate{
			{Jurisdiction: "New York City", County: "New York", Rate: 0.045},
			{Jurisdiction: "Buffalo", County: "Erie", Rate: 0.04},
			{Jurisdiction: "Albany", County: "Albany", Rate: 0.04},
			{Jurisdiction: "Syracuse", County: "Onondaga", Rate: 0.04},
		},
		Notes: "Destination-based. Clothing/footwear under $110 exempt in NYC.",
	},
	{
		StateCode:       "NC",
		StateName:       "North Carolina",
		BaseRate:        0.0475,
		HasLocalTaxes:   true,
		MaxLocalRate:    0.0275,
		AvgCombinedRate: 0.0698,
		Exemptions:      []domain.ExemptionCategory{domain.ExemptionGrocery, domain.ExemptionPrescriptionDrug},
		LocalRates: []domain.LocalRate{
			{Jurisdiction: "Charlotte", County: "Mecklenburg", Rate: 0.025},
			{Jurisdiction: "Raleigh", County: "Wake", Rate: 0.0225},
			{Jurisdiction: "Durham", County: "Durham", Rate: 0.025},
		},
		Notes: "Destination-based.",
	},
	{
		StateCode:       "ND",
		StateName:       "North Dakota",
		BaseRate:        0.05,
		HasLocalTaxes:   true,
		MaxLocalRate:    0.035,
		AvgCombinedRate: 0.0696,
		Exemptions:      []domain.ExemptionCategory{domain.ExemptionGrocery, domain.ExemptionPrescriptionDrug},
		LocalRates: []domain.LocalRate{
			{Jurisdiction: "Fargo", County: "Cass", Rate: 0.025},
			{Jurisdiction: "Bismarck", County: "Burleigh", Rate: 0.02},
		},
		Notes: "Destination-based.",
	},
	{
		StateCode:       "OH",
		StateName:       "Ohio",
		BaseRate:        0.0575,
		HasLocalTaxes:   true,
		MaxLocalRate:    0.0225,
		AvgCombinedRate: 0.0724,
		Exemptions:      []domain.ExemptionCategory{domain.ExemptionGrocery, domain.ExemptionPrescriptionDrug},
		LocalRates: []domain.LocalRate{
			{Jurisdiction: "Columbus", County: "Franklin", Rate: 0.0175},
			{Jurisdiction: "Cleveland", County: "Cuyahoga", Rate: 0.0225},
			{Jurisdiction: "Cincinnati", County: "Hamilton", Rate: 0.02},
		},
		Notes: "Origin-based. County permissive taxes.",
	},
	{
		StateCode:       "OK",
		StateName:       "Oklahoma",
		BaseRate:        0.045,
		HasLocalTaxes:   true,
		MaxLocalRate:    0.07,
		AvgCombinedRate: 0.0895,
		Exemptions:      []domain.ExemptionCategory{domain.ExemptionPrescriptionDrug},
		LocalRates: []domain.LocalRate{
			{Jurisdiction: "Oklahoma City", County: "Oklahoma", Rate: 0.0413},
			{Jurisdiction: "Tulsa", County: "Tulsa", Rate: 0.0467},
		},
		Notes: "Origin-based. Grocery taxed at full rate.",
	},
	{
		StateCode: "OR",
		StateName: "Oregon",
		BaseRate:  0.0,
		Notes:     "No sales tax.",
	},
	{
		StateCode:       "PA",
		StateName:       "Pennsylvania",
		BaseRate:        0.06,
		HasLocalTaxes:   true,
		MaxLocalRate:    0.02,
		AvgCombinedRate: 0.0634,
		Exemptions:      []domain.ExemptionCategory{domain.ExemptionGrocery, domain.ExemptionClothing, domain.ExemptionPrescriptionDrug},
		LocalRates: []domain.LocalRate{
			{Jurisdiction: "Philadelphia", County: "Philadelphia", Rate: 0.02},
			{Jurisdiction: "Pittsburgh", County: "Allegheny", Rate: 0.01},
		},
		Notes: "Origin-based. Most clothing exempt.",
	},
	{
		StateCode:       "RI",
		StateName:       "Rhode Island",
		BaseRate:        0.07,
		AvgCombinedRate: 0.07,
		Exemptions:      []domain.ExemptionCategory{domain.ExemptionGrocery, domain.ExemptionClothing, domain.ExemptionPrescriptionDrug},
		Notes:           "Clothing under $250 exempt. Destination-based.",
	},
	{
		StateCode:       "SC",
		StateName:       "South Carolina",
		BaseRate:        0.06,
		HasLocalTaxes:   true,
		MaxLocalRate:    0.03,
		AvgCombinedRate: 0.0746,
		Exemptions:      []domain.ExemptionCategory{domain.ExemptionGrocery, domain.ExemptionPrescriptionDrug},
		LocalRates: []domain.LocalRate{
			{Jurisdiction: "Charleston", County: "Charleston", Rate: 0.025},
			{Jurisdiction: "Columbia", County: "Richland", Rate: 0.02},
		},
		Notes: "Destination-based. $300 tax cap on certain items.",
	},
	{
		StateCode:       "SD",
		StateName:       "South Dakota",
		BaseRate:        0.042,
		HasLocalTaxes:   true,
		MaxLocalRate:    0.045,
		AvgCombinedRate: 0.064,
		Exemptions:      []domain.ExemptionCategory{domain.ExemptionPrescriptionDrug},
		LocalRates: []domain.LocalRate{
			{Jurisdiction: "Sioux Falls", County: "Minnehaha", Rate: 0.02},
			{Jurisdiction: "Rapid City", County: "Pennington", Rate: 0.02},
		},
		Notes: "Grocery taxed. Wayfair v. South Dakota (2018) originated here.",
	},
	{
		StateCode:       "TN",
		StateName:       "Tennessee",
		BaseRate:        0.07,
		HasLocalTaxes:   true,
		MaxLocalRate:    0.0275,
		AvgCombinedRate: 0.0955,
		Exemptions:      []domain.ExemptionCategory{domain.ExemptionPrescriptionDrug},
		LocalRates: []domain.LocalRate{
			{Jurisdiction: "Nashville", County: "Davidson", Rate: 0.0225},
			{Jurisdiction: "Memphis", County: "Shelby", Rate: 0.0225},
			{Jurisdiction: "Knoxville", County: "Knox", Rate: 0.0225},
		},
		Notes: "Grocery taxed at reduced 4% state rate. High combined rate.",
	},
	{
		StateCode:       "TX",
		StateName:       "Texas",
		BaseRate:        0.0625,
		HasLocalTaxes:   true,
		MaxLocalRate:    0.02,
		AvgCombinedRate: 0.082,
		Exemptions:      []domain.ExemptionCategory{domain.ExemptionGrocery, domain.ExemptionPrescriptionDrug, domain.ExemptionMedicalDevice},
		LocalRates: []domain.LocalRate{
			{Jurisdiction: "Houston", County: "Harris", Rate: 0.02},
			{Jurisdiction: "Dallas", County: "Dallas", Rate: 0.02},
			{Jurisdiction: "Austin", County: "Travis", Rate: 0.02},
			{Jurisdiction: "San Antonio", County: "Bexar", Rate: 0.02},
			{Jurisdiction: "Fort Worth", County: "Tarrant", Rate: 0.02},
		},
		Notes: "Origin-based. Max combined rate capped at 8.25%.",
	},
	{
		StateCode:       "UT",
		StateName:       "Utah",
		BaseRate:        0.0485,
		HasLocalTaxes:   true,
		MaxLocalRate:    0.04,
		AvgCombinedRate: 0.0719,
		Exemptions:      []domain.ExemptionCategory{domain.ExemptionPrescriptionDrug},
		LocalRates: []domain.LocalRate{
			{Jurisdiction: "Salt Lake City", County: "Salt Lake", Rate: 0.0235},
			{Jurisdiction: "Provo", County: "Utah", Rate: 0.0225},
		},
		Notes: "Grocery taxed at reduced 3% combined rate.",
	},
	{
		StateCode:       "VT",
		StateName:       "Vermont",
		BaseRate:        0.06,
		HasLocalTaxes:   true,
		MaxLocalRate:    0.01,
		AvgCombinedRate: 0.0624,
		Exemptions:      []domain.ExemptionCategory{domain.ExemptionGrocery, domain.ExemptionClothing, domain.ExemptionPrescriptionDrug},
		LocalRates: []domain.LocalRate{
			{Jurisdiction: "Burlington", County: "Chittenden", Rate: 0.01},
		},
		Notes: "Destination-based. Local option tax 1%.",
	},
	{
		StateCode:       "VA",
		StateName:       "Virginia",
		BaseRate:        0.043,
		HasLocalTaxes:   true,
		MaxLocalRate:    0.017,
		AvgCombinedRate: 0.0575,
		Exemptions:      []domain.ExemptionCategory{domain.ExemptionGrocery, domain.ExemptionPrescriptionDrug},
		LocalRates: []domain.LocalRate{
			{Jurisdiction: "Virginia Beach", County: "Virginia Beach", Rate: 0.017},
			{Jurisdiction: "Richmond", County: "Richmond City", Rate: 0.017},
			{Jurisdiction: "Norfolk", County: "Norfolk", Rate: 0.017},
		},
		Notes: "Destination-based. Grocery taxed at reduced 1% rate.",
	},
	{
		StateCode:       "WA",
		StateName:       "Washington",
		BaseRate:        0.065,
		HasLocalTaxes:   true,
		MaxLocalRate:    0.04,
		AvgCombinedRate: 0.0929,
		Exemptions:      []domain.ExemptionCategory{domain.ExemptionGrocery, domain.ExemptionPrescriptionDrug},
		LocalRates: []domain.LocalRate{
			{Jurisdiction: "Seattle", County: "King", Rate: 0.0375},
			{Jurisdiction: "Tacoma", County: "Pierce", Rate: 0.028},
			{Jurisdiction: "Spokane", County: "Spokane", Rate: 0.024},
		},
		Notes: "Destination-based. High combined rates.",
	},
	{
		StateCode:       "WV",
		StateName:       "West Virginia",
		BaseRate:        0.06,
		HasLocalTaxes:   true,
		MaxLocalRate:    0.01,
		AvgCombinedRate: 0.0652,
		Exemptions:      []domain.ExemptionCategory{domain.ExemptionGrocery, domain.ExemptionPrescriptionDrug},
		LocalRates: []domain.LocalRate{
			{Jurisdiction: "Charleston", County: "Kanawha", Rate: 0.01},
		},
		Notes: "Destination-based. Municipal B&O tax also applies.",
	},
	{
		StateCode:       "WI",
		StateName:       "Wisconsin",
		BaseRate:        0.05,
		HasLocalTaxes:   true,
		MaxLocalRate:    0.0175,
		AvgCombinedRate: 0.0543,
		Exemptions:      []domain.ExemptionCategory{domain.ExemptionGrocery, domain.ExemptionPrescriptionDrug},
		LocalRates: []domain.LocalRate{
			{Jurisdiction: "Milwaukee", County: "Milwaukee", Rate: 0.0175},
			{Jurisdiction: "Madison", County: "Dane", Rate: 0.005},
		},
		Notes: "Destination-based. County tax 0.5%, stadium tax in select areas.",
	},
	{
		StateCode:       "WY",
		StateName:       "Wyoming",
		BaseRate:        0.04,
		HasLocalTaxes:   true,
		MaxLocalRate:    0.04,
		AvgCombinedRate: 0.0536,
		Exemptions:      []domain.ExemptionCategory{domain.ExemptionGrocery, domain.ExemptionPrescriptionDrug},
		LocalRates: []domain.LocalRate{
			{Jurisdiction: "Cheyenne", County: "Laramie", Rate: 0.01},
			{Jurisdiction: "Casper", County: "Natrona", Rate: 0.015},
		},
		Notes: "Destination-based.",
	},
	{
		StateCode:       "DC",
		StateName:       "District of Columbia",
		BaseRate:        0.06,
		AvgCombinedRate: 0.06,
		Exemptions:      []domain.ExemptionCategory{domain.ExemptionGrocery, domain.ExemptionPrescriptionDrug},
		Notes:           "Single jurisdiction. 10% on meals, 10.25% on liquor.",
	},
}
