package compliance

// thresholdData holds per-state economic nexus thresholds under
// post-Wayfair standards. Revenue figures are whole dollars; a nil
// transaction count means the state uses a revenue-only test.
type thresholdData struct {
	revenue      int64
	transactions *int
	period       string
}

func intPtr(n int) *int { return &n }

var nexusThresholdData = map[string]thresholdData{
	"AL": {revenue: 250000, transactions: nil, period: "prior_year"},
	"AK": {revenue: 100000, transactions: intPtr(200), period: "current_year"},
	"AZ": {revenue: 100000, transactions: nil, period: "prior_year"},
	"AR": {revenue: 100000, transactions: intPtr(200), period: "current_or_prior"},
	"CA": {revenue: 500000, transactions: nil, period: "current_or_prior"},
	"CO": {revenue: 100000, transactions: nil, period: "prior_year"},
	"CT": {revenue: 100000, transactions: intPtr(200), period: "rolling_12"},
	"FL": {revenue: 100000, transactions: nil, period: "prior_year"},
	"GA": {revenue: 100000, transactions: intPtr(200), period: "current_or_prior"},
	"HI": {revenue: 100000, transactions: intPtr(200), period: "current_year"},
	"ID": {revenue: 100000, transactions: nil, period: "current_year"},
	"IL": {revenue: 100000, transactions: intPtr(200), period: "rolling_12"},
	"IN": {revenue: 100000, transactions: intPtr(200), period: "current_year"},
	"IA": {revenue: 100000, transactions: nil, period: "current_or_prior"},
	"KS": {revenue: 100000, transactions: nil, period: "current_year"},
	"KY": {revenue: 100000, transactions: intPtr(200), period: "current_or_prior"},
	"LA": {revenue: 100000, transactions: intPtr(200), period: "current_or_prior"},
	"ME": {revenue: 100000, transactions: intPtr(200), period: "current_or_prior"},
	"MD": {revenue: 100000, transactions: intPtr(200), period: "current_or_prior"},
	"MA": {revenue: 100000, transactions: nil, period: "current_or_prior"},
	"MI": {revenue: 100000, transactions: intPtr(200), period: "current_or_prior"},
	"MN": {revenue: 100000, transactions: intPtr(10), period: "rolling_12"},
	"MS": {revenue: 250000, transactions: nil, period: "rolling_12"},
	"MO": {revenue: 100000, transactions: nil, period: "prior_year"},
	"NE": {revenue: 100000, transactions: intPtr(200), period: "current_or_prior"},
	"NV": {revenue: 100000, transactions: intPtr(200), period: "current_or_prior"},
	"NJ": {revenue: 100000, transactions: intPtr(200), period: "current_or_prior"},
	"NM": {revenue: 100000, transactions: nil, period: "current_year"},
	"NY": {revenue: 500000, transactions: intPtr(100), period: "rolling_4q"},
	"NC": {revenue: 100000, transactions: intPtr(200), period: "current_or_prior"},
	"ND": {revenue: 100000, transactions: nil, period: "current_or_prior"},
	"OH": {revenue: 100000, transactions: intPtr(200), period: "current_or_prior"},
	"OK": {revenue: 100000, transactions: nil, period: "current_or_prior"},
	"PA": {revenue: 100000, transactions: nil, period: "current_year"},
	"RI": {revenue: 100000, transactions: intPtr(200), period: "current_or_prior"},
	"SC": {revenue: 100000, transactions: nil, period: "current_or_prior"},
	"SD": {revenue: 100000, transactions: intPtr(200), period: "current_or_prior"},
	"TN": {revenue: 100000, transactions: nil, period: "rolling_12"},
	"TX": {revenue: 500000, transactions: nil, period: "rolling_12"},
	"UT": {revenue: 100000, transactions: intPtr(200), period: "current_or_prior"},
	"VT": {revenue: 100000, transactions: intPtr(200), period: "rolling_12"},
	"VA": {revenue: 100000, transactions: intPtr(200), period: "current_or_prior"},
	"WA": {revenue: 100000, transactions: nil, period: "current_or_prior"},
	"WV": {revenue: 100000, transactions: intPtr(200), period: "current_or_prior"},
	"WI": {revenue: 100000, transactions: nil, period: "current_year"},
	"WY": {revenue: 100000, transactions: intPtr(200), period: "current_or_prior"},
	"DC": {revenue: 100000, transactions: intPtr(200), period: "current_or_prior"},
}

// noNexusStates are the states with no statewide sales tax and therefore
// no economic nexus regime
var noNexusStates = map[string]bool{
	"DE": true,
	"MT": true,
	"NH": true,
	"OR": true,
}

// filingDueDay is the day of the month following a period end on which
// a return is due, by state
var filingDueDay = map[string]int{
	"CA": 25,
	"FL": 20,
	"NY": 20,
	"TX": 20,
	"IL": 20,
	"PA": 20,
	"OH": 23,
	"NJ": 20,
	"WA": 25,
	"GA": 20,
}

const defaultFilingDueDay = 20

func dueDay(stateCode string) int {
	if day, ok := filingDueDay[stateCode]; ok {
		return day
	}
	return defaultFilingDueDay
}
