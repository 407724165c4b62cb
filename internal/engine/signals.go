// Package engine implements the lead qualification and routing decision
// engine: deterministic signal extraction, scoring, urgency classification
// and transfer routing. All tables are read-only and every evaluation is a
// pure function of its inputs, so the package is safe for unlimited
// concurrent use.
package engine

import "strings"

// Category identifies a qualification signal category.
type Category string

const (
	CategoryCompanySize      Category = "company_size"
	CategoryUseCase          Category = "use_case"
	CategoryVolume           Category = "volume"
	CategoryBudget           Category = "budget"
	CategoryAuthority        Category = "authority"
	CategoryExistingCustomer Category = "existing_customer"
)

// Categories lists all signal categories. Every category is evaluated on
// every extraction, regardless of order of mention in the transcript.
var Categories = []Category{
	CategoryCompanySize,
	CategoryUseCase,
	CategoryVolume,
	CategoryBudget,
	CategoryAuthority,
	CategoryExistingCustomer,
}

// existingCustomerWeight is contributed when a non-empty caller record is
// supplied with the request.
const existingCustomerWeight = 10

// keywordWeights maps each category to its keyword→weight table. Matching is
// case-insensitive substring search over the transcript.
var keywordWeights = map[Category]map[string]int{
	CategoryCompanySize: {
		"enterprise":  20,
		"corporation": 15,
		"startup":     5,
	},
	CategoryUseCase: {
		"voice api":      25,
		"messaging api":  20,
		"contact center": 18,
	},
	CategoryVolume: {
		"million":     20,
		"thousands":   15,
		"high-volume": 15,
	},
	CategoryBudget: {
		"budget approved": 15,
		"need asap":       12,
		"this quarter":    10,
	},
	CategoryAuthority: {
		"cto":      10,
		"ceo":      10,
		"director": 8,
		"manager":  6,
	},
}

// CallerInfo is the optional structured caller record supplied alongside the
// transcript, typically from a prior CRM lookup.
type CallerInfo struct {
	Name             string
	Company          string
	Email            string
	ExistingCustomer bool
	AssignedAE       string
	AEPhone          string
}

// IsEmpty reports whether the record carries no caller data at all.
func (c *CallerInfo) IsEmpty() bool {
	if c == nil {
		return true
	}
	return c.Name == "" && c.Company == "" && c.Email == "" &&
		c.AssignedAE == "" && c.AEPhone == "" && !c.ExistingCustomer
}

// SignalSet holds exactly one matched weight per category, zero when no
// keyword in that category matched.
type SignalSet map[Category]int

// ExtractSignals derives the weighted signal set from the conversation text
// and optional caller record. Within a category the highest-weighted matched
// keyword wins; multiple hits in the same category never stack. An empty
// transcript yields zero for every keyword category. Extraction never fails.
func ExtractSignals(transcript string, caller *CallerInfo) SignalSet {
	lowered := strings.ToLower(transcript)

	signals := make(SignalSet, len(Categories))
	for category, table := range keywordWeights {
		best := 0
		for keyword, weight := range table {
			if strings.Contains(lowered, keyword) && weight > best {
				best = weight
			}
		}
		signals[category] = best
	}

	if caller.IsEmpty() {
		signals[CategoryExistingCustomer] = 0
	} else {
		signals[CategoryExistingCustomer] = existingCustomerWeight
	}

	return signals
}
