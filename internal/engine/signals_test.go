package engine

import "testing"

func TestExtractSignals_MaxPerCategory(t *testing.T) {
	// Multiple hits in the same category take the highest weight, not the sum.
	signals := ExtractSignals("we handle thousands of high-volume campaigns, over a million messages", nil)

	if got := signals[CategoryVolume]; got != 20 {
		t.Errorf("volume weight = %d, want 20 (max of matched keywords)", got)
	}
}

func TestExtractSignals_Categories(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		category   Category
		want       int
	}{
		{"enterprise company size", "we are an Enterprise customer", CategoryCompanySize, 20},
		{"corporation company size", "a large corporation", CategoryCompanySize, 15},
		{"startup company size", "we're a small startup", CategoryCompanySize, 5},
		{"voice api use case", "looking at your Voice API", CategoryUseCase, 25},
		{"messaging api use case", "need a messaging API", CategoryUseCase, 20},
		{"contact center use case", "modernizing our contact center", CategoryUseCase, 18},
		{"budget approved", "our budget approved last week", CategoryBudget, 15},
		{"this quarter", "want to start this quarter", CategoryBudget, 10},
		{"cto authority", "I'm the CTO here", CategoryAuthority, 10},
		{"ceo authority", "our CEO asked me to call", CategoryAuthority, 10},
		{"director authority", "I'm a director of engineering", CategoryAuthority, 8},
		{"manager authority", "as the ops manager", CategoryAuthority, 6},
		{"no match yields zero", "just browsing around", CategoryUseCase, 0},
		{"empty transcript yields zero", "", CategoryCompanySize, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signals := ExtractSignals(tt.transcript, nil)
			if got := signals[tt.category]; got != tt.want {
				t.Errorf("ExtractSignals(%q)[%s] = %d, want %d", tt.transcript, tt.category, got, tt.want)
			}
		})
	}
}

func TestExtractSignals_ExistingCustomer(t *testing.T) {
	tests := []struct {
		name   string
		caller *CallerInfo
		want   int
	}{
		{"nil caller", nil, 0},
		{"empty record", &CallerInfo{}, 0},
		{"named caller", &CallerInfo{Name: "Ada Diaz", Company: "Initech"}, 10},
		{"flag only", &CallerInfo{ExistingCustomer: true}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signals := ExtractSignals("hello", tt.caller)
			if got := signals[CategoryExistingCustomer]; got != tt.want {
				t.Errorf("existing customer weight = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExtractSignals_EveryCategoryPresent(t *testing.T) {
	signals := ExtractSignals("", nil)

	if len(signals) != len(Categories) {
		t.Fatalf("signal set has %d categories, want %d", len(signals), len(Categories))
	}
	for _, category := range Categories {
		if _, ok := signals[category]; !ok {
			t.Errorf("category %s missing from signal set", category)
		}
	}
}
