package models

import "strings"

// CallerRecord is the flattened result of a CRM directory lookup.
type CallerRecord struct {
	Found   bool   `json:"found"`
	Type    string `json:"type,omitempty"` // "contact" or "lead"
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Company string `json:"company,omitempty"`
	AEName  string `json:"ae_name,omitempty"`
	AEPhone string `json:"ae_phone,omitempty"`
}

// DynamicVariables returns the lookup result in the variable form the voice
// platform expects after the greeting step.
func (r *CallerRecord) DynamicVariables() map[string]any {
	if r == nil || !r.Found {
		return map[string]any{"account_found": "false"}
	}

	first, last := r.Name, ""
	if i := strings.Index(r.Name, " "); i > 0 {
		first, last = r.Name[:i], r.Name[i+1:]
	}

	return map[string]any{
		"account_found": "true",
		"first_name":    first,
		"last_name":     last,
		"email":         r.Email,
		"company":       r.Company,
		"ae_name":       r.AEName,
		"ae_phone":      r.AEPhone,
	}
}
