package engine

import "strings"

// Urgency is the binary urgency classification for a conversation.
type Urgency string

const (
	UrgencyHigh Urgency = "high"
	UrgencyLow  Urgency = "low"
)

// urgencyKeywords trigger a high-urgency classification on any match.
var urgencyKeywords = []string{
	"urgent",
	"asap",
	"immediately",
	"emergency",
	"down",
	"broken",
	"deadline",
	"launch",
}

// ClassifyUrgency returns the urgency flag for the raw conversation text.
// It is evaluated independently of scoring: a disqualified transcript that
// mentions an emergency is still high urgency.
func ClassifyUrgency(transcript string) Urgency {
	lowered := strings.ToLower(transcript)
	for _, keyword := range urgencyKeywords {
		if strings.Contains(lowered, keyword) {
			return UrgencyHigh
		}
	}
	return UrgencyLow
}
