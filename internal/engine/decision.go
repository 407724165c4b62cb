package engine

import (
	"fmt"
	"sort"
	"strings"
)

// Decision is the assembled outcome for one qualification request.
type Decision struct {
	Signals       SignalSet
	Qualification QualificationResult
	Routing       RoutingDecision
	Reasoning     string
}

// Evaluate runs the full pipeline over one conversation: signal extraction,
// scoring, urgency classification and routing, assembled with a
// human-readable reasoning summary. A missing transcript is treated as
// empty text and yields the safe DQ/low/no-transfer outcome; partial caller
// data never blocks the evaluation.
func Evaluate(transcript string, caller *CallerInfo) Decision {
	signals := ExtractSignals(transcript, caller)
	score := Score(signals)

	result := QualificationResult{
		Score:   score,
		Tier:    TierForScore(score),
		Urgency: ClassifyUrgency(transcript),
	}
	routing := Route(result.Tier, result.Urgency, caller)

	return Decision{
		Signals:       signals,
		Qualification: result,
		Routing:       routing,
		Reasoning:     summarize(signals, result, routing),
	}
}

// summarize builds the deterministic reasoning string from the decision
// parts. Categories are listed in descending weight order for readability.
func summarize(signals SignalSet, result QualificationResult, routing RoutingDecision) string {
	type hit struct {
		category Category
		weight   int
	}
	var hits []hit
	for category, weight := range signals {
		if weight > 0 {
			hits = append(hits, hit{category, weight})
		}
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].weight != hits[j].weight {
			return hits[i].weight > hits[j].weight
		}
		return hits[i].category < hits[j].category
	})

	var b strings.Builder
	fmt.Fprintf(&b, "Scored %d (%s) with %s urgency", result.Score, result.Tier, result.Urgency)
	if len(hits) == 0 {
		b.WriteString("; no qualification signals detected")
	} else {
		parts := make([]string, len(hits))
		for i, h := range hits {
			parts[i] = fmt.Sprintf("%s +%d", h.category, h.weight)
		}
		fmt.Fprintf(&b, " from %s", strings.Join(parts, ", "))
	}
	b.WriteString(". ")
	b.WriteString(capitalize(routing.Reason))
	b.WriteString(".")
	return b.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
