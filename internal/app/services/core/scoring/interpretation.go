package scoring

import (
	"fmt"
	"strings"

	"mindcare-service/internal/app/models"
)

// InterpretationGuide renders the static band table,
// "0–4: Minimal, 5–9: Mild, 10–14: Moderate, 15+: Severe".
func InterpretationGuide() string {
	ranges := models.BandRanges()
	parts := make([]string, 0, len(ranges))
	for _, r := range ranges {
		if r.Max < 0 {
			parts = append(parts, fmt.Sprintf("%d+: %s", r.Min, r.Band))
			continue
		}
		parts = append(parts, fmt.Sprintf("%d–%d: %s", r.Min, r.Max, r.Band))
	}
	return strings.Join(parts, ", ")
}

// Summary is the one-line result shown after submission.
func Summary(result Result) string {
	return fmt.Sprintf("Your total score: %d (%s)", result.Total, result.Band)
}
