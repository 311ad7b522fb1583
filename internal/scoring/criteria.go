package scoring

import (
	"strings"

	"github.com/juryboard/juryboard/internal/models"
)

// Normalize canonicalizes a criterion name: surrounding whitespace trimmed,
// upper-cased. Every write path goes through this so comparisons stay
// case-insensitive.
func Normalize(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// Conform rebuilds a score map against the registered criteria. Incoming
// keys are normalized before matching, scores for unregistered criteria are
// dropped, and registered criteria missing from the input default to 0.
func Conform(scores models.ScoreMap, registry []string) models.ScoreMap {
	normalized := make(models.ScoreMap, len(scores))
	for name, score := range scores {
		normalized[Normalize(name)] = score
	}

	out := make(models.ScoreMap, len(registry))
	for _, criterion := range registry {
		out[criterion] = normalized[criterion]
	}
	return out
}

func Total(scores models.ScoreMap) int {
	total := 0
	for _, score := range scores {
		total += score
	}
	return total
}

// Rescore conforms every mark to the live registry and recomputes totals.
// The stored total is only a write-time cache: it goes stale whenever the
// registry changes after the mark was saved.
func Rescore(marks []models.Mark, registry []string) []models.Mark {
	out := make([]models.Mark, len(marks))
	for i, mark := range marks {
		mark.Criteria = Conform(mark.Criteria, registry)
		mark.Total = Total(mark.Criteria)
		out[i] = mark
	}
	return out
}
