package pipeline

import (
	"sort"

	"leaddesk_backend/internal/leads/domain"
)

// Time orderings.
const (
	TimeNewest = "newest"
	TimeOldest = "oldest"
)

// Score orderings.
const (
	ScoreHighest = "highest"
	ScoreLowest  = "lowest"
)

// SortSpec describes the requested ordering. When both time and score are
// set, time is applied first and score second, so score is the dominant key
// and time only breaks score ties. When neither is set, the default is
// score-descending. Remaining ties fall back to the lead identifier so that
// repeated calls on identical input paginate identically.
type SortSpec struct {
	Time  string
	Score string
}

// Sort returns a sorted copy of leads. The input slice is not modified.
func Sort(leads []domain.Lead, spec SortSpec) []domain.Lead {
	out := make([]domain.Lead, len(leads))
	copy(out, leads)

	score := spec.Score
	if spec.Time == "" && spec.Score == "" {
		score = ScoreHighest
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]

		if score != "" && a.LeadScore != b.LeadScore {
			if score == ScoreLowest {
				return a.LeadScore < b.LeadScore
			}
			return a.LeadScore > b.LeadScore
		}

		if spec.Time != "" && !a.CreatedAt.Equal(b.CreatedAt) {
			if spec.Time == TimeOldest {
				return a.CreatedAt.Before(b.CreatedAt)
			}
			return a.CreatedAt.After(b.CreatedAt)
		}

		return a.ID < b.ID
	})

	return out
}
