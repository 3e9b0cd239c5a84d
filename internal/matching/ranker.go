package matching

import (
	"sort"

	"matching-service/internal/models"
)

const (
	// MinViableScore is the floor under which a match is noise, not signal.
	MinViableScore = 30.0
	// DefaultLimit and MaxLimit bound a ranking request.
	DefaultLimit = 10
	MaxLimit     = 50
)

// Match is one scored, ranked candidate.
type Match struct {
	Candidate models.Candidate
	Score     float64
	Factors   map[string]float64
	Rank      int
}

// Rank scores every candidate, discards totals below MinViableScore, sorts
// descending by score (ties: descending rating, then ascending candidate id)
// and truncates to limit. The second return is the viable-match count before
// truncation.
func Rank(need *models.LearningNeed, pool []models.Candidate, limit int) ([]Match, int) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	viable := make([]Match, 0, len(pool))
	for _, cand := range pool {
		total, factors := Score(need, &cand)
		if total < MinViableScore {
			continue
		}
		viable = append(viable, Match{Candidate: cand, Score: total, Factors: factors})
	}

	sort.SliceStable(viable, func(i, j int) bool {
		if viable[i].Score != viable[j].Score {
			return viable[i].Score > viable[j].Score
		}
		ri, rj := tieRating(&viable[i].Candidate), tieRating(&viable[j].Candidate)
		if ri != rj {
			return ri > rj
		}
		return viable[i].Candidate.ID() < viable[j].Candidate.ID()
	})

	total := len(viable)
	if len(viable) > limit {
		viable = viable[:limit]
	}
	for i := range viable {
		viable[i].Rank = i + 1
	}
	return viable, total
}

// tieRating orders unrated candidates below every rated one.
func tieRating(cand *models.Candidate) float64 {
	if r := cand.Rating(); r != nil {
		return *r
	}
	return -1
}
