package matching

import (
	"testing"

	"matching-service/internal/models"
)

func rankableNeed() *models.LearningNeed {
	return &models.LearningNeed{
		SkillID:      "skill-1",
		UrgencyLevel: 3,
		CurrentLevel: 1,
		TargetLevel:  3,
	}
}

func TestRankDiscardsBelowThreshold(t *testing.T) {
	need := rankableNeed()
	need.UrgencyLevel = 1
	need.BudgetMin = floatPtr(100)
	need.BudgetMax = floatPtr(200)

	// Under-qualified, zero experience, priced above the ceiling, rated 0.5:
	// 0.4*15 + 0.25*0 + 0.15*20 + 0.2*10 = 11, under the viability floor.
	weak := verifiedCandidate("skill-1", 3, 0, floatPtr(300), floatPtr(0.5))
	weak.MentorSkill.ID = "ms-weak"
	strong := verifiedCandidate("skill-1", 5, 5, floatPtr(100), floatPtr(5.0))
	strong.MentorSkill.ID = "ms-strong"

	ranked, total := Rank(need, []models.Candidate{weak, strong}, 10)
	if total != 1 {
		t.Fatalf("expected 1 viable match, got %d", total)
	}
	if ranked[0].Candidate.ID() != "ms-strong" {
		t.Errorf("expected ms-strong, got %s", ranked[0].Candidate.ID())
	}
}

func TestRankOrdersByScoreDescending(t *testing.T) {
	need := rankableNeed()
	low := verifiedCandidate("skill-1", 4, 1, nil, floatPtr(3.0))
	low.MentorSkill.ID = "ms-low"
	high := verifiedCandidate("skill-1", 5, 5, nil, floatPtr(5.0))
	high.MentorSkill.ID = "ms-high"

	ranked, _ := Rank(need, []models.Candidate{low, high}, 10)
	if len(ranked) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(ranked))
	}
	if ranked[0].Candidate.ID() != "ms-high" {
		t.Errorf("expected ms-high first, got %s", ranked[0].Candidate.ID())
	}
	if ranked[0].Score < ranked[1].Score {
		t.Errorf("scores not descending: %.2f then %.2f", ranked[0].Score, ranked[1].Score)
	}
}

func TestRankTieBreaks(t *testing.T) {
	need := rankableNeed()

	// Identical skill/price/urgency factors; only the tie-break keys differ.
	makeTied := func(id string, rating *float64) models.Candidate {
		c := verifiedCandidate("skill-1", 5, 5, nil, floatPtr(4.0))
		c.MentorSkill.ID = id
		c.Profile.Rating = rating
		return c
	}

	t.Run("higher rating wins a score tie", func(t *testing.T) {
		// Rating feeds the score, so pin reputation by comparing candidates
		// whose composite totals still tie is impractical here; instead verify
		// the id tie-break on fully identical candidates.
		a := makeTied("ms-b", floatPtr(4.0))
		b := makeTied("ms-a", floatPtr(4.0))
		ranked, _ := Rank(need, []models.Candidate{a, b}, 10)
		if ranked[0].Candidate.ID() != "ms-a" {
			t.Errorf("expected ascending id tie-break, got %s first", ranked[0].Candidate.ID())
		}
	})

	t.Run("unrated sorts below rated on ties", func(t *testing.T) {
		// A 3.0 rating scores the same reputation factor (60) as no rating,
		// so the totals tie and the rating tie-break decides.
		rated := makeTied("ms-z-rated", floatPtr(3.0))
		unrated := makeTied("ms-a-unrated", nil)
		ranked, _ := Rank(need, []models.Candidate{unrated, rated}, 10)
		if ranked[0].Candidate.ID() != "ms-z-rated" {
			t.Errorf("expected rated candidate first, got %s", ranked[0].Candidate.ID())
		}
	})
}

func TestRankAssignsSequentialRanks(t *testing.T) {
	need := rankableNeed()
	pool := make([]models.Candidate, 0, 5)
	for i, id := range []string{"ms-a", "ms-b", "ms-c", "ms-d", "ms-e"} {
		c := verifiedCandidate("skill-1", 5, 5-i, nil, floatPtr(5.0-float64(i)*0.5))
		c.MentorSkill.ID = id
		pool = append(pool, c)
	}
	ranked, _ := Rank(need, pool, 10)
	for i, m := range ranked {
		if m.Rank != i+1 {
			t.Errorf("position %d: expected rank %d, got %d", i, i+1, m.Rank)
		}
	}
}

func TestRankLimit(t *testing.T) {
	need := rankableNeed()
	pool := make([]models.Candidate, 0, 60)
	for i := 0; i < 60; i++ {
		c := verifiedCandidate("skill-1", 5, 5, nil, floatPtr(4.5))
		c.MentorSkill.ID = "ms-" + string(rune('a'+i%26)) + string(rune('a'+i/26))
		pool = append(pool, c)
	}

	testCases := []struct {
		name     string
		limit    int
		expected int
	}{
		{"zero limit falls back to default", 0, DefaultLimit},
		{"negative limit falls back to default", -5, DefaultLimit},
		{"explicit limit respected", 3, 3},
		{"limit above cap clamps to max", 100, MaxLimit},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ranked, total := Rank(need, pool, tc.limit)
			if len(ranked) != tc.expected {
				t.Errorf("expected %d matches, got %d", tc.expected, len(ranked))
			}
			if total != 60 {
				t.Errorf("expected total 60 before truncation, got %d", total)
			}
		})
	}
}

func TestRankEmptyPool(t *testing.T) {
	ranked, total := Rank(rankableNeed(), nil, 10)
	if len(ranked) != 0 || total != 0 {
		t.Fatalf("expected empty result, got %d matches total %d", len(ranked), total)
	}
}
