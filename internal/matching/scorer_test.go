package matching

import (
	"math"
	"testing"

	"matching-service/internal/models"
)

func floatPtr(v float64) *float64 { return &v }

func verifiedCandidate(skillID string, proficiency, years int, rate *float64, rating *float64) models.Candidate {
	return models.Candidate{
		MentorSkill: models.MentorSkill{
			ID:                 "ms-" + skillID,
			SkillID:            skillID,
			ProficiencyLevel:   proficiency,
			YearsExperience:    years,
			CanMentor:          true,
			HourlyRate:         rate,
			VerificationStatus: models.VerificationVerified,
			IsActive:           true,
		},
		Profile: models.MentorProfile{Rating: rating},
	}
}

func TestScoreWorkedExample(t *testing.T) {
	// Mentee wants to go from level 2 to 3 with moderate urgency and a
	// 100-200 budget; mentor is level 4 with 3 years, charging 150, rated 4.5.
	need := &models.LearningNeed{
		SkillID:      "skill-1",
		UrgencyLevel: 3,
		CurrentLevel: 2,
		TargetLevel:  3,
		BudgetMin:    floatPtr(100),
		BudgetMax:    floatPtr(200),
	}
	cand := verifiedCandidate("skill-1", 4, 3, floatPtr(150), floatPtr(4.5))

	total, factors := Score(need, &cand)

	epsilon := 0.01
	expected := map[string]float64{
		FactorSkill:      50.0,
		FactorPrice:      90.0,
		FactorUrgency:    60.0,
		FactorReputation: 90.0,
	}
	for name, want := range expected {
		if math.Abs(factors[name]-want) > epsilon {
			t.Errorf("factor %s: expected %.2f, got %.2f", name, want, factors[name])
		}
	}
	if math.Abs(total-69.5) > epsilon {
		t.Errorf("expected total 69.5, got %.2f", total)
	}
}

func TestSkillScore(t *testing.T) {
	testCases := []struct {
		name        string
		proficiency int
		years       int
		targetLevel int
		expected    float64
	}{
		{"zero experience floors at half", 4, 0, 3, 25.0}, // 100*0.5*0.5
		{"experience saturates at three years", 5, 10, 3, 100.0},
		{"gap of one halves the score", 4, 3, 3, 50.0},
		{"gap of two keeps full score", 5, 3, 3, 100.0},
		{"under-qualified takes the penalty", 3, 3, 3, 30.0}, // 100*1.0*0.3
		{"equal level is still under-qualified", 3, 6, 3, 30.0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			need := &models.LearningNeed{SkillID: "s", UrgencyLevel: 3, CurrentLevel: 1, TargetLevel: tc.targetLevel}
			cand := verifiedCandidate("s", tc.proficiency, tc.years, nil, nil)
			_, factors := Score(need, &cand)
			if math.Abs(factors[FactorSkill]-tc.expected) > 0.01 {
				t.Errorf("expected skill score %.2f, got %.2f", tc.expected, factors[FactorSkill])
			}
		})
	}
}

func TestPriceScore(t *testing.T) {
	testCases := []struct {
		name      string
		rate      *float64
		budgetMin *float64
		budgetMax *float64
		expected  float64
	}{
		{"no rate is a perfect match", nil, floatPtr(100), floatPtr(200), 100.0},
		{"free mentor with no budget", nil, nil, nil, 100.0},
		{"above ceiling scores zero", floatPtr(250), floatPtr(100), floatPtr(200), 0.0},
		{"at the floor scores full", floatPtr(100), floatPtr(100), floatPtr(200), 100.0},
		{"at the ceiling takes the full discount", floatPtr(200), floatPtr(100), floatPtr(200), 80.0},
		{"midpoint takes half the discount", floatPtr(150), floatPtr(100), floatPtr(200), 90.0},
		{"below minimum keeps the 80 base", floatPtr(50), floatPtr(100), floatPtr(200), 80.0},
		{"below minimum with no ceiling", floatPtr(50), floatPtr(100), nil, 80.0},
		{"rate with no budget at all", floatPtr(500), nil, nil, 100.0},
		{"degenerate equal bounds skip the discount", floatPtr(100), floatPtr(100), floatPtr(100), 100.0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			need := &models.LearningNeed{
				SkillID: "s", UrgencyLevel: 3, CurrentLevel: 1, TargetLevel: 2,
				BudgetMin: tc.budgetMin, BudgetMax: tc.budgetMax,
			}
			cand := verifiedCandidate("s", 5, 3, tc.rate, nil)
			_, factors := Score(need, &cand)
			if math.Abs(factors[FactorPrice]-tc.expected) > 0.01 {
				t.Errorf("expected price score %.2f, got %.2f", tc.expected, factors[FactorPrice])
			}
		})
	}
}

func TestPriceScoreCheaperRanksHigher(t *testing.T) {
	need := &models.LearningNeed{
		SkillID: "s", UrgencyLevel: 3, CurrentLevel: 1, TargetLevel: 2,
		BudgetMin: floatPtr(100), BudgetMax: floatPtr(200),
	}
	cheap := verifiedCandidate("s", 5, 3, floatPtr(120), nil)
	pricey := verifiedCandidate("s", 5, 3, floatPtr(180), nil)

	_, cheapFactors := Score(need, &cheap)
	_, priceyFactors := Score(need, &pricey)
	if cheapFactors[FactorPrice] <= priceyFactors[FactorPrice] {
		t.Errorf("cheaper in-range rate should score strictly higher: %.2f vs %.2f",
			cheapFactors[FactorPrice], priceyFactors[FactorPrice])
	}
}

func TestUrgencyScore(t *testing.T) {
	for urgency := 1; urgency <= 5; urgency++ {
		need := &models.LearningNeed{SkillID: "s", UrgencyLevel: urgency, CurrentLevel: 1, TargetLevel: 2}
		cand := verifiedCandidate("s", 5, 3, nil, nil)
		_, factors := Score(need, &cand)
		expected := float64(urgency) * 20.0
		if math.Abs(factors[FactorUrgency]-expected) > 0.01 {
			t.Errorf("urgency %d: expected %.2f, got %.2f", urgency, expected, factors[FactorUrgency])
		}
	}
}

func TestReputationScore(t *testing.T) {
	testCases := []struct {
		name     string
		rating   *float64
		expected float64
	}{
		{"no review history uses the default", nil, 60.0},
		{"top rating maps to 100", floatPtr(5.0), 100.0},
		{"mid rating scales linearly", floatPtr(3.0), 60.0},
		{"low rating", floatPtr(1.0), 20.0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			need := &models.LearningNeed{SkillID: "s", UrgencyLevel: 3, CurrentLevel: 1, TargetLevel: 2}
			cand := verifiedCandidate("s", 5, 3, nil, tc.rating)
			_, factors := Score(need, &cand)
			if math.Abs(factors[FactorReputation]-tc.expected) > 0.01 {
				t.Errorf("expected reputation %.2f, got %.2f", tc.expected, factors[FactorReputation])
			}
		})
	}
}

func TestScoreStaysInRange(t *testing.T) {
	need := &models.LearningNeed{SkillID: "s", UrgencyLevel: 5, CurrentLevel: 1, TargetLevel: 2}
	best := verifiedCandidate("s", 5, 10, nil, floatPtr(5.0))
	total, _ := Score(need, &best)
	if total < 0 || total > 100 {
		t.Errorf("total %.2f out of [0,100]", total)
	}

	worst := verifiedCandidate("s", 1, 0, floatPtr(999), floatPtr(0.5))
	need.UrgencyLevel = 1
	need.BudgetMax = floatPtr(100)
	total, _ = Score(need, &worst)
	if total < 0 || total > 100 {
		t.Errorf("total %.2f out of [0,100]", total)
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	need := &models.LearningNeed{
		SkillID: "s", UrgencyLevel: 4, CurrentLevel: 2, TargetLevel: 3,
		BudgetMin: floatPtr(50), BudgetMax: floatPtr(150),
	}
	cand := verifiedCandidate("s", 4, 2, floatPtr(90), floatPtr(4.2))
	first, _ := Score(need, &cand)
	for i := 0; i < 10; i++ {
		again, _ := Score(need, &cand)
		if again != first {
			t.Fatalf("score changed between identical calls: %.6f vs %.6f", first, again)
		}
	}
}
