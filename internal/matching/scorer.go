package matching

import "matching-service/internal/models"

// Factor names exposed in score breakdowns and persisted match records.
const (
	FactorSkill      = "skill_match"
	FactorPrice      = "price_match"
	FactorUrgency    = "urgency_match"
	FactorReputation = "reputation_match"
)

// Factor weights. They sum to 1.0 so the total stays on the 0-100 scale.
const (
	weightSkill      = 0.40
	weightPrice      = 0.25
	weightUrgency    = 0.15
	weightReputation = 0.20
)

const (
	// fullExperienceYears is where the experience factor saturates.
	fullExperienceYears = 3.0
	// underQualifiedPenalty applies when the mentor does not clear the
	// mentee's target level.
	underQualifiedPenalty = 0.3
	// belowBudgetBase scores a rate under the stated minimum: not a defect,
	// but a potential quality mismatch.
	belowBudgetBase = 80.0
	// defaultReputation stands in for candidates with no review history:
	// unknown quality, slightly below average confidence.
	defaultReputation = 60.0

	// Algorithm tags the model version on persisted match records.
	Algorithm = "v1.0"
)

// Score computes the weighted compatibility between a learning need and one
// candidate. It is pure: no I/O, no shared state, deterministic in its inputs.
//
// Callers must pre-filter the pool: a candidate whose skill does not match the
// need, or with CanMentor=false, must never reach this function.
func Score(need *models.LearningNeed, cand *models.Candidate) (float64, map[string]float64) {
	factors := map[string]float64{
		FactorSkill:      skillScore(need, &cand.MentorSkill),
		FactorPrice:      priceScore(need, &cand.MentorSkill),
		FactorUrgency:    urgencyScore(need),
		FactorReputation: reputationScore(cand.Rating()),
	}

	total := factors[FactorSkill]*weightSkill +
		factors[FactorPrice]*weightPrice +
		factors[FactorUrgency]*weightUrgency +
		factors[FactorReputation]*weightReputation

	return clamp(total, 0, 100), factors
}

// skillScore starts at 100 for the (precondition-guaranteed) skill identity,
// scaled by experience and by how far the mentor clears the mentee's target.
// Zero experience floors at 50; missing optional data never yields a hard zero.
func skillScore(need *models.LearningNeed, skill *models.MentorSkill) float64 {
	score := 100.0

	expFactor := float64(skill.YearsExperience) / fullExperienceYears
	if expFactor > 1.0 {
		expFactor = 1.0
	}
	score *= 0.5 + 0.5*expFactor

	// A mentor must out-rank the mentee's goal to be a credible teacher.
	gap := skill.ProficiencyLevel - need.TargetLevel
	if gap >= 1 {
		mult := float64(gap) / 2.0
		if mult > 1.0 {
			mult = 1.0
		}
		score *= mult
	} else {
		score *= underQualifiedPenalty
	}
	return score
}

// priceScore rates the candidate's hourly rate against the need's budget.
// A free mentor is a perfect price match. Rates above the budget ceiling
// score zero here, though the filter excludes them outright before scoring.
// A rate below budget_min keeps the 80 base; whether cheap-below-minimum
// should instead be flagged is pending product clarification.
func priceScore(need *models.LearningNeed, skill *models.MentorSkill) float64 {
	if skill.HourlyRate == nil {
		return 100.0
	}
	rate := *skill.HourlyRate

	if need.BudgetMax != nil && rate > *need.BudgetMax {
		return 0.0
	}

	score := 100.0
	if need.BudgetMin != nil && rate < *need.BudgetMin {
		score = belowBudgetBase
	}

	// Cheaper-within-range scores strictly higher than pricier-within-range.
	if need.BudgetMin != nil && need.BudgetMax != nil && *need.BudgetMax > *need.BudgetMin {
		position := (rate - *need.BudgetMin) / (*need.BudgetMax - *need.BudgetMin)
		score *= 1.0 - 0.2*clamp(position, 0, 1)
	}
	return score
}

// urgencyScore depends only on the mentee's stated urgency. It uniformly
// boosts all candidates of an urgent request; kept as a factor so the
// breakdown stays transparent.
func urgencyScore(need *models.LearningNeed) float64 {
	return float64(need.UrgencyLevel) * 20.0
}

// reputationScore maps the 0-5 rating scale onto 0-100.
func reputationScore(rating *float64) float64 {
	if rating == nil {
		return defaultReputation
	}
	return clamp(*rating*20.0, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
