package matching

import "matching-service/internal/models"

// Apply narrows a candidate pool with the hard constraints that gate scoring.
// Constraints short-circuit in order; a candidate must pass all of them.
// Output preserves pool order and performs no deduplication.
func Apply(pool []models.Candidate, need *models.LearningNeed, filters *models.MatchingFilter, excludeIDs []string) []models.Candidate {
	excluded := make(map[string]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = true
	}

	out := make([]models.Candidate, 0, len(pool))
	for _, cand := range pool {
		if !passes(&cand, need, filters, excluded) {
			continue
		}
		out = append(out, cand)
	}
	return out
}

func passes(cand *models.Candidate, need *models.LearningNeed, filters *models.MatchingFilter, excluded map[string]bool) bool {
	skill := &cand.MentorSkill
	if skill.VerificationStatus != models.VerificationVerified {
		return false
	}
	if !skill.CanMentor {
		return false
	}
	if skill.SkillID != need.SkillID {
		return false
	}
	if excluded[cand.ID()] {
		return false
	}
	if filters != nil && !passesAdvanced(&cand.Profile, filters) {
		return false
	}
	// Budget ceiling is a hard gate: a candidate priced above budget is
	// excluded outright, not merely down-scored.
	if skill.HourlyRate != nil && need.BudgetMax != nil && *skill.HourlyRate > *need.BudgetMax {
		return false
	}
	return true
}

func passesAdvanced(profile *models.MentorProfile, filters *models.MatchingFilter) bool {
	if len(filters.Universities) > 0 && !contains(filters.Universities, profile.University) {
		return false
	}
	if len(filters.Majors) > 0 && !contains(filters.Majors, profile.Major) {
		return false
	}
	if len(filters.DegreeLevels) > 0 && !contains(filters.DegreeLevels, profile.DegreeLevel) {
		return false
	}
	if filters.GraduationYearMin != nil && profile.GraduationYear < *filters.GraduationYearMin {
		return false
	}
	if filters.GraduationYearMax != nil && profile.GraduationYear > *filters.GraduationYearMax {
		return false
	}
	// An absent rating fails a minimum-rating constraint.
	if filters.RatingMin != nil && (profile.Rating == nil || *profile.Rating < *filters.RatingMin) {
		return false
	}
	if len(filters.Languages) > 0 && !intersects(filters.Languages, profile.Languages) {
		return false
	}
	return true
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

func intersects(a, b []string) bool {
	for _, s := range a {
		if contains(b, s) {
			return true
		}
	}
	return false
}
