package matching

import (
	"sort"

	"matching-service/internal/models"
)

// PreferenceBonus is the simple two-term score used by the search
// recommendation rail: +1 when the mentor's university is among the caller's
// targets, +1 for the major. It is a sort key only and is never blended into
// the compatibility score.
func PreferenceBonus(profile *models.MentorProfile, prefs *models.RecommendationPreferences) int {
	if prefs == nil {
		return 0
	}
	bonus := 0
	if contains(prefs.TargetUniversities, profile.University) {
		bonus++
	}
	if contains(prefs.TargetMajors, profile.Major) {
		bonus++
	}
	return bonus
}

// OrderByPreference sorts a pool descending by preference bonus, with rating
// as the secondary key, and annotates each entry with its bonus. The sort is
// stable, so pools pre-ordered by the fetcher keep that order within ties.
func OrderByPreference(pool []models.Candidate, prefs *models.RecommendationPreferences) []models.RecommendedMentor {
	out := make([]models.RecommendedMentor, 0, len(pool))
	for _, cand := range pool {
		out = append(out, models.RecommendedMentor{
			MentorSkill:     cand.MentorSkill,
			Profile:         cand.Profile,
			PreferenceScore: PreferenceBonus(&cand.Profile, prefs),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].PreferenceScore != out[j].PreferenceScore {
			return out[i].PreferenceScore > out[j].PreferenceScore
		}
		ri, rj := -1.0, -1.0
		if out[i].Profile.Rating != nil {
			ri = *out[i].Profile.Rating
		}
		if out[j].Profile.Rating != nil {
			rj = *out[j].Profile.Rating
		}
		return ri > rj
	})
	return out
}
