package models

// MatchingFilter narrows a candidate pool with hard constraints. Empty slices
// and nil bounds mean "no constraint".
type MatchingFilter struct {
	Universities      []string `json:"universities,omitempty"`
	Majors            []string `json:"majors,omitempty"`
	DegreeLevels      []string `json:"degree_levels,omitempty"`
	GraduationYearMin *int     `json:"graduation_year_min,omitempty"`
	GraduationYearMax *int     `json:"graduation_year_max,omitempty"`
	RatingMin         *float64 `json:"rating_min,omitempty"`
	MinSessions       *int     `json:"min_sessions,omitempty"`
	Languages         []string `json:"languages,omitempty"`
}

// MatchingRequest asks for ranked mentor suggestions for one learning need.
type MatchingRequest struct {
	LearningNeedID string          `json:"learning_need_id" binding:"required"`
	Filters        *MatchingFilter `json:"filters,omitempty"`
	ExcludeIDs     []string        `json:"exclude_ids,omitempty"`
	Limit          int             `json:"limit"`
}

// MatchSuggestion is one ranked entry of a matching response.
type MatchSuggestion struct {
	MentorSkill MentorSkill        `json:"mentor_skill"`
	Profile     MentorProfile      `json:"profile"`
	TotalScore  float64            `json:"total_score"`
	Factors     map[string]float64 `json:"factors"`
	Rank        int                `json:"rank"`
}

// MatchingResponse is the paged result of a find-mentors request.
// TotalCount counts every viable match before truncation to the limit.
type MatchingResponse struct {
	Suggestions    []MatchSuggestion `json:"suggestions"`
	TotalCount     int               `json:"total_count"`
	FiltersApplied *MatchingFilter   `json:"filters_applied,omitempty"`
}

// RecommendationPreferences are the optional hints a caller supplies for
// context-based recommendations.
type RecommendationPreferences struct {
	TargetUniversities []string `json:"target_universities,omitempty"`
	TargetMajors       []string `json:"target_majors,omitempty"`
	ServiceCategory    string   `json:"service_category,omitempty"`
}

// RecommendationRequest selects a recommendation rail by context.
type RecommendationRequest struct {
	Context     string                     `json:"context" binding:"required"`
	Preferences *RecommendationPreferences `json:"preferences,omitempty"`
	Limit       int                        `json:"limit"`
	ExcludeIDs  []string                   `json:"exclude_ids,omitempty"`
}

// RecommendedMentor is one entry of a recommendation rail. PreferenceScore is
// only populated on the search context, where it is the sort key.
type RecommendedMentor struct {
	MentorSkill     MentorSkill   `json:"mentor_skill"`
	Profile         MentorProfile `json:"profile"`
	PreferenceScore int           `json:"preference_score,omitempty"`
}

// FilterOptions enumerates the values the advanced-filter UI can offer.
type FilterOptions struct {
	Universities        []string  `json:"universities"`
	Majors              []string  `json:"majors"`
	DegreeLevels        []string  `json:"degree_levels"`
	RatingRange         IntRange  `json:"rating_range"`
	GraduationYearRange IntRange  `json:"graduation_year_range"`
}

type IntRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// MentorSkillInput declares or updates a mentor's teaching capability.
type MentorSkillInput struct {
	SkillID          string   `json:"skill_id" binding:"required"`
	ProficiencyLevel int      `json:"proficiency_level" binding:"required,min=1,max=5"`
	YearsExperience  int      `json:"years_experience" binding:"min=0"`
	CanMentor        bool     `json:"can_mentor"`
	HourlyRate       *float64 `json:"hourly_rate,omitempty"`
	Currency         string   `json:"currency"`
	Description      string   `json:"description"`
}

// MentorSkillUpdate partially updates a declared mentor skill. Nil fields are
// left untouched.
type MentorSkillUpdate struct {
	ProficiencyLevel *int     `json:"proficiency_level,omitempty"`
	YearsExperience  *int     `json:"years_experience,omitempty"`
	CanMentor        *bool    `json:"can_mentor,omitempty"`
	HourlyRate       *float64 `json:"hourly_rate,omitempty"`
	Currency         *string  `json:"currency,omitempty"`
	Description      *string  `json:"description,omitempty"`
}

// LearningNeedInput creates or updates a learning need.
type LearningNeedInput struct {
	SkillID            string   `json:"skill_id" binding:"required"`
	UrgencyLevel       int      `json:"urgency_level" binding:"required,min=1,max=5"`
	BudgetMin          *float64 `json:"budget_min,omitempty"`
	BudgetMax          *float64 `json:"budget_max,omitempty"`
	Currency           string   `json:"currency"`
	CurrentLevel       int      `json:"current_level" binding:"required,min=1,max=5"`
	TargetLevel        int      `json:"target_level" binding:"required,min=1,max=5"`
	PreferredLanguages []string `json:"preferred_languages,omitempty"`
	PreferredFormat    string   `json:"preferred_format"`
	Description        string   `json:"description"`
	LearningGoals      string   `json:"learning_goals"`
}

// LearningNeedUpdate partially updates a learning need. Nil fields are left
// untouched; the merged need is re-validated before anything is written.
type LearningNeedUpdate struct {
	UrgencyLevel       *int     `json:"urgency_level,omitempty"`
	BudgetMin          *float64 `json:"budget_min,omitempty"`
	BudgetMax          *float64 `json:"budget_max,omitempty"`
	CurrentLevel       *int     `json:"current_level,omitempty"`
	TargetLevel        *int     `json:"target_level,omitempty"`
	PreferredLanguages []string `json:"preferred_languages,omitempty"`
	PreferredFormat    *string  `json:"preferred_format,omitempty"`
	Description        *string  `json:"description,omitempty"`
	LearningGoals      *string  `json:"learning_goals,omitempty"`
}
