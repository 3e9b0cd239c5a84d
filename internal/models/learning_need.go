package models

import (
	"errors"
	"time"
)

// LearningNeedTTL is the horizon after which an open learning need stops
// being matchable unless the mentee renews it.
const LearningNeedTTL = 90 * 24 * time.Hour

var (
	ErrTargetNotAboveCurrent = errors.New("target_level must be higher than current_level")
	ErrBudgetRangeInverted   = errors.New("budget_max must be greater than or equal to budget_min")
	ErrLevelOutOfRange       = errors.New("levels must be between 1 and 5")
	ErrUrgencyOutOfRange     = errors.New("urgency_level must be between 1 and 5")
	ErrNegativeBudget        = errors.New("budget amounts must be non-negative")
)

// LearningNeed is a mentee's open request for guidance in one skill.
type LearningNeed struct {
	ID                 string    `bson:"_id,omitempty" json:"id"`
	UserID             string    `bson:"user_id" json:"user_id"`
	SkillID            string    `bson:"skill_id" json:"skill_id"`
	UrgencyLevel       int       `bson:"urgency_level" json:"urgency_level"`
	BudgetMin          *float64  `bson:"budget_min,omitempty" json:"budget_min,omitempty"`
	BudgetMax          *float64  `bson:"budget_max,omitempty" json:"budget_max,omitempty"`
	Currency           string    `bson:"currency" json:"currency"`
	CurrentLevel       int       `bson:"current_level" json:"current_level"`
	TargetLevel        int       `bson:"target_level" json:"target_level"`
	PreferredLanguages []string  `bson:"preferred_languages,omitempty" json:"preferred_languages,omitempty"`
	PreferredFormat    string    `bson:"preferred_format" json:"preferred_format"`
	Description        string    `bson:"description,omitempty" json:"description,omitempty"`
	LearningGoals      string    `bson:"learning_goals,omitempty" json:"learning_goals,omitempty"`
	IsActive           bool      `bson:"is_active" json:"is_active"`
	CreatedAt          time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time `bson:"updated_at" json:"updated_at"`
	ExpiresAt          time.Time `bson:"expires_at" json:"expires_at"`
}

// Validate enforces the invariants a need must satisfy before it can enter
// matching. Malformed needs are rejected, never silently corrected.
func (n *LearningNeed) Validate() error {
	if n.UrgencyLevel < 1 || n.UrgencyLevel > 5 {
		return ErrUrgencyOutOfRange
	}
	if n.CurrentLevel < 1 || n.CurrentLevel > 5 || n.TargetLevel < 1 || n.TargetLevel > 5 {
		return ErrLevelOutOfRange
	}
	if n.TargetLevel <= n.CurrentLevel {
		return ErrTargetNotAboveCurrent
	}
	if n.BudgetMin != nil && *n.BudgetMin < 0 {
		return ErrNegativeBudget
	}
	if n.BudgetMax != nil && *n.BudgetMax < 0 {
		return ErrNegativeBudget
	}
	if n.BudgetMin != nil && n.BudgetMax != nil && *n.BudgetMax < *n.BudgetMin {
		return ErrBudgetRangeInverted
	}
	return nil
}

// Expired reports whether the need has passed its matching horizon.
func (n *LearningNeed) Expired(now time.Time) bool {
	return !n.ExpiresAt.IsZero() && now.After(n.ExpiresAt)
}
