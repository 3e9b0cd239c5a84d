package models

import "time"

// Verification states for a declared mentor skill. Only verified skills are
// ever eligible for matching.
const (
	VerificationPending  = "pending"
	VerificationVerified = "verified"
	VerificationRejected = "rejected"
)

// MentorSkill is a mentor's declared teaching capability for one skill.
// A record with CanMentor=false is invisible to matching regardless of its
// other attributes.
type MentorSkill struct {
	ID               string     `bson:"_id,omitempty" json:"id"`
	UserID           string     `bson:"user_id" json:"user_id"`
	SkillID          string     `bson:"skill_id" json:"skill_id"`
	ProficiencyLevel int        `bson:"proficiency_level" json:"proficiency_level"`
	YearsExperience  int        `bson:"years_experience" json:"years_experience"`
	CanMentor        bool       `bson:"can_mentor" json:"can_mentor"`
	HourlyRate       *float64   `bson:"hourly_rate,omitempty" json:"hourly_rate,omitempty"`
	Currency         string     `bson:"currency" json:"currency"`
	Description      string     `bson:"description,omitempty" json:"description,omitempty"`
	VerificationStatus string   `bson:"verification_status" json:"verification_status"`
	VerifiedAt       *time.Time `bson:"verified_at,omitempty" json:"verified_at,omitempty"`
	IsActive         bool       `bson:"is_active" json:"is_active"`
	CreatedAt        time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time  `bson:"updated_at" json:"updated_at"`
}

// IsFree reports whether the mentor teaches this skill without charge.
func (m *MentorSkill) IsFree() bool {
	return m.HourlyRate == nil
}
