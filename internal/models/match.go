package models

import "time"

// Match lifecycle states. The scoring core only ever writes "suggested";
// the richer state machine belongs to the relationship service.
const (
	MatchSuggested        = "suggested"
	MatchMenteeInterested = "mentee_interested"
	MatchMentorInterested = "mentor_interested"
	MatchMutualInterest   = "mutual_interest"
	MatchDeclined         = "declined"
	MatchExpired          = "expired"
)

// MatchRecord persists one ranked suggestion produced for a learning need.
type MatchRecord struct {
	ID             string             `bson:"_id,omitempty" json:"id"`
	LearningNeedID string             `bson:"learning_need_id" json:"learning_need_id"`
	MenteeID       string             `bson:"mentee_id" json:"mentee_id"`
	MentorUserID   string             `bson:"mentor_user_id" json:"mentor_user_id"`
	MentorSkillID  string             `bson:"mentor_skill_id" json:"mentor_skill_id"`
	SkillID        string             `bson:"skill_id" json:"skill_id"`
	TotalScore     float64            `bson:"total_score" json:"total_score"`
	Factors        map[string]float64 `bson:"factors" json:"factors"`
	Rank           int                `bson:"rank" json:"rank"`
	Status         string             `bson:"status" json:"status"`
	Algorithm      string             `bson:"algorithm" json:"algorithm"`
	RespondedAt    *time.Time         `bson:"responded_at,omitempty" json:"responded_at,omitempty"`
	ResponseNote   string             `bson:"response_note,omitempty" json:"response_note,omitempty"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
}
