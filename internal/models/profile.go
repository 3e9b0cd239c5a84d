package models

import "time"

// MentorProfile carries the presentation and filter attributes attached to a
// mentor's candidate record: academic background, languages and aggregate
// reputation. Rating is nil until the mentor has review history.
type MentorProfile struct {
	ID                string    `bson:"_id,omitempty" json:"id"`
	UserID            string    `bson:"user_id" json:"user_id"`
	Username          string    `bson:"username" json:"username"`
	FullName          string    `bson:"full_name,omitempty" json:"full_name,omitempty"`
	AvatarURL         string    `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	University        string    `bson:"university,omitempty" json:"university,omitempty"`
	Major             string    `bson:"major,omitempty" json:"major,omitempty"`
	DegreeLevel       string    `bson:"degree_level,omitempty" json:"degree_level,omitempty"`
	GraduationYear    int       `bson:"graduation_year,omitempty" json:"graduation_year,omitempty"`
	Languages         []string  `bson:"languages,omitempty" json:"languages,omitempty"`
	Rating            *float64  `bson:"rating,omitempty" json:"rating,omitempty"`
	TotalSessions     int       `bson:"total_sessions" json:"total_sessions"`
	ServiceCategories []string  `bson:"service_categories,omitempty" json:"service_categories,omitempty"`
	CreatedAt         time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time `bson:"updated_at" json:"updated_at"`
}

// Candidate is one unit of the matching pool: a verified mentor skill joined
// with its owner's profile. Pools are assembled by the repository layer and
// treated as immutable snapshots for the duration of a scoring pass.
type Candidate struct {
	MentorSkill MentorSkill   `bson:"mentor_skill" json:"mentor_skill"`
	Profile     MentorProfile `bson:"profile" json:"profile"`
}

// ID identifies a candidate by its mentor-skill record.
func (c *Candidate) ID() string {
	return c.MentorSkill.ID
}

// Rating returns the profile rating, or nil when no review history exists.
func (c *Candidate) Rating() *float64 {
	return c.Profile.Rating
}
