package models

import "time"

// SkillCategory groups skills for catalog browsing.
type SkillCategory struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Name        string    `bson:"name" json:"name"`
	NameEn      string    `bson:"name_en,omitempty" json:"name_en,omitempty"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	IconURL     string    `bson:"icon_url,omitempty" json:"icon_url,omitempty"`
	SortOrder   int       `bson:"sort_order" json:"sort_order"`
	IsActive    bool      `bson:"is_active" json:"is_active"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// Skill is a catalog entry mentors teach and mentees request.
type Skill struct {
	ID              string    `bson:"_id,omitempty" json:"id"`
	CategoryID      string    `bson:"category_id" json:"category_id"`
	Name            string    `bson:"name" json:"name"`
	NameEn          string    `bson:"name_en,omitempty" json:"name_en,omitempty"`
	Description     string    `bson:"description,omitempty" json:"description,omitempty"`
	DifficultyLevel int       `bson:"difficulty_level" json:"difficulty_level"`
	SortOrder       int       `bson:"sort_order" json:"sort_order"`
	IsActive        bool      `bson:"is_active" json:"is_active"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}
