package models

import (
	"time"
)

// Skill proficiency levels run from MinLevel to MaxLevel inclusive. Values
// outside the range are rejected before any persistence attempt.
const (
	MinLevel = 1
	MaxLevel = 5
)

// DefaultCategory is used when a skill is created without a category.
const DefaultCategory = "Other"

// Skill represents a single skill owned by a user.
type Skill struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"` // foreign key to users table
	Name      string    `gorm:"not null" json:"name"`
	Level     int       `gorm:"not null;check:level >= 1 AND level <= 5" json:"level"` // proficiency, 1-5
	Category  string    `gorm:"not null;default:'Other'" json:"category"`              // e.g. Programming, AI/ML, Cloud
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Skill model
func (Skill) TableName() string {
	return "skills"
}

// ValidLevel reports whether level is within the allowed proficiency range.
func ValidLevel(level int) bool {
	return level >= MinLevel && level <= MaxLevel
}

// Visual holds the presentation hints the client uses to render a skill.
// Every field is a pure function of the skill's level; the values match the
// frontend's scaling, glow, rotation and float parameters.
type Visual struct {
	Scale             float64 `json:"scale"`
	EmissiveIntensity float64 `json:"emissiveIntensity"`
	RotationSpeed     float64 `json:"rotationSpeed"`
	FloatIntensity    float64 `json:"floatIntensity"`
}

// Visual computes the presentation hints for the skill's current level.
func (s *Skill) Visual() Visual {
	level := float64(s.Level)
	return Visual{
		Scale:             0.2 + level*0.08,
		EmissiveIntensity: 0.2 * (level / 3),
		RotationSpeed:     0.1 * (level / 3),
		FloatIntensity:    0.002 * level,
	}
}

// SkillResponse is the API view of a skill, decorated with its visual hints.
type SkillResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Category string `json:"category"`
	Visual   Visual `json:"visual"`
}

// Response returns the decorated API view of the skill.
func (s *Skill) Response() SkillResponse {
	return SkillResponse{
		ID:       s.ID,
		Name:     s.Name,
		Level:    s.Level,
		Category: s.Category,
		Visual:   s.Visual(),
	}
}

// DefaultSkills returns the five starter skills created for every new user.
func DefaultSkills(userID uint) []Skill {
	return []Skill{
		{UserID: userID, Name: "Python", Level: 5, Category: "Programming"},
		{UserID: userID, Name: "Machine Learning", Level: 4, Category: "AI/ML"},
		{UserID: userID, Name: "Data Science", Level: 3, Category: "Data"},
		{UserID: userID, Name: "AWS", Level: 4, Category: "Cloud"},
		{UserID: userID, Name: "Deep Learning", Level: 2, Category: "AI/ML"},
	}
}
