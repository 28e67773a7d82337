package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/RohitDakare/ByteForce/models"
)

// SkillRepository handles persistence for Skill rows. Every lookup that
// takes a user id scopes the query to that owner; there is no way to reach
// another user's rows through this type.
type SkillRepository struct {
	db *gorm.DB
}

// NewSkillRepository creates a SkillRepository using the given database handle.
func NewSkillRepository(db *gorm.DB) *SkillRepository {
	return &SkillRepository{db: db}
}

// ListByUser returns all skills owned by userID in insertion order.
func (r *SkillRepository) ListByUser(userID uint) ([]models.Skill, error) {
	var skills []models.Skill
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&skills).Error; err != nil {
		return nil, fmt.Errorf("listing skills: %w", err)
	}
	return skills, nil
}

// FindOwned looks up a skill by (id, user_id). Returns (nil, nil) when no
// matching row exists; a skill owned by another user is indistinguishable
// from a skill that does not exist.
func (r *SkillRepository) FindOwned(skillID, userID uint) (*models.Skill, error) {
	var skill models.Skill
	if err := r.db.Where("id = ? AND user_id = ?", skillID, userID).First(&skill).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("finding skill: %w", err)
	}
	return &skill, nil
}

// Create inserts a new skill row.
func (r *SkillRepository) Create(skill *models.Skill) error {
	if err := r.db.Create(skill).Error; err != nil {
		return fmt.Errorf("creating skill: %w", err)
	}
	return nil
}

// Update persists all fields of the skill row.
func (r *SkillRepository) Update(skill *models.Skill) error {
	if err := r.db.Save(skill).Error; err != nil {
		return fmt.Errorf("updating skill: %w", err)
	}
	return nil
}

// Delete removes the skill row.
func (r *SkillRepository) Delete(skill *models.Skill) error {
	if err := r.db.Delete(skill).Error; err != nil {
		return fmt.Errorf("deleting skill: %w", err)
	}
	return nil
}
