package services

import (
	"github.com/RohitDakare/ByteForce/apperror"
	"github.com/RohitDakare/ByteForce/models"
	"github.com/RohitDakare/ByteForce/repository"
)

const levelRangeMessage = "Skill level must be between 1 and 5"

// CreateSkillInput carries the fields for a new skill. Category may be
// empty, in which case the default category is used.
type CreateSkillInput struct {
	Name     string
	Level    int
	Category string
}

// UpdateSkillInput carries a partial update. Nil fields keep their prior
// values.
type UpdateSkillInput struct {
	Name     *string
	Level    *int
	Category *string
}

// SkillService validates and mutates skill records scoped to the
// authenticated user. Ownership is enforced by the repository's lookup
// predicate, never by a separate permission check.
type SkillService struct {
	skills *repository.SkillRepository
	users  *repository.UserRepository
}

// NewSkillService creates a SkillService with its repositories injected.
func NewSkillService(skills *repository.SkillRepository, users *repository.UserRepository) *SkillService {
	return &SkillService{
		skills: skills,
		users:  users,
	}
}

// List returns all of the user's skills decorated with visual hints, in
// insertion order.
func (s *SkillService) List(userID uint) ([]models.SkillResponse, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, apperror.Persistence("look up user", err)
	}
	if user == nil {
		return nil, apperror.UserNotFound()
	}

	skills, err := s.skills.ListByUser(userID)
	if err != nil {
		return nil, apperror.Persistence("list skills", err)
	}

	responses := make([]models.SkillResponse, 0, len(skills))
	for _, skill := range skills {
		responses = append(responses, skill.Response())
	}
	return responses, nil
}

// Create validates and persists a new skill owned by userID. The level is
// checked before any persistence attempt.
func (s *SkillService) Create(userID uint, input CreateSkillInput) (*models.SkillResponse, error) {
	if !models.ValidLevel(input.Level) {
		return nil, apperror.ValidationFailed("level", levelRangeMessage)
	}

	category := input.Category
	if category == "" {
		category = models.DefaultCategory
	}

	skill := &models.Skill{
		UserID:   userID,
		Name:     input.Name,
		Level:    input.Level,
		Category: category,
	}
	if err := s.skills.Create(skill); err != nil {
		return nil, apperror.Persistence("save skill", err)
	}

	response := skill.Response()
	return &response, nil
}

// Update applies a partial update to a skill owned by userID. A level
// present in the update is re-validated before anything is applied, leaving
// the row unmodified on failure.
func (s *SkillService) Update(userID, skillID uint, input UpdateSkillInput) (*models.SkillResponse, error) {
	skill, err := s.skills.FindOwned(skillID, userID)
	if err != nil {
		return nil, apperror.Persistence("look up skill", err)
	}
	if skill == nil {
		return nil, apperror.SkillNotFound()
	}

	if input.Level != nil && !models.ValidLevel(*input.Level) {
		return nil, apperror.ValidationFailed("level", levelRangeMessage)
	}

	if input.Name != nil {
		skill.Name = *input.Name
	}
	if input.Level != nil {
		skill.Level = *input.Level
	}
	if input.Category != nil {
		skill.Category = *input.Category
	}

	if err := s.skills.Update(skill); err != nil {
		return nil, apperror.Persistence("update skill", err)
	}

	response := skill.Response()
	return &response, nil
}

// Delete removes a skill owned by userID.
func (s *SkillService) Delete(userID, skillID uint) error {
	skill, err := s.skills.FindOwned(skillID, userID)
	if err != nil {
		return apperror.Persistence("look up skill", err)
	}
	if skill == nil {
		return apperror.SkillNotFound()
	}

	if err := s.skills.Delete(skill); err != nil {
		return apperror.Persistence("delete skill", err)
	}

	return nil
}
