// Package repository provides typed data access over gorm. Repositories are
// the only code that touches the database handle; services receive them by
// reference and stay free of SQL concerns.
package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/RohitDakare/ByteForce/models"
)

// UserRepository handles persistence for User rows.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a UserRepository using the given database handle.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByEmail looks up a user by email. Returns (nil, nil) when no user
// exists for the email.
func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("finding user by email: %w", err)
	}
	return &user, nil
}

// FindByID looks up a user by primary key. Returns (nil, nil) when no user
// exists for the id.
func (r *UserRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("finding user by id: %w", err)
	}
	return &user, nil
}

// CreateWithDefaultSkills inserts the user and its five default skills in a
// single transaction. A new user is never left without its defaults: if any
// insert fails the whole transaction rolls back.
func (r *UserRepository) CreateWithDefaultSkills(user *models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return fmt.Errorf("creating user: %w", err)
		}

		defaults := models.DefaultSkills(user.ID)
		if err := tx.Create(&defaults).Error; err != nil {
			return fmt.Errorf("creating default skills: %w", err)
		}

		return nil
	})
}

// Delete removes the user and all of its skills in a single transaction.
// The skill rows are deleted explicitly rather than relying on the database
// to enforce the declared cascade.
func (r *UserRepository) Delete(userID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.Skill{}).Error; err != nil {
			return fmt.Errorf("deleting user skills: %w", err)
		}

		if err := tx.Delete(&models.User{}, userID).Error; err != nil {
			return fmt.Errorf("deleting user: %w", err)
		}

		return nil
	})
}
