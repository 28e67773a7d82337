package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/RohitDakare/ByteForce/models"
)

func setupRepositoryTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Skill{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func TestCreateWithDefaultSkills(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewUserRepository(db)

	user := &models.User{
		Email:   "new@example.com",
		Name:    "New User",
		Picture: "https://example.com/p.jpg",
	}
	err := repo.CreateWithDefaultSkills(user)
	assert.NoError(t, err)
	assert.NotZero(t, user.ID, "User ID should be generated on creation")

	// Exactly five default skills, matching the defaults table verbatim.
	var skills []models.Skill
	err = db.Where("user_id = ?", user.ID).Order("id ASC").Find(&skills).Error
	assert.NoError(t, err)
	assert.Len(t, skills, 5)

	assert.Equal(t, "Python", skills[0].Name)
	assert.Equal(t, 5, skills[0].Level)
	assert.Equal(t, "Programming", skills[0].Category)
	assert.Equal(t, "Deep Learning", skills[4].Name)
	assert.Equal(t, 2, skills[4].Level)
	assert.Equal(t, "AI/ML", skills[4].Category)
}

func TestCreateWithDefaultSkillsDuplicateEmailRollsBack(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewUserRepository(db)

	first := &models.User{Email: "taken@example.com"}
	assert.NoError(t, repo.CreateWithDefaultSkills(first))

	// A second user with the same email violates the unique index; nothing
	// from the failed transaction may remain.
	second := &models.User{Email: "taken@example.com"}
	err := repo.CreateWithDefaultSkills(second)
	assert.Error(t, err)

	var userCount, skillCount int64
	db.Model(&models.User{}).Count(&userCount)
	db.Model(&models.Skill{}).Count(&skillCount)
	assert.Equal(t, int64(1), userCount)
	assert.Equal(t, int64(5), skillCount)
}

func TestFindByEmail(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewUserRepository(db)

	seeded := &models.User{Email: "found@example.com", Name: "Found"}
	assert.NoError(t, repo.CreateWithDefaultSkills(seeded))

	user, err := repo.FindByEmail("found@example.com")
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, seeded.ID, user.ID)

	missing, err := repo.FindByEmail("missing@example.com")
	assert.NoError(t, err)
	assert.Nil(t, missing, "Unknown email should return nil without an error")
}

func TestFindByID(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewUserRepository(db)

	seeded := &models.User{Email: "byid@example.com"}
	assert.NoError(t, repo.CreateWithDefaultSkills(seeded))

	user, err := repo.FindByID(seeded.ID)
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "byid@example.com", user.Email)

	missing, err := repo.FindByID(9999)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDeleteCascadesToSkills(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewUserRepository(db)

	doomed := &models.User{Email: "doomed@example.com"}
	assert.NoError(t, repo.CreateWithDefaultSkills(doomed))

	survivor := &models.User{Email: "survivor@example.com"}
	assert.NoError(t, repo.CreateWithDefaultSkills(survivor))

	assert.NoError(t, repo.Delete(doomed.ID))

	user, err := repo.FindByID(doomed.ID)
	assert.NoError(t, err)
	assert.Nil(t, user, "Deleted user should be gone")

	var orphaned int64
	db.Model(&models.Skill{}).Where("user_id = ?", doomed.ID).Count(&orphaned)
	assert.Equal(t, int64(0), orphaned, "All of the user's skills should be deleted")

	var remaining int64
	db.Model(&models.Skill{}).Where("user_id = ?", survivor.ID).Count(&remaining)
	assert.Equal(t, int64(5), remaining, "Other users' skills must be untouched")
}
