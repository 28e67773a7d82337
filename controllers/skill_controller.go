package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/RohitDakare/ByteForce/middleware"
	"github.com/RohitDakare/ByteForce/services"
)

// CreateSkillRequest represents the request body for creating a skill.
// Level is a pointer so an absent level can fall back to 1 while an explicit
// out-of-range value (including 0) is still rejected.
type CreateSkillRequest struct {
	Name     string `json:"name" binding:"required"`
	Level    *int   `json:"level"`
	Category string `json:"category"`
}

// UpdateSkillRequest represents a partial skill update; absent fields keep
// their prior values.
type UpdateSkillRequest struct {
	Name     *string `json:"name"`
	Level    *int    `json:"level"`
	Category *string `json:"category"`
}

// SkillController handles the skill CRUD endpoints. Every operation is
// scoped to the authenticated user taken from the session middleware.
type SkillController struct {
	skills *services.SkillService
}

// NewSkillController creates a SkillController backed by the given service.
func NewSkillController(skills *services.SkillService) *SkillController {
	return &SkillController{skills: skills}
}

// List handles GET /api/skills - returns the user's skills with visual data.
func (sc *SkillController) List(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Could not extract user information"})
		return
	}

	skills, err := sc.skills.List(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, skills)
}

// Create handles POST /api/skills - validates and creates a new skill.
func (sc *SkillController) Create(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Could not extract user information"})
		return
	}

	var req CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	level := 1
	if req.Level != nil {
		level = *req.Level
	}

	skill, err := sc.skills.Create(userID, services.CreateSkillInput{
		Name:     req.Name,
		Level:    level,
		Category: req.Category,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, skill)
}

// Update handles PUT /api/skills/:id - applies a partial update to a skill
// owned by the authenticated user.
func (sc *SkillController) Update(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Could not extract user information"})
		return
	}

	skillID, ok := parseSkillID(c)
	if !ok {
		return
	}

	var req UpdateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	skill, err := sc.skills.Update(userID, skillID, services.UpdateSkillInput{
		Name:     req.Name,
		Level:    req.Level,
		Category: req.Category,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, skill)
}

// Delete handles DELETE /api/skills/:id - deletes a skill owned by the
// authenticated user.
func (sc *SkillController) Delete(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Could not extract user information"})
		return
	}

	skillID, ok := parseSkillID(c)
	if !ok {
		return
	}

	if err := sc.skills.Delete(userID, skillID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Skill deleted successfully"})
}

// parseSkillID reads the :id path parameter. A non-numeric id cannot match
// any skill, so it answers 404 just like an unknown id.
func parseSkillID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Skill not found"})
		return 0, false
	}
	return uint(id), true
}
