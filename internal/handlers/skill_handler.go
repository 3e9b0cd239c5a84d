package handlers

import (
	"context"
	"errors"
	"net/http"

	"matching-service/internal/models"
	"matching-service/internal/service"

	"github.com/gin-gonic/gin"
)

type SkillHandler struct {
	Service *service.SkillService
}

func NewSkillHandler(s *service.SkillService) *SkillHandler {
	return &SkillHandler{Service: s}
}

func (h *SkillHandler) ListCategories(c *gin.Context) {
	categories, err := h.Service.ListCategories(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories, "count": len(categories)})
}

func (h *SkillHandler) ListSkills(c *gin.Context) {
	categoryID := c.Query("category_id")
	search := c.Query("search")
	skills, err := h.Service.ListSkills(context.Background(), categoryID, search)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"skills": skills, "count": len(skills)})
}

func (h *SkillHandler) DeclareSkill(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "X-User-ID header is required"})
		return
	}
	var input models.MentorSkillInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	mentorSkill, err := h.Service.DeclareSkill(context.Background(), userID, &input)
	if err != nil {
		if errors.Is(err, service.ErrSkillNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Skill not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, mentorSkill)
}

func (h *SkillHandler) MySkills(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "X-User-ID header is required"})
		return
	}
	skills, err := h.Service.MySkills(context.Background(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"skills": skills, "count": len(skills)})
}

func (h *SkillHandler) UpdateMySkill(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "X-User-ID header is required"})
		return
	}
	id := c.Param("id")
	var input models.MentorSkillUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.UpdateMySkill(context.Background(), id, userID, &input); err != nil {
		switch {
		case errors.Is(err, service.ErrSkillNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Mentor skill not found"})
		case errors.Is(err, models.ErrLevelOutOfRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "updated"})
}
