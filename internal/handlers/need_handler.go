package handlers

import (
	"context"
	"errors"
	"net/http"

	"matching-service/internal/models"
	"matching-service/internal/service"

	"github.com/gin-gonic/gin"
)

type NeedHandler struct {
	Service *service.NeedService
}

func NewNeedHandler(s *service.NeedService) *NeedHandler {
	return &NeedHandler{Service: s}
}

func (h *NeedHandler) CreateNeed(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "X-User-ID header is required"})
		return
	}
	var input models.LearningNeedInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	need, err := h.Service.CreateNeed(context.Background(), userID, &input)
	if err != nil {
		if errors.Is(err, service.ErrSkillNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Skill not found"})
			return
		}
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, need)
}

func (h *NeedHandler) ListNeeds(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "X-User-ID header is required"})
		return
	}
	needs, err := h.Service.ListNeeds(context.Background(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"learning_needs": needs, "count": len(needs)})
}

func (h *NeedHandler) UpdateNeed(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "X-User-ID header is required"})
		return
	}
	id := c.Param("id")
	var input models.LearningNeedUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	need, err := h.Service.UpdateNeed(context.Background(), id, userID, &input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNeedNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Learning need not found"})
		case errors.Is(err, service.ErrNotNeedOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "Learning need belongs to another user"})
		default:
			if isValidationError(err) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, need)
}

func (h *NeedHandler) DeactivateNeed(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "X-User-ID header is required"})
		return
	}
	id := c.Param("id")
	if err := h.Service.DeactivateNeed(context.Background(), id, userID); err != nil {
		if errors.Is(err, service.ErrNeedNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Learning need not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deactivated"})
}

func isValidationError(err error) bool {
	return errors.Is(err, models.ErrTargetNotAboveCurrent) ||
		errors.Is(err, models.ErrBudgetRangeInverted) ||
		errors.Is(err, models.ErrLevelOutOfRange) ||
		errors.Is(err, models.ErrUrgencyOutOfRange) ||
		errors.Is(err, models.ErrNegativeBudget)
}
