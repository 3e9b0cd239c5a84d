package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"matching-service/internal/models"
	"matching-service/internal/service"

	"github.com/gin-gonic/gin"
)

type MatchingHandler struct {
	Service         *service.MatchingService
	Recommendations *service.RecommendationService
}

func NewMatchingHandler(s *service.MatchingService, r *service.RecommendationService) *MatchingHandler {
	return &MatchingHandler{Service: s, Recommendations: r}
}

// FindMentors computes ranked suggestions for one of the caller's learning
// needs.
func (h *MatchingHandler) FindMentors(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "X-User-ID header is required"})
		return
	}
	var req models.MatchingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resp, err := h.Service.FindMentors(context.Background(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNeedNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Learning need not found"})
		case errors.Is(err, service.ErrNotNeedOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "Learning need belongs to another user"})
		case errors.Is(err, service.ErrNeedInactive):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Learning need is inactive or expired"})
		case errors.Is(err, service.ErrPoolUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Candidate pool unavailable"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MatchingHandler) MatchHistory(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "X-User-ID header is required"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	history, err := h.Service.MatchHistory(context.Background(), userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"matches": history, "count": len(history)})
}

// RespondToMatch records interested/declined for one suggestion.
func (h *MatchingHandler) RespondToMatch(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "X-User-ID header is required"})
		return
	}
	matchID := c.Param("id")
	response := c.Query("response")
	var body struct {
		Note string `json:"note"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	err := h.Service.RespondToMatch(context.Background(), matchID, userID, response, body.Note)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidResponse):
			c.JSON(http.StatusBadRequest, gin.H{"error": "response must be interested or declined"})
		case errors.Is(err, service.ErrMatchNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Match not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "response recorded"})
}

// Recommend serves context-based recommendation rails.
func (h *MatchingHandler) Recommend(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	var req models.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	mentors, err := h.Recommendations.Recommend(context.Background(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrPoolUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Candidate pool unavailable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": mentors, "count": len(mentors)})
}

// FilterOptions enumerates the values the advanced-filter UI can offer.
func (h *MatchingHandler) FilterOptions(c *gin.Context) {
	opts, err := h.Service.FilterOptions(context.Background())
	if err != nil {
		if errors.Is(err, service.ErrPoolUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Candidate pool unavailable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, opts)
}

// BrowseMentors serves need-free mentor discovery with hard filters and
// offset pagination.
func (h *MatchingHandler) BrowseMentors(c *gin.Context) {
	var req struct {
		Filters *models.MatchingFilter `json:"filters"`
		Limit   int                    `json:"limit"`
		Offset  int                    `json:"offset"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	pool, err := h.Service.BrowseMentors(context.Background(), req.Filters, req.Limit, req.Offset)
	if err != nil {
		if errors.Is(err, service.ErrPoolUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Candidate pool unavailable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"mentors": pool, "count": len(pool)})
}
