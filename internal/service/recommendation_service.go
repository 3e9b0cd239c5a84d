package service

import (
	"context"
	"fmt"

	"matching-service/internal/cache"
	"matching-service/internal/matching"
	"matching-service/internal/models"
)

// Recommendation contexts. Anything else yields an empty rail, not an error.
const (
	ContextHomepage = "homepage"
	ContextSearch   = "search"
	ContextProfile  = "profile"
	ContextService  = "service"
)

// searchPoolSize bounds the verified pool fetched for preference reordering
// on the search rail.
const searchPoolSize = 200

// RecommendationPool fetches context-specific candidate pools.
type RecommendationPool interface {
	FindTopRated(ctx context.Context, limit int) ([]models.Candidate, error)
	FindVerified(ctx context.Context, limit int) ([]models.Candidate, error)
	FindByBackground(ctx context.Context, university, major, degreeLevel string, limit int) ([]models.Candidate, error)
	FindByServiceCategory(ctx context.Context, category string, limit int) ([]models.Candidate, error)
}

// BackgroundSource looks up the caller's stored background for the profile
// rail.
type BackgroundSource interface {
	GetProfileByUserID(ctx context.Context, userID string) (*models.MentorProfile, error)
}

// RecommendationService routes a requested context to its candidate pool and
// ordering. Only the search rail computes any score, and that is the simple
// preference bonus, never the compatibility model.
type RecommendationService struct {
	Pool     RecommendationPool
	Profiles BackgroundSource
	Cache    *cache.Client
}

func NewRecommendationService(pool RecommendationPool, profiles BackgroundSource, cacheClient *cache.Client) *RecommendationService {
	return &RecommendationService{Pool: pool, Profiles: profiles, Cache: cacheClient}
}

// Recommend assembles one recommendation rail. Unknown contexts return an
// empty list by design; callers wanting an error signal must check the
// context themselves.
func (s *RecommendationService) Recommend(ctx context.Context, userID string, req *models.RecommendationRequest) ([]models.RecommendedMentor, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = matching.DefaultLimit
	}
	if limit > matching.MaxLimit {
		limit = matching.MaxLimit
	}

	switch req.Context {
	case ContextHomepage:
		return s.homepage(ctx, limit, req.ExcludeIDs)
	case ContextSearch:
		return s.search(ctx, limit, req.Preferences, req.ExcludeIDs)
	case ContextProfile:
		return s.profile(ctx, userID, limit, req.ExcludeIDs)
	case ContextService:
		return s.serviceCategory(ctx, limit, req.Preferences, req.ExcludeIDs)
	default:
		return []models.RecommendedMentor{}, nil
	}
}

// homepage is the cold-start rail: globally top-rated verified mentors in
// their pre-sorted fetch order. No scoring is involved at all.
func (s *RecommendationService) homepage(ctx context.Context, limit int, excludeIDs []string) ([]models.RecommendedMentor, error) {
	fetchLimit := limit + len(excludeIDs)
	key := fmt.Sprintf("popular_mentors:%d", fetchLimit)

	pool := s.Cache.GetCandidates(ctx, key)
	if pool == nil {
		var err error
		pool, err = s.Pool.FindTopRated(ctx, fetchLimit)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPoolUnavailable, err)
		}
		s.Cache.SetCandidates(ctx, key, pool)
	}

	pool = applyExclusions(pool, excludeIDs)
	if len(pool) > limit {
		pool = pool[:limit]
	}

	out := make([]models.RecommendedMentor, 0, len(pool))
	for _, cand := range pool {
		out = append(out, models.RecommendedMentor{MentorSkill: cand.MentorSkill, Profile: cand.Profile})
	}
	return out, nil
}

// search reorders a verified pool by the caller's target universities and
// majors.
func (s *RecommendationService) search(ctx context.Context, limit int, prefs *models.RecommendationPreferences, excludeIDs []string) ([]models.RecommendedMentor, error) {
	pool, err := s.Pool.FindVerified(ctx, searchPoolSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPoolUnavailable, err)
	}
	pool = applyExclusions(pool, excludeIDs)

	out := matching.OrderByPreference(pool, prefs)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// profile recommends mentors sharing the caller's stored background, falling
// back to the homepage rail when none is on file.
func (s *RecommendationService) profile(ctx context.Context, userID string, limit int, excludeIDs []string) ([]models.RecommendedMentor, error) {
	background, err := s.Profiles.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPoolUnavailable, err)
	}
	if background == nil || (background.University == "" && background.Major == "" && background.DegreeLevel == "") {
		return s.homepage(ctx, limit, excludeIDs)
	}

	pool, err := s.Pool.FindByBackground(ctx, background.University, background.Major, background.DegreeLevel, limit+len(excludeIDs))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPoolUnavailable, err)
	}
	pool = applyExclusions(pool, excludeIDs)
	if len(pool) > limit {
		pool = pool[:limit]
	}

	out := make([]models.RecommendedMentor, 0, len(pool))
	for _, cand := range pool {
		out = append(out, models.RecommendedMentor{MentorSkill: cand.MentorSkill, Profile: cand.Profile})
	}
	return out, nil
}

// serviceCategory recommends mentors offering services in the requested
// category, falling back to the homepage rail when no category was given.
func (s *RecommendationService) serviceCategory(ctx context.Context, limit int, prefs *models.RecommendationPreferences, excludeIDs []string) ([]models.RecommendedMentor, error) {
	if prefs == nil || prefs.ServiceCategory == "" {
		return s.homepage(ctx, limit, excludeIDs)
	}

	pool, err := s.Pool.FindByServiceCategory(ctx, prefs.ServiceCategory, limit+len(excludeIDs))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPoolUnavailable, err)
	}
	pool = applyExclusions(pool, excludeIDs)
	if len(pool) > limit {
		pool = pool[:limit]
	}

	out := make([]models.RecommendedMentor, 0, len(pool))
	for _, cand := range pool {
		out = append(out, models.RecommendedMentor{MentorSkill: cand.MentorSkill, Profile: cand.Profile})
	}
	return out, nil
}

// applyExclusions drops excluded candidates, preserving pool order.
func applyExclusions(pool []models.Candidate, excludeIDs []string) []models.Candidate {
	if len(excludeIDs) == 0 {
		return pool
	}
	excluded := make(map[string]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = true
	}
	out := make([]models.Candidate, 0, len(pool))
	for _, cand := range pool {
		if excluded[cand.ID()] {
			continue
		}
		out = append(out, cand)
	}
	return out
}
