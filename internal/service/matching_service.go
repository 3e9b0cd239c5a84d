package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"matching-service/internal/event"
	"matching-service/internal/matching"
	"matching-service/internal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// persistCap bounds how many suggestions are written per matching run,
// independent of the response limit.
const persistCap = 20

// MentorPool fetches raw candidate pools. One implementation per storage
// backend, chosen at wiring time; scoring code never branches on the backend.
type MentorPool interface {
	FindCandidatesBySkill(ctx context.Context, skillID string) ([]models.Candidate, error)
}

// NeedStore reads learning needs.
type NeedStore interface {
	FindByID(ctx context.Context, id string) (*models.LearningNeed, error)
}

// MatchStore persists and reads match records.
type MatchStore interface {
	SaveSuggestions(ctx context.Context, records []models.MatchRecord) error
	FindByMentee(ctx context.Context, menteeID string, limit int) ([]models.MatchRecord, error)
	Respond(ctx context.Context, id, menteeID, status, note string) error
}

// CandidateBrowser serves the filter-options and advanced-filter browse
// surfaces, which operate without a learning need.
type CandidateBrowser interface {
	FilterBrowse(ctx context.Context, filters *models.MatchingFilter, limit, offset int) ([]models.Candidate, error)
	FilterOptions(ctx context.Context) (*models.FilterOptions, error)
}

// MatchingService coordinates a matching run: validate the need, filter and
// rank the pool, persist the outcome best-effort and return a paged response.
type MatchingService struct {
	Pool           MentorPool
	Needs          NeedStore
	Matches        MatchStore
	Browser        CandidateBrowser
	Publisher      *event.EventPublisher
	PersistTimeout time.Duration
}

func NewMatchingService(pool MentorPool, needs NeedStore, matches MatchStore, browser CandidateBrowser, publisher *event.EventPublisher, persistTimeout time.Duration) *MatchingService {
	return &MatchingService{
		Pool:           pool,
		Needs:          needs,
		Matches:        matches,
		Browser:        browser,
		Publisher:      publisher,
		PersistTimeout: persistTimeout,
	}
}

// FindMentors computes ranked mentor suggestions for one of the caller's
// learning needs. Persistence of the outcome is fire-and-forget: a failed
// write never invalidates or delays the computed ranking.
func (s *MatchingService) FindMentors(ctx context.Context, userID string, req *models.MatchingRequest) (*models.MatchingResponse, error) {
	need, err := s.Needs.FindByID(ctx, req.LearningNeedID)
	if err != nil {
		return nil, fmt.Errorf("load learning need %s: %w", req.LearningNeedID, err)
	}
	if need == nil {
		return nil, ErrNeedNotFound
	}
	if need.UserID != userID {
		return nil, ErrNotNeedOwner
	}
	if !need.IsActive || need.Expired(time.Now()) {
		return nil, ErrNeedInactive
	}

	pool, err := s.Pool.FindCandidatesBySkill(ctx, need.SkillID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPoolUnavailable, err)
	}

	filtered := matching.Apply(pool, need, req.Filters, req.ExcludeIDs)
	ranked, total := matching.Rank(need, filtered, req.Limit)

	suggestions := make([]models.MatchSuggestion, 0, len(ranked))
	for _, m := range ranked {
		suggestions = append(suggestions, models.MatchSuggestion{
			MentorSkill: m.Candidate.MentorSkill,
			Profile:     m.Candidate.Profile,
			TotalScore:  m.Score,
			Factors:     m.Factors,
			Rank:        m.Rank,
		})
	}

	if len(ranked) > 0 {
		s.persistAsync(need, userID, ranked)
	}
	if err := s.Publisher.Publish(event.MatchingCompleted, map[string]interface{}{
		"learning_need_id": need.ID,
		"mentee_id":        userID,
		"suggestions":      len(suggestions),
		"total_count":      total,
	}); err != nil {
		log.Printf("failed to publish %s: %v", event.MatchingCompleted, err)
	}

	return &models.MatchingResponse{
		Suggestions:    suggestions,
		TotalCount:     total,
		FiltersApplied: req.Filters,
	}, nil
}

// persistAsync writes the top suggestions as suggested match records without
// blocking the response.
func (s *MatchingService) persistAsync(need *models.LearningNeed, menteeID string, ranked []matching.Match) {
	n := len(ranked)
	if n > persistCap {
		n = persistCap
	}
	records := make([]models.MatchRecord, 0, n)
	for _, m := range ranked[:n] {
		records = append(records, models.MatchRecord{
			LearningNeedID: need.ID,
			MenteeID:       menteeID,
			MentorUserID:   m.Candidate.MentorSkill.UserID,
			MentorSkillID:  m.Candidate.MentorSkill.ID,
			SkillID:        need.SkillID,
			TotalScore:     m.Score,
			Factors:        m.Factors,
			Rank:           m.Rank,
			Algorithm:      matching.Algorithm,
		})
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.PersistTimeout)
		defer cancel()
		if err := s.Matches.SaveSuggestions(ctx, records); err != nil {
			log.Printf("failed to persist %d match suggestions for need %s: %v", len(records), need.ID, err)
		}
	}()
}

// MatchHistory lists the caller's past suggestions, newest first.
func (s *MatchingService) MatchHistory(ctx context.Context, userID string, limit int) ([]models.MatchRecord, error) {
	if limit <= 0 {
		limit = persistCap
	}
	return s.Matches.FindByMentee(ctx, userID, limit)
}

// RespondToMatch records the mentee's reaction to one of their suggestions.
// Only interested/declined are accepted here; the rest of the match state
// machine belongs to the relationship service.
func (s *MatchingService) RespondToMatch(ctx context.Context, matchID, userID, response, note string) error {
	var status string
	switch response {
	case "interested":
		status = models.MatchMenteeInterested
	case "declined":
		status = models.MatchDeclined
	default:
		return ErrInvalidResponse
	}

	if err := s.Matches.Respond(ctx, matchID, userID, status, note); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrMatchNotFound
		}
		return err
	}

	if err := s.Publisher.Publish(event.MatchResponded, map[string]interface{}{
		"match_id":  matchID,
		"mentee_id": userID,
		"status":    status,
	}); err != nil {
		log.Printf("failed to publish %s: %v", event.MatchResponded, err)
	}
	return nil
}

// BrowseMentors serves the advanced-filter discovery surface.
func (s *MatchingService) BrowseMentors(ctx context.Context, filters *models.MatchingFilter, limit, offset int) ([]models.Candidate, error) {
	if limit <= 0 {
		limit = matching.DefaultLimit
	}
	if limit > matching.MaxLimit {
		limit = matching.MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	pool, err := s.Browser.FilterBrowse(ctx, filters, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPoolUnavailable, err)
	}
	return pool, nil
}

// FilterOptions enumerates available advanced-filter values.
func (s *MatchingService) FilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	opts, err := s.Browser.FilterOptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPoolUnavailable, err)
	}
	return opts, nil
}
