package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"matching-service/internal/event"
	"matching-service/internal/models"
	"matching-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// NeedService manages a mentee's learning needs.
type NeedService struct {
	Repo      *repository.LearningNeedRepository
	Skills    *repository.SkillRepository
	Publisher *event.EventPublisher
}

func NewNeedService(repo *repository.LearningNeedRepository, skills *repository.SkillRepository, publisher *event.EventPublisher) *NeedService {
	return &NeedService{Repo: repo, Skills: skills, Publisher: publisher}
}

// CreateNeed validates and stores a new learning need. The need expires
// automatically after the matching horizon unless renewed.
func (s *NeedService) CreateNeed(ctx context.Context, userID string, input *models.LearningNeedInput) (*models.LearningNeed, error) {
	skill, err := s.Skills.FindByID(ctx, input.SkillID)
	if err != nil {
		return nil, fmt.Errorf("load skill %s: %w", input.SkillID, err)
	}
	if skill == nil {
		return nil, ErrSkillNotFound
	}

	currency := input.Currency
	if currency == "" {
		currency = "CNY"
	}
	format := input.PreferredFormat
	if format == "" {
		format = "online"
	}
	need := &models.LearningNeed{
		UserID:             userID,
		SkillID:            input.SkillID,
		UrgencyLevel:       input.UrgencyLevel,
		BudgetMin:          input.BudgetMin,
		BudgetMax:          input.BudgetMax,
		Currency:           currency,
		CurrentLevel:       input.CurrentLevel,
		TargetLevel:        input.TargetLevel,
		PreferredLanguages: input.PreferredLanguages,
		PreferredFormat:    format,
		Description:        input.Description,
		LearningGoals:      input.LearningGoals,
	}
	if err := need.Validate(); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, need); err != nil {
		return nil, err
	}

	if err := s.Publisher.Publish(event.NeedCreated, map[string]interface{}{
		"need_id":  need.ID,
		"user_id":  userID,
		"skill_id": need.SkillID,
	}); err != nil {
		log.Printf("failed to publish %s: %v", event.NeedCreated, err)
	}
	return need, nil
}

func (s *NeedService) ListNeeds(ctx context.Context, userID string) ([]models.LearningNeed, error) {
	return s.Repo.FindByUser(ctx, userID)
}

// UpdateNeed merges the partial update into the stored need, re-validates the
// result and writes only the changed fields.
func (s *NeedService) UpdateNeed(ctx context.Context, id, userID string, input *models.LearningNeedUpdate) (*models.LearningNeed, error) {
	need, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load learning need %s: %w", id, err)
	}
	if need == nil {
		return nil, ErrNeedNotFound
	}
	if need.UserID != userID {
		return nil, ErrNotNeedOwner
	}

	update := bson.M{}
	if input.UrgencyLevel != nil {
		need.UrgencyLevel = *input.UrgencyLevel
		update["urgency_level"] = need.UrgencyLevel
	}
	if input.BudgetMin != nil {
		need.BudgetMin = input.BudgetMin
		update["budget_min"] = *input.BudgetMin
	}
	if input.BudgetMax != nil {
		need.BudgetMax = input.BudgetMax
		update["budget_max"] = *input.BudgetMax
	}
	if input.CurrentLevel != nil {
		need.CurrentLevel = *input.CurrentLevel
		update["current_level"] = need.CurrentLevel
	}
	if input.TargetLevel != nil {
		need.TargetLevel = *input.TargetLevel
		update["target_level"] = need.TargetLevel
	}
	if input.PreferredLanguages != nil {
		need.PreferredLanguages = input.PreferredLanguages
		update["preferred_languages"] = need.PreferredLanguages
	}
	if input.PreferredFormat != nil {
		need.PreferredFormat = *input.PreferredFormat
		update["preferred_format"] = need.PreferredFormat
	}
	if input.Description != nil {
		need.Description = *input.Description
		update["description"] = need.Description
	}
	if input.LearningGoals != nil {
		need.LearningGoals = *input.LearningGoals
		update["learning_goals"] = need.LearningGoals
	}
	if len(update) == 0 {
		return need, nil
	}
	if err := need.Validate(); err != nil {
		return nil, err
	}

	if err := s.Repo.Update(ctx, id, userID, update); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNeedNotFound
		}
		return nil, err
	}
	return need, nil
}

// DeactivateNeed soft-invalidates a need so existing match records keep a
// valid reference.
func (s *NeedService) DeactivateNeed(ctx context.Context, id, userID string) error {
	if err := s.Repo.Deactivate(ctx, id, userID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNeedNotFound
		}
		return err
	}
	if err := s.Publisher.Publish(event.NeedDeactivated, map[string]interface{}{
		"need_id": id,
		"user_id": userID,
	}); err != nil {
		log.Printf("failed to publish %s: %v", event.NeedDeactivated, err)
	}
	return nil
}
