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

// SkillService serves the skill catalog and a mentor's declared skills.
type SkillService struct {
	Skills    *repository.SkillRepository
	Mentors   *repository.MentorRepository
	Publisher *event.EventPublisher
}

func NewSkillService(skills *repository.SkillRepository, mentors *repository.MentorRepository, publisher *event.EventPublisher) *SkillService {
	return &SkillService{Skills: skills, Mentors: mentors, Publisher: publisher}
}

func (s *SkillService) ListCategories(ctx context.Context) ([]models.SkillCategory, error) {
	return s.Skills.FindCategories(ctx)
}

func (s *SkillService) ListSkills(ctx context.Context, categoryID, search string) ([]models.Skill, error) {
	return s.Skills.FindActive(ctx, categoryID, search)
}

// DeclareSkill registers a teaching capability for the calling mentor. The
// declaration starts unverified and stays invisible to matching until the
// verification workflow confirms it.
func (s *SkillService) DeclareSkill(ctx context.Context, userID string, input *models.MentorSkillInput) (*models.MentorSkill, error) {
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
	mentorSkill := &models.MentorSkill{
		UserID:           userID,
		SkillID:          input.SkillID,
		ProficiencyLevel: input.ProficiencyLevel,
		YearsExperience:  input.YearsExperience,
		CanMentor:        input.CanMentor,
		HourlyRate:       input.HourlyRate,
		Currency:         currency,
		Description:      input.Description,
	}
	if err := s.Mentors.DeclareSkill(ctx, mentorSkill); err != nil {
		return nil, err
	}

	if err := s.Publisher.Publish(event.SkillDeclared, map[string]interface{}{
		"mentor_skill_id": mentorSkill.ID,
		"user_id":         userID,
		"skill_id":        mentorSkill.SkillID,
		"can_mentor":      mentorSkill.CanMentor,
	}); err != nil {
		log.Printf("failed to publish %s: %v", event.SkillDeclared, err)
	}
	return mentorSkill, nil
}

func (s *SkillService) MySkills(ctx context.Context, userID string) ([]models.MentorSkill, error) {
	return s.Mentors.FindSkillsByUser(ctx, userID)
}

// UpdateMySkill applies a partial update to one of the caller's declared
// skills.
func (s *SkillService) UpdateMySkill(ctx context.Context, id, userID string, input *models.MentorSkillUpdate) error {
	update := bson.M{}
	if input.ProficiencyLevel != nil {
		if *input.ProficiencyLevel < 1 || *input.ProficiencyLevel > 5 {
			return models.ErrLevelOutOfRange
		}
		update["proficiency_level"] = *input.ProficiencyLevel
	}
	if input.YearsExperience != nil {
		if *input.YearsExperience < 0 {
			return errors.New("years_experience must be non-negative")
		}
		update["years_experience"] = *input.YearsExperience
	}
	if input.CanMentor != nil {
		update["can_mentor"] = *input.CanMentor
	}
	if input.HourlyRate != nil {
		if *input.HourlyRate < 0 {
			return errors.New("hourly_rate must be non-negative")
		}
		update["hourly_rate"] = *input.HourlyRate
	}
	if input.Currency != nil {
		update["currency"] = *input.Currency
	}
	if input.Description != nil {
		update["description"] = *input.Description
	}
	if len(update) == 0 {
		return nil
	}

	if err := s.Mentors.UpdateSkill(ctx, id, userID, update); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrSkillNotFound
		}
		return err
	}
	return nil
}
