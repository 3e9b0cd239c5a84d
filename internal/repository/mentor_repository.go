package repository

import (
	"context"
	"log"
	"time"

	"matching-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MentorRepository owns the mentor_skills and mentor_profiles collections and
// assembles candidate pools for matching: every pool entry is a mentor skill
// joined with its owner's profile.
type MentorRepository struct {
	Skills   *mongo.Collection
	Profiles *mongo.Collection
}

func NewMentorRepository(db *mongo.Database) *MentorRepository {
	return &MentorRepository{
		Skills:   db.Collection("mentor_skills"),
		Profiles: db.Collection("mentor_profiles"),
	}
}

func (r *MentorRepository) CreateIndexes(ctx context.Context) error {
	_, err := r.Skills.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "skill_id", Value: 1}, {Key: "verification_status", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	})
	if err != nil {
		return err
	}
	_, err = r.Profiles.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "university", Value: 1}, {Key: "major", Value: 1}}},
		{Keys: bson.D{{Key: "rating", Value: -1}, {Key: "total_sessions", Value: -1}}},
	})
	return err
}

// DeclareSkill inserts a mentor's teaching capability. New declarations start
// unverified; the verification workflow lives in another service.
func (r *MentorRepository) DeclareSkill(ctx context.Context, skill *models.MentorSkill) error {
	now := time.Now()
	skill.CreatedAt = now
	skill.UpdatedAt = now
	skill.IsActive = true
	if skill.VerificationStatus == "" {
		skill.VerificationStatus = models.VerificationPending
	}
	res, err := r.Skills.InsertOne(ctx, skill)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		skill.ID = oid.Hex()
	}
	return nil
}

// UpdateSkill applies a partial update to a skill owned by userID. Returns
// mongo.ErrNoDocuments when no owned record matches.
func (r *MentorRepository) UpdateSkill(ctx context.Context, id, userID string, update bson.M) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	update["updated_at"] = time.Now()
	res, err := r.Skills.UpdateOne(ctx,
		bson.M{"_id": objID, "user_id": userID},
		bson.M{"$set": update})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MentorRepository) FindSkillsByUser(ctx context.Context, userID string) ([]models.MentorSkill, error) {
	cur, err := r.Skills.Find(ctx, bson.M{"user_id": userID, "is_active": true})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var skills []models.MentorSkill
	for cur.Next(ctx) {
		var skill models.MentorSkill
		if err := cur.Decode(&skill); err != nil {
			return nil, err
		}
		skills = append(skills, skill)
	}
	return skills, nil
}

// FindCandidatesBySkill fetches the raw pool for one skill. Eligibility
// (verification, can_mentor, budget) is enforced by the matching filter, not
// here, so the hard-constraint semantics live in one place.
func (r *MentorRepository) FindCandidatesBySkill(ctx context.Context, skillID string) ([]models.Candidate, error) {
	return r.candidates(ctx,
		bson.M{"skill_id": skillID, "is_active": true},
		nil,
		bson.D{{Key: "profile.rating", Value: -1}},
		0)
}

// FindTopRated returns the globally top-rated verified mentors, pre-sorted by
// rating then session count. This feeds the unscored homepage rail.
func (r *MentorRepository) FindTopRated(ctx context.Context, limit int) ([]models.Candidate, error) {
	return r.candidates(ctx,
		bson.M{"is_active": true, "can_mentor": true, "verification_status": models.VerificationVerified},
		nil,
		bson.D{{Key: "profile.rating", Value: -1}, {Key: "profile.total_sessions", Value: -1}},
		int64(limit))
}

// FindVerified returns a rating-ordered verified pool for the search rail.
func (r *MentorRepository) FindVerified(ctx context.Context, limit int) ([]models.Candidate, error) {
	return r.candidates(ctx,
		bson.M{"is_active": true, "can_mentor": true, "verification_status": models.VerificationVerified},
		nil,
		bson.D{{Key: "profile.rating", Value: -1}},
		int64(limit))
}

// FindByBackground returns verified mentors whose university, major or degree
// overlaps the given background.
func (r *MentorRepository) FindByBackground(ctx context.Context, university, major, degreeLevel string, limit int) ([]models.Candidate, error) {
	return r.candidates(ctx,
		bson.M{"is_active": true, "can_mentor": true, "verification_status": models.VerificationVerified},
		bson.M{"$or": bson.A{
			bson.M{"profile.university": university},
			bson.M{"profile.major": major},
			bson.M{"profile.degree_level": degreeLevel},
		}},
		bson.D{{Key: "profile.rating", Value: -1}},
		int64(limit))
}

// FindByServiceCategory returns verified mentors offering a service in the
// given category.
func (r *MentorRepository) FindByServiceCategory(ctx context.Context, category string, limit int) ([]models.Candidate, error) {
	return r.candidates(ctx,
		bson.M{"is_active": true, "can_mentor": true, "verification_status": models.VerificationVerified},
		bson.M{"profile.service_categories": category},
		bson.D{{Key: "profile.rating", Value: -1}},
		int64(limit))
}

// FilterBrowse serves the advanced-filter browse surface: query-level
// constraints with rating/session ordering and offset pagination, no learning
// need involved.
func (r *MentorRepository) FilterBrowse(ctx context.Context, filters *models.MatchingFilter, limit, offset int) ([]models.Candidate, error) {
	match := bson.M{"is_active": true, "can_mentor": true, "verification_status": models.VerificationVerified}
	profileMatch := bson.M{}
	if filters != nil {
		if len(filters.Universities) > 0 {
			profileMatch["profile.university"] = bson.M{"$in": filters.Universities}
		}
		if len(filters.Majors) > 0 {
			profileMatch["profile.major"] = bson.M{"$in": filters.Majors}
		}
		if len(filters.DegreeLevels) > 0 {
			profileMatch["profile.degree_level"] = bson.M{"$in": filters.DegreeLevels}
		}
		if filters.GraduationYearMin != nil || filters.GraduationYearMax != nil {
			years := bson.M{}
			if filters.GraduationYearMin != nil {
				years["$gte"] = *filters.GraduationYearMin
			}
			if filters.GraduationYearMax != nil {
				years["$lte"] = *filters.GraduationYearMax
			}
			profileMatch["profile.graduation_year"] = years
		}
		if filters.RatingMin != nil {
			profileMatch["profile.rating"] = bson.M{"$gte": *filters.RatingMin}
		}
		if filters.MinSessions != nil {
			profileMatch["profile.total_sessions"] = bson.M{"$gte": *filters.MinSessions}
		}
		if len(filters.Languages) > 0 {
			profileMatch["profile.languages"] = bson.M{"$in": filters.Languages}
		}
	}
	if len(profileMatch) == 0 {
		profileMatch = nil
	}
	return r.candidatesPaged(ctx, match, profileMatch,
		bson.D{{Key: "profile.rating", Value: -1}, {Key: "profile.total_sessions", Value: -1}},
		int64(limit), int64(offset))
}

// FilterOptions enumerates the distinct values the filter UI can offer,
// alongside the static rating and graduation-year ranges.
func (r *MentorRepository) FilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	opts := &models.FilterOptions{
		RatingRange:         models.IntRange{Min: 1, Max: 5},
		GraduationYearRange: models.IntRange{Min: 2015, Max: 2030},
	}
	for _, field := range []struct {
		name string
		dst  *[]string
	}{
		{"university", &opts.Universities},
		{"major", &opts.Majors},
		{"degree_level", &opts.DegreeLevels},
	} {
		values, err := r.Profiles.Distinct(ctx, field.name, bson.M{field.name: bson.M{"$nin": bson.A{nil, ""}}})
		if err != nil {
			return nil, err
		}
		for _, v := range values {
			if s, ok := v.(string); ok {
				*field.dst = append(*field.dst, s)
			}
		}
	}
	return opts, nil
}

func (r *MentorRepository) candidates(ctx context.Context, skillMatch, profileMatch bson.M, sort bson.D, limit int64) ([]models.Candidate, error) {
	return r.candidatesPaged(ctx, skillMatch, profileMatch, sort, limit, 0)
}

// candidatesPaged runs the mentor_skills -> mentor_profiles join. skillMatch
// applies before the lookup, profileMatch after.
func (r *MentorRepository) candidatesPaged(ctx context.Context, skillMatch, profileMatch bson.M, sort bson.D, limit, offset int64) ([]models.Candidate, error) {
	pipeline := []bson.M{
		{"$match": skillMatch},
		{"$lookup": bson.M{
			"from":         "mentor_profiles",
			"localField":   "user_id",
			"foreignField": "user_id",
			"as":           "profile",
		}},
		{"$unwind": "$profile"},
	}
	if profileMatch != nil {
		pipeline = append(pipeline, bson.M{"$match": profileMatch})
	}
	if len(sort) > 0 {
		pipeline = append(pipeline, bson.M{"$sort": sort})
	}
	if offset > 0 {
		pipeline = append(pipeline, bson.M{"$skip": offset})
	}
	if limit > 0 {
		pipeline = append(pipeline, bson.M{"$limit": limit})
	}
	pipeline = append(pipeline,
		bson.M{"$project": bson.M{"mentor_skill": "$$ROOT", "profile": "$profile"}},
		bson.M{"$project": bson.M{"mentor_skill.profile": 0}},
	)

	cur, err := r.Skills.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Candidate
	for cur.Next(ctx) {
		var cand models.Candidate
		if err := cur.Decode(&cand); err != nil {
			log.Printf("failed to decode candidate: %v", err)
			return nil, err
		}
		out = append(out, cand)
	}
	return out, cur.Err()
}

// GetProfileByUserID loads one mentor profile; nil, nil when absent.
func (r *MentorRepository) GetProfileByUserID(ctx context.Context, userID string) (*models.MentorProfile, error) {
	var profile models.MentorProfile
	err := r.Profiles.FindOne(ctx, bson.M{"user_id": userID}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}
