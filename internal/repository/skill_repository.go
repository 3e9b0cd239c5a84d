package repository

import (
	"context"

	"matching-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SkillRepository struct {
	Col        *mongo.Collection
	Categories *mongo.Collection
}

func NewSkillRepository(db *mongo.Database) *SkillRepository {
	return &SkillRepository{
		Col:        db.Collection("skills"),
		Categories: db.Collection("skill_categories"),
	}
}

func (r *SkillRepository) FindByID(ctx context.Context, id string) (*models.Skill, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var skill models.Skill
	err = r.Col.FindOne(ctx, bson.M{"_id": objID}).Decode(&skill)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &skill, nil
}

// FindActive lists active skills, optionally narrowed by category or a
// case-insensitive name search.
func (r *SkillRepository) FindActive(ctx context.Context, categoryID, search string) ([]models.Skill, error) {
	query := bson.M{"is_active": true}
	if categoryID != "" {
		query["category_id"] = categoryID
	}
	if search != "" {
		query["name"] = bson.M{"$regex": search, "$options": "i"}
	}

	opts := options.Find().SetSort(bson.D{{Key: "sort_order", Value: 1}, {Key: "name", Value: 1}})
	cur, err := r.Col.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var skills []models.Skill
	for cur.Next(ctx) {
		var skill models.Skill
		if err := cur.Decode(&skill); err != nil {
			return nil, err
		}
		skills = append(skills, skill)
	}
	return skills, nil
}

func (r *SkillRepository) FindCategories(ctx context.Context) ([]models.SkillCategory, error) {
	opts := options.Find().SetSort(bson.D{{Key: "sort_order", Value: 1}})
	cur, err := r.Categories.Find(ctx, bson.M{"is_active": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var categories []models.SkillCategory
	for cur.Next(ctx) {
		var cat models.SkillCategory
		if err := cur.Decode(&cat); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, nil
}
