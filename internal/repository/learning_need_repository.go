package repository

import (
	"context"
	"time"

	"matching-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type LearningNeedRepository struct {
	Col *mongo.Collection
}

func NewLearningNeedRepository(db *mongo.Database) *LearningNeedRepository {
	return &LearningNeedRepository{Col: db.Collection("learning_needs")}
}

func (r *LearningNeedRepository) CreateIndexes(ctx context.Context) error {
	_, err := r.Col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "is_active", Value: 1}}},
		{Keys: bson.D{{Key: "expires_at", Value: 1}}},
	})
	return err
}

func (r *LearningNeedRepository) Create(ctx context.Context, need *models.LearningNeed) error {
	now := time.Now()
	need.CreatedAt = now
	need.UpdatedAt = now
	need.IsActive = true
	need.ExpiresAt = now.Add(models.LearningNeedTTL)
	res, err := r.Col.InsertOne(ctx, need)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		need.ID = oid.Hex()
	}
	return nil
}

func (r *LearningNeedRepository) FindByID(ctx context.Context, id string) (*models.LearningNeed, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var need models.LearningNeed
	err = r.Col.FindOne(ctx, bson.M{"_id": objID}).Decode(&need)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &need, nil
}

func (r *LearningNeedRepository) FindByUser(ctx context.Context, userID string) ([]models.LearningNeed, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var needs []models.LearningNeed
	for cur.Next(ctx) {
		var need models.LearningNeed
		if err := cur.Decode(&need); err != nil {
			return nil, err
		}
		needs = append(needs, need)
	}
	return needs, nil
}

// Update applies a partial update to a need owned by userID.
func (r *LearningNeedRepository) Update(ctx context.Context, id, userID string, update bson.M) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	update["updated_at"] = time.Now()
	res, err := r.Col.UpdateOne(ctx,
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

// Deactivate soft-invalidates a need. Needs are never deleted while match
// records may still reference them.
func (r *LearningNeedRepository) Deactivate(ctx context.Context, id, userID string) error {
	return r.Update(ctx, id, userID, bson.M{"is_active": false})
}
