package repository

import (
	"context"
	"time"

	"matching-service/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MatchRepository struct {
	Col *mongo.Collection
}

func NewMatchRepository(db *mongo.Database) *MatchRepository {
	return &MatchRepository{Col: db.Collection("matches")}
}

func (r *MatchRepository) CreateIndexes(ctx context.Context) error {
	_, err := r.Col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "learning_need_id", Value: 1}, {Key: "mentor_skill_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "mentee_id", Value: 1}, {Key: "created_at", Value: -1}}},
	})
	return err
}

// SaveSuggestions upserts one record per suggestion, keyed by the
// (learning need, mentor skill) pair so re-running a match refreshes scores
// instead of duplicating history.
func (r *MatchRepository) SaveSuggestions(ctx context.Context, records []models.MatchRecord) error {
	now := time.Now()
	for i := range records {
		rec := &records[i]
		filter := bson.M{
			"learning_need_id": rec.LearningNeedID,
			"mentor_skill_id":  rec.MentorSkillID,
		}
		update := bson.M{
			"$set": bson.M{
				"mentee_id":      rec.MenteeID,
				"mentor_user_id": rec.MentorUserID,
				"skill_id":       rec.SkillID,
				"total_score":    rec.TotalScore,
				"factors":        rec.Factors,
				"rank":           rec.Rank,
				"algorithm":      rec.Algorithm,
				"updated_at":     now,
			},
			"$setOnInsert": bson.M{
				"_id":        uuid.NewString(),
				"status":     models.MatchSuggested,
				"created_at": now,
			},
		}
		if _, err := r.Col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
			return err
		}
	}
	return nil
}

func (r *MatchRepository) FindByMentee(ctx context.Context, menteeID string, limit int) ([]models.MatchRecord, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := r.Col.Find(ctx, bson.M{"mentee_id": menteeID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var records []models.MatchRecord
	for cur.Next(ctx) {
		var rec models.MatchRecord
		if err := cur.Decode(&rec); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// Respond records the mentee's reaction to a suggestion they own.
func (r *MatchRepository) Respond(ctx context.Context, id, menteeID, status, note string) error {
	now := time.Now()
	res, err := r.Col.UpdateOne(ctx,
		bson.M{"_id": id, "mentee_id": menteeID},
		bson.M{"$set": bson.M{
			"status":        status,
			"response_note": note,
			"responded_at":  now,
			"updated_at":    now,
		}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
