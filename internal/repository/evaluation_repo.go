package repository

import (
	"advisoryboard/internal/model"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EvaluationRepo handles MongoDB operations for evaluation history
type EvaluationRepo interface {
	Save(ctx context.Context, record *model.EvaluationRecord) error
	GetByID(ctx context.Context, id string) (*model.EvaluationRecord, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]model.EvaluationRecord, error)
}

type evaluationRepo struct {
	collection *mongo.Collection
}

// NewEvaluationRepo creates a new evaluation repository
func NewEvaluationRepo(db *mongo.Database) EvaluationRepo {
	return &evaluationRepo{
		collection: db.Collection("evaluations"),
	}
}

// EnsureEvaluationIndexes creates the per-user history index
func EnsureEvaluationIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("evaluations").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	return err
}

func (r *evaluationRepo) Save(ctx context.Context, record *model.EvaluationRecord) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": record.ID}, record, opts)
	return err
}

func (r *evaluationRepo) GetByID(ctx context.Context, id string) (*model.EvaluationRecord, error) {
	var record model.EvaluationRecord
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *evaluationRepo) ListByUser(ctx context.Context, userID string, limit int) ([]model.EvaluationRecord, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := []model.EvaluationRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
