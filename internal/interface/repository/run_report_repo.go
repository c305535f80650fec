package repository

import (
	"context"
	"time"

	"rewardfare-service/internal/domain/entity"
	"rewardfare-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRunReportRepository implements RunReportRepository
type MongoRunReportRepository struct {
	collection *mongo.Collection
}

// NewMongoRunReportRepository creates a new run report repository
func NewMongoRunReportRepository(db *mongo.Database) repository.RunReportRepository {
	collection := db.Collection("run_reports")

	// Index on startedAt for history queries
	ctx := context.Background()
	indexModel := mongo.IndexModel{
		Keys:    bson.M{"startedAt": -1},
		Options: options.Index(),
	}
	collection.Indexes().CreateOne(ctx, indexModel)

	return &MongoRunReportRepository{
		collection: collection,
	}
}

// Save archives a completed run's outcome
func (r *MongoRunReportRepository) Save(ctx context.Context, report *entity.RunReport) error {
	if report.ID == "" {
		report.ID = primitive.NewObjectID().Hex()
	}
	if report.FinishedAt.IsZero() {
		report.FinishedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, report)
	return err
}
