package repository

import (
	"context"
	"errors"

	"learnhub-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type LeaderboardRepository struct {
	Col *mongo.Collection
}

func NewLeaderboardRepository(db *mongo.Database) *LeaderboardRepository {
	return &LeaderboardRepository{Col: db.Collection("leaderboards")}
}

// FindByTest looks a leaderboard up by its owning test; there is at most one
// per test.
func (r *LeaderboardRepository) FindByTest(ctx context.Context, testID string) (*models.Leaderboard, error) {
	var leaderboard models.Leaderboard
	err := r.Col.FindOne(ctx, bson.M{"testId": testID}).Decode(&leaderboard)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &leaderboard, nil
}

func (r *LeaderboardRepository) Save(ctx context.Context, leaderboard *models.Leaderboard) error {
	if leaderboard.ID.IsZero() {
		leaderboard.ID = primitive.NewObjectID()
		_, err := r.Col.InsertOne(ctx, leaderboard)
		return err
	}
	_, err := r.Col.ReplaceOne(ctx, bson.M{"_id": leaderboard.ID}, leaderboard)
	return err
}
