package repository

import (
	"context"
	"errors"

	"learnhub-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProgressRepository struct {
	Col *mongo.Collection
}

func NewProgressRepository(db *mongo.Database) *ProgressRepository {
	return &ProgressRepository{Col: db.Collection("progress")}
}

func (r *ProgressRepository) FindByID(ctx context.Context, id string) (*models.Progress, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrNotFound
	}
	var progress models.Progress
	err = r.Col.FindOne(ctx, bson.M{"_id": objID}).Decode(&progress)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// Save inserts a brand-new record (assigning its id) or replaces the stored
// document wholesale, mirroring a document-store single-document save.
func (r *ProgressRepository) Save(ctx context.Context, progress *models.Progress) error {
	if progress.ID.IsZero() {
		progress.ID = primitive.NewObjectID()
		_, err := r.Col.InsertOne(ctx, progress)
		return err
	}
	_, err := r.Col.ReplaceOne(ctx, bson.M{"_id": progress.ID}, progress)
	return err
}

func (r *ProgressRepository) UpdateByID(ctx context.Context, id string, update bson.M) (*models.Progress, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrNotFound
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Progress
	err = r.Col.FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": update}, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
