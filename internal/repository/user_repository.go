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

type UserRepository struct {
	Col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{Col: db.Collection("users")}
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrNotFound
	}
	var user models.User
	err = r.Col.FindOne(ctx, bson.M{"_id": objID}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.Col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) UpdateByID(ctx context.Context, id string, update bson.M) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrNotFound
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.User
	err = r.Col.FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": update}, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// SetProgressRef links a freshly created progress record back to its owner.
func (r *UserRepository) SetProgressRef(ctx context.Context, userID, progressID string) error {
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return models.ErrNotFound
	}
	_, err = r.Col.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": bson.M{"progressId": progressID}})
	return err
}

// PushStudySession appends a study session id onto the user document.
func (r *UserRepository) PushStudySession(ctx context.Context, userID, sessionID string) error {
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return models.ErrNotFound
	}
	_, err = r.Col.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$push": bson.M{"studySessions": sessionID}})
	return err
}
