package repository

import (
	"context"
	"errors"
	"time"

	"learnhub-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ClassSessionRepository struct {
	Col *mongo.Collection
}

func NewClassSessionRepository(db *mongo.Database) *ClassSessionRepository {
	return &ClassSessionRepository{Col: db.Collection("class_sessions")}
}

func (r *ClassSessionRepository) Create(ctx context.Context, session *models.ClassSession) error {
	res, err := r.Col.InsertOne(ctx, session)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		session.ID = oid
	}
	return nil
}

func (r *ClassSessionRepository) FindByID(ctx context.Context, id string) (*models.ClassSession, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrNotFound
	}
	var session models.ClassSession
	err = r.Col.FindOne(ctx, bson.M{"_id": objID}).Decode(&session)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *ClassSessionRepository) FindByUser(ctx context.Context, userID string) ([]models.ClassSession, error) {
	cur, err := r.Col.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var sessions []models.ClassSession
	for cur.Next(ctx) {
		var s models.ClassSession
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, cur.Err()
}

// FindFromDate returns sessions scheduled at or after the given instant.
func (r *ClassSessionRepository) FindFromDate(ctx context.Context, from time.Time) ([]models.ClassSession, error) {
	cur, err := r.Col.Find(ctx, bson.M{"date": bson.M{"$gte": from}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var sessions []models.ClassSession
	for cur.Next(ctx) {
		var s models.ClassSession
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, cur.Err()
}

func (r *ClassSessionRepository) UpdateByID(ctx context.Context, id string, update bson.M) (*models.ClassSession, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrNotFound
	}
	update["updatedAt"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.ClassSession
	err = r.Col.FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": update}, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *ClassSessionRepository) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.ErrNotFound
	}
	res, err := r.Col.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}
