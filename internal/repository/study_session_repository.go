package repository

import (
	"context"
	"errors"

	"learnhub-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type StudySessionRepository struct {
	Col *mongo.Collection
}

func NewStudySessionRepository(db *mongo.Database) *StudySessionRepository {
	return &StudySessionRepository{Col: db.Collection("study_sessions")}
}

func (r *StudySessionRepository) Create(ctx context.Context, session *models.StudySession) error {
	res, err := r.Col.InsertOne(ctx, session)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		session.ID = oid
	}
	return nil
}

func (r *StudySessionRepository) FindByID(ctx context.Context, id string) (*models.StudySession, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrNotFound
	}
	var session models.StudySession
	err = r.Col.FindOne(ctx, bson.M{"_id": objID}).Decode(&session)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *StudySessionRepository) Save(ctx context.Context, session *models.StudySession) error {
	_, err := r.Col.ReplaceOne(ctx, bson.M{"_id": session.ID}, session)
	return err
}
