package repository

import (
	"context"

	"learnhub-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MessageRepository struct {
	Col *mongo.Collection
}

func NewMessageRepository(db *mongo.Database) *MessageRepository {
	return &MessageRepository{Col: db.Collection("messages")}
}

// FindByRooms returns the messages stored under any of the given room ids in
// chronological order. A two-party conversation has two candidate room ids,
// depending on which side sent first.
func (r *MessageRepository) FindByRooms(ctx context.Context, roomIDs []string) ([]models.Message, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": 1})
	cur, err := r.Col.Find(ctx, bson.M{"roomId": bson.M{"$in": roomIDs}}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var messages []models.Message
	for cur.Next(ctx) {
		var m models.Message
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, cur.Err()
}

// ChatPartners aggregates the distinct user ids this user has exchanged
// messages with, in either direction.
func (r *MessageRepository) ChatPartners(ctx context.Context, userID string) ([]string, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"$or": bson.A{
			bson.M{"sender": userID},
			bson.M{"recipient": userID},
		}}}},
		{{Key: "$project", Value: bson.M{"user": bson.M{"$cond": bson.M{
			"if":   bson.M{"$eq": bson.A{"$sender", userID}},
			"then": "$recipient",
			"else": "$sender",
		}}}}},
		{{Key: "$group", Value: bson.M{"_id": "$user"}}},
	}
	cur, err := r.Col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var partners []string
	for cur.Next(ctx) {
		var doc struct {
			ID string `bson:"_id"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		partners = append(partners, doc.ID)
	}
	return partners, cur.Err()
}
