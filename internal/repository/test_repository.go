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

type TestRepository struct {
	Col *mongo.Collection
}

func NewTestRepository(db *mongo.Database) *TestRepository {
	return &TestRepository{Col: db.Collection("tests")}
}

func (r *TestRepository) FindByID(ctx context.Context, id string) (*models.Test, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrNotFound
	}
	var test models.Test
	err = r.Col.FindOne(ctx, bson.M{"_id": objID}).Decode(&test)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &test, nil
}

// FindAll lists tests newest-first, optionally filtered by test type. The
// question bodies carry the answer keys, so listings never include them.
func (r *TestRepository) FindAll(ctx context.Context, testType string) ([]models.Test, error) {
	filter := bson.M{}
	if testType != "" {
		filter["test_type"] = testType
	}
	opts := options.Find().
		SetProjection(bson.M{"questions": 0}).
		SetSort(bson.M{"_id": -1})
	cur, err := r.Col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var tests []models.Test
	for cur.Next(ctx) {
		var t models.Test
		if err := cur.Decode(&t); err != nil {
			return nil, err
		}
		tests = append(tests, t)
	}
	return tests, cur.Err()
}

func (r *TestRepository) Create(ctx context.Context, test *models.Test) error {
	res, err := r.Col.InsertOne(ctx, test)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		test.ID = oid
	}
	return nil
}

func (r *TestRepository) UpdateByID(ctx context.Context, id string, update bson.M) (*models.Test, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrNotFound
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Test
	err = r.Col.FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": update}, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Save replaces the whole document, used after in-memory roster updates.
func (r *TestRepository) Save(ctx context.Context, test *models.Test) error {
	_, err := r.Col.ReplaceOne(ctx, bson.M{"_id": test.ID}, test)
	return err
}

func (r *TestRepository) Delete(ctx context.Context, id string) error {
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
