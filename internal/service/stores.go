package service

import (
	"context"
	"time"

	"learnhub-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Per-entity store interfaces consumed by the services. The mongo-backed
// implementations live in internal/repository; tests substitute in-memory
// fakes. All lookups report a missing document as models.ErrNotFound.

type TestStore interface {
	FindByID(ctx context.Context, id string) (*models.Test, error)
	FindAll(ctx context.Context, testType string) ([]models.Test, error)
	Create(ctx context.Context, test *models.Test) error
	UpdateByID(ctx context.Context, id string, update bson.M) (*models.Test, error)
	Save(ctx context.Context, test *models.Test) error
	Delete(ctx context.Context, id string) error
}

type ProgressStore interface {
	FindByID(ctx context.Context, id string) (*models.Progress, error)
	Save(ctx context.Context, progress *models.Progress) error
	UpdateByID(ctx context.Context, id string, update bson.M) (*models.Progress, error)
}

type UserStore interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateByID(ctx context.Context, id string, update bson.M) (*models.User, error)
	SetProgressRef(ctx context.Context, userID, progressID string) error
	PushStudySession(ctx context.Context, userID, sessionID string) error
}

type LeaderboardStore interface {
	FindByTest(ctx context.Context, testID string) (*models.Leaderboard, error)
	Save(ctx context.Context, leaderboard *models.Leaderboard) error
}

type ClassSessionStore interface {
	Create(ctx context.Context, session *models.ClassSession) error
	FindByID(ctx context.Context, id string) (*models.ClassSession, error)
	FindByUser(ctx context.Context, userID string) ([]models.ClassSession, error)
	FindFromDate(ctx context.Context, from time.Time) ([]models.ClassSession, error)
	UpdateByID(ctx context.Context, id string, update bson.M) (*models.ClassSession, error)
	Delete(ctx context.Context, id string) error
}

type StudySessionStore interface {
	Create(ctx context.Context, session *models.StudySession) error
	FindByID(ctx context.Context, id string) (*models.StudySession, error)
	Save(ctx context.Context, session *models.StudySession) error
}

type MessageStore interface {
	FindByRooms(ctx context.Context, roomIDs []string) ([]models.Message, error)
	ChatPartners(ctx context.Context, userID string) ([]string, error)
}
