package service

import (
	"context"
	"fmt"
	"time"

	"learnhub-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

type SessionService struct {
	Sessions ClassSessionStore
}

func NewSessionService(sessions ClassSessionStore) *SessionService {
	return &SessionService{Sessions: sessions}
}

// CreateSessionAlert schedules a class session for a given date and clock
// time, to be surfaced in the today listing.
func (s *SessionService) CreateSessionAlert(ctx context.Context, name, clockTime string, date time.Time) (*models.ClassSession, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: sessionName is required", models.ErrValidation)
	}
	now := time.Now()
	session := &models.ClassSession{
		Title:     name,
		Time:      clockTime,
		Date:      date,
		Status:    models.SessionInactive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("creating session alert: %w", err)
	}
	return session, nil
}

// TodaysSessions lists every session scheduled from local midnight onward.
func (s *SessionService) TodaysSessions(ctx context.Context) ([]models.ClassSession, error) {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	sessions, err := s.Sessions.FindFromDate(ctx, startOfDay)
	if err != nil {
		return nil, err
	}
	if sessions == nil {
		sessions = []models.ClassSession{}
	}
	return sessions, nil
}

func (s *SessionService) GetSession(ctx context.Context, id string) (*models.ClassSession, error) {
	return s.Sessions.FindByID(ctx, id)
}

func (s *SessionService) SessionsByUser(ctx context.Context, userID string) ([]models.ClassSession, error) {
	sessions, err := s.Sessions.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return nil, models.ErrNotFound
	}
	return sessions, nil
}

func (s *SessionService) StartSession(ctx context.Context, userID, title, description string) (*models.ClassSession, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", models.ErrValidation)
	}
	now := time.Now()
	session := &models.ClassSession{
		UserID:      userID,
		Title:       title,
		Description: description,
		Status:      models.SessionActive,
		StartTime:   now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("starting session: %w", err)
	}
	return session, nil
}

func (s *SessionService) StopSession(ctx context.Context, id string) (*models.ClassSession, error) {
	return s.Sessions.UpdateByID(ctx, id, bson.M{
		"status":  models.SessionInactive,
		"endTime": time.Now(),
	})
}

func (s *SessionService) UpdateSession(ctx context.Context, id, title, description string) (*models.ClassSession, error) {
	return s.Sessions.UpdateByID(ctx, id, bson.M{
		"title":       title,
		"description": description,
	})
}

func (s *SessionService) DeleteSession(ctx context.Context, id string) error {
	return s.Sessions.Delete(ctx, id)
}
