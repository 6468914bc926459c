package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"learnhub-service/internal/models"
)

func TestSessionAlertAppearsInTodayListing(t *testing.T) {
	store := newFakeClassSessionStore()
	svc := NewSessionService(store)

	_, err := svc.CreateSessionAlert(context.Background(), "Physics revision", "18:00", time.Now().Add(2*time.Hour))
	if err != nil {
		t.Fatalf("CreateSessionAlert: %v", err)
	}
	// Yesterday's session must not show up.
	yesterday := &models.ClassSession{Title: "Old", Date: time.Now().Add(-24 * time.Hour), Status: models.SessionInactive}
	if err := store.Create(context.Background(), yesterday); err != nil {
		t.Fatalf("seeding: %v", err)
	}

	sessions, err := svc.TodaysSessions(context.Background())
	if err != nil {
		t.Fatalf("TodaysSessions: %v", err)
	}
	if len(sessions) != 1 || sessions[0].Title != "Physics revision" {
		t.Errorf("unexpected listing: %+v", sessions)
	}
}

func TestCreateSessionAlertValidation(t *testing.T) {
	svc := NewSessionService(newFakeClassSessionStore())

	_, err := svc.CreateSessionAlert(context.Background(), "", "18:00", time.Now())
	if !errors.Is(err, models.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestStartAndStopSession(t *testing.T) {
	store := newFakeClassSessionStore()
	svc := NewSessionService(store)

	session, err := svc.StartSession(context.Background(), "u1", "Algebra help", "group call")
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if session.Status != models.SessionActive {
		t.Errorf("Status = %q, want active", session.Status)
	}

	stopped, err := svc.StopSession(context.Background(), session.ID.Hex())
	if err != nil {
		t.Fatalf("StopSession: %v", err)
	}
	if stopped.Status != models.SessionInactive {
		t.Errorf("Status = %q, want inactive", stopped.Status)
	}
	if stopped.EndTime.IsZero() {
		t.Error("EndTime not set on stop")
	}
}

func TestSessionsByUser(t *testing.T) {
	store := newFakeClassSessionStore()
	svc := NewSessionService(store)

	if _, err := svc.StartSession(context.Background(), "u1", "Session A", ""); err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	sessions, err := svc.SessionsByUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("SessionsByUser: %v", err)
	}
	if len(sessions) != 1 {
		t.Errorf("expected 1 session, got %d", len(sessions))
	}

	if _, err := svc.SessionsByUser(context.Background(), "nobody"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("expected ErrNotFound for user with no sessions, got %v", err)
	}
}

func TestStopSessionMissing(t *testing.T) {
	svc := NewSessionService(newFakeClassSessionStore())

	_, err := svc.StopSession(context.Background(), "64b000000000000000000000")
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
