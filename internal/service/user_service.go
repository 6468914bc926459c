package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"learnhub-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

type UserService struct {
	Users         UserStore
	Progress      ProgressStore
	Tests         TestStore
	StudySessions StudySessionStore
}

func NewUserService(users UserStore, progress ProgressStore, tests TestStore, studySessions StudySessionStore) *UserService {
	return &UserService{Users: users, Progress: progress, Tests: tests, StudySessions: studySessions}
}

func (s *UserService) GetProfileByEmail(ctx context.Context, email string) (*models.User, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", models.ErrValidation)
	}
	return s.Users.FindByEmail(ctx, email)
}

func (s *UserService) UpdateProfile(ctx context.Context, id string, update bson.M) (*models.User, error) {
	if len(update) == 0 {
		return s.Users.FindByID(ctx, id)
	}
	return s.Users.UpdateByID(ctx, id, update)
}

func (s *UserService) GetPublicProfile(ctx context.Context, userID string) (*models.PublicProfile, error) {
	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile := user.Public()
	return &profile, nil
}

// TestTypeBreakdown counts tests per type, split into everything defined,
// the ones this student has completed, and the remainder.
type TestTypeBreakdown struct {
	Total     map[string]int `json:"total"`
	Completed map[string]int `json:"completed"`
	Remaining map[string]int `json:"remaining"`
}

type ProgressInsights struct {
	TotalTestsGiven       int               `json:"totalTestsGiven"`
	OverallScore          float64           `json:"overallScore"`
	CoursesCompletedCount int               `json:"coursesCompletedCount"`
	TestsByType           TestTypeBreakdown `json:"testsByType"`
}

type ProgressReport struct {
	Progress *models.Progress `json:"progress"`
	Insights ProgressInsights `json:"insights"`
}

// GetProgress returns the raw progress record together with derived
// insights. Categorizing completed attempts needs each test's type, so the
// full test list is loaded once and joined in memory.
func (s *UserService) GetProgress(ctx context.Context, progressID string) (*ProgressReport, error) {
	progress, err := s.Progress.FindByID(ctx, progressID)
	if err != nil {
		return nil, err
	}

	tests, err := s.Tests.FindAll(ctx, "")
	if err != nil {
		return nil, err
	}

	typeByTest := make(map[string]string, len(tests))
	totalByType := map[string]int{}
	for _, t := range tests {
		typeByTest[t.ID.Hex()] = t.TestType
		totalByType[t.TestType]++
	}

	completedByType := map[string]int{}
	for _, result := range progress.TestResults {
		completedByType[typeByTest[result.TestID]]++
	}

	remainingByType := map[string]int{}
	for testType, total := range totalByType {
		remainingByType[testType] = total - completedByType[testType]
	}

	return &ProgressReport{
		Progress: progress,
		Insights: ProgressInsights{
			TotalTestsGiven:       len(progress.TestResults),
			OverallScore:          progress.OverallScore,
			CoursesCompletedCount: len(progress.CoursesCompleted),
			TestsByType: TestTypeBreakdown{
				Total:     totalByType,
				Completed: completedByType,
				Remaining: remainingByType,
			},
		},
	}, nil
}

func (s *UserService) UpdateProgress(ctx context.Context, progressID string, update bson.M) (*models.Progress, error) {
	return s.Progress.UpdateByID(ctx, progressID, update)
}

// StartStudySession opens a study period and records its id on the user.
func (s *UserService) StartStudySession(ctx context.Context, userID, subject string) (*models.StudySession, error) {
	if userID == "" || subject == "" {
		return nil, fmt.Errorf("%w: userId and subject are required", models.ErrValidation)
	}
	session := &models.StudySession{
		UserID:    userID,
		Subject:   subject,
		StartTime: time.Now(),
	}
	if err := s.StudySessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("starting study session: %w", err)
	}
	if err := s.Users.PushStudySession(ctx, userID, session.ID.Hex()); err != nil {
		return nil, fmt.Errorf("linking study session: %w", err)
	}
	return session, nil
}

// StopStudySession closes the session and stores its duration in whole
// minutes.
func (s *UserService) StopStudySession(ctx context.Context, sessionID string) (*models.StudySession, error) {
	session, err := s.StudySessions.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	session.EndTime = &now
	session.Duration = int(math.Round(now.Sub(session.StartTime).Minutes()))
	if err := s.StudySessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("stopping study session: %w", err)
	}
	return session, nil
}
