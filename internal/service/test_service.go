package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"learnhub-service/internal/models"
	"learnhub-service/internal/scoring"

	"go.mongodb.org/mongo-driver/bson"
)

type TestService struct {
	Tests        TestStore
	Progress     ProgressStore
	Users        UserStore
	Leaderboards LeaderboardStore
}

func NewTestService(tests TestStore, progress ProgressStore, users UserStore, leaderboards LeaderboardStore) *TestService {
	return &TestService{Tests: tests, Progress: progress, Users: users, Leaderboards: leaderboards}
}

// AttemptRequest is one submitted test attempt. Answers maps question index
// (decimal string, as JSON object keys arrive) to the chosen option index;
// unanswered questions are simply absent. QuestionTime carries seconds spent
// per question.
type AttemptRequest struct {
	ProgressID   string             `json:"progressId"`
	TestID       string             `json:"testId"`
	UserID       string             `json:"userId"`
	Answers      map[string]int     `json:"answers"`
	TimeTaken    float64            `json:"timeTaken"`
	QuestionTime map[string]float64 `json:"questionTime"`
}

// ValidationResult is the scoring breakdown returned to the caller, with the
// overall attempt duration folded in.
type ValidationResult struct {
	scoring.Result
	TimeTaken float64 `json:"timeTaken"`
}

type AttemptResponse struct {
	ValidationResult ValidationResult `json:"validationResult"`
	Progress         *models.Progress `json:"progress"`
}

func (s *TestService) CreateTest(ctx context.Context, test *models.Test) error {
	if test.Name == "" {
		return fmt.Errorf("%w: name is required", models.ErrValidation)
	}
	if test.Questions == nil {
		test.Questions = []models.Question{}
	}
	if test.Students == nil {
		test.Students = []string{}
	}
	test.CreatedAt = time.Now()
	return s.Tests.Create(ctx, test)
}

func (s *TestService) UpdateTest(ctx context.Context, id string, update bson.M) (*models.Test, error) {
	return s.Tests.UpdateByID(ctx, id, update)
}

func (s *TestService) DeleteTest(ctx context.Context, id string) error {
	return s.Tests.Delete(ctx, id)
}

func (s *TestService) GetTest(ctx context.Context, id string) (*models.Test, error) {
	return s.Tests.FindByID(ctx, id)
}

func (s *TestService) ListTests(ctx context.Context, testType string) ([]models.Test, error) {
	return s.Tests.FindAll(ctx, testType)
}

// RecordTestAttempt grades a submission and folds the outcome into the
// caller's progress record, the test's attemptor roster, and the test's
// leaderboard. The three documents are saved independently, in that order;
// a failure partway through leaves the earlier saves in place.
func (s *TestService) RecordTestAttempt(ctx context.Context, req AttemptRequest) (*AttemptResponse, error) {
	if req.UserID == "" {
		return nil, fmt.Errorf("%w: userId is required", models.ErrValidation)
	}

	test, err := s.Tests.FindByID(ctx, req.TestID)
	if err != nil {
		return nil, err
	}

	// Reuse the caller's progress record when it resolves; anything else
	// starts a fresh one that gets linked back to the user after saving.
	var progress *models.Progress
	isNewProgress := false
	if req.ProgressID != "" {
		progress, err = s.Progress.FindByID(ctx, req.ProgressID)
		if err != nil && !errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("loading progress: %w", err)
		}
	}
	if progress == nil {
		progress = models.NewProgress(req.UserID)
		isNewProgress = true
	}

	result := scoring.Evaluate(test, req.Answers, req.QuestionTime)

	if result.CorrectCount == result.TotalQuestions {
		progress.AddCompletedCourse(test.Name)
	}
	progress.SetCourseScore(test.Name, result.TotalScore)
	progress.PutTestResult(models.TestResult{
		TestID:                   req.TestID,
		TotalQuestions:           result.TotalQuestions,
		CorrectCount:             result.CorrectCount,
		WrongCount:               result.WrongCount,
		Score:                    result.TotalScore,
		DateTaken:                time.Now(),
		CorrectAnswers:           result.CorrectAnswers,
		WrongAnswers:             result.WrongAnswers,
		AttemptedQuestionIndexes: result.AttemptedQuestionIndexes,
		AttemptedQuestionCount:   result.AttemptedQuestionCount,
		CorrectAnswerIndexes:     result.CorrectAnswerIndexes,
		UserAnswers:              result.UserAnswers,
		SubjectScores:            result.SubjectScores,
		TimeTaken:                req.TimeTaken,
	})
	progress.RecomputeOverallScore()

	if err := s.Progress.Save(ctx, progress); err != nil {
		return nil, fmt.Errorf("saving progress: %w", err)
	}
	if isNewProgress {
		if err := s.Users.SetProgressRef(ctx, req.UserID, progress.ID.Hex()); err != nil {
			return nil, fmt.Errorf("linking progress to user: %w", err)
		}
	}

	test.AddStudent(req.UserID)
	if err := s.Tests.Save(ctx, test); err != nil {
		return nil, fmt.Errorf("saving test roster: %w", err)
	}

	leaderboard, err := s.Leaderboards.FindByTest(ctx, req.TestID)
	if errors.Is(err, models.ErrNotFound) {
		leaderboard = &models.Leaderboard{TestID: req.TestID, Entries: []models.LeaderboardEntry{}}
	} else if err != nil {
		return nil, fmt.Errorf("loading leaderboard: %w", err)
	}
	leaderboard.UpsertEntry(models.LeaderboardEntry{
		StudentID:          req.UserID,
		Score:              result.TotalScore,
		CorrectAnswers:     result.CorrectCount,
		TimeTaken:          req.TimeTaken,
		AttemptedQuestions: result.AttemptedQuestionCount,
	})
	leaderboard.Rerank()
	if err := s.Leaderboards.Save(ctx, leaderboard); err != nil {
		return nil, fmt.Errorf("saving leaderboard: %w", err)
	}

	return &AttemptResponse{
		ValidationResult: ValidationResult{Result: result, TimeTaken: req.TimeTaken},
		Progress:         progress,
	}, nil
}

// RankedStudent is a leaderboard entry's owner with the id resolved to a
// display name.
type RankedStudent struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type LeaderboardEntryView struct {
	StudentID          RankedStudent `json:"studentId"`
	Score              float64       `json:"score"`
	CorrectAnswers     int           `json:"correctAnswers"`
	TimeTaken          float64       `json:"timeTaken"`
	AttemptedQuestions int           `json:"attemptedQuestions"`
	Rank               int           `json:"rank"`
}

type LeaderboardView struct {
	TestID  string                 `json:"testId"`
	Entries []LeaderboardEntryView `json:"entries"`
}

// GetLeaderboard returns the stored standings (ranked as of the last update)
// with student names resolved. A student whose user document has since gone
// missing keeps their entry with a blank name.
func (s *TestService) GetLeaderboard(ctx context.Context, testID string) (*LeaderboardView, error) {
	leaderboard, err := s.Leaderboards.FindByTest(ctx, testID)
	if err != nil {
		return nil, err
	}

	view := &LeaderboardView{TestID: leaderboard.TestID, Entries: []LeaderboardEntryView{}}
	for _, entry := range leaderboard.Entries {
		ranked := RankedStudent{ID: entry.StudentID}
		if user, err := s.Users.FindByID(ctx, entry.StudentID); err == nil {
			ranked.Name = user.Name
		}
		view.Entries = append(view.Entries, LeaderboardEntryView{
			StudentID:          ranked,
			Score:              entry.Score,
			CorrectAnswers:     entry.CorrectAnswers,
			TimeTaken:          entry.TimeTaken,
			AttemptedQuestions: entry.AttemptedQuestions,
			Rank:               entry.Rank,
		})
	}
	return view, nil
}
