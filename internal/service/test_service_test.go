package service

import (
	"context"
	"errors"
	"testing"

	"learnhub-service/internal/models"
)

type attemptFixture struct {
	svc          *TestService
	tests        *fakeTestStore
	progress     *fakeProgressStore
	users        *fakeUserStore
	leaderboards *fakeLeaderboardStore
	testID       string
	userID       string
}

// newAttemptFixture seeds one test with weighted questions (70 + 20 + 10) so
// attempts can land on recognizable scores.
func newAttemptFixture(t *testing.T) *attemptFixture {
	t.Helper()
	tests := newFakeTestStore()
	progress := newFakeProgressStore()
	users := newFakeUserStore()
	leaderboards := newFakeLeaderboardStore()

	testID := tests.add(&models.Test{
		Name:     "Calculus Fundamentals",
		TestType: "Practice",
		Questions: []models.Question{
			{Prompt: "q0", Options: []string{"a", "b"}, CorrectOption: 0, Subject: "calc", Weight: 70},
			{Prompt: "q1", Options: []string{"a", "b"}, CorrectOption: 1, Subject: "calc", Weight: 20},
			{Prompt: "q2", Options: []string{"a", "b"}, CorrectOption: 0, Subject: "calc", Weight: 10},
		},
	})
	userID := users.add(&models.User{Name: "Sam", Email: "sam@example.com"})

	return &attemptFixture{
		svc:          NewTestService(tests, progress, users, leaderboards),
		tests:        tests,
		progress:     progress,
		users:        users,
		leaderboards: leaderboards,
		testID:       testID,
		userID:       userID,
	}
}

func (f *attemptFixture) submit(t *testing.T, progressID string, answers map[string]int, timeTaken float64) *AttemptResponse {
	t.Helper()
	resp, err := f.svc.RecordTestAttempt(context.Background(), AttemptRequest{
		ProgressID: progressID,
		TestID:     f.testID,
		UserID:     f.userID,
		Answers:    answers,
		TimeTaken:  timeTaken,
	})
	if err != nil {
		t.Fatalf("RecordTestAttempt: %v", err)
	}
	return resp
}

func TestRecordTestAttemptFirstAttempt(t *testing.T) {
	f := newAttemptFixture(t)

	resp := f.submit(t, "", map[string]int{"0": 0}, 120)

	if resp.ValidationResult.TotalScore != 70 {
		t.Errorf("TotalScore = %f, want 70", resp.ValidationResult.TotalScore)
	}
	if resp.ValidationResult.TimeTaken != 120 {
		t.Errorf("TimeTaken = %f, want 120", resp.ValidationResult.TimeTaken)
	}

	progress := resp.Progress
	if progress.ID.IsZero() {
		t.Fatal("new progress record was not assigned an id")
	}
	if len(progress.TestResults) != 1 || progress.TestResults[0].Score != 70 {
		t.Errorf("expected one result with score 70, got %+v", progress.TestResults)
	}
	if progress.OverallScore != 70 {
		t.Errorf("OverallScore = %f, want 70", progress.OverallScore)
	}

	// A brand-new progress record is linked back to its owner.
	if ref := f.users.progressRefs[f.userID]; ref != progress.ID.Hex() {
		t.Errorf("user progress ref = %q, want %q", ref, progress.ID.Hex())
	}

	board := f.leaderboards.boards[f.testID]
	if board == nil || len(board.Entries) != 1 {
		t.Fatalf("expected one leaderboard entry, got %+v", board)
	}
	if board.Entries[0].Score != 70 || board.Entries[0].Rank != 1 {
		t.Errorf("entry = %+v, want score 70 rank 1", board.Entries[0])
	}

	stored := f.tests.tests[f.testID]
	if len(stored.Students) != 1 || stored.Count != 1 {
		t.Errorf("roster not updated: students=%v count=%d", stored.Students, stored.Count)
	}
}

func TestRecordTestAttemptResubmissionReplaces(t *testing.T) {
	f := newAttemptFixture(t)

	first := f.submit(t, "", map[string]int{"0": 0}, 120)
	second := f.submit(t, first.Progress.ID.Hex(), map[string]int{"0": 0, "1": 1}, 90)

	if second.ValidationResult.TotalScore != 90 {
		t.Fatalf("TotalScore = %f, want 90", second.ValidationResult.TotalScore)
	}
	if len(second.Progress.TestResults) != 1 {
		t.Errorf("expected exactly one result per test, got %d", len(second.Progress.TestResults))
	}
	if second.Progress.TestResults[0].Score != 90 {
		t.Errorf("result score = %f, want the most recent 90", second.Progress.TestResults[0].Score)
	}
	if len(second.Progress.Scores) != 1 || second.Progress.Scores[0].Score != 90 {
		t.Errorf("course score not overwritten: %+v", second.Progress.Scores)
	}

	// Reused progress must not be re-linked.
	if got, want := f.users.progressRefs[f.userID], first.Progress.ID.Hex(); got != want {
		t.Errorf("progress ref changed to %q, want %q", got, want)
	}

	board := f.leaderboards.boards[f.testID]
	if len(board.Entries) != 1 {
		t.Fatalf("resubmission duplicated the entry: %+v", board.Entries)
	}
	if board.Entries[0].Score != 90 || board.Entries[0].Rank != 1 {
		t.Errorf("entry = %+v, want score 90 rank 1", board.Entries[0])
	}

	stored := f.tests.tests[f.testID]
	if len(stored.Students) != 1 || stored.Count != 1 {
		t.Errorf("roster duplicated the student: %v", stored.Students)
	}
}

func TestRecordTestAttemptPerfectCompletesCourseOnce(t *testing.T) {
	f := newAttemptFixture(t)
	perfect := map[string]int{"0": 0, "1": 1, "2": 0}

	first := f.submit(t, "", perfect, 60)
	second := f.submit(t, first.Progress.ID.Hex(), perfect, 55)

	if len(second.Progress.CoursesCompleted) != 1 {
		t.Fatalf("expected the course once, got %v", second.Progress.CoursesCompleted)
	}
	if second.Progress.CoursesCompleted[0] != "Calculus Fundamentals" {
		t.Errorf("completed course = %q", second.Progress.CoursesCompleted[0])
	}
}

func TestRecordTestAttemptRanksTwoStudents(t *testing.T) {
	f := newAttemptFixture(t)
	otherID := f.users.add(&models.User{Name: "Riley", Email: "riley@example.com"})

	// S1 scores 80, S2 scores 100.
	f.submit(t, "", map[string]int{"0": 0, "2": 0}, 100)
	_, err := f.svc.RecordTestAttempt(context.Background(), AttemptRequest{
		TestID:    f.testID,
		UserID:    otherID,
		Answers:   map[string]int{"0": 0, "1": 1, "2": 0},
		TimeTaken: 80,
	})
	if err != nil {
		t.Fatalf("second student attempt: %v", err)
	}

	board := f.leaderboards.boards[f.testID]
	if len(board.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(board.Entries))
	}
	if board.Entries[0].StudentID != otherID || board.Entries[0].Rank != 1 {
		t.Errorf("top entry = %+v, want %s at rank 1", board.Entries[0], otherID)
	}
	if board.Entries[1].StudentID != f.userID || board.Entries[1].Rank != 2 {
		t.Errorf("second entry = %+v, want %s at rank 2", board.Entries[1], f.userID)
	}

	stored := f.tests.tests[f.testID]
	if stored.Count != 2 {
		t.Errorf("roster count = %d, want 2", stored.Count)
	}
}

func TestRecordTestAttemptMissingUserID(t *testing.T) {
	f := newAttemptFixture(t)

	_, err := f.svc.RecordTestAttempt(context.Background(), AttemptRequest{TestID: f.testID})
	if !errors.Is(err, models.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestRecordTestAttemptUnknownTestMutatesNothing(t *testing.T) {
	f := newAttemptFixture(t)

	_, err := f.svc.RecordTestAttempt(context.Background(), AttemptRequest{
		TestID:  "64b000000000000000000000",
		UserID:  f.userID,
		Answers: map[string]int{"0": 0},
	})
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if f.progress.saveCalls != 0 || f.tests.saveCalls != 0 || f.leaderboards.saveCalls != 0 {
		t.Errorf("stores were mutated: progress=%d tests=%d leaderboards=%d",
			f.progress.saveCalls, f.tests.saveCalls, f.leaderboards.saveCalls)
	}
}

func TestRecordTestAttemptStaleProgressIDCreatesNew(t *testing.T) {
	f := newAttemptFixture(t)

	resp := f.submit(t, "64b000000000000000000000", map[string]int{"0": 0}, 30)
	if resp.Progress.ID.IsZero() {
		t.Fatal("expected a fresh progress record")
	}
	if ref := f.users.progressRefs[f.userID]; ref != resp.Progress.ID.Hex() {
		t.Errorf("fresh progress not linked back: ref=%q", ref)
	}
}

func TestGetLeaderboardResolvesNames(t *testing.T) {
	f := newAttemptFixture(t)
	f.submit(t, "", map[string]int{"0": 0}, 45)

	view, err := f.svc.GetLeaderboard(context.Background(), f.testID)
	if err != nil {
		t.Fatalf("GetLeaderboard: %v", err)
	}
	if view.TestID != f.testID {
		t.Errorf("TestID = %q, want %q", view.TestID, f.testID)
	}
	if len(view.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(view.Entries))
	}
	entry := view.Entries[0]
	if entry.StudentID.ID != f.userID || entry.StudentID.Name != "Sam" {
		t.Errorf("student not resolved: %+v", entry.StudentID)
	}
	if entry.Rank != 1 || entry.Score != 70 {
		t.Errorf("entry = %+v, want rank 1 score 70", entry)
	}
}

func TestGetLeaderboardMissing(t *testing.T) {
	f := newAttemptFixture(t)

	_, err := f.svc.GetLeaderboard(context.Background(), f.testID)
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound before any attempt, got %v", err)
	}
}

func TestCreateTestRequiresName(t *testing.T) {
	f := newAttemptFixture(t)

	err := f.svc.CreateTest(context.Background(), &models.Test{})
	if !errors.Is(err, models.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
