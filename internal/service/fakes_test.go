package service

import (
	"context"
	"time"

	"learnhub-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory store fakes. They substitute the mongo-backed repositories so
// service behavior can be exercised without a running document store.

type fakeTestStore struct {
	tests     map[string]*models.Test
	saveCalls int
}

func newFakeTestStore() *fakeTestStore {
	return &fakeTestStore{tests: map[string]*models.Test{}}
}

func (f *fakeTestStore) add(test *models.Test) string {
	if test.ID.IsZero() {
		test.ID = primitive.NewObjectID()
	}
	f.tests[test.ID.Hex()] = test
	return test.ID.Hex()
}

func (f *fakeTestStore) FindByID(_ context.Context, id string) (*models.Test, error) {
	test, ok := f.tests[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *test
	return &copied, nil
}

func (f *fakeTestStore) FindAll(_ context.Context, testType string) ([]models.Test, error) {
	var out []models.Test
	for _, t := range f.tests {
		if testType == "" || t.TestType == testType {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTestStore) Create(_ context.Context, test *models.Test) error {
	f.add(test)
	return nil
}

func (f *fakeTestStore) UpdateByID(_ context.Context, id string, _ bson.M) (*models.Test, error) {
	test, ok := f.tests[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return test, nil
}

func (f *fakeTestStore) Save(_ context.Context, test *models.Test) error {
	f.saveCalls++
	copied := *test
	f.tests[test.ID.Hex()] = &copied
	return nil
}

func (f *fakeTestStore) Delete(_ context.Context, id string) error {
	if _, ok := f.tests[id]; !ok {
		return models.ErrNotFound
	}
	delete(f.tests, id)
	return nil
}

type fakeProgressStore struct {
	records   map[string]*models.Progress
	saveCalls int
}

func newFakeProgressStore() *fakeProgressStore {
	return &fakeProgressStore{records: map[string]*models.Progress{}}
}

func (f *fakeProgressStore) FindByID(_ context.Context, id string) (*models.Progress, error) {
	progress, ok := f.records[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *progress
	return &copied, nil
}

func (f *fakeProgressStore) Save(_ context.Context, progress *models.Progress) error {
	f.saveCalls++
	if progress.ID.IsZero() {
		progress.ID = primitive.NewObjectID()
	}
	copied := *progress
	f.records[progress.ID.Hex()] = &copied
	return nil
}

func (f *fakeProgressStore) UpdateByID(_ context.Context, id string, _ bson.M) (*models.Progress, error) {
	progress, ok := f.records[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return progress, nil
}

type fakeUserStore struct {
	users        map[string]*models.User
	progressRefs map[string]string
	studyRefs    map[string][]string
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		users:        map[string]*models.User{},
		progressRefs: map[string]string{},
		studyRefs:    map[string][]string{},
	}
}

func (f *fakeUserStore) add(user *models.User) string {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	f.users[user.ID.Hex()] = user
	return user.ID.Hex()
}

func (f *fakeUserStore) FindByID(_ context.Context, id string) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeUserStore) UpdateByID(_ context.Context, id string, _ bson.M) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserStore) SetProgressRef(_ context.Context, userID, progressID string) error {
	f.progressRefs[userID] = progressID
	return nil
}

func (f *fakeUserStore) PushStudySession(_ context.Context, userID, sessionID string) error {
	f.studyRefs[userID] = append(f.studyRefs[userID], sessionID)
	return nil
}

type fakeLeaderboardStore struct {
	boards    map[string]*models.Leaderboard
	saveCalls int
}

func newFakeLeaderboardStore() *fakeLeaderboardStore {
	return &fakeLeaderboardStore{boards: map[string]*models.Leaderboard{}}
}

func (f *fakeLeaderboardStore) FindByTest(_ context.Context, testID string) (*models.Leaderboard, error) {
	board, ok := f.boards[testID]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *board
	copied.Entries = append([]models.LeaderboardEntry(nil), board.Entries...)
	return &copied, nil
}

func (f *fakeLeaderboardStore) Save(_ context.Context, leaderboard *models.Leaderboard) error {
	f.saveCalls++
	if leaderboard.ID.IsZero() {
		leaderboard.ID = primitive.NewObjectID()
	}
	copied := *leaderboard
	copied.Entries = append([]models.LeaderboardEntry(nil), leaderboard.Entries...)
	f.boards[leaderboard.TestID] = &copied
	return nil
}

type fakeStudySessionStore struct {
	sessions map[string]*models.StudySession
}

func newFakeStudySessionStore() *fakeStudySessionStore {
	return &fakeStudySessionStore{sessions: map[string]*models.StudySession{}}
}

func (f *fakeStudySessionStore) Create(_ context.Context, session *models.StudySession) error {
	if session.ID.IsZero() {
		session.ID = primitive.NewObjectID()
	}
	copied := *session
	f.sessions[session.ID.Hex()] = &copied
	return nil
}

func (f *fakeStudySessionStore) FindByID(_ context.Context, id string) (*models.StudySession, error) {
	session, ok := f.sessions[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *session
	return &copied, nil
}

func (f *fakeStudySessionStore) Save(_ context.Context, session *models.StudySession) error {
	copied := *session
	f.sessions[session.ID.Hex()] = &copied
	return nil
}

type fakeClassSessionStore struct {
	sessions map[string]*models.ClassSession
}

func newFakeClassSessionStore() *fakeClassSessionStore {
	return &fakeClassSessionStore{sessions: map[string]*models.ClassSession{}}
}

func (f *fakeClassSessionStore) Create(_ context.Context, session *models.ClassSession) error {
	if session.ID.IsZero() {
		session.ID = primitive.NewObjectID()
	}
	copied := *session
	f.sessions[session.ID.Hex()] = &copied
	return nil
}

func (f *fakeClassSessionStore) FindByID(_ context.Context, id string) (*models.ClassSession, error) {
	session, ok := f.sessions[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *session
	return &copied, nil
}

func (f *fakeClassSessionStore) FindByUser(_ context.Context, userID string) ([]models.ClassSession, error) {
	var out []models.ClassSession
	for _, s := range f.sessions {
		if s.UserID == userID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeClassSessionStore) FindFromDate(_ context.Context, from time.Time) ([]models.ClassSession, error) {
	var out []models.ClassSession
	for _, s := range f.sessions {
		if !s.Date.Before(from) {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeClassSessionStore) UpdateByID(_ context.Context, id string, update bson.M) (*models.ClassSession, error) {
	session, ok := f.sessions[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	if v, ok := update["status"].(string); ok {
		session.Status = v
	}
	if v, ok := update["title"].(string); ok {
		session.Title = v
	}
	if v, ok := update["description"].(string); ok {
		session.Description = v
	}
	if v, ok := update["endTime"].(time.Time); ok {
		session.EndTime = v
	}
	copied := *session
	return &copied, nil
}

func (f *fakeClassSessionStore) Delete(_ context.Context, id string) error {
	if _, ok := f.sessions[id]; !ok {
		return models.ErrNotFound
	}
	delete(f.sessions, id)
	return nil
}
