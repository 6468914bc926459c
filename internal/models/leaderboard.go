package models

import (
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LeaderboardEntry is one student's best-known standing on a test. A student
// has at most one entry per leaderboard; resubmission overwrites it.
type LeaderboardEntry struct {
	StudentID          string  `bson:"studentId" json:"studentId"`
	Score              float64 `bson:"score" json:"score"`
	CorrectAnswers     int     `bson:"correctAnswers" json:"correctAnswers"`
	TimeTaken          float64 `bson:"timeTaken" json:"timeTaken"`
	AttemptedQuestions int     `bson:"attemptedQuestions" json:"attemptedQuestions"`
	Rank               int     `bson:"rank" json:"rank"`
}

// Leaderboard holds one ranked entry list per test.
type Leaderboard struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	TestID  string             `bson:"testId" json:"testId"`
	Entries []LeaderboardEntry `bson:"entries" json:"entries"`
}

// UpsertEntry replaces the student's existing entry in place or appends a new
// one. Ranks are left stale until Rerank runs.
func (l *Leaderboard) UpsertEntry(entry LeaderboardEntry) {
	for i := range l.Entries {
		if l.Entries[i].StudentID == entry.StudentID {
			l.Entries[i] = entry
			return
		}
	}
	l.Entries = append(l.Entries, entry)
}

// Rerank sorts entries by score descending and reassigns 1-based ranks. The
// sort is stable, so equal scores keep their insertion/update order.
func (l *Leaderboard) Rerank() {
	sort.SliceStable(l.Entries, func(i, j int) bool {
		return l.Entries[i].Score > l.Entries[j].Score
	})
	for i := range l.Entries {
		l.Entries[i].Rank = i + 1
	}
}
