package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CourseScore struct {
	Course string  `bson:"course" json:"course"`
	Score  float64 `bson:"score" json:"score"`
}

// TestResult is the stored outcome of one attempt. Progress keeps at most
// one TestResult per test id; a newer attempt replaces the older entry.
type TestResult struct {
	TestID                   string             `bson:"test" json:"test"`
	TotalQuestions           int                `bson:"totalQuestions" json:"totalQuestions"`
	CorrectCount             int                `bson:"correctCount" json:"correctCount"`
	WrongCount               int                `bson:"wrongCount" json:"wrongCount"`
	Score                    float64            `bson:"score" json:"score"`
	DateTaken                time.Time          `bson:"dateTaken" json:"dateTaken"`
	CorrectAnswers           []int              `bson:"correctAnswers" json:"correctAnswers"`
	WrongAnswers             []int              `bson:"wrongAnswers" json:"wrongAnswers"`
	AttemptedQuestionIndexes []int              `bson:"attemptedQuestionIndexes" json:"attemptedQuestionIndexes"`
	AttemptedQuestionCount   int                `bson:"attemptedQuestionCount" json:"attemptedQuestionCount"`
	CorrectAnswerIndexes     []int              `bson:"correctAnswerIndexes" json:"correctAnswerIndexes"`
	UserAnswers              map[string]int     `bson:"userAnswers" json:"userAnswers"`
	SubjectScores            map[string]float64 `bson:"subjectScores" json:"subjectScores"`
	TimeTaken                float64            `bson:"timeTaken" json:"timeTaken"`
}

type Progress struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Student          string             `bson:"student" json:"student"`
	CoursesCompleted []string           `bson:"coursesCompleted" json:"coursesCompleted"`
	Scores           []CourseScore      `bson:"scores" json:"scores"`
	TestResults      []TestResult       `bson:"testResults" json:"testResults"`
	OverallScore     float64            `bson:"overallScore" json:"overallScore"`
}

// NewProgress returns an empty progress record owned by the given student.
func NewProgress(studentID string) *Progress {
	return &Progress{
		Student:          studentID,
		CoursesCompleted: []string{},
		Scores:           []CourseScore{},
		TestResults:      []TestResult{},
	}
}

// AddCompletedCourse adds the course with set semantics.
func (p *Progress) AddCompletedCourse(course string) {
	for _, c := range p.CoursesCompleted {
		if c == course {
			return
		}
	}
	p.CoursesCompleted = append(p.CoursesCompleted, course)
}

// SetCourseScore overwrites the score for the course, appending a new entry
// only if the course has none yet.
func (p *Progress) SetCourseScore(course string, score float64) {
	for i := range p.Scores {
		if p.Scores[i].Course == course {
			p.Scores[i].Score = score
			return
		}
	}
	p.Scores = append(p.Scores, CourseScore{Course: course, Score: score})
}

// PutTestResult replaces any existing result for the same test id, so exactly
// one result survives per test.
func (p *Progress) PutTestResult(result TestResult) {
	kept := p.TestResults[:0]
	for _, r := range p.TestResults {
		if r.TestID != result.TestID {
			kept = append(kept, r)
		}
	}
	p.TestResults = append(kept, result)
}

// RecomputeOverallScore sets OverallScore to the mean of the course scores.
// An empty score list yields 0 rather than a division by zero.
func (p *Progress) RecomputeOverallScore() {
	if len(p.Scores) == 0 {
		p.OverallScore = 0
		return
	}
	var sum float64
	for _, s := range p.Scores {
		sum += s.Score
	}
	p.OverallScore = sum / float64(len(p.Scores))
}
