package scoring

import (
	"strconv"

	"learnhub-service/internal/models"
)

// Result is the full grading breakdown for one submitted answer set. Index
// slices refer to positions in the test's question list. The answer map keys
// are question indexes in decimal string form, as they arrive in JSON.
type Result struct {
	CorrectCount             int                `json:"correctCount"`
	WrongCount               int                `json:"wrongCount"`
	TotalQuestions           int                `json:"totalQuestions"`
	TotalScore               float64            `json:"totalScore"`
	CorrectAnswers           []int              `json:"correctAnswers"`
	WrongAnswers             []int              `json:"wrongAnswers"`
	AttemptedQuestionIndexes []int              `json:"attemptedQuestionIndexes"`
	AttemptedQuestionCount   int                `json:"attemptedQuestionCount"`
	CorrectAnswerIndexes     []int              `json:"correctAnswerIndexes"`
	UserAnswers              map[string]int     `json:"userAnswers"`
	SubjectScores            map[string]float64 `json:"subjectScores"`
}

// Evaluate grades a sparse answer set against the test's answer key. Every
// question counts toward TotalQuestions; only attempted ones count toward
// CorrectCount or WrongCount. A correct answer earns the question's weight
// (1 when unset), credited to both TotalScore and its subject bucket.
// Per-question time is recorded on the attempt elsewhere; it does not factor
// into the score.
func Evaluate(test *models.Test, answers map[string]int, questionTime map[string]float64) Result {
	result := Result{
		TotalQuestions:           len(test.Questions),
		CorrectAnswers:           []int{},
		WrongAnswers:             []int{},
		AttemptedQuestionIndexes: []int{},
		CorrectAnswerIndexes:     make([]int, 0, len(test.Questions)),
		UserAnswers:              answers,
		SubjectScores:            map[string]float64{},
	}
	if result.UserAnswers == nil {
		result.UserAnswers = map[string]int{}
	}

	for i, q := range test.Questions {
		result.CorrectAnswerIndexes = append(result.CorrectAnswerIndexes, q.CorrectOption)

		chosen, attempted := answers[strconv.Itoa(i)]
		if !attempted {
			continue
		}
		result.AttemptedQuestionIndexes = append(result.AttemptedQuestionIndexes, i)

		if chosen == q.CorrectOption {
			result.CorrectCount++
			result.CorrectAnswers = append(result.CorrectAnswers, i)
			result.TotalScore += questionWeight(q)
			result.SubjectScores[q.Subject] += questionWeight(q)
		} else {
			result.WrongCount++
			result.WrongAnswers = append(result.WrongAnswers, i)
		}
	}
	result.AttemptedQuestionCount = len(result.AttemptedQuestionIndexes)
	return result
}

func questionWeight(q models.Question) float64 {
	if q.Weight <= 0 {
		return 1
	}
	return q.Weight
}
