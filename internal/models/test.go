package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Question is one entry in a test's ordered question list. CorrectOption is
// the index into Options holding the answer key; Weight is the score awarded
// for answering it correctly.
type Question struct {
	Prompt        string   `bson:"prompt" json:"prompt"`
	Options       []string `bson:"options" json:"options"`
	CorrectOption int      `bson:"correctOption" json:"correctOption"`
	Subject       string   `bson:"subject" json:"subject"`
	Weight        float64  `bson:"weight" json:"weight"`
}

type Test struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	TestType    string             `bson:"test_type" json:"test_type"`
	Questions   []Question         `bson:"questions" json:"questions,omitempty"`
	// Students holds the hex ids of every distinct user who has attempted
	// the test; Count mirrors its length.
	Students  []string  `bson:"students" json:"students"`
	Count     int       `bson:"count" json:"count"`
	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// AddStudent records a distinct attemptor and keeps Count in sync.
func (t *Test) AddStudent(userID string) {
	for _, s := range t.Students {
		if s == userID {
			t.Count = len(t.Students)
			return
		}
	}
	t.Students = append(t.Students, userID)
	t.Count = len(t.Students)
}
