package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name          string             `bson:"name" json:"name"`
	Email         string             `bson:"email" json:"email"`
	Password      string             `bson:"password" json:"-"`
	Bio           string             `bson:"bio,omitempty" json:"bio,omitempty"`
	Location      string             `bson:"location,omitempty" json:"location,omitempty"`
	BirthDate     *time.Time         `bson:"birthDate,omitempty" json:"birthDate,omitempty"`
	Role          string             `bson:"role" json:"role"`
	ProgressID    string             `bson:"progressId,omitempty" json:"progressId,omitempty"`
	StudySessions []string           `bson:"studySessions" json:"studySessions"`
	Subjects      []string           `bson:"subjects,omitempty" json:"subjects,omitempty"`
	Mentors       []string           `bson:"mentors,omitempty" json:"mentors,omitempty"`
	Tests         []string           `bson:"tests,omitempty" json:"tests,omitempty"`
	ImageURL      string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
}

// PublicProfile is the subset of a user visible to other users.
type PublicProfile struct {
	ID       primitive.ObjectID `json:"_id"`
	Name     string             `json:"name"`
	Bio      string             `json:"bio,omitempty"`
	Location string             `json:"location,omitempty"`
}

func (u *User) Public() PublicProfile {
	return PublicProfile{ID: u.ID, Name: u.Name, Bio: u.Bio, Location: u.Location}
}
