package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	SessionActive   = "active"
	SessionInactive = "inactive"
)

// ClassSession is a live class slot: either scheduled ahead of time as an
// alert (title, clock time, date) or started ad hoc by a user.
type ClassSession struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID      string             `bson:"userId,omitempty" json:"userId,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Time        string             `bson:"time,omitempty" json:"time,omitempty"`
	Date        time.Time          `bson:"date,omitempty" json:"date,omitempty"`
	Status      string             `bson:"status" json:"status"`
	StartTime   time.Time          `bson:"startTime,omitempty" json:"startTime,omitempty"`
	EndTime     time.Time          `bson:"endTime,omitempty" json:"endTime,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// StudySession tracks one focused study period; Duration is whole minutes,
// filled in when the session is stopped.
type StudySession struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID    string             `bson:"userId" json:"userId"`
	Subject   string             `bson:"subject" json:"subject"`
	StartTime time.Time          `bson:"startTime" json:"startTime"`
	EndTime   *time.Time         `bson:"endTime,omitempty" json:"endTime,omitempty"`
	Duration  int                `bson:"duration" json:"duration"`
}
