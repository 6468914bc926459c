package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message is one chat message. RoomID pairs the two participants as
// "<senderId>_<recipientId>" at send time, so a conversation spans two
// possible room ids depending on who spoke first.
type Message struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	RoomID        string             `bson:"roomId" json:"roomId"`
	Sender        string             `bson:"sender" json:"sender"`
	SenderName    string             `bson:"senderName,omitempty" json:"senderName,omitempty"`
	Recipient     string             `bson:"recipient" json:"recipient"`
	RecipientName string             `bson:"recipientName,omitempty" json:"recipientName,omitempty"`
	Content       string             `bson:"content" json:"content"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
