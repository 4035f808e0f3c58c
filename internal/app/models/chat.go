package models

import "time"

// ChatTurn is one message in a user's chatbot history. Turns are appended in
// user/assistant pairs and are only ever bulk-deleted by the owning user.
type ChatTurn struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	UserID    string    `bson:"userId" json:"user_id"`
	Role      string    `bson:"role" json:"role"`
	Message   string    `bson:"message" json:"message"`
	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
}
