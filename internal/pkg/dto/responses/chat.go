package responses

import "nutripulse-service/internal/app/models"

type ChatReply struct {
	UserMessage string `json:"user_message"`
	AIResponse  string `json:"ai_response"`
	Timestamp   string `json:"timestamp"`
}

// ChatHistory groups turns positionally: each conversation is nominally a
// [user, assistant] pair, with a trailing singleton when the newest user
// message has no stored answer yet.
type ChatHistory struct {
	UserID        string              `json:"user_id"`
	Conversations [][]models.ChatTurn `json:"conversations"`
}
