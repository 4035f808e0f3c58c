package chatbot

import (
	"context"
	"nutripulse-service/internal/app/models"
	"nutripulse-service/internal/pkg/dto/requests"
	"nutripulse-service/internal/pkg/dto/responses"
	"time"
)

type ChatRepository interface {
	// CreateTurnPair stores the user turn and its assistant answer in a
	// single ordered insert so history never contains a half-written pair.
	CreateTurnPair(ctx context.Context, userTurn, assistantTurn *models.ChatTurn) error
	FindByUserIDSince(ctx context.Context, userID string, since time.Time) ([]models.ChatTurn, error)
	FindRecentByUserID(ctx context.Context, userID string, limit int64) ([]models.ChatTurn, error)
	DeleteByUserID(ctx context.Context, userID string) (deletedCount int64, err error)
}

// CompletionClient produces the assistant reply for one user message. It
// never fails the chat interaction: on any upstream problem it returns a
// fallback reply that gets stored like a normal assistant turn.
type CompletionClient interface {
	Complete(ctx context.Context, role, message string) string
}

type ChatbotUsecase interface {
	Chat(ctx context.Context, session *models.Session, request *requests.ChatMessage) (*responses.ChatReply, error)
	History(ctx context.Context, session *models.Session) (*responses.ChatHistory, error)
	ClearHistory(ctx context.Context, session *models.Session) error
}
