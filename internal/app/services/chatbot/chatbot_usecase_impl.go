package chatbot

import (
	"context"
	"nutripulse-service/internal/app/models"
	"nutripulse-service/internal/pkg/constvars"
	"nutripulse-service/internal/pkg/dto/requests"
	"nutripulse-service/internal/pkg/dto/responses"
	"nutripulse-service/internal/pkg/exceptions"
	"time"

	"go.uber.org/zap"
)

type chatbotUsecase struct {
	Log              *zap.Logger
	ChatRepository   ChatRepository
	CompletionClient CompletionClient
}

func NewChatbotUsecase(logger *zap.Logger, chatRepository ChatRepository, completionClient CompletionClient) ChatbotUsecase {
	return &chatbotUsecase{
		Log:              logger,
		ChatRepository:   chatRepository,
		CompletionClient: completionClient,
	}
}

func (uc *chatbotUsecase) Chat(ctx context.Context, session *models.Session, request *requests.ChatMessage) (*responses.ChatReply, error) {
	if session == nil || session.UserID == "" {
		return nil, exceptions.ErrTokenMissing(nil)
	}

	userTurn := &models.ChatTurn{
		UserID:    session.UserID,
		Role:      constvars.ChatRoleUser,
		Message:   request.Message,
		CreatedAt: time.Now().UTC(),
	}

	answer := uc.CompletionClient.Complete(ctx, session.Role, request.Message)

	assistantTurn := &models.ChatTurn{
		UserID:    session.UserID,
		Role:      constvars.ChatRoleAssistant,
		Message:   answer,
		CreatedAt: time.Now().UTC(),
	}

	if err := uc.ChatRepository.CreateTurnPair(ctx, userTurn, assistantTurn); err != nil {
		return nil, err
	}

	return &responses.ChatReply{
		UserMessage: userTurn.Message,
		AIResponse:  assistantTurn.Message,
		Timestamp:   assistantTurn.CreatedAt.Format(time.RFC3339),
	}, nil
}

func (uc *chatbotUsecase) History(ctx context.Context, session *models.Session) (*responses.ChatHistory, error) {
	if session == nil || session.UserID == "" {
		return nil, exceptions.ErrTokenMissing(nil)
	}

	turns, err := uc.ChatRepository.FindRecentByUserID(ctx, session.UserID, constvars.ChatHistoryFetchSize)
	if err != nil {
		return nil, err
	}

	// Repository returns newest first; pairing wants chronological order.
	for i, j := 0, len(turns)-1; i < j; i, j = i+1, j-1 {
		turns[i], turns[j] = turns[j], turns[i]
	}

	return &responses.ChatHistory{
		UserID:        session.UserID,
		Conversations: PairTurns(turns),
	}, nil
}

func (uc *chatbotUsecase) ClearHistory(ctx context.Context, session *models.Session) error {
	if session == nil || session.UserID == "" {
		return exceptions.ErrTokenMissing(nil)
	}

	deleted, err := uc.ChatRepository.DeleteByUserID(ctx, session.UserID)
	if err != nil {
		return err
	}
	uc.Log.Info("cleared chat history",
		zap.String("user_id", session.UserID),
		zap.Int64("deleted_count", deleted),
	)
	return nil
}

// PairTurns groups chronological turns into conversations. A user turn
// followed by an assistant turn forms one pair; anything that breaks the
// pattern, including a newest user turn without a stored answer, stands
// alone.
func PairTurns(turns []models.ChatTurn) [][]models.ChatTurn {
	conversations := make([][]models.ChatTurn, 0, (len(turns)+1)/2)
	for i := 0; i < len(turns); {
		if turns[i].Role == constvars.ChatRoleUser &&
			i+1 < len(turns) &&
			turns[i+1].Role == constvars.ChatRoleAssistant {
			conversations = append(conversations, []models.ChatTurn{turns[i], turns[i+1]})
			i += 2
			continue
		}
		conversations = append(conversations, []models.ChatTurn{turns[i]})
		i++
	}
	return conversations
}
