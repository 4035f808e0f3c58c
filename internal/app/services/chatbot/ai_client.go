package chatbot

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"nutripulse-service/internal/app/config"
	"nutripulse-service/internal/pkg/constvars"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type completionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string              `json:"model"`
	Messages    []completionMessage `json:"messages"`
	MaxTokens   int                 `json:"max_tokens"`
	Temperature float64             `json:"temperature"`
}

type completionResponse struct {
	Choices []struct {
		Message completionMessage `json:"message"`
	} `json:"choices"`
}

// OpenAICompletionClient calls an OpenAI-compatible chat completion endpoint.
type OpenAICompletionClient struct {
	Log        *zap.Logger
	Config     config.AI
	HTTPClient *http.Client
}

func NewOpenAICompletionClient(logger *zap.Logger, aiConfig config.AI) CompletionClient {
	return &OpenAICompletionClient{
		Log:    logger,
		Config: aiConfig,
		HTTPClient: &http.Client{
			Timeout: time.Duration(aiConfig.TimeoutInSeconds) * time.Second,
		},
	}
}

func (c *OpenAICompletionClient) Complete(ctx context.Context, role, message string) string {
	if c.Config.ApiKey == "" {
		return constvars.ChatFallbackUnconfigured
	}

	payload := completionRequest{
		Model: c.Config.Model,
		Messages: []completionMessage{
			{Role: "system", Content: fmt.Sprintf(constvars.ChatSystemPromptFormat, role)},
			{Role: "user", Content: message},
		},
		MaxTokens:   c.Config.MaxTokens,
		Temperature: 0.7,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		c.Log.Error("failed to marshal completion request", zap.Error(err))
		return constvars.ChatFallbackUnreachable
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Config.ApiUrl, bytes.NewReader(body))
	if err != nil {
		c.Log.Error("failed to build completion request", zap.Error(err))
		return constvars.ChatFallbackUnreachable
	}
	request.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	request.Header.Set(constvars.HeaderAuthorization, "Bearer "+c.Config.ApiKey)

	response, err := c.HTTPClient.Do(request)
	if err != nil {
		c.Log.Warn("completion endpoint unreachable", zap.Error(err))
		return constvars.ChatFallbackUnreachable
	}
	defer response.Body.Close()

	if response.StatusCode != constvars.StatusOK {
		c.Log.Warn("completion endpoint returned non-ok status", zap.Int("status_code", response.StatusCode))
		return constvars.ChatFallbackBadStatus
	}

	completion := new(completionResponse)
	if err := json.NewDecoder(response.Body).Decode(completion); err != nil {
		c.Log.Warn("failed to decode completion response", zap.Error(err))
		return constvars.ChatFallbackUnreachable
	}
	if len(completion.Choices) == 0 {
		c.Log.Warn("completion response has no choices")
		return constvars.ChatFallbackBadStatus
	}

	return completion.Choices[0].Message.Content
}
