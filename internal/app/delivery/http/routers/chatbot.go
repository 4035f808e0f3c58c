package routers

import (
	"nutripulse-service/internal/app/delivery/http/middlewares"
	"nutripulse-service/internal/app/services/chatbot"

	"github.com/go-chi/chi/v5"
)

func attachChatbotRoutes(router chi.Router, middlewares *middlewares.Middlewares, chatbotController *chatbot.ChatbotController) {
	router.With(middlewares.Authenticate).Post("/chat", chatbotController.Chat)
	router.With(middlewares.Authenticate).Get("/history", chatbotController.History)
	router.With(middlewares.Authenticate).Delete("/clear-history", chatbotController.ClearHistory)
}
