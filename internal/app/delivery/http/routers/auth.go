package routers

import (
	"nutripulse-service/internal/app/delivery/http/middlewares"
	"nutripulse-service/internal/app/services/auth"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *auth.AuthController) {
	router.Post("/register", authController.Register)
	router.Post("/login", authController.Login)
	router.With(middlewares.Authenticate).Get("/profile", authController.GetProfile)
	router.With(middlewares.Authenticate).Post("/logout", authController.Logout)
}
