package auth

import (
	"context"
	"nutripulse-service/internal/app/models"
	"nutripulse-service/internal/pkg/dto/requests"
	"nutripulse-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Register(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error)
	Login(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error)
	GetProfile(ctx context.Context, session *models.Session) (*responses.UserProfile, error)
	Logout(ctx context.Context, session *models.Session) error
}
