package auth

import (
	"context"
	"nutripulse-service/internal/app/config"
	"nutripulse-service/internal/app/models"
	"nutripulse-service/internal/app/services/nurses"
	"nutripulse-service/internal/app/services/patients"
	sharedRedis "nutripulse-service/internal/app/services/shared/redis"
	"nutripulse-service/internal/app/services/users"
	"nutripulse-service/internal/pkg/constvars"
	"nutripulse-service/internal/pkg/dto/requests"
	"nutripulse-service/internal/pkg/dto/responses"
	"nutripulse-service/internal/pkg/exceptions"
	"nutripulse-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type authUsecase struct {
	Log               *zap.Logger
	UserRepository    users.UserRepository
	PatientRepository patients.PatientRepository
	NurseRepository   nurses.NurseRepository
	RedisRepository   sharedRedis.RedisRepository
	InternalConfig    *config.InternalConfig
}

func NewAuthUsecase(
	logger *zap.Logger,
	userRepository users.UserRepository,
	patientRepository patients.PatientRepository,
	nurseRepository nurses.NurseRepository,
	redisRepository sharedRedis.RedisRepository,
	internalConfig *config.InternalConfig,
) AuthUsecase {
	return &authUsecase{
		Log:               logger,
		UserRepository:    userRepository,
		PatientRepository: patientRepository,
		NurseRepository:   nurseRepository,
		RedisRepository:   redisRepository,
		InternalConfig:    internalConfig,
	}
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error) {
	if request.Role == constvars.RoleTypeNurse && (request.Specialization == "" || request.Hospital == "") {
		return nil, exceptions.ErrNurseFieldsRequired(nil)
	}

	existing, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		Name:      request.Name,
		Email:     request.Email,
		Password:  hashedPassword,
		Role:      request.Role,
		CreatedAt: time.Now().UTC(),
	}
	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = userID

	session := &models.Session{
		UserID: userID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
	}

	// A user document must never outlive a failed profile insert.
	switch request.Role {
	case constvars.RoleTypePatient:
		patientID, err := uc.PatientRepository.CreatePatient(ctx, &models.Patient{
			UserID:         userID,
			Age:            request.Age,
			Gender:         request.Gender,
			MedicalHistory: request.MedicalHistory,
			NutritionNeeds: request.NutritionNeeds,
		})
		if err != nil {
			uc.rollbackUser(ctx, userID)
			return nil, err
		}
		session.PatientID = patientID
	case constvars.RoleTypeNurse:
		nurseID, err := uc.NurseRepository.CreateNurse(ctx, &models.Nurse{
			UserID:         userID,
			Specialization: request.Specialization,
			Hospital:       request.Hospital,
		})
		if err != nil {
			uc.rollbackUser(ctx, userID)
			return nil, err
		}
		session.NurseID = nurseID
	default:
		uc.rollbackUser(ctx, userID)
		return nil, exceptions.ErrInvalidRoleType(nil)
	}

	accessToken, err := uc.startSession(ctx, session)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("user registered",
		zap.String("user_id", userID),
		zap.String("role", user.Role),
	)
	return &responses.RegisterUser{
		AccessToken: accessToken,
		User:        buildUserSnapshot(user),
	}, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	session := &models.Session{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
	}

	switch user.Role {
	case constvars.RoleTypePatient:
		patient, err := uc.PatientRepository.FindByUserID(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		if patient != nil {
			session.PatientID = patient.ID
		}
	case constvars.RoleTypeNurse:
		nurse, err := uc.NurseRepository.FindByUserID(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		if nurse != nil {
			session.NurseID = nurse.ID
		}
	}

	accessToken, err := uc.startSession(ctx, session)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("user logged in", zap.String("user_id", user.ID))
	return &responses.LoginUser{
		AccessToken: accessToken,
		User:        buildUserSnapshot(user),
	}, nil
}

func (uc *authUsecase) GetProfile(ctx context.Context, session *models.Session) (*responses.UserProfile, error) {
	if session == nil || session.UserID == "" {
		return nil, exceptions.ErrTokenMissing(nil)
	}

	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotFound(nil)
	}

	profile := &responses.UserProfile{UserSnapshot: buildUserSnapshot(user)}

	switch user.Role {
	case constvars.RoleTypePatient:
		patient, err := uc.PatientRepository.FindByUserID(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		if patient != nil {
			profile.PatientData = &responses.PatientSnapshot{
				ID:             patient.ID,
				UserID:         patient.UserID,
				Age:            patient.Age,
				Gender:         patient.Gender,
				MedicalHistory: patient.MedicalHistory,
				NutritionNeeds: patient.NutritionNeeds,
			}
		}
	case constvars.RoleTypeNurse:
		nurse, err := uc.NurseRepository.FindByUserID(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		if nurse != nil {
			profile.NurseData = &responses.NurseSnapshot{
				ID:             nurse.ID,
				UserID:         nurse.UserID,
				Specialization: nurse.Specialization,
				Hospital:       nurse.Hospital,
			}
		}
	}

	return profile, nil
}

func (uc *authUsecase) Logout(ctx context.Context, session *models.Session) error {
	if session == nil || session.SessionID == "" {
		return exceptions.ErrTokenMissing(nil)
	}
	return uc.RedisRepository.DeleteSession(ctx, session.SessionID)
}

// rollbackUser deletes the user created earlier in Register when the role
// profile insert fails.
func (uc *authUsecase) rollbackUser(ctx context.Context, userID string) {
	if err := uc.UserRepository.DeleteByID(ctx, userID); err != nil {
		uc.Log.Error("failed to roll back user after profile creation error",
			zap.String("user_id", userID),
			zap.Error(err),
		)
	}
}

// startSession stores the session in Redis and wraps its id in a signed JWT.
func (uc *authUsecase) startSession(ctx context.Context, session *models.Session) (string, error) {
	session.SessionID = utils.GenerateSessionID()

	exp := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	if err := uc.RedisRepository.CreateSession(ctx, session, exp); err != nil {
		return "", err
	}

	return utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
}

func buildUserSnapshot(user *models.User) responses.UserSnapshot {
	return responses.UserSnapshot{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}
