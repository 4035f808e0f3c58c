package nurses

import (
	"context"
	"nutripulse-service/internal/app/models"
)

type NurseRepository interface {
	CreateNurse(ctx context.Context, nurse *models.Nurse) (nurseID string, err error)
	FindByUserID(ctx context.Context, userID string) (*models.Nurse, error)
}
