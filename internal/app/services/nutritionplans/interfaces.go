package nutritionplans

import (
	"context"
	"nutripulse-service/internal/app/models"
	"time"
)

type NutritionPlanRepository interface {
	CreateNutritionPlan(ctx context.Context, plan *models.NutritionPlan) (planID string, err error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.NutritionPlan, error)
	FindByPatientIDSince(ctx context.Context, patientID string, since time.Time) ([]models.NutritionPlan, error)
	FindLatestByPatientID(ctx context.Context, patientID string) (*models.NutritionPlan, error)
}
