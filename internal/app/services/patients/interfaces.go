package patients

import (
	"context"
	"nutripulse-service/internal/app/models"
	"nutripulse-service/internal/pkg/dto/requests"
	"nutripulse-service/internal/pkg/dto/responses"
)

type PatientRepository interface {
	CreatePatient(ctx context.Context, patient *models.Patient) (patientID string, err error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	FindByUserID(ctx context.Context, userID string) (*models.Patient, error)
	UpdatePatient(ctx context.Context, patient *models.Patient) error
}

type PatientUsecase interface {
	GetPatient(ctx context.Context, session *models.Session, patientID string) (*responses.PatientSnapshot, error)
	UpdatePatient(ctx context.Context, session *models.Session, patientID string, request *requests.UpdatePatient) (*responses.PatientSnapshot, error)
	GetHealthRecords(ctx context.Context, session *models.Session, patientID string) (*responses.PatientHealthRecords, error)
	AddHealthRecord(ctx context.Context, session *models.Session, patientID string, request *requests.CreateHealthRecord) (*responses.CreatedHealthRecord, error)
	GetNutritionPlans(ctx context.Context, session *models.Session, patientID string) (*responses.PatientNutritionPlans, error)
	AddNutritionPlan(ctx context.Context, session *models.Session, patientID string, request *requests.CreateNutritionPlan) (*responses.CreatedNutritionPlan, error)
}
