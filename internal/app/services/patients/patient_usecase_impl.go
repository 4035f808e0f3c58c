package patients

import (
	"context"
	"nutripulse-service/internal/app/models"
	"nutripulse-service/internal/app/services/nurses"
	"nutripulse-service/internal/app/services/nutritionplans"
	"nutripulse-service/internal/app/services/records"
	"nutripulse-service/internal/app/services/shared/access"
	"nutripulse-service/internal/app/services/users"
	"nutripulse-service/internal/pkg/dto/requests"
	"nutripulse-service/internal/pkg/dto/responses"
	"nutripulse-service/internal/pkg/exceptions"
	"time"

	"go.uber.org/zap"
)

type patientUsecase struct {
	Log                     *zap.Logger
	PatientRepository       PatientRepository
	UserRepository          users.UserRepository
	NurseRepository         nurses.NurseRepository
	HealthRecordRepository  records.HealthRecordRepository
	NutritionPlanRepository nutritionplans.NutritionPlanRepository
}

func NewPatientUsecase(
	logger *zap.Logger,
	patientRepository PatientRepository,
	userRepository users.UserRepository,
	nurseRepository nurses.NurseRepository,
	healthRecordRepository records.HealthRecordRepository,
	nutritionPlanRepository nutritionplans.NutritionPlanRepository,
) PatientUsecase {
	return &patientUsecase{
		Log:                     logger,
		PatientRepository:       patientRepository,
		UserRepository:          userRepository,
		NurseRepository:         nurseRepository,
		HealthRecordRepository:  healthRecordRepository,
		NutritionPlanRepository: nutritionPlanRepository,
	}
}

func (uc *patientUsecase) GetPatient(ctx context.Context, session *models.Session, patientID string) (*responses.PatientSnapshot, error) {
	if err := access.Authorize(session, patientID, access.CapabilityReadOwnOrAny); err != nil {
		return nil, err
	}

	patient, err := uc.findPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return uc.buildPatientSnapshot(ctx, patient)
}

func (uc *patientUsecase) UpdatePatient(ctx context.Context, session *models.Session, patientID string, request *requests.UpdatePatient) (*responses.PatientSnapshot, error) {
	if err := access.Authorize(session, patientID, access.CapabilityReadOwnOrAny); err != nil {
		return nil, err
	}

	patient, err := uc.findPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	if request.Age != nil {
		patient.Age = *request.Age
	}
	if request.Gender != nil {
		patient.Gender = *request.Gender
	}
	if request.MedicalHistory != nil {
		patient.MedicalHistory = *request.MedicalHistory
	}
	if request.NutritionNeeds != nil {
		patient.NutritionNeeds = *request.NutritionNeeds
	}

	if err := uc.PatientRepository.UpdatePatient(ctx, patient); err != nil {
		return nil, err
	}
	return uc.buildPatientSnapshot(ctx, patient)
}

func (uc *patientUsecase) GetHealthRecords(ctx context.Context, session *models.Session, patientID string) (*responses.PatientHealthRecords, error) {
	if err := access.Authorize(session, patientID, access.CapabilityReadOwnOrAny); err != nil {
		return nil, err
	}
	if _, err := uc.findPatient(ctx, patientID); err != nil {
		return nil, err
	}

	healthRecords, err := uc.HealthRecordRepository.FindByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return &responses.PatientHealthRecords{
		PatientID: patientID,
		Records:   healthRecords,
	}, nil
}

func (uc *patientUsecase) AddHealthRecord(ctx context.Context, session *models.Session, patientID string, request *requests.CreateHealthRecord) (*responses.CreatedHealthRecord, error) {
	if err := access.Authorize(session, patientID, access.CapabilityWriteAsNurse); err != nil {
		return nil, err
	}
	if _, err := uc.findPatient(ctx, patientID); err != nil {
		return nil, err
	}
	nurse, err := uc.findNurseProfile(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	record := &models.HealthRecord{
		PatientID:     patientID,
		NurseID:       nurse.ID,
		CheckupNotes:  request.CheckupNotes,
		Prescriptions: request.Prescriptions,
		CreatedAt:     time.Now().UTC(),
	}
	recordID, err := uc.HealthRecordRepository.CreateHealthRecord(ctx, record)
	if err != nil {
		return nil, err
	}
	record.ID = recordID

	uc.Log.Info("health record added",
		zap.String("patient_id", patientID),
		zap.String("nurse_id", nurse.ID),
		zap.String("record_id", recordID),
	)
	return &responses.CreatedHealthRecord{Record: *record}, nil
}

func (uc *patientUsecase) GetNutritionPlans(ctx context.Context, session *models.Session, patientID string) (*responses.PatientNutritionPlans, error) {
	if err := access.Authorize(session, patientID, access.CapabilityReadOwnOrAny); err != nil {
		return nil, err
	}
	if _, err := uc.findPatient(ctx, patientID); err != nil {
		return nil, err
	}

	plans, err := uc.NutritionPlanRepository.FindByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return &responses.PatientNutritionPlans{
		PatientID: patientID,
		Plans:     plans,
	}, nil
}

func (uc *patientUsecase) AddNutritionPlan(ctx context.Context, session *models.Session, patientID string, request *requests.CreateNutritionPlan) (*responses.CreatedNutritionPlan, error) {
	if err := access.Authorize(session, patientID, access.CapabilityWriteAsNurse); err != nil {
		return nil, err
	}
	if _, err := uc.findPatient(ctx, patientID); err != nil {
		return nil, err
	}
	nurse, err := uc.findNurseProfile(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	plan := &models.NutritionPlan{
		PatientID: patientID,
		NurseID:   nurse.ID,
		DietPlan:  request.DietPlan,
		CreatedAt: time.Now().UTC(),
	}
	planID, err := uc.NutritionPlanRepository.CreateNutritionPlan(ctx, plan)
	if err != nil {
		return nil, err
	}
	plan.ID = planID

	uc.Log.Info("nutrition plan added",
		zap.String("patient_id", patientID),
		zap.String("nurse_id", nurse.ID),
		zap.String("plan_id", planID),
	)
	return &responses.CreatedNutritionPlan{Plan: *plan}, nil
}

func (uc *patientUsecase) findPatient(ctx context.Context, patientID string) (*models.Patient, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}
	return patient, nil
}

func (uc *patientUsecase) findNurseProfile(ctx context.Context, userID string) (*models.Nurse, error) {
	nurse, err := uc.NurseRepository.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if nurse == nil {
		return nil, exceptions.ErrNurseProfileNotFound(nil)
	}
	return nurse, nil
}

// buildPatientSnapshot embeds the owning user's account block in the
// patient payload.
func (uc *patientUsecase) buildPatientSnapshot(ctx context.Context, patient *models.Patient) (*responses.PatientSnapshot, error) {
	snapshot := &responses.PatientSnapshot{
		ID:             patient.ID,
		UserID:         patient.UserID,
		Age:            patient.Age,
		Gender:         patient.Gender,
		MedicalHistory: patient.MedicalHistory,
		NutritionNeeds: patient.NutritionNeeds,
	}

	user, err := uc.UserRepository.FindByID(ctx, patient.UserID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		snapshot.User = &responses.UserSnapshot{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			Role:      user.Role,
			CreatedAt: user.CreatedAt.Format(time.RFC3339),
		}
	}
	return snapshot, nil
}
