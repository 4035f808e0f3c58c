package responses

import "nutripulse-service/internal/app/models"

type PatientSnapshot struct {
	ID             string        `json:"id"`
	UserID         string        `json:"user_id"`
	Age            int           `json:"age"`
	Gender         string        `json:"gender"`
	MedicalHistory string        `json:"medical_history"`
	NutritionNeeds string        `json:"nutrition_needs"`
	User           *UserSnapshot `json:"user,omitempty"`
}

type NurseSnapshot struct {
	ID             string        `json:"id"`
	UserID         string        `json:"user_id"`
	Specialization string        `json:"specialization"`
	Hospital       string        `json:"hospital"`
	User           *UserSnapshot `json:"user,omitempty"`
}

type PatientHealthRecords struct {
	PatientID string                `json:"patient_id"`
	Records   []models.HealthRecord `json:"records"`
}

type PatientNutritionPlans struct {
	PatientID string                 `json:"patient_id"`
	Plans     []models.NutritionPlan `json:"plans"`
}

type CreatedHealthRecord struct {
	Record models.HealthRecord `json:"record"`
}

type CreatedNutritionPlan struct {
	Plan models.NutritionPlan `json:"plan"`
}
