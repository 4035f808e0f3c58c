package models

import "time"

// NutritionPlan is immutable once created.
type NutritionPlan struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	PatientID string    `bson:"patientId" json:"patient_id"`
	NurseID   string    `bson:"nurseId" json:"nurse_id"`
	DietPlan  string    `bson:"dietPlan" json:"diet_plan"`
	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
}
