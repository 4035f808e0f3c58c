package models

import "time"

// HealthRecord is immutable once created; the collection only ever grows.
type HealthRecord struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	PatientID     string    `bson:"patientId" json:"patient_id"`
	NurseID       string    `bson:"nurseId" json:"nurse_id"`
	CheckupNotes  string    `bson:"checkupNotes" json:"checkup_notes"`
	Prescriptions string    `bson:"prescriptions,omitempty" json:"prescriptions,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"created_at"`
}
