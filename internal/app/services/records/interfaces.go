package records

import (
	"context"
	"nutripulse-service/internal/app/models"
	"time"
)

// HealthRecordRepository is append-only: records are never updated or
// deleted once stored.
type HealthRecordRepository interface {
	CreateHealthRecord(ctx context.Context, record *models.HealthRecord) (recordID string, err error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.HealthRecord, error)
	FindByPatientIDSince(ctx context.Context, patientID string, since time.Time) ([]models.HealthRecord, error)
	FindLatestByPatientID(ctx context.Context, patientID string) (*models.HealthRecord, error)
}
