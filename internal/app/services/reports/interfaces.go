package reports

import (
	"context"
	"nutripulse-service/internal/app/models"
	"nutripulse-service/internal/pkg/dto/responses"
	"time"
)

type ReportUsecase interface {
	// GenerateReport aggregates a patient's stored data into the full report.
	// The caller supplies now so identical inputs produce identical reports.
	GenerateReport(ctx context.Context, session *models.Session, patientID string, now time.Time) (*responses.PatientReport, error)
	GetSummary(ctx context.Context, session *models.Session, patientID string, now time.Time) (*responses.PatientSummary, error)
}
