package ports

import (
	"context"

	"github.com/clinicadelvalle/clinic-api/internal/core/domain"
)

// CreateConsultationInput carries the raw request values for registering a
// consultation. Date is optional; when empty the service uses the current
// UTC time.
type CreateConsultationInput struct {
	PatientID int64
	Notes     string
	Date      string
}

// HistoryFilter bounds the global consultation history. Both fields are
// optional date texts (yyyy-MM-dd); EndDate is inclusive through the end of
// that calendar day.
type HistoryFilter struct {
	StartDate string
	EndDate   string
}

// ConsultationService defines the business operations over consultations.
type ConsultationService interface {
	ListByPatient(ctx context.Context, patientID int64, limit int) ([]*domain.Consultation, error)
	History(ctx context.Context, filter HistoryFilter) ([]*domain.ConsultationWithPatient, error)
	Create(ctx context.Context, input CreateConsultationInput) (*domain.Consultation, error)
}
