package domain

import (
	"errors"
	"time"
)

var ErrConsultationNotFound = errors.New("consulta no encontrada")

// Consultation is a single clinical visit note attached to a patient.
type Consultation struct {
	ID         int64
	PatientID  int64
	OccurredAt time.Time
	Notes      string
}

// ConsultationWithPatient pairs a consultation with the summary of the patient
// it belongs to, as returned by the date-range history query.
type ConsultationWithPatient struct {
	Consultation
	Patient Patient
}
