package handler

import "github.com/clinicadelvalle/clinic-api/internal/core/domain"

type createConsultationRequest struct {
	PacienteID int64  `json:"pacienteId"`
	Notas      string `json:"notas"`
	Fecha      string `json:"fecha,omitempty"`
}

// consultationResponse is the wire shape of a consultation. Timestamps render
// as RFC 3339 UTC.
type consultationResponse struct {
	ID         int64  `json:"id"`
	PacienteID int64  `json:"pacienteId"`
	Fecha      string `json:"fecha"`
	Notas      string `json:"notas"`
}

// historyEntryResponse joins a consultation with its patient summary.
type historyEntryResponse struct {
	consultationResponse
	Paciente patientResponse `json:"paciente"`
}

func newConsultationResponse(c *domain.Consultation) consultationResponse {
	return consultationResponse{
		ID:         c.ID,
		PacienteID: c.PatientID,
		Fecha:      formatTimestamp(c.OccurredAt),
		Notas:      c.Notes,
	}
}

func newConsultationListResponse(consultations []*domain.Consultation) []consultationResponse {
	list := make([]consultationResponse, 0, len(consultations))
	for _, c := range consultations {
		list = append(list, newConsultationResponse(c))
	}
	return list
}

func newHistoryResponse(entries []*domain.ConsultationWithPatient) []historyEntryResponse {
	list := make([]historyEntryResponse, 0, len(entries))
	for _, e := range entries {
		list = append(list, historyEntryResponse{
			consultationResponse: newConsultationResponse(&e.Consultation),
			Paciente:             newPatientResponse(&e.Patient),
		})
	}
	return list
}
