package handler

import (
	"time"

	"github.com/clinicadelvalle/clinic-api/internal/core/domain"
)

const dateLayout = "2006-01-02"

type createPatientRequest struct {
	NombreCompleto  string `json:"nombreCompleto"`
	Identificador   string `json:"identificador"`
	FechaNacimiento string `json:"fechaNacimiento"`
	Sexo            string `json:"sexo"`
}

// patientResponse is the wire shape of a patient. Calendar dates render as
// yyyy-MM-dd with no time component.
type patientResponse struct {
	ID              int64  `json:"id"`
	NombreCompleto  string `json:"nombreCompleto"`
	Identificador   string `json:"identificador"`
	FechaNacimiento string `json:"fechaNacimiento"`
	Sexo            string `json:"sexo"`
	FechaAlta       string `json:"fechaAlta"`
}

func newPatientResponse(p *domain.Patient) patientResponse {
	return patientResponse{
		ID:              p.ID,
		NombreCompleto:  p.FullName,
		Identificador:   p.Identifier,
		FechaNacimiento: p.BirthDate.Format(dateLayout),
		Sexo:            p.Sex,
		FechaAlta:       p.RegisteredAt.Format(dateLayout),
	}
}

func newPatientListResponse(patients []*domain.Patient) []patientResponse {
	list := make([]patientResponse, 0, len(patients))
	for _, p := range patients {
		list = append(list, newPatientResponse(p))
	}
	return list
}

// formatTimestamp renders a consultation timestamp as RFC 3339 UTC.
func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
