package domain

import "errors"

var ErrMedicNotFound = errors.New("médico no encontrado")
var ErrDuplicateLicense = errors.New("cédula duplicada")

// Medic is a practicing physician of the clinic. Deactivation is a soft
// delete: the row stays in the store with Active set to false.
type Medic struct {
	ID        int64
	FullName  string
	Specialty string
	License   string
	Active    bool
}
