package domain

import (
	"errors"
	"strings"
	"time"
)

// Sex codes accepted for a patient record.
const (
	SexMale   = "M"
	SexFemale = "F"
)

var ErrPatientNotFound = errors.New("paciente no encontrado")
var ErrDuplicateIdentifier = errors.New("identificador duplicado")

// Patient is a registered clinic patient. BirthDate and RegisteredAt are
// calendar dates; their time component is always midnight UTC.
type Patient struct {
	ID           int64
	FullName     string
	Identifier   string
	BirthDate    time.Time
	Sex          string
	RegisteredAt time.Time
}

// NormalizeSex trims and uppercases a sex code. The result is only meaningful
// when ValidSex reports true for it.
func NormalizeSex(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// ValidSex reports whether the (already normalized) code is M or F.
func ValidSex(s string) bool {
	return s == SexMale || s == SexFemale
}
