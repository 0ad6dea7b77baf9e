package client

// Patient mirrors the API's patient shape. Dates are yyyy-MM-dd strings.
type Patient struct {
	ID              int64  `json:"id"`
	NombreCompleto  string `json:"nombreCompleto"`
	Identificador   string `json:"identificador"`
	FechaNacimiento string `json:"fechaNacimiento"`
	Sexo            string `json:"sexo"`
	FechaAlta       string `json:"fechaAlta"`
}

// CreatePatientPayload is the body for patient registration.
type CreatePatientPayload struct {
	NombreCompleto  string `json:"nombreCompleto"`
	Identificador   string `json:"identificador"`
	FechaNacimiento string `json:"fechaNacimiento"`
	Sexo            string `json:"sexo"`
}

// Consultation mirrors the API's consultation shape. Fecha is RFC 3339 UTC.
type Consultation struct {
	ID         int64  `json:"id"`
	PacienteID int64  `json:"pacienteId"`
	Fecha      string `json:"fecha"`
	Notas      string `json:"notas"`
}

// CreateConsultationPayload is the body for consultation registration. Fecha
// is optional; the server defaults it to the current time.
type CreateConsultationPayload struct {
	PacienteID int64  `json:"pacienteId"`
	Notas      string `json:"notas"`
	Fecha      string `json:"fecha,omitempty"`
}

// HistoryEntry is a consultation joined with its patient summary.
type HistoryEntry struct {
	Consultation
	Paciente Patient `json:"paciente"`
}

// User is the identity returned by a successful login.
type User struct {
	ID             int64  `json:"id"`
	Correo         string `json:"correo"`
	NombreCompleto string `json:"nombreCompleto"`
}

// LoginResult carries the login verdict message and the matched user.
type LoginResult struct {
	Message string `json:"message"`
	Usuario *User  `json:"usuario"`
}

// Medic mirrors the API's medic shape.
type Medic struct {
	ID             int64  `json:"id"`
	NombreCompleto string `json:"nombreCompleto"`
	Especialidad   string `json:"especialidad"`
	Cedula         string `json:"cedula"`
	Activo         bool   `json:"activo"`
}

// MedicPayload is the body for medic create and update.
type MedicPayload struct {
	NombreCompleto string `json:"nombreCompleto"`
	Especialidad   string `json:"especialidad"`
	Cedula         string `json:"cedula"`
}

// UserAccount mirrors the API's user-account shape.
type UserAccount struct {
	ID             int64  `json:"id"`
	Correo         string `json:"correo"`
	NombreCompleto string `json:"nombreCompleto"`
	Activo         bool   `json:"activo"`
}

// UserPayload is the body for account create and update. Password is
// required on create and optional on update.
type UserPayload struct {
	Correo         string `json:"correo"`
	NombreCompleto string `json:"nombreCompleto"`
	Password       string `json:"password,omitempty"`
}
