package mysql

import (
	"context"
	"database/sql"
	"time"

	"github.com/clinicadelvalle/clinic-api/internal/core/domain"
)

type ConsultationRepository struct {
	db *sql.DB
}

func NewConsultationRepository(db *sql.DB) *ConsultationRepository {
	return &ConsultationRepository{db: db}
}

func (r *ConsultationRepository) ListByPatient(ctx context.Context, patientID int64, limit int) ([]*domain.Consultation, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT Id, Id_Paciente, Fecha, Notas FROM Consultas WHERE Id_Paciente = ? ORDER BY Fecha DESC LIMIT ?",
		patientID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	consultations := make([]*domain.Consultation, 0)
	for rows.Next() {
		var c domain.Consultation
		if err := rows.Scan(&c.ID, &c.PatientID, &c.OccurredAt, &c.Notes); err != nil {
			return nil, err
		}
		consultations = append(consultations, &c)
	}
	return consultations, rows.Err()
}

// History joins each consultation with its patient summary. The bounds are
// optional; the WHERE clause is built only from the ones present.
func (r *ConsultationRepository) History(ctx context.Context, from, to *time.Time) ([]*domain.ConsultationWithPatient, error) {
	query := `SELECT c.Id, c.Id_Paciente, c.Fecha, c.Notas,
		p.Id, p.Nombre_Completo, p.Identificador, p.Fecha_Nacimiento, p.Sexo, p.Fecha_Alta
		FROM Consultas c
		JOIN Pacientes p ON c.Id_Paciente = p.Id`

	var conditions []string
	var args []any
	if from != nil {
		conditions = append(conditions, "c.Fecha >= ?")
		args = append(args, *from)
	}
	if to != nil {
		conditions = append(conditions, "c.Fecha <= ?")
		args = append(args, *to)
	}
	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY c.Fecha DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*domain.ConsultationWithPatient, 0)
	for rows.Next() {
		var e domain.ConsultationWithPatient
		err := rows.Scan(
			&e.ID, &e.PatientID, &e.OccurredAt, &e.Notes,
			&e.Patient.ID, &e.Patient.FullName, &e.Patient.Identifier,
			&e.Patient.BirthDate, &e.Patient.Sex, &e.Patient.RegisteredAt,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

// Create runs the patient existence check and the insert inside a single
// transaction so a patient removed in between cannot leave an orphan row.
func (r *ConsultationRepository) Create(ctx context.Context, c *domain.Consultation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists bool
	err = tx.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM Pacientes WHERE Id = ?)", c.PatientID).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrPatientNotFound
	}

	res, err := tx.ExecContext(ctx,
		"INSERT INTO Consultas (Id_Paciente, Fecha, Notas) VALUES (?, ?, ?)",
		c.PatientID, c.OccurredAt, c.Notes,
	)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = id

	return tx.Commit()
}
