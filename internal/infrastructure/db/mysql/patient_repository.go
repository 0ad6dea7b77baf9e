package mysql

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/clinicadelvalle/clinic-api/internal/core/domain"
)

const patientColumns = "Id, Nombre_Completo, Identificador, Fecha_Nacimiento, Sexo, Fecha_Alta"

type PatientRepository struct {
	db *sql.DB
}

func NewPatientRepository(db *sql.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

func (r *PatientRepository) Search(ctx context.Context, term string) ([]*domain.Patient, error) {
	query := "SELECT " + patientColumns + " FROM Pacientes"
	var args []any
	if term != "" {
		query += " WHERE LOWER(Nombre_Completo) LIKE ? OR LOWER(Identificador) LIKE ?"
		pattern := "%" + strings.ToLower(term) + "%"
		args = append(args, pattern, pattern)
	}
	query += " ORDER BY Nombre_Completo ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	patients := make([]*domain.Patient, 0)
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		patients = append(patients, p)
	}
	return patients, rows.Err()
}

func (r *PatientRepository) FindByID(ctx context.Context, id int64) (*domain.Patient, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+patientColumns+" FROM Pacientes WHERE Id = ?", id)

	var p domain.Patient
	err := row.Scan(&p.ID, &p.FullName, &p.Identifier, &p.BirthDate, &p.Sex, &p.RegisteredAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPatientNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Create inserts the patient with a store-assigned registration date and
// reads both generated values back on the same connection.
func (r *PatientRepository) Create(ctx context.Context, p *domain.Patient) error {
	return withConn(ctx, r.db, func(conn *sql.Conn) error {
		res, err := conn.ExecContext(ctx,
			"INSERT INTO Pacientes (Nombre_Completo, Identificador, Fecha_Nacimiento, Sexo, Fecha_Alta) VALUES (?, ?, ?, ?, CURDATE())",
			p.FullName, p.Identifier, p.BirthDate, p.Sex,
		)
		if err != nil {
			if isDuplicateKey(err) {
				return domain.ErrDuplicateIdentifier
			}
			return err
		}

		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		p.ID = id

		return conn.QueryRowContext(ctx, "SELECT Fecha_Alta FROM Pacientes WHERE Id = ?", id).Scan(&p.RegisteredAt)
	})
}

// rowScanner lets scanPatient work over both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPatient(rs rowScanner) (*domain.Patient, error) {
	var p domain.Patient
	if err := rs.Scan(&p.ID, &p.FullName, &p.Identifier, &p.BirthDate, &p.Sex, &p.RegisteredAt); err != nil {
		return nil, err
	}
	return &p, nil
}
