package mysql

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/clinicadelvalle/clinic-api/internal/core/domain"
)

type MedicRepository struct {
	db *sql.DB
}

func NewMedicRepository(db *sql.DB) *MedicRepository {
	return &MedicRepository{db: db}
}

func (r *MedicRepository) Search(ctx context.Context, term string, includeInactive bool) ([]*domain.Medic, error) {
	query := "SELECT Id, Nombre_Completo, Especialidad, Cedula, Activo FROM Medicos"

	var conditions []string
	var args []any
	if !includeInactive {
		conditions = append(conditions, "Activo = 1")
	}
	if term != "" {
		conditions = append(conditions, "(LOWER(Nombre_Completo) LIKE ? OR LOWER(Cedula) LIKE ?)")
		pattern := "%" + strings.ToLower(term) + "%"
		args = append(args, pattern, pattern)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY Nombre_Completo ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	medics := make([]*domain.Medic, 0)
	for rows.Next() {
		var m domain.Medic
		if err := rows.Scan(&m.ID, &m.FullName, &m.Specialty, &m.License, &m.Active); err != nil {
			return nil, err
		}
		medics = append(medics, &m)
	}
	return medics, rows.Err()
}

func (r *MedicRepository) FindByID(ctx context.Context, id int64) (*domain.Medic, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT Id, Nombre_Completo, Especialidad, Cedula, Activo FROM Medicos WHERE Id = ?", id)

	var m domain.Medic
	if err := row.Scan(&m.ID, &m.FullName, &m.Specialty, &m.License, &m.Active); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMedicNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *MedicRepository) Create(ctx context.Context, m *domain.Medic) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO Medicos (Nombre_Completo, Especialidad, Cedula, Activo) VALUES (?, ?, ?, 1)",
		m.FullName, m.Specialty, m.License,
	)
	if err != nil {
		if isDuplicateKey(err) {
			return domain.ErrDuplicateLicense
		}
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = id
	m.Active = true
	return nil
}

// Update rewrites the medic's editable columns. RowsAffected is not
// consulted: MySQL reports zero for a no-change update, and existence was
// already established by the preceding FindByID.
func (r *MedicRepository) Update(ctx context.Context, m *domain.Medic) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE Medicos SET Nombre_Completo = ?, Especialidad = ?, Cedula = ? WHERE Id = ?",
		m.FullName, m.Specialty, m.License, m.ID,
	)
	if err != nil && isDuplicateKey(err) {
		return domain.ErrDuplicateLicense
	}
	return err
}

func (r *MedicRepository) Deactivate(ctx context.Context, id int64) error {
	return withConn(ctx, r.db, func(conn *sql.Conn) error {
		var exists bool
		if err := conn.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM Medicos WHERE Id = ?)", id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return domain.ErrMedicNotFound
		}
		_, err := conn.ExecContext(ctx, "UPDATE Medicos SET Activo = 0 WHERE Id = ?", id)
		return err
	})
}
