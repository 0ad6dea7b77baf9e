package mysql

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/clinicadelvalle/clinic-api/internal/core/domain"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Search(ctx context.Context, term string, includeInactive bool) ([]*domain.UserAccount, error) {
	query := "SELECT Id, Correo, Nombre_Completo, Password_Hash, Activo FROM Usuarios"

	var conditions []string
	var args []any
	if !includeInactive {
		conditions = append(conditions, "Activo = 1")
	}
	if term != "" {
		conditions = append(conditions, "(LOWER(Nombre_Completo) LIKE ? OR LOWER(Correo) LIKE ?)")
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

	accounts := make([]*domain.UserAccount, 0)
	for rows.Next() {
		var u domain.UserAccount
		if err := rows.Scan(&u.ID, &u.Email, &u.FullName, &u.PasswordHash, &u.Active); err != nil {
			return nil, err
		}
		accounts = append(accounts, &u)
	}
	return accounts, rows.Err()
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.UserAccount, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT Id, Correo, Nombre_Completo, Password_Hash, Activo FROM Usuarios WHERE Id = ?", id)

	var u domain.UserAccount
	if err := row.Scan(&u.ID, &u.Email, &u.FullName, &u.PasswordHash, &u.Active); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *domain.UserAccount) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO Usuarios (Correo, Nombre_Completo, Password_Hash, Activo) VALUES (?, ?, ?, 1)",
		u.Email, u.FullName, u.PasswordHash,
	)
	if err != nil {
		if isDuplicateKey(err) {
			return domain.ErrDuplicateEmail
		}
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	u.ID = id
	u.Active = true
	return nil
}

// Update rewrites the account columns. Existence is established by the
// service's preceding FindByID.
func (r *UserRepository) Update(ctx context.Context, u *domain.UserAccount) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE Usuarios SET Correo = ?, Nombre_Completo = ?, Password_Hash = ? WHERE Id = ?",
		u.Email, u.FullName, u.PasswordHash, u.ID,
	)
	if err != nil && isDuplicateKey(err) {
		return domain.ErrDuplicateEmail
	}
	return err
}

func (r *UserRepository) Deactivate(ctx context.Context, id int64) error {
	return withConn(ctx, r.db, func(conn *sql.Conn) error {
		var exists bool
		if err := conn.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM Usuarios WHERE Id = ?)", id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return domain.ErrUserNotFound
		}
		_, err := conn.ExecContext(ctx, "UPDATE Usuarios SET Activo = 0 WHERE Id = ?", id)
		return err
	})
}
