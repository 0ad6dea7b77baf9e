package mysql

import (
	"context"
	"database/sql"

	"github.com/clinicadelvalle/clinic-api/internal/core/domain"
	"github.com/clinicadelvalle/clinic-api/internal/core/ports"
)

// AuthRepository wraps the store's access-validation procedure. The procedure
// takes the credentials, writes its verdict into @pMsg / @pResultado and, on a
// match, returns the user row (Id, Correo, Nombre_Completo).
type AuthRepository struct {
	db *sql.DB
}

func NewAuthRepository(db *sql.DB) *AuthRepository {
	return &AuthRepository{db: db}
}

// ValidateAccess calls procUsuariosValidarAcceso and reads its output
// parameters. The CALL and the parameter read are session-scoped, so both run
// on the same dedicated connection.
func (r *AuthRepository) ValidateAccess(ctx context.Context, email, password string) (*ports.AccessResult, error) {
	var result ports.AccessResult

	err := withConn(ctx, r.db, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx,
			"CALL procUsuariosValidarAcceso(?, ?, @pMsg, @pResultado)",
			email, password,
		)
		if err != nil {
			return err
		}

		if rows.Next() {
			var u domain.User
			if err := rows.Scan(&u.ID, &u.Email, &u.FullName); err != nil {
				rows.Close()
				return err
			}
			result.User = &u
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return err
		}
		if err := rows.Close(); err != nil {
			return err
		}

		var msg sql.NullString
		var verdict sql.NullInt64
		if err := conn.QueryRowContext(ctx, "SELECT @pMsg, @pResultado").Scan(&msg, &verdict); err != nil {
			return err
		}
		result.Message = msg.String
		result.Matched = verdict.Valid && verdict.Int64 != 0
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
