package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
)

const defaultTimeout = 10 * time.Second

// Config captures the settings for establishing the store connection.
type Config struct {
	DSN     string
	Timeout time.Duration
}

// Connect opens the database handle and verifies connectivity with a ping.
// parseTime is forced on so DATE and DATETIME columns scan into time.Time.
func Connect(ctx context.Context, cfg Config) (*sql.DB, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	dsnCfg, err := mysql.ParseDSN(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("mysql dsn: %w", err)
	}
	dsnCfg.ParseTime = true

	db, err := sql.Open("mysql", dsnCfg.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("mysql open: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("mysql ping: %w", err)
	}

	return db, nil
}

// withConn runs fn on a connection dedicated to this request and releases it
// on every exit path. Statements that depend on session state (the access
// procedure's output parameters) must share one connection, which the pooled
// *sql.DB does not guarantee on its own.
func withConn(ctx context.Context, db *sql.DB, fn func(conn *sql.Conn) error) error {
	conn, err := db.Conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()
	return fn(conn)
}

// isDuplicateKey reports whether err is a MySQL unique-constraint violation.
func isDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}
