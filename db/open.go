// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/danielhkuo/granizado-menu/models"
)

// Open opens a database connection for the configured backend.
// The caller must have registered the matching driver (blank import).
func Open(databaseType, databaseURL string) (*sql.DB, error) {
	switch databaseType {
	case models.DatabaseSQLite:
		conn, err := sql.Open("sqlite", sqliteDSN(databaseURL))
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		// SQLite allows a single writer; a pool of one avoids SQLITE_BUSY.
		conn.SetMaxOpenConns(1)
		return conn, nil
	case models.DatabasePostgres:
		conn, err := sql.Open("postgres", databaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres database: %w", err)
		}
		return conn, nil
	default:
		return nil, fmt.Errorf("unsupported database type: %s", databaseType)
	}
}

// sqliteDSN ensures foreign key enforcement is enabled on every connection,
// otherwise ON DELETE CASCADE is silently ignored.
func sqliteDSN(path string) string {
	dsn := path
	if !strings.HasPrefix(dsn, "file:") {
		dsn = "file:" + dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_pragma=foreign_keys(1)"
	}
	return dsn + "?_pragma=foreign_keys(1)"
}
