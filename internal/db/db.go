package db

import "database/sql"

// DB wraps the shared connection pool so stores depend on one type
// instead of *sql.DB directly.
type DB struct {
	*sql.DB
}
