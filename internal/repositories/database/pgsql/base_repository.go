package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories.
// Every write here is a single statement, so no explicit transactions are
// opened; row-level locking on UPDATE serialises concurrent writers.
type BaseRepository struct {
	Pool *pgxpool.Pool
}
