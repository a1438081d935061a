package sqlite

import (
	"database/sql"

	portsrepo "github.com/SscSPs/savings_tracker/internal/core/ports/repositories"
)

// NewRepositoryProvider builds every repository on top of one SQLite handle.
func NewRepositoryProvider(db *sql.DB) portsrepo.RepositoryProvider {
	ledgerRepo := newSQLiteLedgerRepository(db)
	return portsrepo.RepositoryProvider{
		LedgerRepo:    ledgerRepo,
		TargetRepo:    newSQLiteTargetRepository(db),
		ScheduleRepo:  newSQLiteScheduleRepository(db),
		ReportingRepo: newReportingRepository(db),
		Closer:        db,
	}
}
