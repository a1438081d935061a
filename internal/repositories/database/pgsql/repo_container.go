package pgsql

import (
	portsrepo "github.com/SscSPs/savings_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/savings_tracker/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	ledgerRepo := newPgxLedgerRepository(dbPool)
	targetRepo := newPgxTargetRepository(dbPool)
	scheduleRepo := newPgxScheduleRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		LedgerRepo:    ledgerRepo,
		TargetRepo:    targetRepo,
		ScheduleRepo:  scheduleRepo,
		ReportingRepo: reportingRepo,
		Closer:        database.PoolCloser{Pool: dbPool},
	}
}
