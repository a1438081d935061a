package repositories

import "io"

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	LedgerRepo    LedgerRepositoryFacade
	TargetRepo    TargetRepositoryFacade
	ScheduleRepo  ScheduleRepositoryFacade
	ReportingRepo ReportingRepository

	// Closer releases the underlying database handle.
	Closer io.Closer
}
