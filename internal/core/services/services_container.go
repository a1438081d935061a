package services

import (
	portsrepo "github.com/SscSPs/savings_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/savings_tracker/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, options ...Option) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Ledger:    NewLedgerService(repos.LedgerRepo, options...),
		Target:    NewTargetService(repos.TargetRepo, options...),
		Schedule:  NewScheduleService(repos.ScheduleRepo, options...),
		Reporting: NewReportingService(repos.LedgerRepo, repos.ReportingRepo, options...),
	}
}
