// Package models holds the row shapes used by the SQLite store, where money
// and time are persisted as TEXT.
package models

// TimestampLayout is the fixed-width, lexically sortable UTC layout used for
// timestamp columns.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Transaction is a row of the transactions table.
type Transaction struct {
	TransactionID int64
	Kind          string
	Amount        string
	Category      string
	Description   string
	OccurredAt    string
	CreatedAt     string
}

// AuditFields holds the bookkeeping columns of mutable rows.
type AuditFields struct {
	CreatedAt     string
	LastUpdatedAt string
}

// Target is a row of the targets table.
type Target struct {
	TargetID      int64
	Name          string
	TargetAmount  string
	CurrentAmount string
	TargetDate    string
	Status        string
	AuditFields
}

// Schedule is a row of the schedules table.
type Schedule struct {
	ScheduleID  int64
	Kind        string
	Amount      string
	Frequency   string
	NextDate    string
	Description string
	IsActive    bool
	AuditFields
}
