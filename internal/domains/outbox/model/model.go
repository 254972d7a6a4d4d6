package model

import (
	"database/sql"
	"time"

	gModel "studio/shared/model"
)

const (
	TableName  = "notification_outbox"
	EntityName = "outbox"

	FieldID            = "id"
	FieldStatus        = "status"
	FieldNextAttemptAt = "next_attempt_at"
)

type Status string

const (
	StatusQueued Status = "Queued"
	StatusSent   Status = "Sent"
	StatusFailed Status = "Failed"
)

func (s Status) String() string {
	return string(s)
}

// OutboxMessage is one durably queued notification. A row stays Queued
// until the worker delivers it or exhausts its attempts.
type OutboxMessage struct {
	ID            string         `db:"id"`
	Recipient     string         `db:"recipient"`
	Subject       string         `db:"subject"`
	Body          string         `db:"body"`
	Status        Status         `db:"status"`
	Attempts      int            `db:"attempts"`
	LastError     sql.NullString `db:"last_error"`
	NextAttemptAt time.Time      `db:"next_attempt_at"`
	gModel.Metadata
}
