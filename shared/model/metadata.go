package model

import "time"

// Metadata carries the audit timestamps shared by every persisted request
// record. CreatedAt is written once at creation; UpdatedAt is refreshed on
// every mutation, including status changes.
type Metadata struct {
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
