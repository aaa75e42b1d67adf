// Package store implements the local validation buffer: a durable,
// insertion-ordered list of validation records pending synchronization.
package store

import (
	"context"

	"github.com/taxfree-rdc/customs-agent/internal/agent/models"
)

// Store is the local validation buffer.
//
// There is exactly one writer (the UI loop) and mutations go through
// ReplaceAll after reconciliation, so implementations stay deliberately
// simple: no partial updates, no locking requirements beyond their own
// internal consistency.
type Store interface {
	// List returns all buffered records in insertion order.
	List(ctx context.Context) ([]models.ValidationRecord, error)

	// Append assigns a fresh identifier to rec, marks it unsynced, and
	// persists it at the end of the buffer.
	Append(ctx context.Context, rec models.ValidationRecord) error

	// ReplaceAll overwrites the whole buffer. Used after sync reconciliation
	// and operator deletions.
	ReplaceAll(ctx context.Context, recs []models.ValidationRecord) error
}
