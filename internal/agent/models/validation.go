// Package models defines client-side data models used by the customs agent
// terminal: buffered validation records, sync outcomes, and the wire types of
// the offline sync endpoint.
package models

import "time"

// Decision is the customs decision recorded on a bordereau.
type Decision string

const (
	DecisionValidated Decision = "VALIDATED"
	DecisionRefused   Decision = "REFUSED"
)

// RefusalReason is the coded ground for refusing a bordereau.
// Codes mirror the platform backend.
type RefusalReason string

const (
	RefusalExpired          RefusalReason = "EXPIRED"
	RefusalInvalidDocuments RefusalReason = "INVALID_DOCUMENTS"
	RefusalGoodsNotPresent  RefusalReason = "GOODS_NOT_PRESENT"
	RefusalGoodsMismatch    RefusalReason = "GOODS_MISMATCH"
	RefusalTravelerMismatch RefusalReason = "TRAVELER_MISMATCH"
	RefusalAlreadyValidated RefusalReason = "ALREADY_VALIDATED"
	RefusalSuspectedFraud   RefusalReason = "SUSPECTED_FRAUD"
	RefusalOther            RefusalReason = "OTHER"
)

// RefusalReasons lists all codes in presentation order.
var RefusalReasons = []RefusalReason{
	RefusalExpired,
	RefusalInvalidDocuments,
	RefusalGoodsNotPresent,
	RefusalGoodsMismatch,
	RefusalTravelerMismatch,
	RefusalAlreadyValidated,
	RefusalSuspectedFraud,
	RefusalOther,
}

// SyncOutcome tags a buffered record with the result of the last batch sync.
// A record carries no outcome until a sync response mentions it.
type SyncOutcome string

const (
	OutcomeSuccess  SyncOutcome = "success"
	OutcomeConflict SyncOutcome = "conflict"
	OutcomeError    SyncOutcome = "error"
)

// ServerValidation describes the decision already recorded server-side when a
// locally captured decision collides with one taken by another agent.
type ServerValidation struct {
	Decision    Decision   `json:"decision"`
	AgentName   string     `json:"agent_name"`
	DecidedAt   *time.Time `json:"decided_at,omitempty"`
	PointOfExit string     `json:"point_of_exit,omitempty"`
}

// ValidationRecord is a customs decision captured on the device and buffered
// until it is pushed to the backend in a sync batch.
//
// The ID is assigned once at creation and never changes. Synced starts false
// and only a batch sync response moves a record to one of the SyncOutcome
// states; the client never guesses.
type ValidationRecord struct {
	ID string `json:"id"`

	// Bordereau reference, as scanned or typed at the checkpoint.
	FormID       string `json:"form_id"`
	FormNumber   string `json:"form_number"`
	TravelerName string `json:"traveler_name,omitempty"`
	RefundAmount string `json:"refund_amount,omitempty"`
	Currency     string `json:"currency,omitempty"`

	Decision Decision `json:"decision"`

	// Set only when Decision is REFUSED.
	RefusalReason  RefusalReason `json:"refusal_reason,omitempty"`
	RefusalDetails string        `json:"refusal_details,omitempty"`

	PhysicalControlDone bool   `json:"physical_control_done"`
	ControlNotes        string `json:"control_notes,omitempty"`

	// CapturedAt is the client clock time at the decision moment (UTC).
	CapturedAt time.Time `json:"captured_at"`

	Synced           bool              `json:"synced"`
	Outcome          SyncOutcome       `json:"outcome,omitempty"`
	ErrorMessage     string            `json:"error_message,omitempty"`
	ServerValidation *ServerValidation `json:"server_validation,omitempty"`
}

// Eligible reports whether the record belongs in the next sync batch.
// Conflict records are excluded: the server decision is final and the record
// waits for an explicit dismissal.
func (r ValidationRecord) Eligible() bool {
	return !r.Synced && r.Outcome != OutcomeConflict
}
