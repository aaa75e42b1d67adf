package models

import "time"

// OfflineValidationPayload is one element of the batch sync request body.
type OfflineValidationPayload struct {
	FormID              string        `json:"form_id"`
	Decision            Decision      `json:"decision"`
	RefusalReason       RefusalReason `json:"refusal_reason,omitempty"`
	RefusalDetails      string        `json:"refusal_details,omitempty"`
	PhysicalControlDone bool          `json:"physical_control_done"`
	ControlNotes        string        `json:"control_notes,omitempty"`

	// OfflineTimestamp carries the original capture time so the server can
	// judge ordering against decisions taken by other agents.
	OfflineTimestamp time.Time `json:"offline_timestamp"`
}

// Payload converts a buffered record into its wire form.
func (r ValidationRecord) Payload() OfflineValidationPayload {
	return OfflineValidationPayload{
		FormID:              r.FormID,
		Decision:            r.Decision,
		RefusalReason:       r.RefusalReason,
		RefusalDetails:      r.RefusalDetails,
		PhysicalControlDone: r.PhysicalControlDone,
		ControlNotes:        r.ControlNotes,
		OfflineTimestamp:    r.CapturedAt,
	}
}

// OfflineSyncRequest is the body of POST /api/customs/offline/sync/.
type OfflineSyncRequest struct {
	BatchID     string                     `json:"batch_id"`
	Validations []OfflineValidationPayload `json:"validations"`
}

// SyncError is one per-record failure in the batch sync response, matched back
// to the local record by form id.
type SyncError struct {
	FormID           string            `json:"form_id"`
	FormNumber       string            `json:"form_number,omitempty"`
	Message          string            `json:"error"`
	IsConflict       bool              `json:"is_conflict"`
	ServerValidation *ServerValidation `json:"server_validation,omitempty"`
}

// OfflineSyncResult is the body of the batch sync response.
type OfflineSyncResult struct {
	BatchID    string      `json:"batch_id"`
	Total      int         `json:"total"`
	Successful int         `json:"successful"`
	Failed     int         `json:"failed"`
	Errors     []SyncError `json:"errors"`
}

// DecisionPayload is the body of the online decide endpoint.
type DecisionPayload struct {
	Decision            Decision      `json:"decision"`
	RefusalReason       RefusalReason `json:"refusal_reason,omitempty"`
	RefusalDetails      string        `json:"refusal_details,omitempty"`
	PhysicalControlDone bool          `json:"physical_control_done"`
	ControlNotes        string        `json:"control_notes,omitempty"`
}
