// Package services contains application services for the agent terminal:
// validation capture and batch sync on one side, authentication on the other.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/taxfree-rdc/customs-agent/internal/agent/client"
	"github.com/taxfree-rdc/customs-agent/internal/agent/models"
	"github.com/taxfree-rdc/customs-agent/internal/agent/store"
	"github.com/taxfree-rdc/customs-agent/internal/common"
	"github.com/taxfree-rdc/customs-agent/internal/logging"
)

// SyncSummary is what the operator sees after a sync attempt: how many
// records were sent and how the server judged each of them.
type SyncSummary struct {
	BatchID    string
	Sent       int
	Successful int
	Conflicts  int
	Errors     int
}

// ValidationService owns the offline validation buffer: capture, review, and
// the batch sync reconciliation.
type ValidationService interface {
	// Capture buffers a decision. Always permitted, online or offline.
	Capture(ctx context.Context, draft models.ValidationRecord) error

	// Pending returns unsynced records that will go into the next batch
	// (conflict-tagged records are listed separately).
	Pending(ctx context.Context) ([]models.ValidationRecord, error)

	// Conflicts returns records the server rejected as already decided.
	Conflicts(ctx context.Context) ([]models.ValidationRecord, error)

	// DeleteByID removes one pending record.
	DeleteByID(ctx context.Context, id string) error

	// Clear removes all pending records, leaving conflicts in place.
	Clear(ctx context.Context) error

	// Dismiss acknowledges a conflict record and removes it. The server's
	// decision is final; dismissal is the only way a conflict leaves the
	// buffer.
	Dismiss(ctx context.Context, id string) error

	// Sync pushes all eligible records in one batch and reconciles the
	// response into the store. A transport failure leaves the buffer
	// untouched.
	Sync(ctx context.Context) (*SyncSummary, error)

	// Lookup fetches a bordereau online by its human-readable number.
	Lookup(ctx context.Context, formNumber string) (*models.Form, error)

	// DecideOnline records a single decision directly on the backend,
	// bypassing the buffer. Used when the checkpoint has connectivity.
	DecideOnline(ctx context.Context, formID string, p models.DecisionPayload) error
}

type validationService struct {
	client client.Client
	store  store.Store
	logger logging.Logger
}

func NewValidationService(client client.Client, st store.Store, logger logging.Logger) ValidationService {
	return &validationService{client: client, store: st, logger: logger}
}

func (s *validationService) Capture(ctx context.Context, draft models.ValidationRecord) error {
	switch draft.Decision {
	case models.DecisionValidated, models.DecisionRefused:
	default:
		return common.ErrUnknownDecision
	}
	if draft.Decision == models.DecisionRefused && draft.RefusalReason == "" {
		return common.ErrMissingRefusalReason
	}

	if draft.CapturedAt.IsZero() {
		draft.CapturedAt = time.Now().UTC()
	}

	if err := s.store.Append(ctx, draft); err != nil {
		return fmt.Errorf("saving error: %w", err)
	}
	return nil
}

func (s *validationService) Lookup(ctx context.Context, formNumber string) (*models.Form, error) {
	form, err := s.client.LookupForm(ctx, formNumber)
	if err != nil {
		return nil, fmt.Errorf("lookup error: %w", err)
	}
	return form, nil
}

func (s *validationService) DecideOnline(ctx context.Context, formID string, p models.DecisionPayload) error {
	if p.Decision == models.DecisionRefused && p.RefusalReason == "" {
		return common.ErrMissingRefusalReason
	}
	if err := s.client.Decide(ctx, formID, p); err != nil {
		return fmt.Errorf("decision error: %w", err)
	}
	return nil
}

func (s *validationService) Pending(ctx context.Context) ([]models.ValidationRecord, error) {
	recs, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving records: %w", err)
	}

	pending := make([]models.ValidationRecord, 0, len(recs))
	for _, r := range recs {
		if r.Eligible() {
			pending = append(pending, r)
		}
	}
	return pending, nil
}

func (s *validationService) Conflicts(ctx context.Context) ([]models.ValidationRecord, error) {
	recs, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving records: %w", err)
	}

	conflicts := make([]models.ValidationRecord, 0)
	for _, r := range recs {
		if r.Outcome == models.OutcomeConflict {
			conflicts = append(conflicts, r)
		}
	}
	return conflicts, nil
}

func (s *validationService) DeleteByID(ctx context.Context, id string) error {
	return s.removeWhere(ctx, func(r models.ValidationRecord) bool {
		return r.ID == id && r.Outcome != models.OutcomeConflict
	})
}

func (s *validationService) Dismiss(ctx context.Context, id string) error {
	return s.removeWhere(ctx, func(r models.ValidationRecord) bool {
		return r.ID == id && r.Outcome == models.OutcomeConflict
	})
}

func (s *validationService) Clear(ctx context.Context) error {
	recs, err := s.store.List(ctx)
	if err != nil {
		return fmt.Errorf("error retrieving records: %w", err)
	}

	kept := make([]models.ValidationRecord, 0, len(recs))
	for _, r := range recs {
		if r.Outcome == models.OutcomeConflict {
			kept = append(kept, r)
		}
	}
	return s.store.ReplaceAll(ctx, kept)
}

func (s *validationService) removeWhere(ctx context.Context, match func(models.ValidationRecord) bool) error {
	recs, err := s.store.List(ctx)
	if err != nil {
		return fmt.Errorf("error retrieving records: %w", err)
	}

	kept := make([]models.ValidationRecord, 0, len(recs))
	removed := false
	for _, r := range recs {
		if !removed && match(r) {
			removed = true
			continue
		}
		kept = append(kept, r)
	}
	if !removed {
		return common.ErrorNotFound
	}
	return s.store.ReplaceAll(ctx, kept)
}

func (s *validationService) Sync(ctx context.Context) (*SyncSummary, error) {
	recs, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving records: %w", err)
	}

	payloads := make([]models.OfflineValidationPayload, 0, len(recs))
	for _, r := range recs {
		if r.Eligible() {
			payloads = append(payloads, r.Payload())
		}
	}

	// Nothing to send: an empty batch never goes on the wire.
	if len(payloads) == 0 {
		return &SyncSummary{}, nil
	}

	batchID := uuid.NewString()
	s.logger.Info(ctx, "starting offline sync", "batch_id", batchID, "count", len(payloads))

	result, err := s.client.SyncOfflineValidations(ctx, models.OfflineSyncRequest{
		BatchID:     batchID,
		Validations: payloads,
	})
	if err != nil {
		// The buffer stays exactly as it was; the operator retries manually.
		s.logger.Error(ctx, "offline sync failed", "batch_id", batchID, "error", err)
		return nil, fmt.Errorf("sync error: %w", err)
	}

	errByForm := make(map[string]models.SyncError, len(result.Errors))
	for _, e := range result.Errors {
		errByForm[e.FormID] = e
	}

	summary := &SyncSummary{BatchID: batchID, Sent: len(payloads)}
	kept := make([]models.ValidationRecord, 0, len(recs))

	for _, r := range recs {
		if !r.Eligible() {
			// Conflict records from earlier batches stay untouched.
			kept = append(kept, r)
			continue
		}

		e, failed := errByForm[r.FormID]
		switch {
		case !failed:
			// No matching error entry means the server accepted it; the
			// record has served its purpose and leaves the buffer.
			summary.Successful++

		case e.IsConflict:
			r.Outcome = models.OutcomeConflict
			r.ErrorMessage = e.Message
			r.ServerValidation = e.ServerValidation
			summary.Conflicts++
			kept = append(kept, r)

		default:
			// Still unsynced: it will be included in the next batch.
			r.Outcome = models.OutcomeError
			r.ErrorMessage = e.Message
			summary.Errors++
			kept = append(kept, r)
		}
	}

	if err := s.store.ReplaceAll(ctx, kept); err != nil {
		return nil, fmt.Errorf("error updating buffer: %w", err)
	}

	s.logger.Info(ctx, "offline sync reconciled",
		"batch_id", batchID,
		"successful", summary.Successful,
		"conflicts", summary.Conflicts,
		"errors", summary.Errors,
	)
	return summary, nil
}
