package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/taxfree-rdc/customs-agent/internal/agent/models"
)

// MemoryStore is an in-memory Store for tests and ephemeral runs.
type MemoryStore struct {
	recs []models.ValidationRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{recs: []models.ValidationRecord{}}
}

func (s *MemoryStore) List(ctx context.Context) ([]models.ValidationRecord, error) {
	out := make([]models.ValidationRecord, len(s.recs))
	copy(out, s.recs)
	return out, nil
}

func (s *MemoryStore) Append(ctx context.Context, rec models.ValidationRecord) error {
	rec.ID = uuid.NewString()
	rec.Synced = false
	rec.Outcome = ""
	rec.ErrorMessage = ""
	rec.ServerValidation = nil
	s.recs = append(s.recs, rec)
	return nil
}

func (s *MemoryStore) ReplaceAll(ctx context.Context, recs []models.ValidationRecord) error {
	s.recs = make([]models.ValidationRecord, len(recs))
	copy(s.recs, recs)
	return nil
}
