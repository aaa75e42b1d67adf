package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/taxfree-rdc/customs-agent/internal/agent/models"
)

// FileStore persists the buffer as one JSON document: an array of validation
// records, rewritten whole on every mutation. The document survives process
// restarts, which is the whole point of the offline buffer.
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore backed by the given file path. The parent
// directory is created if missing; the file itself is created lazily on the
// first Append.
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) load() ([]models.ValidationRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.ValidationRecord{}, nil
		}
		return nil, fmt.Errorf("failed to read buffer: %w", err)
	}

	var recs []models.ValidationRecord
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("failed to decode buffer: %w", err)
	}
	return recs, nil
}

// save writes the document atomically: temp file in the same directory, then
// rename over the target, so a crash mid-write never truncates the buffer.
func (s *FileStore) save(recs []models.ValidationRecord) error {
	data, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("failed to encode buffer: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".buffer-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write buffer: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace buffer: %w", err)
	}
	return nil
}

func (s *FileStore) List(ctx context.Context) ([]models.ValidationRecord, error) {
	return s.load()
}

func (s *FileStore) Append(ctx context.Context, rec models.ValidationRecord) error {
	recs, err := s.load()
	if err != nil {
		return err
	}

	rec.ID = uuid.NewString()
	rec.Synced = false
	rec.Outcome = ""
	rec.ErrorMessage = ""
	rec.ServerValidation = nil

	return s.save(append(recs, rec))
}

func (s *FileStore) ReplaceAll(ctx context.Context, recs []models.ValidationRecord) error {
	if recs == nil {
		recs = []models.ValidationRecord{}
	}
	return s.save(recs)
}
