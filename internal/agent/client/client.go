package client

import (
	"context"

	"github.com/taxfree-rdc/customs-agent/internal/agent/models"
)

type Client interface {
	Close() error

	// Login exchanges credentials for a token pair. The returned session
	// carries the raw tokens; claim decoding is the auth service's job.
	Login(ctx context.Context, email, password string) (*models.Session, error)

	// Resume installs a previously persisted session on the client.
	// A nil session clears any installed tokens.
	Resume(s *models.Session)

	// Ping probes backend reachability. Used by the connectivity watcher.
	Ping(ctx context.Context) error

	// LookupForm fetches a bordereau by its human-readable number.
	LookupForm(ctx context.Context, formNumber string) (*models.Form, error)

	// Decide records a single online decision on a form.
	Decide(ctx context.Context, formID string, p models.DecisionPayload) error

	// SyncOfflineValidations pushes a whole offline batch in one request.
	SyncOfflineValidations(ctx context.Context, req models.OfflineSyncRequest) (*models.OfflineSyncResult, error)
}
