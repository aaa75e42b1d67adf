package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/taxfree-rdc/customs-agent/internal/agent/models"
)

func TestGetStatus(t *testing.T) {
	a := &App{}
	assert.Equal(t, "", a.getStatus())

	a.Mode = ModeOffline
	assert.Equal(t, "(offline)", a.getStatus())

	a.session = &models.Session{AgentName: "M. Kabongo"}
	a.Mode = ModeOnline
	assert.Equal(t, "(M. Kabongo online)", a.getStatus())
}

func TestFormatRecord(t *testing.T) {
	captured := time.Date(2025, 11, 3, 9, 30, 0, 0, time.UTC)

	r := models.ValidationRecord{
		FormNumber:    "TF-1",
		Decision:      models.DecisionRefused,
		RefusalReason: models.RefusalExpired,
		TravelerName:  "A. Kalala",
		CapturedAt:    captured,
	}
	s := formatRecord(r)
	assert.Contains(t, s, "TF-1")
	assert.Contains(t, s, "REFUSED")
	assert.Contains(t, s, "EXPIRED")
	assert.Contains(t, s, "A. Kalala")
	assert.Contains(t, s, "2025-11-03 09:30")

	r.Outcome = models.OutcomeError
	r.ErrorMessage = "Bordereau non trouvé"
	assert.Contains(t, formatRecord(r), "retry: Bordereau non trouvé")
}

func TestFormatConflict(t *testing.T) {
	decided := time.Date(2025, 11, 2, 17, 0, 0, 0, time.UTC)
	r := models.ValidationRecord{
		FormNumber: "TF-2",
		Decision:   models.DecisionValidated,
		Outcome:    models.OutcomeConflict,
		ServerValidation: &models.ServerValidation{
			Decision:    models.DecisionRefused,
			AgentName:   "J. Ilunga",
			PointOfExit: "Kasumbalesa",
			DecidedAt:   &decided,
		},
	}
	s := formatConflict(r)
	assert.Contains(t, s, "TF-2")
	assert.Contains(t, s, "local:VALIDATED")
	assert.Contains(t, s, "server:REFUSED")
	assert.Contains(t, s, "J. Ilunga")
	assert.Contains(t, s, "Kasumbalesa")
}
