package cli

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/taxfree-rdc/customs-agent/internal/agent/models"
)

// Validate captures a VALIDATED decision into the local buffer.
func (a *App) Validate(ctx context.Context) error {
	return a.capture(ctx, models.DecisionValidated)
}

// Refuse captures a REFUSED decision into the local buffer.
func (a *App) Refuse(ctx context.Context) error {
	return a.capture(ctx, models.DecisionRefused)
}

func (a *App) capture(ctx context.Context, decision models.Decision) error {
	if !a.isLoggedIn() {
		printlnFn("Please login first")
		return nil
	}

	draft := models.ValidationRecord{Decision: decision}

	formID, err := GetSimpleText(a.reader, "Scan or enter form id", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	draft.FormID = formID

	draft.FormNumber, err = GetSimpleText(a.reader, "Form number", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	draft.TravelerName, err = GetSimpleText(a.reader, "Traveler name (optional)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if decision == models.DecisionRefused {
		options := make([]string, len(models.RefusalReasons))
		for n, r := range models.RefusalReasons {
			options[n] = string(r)
		}
		idx, err := GetChoice(a.reader, "Refusal reason", options, os.Stdout)
		if err != nil {
			log.Printf("error: %v", err)
			return err
		}
		draft.RefusalReason = models.RefusalReasons[idx]

		draft.RefusalDetails, err = GetSimpleText(a.reader, "Refusal details (optional)", os.Stdout)
		if err != nil {
			log.Printf("error: %v", err)
			return err
		}
	}

	draft.PhysicalControlDone, err = GetBool(a.reader, "Physical control done?", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if draft.PhysicalControlDone {
		draft.ControlNotes, err = GetSimpleText(a.reader, "Control notes (optional)", os.Stdout)
		if err != nil {
			log.Printf("error: %v", err)
			return err
		}
	}

	draft.CapturedAt = time.Now().UTC()

	if err := a.validationService.Capture(ctx, draft); err != nil {
		log.Printf("error saving decision: %v", err)
		return err
	}

	log.Printf("Decision %s buffered for form %s", decision, draft.FormNumber)
	return nil
}
