package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/taxfree-rdc/customs-agent/internal/agent/models"
)

// Conflicts lists decisions the server rejected because another agent decided
// first. The server decision is final; these wait for an explicit dismissal.
func (a *App) Conflicts(ctx context.Context) error {
	recs, err := a.validationService.Conflicts(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if len(recs) == 0 {
		printlnFn("No conflicts")
		return nil
	}

	for n, r := range recs {
		printlnFn(fmt.Sprintf("%d. %s", n+1, formatConflict(r)))
	}
	return nil
}

// Dismiss acknowledges one conflict and removes it from the buffer.
func (a *App) Dismiss(ctx context.Context) error {
	recs, err := a.validationService.Conflicts(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if len(recs) == 0 {
		printlnFn("No conflicts")
		return nil
	}

	idx, err := GetIndex(a.reader, fmt.Sprintf("Number to dismiss (1-%d)", len(recs)), len(recs), os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if err := a.validationService.Dismiss(ctx, recs[idx].ID); err != nil {
		log.Printf("error dismissing conflict: %v", err)
		return err
	}
	log.Printf("Conflict on form %s dismissed", recs[idx].FormNumber)
	return nil
}

func formatConflict(r models.ValidationRecord) string {
	s := fmt.Sprintf("%s local:%s", r.FormNumber, r.Decision)
	if sv := r.ServerValidation; sv != nil {
		s += fmt.Sprintf(" server:%s by %s", sv.Decision, sv.AgentName)
		if sv.PointOfExit != "" {
			s += " at " + sv.PointOfExit
		}
		if sv.DecidedAt != nil {
			s += " on " + sv.DecidedAt.Format("2006-01-02 15:04")
		}
	}
	return s
}
