package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/taxfree-rdc/customs-agent/internal/agent/models"
)

// Pending lists the buffered decisions that will go into the next batch.
func (a *App) Pending(ctx context.Context) error {
	recs, err := a.validationService.Pending(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if len(recs) == 0 {
		printlnFn("No pending decisions")
		return nil
	}

	for n, r := range recs {
		printlnFn(fmt.Sprintf("%d. %s", n+1, formatRecord(r)))
	}
	return nil
}

// Delete removes one pending decision, selected by list position.
func (a *App) Delete(ctx context.Context) error {
	recs, err := a.validationService.Pending(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if len(recs) == 0 {
		printlnFn("No pending decisions")
		return nil
	}

	idx, err := GetIndex(a.reader, fmt.Sprintf("Number to delete (1-%d)", len(recs)), len(recs), os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if err := a.validationService.DeleteByID(ctx, recs[idx].ID); err != nil {
		log.Printf("error deleting record: %v", err)
		return err
	}
	log.Printf("Deleted decision for form %s", recs[idx].FormNumber)
	return nil
}

// Clear removes all pending decisions; conflicts stay for review.
func (a *App) Clear(ctx context.Context) error {
	ok, err := GetBool(a.reader, "Delete ALL pending decisions?", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if !ok {
		return nil
	}

	if err := a.validationService.Clear(ctx); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	log.Println("Pending decisions cleared")
	return nil
}

func formatRecord(r models.ValidationRecord) string {
	s := fmt.Sprintf("%s %s", r.FormNumber, r.Decision)
	if r.Decision == models.DecisionRefused && r.RefusalReason != "" {
		s += fmt.Sprintf(" (%s)", r.RefusalReason)
	}
	if r.TravelerName != "" {
		s += " " + r.TravelerName
	}
	s += " @ " + r.CapturedAt.Format("2006-01-02 15:04")
	if r.Outcome == models.OutcomeError {
		s += fmt.Sprintf(" [retry: %s]", r.ErrorMessage)
	}
	return s
}
