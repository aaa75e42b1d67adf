package cli

import (
	"context"
	"fmt"
	"log"
)

// Sync pushes the whole buffer to the server in one batch. The command is
// gated: it needs a session, connectivity, and no sync already in flight.
// A transport failure leaves every record in place; the operator retries.
func (a *App) Sync(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Please login first")
		return nil
	}
	if !a.isOnline() {
		printlnFn("Offline: sync is unavailable. Decisions stay buffered.")
		return nil
	}
	if a.syncInFlight {
		printlnFn("Sync already in progress")
		return nil
	}

	a.syncInFlight = true
	defer func() { a.syncInFlight = false }()

	summary, err := a.validationService.Sync(ctx)
	if err != nil {
		log.Printf("Sync failed: %v. All records kept; retry when the connection is stable.", err)
		return err
	}

	if summary.Sent == 0 {
		printlnFn("Nothing to sync")
		return nil
	}

	printlnFn(fmt.Sprintf("Sync %s: %d sent, %d accepted, %d conflicts, %d errors",
		summary.BatchID, summary.Sent, summary.Successful, summary.Conflicts, summary.Errors))
	if summary.Conflicts > 0 {
		printlnFn("Run 'conflicts' to review decisions already taken by another agent")
	}
	return nil
}
