package cli

import (
	"context"
	"fmt"
	"log"
)

// Status prints the session, mode, and buffer counters.
func (a *App) Status(ctx context.Context) error {
	if a.session != nil {
		printlnFn(fmt.Sprintf("Agent: %s  role: %s  point of exit: %s",
			a.session.AgentName, a.session.Role, a.session.PointOfExit))
		if !a.session.ExpiresAt.IsZero() {
			printlnFn("Session expires: " + a.session.ExpiresAt.Format("2006-01-02 15:04"))
		}
	} else {
		printlnFn("Not logged in")
	}

	printlnFn("Mode: " + string(a.Mode))

	pending, err := a.validationService.Pending(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	conflicts, err := a.validationService.Conflicts(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	printlnFn(fmt.Sprintf("Pending: %d  conflicts: %d", len(pending), len(conflicts)))
	return nil
}
