package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

// Lookup fetches a bordereau by number. Online only.
func (a *App) Lookup(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Please login first")
		return nil
	}
	if !a.isOnline() {
		printlnFn("Offline: lookup is unavailable")
		return nil
	}

	number, err := GetSimpleText(a.reader, "Form number", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	form, err := a.validationService.Lookup(ctx, number)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	printlnFn(fmt.Sprintf("%s  %s  %s %s  traveler: %s",
		form.FormNumber, form.Status, form.RefundAmount, form.Currency, form.TravelerName))
	if form.ExpiresAt != nil {
		printlnFn("expires: " + form.ExpiresAt.Format("2006-01-02"))
	}
	return nil
}
