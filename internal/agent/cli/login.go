package cli

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/taxfree-rdc/customs-agent/internal/agent/client"
)

func (a *App) Login(ctx context.Context) error {

	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	s, err := a.authService.Login(ctx, email, string(password))
	if err != nil {
		if errors.Is(err, client.ErrUnavailable) {
			log.Printf("Server unavailable. Captured decisions are buffered; log in once connectivity is back to sync.")
		} else {
			log.Printf("Login unsuccessful: %s", err.Error())
		}
		return err
	}

	a.session = s
	if s.AgentName != "" {
		log.Printf("Logged in as %s (%s)", s.AgentName, s.PointOfExit)
	} else {
		log.Printf("Login successful")
	}
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	a.session = nil
	log.Println("Logged out")
	return nil
}
