package cli

import (
	"bufio"
	"context"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/taxfree-rdc/customs-agent/internal/agent/client"
	"github.com/taxfree-rdc/customs-agent/internal/agent/config"
	"github.com/taxfree-rdc/customs-agent/internal/agent/connectivity"
	"github.com/taxfree-rdc/customs-agent/internal/agent/models"
	"github.com/taxfree-rdc/customs-agent/internal/agent/services"
	"github.com/taxfree-rdc/customs-agent/internal/agent/store"
	"github.com/taxfree-rdc/customs-agent/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config            *config.Config
	authService       services.AuthService
	validationService services.ValidationService
	watcher           *connectivity.Watcher
	session           *models.Session
	Mode              Mode
	reader            *bufio.Reader
	syncInFlight      bool
}

func NewApp(c *config.Config) (*App, error) {

	st, err := store.NewFileStore(filepath.Join(c.DataDir, "validations.json"))
	if err != nil {
		log.Printf("error initializing local buffer: %s", err.Error())
		return nil, err
	}

	apiClient := client.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout)
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	as := services.NewAuthService(apiClient, c.DataDir)
	vs := services.NewValidationService(apiClient, st, logger)

	a := &App{
		config:            c,
		authService:       as,
		validationService: vs,
		Mode:              ModeOffline,
		reader:            bufio.NewReader(os.Stdin),
	}
	a.watcher = connectivity.NewWatcher(apiClient, c.OnlineCheckInterval, func(online bool) {
		if online {
			a.setMode(ModeOnline)
		} else {
			a.setMode(ModeOffline)
		}
	})
	return a, nil
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) isOnline() bool {
	return a.watcher.Online()
}

func (a *App) Run(ctx context.Context) {
	defer a.authService.Close(ctx)

	// a session left by a previous run is picked up silently
	if s, err := a.authService.Resume(ctx); err == nil {
		a.session = s
		log.Printf("Resumed session for %s\n", s.AgentName)
	}

	go a.watcher.Run(ctx)

	a.Root(ctx)
}
