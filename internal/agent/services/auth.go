package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taxfree-rdc/customs-agent/internal/agent/client"
	"github.com/taxfree-rdc/customs-agent/internal/agent/models"
)

// AuthService defines authentication operations for the terminal.
//
// Contract:
//   - Login: authenticate against the backend and persist the session.
//   - Resume: restore a previously persisted session from disk.
//   - Logout: clear the persisted session and the client's tokens.
//   - Ping: check backend liveness.
//   - Close: release underlying client resources.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Resume(ctx context.Context) (*models.Session, error)
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client      client.Client
	sessionPath string
}

// NewAuthService constructs an AuthService bound to the given API client.
// The session file lives under dataDir.
func NewAuthService(client client.Client, dataDir string) AuthService {
	return &authService{client: client, sessionPath: filepath.Join(dataDir, "session.json")}
}

func (a *authService) Login(ctx context.Context, email, password string) (*models.Session, error) {
	s, err := a.client.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	decorateFromClaims(s)

	if err := a.saveSession(s); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return s, nil
}

func (a *authService) Resume(ctx context.Context) (*models.Session, error) {
	data, err := os.ReadFile(a.sessionPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, client.ErrUnauthorized
		}
		return nil, fmt.Errorf("session read error: %w", err)
	}

	var s models.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("session decode error: %w", err)
	}

	a.client.Resume(&s)
	return &s, nil
}

func (a *authService) Logout(ctx context.Context) error {
	a.client.Resume(nil)
	if err := os.Remove(a.sessionPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("session remove error: %w", err)
	}
	return nil
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}

func (a *authService) saveSession(s *models.Session) error {
	if err := os.MkdirAll(filepath.Dir(a.sessionPath), 0o700); err != nil {
		return err
	}
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(a.sessionPath, data, 0o600)
}

// decorateFromClaims fills the informational session fields from the access
// token's claims. The token is decoded without signature verification: only
// the backend verifies tokens, the terminal just reads what it was handed.
func decorateFromClaims(s *models.Session) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(s.AccessToken, claims); err != nil {
		return
	}

	if v, ok := claims["full_name"].(string); ok {
		s.AgentName = v
	}
	if v, ok := claims["role"].(string); ok {
		s.Role = v
	}
	if v, ok := claims["point_of_exit"].(string); ok {
		s.PointOfExit = v
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		s.ExpiresAt = exp.Time.UTC()
	}
}
