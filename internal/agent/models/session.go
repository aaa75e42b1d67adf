package models

import "time"

// Session holds the agent's token pair plus the claims decoded from the
// access token. Claims are informational (status line, expiry hints); the
// backend remains the authority on every request.
type Session struct {
	AccessToken  string    `json:"access"`
	RefreshToken string    `json:"refresh"`
	AgentName    string    `json:"agent_name,omitempty"`
	Role         string    `json:"role,omitempty"`
	PointOfExit  string    `json:"point_of_exit,omitempty"`
	ExpiresAt    time.Time `json:"expires_at"`
}
