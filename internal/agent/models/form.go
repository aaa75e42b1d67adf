package models

import "time"

// Form is the bordereau summary returned by the online lookup endpoint.
type Form struct {
	ID           string     `json:"id"`
	FormNumber   string     `json:"form_number"`
	Status       string     `json:"status"`
	TravelerName string     `json:"traveler_name"`
	RefundAmount string     `json:"refund_amount"`
	Currency     string     `json:"currency"`
	IssuedAt     *time.Time `json:"issued_at,omitempty"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
}
