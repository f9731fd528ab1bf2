package model

import "time"

// TokenClaims is the decoded identity carried by a bearer token.
type TokenClaims struct {
	DoctorID  string    `json:"doctorId"`
	Email     string    `json:"email,omitempty"`
	ExpiresAt time.Time `json:"-"`
}
