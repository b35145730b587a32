package dto

import "github.com/golang-jwt/jwt/v5"

// AuthClaims are the claims of an access token issued by the hosted auth service.
// The subject is the user id.
type AuthClaims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// AuthenticatedUser represents the user resolved from the bearer token
type AuthenticatedUser struct {
	ID    string
	Email string
}

// HealthResponse reports dependency health
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
