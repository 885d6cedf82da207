package jwtx

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the token claims the e-Prometna backend embeds in both device
// and access tokens. Only the identity fields are read client-side, we are
// keeping additive changes to preserve compatibility for later.
type Claims struct {
	jwt.RegisteredClaims

	/* Custom e-Prometna fields */

	// UUID is the user's unique identifier
	UUID string `json:"uuid,omitempty"`

	// Email the user logged in with
	Email string `json:"email,omitempty"`

	// Role is the user's role name (e.g. "Person", "PoliceOfficer")
	Role string `json:"role,omitempty"`
}

// PartialUser is the identity-only projection of a user record that can be
// recovered from token claims alone. Profile fields the token does not carry
// are always empty strings, never absent, so callers can render it the same
// way they render a full profile.
type PartialUser struct {
	UUID  string
	Email string
	Role  string
}

// Partial returns the identity projection of the claims.
func (c *Claims) Partial() PartialUser {
	return PartialUser{
		UUID:  c.UUID,
		Email: c.Email,
		Role:  c.Role,
	}
}
