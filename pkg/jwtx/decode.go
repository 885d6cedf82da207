// Package jwtx decodes e-Prometna token payloads client-side.
//
// Decoding is deliberately unverified: the server is the only party that
// validates signatures. The client reads the claims purely to populate
// optimistic UI state, never to make authorization decisions.
package jwtx

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformed reports input that is not a compact three-segment token.
var ErrMalformed = errors.New("jwtx: malformed token")

// DecodeUnverified parses a compact JWT and returns its claims WITHOUT
// verifying the signature. Malformed input (empty string, wrong segment
// count, non-JSON payload) returns ErrMalformed; it never panics.
func DecodeUnverified(token string) (*Claims, error) {
	if token == "" {
		return nil, ErrMalformed
	}

	parser := jwt.NewParser()

	claims := &Claims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return claims, nil
}
