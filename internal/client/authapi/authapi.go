// Package authapi wraps the three authentication endpoints. The functions
// hold no session state; the session store decides which of them to call.
package authapi

import (
	"context"
	"errors"
	"log/slog"

	"github.com/eprometna/client-go/internal/client/domain"
	"github.com/eprometna/client-go/pkg/apix"
)

// Localized fallback messages used when the server did not provide a
// structured error payload. These are the only user-facing error texts the
// client produces on its own.
const (
	FallbackRegisterMessage = "mobile registration failed"
	FallbackLoginMessage    = "incorrect username or password"
)

// ErrIncompleteTokenResponse reports a well-formed 2xx response that is
// missing one of the expected tokens. This is a protocol violation, not a
// credentials problem, and is never retried.
var ErrIncompleteTokenResponse = errors.New("authapi: server response missing tokens")

// TokenTriple is returned by device registration, the one call that mints a
// device token.
type TokenTriple struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	DeviceToken  string `json:"deviceToken"`
}

// TokenPair is returned by returning-device login. The device token minted
// at enrollment stays valid and is not re-issued.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type registerRequest struct {
	Email      string            `json:"email"`
	Password   string            `json:"password"`
	DeviceInfo domain.DeviceInfo `json:"deviceInfo"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Service issues authentication requests. Bootstrap must be the
// unauthenticated client so registration and login never carry stale
// credentials; Authed is only used for the logout notice.
type Service struct {
	Bootstrap *apix.Client
	Authed    *apix.Client
	Logger    *slog.Logger
}

// RegisterDevice performs first-time device enrollment. Called exactly once
// per installation, on the first login.
func (s *Service) RegisterDevice(ctx context.Context, email, password string, info domain.DeviceInfo) (*TokenTriple, error) {
	payload := registerRequest{
		Email:      email,
		Password:   password,
		DeviceInfo: info.Truncated(),
	}

	var triple TokenTriple
	if err := s.Bootstrap.Post(ctx, "/auth/user/register", payload, &triple); err != nil {
		return nil, translate(err, FallbackRegisterMessage)
	}

	if triple.AccessToken == "" || triple.RefreshToken == "" || triple.DeviceToken == "" {
		return nil, ErrIncompleteTokenResponse
	}

	return &triple, nil
}

// Login authenticates a user on an already-enrolled device.
func (s *Service) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	var pair TokenPair
	if err := s.Bootstrap.Post(ctx, "/auth/login", loginRequest{Email: email, Password: password}, &pair); err != nil {
		return nil, translate(err, FallbackLoginMessage)
	}

	if pair.AccessToken == "" || pair.RefreshToken == "" {
		return nil, ErrIncompleteTokenResponse
	}

	return &pair, nil
}

// LogoutDevice notifies the server the session is ending. Best effort:
// failures are logged and swallowed because local teardown must succeed
// whether or not the server is reachable.
func (s *Service) LogoutDevice(ctx context.Context) {
	if err := s.Authed.Post(ctx, "/auth/logout-device", nil, nil); err != nil {
		s.Logger.Warn("device logout notice failed", "error", err)
	}
}

// authError carries the user-facing message while preserving the transport
// error for errors.As inspection.
type authError struct {
	msg   string
	cause error
}

func (e *authError) Error() string { return e.msg }
func (e *authError) Unwrap() error { return e.cause }

// translate maps a transport failure to its user-facing form: the server's
// structured message verbatim when present, else the localized fallback.
func translate(err error, fallback string) error {
	var apiErr *apix.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return err
	}
	return &authError{msg: fallback, cause: err}
}
