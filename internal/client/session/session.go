// Package session owns the process-wide authentication state. It is the
// only component with invariants spanning multiple calls: everything below
// it is a pure request function or a dumb key-value store, everything above
// it is presentation.
//
// The persisted device token is the single source of truth for "is this
// device enrolled". If it is absent the session is anonymous no matter what
// the other slots hold.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/eprometna/client-go/internal/client/authapi"
	"github.com/eprometna/client-go/internal/client/domain"
	"github.com/eprometna/client-go/internal/client/vault"
	"github.com/eprometna/client-go/pkg/jwtx"
)

// Status is the transient UI-facing state of the session. It is never
// persisted.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusError   Status = "error"
)

// ErrDeviceTokenMissing reports a returning-user login on a device whose
// persisted device token has vanished. The server cannot be asked for it
// again, so this is fatal to the login, not recoverable.
var ErrDeviceTokenMissing = errors.New("device token missing for returning user")

// AuthService is the slice of authapi the store drives.
type AuthService interface {
	RegisterDevice(ctx context.Context, email, password string, info domain.DeviceInfo) (*authapi.TokenTriple, error)
	Login(ctx context.Context, email, password string) (*authapi.TokenPair, error)
	LogoutDevice(ctx context.Context)
}

// ProfileService fetches the full user profile after authentication.
type ProfileService interface {
	GetLoggedInUser(ctx context.Context) (*domain.User, error)
}

// State is a copy of the in-memory session, safe to hand to callers.
type State struct {
	DeviceToken  string
	AccessToken  string
	RefreshToken string
	User         *domain.User
	Status       Status
	LastError    string
}

// Store orchestrates login, logout and profile refresh. It is safe for
// concurrent use; logins are additionally single-flight so two concurrent
// first-time logins cannot both enroll the device.
type Store struct {
	vault   vault.Vault
	auth    AuthService
	profile ProfileService
	collect func() domain.DeviceInfo
	logger  *slog.Logger

	// loginMu serializes whole login flows; mu guards the state fields.
	loginMu sync.Mutex
	mu      sync.Mutex
	state   State
}

func NewStore(v vault.Vault, auth AuthService, profile ProfileService, collect func() domain.DeviceInfo, logger *slog.Logger) *Store {
	return &Store{
		vault:   v,
		auth:    auth,
		profile: profile,
		collect: collect,
		logger:  logger,
		state:   State{Status: StatusIdle},
	}
}

// Login authenticates the user. A device with no persisted device token is
// a first-time installation and goes through device registration; an
// enrolled device goes through regular login. Tokens are persisted only
// when rememberDevice is set.
//
// Any failure sets the error state AND is returned; callers display it.
func (s *Store) Login(ctx context.Context, email, password string, rememberDevice bool) error {
	s.loginMu.Lock()
	defer s.loginMu.Unlock()

	s.setLoading()

	_, enrolled := s.persistedDeviceToken(ctx)
	var err error
	if enrolled {
		err = s.loginReturning(ctx, email, password, rememberDevice)
	} else {
		err = s.loginFirstTime(ctx, email, password, rememberDevice)
	}

	if err != nil {
		s.setError(err)
		return err
	}

	s.setIdle()
	return nil
}

func (s *Store) loginFirstTime(ctx context.Context, email, password string, remember bool) error {
	triple, err := s.auth.RegisterDevice(ctx, email, password, s.collect())
	if err != nil {
		return err
	}

	if remember {
		if err := s.persistTokens(ctx, triple.DeviceToken, triple.AccessToken, triple.RefreshToken); err != nil {
			return err
		}
	}

	s.mu.Lock()
	s.state.DeviceToken = triple.DeviceToken
	s.state.AccessToken = triple.AccessToken
	s.state.RefreshToken = triple.RefreshToken
	s.state.User = nil
	s.mu.Unlock()

	s.fetchAndStoreUser(ctx, triple.DeviceToken, remember)
	return nil
}

func (s *Store) loginReturning(ctx context.Context, email, password string, remember bool) error {
	pair, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}

	deviceToken, ok := s.persistedDeviceToken(ctx)
	if !ok {
		return ErrDeviceTokenMissing
	}

	if remember {
		if err := s.persistTokens(ctx, deviceToken, pair.AccessToken, pair.RefreshToken); err != nil {
			return err
		}
	}

	s.mu.Lock()
	s.state.DeviceToken = deviceToken
	s.state.AccessToken = pair.AccessToken
	s.state.RefreshToken = pair.RefreshToken
	s.state.User = nil
	s.mu.Unlock()

	s.fetchAndStoreUser(ctx, deviceToken, remember)
	return nil
}

// Logout tears the session down: best-effort server notice, then
// unconditional local cleanup. Idempotent; logging out an anonymous
// session is a successful no-op.
func (s *Store) Logout(ctx context.Context) {
	if s.IsAuthenticated(ctx) {
		s.auth.LogoutDevice(ctx)
	}

	s.clearLocal(ctx)
}

/// ForceLogout is the 401 handler: local teardown only. The credential that
// just got rejected is useless for a server notice, and issuing one here
// would recurse through the authenticated client.
func (s *Store) ForceLogout(ctx context.Context) {
	s.logger.Warn("forced logout after unauthorized response")
	s.clearLocal(ctx)
}

func (s *Store) clearLocal(ctx context.Context) {
	for _, key := range vault.Keys {
		if err := s.vault.Delete(ctx, key); err != nil {
			// Keep deleting; a partial wipe is still better than none.
			s.logger.Error("vault delete failed during logout", "key", string(key), "error", err)
		}
	}

	s.mu.Lock()
	s.state = State{Status: StatusIdle}
	s.mu.Unlock()
}

// IsAuthenticated reports device enrollment from persisted storage, not
// memory, so it is correct immediately after a cold start.
func (s *Store) IsAuthenticated(ctx context.Context) bool {
	token, ok := s.persistedDeviceToken(ctx)
	return ok && token != ""
}

// RefreshUserData re-fetches the full profile in the background. Failures
// are recorded in the session state and swallowed.
func (s *Store) RefreshUserData(ctx context.Context) {
	s.setLoading()

	deviceToken, ok := s.persistedDeviceToken(ctx)
	if !ok || deviceToken == "" {
		s.setIdle()
		return
	}

	if err := s.fetchAndStoreUser(ctx, deviceToken, true); err != nil {
		s.setError(errors.New("failed to refresh user data"))
		return
	}
	s.setIdle()
}

// Snapshot returns a copy of the current session state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state
	if st.User != nil {
		user := *st.User
		st.User = &user
	}
	return st
}

// UserRole returns the cached user's role, or "" when no user is cached.
func (s *Store) UserRole() domain.Role {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.User == nil {
		return ""
	}
	return s.state.User.Role
}

// fetchAndStoreUser populates the cached profile: the full record from the
// profile endpoint when reachable, else the partial record decoded from the
// device token. The fallback must never fail the surrounding login, so the
// returned error only reports that the fetch degraded; login ignores it,
// background refresh records it.
func (s *Store) fetchAndStoreUser(ctx context.Context, deviceToken string, remember bool) error {
	user, err := s.profile.GetLoggedInUser(ctx)
	if err == nil && user != nil {
		if remember {
			if encoded, err := json.Marshal(user); err == nil {
				if err := s.vault.Set(ctx, vault.KeyUserData, string(encoded)); err != nil {
					s.logger.Error("persisting user data failed", "error", err)
				}
			}
		}

		s.mu.Lock()
		s.state.User = user
		s.mu.Unlock()
		return nil
	}

	if err != nil {
		s.logger.Warn("profile fetch failed, falling back to token claims", "error", err)
	}

	s.mu.Lock()
	s.state.User = userFromToken(deviceToken, s.logger)
	s.mu.Unlock()
	return err
}

// userFromToken recovers the partial profile from unverified token claims.
// All fields the token does not carry are empty strings so the record
// renders like any other.
func userFromToken(token string, logger *slog.Logger) *domain.User {
	claims, err := jwtx.DecodeUnverified(token)
	if err != nil {
		logger.Error("token decode failed", "error", err)
		return nil
	}

	partial := claims.Partial()
	return &domain.User{
		UUID:  partial.UUID,
		Email: partial.Email,
		Role:  domain.Role(partial.Role),
	}
}

func (s *Store) persistTokens(ctx context.Context, deviceToken, accessToken, refreshToken string) error {
	if err := s.vault.Set(ctx, vault.KeyDeviceToken, deviceToken); err != nil {
		return err
	}
	if err := s.vault.Set(ctx, vault.KeyAccessToken, accessToken); err != nil {
		return err
	}
	return s.vault.Set(ctx, vault.KeyRefreshToken, refreshToken)
}

func (s *Store) persistedDeviceToken(ctx context.Context) (string, bool) {
	token, ok := s.vault.Get(ctx, vault.KeyDeviceToken)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

func (s *Store) setLoading() {
	s.mu.Lock()
	s.state.Status = StatusLoading
	s.state.LastError = ""
	s.mu.Unlock()
}

func (s *Store) setIdle() {
	s.mu.Lock()
	s.state.Status = StatusIdle
	s.mu.Unlock()
}

func (s *Store) setError(err error) {
	s.mu.Lock()
	s.state.Status = StatusError
	s.state.LastError = err.Error()
	s.mu.Unlock()
}
