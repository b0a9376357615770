// Copyright (c) 2025 Learndash
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package session owns the credential pair and the authentication state
// machine: LoggedOut -> AwaitingVerification (first factor accepted) ->
// Authenticated -> LoggedOut. It orchestrates login, code verification,
// registration and password flows over the API client, persists tokens via
// the credential store, and renews the access token when a protected call
// is rejected.
//
// The transient verification fields (session token, cached password) are
// mutually exclusive with an authenticated state: both are purged the
// moment verification succeeds.
package session

import (
	"context"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/singleflight"

	"learndash/admincli/internal/api"
	"learndash/admincli/internal/apierrors"
	"learndash/admincli/internal/credstore"
)

// State identifies where the session is in the authentication flow.
type State string

const (
	// LoggedOut means no bearer credentials and no pending verification.
	LoggedOut State = "logged_out"
	// AwaitingVerification means first-factor login succeeded and the
	// second-factor code has not been confirmed yet.
	AwaitingVerification State = "awaiting_verification"
	// Authenticated means a bearer access token is held.
	Authenticated State = "authenticated"
)

// Session is the single owner of the credential pair and auth-flow state.
// Resource operations borrow the access token read-only through the API
// client's TokenSource; updates are whole-value swaps under the lock so
// concurrent requests never observe a half-updated token.
type Session struct {
	mu    sync.RWMutex
	store credstore.Store
	api   *api.Client

	pair         credstore.Pair
	maskedEmail  string
	sessionToken string
	lastEmail    string
	lastPassword string
	user         api.User

	refreshGroup    singleflight.Group
	onRenewalFailed func(error)
}

// New builds a session backed by the given store, loading any previously
// persisted credentials. A session restored this way starts Authenticated
// when a stored access token exists.
func New(baseURL string, store credstore.Store) *Session {
	s := &Session{store: store, pair: store.Load()}
	s.api = api.New(baseURL, api.TokenFunc(s.AccessToken))
	s.api.SetAuthDeniedHook(s.handleAuthDenied)
	return s
}

// API exposes the resource operations bound to this session's credentials.
func (s *Session) API() *api.Client { return s.api }

// SetRenewalFailedHook registers a callback fired when a best-effort token
// renewal fails. The session does not log itself out on renewal failure;
// the caller decides.
func (s *Session) SetRenewalFailedHook(fn func(error)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onRenewalFailed = fn
}

// AccessToken returns the current access token, empty when logged out.
func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pair.AccessToken
}

// State reports the current position in the auth flow.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch {
	case s.pair.AccessToken != "":
		return Authenticated
	case s.sessionToken != "":
		return AwaitingVerification
	default:
		return LoggedOut
	}
}

// IsLoggedIn reports whether bearer credentials are held.
func (s *Session) IsLoggedIn() bool { return s.State() == Authenticated }

// MaskedEmail returns the masked address shown during code verification.
func (s *Session) MaskedEmail() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maskedEmail
}

// User returns the user object captured at verification time.
func (s *Session) User() api.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Login performs first-factor authentication. Empty credentials fail
// locally without a network call. On success the session holds the
// verification token and retains the credentials for a possible resend.
func (s *Session) Login(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return apierrors.NewValidation("please enter your email address")
	}
	if password == "" {
		return apierrors.NewValidation("please enter your password")
	}

	res, err := s.api.Login(ctx, email, password)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.sessionToken = res.SessionToken
	s.maskedEmail = res.MaskedEmail
	s.lastEmail = email
	s.lastPassword = password
	s.mu.Unlock()
	return nil
}

// VerifyCode completes second-factor verification. It requires a pending
// verification session and a 6-character code; both checks fail locally.
// On success the credential pair is persisted and the cached password and
// session token are purged.
func (s *Session) VerifyCode(ctx context.Context, code string) (api.User, error) {
	if utf8.RuneCountInString(code) != 6 {
		return api.User{}, apierrors.NewValidation("please enter the complete 6-digit code")
	}

	s.mu.RLock()
	token := s.sessionToken
	s.mu.RUnlock()
	if token == "" {
		return api.User{}, apierrors.NewValidation("session expired, please login again")
	}

	res, err := s.api.VerifyOTP(ctx, token, code)
	if err != nil {
		return api.User{}, err
	}

	s.mu.Lock()
	s.pair = credstore.Pair{AccessToken: res.AccessToken, RefreshToken: res.RefreshToken}
	s.sessionToken = ""
	s.lastPassword = ""
	s.user = res.User
	pair := s.pair
	s.mu.Unlock()

	// A broken credential store degrades to a session that does not
	// survive restart; it never fails the verification itself.
	_ = s.store.Save(pair)
	return res.User, nil
}

// Resend replays the cached login to issue a fresh verification code.
func (s *Session) Resend(ctx context.Context) error {
	s.mu.RLock()
	email, password := s.lastEmail, s.lastPassword
	s.mu.RUnlock()
	if email == "" || password == "" {
		return apierrors.NewValidation("session expired, please login again")
	}
	return s.Login(ctx, email, password)
}

// Register creates a new account. All validation happens locally before
// any network call; registration does not affect session state.
func (s *Session) Register(ctx context.Context, firstName, lastName, email, password string) (api.RegisterResult, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	email = strings.TrimSpace(email)

	// Character counts, not byte counts: "Öz" is a two-character name.
	if utf8.RuneCountInString(firstName) < 2 {
		return api.RegisterResult{}, apierrors.NewValidation("first name must be at least 2 characters")
	}
	if utf8.RuneCountInString(lastName) < 2 {
		return api.RegisterResult{}, apierrors.NewValidation("last name must be at least 2 characters")
	}
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return api.RegisterResult{}, apierrors.NewValidation("please enter a valid email address")
	}
	if utf8.RuneCountInString(password) < 8 {
		return api.RegisterResult{}, apierrors.NewValidation("password must be at least 8 characters")
	}
	return s.api.Register(ctx, firstName, lastName, email, password)
}

// RequestPasswordReset asks the backend to email a reset link.
func (s *Session) RequestPasswordReset(ctx context.Context, email string) (api.ForgotPasswordResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return api.ForgotPasswordResult{}, apierrors.NewValidation("please enter a valid email address")
	}
	return s.api.ForgotPassword(ctx, email)
}

// ConfirmPasswordReset redeems a reset token for a new password.
func (s *Session) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	if token == "" {
		return apierrors.NewValidation("invalid reset link, please request a new one")
	}
	if utf8.RuneCountInString(newPassword) < 8 {
		return apierrors.NewValidation("password must be at least 8 characters")
	}
	return s.api.ResetPassword(ctx, token, newPassword)
}

// ChangePassword replaces the authenticated operator's password.
func (s *Session) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	if currentPassword == "" {
		return apierrors.NewValidation("please enter your current password")
	}
	if utf8.RuneCountInString(newPassword) < 8 {
		return apierrors.NewValidation("new password must be at least 8 characters")
	}
	if currentPassword == newPassword {
		return apierrors.NewValidation("new password must be different from current password")
	}
	return s.api.ChangePassword(ctx, currentPassword, newPassword)
}

// RefreshAccessToken exchanges the refresh token for a new access token.
// An empty refresh token resolves immediately with no request issued.
// Concurrent renewal attempts are coalesced into a single request; on
// success only the access token is replaced, and the pair is persisted.
func (s *Session) RefreshAccessToken(ctx context.Context) error {
	s.mu.RLock()
	refreshToken := s.pair.RefreshToken
	s.mu.RUnlock()
	if refreshToken == "" {
		err := apierrors.NewValidation("no refresh token available")
		s.notifyRenewalFailed(err)
		return err
	}

	_, err, _ := s.refreshGroup.Do("refresh", func() (any, error) {
		res, err := s.api.RefreshToken(ctx, refreshToken)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.pair.AccessToken = res.AccessToken
		pair := s.pair
		s.mu.Unlock()
		_ = s.store.Save(pair)
		return res.AccessToken, nil
	})
	if err != nil {
		s.notifyRenewalFailed(err)
	}
	return err
}

// Logout clears the credential store and every in-memory field. It is
// idempotent and never fails: a second call observes the same LoggedOut
// state and an empty store.
func (s *Session) Logout() {
	s.mu.Lock()
	s.pair = credstore.Pair{}
	s.sessionToken = ""
	s.maskedEmail = ""
	s.lastEmail = ""
	s.lastPassword = ""
	s.user = api.User{}
	s.mu.Unlock()

	_ = s.store.Clear()
}

// handleAuthDenied fires when a protected call was rejected as
// unauthorized. Renewal runs in the background as a best effort; the
// rejected call has already reported its original failure.
func (s *Session) handleAuthDenied() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		_ = s.RefreshAccessToken(ctx)
	}()
}

func (s *Session) notifyRenewalFailed(err error) {
	s.mu.RLock()
	fn := s.onRenewalFailed
	s.mu.RUnlock()
	if fn != nil {
		fn(err)
	}
}
