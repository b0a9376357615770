// Copyright (c) 2025 Learndash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learndash/admincli/internal/apierrors"
	"learndash/admincli/internal/credstore"
)

// backendStub serves canned auth responses and counts requests per path.
type backendStub struct {
	t        *testing.T
	requests atomic.Int64
	handlers map[string]http.HandlerFunc
}

func newBackendStub(t *testing.T) (*backendStub, *httptest.Server) {
	stub := &backendStub{t: t, handlers: map[string]http.HandlerFunc{}}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stub.requests.Add(1)
		if h, ok := stub.handlers[r.URL.Path]; ok {
			h(w, r)
			return
		}
		t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(server.Close)
	return stub, server
}

func respond(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}
}

func TestLoginValidatesLocally(t *testing.T) {
	stub, server := newBackendStub(t)
	sess := New(server.URL, credstore.NewMemory())

	err := sess.Login(context.Background(), "  ", "hunter22")
	require.Error(t, err)
	assert.True(t, apierrors.IsValidation(err))

	err = sess.Login(context.Background(), "a@b.com", "")
	require.Error(t, err)
	assert.True(t, apierrors.IsValidation(err))

	assert.Equal(t, int64(0), stub.requests.Load(), "local validation must not reach the network")
	assert.Equal(t, LoggedOut, sess.State())
}

func TestLoginVerifyFlow(t *testing.T) {
	stub, server := newBackendStub(t)
	stub.handlers["/api/auth/login"] = respond(
		`{"success":true,"data":{"sessionToken":"st1","maskedEmail":"a***@b.com"}}`)
	stub.handlers["/api/auth/verify-login"] = func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "st1", body["sessionToken"])
		assert.Equal(t, "123456", body["code"])
		_, _ = w.Write([]byte(`{"success":true,"data":{
			"accessToken":"at1","refreshToken":"rt1",
			"user":{"id":"u1","firstName":"Ada","lastName":"Admin","email":"a@b.com","role":"admin"}}}`))
	}

	store := credstore.NewMemory()
	sess := New(server.URL, store)

	require.NoError(t, sess.Login(context.Background(), "a@b.com", "hunter22"))
	assert.Equal(t, AwaitingVerification, sess.State())
	assert.Equal(t, "a***@b.com", sess.MaskedEmail())
	assert.False(t, sess.IsLoggedIn())

	user, err := sess.VerifyCode(context.Background(), "123456")
	require.NoError(t, err)
	assert.Equal(t, "Ada", user.FirstName)
	assert.Equal(t, Authenticated, sess.State())
	assert.Equal(t, "at1", sess.AccessToken())

	// Verification must persist the pair and purge transient state.
	pair := store.Load()
	assert.Equal(t, "at1", pair.AccessToken)
	assert.Equal(t, "rt1", pair.RefreshToken)
	assert.Empty(t, sess.maskedState().sessionToken)
	assert.Empty(t, sess.maskedState().lastPassword)
}

// maskedState exposes transient fields for assertions.
func (s *Session) maskedState() struct{ sessionToken, lastPassword string } {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return struct{ sessionToken, lastPassword string }{s.sessionToken, s.lastPassword}
}

func TestVerifyCodeFailsLocally(t *testing.T) {
	stub, server := newBackendStub(t)
	sess := New(server.URL, credstore.NewMemory())

	_, err := sess.VerifyCode(context.Background(), "12345")
	require.Error(t, err)
	assert.True(t, apierrors.IsValidation(err), "short code fails before any network call")

	_, err = sess.VerifyCode(context.Background(), "123456")
	require.Error(t, err)
	assert.True(t, apierrors.IsValidation(err), "no pending verification session")

	assert.Equal(t, int64(0), stub.requests.Load())
}

func TestResendReplaysLogin(t *testing.T) {
	stub, server := newBackendStub(t)
	logins := 0
	stub.handlers["/api/auth/login"] = func(w http.ResponseWriter, r *http.Request) {
		logins++
		_, _ = w.Write([]byte(`{"success":true,"data":{"sessionToken":"st2","maskedEmail":"a***@b.com"}}`))
	}

	sess := New(server.URL, credstore.NewMemory())
	require.NoError(t, sess.Login(context.Background(), "a@b.com", "hunter22"))
	require.NoError(t, sess.Resend(context.Background()))
	assert.Equal(t, 2, logins)
	assert.Equal(t, AwaitingVerification, sess.State())
}

func TestResendWithoutPendingLogin(t *testing.T) {
	stub, server := newBackendStub(t)
	sess := New(server.URL, credstore.NewMemory())

	err := sess.Resend(context.Background())
	require.Error(t, err)
	assert.True(t, apierrors.IsValidation(err))
	assert.Equal(t, int64(0), stub.requests.Load())
}

func TestRegisterCountsCharactersNotBytes(t *testing.T) {
	stub, server := newBackendStub(t)
	stub.handlers["/api/auth/register"] = respond(
		`{"success":true,"data":{"userId":"u9","email":"oz@b.com"}}`)

	sess := New(server.URL, credstore.NewMemory())

	// "Ö" is two bytes but one character; it must fail the 2-character
	// minimum.
	_, err := sess.Register(context.Background(), "Ö", "Özdemir", "oz@b.com", "hunter22!")
	require.Error(t, err)
	assert.True(t, apierrors.IsValidation(err))
	assert.Equal(t, int64(0), stub.requests.Load())

	// Two multibyte characters satisfy the minimum, and an 8-character
	// multibyte password passes the length check.
	_, err = sess.Register(context.Background(), "Öz", "Özdemir", "oz@b.com", "pärölâ8!")
	require.NoError(t, err)
}

func TestPasswordLengthCountsCharacters(t *testing.T) {
	stub, server := newBackendStub(t)
	sess := New(server.URL, credstore.NewMemory())

	// Seven characters that span more than eight bytes still fail.
	err := sess.ConfirmPasswordReset(context.Background(), "tok-1", "pärölâ7")
	require.Error(t, err)
	assert.True(t, apierrors.IsValidation(err))

	err = sess.ChangePassword(context.Background(), "current", "pärölâ7")
	require.Error(t, err)
	assert.True(t, apierrors.IsValidation(err))

	assert.Equal(t, int64(0), stub.requests.Load())
}

func TestSessionRestoredFromStore(t *testing.T) {
	store := credstore.NewMemory()
	require.NoError(t, store.Save(credstore.Pair{AccessToken: "at1", RefreshToken: "rt1"}))

	sess := New("http://127.0.0.1:0", store)
	assert.Equal(t, Authenticated, sess.State())
	assert.Equal(t, "at1", sess.AccessToken())
}

func TestLogoutIsIdempotent(t *testing.T) {
	store := credstore.NewMemory()
	require.NoError(t, store.Save(credstore.Pair{AccessToken: "at1", RefreshToken: "rt1"}))

	sess := New("http://127.0.0.1:0", store)
	require.True(t, sess.IsLoggedIn())

	sess.Logout()
	assert.Equal(t, LoggedOut, sess.State())
	assert.Empty(t, sess.AccessToken())
	assert.False(t, store.Load().Authenticated())

	// A second logout observes the same state.
	sess.Logout()
	assert.Equal(t, LoggedOut, sess.State())
}

func TestRefreshWithoutTokenIsLocal(t *testing.T) {
	stub, server := newBackendStub(t)
	sess := New(server.URL, credstore.NewMemory())

	var hookErr error
	sess.SetRenewalFailedHook(func(err error) { hookErr = err })

	err := sess.RefreshAccessToken(context.Background())
	require.Error(t, err)
	assert.True(t, apierrors.IsValidation(err))
	assert.Equal(t, err, hookErr, "renewal-failed hook fires for local failures too")
	assert.Equal(t, int64(0), stub.requests.Load())
}

func TestRefreshReplacesAccessTokenOnly(t *testing.T) {
	stub, server := newBackendStub(t)
	stub.handlers["/api/auth/refresh"] = func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "rt1", body["refreshToken"])
		_, _ = w.Write([]byte(`{"success":true,"data":{"accessToken":"at2"}}`))
	}

	store := credstore.NewMemory()
	require.NoError(t, store.Save(credstore.Pair{AccessToken: "at1", RefreshToken: "rt1"}))
	sess := New(server.URL, store)

	require.NoError(t, sess.RefreshAccessToken(context.Background()))
	assert.Equal(t, "at2", sess.AccessToken())

	pair := store.Load()
	assert.Equal(t, "at2", pair.AccessToken)
	assert.Equal(t, "rt1", pair.RefreshToken, "refresh token is not rotated")
}

func TestRefreshFailureKeepsSession(t *testing.T) {
	stub, server := newBackendStub(t)
	stub.handlers["/api/auth/refresh"] = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success":false,"code":"INVALID_TOKEN","message":"Refresh token expired"}`))
	}

	store := credstore.NewMemory()
	require.NoError(t, store.Save(credstore.Pair{AccessToken: "at1", RefreshToken: "rt-dead"}))
	sess := New(server.URL, store)

	var hookErr error
	sess.SetRenewalFailedHook(func(err error) { hookErr = err })

	err := sess.RefreshAccessToken(context.Background())
	require.Error(t, err)
	assert.Equal(t, "INVALID_TOKEN", apierrors.CodeOf(err))
	require.Error(t, hookErr)

	// Renewal failure never logs the session out on its own.
	assert.Equal(t, Authenticated, sess.State())
	assert.Equal(t, "at1", sess.AccessToken())
}

func TestAuthDeniedTriggersBackgroundRenewal(t *testing.T) {
	stub, server := newBackendStub(t)
	stub.handlers["/api/user/profile"] = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success":false,"code":"INVALID_TOKEN","message":"Token expired"}`))
	}
	refreshed := make(chan string, 1)
	stub.handlers["/api/auth/refresh"] = func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		refreshed <- body["refreshToken"]
		_, _ = w.Write([]byte(`{"success":true,"data":{"accessToken":"at2"}}`))
	}

	store := credstore.NewMemory()
	require.NoError(t, store.Save(credstore.Pair{AccessToken: "at-stale", RefreshToken: "rt1"}))
	sess := New(server.URL, store)

	// The denied call reports its own failure regardless of the renewal.
	_, err := sess.API().GetProfile(context.Background())
	assert.Equal(t, "INVALID_TOKEN", apierrors.CodeOf(err))

	select {
	case token := <-refreshed:
		assert.Equal(t, "rt1", token)
	case <-time.After(5 * time.Second):
		t.Fatal("no renewal attempt observed after auth denial")
	}
}

func TestAuthDeniedRenewalFailureKeepsOriginalOutcome(t *testing.T) {
	stub, server := newBackendStub(t)
	stub.handlers["/api/user/profile"] = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success":false,"code":"INVALID_TOKEN","message":"Token expired"}`))
	}
	stub.handlers["/api/auth/refresh"] = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success":false,"code":"INVALID_TOKEN","message":"Refresh token expired"}`))
	}

	store := credstore.NewMemory()
	require.NoError(t, store.Save(credstore.Pair{AccessToken: "at-stale", RefreshToken: "rt-dead"}))
	sess := New(server.URL, store)

	renewalFailed := make(chan error, 1)
	sess.SetRenewalFailedHook(func(err error) { renewalFailed <- err })

	_, err := sess.API().GetProfile(context.Background())
	assert.Equal(t, "INVALID_TOKEN", apierrors.CodeOf(err), "the denial stays the call's outcome")

	select {
	case hookErr := <-renewalFailed:
		assert.Equal(t, "INVALID_TOKEN", apierrors.CodeOf(hookErr))
	case <-time.After(5 * time.Second):
		t.Fatal("renewal-failed hook never fired")
	}

	// The failed renewal does not log the session out by itself.
	assert.Equal(t, Authenticated, sess.State())
}

func TestProtectedCallCarriesCurrentToken(t *testing.T) {
	stub, server := newBackendStub(t)
	var gotAuth string
	stub.handlers["/api/user/profile"] = func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":"u1","email":"a@b.com"}}`))
	}

	store := credstore.NewMemory()
	require.NoError(t, store.Save(credstore.Pair{AccessToken: "at1", RefreshToken: "rt1"}))
	sess := New(server.URL, store)

	user, err := sess.API().GetProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", user.Email)
	assert.Equal(t, "Bearer at1", gotAuth)
}
