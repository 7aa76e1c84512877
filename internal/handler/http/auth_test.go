package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/jmalhoy/go-trip-planner/internal/service"
	"github.com/jmalhoy/go-trip-planner/internal/store"
	"github.com/jmalhoy/go-trip-planner/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// POST /auth/token
// ─────────────────────────────────────────────

func TestToken_Success(t *testing.T) {
	auth := &mockAuthService{
		authenticateFn: func(_ context.Context, username, password string) (models.User, error) {
			assert.Equal(t, "sancho", username)
			assert.Equal(t, "panza", password)
			return models.User{Username: username}, nil
		},
	}
	h := newTestHandler(t, auth, nil, nil, nil)

	rec := doRequest(t, h, http.MethodPost, "/auth/token", "", `{"username":"sancho","password":"panza"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.TokenResponse
	decodeBody(t, rec, &body)
	assert.Equal(t, "signed.sancho", body.Token)
}

func TestToken_InvalidCredentials(t *testing.T) {
	auth := &mockAuthService{
		authenticateFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, service.ErrInvalidCredentials
		},
	}
	h := newTestHandler(t, auth, nil, nil, nil)

	rec := doRequest(t, h, http.MethodPost, "/auth/token", "", `{"username":"sancho","password":"wrong"}`)

	envelope := requireErrorEnvelope(t, rec, http.StatusUnauthorized)
	assert.Equal(t, service.ErrInvalidCredentials.Error(), envelope.Error.Message)
}

func TestToken_BadJSON(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil, nil, nil)

	rec := doRequest(t, h, http.MethodPost, "/auth/token", "", `{"username":`)

	requireErrorEnvelope(t, rec, http.StatusBadRequest)
}

// ─────────────────────────────────────────────
// POST /auth/register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, user models.User, password string) (models.User, error) {
			assert.Equal(t, "sancho", user.Username)
			assert.Equal(t, "panza", password)
			return user, nil
		},
	}
	h := newTestHandler(t, auth, nil, nil, nil)

	rec := doRequest(t, h, http.MethodPost, "/auth/register", "",
		`{"username":"sancho","password":"panza","first_name":"Sancho"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body models.UserResponse
	decodeBody(t, rec, &body)
	assert.Equal(t, "sancho", body.User.Username)
	assert.Equal(t, "signed.sancho", body.Token)
	assert.NotContains(t, rec.Body.String(), "panza", "plaintext password must not appear in the response")
}

// The public route never creates administrators, whatever the body claims.
func TestRegister_IgnoresIsAdmin(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, user models.User, _ string) (models.User, error) {
			assert.False(t, user.IsAdmin)
			return user, nil
		},
	}
	h := newTestHandler(t, auth, nil, nil, nil)

	rec := doRequest(t, h, http.MethodPost, "/auth/register", "",
		`{"username":"sancho","password":"panza","is_admin":true}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body models.UserResponse
	decodeBody(t, rec, &body)
	assert.False(t, body.User.IsAdmin)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, _ models.User, _ string) (models.User, error) {
			return models.User{}, store.ErrUsernameTaken
		},
	}
	h := newTestHandler(t, auth, nil, nil, nil)

	rec := doRequest(t, h, http.MethodPost, "/auth/register", "", `{"username":"sancho","password":"panza"}`)

	envelope := requireErrorEnvelope(t, rec, http.StatusBadRequest)
	assert.Equal(t, store.ErrUsernameTaken.Error(), envelope.Error.Message)
}

// ─────────────────────────────────────────────
// POST /users (admin create honours is_admin)
// ─────────────────────────────────────────────

func TestCreateUser_HonoursIsAdmin(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, user models.User, _ string) (models.User, error) {
			assert.True(t, user.IsAdmin)
			return user, nil
		},
	}
	h := newTestHandler(t, auth, nil, nil, nil)

	rec := doRequest(t, h, http.MethodPost, "/users", adminToken,
		`{"username":"dulcinea","password":"toboso","is_admin":true}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body models.UserResponse
	decodeBody(t, rec, &body)
	assert.True(t, body.User.IsAdmin)
	assert.Equal(t, "signed.dulcinea", body.Token)
}

func TestCreateUser_NonAdminRejected(t *testing.T) {
	h := newTestHandler(t, nil, nil, nil, nil)

	rec := doRequest(t, h, http.MethodPost, "/users", selfToken,
		`{"username":"dulcinea","password":"toboso"}`)

	requireErrorEnvelope(t, rec, http.StatusUnauthorized)
}
