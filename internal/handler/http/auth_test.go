// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Voronin

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/avoronin/go-user-gate/internal/config"
	"github.com/avoronin/go-user-gate/internal/logger"
	"github.com/avoronin/go-user-gate/internal/mock"
	"github.com/avoronin/go-user-gate/internal/service"
	"github.com/avoronin/go-user-gate/internal/store"
	"github.com/avoronin/go-user-gate/models"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newHandlerWithAuth builds a Handler over a gomock AuthService.
func newHandlerWithAuth(t *testing.T, ctrl *gomock.Controller) (*Handler, *mock.MockAuthService) {
	t.Helper()

	auth := mock.NewMockAuthService(ctrl)
	svcs := &service.Services{AuthService: auth}

	cfg := config.App{SessionTTL: 15 * time.Minute}
	return NewHandler(svcs, cfg, logger.Nop()), auth
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// sessionCookie extracts the userId cookie from a recorded response,
// failing the test if it was not set.
func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookieName {
			return c
		}
	}
	t.Fatal("session cookie was not set")
	return nil
}

// storedUser is a convenience fixture used across multiple tests.
var storedUser = models.User{
	UserID: "0191a0c5-0000-7000-8000-000000000001",
	Name:   "Alice",
	Email:  "alice@example.com",
}

var validSignUp = models.SignUpRequest{
	Name:     "Alice",
	Email:    "alice@example.com",
	Password: "super-secret-password",
}

var validSignIn = models.SignInRequest{
	Email:    "alice@example.com",
	Password: "super-secret-password",
}

// ─────────────────────────────────────────────
// signUp
// ─────────────────────────────────────────────

// TestSignUp_Success verifies that a valid sign-up yields 201 Created, the
// public user view in the body, and a session cookie with the assigned id.
func TestSignUp_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, auth := newHandlerWithAuth(t, ctrl)
	auth.EXPECT().
		SignUp(gomock.Any(), validSignUp.Name, validSignUp.Email, validSignUp.Password).
		Return(storedUser, nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(jsonBody(t, validSignUp)))
	rec := httptest.NewRecorder()

	h.signUp(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var view models.UserView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, storedUser.UserID, view.UserID)
	assert.Equal(t, storedUser.Email, view.Email)
	assert.NotContains(t, rec.Body.String(), "credential")

	cookie := sessionCookie(t, rec)
	assert.Equal(t, storedUser.UserID, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteNoneMode, cookie.SameSite)
	assert.Equal(t, int((15 * time.Minute).Seconds()), cookie.MaxAge)
}

func TestSignUp_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newHandlerWithAuth(t, ctrl)

	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.signUp(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignUp_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		req  models.SignUpRequest
		want string
	}{
		{name: "missing name", req: models.SignUpRequest{Email: "a@b.com", Password: "long-enough"}, want: ErrNameIsRequired.Error()},
		{name: "missing email", req: models.SignUpRequest{Name: "A", Password: "long-enough"}, want: ErrEmailIsRequired.Error()},
		{name: "malformed email", req: models.SignUpRequest{Name: "A", Email: "not-an-email", Password: "long-enough"}, want: ErrInvalidEmail.Error()},
		{name: "short password", req: models.SignUpRequest{Name: "A", Email: "a@b.com", Password: "short"}, want: ErrPasswordTooShort.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			h, _ := newHandlerWithAuth(t, ctrl)

			req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(jsonBody(t, tt.req)))
			rec := httptest.NewRecorder()

			h.signUp(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}
}

// TestSignUp_DuplicateEmail checks the duplicate-identity mapping: 400, not
// 409.
func TestSignUp_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, auth := newHandlerWithAuth(t, ctrl)
	auth.EXPECT().
		SignUp(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrEmailAlreadyExists)

	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(jsonBody(t, validSignUp)))
	rec := httptest.NewRecorder()

	h.signUp(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignUp_InternalError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, auth := newHandlerWithAuth(t, ctrl)
	auth.EXPECT().
		SignUp(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.User{}, errors.New("kdf blew up"))

	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(jsonBody(t, validSignUp)))
	rec := httptest.NewRecorder()

	h.signUp(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "kdf blew up")
}

// ─────────────────────────────────────────────
// signIn
// ─────────────────────────────────────────────

func TestSignIn_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, auth := newHandlerWithAuth(t, ctrl)
	auth.EXPECT().
		SignIn(gomock.Any(), validSignIn.Email, validSignIn.Password).
		Return(storedUser, nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/signin", strings.NewReader(jsonBody(t, validSignIn)))
	rec := httptest.NewRecorder()

	h.signIn(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, storedUser.UserID, sessionCookie(t, rec).Value)
}

// TestSignIn_UnknownEmail checks that an unregistered email maps to 404,
// while TestSignIn_WrongPassword checks a bad password maps to 400. The two
// cases stay distinguishable on purpose.
func TestSignIn_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, auth := newHandlerWithAuth(t, ctrl)
	auth.EXPECT().
		SignIn(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrNoUserWasFound)

	req := httptest.NewRequest(http.MethodPost, "/auth/signin", strings.NewReader(jsonBody(t, validSignIn)))
	rec := httptest.NewRecorder()

	h.signIn(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSignIn_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, auth := newHandlerWithAuth(t, ctrl)
	auth.EXPECT().
		SignIn(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.User{}, service.ErrWrongPassword)

	req := httptest.NewRequest(http.MethodPost, "/auth/signin", strings.NewReader(jsonBody(t, validSignIn)))
	rec := httptest.NewRecorder()

	h.signIn(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// signOut
// ─────────────────────────────────────────────

// TestSignOut_ClearsCookie verifies the cookie is expired client-side; no
// service call is involved.
func TestSignOut_ClearsCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newHandlerWithAuth(t, ctrl)

	req := httptest.NewRequest(http.MethodGet, "/auth/signout", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: storedUser.UserID})
	rec := httptest.NewRecorder()

	h.signOut(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	cookie := sessionCookie(t, rec)
	assert.Empty(t, cookie.Value)
	assert.True(t, cookie.MaxAge < 0 || cookie.Expires.Before(time.Now()))
}

// ─────────────────────────────────────────────
// currentUser
// ─────────────────────────────────────────────

func TestCurrentUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, auth := newHandlerWithAuth(t, ctrl)
	auth.EXPECT().
		ResolveSession(gomock.Any(), storedUser.UserID).
		Return(storedUser, nil)

	req := httptest.NewRequest(http.MethodGet, "/auth/user", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: storedUser.UserID})
	rec := httptest.NewRecorder()

	h.currentUser(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var view models.UserView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, storedUser.Email, view.Email)
}

// TestCurrentUser_NoCookie checks the anonymous mapping: 404, not 401.
func TestCurrentUser_NoCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, auth := newHandlerWithAuth(t, ctrl)
	auth.EXPECT().
		ResolveSession(gomock.Any(), "").
		Return(models.User{}, service.ErrNotAuthenticated)

	req := httptest.NewRequest(http.MethodGet, "/auth/user", nil)
	rec := httptest.NewRecorder()

	h.currentUser(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCurrentUser_StaleCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, auth := newHandlerWithAuth(t, ctrl)
	auth.EXPECT().
		ResolveSession(gomock.Any(), "deleted-user-id").
		Return(models.User{}, service.ErrNotAuthenticated)

	req := httptest.NewRequest(http.MethodGet, "/auth/user", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "deleted-user-id"})
	rec := httptest.NewRecorder()

	h.currentUser(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
