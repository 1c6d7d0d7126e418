package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/avoronin/go-user-gate/internal/config"
	"github.com/avoronin/go-user-gate/internal/logger"
	"github.com/avoronin/go-user-gate/internal/mock"
	"github.com/avoronin/go-user-gate/internal/service"
)

// newTestRouter wires a full router over a permissive AuthService mock so
// route registration can be exercised end to end.
func newTestRouter(t *testing.T, ctrl *gomock.Controller) http.Handler {
	t.Helper()

	auth := mock.NewMockAuthService(ctrl)
	auth.EXPECT().
		SignUp(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(storedUser, nil).AnyTimes()
	auth.EXPECT().
		SignIn(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(storedUser, nil).AnyTimes()
	auth.EXPECT().
		ResolveSession(gomock.Any(), gomock.Any()).
		Return(storedUser, nil).AnyTimes()

	h := NewHandler(
		&service.Services{AuthService: auth},
		config.App{SessionTTL: 15 * time.Minute},
		logger.Nop(),
	)
	return h.Init()
}

func TestInit_RegisteredRoutes(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		withBody   bool
		wantStatus int
	}{
		{name: "signup is routed", method: http.MethodPost, target: "/auth/signup", withBody: true, wantStatus: http.StatusCreated},
		{name: "signin is routed", method: http.MethodPost, target: "/auth/signin", withBody: true, wantStatus: http.StatusCreated},
		{name: "signout is routed", method: http.MethodGet, target: "/auth/signout", wantStatus: http.StatusOK},
		{name: "current user is routed", method: http.MethodGet, target: "/auth/user", wantStatus: http.StatusOK},
		{name: "unknown path is 404", method: http.MethodGet, target: "/auth/nothing", wantStatus: http.StatusNotFound},
		{name: "wrong method is hidden as 404", method: http.MethodGet, target: "/auth/signup", wantStatus: http.StatusNotFound},
		{name: "signout via POST is hidden as 404", method: http.MethodPost, target: "/auth/signout", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			router := newTestRouter(t, ctrl)

			var req *http.Request
			if tt.withBody {
				req = httptest.NewRequest(tt.method, tt.target, strings.NewReader(jsonBody(t, validSignUp)))
			} else {
				req = httptest.NewRequest(tt.method, tt.target, nil)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

// TestInit_TraceIDOnEveryResponse checks the middleware chain is applied to
// routed requests.
func TestInit_TraceIDOnEveryResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := newTestRouter(t, ctrl)

	req := httptest.NewRequest(http.MethodGet, "/auth/user", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: storedUser.UserID})
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}
