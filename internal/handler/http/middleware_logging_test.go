package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// injectLogger puts a zerolog.Logger into the request context the same way
// the withTraceID middleware does.
func injectLogger(r *http.Request, l zerolog.Logger) *http.Request {
	ctx := l.WithContext(r.Context())
	return r.WithContext(ctx)
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		handlerStatus    int
		handlerResponse  string
		checkLogContains []string
	}{
		{
			name:            "GET 200",
			method:          http.MethodGet,
			path:            "/auth/user",
			handlerStatus:   http.StatusOK,
			handlerResponse: "OK",
			checkLogContains: []string{
				`"method":"GET"`,
				`"uri":"/auth/user"`,
				`"status":200`,
				`"duration":`,
				`"size":2`,
			},
		},
		{
			name:          "POST 400",
			method:        http.MethodPost,
			path:          "/auth/signin",
			handlerStatus: http.StatusBadRequest,
			checkLogContains: []string{
				`"method":"POST"`,
				`"uri":"/auth/signin"`,
				`"status":400`,
			},
		},
		{
			name:          "implicit 200 without WriteHeader",
			method:        http.MethodGet,
			path:          "/auth/signout",
			handlerStatus: 0,
			checkLogContains: []string{
				`"status":200`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newTestHandler()

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.handlerStatus != 0 {
					w.WriteHeader(tt.handlerStatus)
				}
				if tt.handlerResponse != "" {
					_, _ = w.Write([]byte(tt.handlerResponse))
				}
			})

			req := httptest.NewRequest(tt.method, tt.path, nil)
			req = injectLogger(req, zerolog.New(&buf))
			rec := httptest.NewRecorder()

			h.withLogging(next).ServeHTTP(rec, req)

			logLine := buf.String()
			for _, want := range tt.checkLogContains {
				assert.Contains(t, logLine, want)
			}
		})
	}
}

// TestWithLogging_NeverLogsBody makes sure the access log cannot leak a
// request payload: only metadata fields are emitted.
func TestWithLogging_NeverLogsBody(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandler()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodPost, "/auth/signup", bytes.NewReader([]byte(`{"password":"hunter2-hunter2"}`)))
	req = injectLogger(req, zerolog.New(&buf))
	rec := httptest.NewRecorder()

	h.withLogging(next).ServeHTTP(rec, req)

	assert.NotContains(t, buf.String(), "hunter2")
}
