package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/avoronin/go-user-gate/internal/config"
	"github.com/avoronin/go-user-gate/internal/logger"
	"github.com/avoronin/go-user-gate/internal/utils"
	"github.com/avoronin/go-user-gate/models"
)

// sessionCookieName must match the cookie the server issues.
const sessionCookieName = "userId"

type httpServerAdapter struct {
	client *utils.HTTPClient

	sessionID string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// cfg.ServerAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if cfg.ServerAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(cfg config.Client, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.ServerAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetSession implements [ServerAdapter]. It stores the session identifier
// (whitespace-trimmed) for use as the userId cookie on subsequent requests.
func (h *httpServerAdapter) SetSession(sessionID string) {
	h.sessionID = strings.TrimSpace(sessionID)
}

// Session implements [ServerAdapter].
func (h *httpServerAdapter) Session() string {
	return h.sessionID
}

// SignUp implements [ServerAdapter]. It POSTs the payload to /auth/signup,
// stores the session cookie from the response, and returns the created
// user's public view.
func (h *httpServerAdapter) SignUp(ctx context.Context, req models.SignUpRequest) (models.UserView, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/auth/signup")
	if err != nil {
		return models.UserView{}, fmt.Errorf("signup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserView{}, err
	}

	h.captureSession(resp)
	return decodeUserView(resp)
}

// SignIn implements [ServerAdapter]. It POSTs the payload to /auth/signin
// and stores the session cookie from the response.
func (h *httpServerAdapter) SignIn(ctx context.Context, req models.SignInRequest) (models.UserView, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/auth/signin")
	if err != nil {
		return models.UserView{}, fmt.Errorf("signin request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserView{}, err
	}

	h.captureSession(resp)
	return decodeUserView(resp)
}

// SignOut implements [ServerAdapter]. The stored session is dropped even if
// the request fails: the server keeps no session state, so a lost response
// changes nothing.
func (h *httpServerAdapter) SignOut(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetCookie(h.sessionCookie()).
		Get("/auth/signout")

	h.SetSession("")

	if err != nil {
		return fmt.Errorf("signout request: %w", err)
	}
	return mapHTTPError(resp)
}

// CurrentUser implements [ServerAdapter]. It GETs /auth/user with the
// stored session cookie.
func (h *httpServerAdapter) CurrentUser(ctx context.Context) (models.UserView, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetCookie(h.sessionCookie()).
		Get("/auth/user")
	if err != nil {
		return models.UserView{}, fmt.Errorf("current user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserView{}, err
	}

	return decodeUserView(resp)
}

// captureSession stores the userId cookie from resp, if present.
func (h *httpServerAdapter) captureSession(resp *resty.Response) {
	for _, c := range resp.Cookies() {
		if c.Name == sessionCookieName {
			h.SetSession(c.Value)
			return
		}
	}
}

func (h *httpServerAdapter) sessionCookie() *http.Cookie {
	return &http.Cookie{Name: sessionCookieName, Value: h.sessionID}
}

func decodeUserView(resp *resty.Response) (models.UserView, error) {
	var view models.UserView
	if err := json.Unmarshal(resp.Body(), &view); err != nil {
		return models.UserView{}, fmt.Errorf("decoding user view: %w", err)
	}
	return view, nil
}
