package http

import (
	"errors"
	"net/http"

	"github.com/avoronin/go-user-gate/internal/logger"
	"github.com/avoronin/go-user-gate/internal/service"
	"github.com/avoronin/go-user-gate/internal/store"
)

// errorStatusMap translates domain sentinels into HTTP status codes.
//
// Two mappings are deliberate rather than conventional:
//   - a duplicate email on sign-up is 400, not 409;
//   - an anonymous /auth/user is 404, not 401, hiding whether a session
//     cookie was present at all.
//
// Unknown-email and wrong-password stay distinct (404 vs 400), so sign-in
// responses do reveal whether an email is registered.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrWrongPassword:       http.StatusBadRequest,
	service.ErrNotAuthenticated:    http.StatusNotFound,

	store.ErrEmailAlreadyExists: http.StatusBadRequest,
	store.ErrNoUserWasFound:     http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError converts a service-layer error into an HTTP response.
// Expected negative outcomes keep their sentinel message and a warn-level
// log line; anything mapping to 500 is logged as an error and answered
// with a generic body so internals never leak to the caller.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed with internal error")
		http.Error(w, http.StatusText(status), status)
		return
	}

	log.Warn().Err(err).Int("status", status).Msg("request rejected")
	http.Error(w, err.Error(), status)
}
