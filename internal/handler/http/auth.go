package http

import (
	"encoding/json"
	"net/http"

	"github.com/avoronin/go-user-gate/internal/logger"
	"github.com/avoronin/go-user-gate/internal/utils"
	"github.com/avoronin/go-user-gate/models"
)

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := validateSignUpRequest(req); err != nil {
		log.Warn().Err(err).Msg("sign-up request failed validation")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.SignUp(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	log.Debug().Str("id", registeredUser.UserID).Msg("user successfully signed up")

	h.setSessionCookie(w, registeredUser.UserID)
	utils.WriteJSON(w, registeredUser.PublicView(), http.StatusCreated)
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := validateSignInRequest(req); err != nil {
		log.Warn().Err(err).Msg("sign-in request failed validation")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	log.Debug().Str("id", foundUser.UserID).Msg("user successfully signed in")

	h.setSessionCookie(w, foundUser.UserID)
	utils.WriteJSON(w, foundUser.PublicView(), http.StatusCreated)
}

// signOut is stateless: there is no server-side session record, so ending a
// session is nothing more than expiring the cookie on the caller's side.
// It succeeds even for anonymous callers.
func (h *Handler) signOut(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	foundUser, err := h.services.AuthService.ResolveSession(ctx, sessionIDFromRequest(r))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, foundUser.PublicView(), http.StatusOK)
}
