package stub

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-auth-session-client/internal/logger"
	"github.com/MKhiriev/go-auth-session-client/internal/utils"
	"github.com/MKhiriev/go-auth-session-client/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registered, err := h.backend.Register(ctx, user)
	if err != nil {
		h.fail(w, r, err, "user registration failed")
		return
	}

	log.Debug().Int64("user_id", registered.ID).Msg("user registered")
	utils.WriteJSON(w, registered, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	// no session is opened for a login that cannot be redirected
	redirect, err := RedirectTarget(r.URL.Query())
	if err != nil {
		h.fail(w, r, err, "login without redirect")
		return
	}

	session, err := h.backend.Login(ctx, req)
	if err != nil {
		h.fail(w, r, err, "user login failed")
		return
	}

	log.Debug().Int64("session_id", session.ID).Int64("user_id", session.UserID).Msg("user logged in")
	utils.WriteJSON(w, models.LoginResponse{RedirectURL: WithSessionParams(redirect, session)}, http.StatusOK)
}
