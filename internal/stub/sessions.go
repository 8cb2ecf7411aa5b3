package stub

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-auth-session-client/internal/logger"
	"github.com/MKhiriev/go-auth-session-client/internal/utils"
	"github.com/MKhiriev/go-auth-session-client/models"
)

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := pathID(r, "sessionID")
	if err != nil {
		h.fail(w, r, err, "bad session id")
		return
	}

	session, err := h.backend.GetSession(r.Context(), sessionID)
	if err != nil {
		h.fail(w, r, err, "get session failed")
		return
	}

	utils.WriteJSON(w, session, http.StatusOK)
}

func (h *Handler) getSessionsByUserID(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userID")
	if err != nil {
		h.fail(w, r, err, "bad user id")
		return
	}

	sessions, err := h.backend.GetSessionsByUserID(r.Context(), userID)
	if err != nil {
		h.fail(w, r, err, "get user sessions failed")
		return
	}

	utils.WriteJSON(w, sessions, http.StatusOK)
}

func (h *Handler) refreshSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	sessionID, err := pathID(r, "sessionID")
	if err != nil {
		h.fail(w, r, err, "bad session id")
		return
	}

	var req models.RefreshRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	session, err := h.backend.Refresh(r.Context(), sessionID, req.RefreshToken)
	if err != nil {
		h.fail(w, r, err, "refresh session failed")
		return
	}

	utils.WriteJSON(w, session, http.StatusOK)
}

func (h *Handler) revokeSession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := pathID(r, "sessionID")
	if err != nil {
		h.fail(w, r, err, "bad session id")
		return
	}

	if err = h.backend.RevokeSession(r.Context(), sessionID); err != nil {
		h.fail(w, r, err, "revoke session failed")
		return
	}

	utils.WriteText(w, fmt.Sprintf("Session '%d' deleted successfully!", sessionID), http.StatusOK)
}

func (h *Handler) revokeUserSessions(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userID")
	if err != nil {
		h.fail(w, r, err, "bad user id")
		return
	}

	if err = h.backend.RevokeUserSessions(r.Context(), userID); err != nil {
		h.fail(w, r, err, "revoke user sessions failed")
		return
	}

	utils.WriteText(w, fmt.Sprintf("Sessions from User '%d' deleted successfully!", userID), http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userID")
	if err != nil {
		h.fail(w, r, err, "bad user id")
		return
	}

	if err = h.backend.DeleteUser(r.Context(), userID); err != nil {
		h.fail(w, r, err, "delete user failed")
		return
	}

	utils.WriteText(w, fmt.Sprintf("User '%d' deleted successfully!", userID), http.StatusOK)
}
