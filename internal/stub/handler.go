package stub

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-auth-session-client/internal/logger"
	"github.com/MKhiriev/go-auth-session-client/internal/store"
)

// Handler exposes a [Backend] over HTTP.
type Handler struct {
	backend *Backend

	logger *logger.Logger
}

// NewHandler constructs a [Handler] serving backend.
func NewHandler(backend *Backend, logger *logger.Logger) *Handler {
	logger.Info().Msg("stub http handler created")
	return &Handler{
		backend: backend,
		logger:  logger,
	}
}

var errorStatusMap = map[error]int{
	ErrInvalidDataProvided: http.StatusBadRequest,
	ErrInvalidID:           http.StatusBadRequest,
	ErrMissingRedirect:     http.StatusBadRequest,
	ErrWrongPassword:       http.StatusUnauthorized,

	store.ErrEmailAlreadyExists:   http.StatusConflict,
	store.ErrNoUserWasFound:       http.StatusNotFound,
	store.ErrSessionNotFound:      http.StatusNotFound,
	store.ErrRefreshTokenMismatch: http.StatusUnauthorized,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// fail logs err on the request logger and answers with the mapped status.
// Internal errors are not echoed to the caller.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)
	logger.FromRequest(r).Err(err).Int("status", status).Msg(msg)

	text := err.Error()
	if status == http.StatusInternalServerError {
		text = http.StatusText(http.StatusInternalServerError)
	}
	http.Error(w, text, status)
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, ErrInvalidID
	}
	return id, nil
}
