package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/kunal2217/employee-registration/backend/internal/domain"
)

func (h *Handler) logInternalServerError(r *http.Request, err error) {
	slog.Error("internal server error", "method", r.Method, "path", r.URL.Path, "error", err)
}

func (h *Handler) readJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logInternalServerError(r, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

type Response struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
	Data      any    `json:"data"`
}

func (h *Handler) errorResponse(w http.ResponseWriter, r *http.Request, status int, msg string) {
	h.writeJSON(w, r, status, Response{
		Success: false,
		Message: msg,
		Data:    nil,
	})
}

func (h *Handler) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	h.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

// validationFailed reports every violated field of the request body.
func (h *Handler) validationFailed(w http.ResponseWriter, r *http.Request, verr *domain.ValidationFailedError) {
	h.writeJSON(w, r, http.StatusBadRequest, Response{
		Success: false,
		Message: verr.Error(),
		Data:    verr.Fields,
	})
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request, msg string) {
	h.errorResponse(w, r, http.StatusNotFound, msg)
}

func (h *Handler) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	h.logInternalServerError(r, err)
	h.errorResponse(w, r, http.StatusInternalServerError, "internal server error")
}

func (h *Handler) successResponse(w http.ResponseWriter, r *http.Request, msg string, data any) {
	h.writeJSON(w, r, http.StatusOK, Response{
		Success: true,
		Message: msg,
		Data:    data,
	})
}

// sessionResponse is successResponse plus the session token, echoed so a
// client whose first request minted the session can keep using it.
func (h *Handler) sessionResponse(w http.ResponseWriter, r *http.Request, sessionID string, msg string, data any) {
	h.writeJSON(w, r, http.StatusOK, Response{
		Success:   true,
		Message:   msg,
		SessionID: sessionID,
		Data:      data,
	})
}
