package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

// listParams parses the skip/limit pagination query parameters.
func listParams(r *http.Request) (int, int, error) {
	skip := 0
	limit := defaultListLimit

	if s := r.URL.Query().Get("skip"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			return 0, 0, errors.New("skip must be a non-negative integer")
		}
		skip = v
	}

	if s := r.URL.Query().Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 || v > maxListLimit {
			return 0, 0, errors.New("limit must be an integer between 1 and 1000")
		}
		limit = v
	}

	return skip, limit, nil
}

func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func (h *Handler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := listParams(r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	users, err := h.store.GetAllUsers(skip, limit)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "users retrieved", users)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.badRequest(w, r, errors.New("invalid user id"))
		return
	}

	user, err := h.store.GetUserByID(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "user not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "user retrieved", user)
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.badRequest(w, r, errors.New("invalid user id"))
		return
	}

	if err := h.store.DeleteUser(id); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "user not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "user deleted", nil)
}
