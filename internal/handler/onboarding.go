package handler

import (
	"errors"
	"net/http"

	"github.com/kunal2217/employee-registration/backend/internal/domain"
	"github.com/kunal2217/employee-registration/backend/internal/session"
)

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "Employee Registration API", map[string]string{"version": "1.0.0"})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "healthy", nil)
}

func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	h.sessionResponse(w, r, session.New(), "session created", nil)
}

func (h *Handler) SavePersonal(w http.ResponseWriter, r *http.Request) {
	info := &domain.PersonalInfo{}
	if err := h.readJSON(r, info); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.validator.Personal(info); err != nil {
		h.stepError(w, r, err)
		return
	}

	sessionID := h.sessionID(r)
	if err := h.staging.Save(r.Context(), sessionID, domain.StepPersonal, info); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.sessionResponse(w, r, sessionID, "personal information saved", nil)
}

func (h *Handler) SaveEducation(w http.ResponseWriter, r *http.Request) {
	info := &domain.EducationInfo{}
	if err := h.readJSON(r, info); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.validator.Education(info); err != nil {
		h.stepError(w, r, err)
		return
	}

	sessionID := h.sessionID(r)
	if err := h.staging.Save(r.Context(), sessionID, domain.StepEducation, info); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.sessionResponse(w, r, sessionID, "education information saved", nil)
}

func (h *Handler) SaveExperience(w http.ResponseWriter, r *http.Request) {
	info := &domain.ExperienceInfo{}
	if err := h.readJSON(r, info); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.validator.Experience(info); err != nil {
		h.stepError(w, r, err)
		return
	}

	sessionID := h.sessionID(r)
	if err := h.staging.Save(r.Context(), sessionID, domain.StepExperience, info); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.sessionResponse(w, r, sessionID, "experience information saved", nil)
}

func (h *Handler) GetPersonal(w http.ResponseWriter, r *http.Request) {
	sessionID := h.sessionID(r)

	info := &domain.PersonalInfo{}
	ok, err := h.staging.Load(r.Context(), sessionID, domain.StepPersonal, info)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if !ok {
		h.sessionResponse(w, r, sessionID, "no personal information staged", nil)
		return
	}

	h.sessionResponse(w, r, sessionID, "personal information retrieved", info)
}

func (h *Handler) GetEducation(w http.ResponseWriter, r *http.Request) {
	sessionID := h.sessionID(r)

	info := &domain.EducationInfo{}
	ok, err := h.staging.Load(r.Context(), sessionID, domain.StepEducation, info)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if !ok {
		h.sessionResponse(w, r, sessionID, "no education information staged", nil)
		return
	}

	h.sessionResponse(w, r, sessionID, "education information retrieved", info)
}

func (h *Handler) SubmitFinal(w http.ResponseWriter, r *http.Request) {
	sessionID := h.sessionID(r)

	user, err := h.submitter.Submit(r.Context(), sessionID)
	if err != nil {
		var incompleteErr *domain.IncompleteSubmissionError
		var validationErr *domain.ValidationFailedError
		switch {
		case errors.As(err, &incompleteErr):
			h.errorResponse(w, r, http.StatusBadRequest, incompleteErr.Error())
		case errors.As(err, &validationErr):
			h.validationFailed(w, r, validationErr)
		case errors.Is(err, domain.ErrDuplicateEmail):
			h.errorResponse(w, r, http.StatusBadRequest, err.Error())
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.sessionResponse(w, r, sessionID, "registration completed", user)
}

// stepError maps a step-save validation result: constraint violations get the
// per-field detail response, anything else is an unexpected validator error.
func (h *Handler) stepError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *domain.ValidationFailedError
	if errors.As(err, &validationErr) {
		h.validationFailed(w, r, validationErr)
		return
	}
	h.internalServerError(w, r, err)
}
