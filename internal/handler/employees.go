package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/kunal2217/employee-registration/backend/internal/domain"
)

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	employee := &domain.Employee{}
	if err := h.readJSON(r, employee); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.validator.Employee(employee); err != nil {
		h.stepError(w, r, err)
		return
	}

	if err := h.store.CreateEmployee(employee); err != nil {
		h.employeeStoreError(w, r, err)
		return
	}

	h.successResponse(w, r, "employee created", employee)
}

func (h *Handler) GetAllEmployees(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := listParams(r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	employees, err := h.store.GetAllEmployees(skip, limit)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "employees retrieved", employees)
}

func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.badRequest(w, r, errors.New("invalid employee id"))
		return
	}

	employee, err := h.store.GetEmployeeByID(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "employee not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "employee retrieved", employee)
}

func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.badRequest(w, r, errors.New("invalid employee id"))
		return
	}

	employee := &domain.Employee{}
	if err := h.readJSON(r, employee); err != nil {
		h.badRequest(w, r, err)
		return
	}
	employee.ID = id

	if err := h.validator.Employee(employee); err != nil {
		h.stepError(w, r, err)
		return
	}

	if err := h.store.UpdateEmployee(employee); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "employee not found")
		default:
			h.employeeStoreError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "employee updated", employee)
}

func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.badRequest(w, r, errors.New("invalid employee id"))
		return
	}

	if err := h.store.DeleteEmployee(id); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "employee not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "employee deleted", nil)
}

// employeeStoreError turns employee uniqueness violations into client errors.
func (h *Handler) employeeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.ConstraintName {
		case "employees_employee_id_key":
			h.errorResponse(w, r, http.StatusBadRequest, "an employee with this employee_id already exists")
			return
		case "employees_email_key":
			h.errorResponse(w, r, http.StatusBadRequest, "an employee with this email already exists")
			return
		}
	}
	h.internalServerError(w, r, err)
}
