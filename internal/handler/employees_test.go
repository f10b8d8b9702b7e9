package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kunal2217/employee-registration/backend/internal/domain"
)

func validEmployeePayload() map[string]any {
	return map[string]any{
		"employee_id": "EMP1001",
		"name":        "A",
		"email":       "a@x.com",
		"department":  "Engineering",
		"position":    "Developer",
		"salary":      50000,
	}
}

func TestCreateEmployee(t *testing.T) {
	t.Run("creates a valid employee", func(t *testing.T) {
		store := newStubRecordStore()
		h := newTestHandler(t, newStubStaging(), store, &stubSubmitter{})

		rec, resp := doRequest(t, h, http.MethodPost, "/api/employees/", "", validEmployeePayload())

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, resp.Success)
		require.Len(t, store.employees, 1)

		data := resp.Data.(map[string]any)
		assert.Equal(t, "EMP1001", data["employee_id"])
		assert.NotZero(t, data["id"])
	})

	t.Run("rejects a negative salary", func(t *testing.T) {
		store := newStubRecordStore()
		h := newTestHandler(t, newStubStaging(), store, &stubSubmitter{})

		payload := validEmployeePayload()
		payload["salary"] = -1

		rec, resp := doRequest(t, h, http.MethodPost, "/api/employees/", "", payload)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, resp.Message, "salary")
		assert.Empty(t, store.employees)
	})

	t.Run("maps a duplicate employee_id to a client error", func(t *testing.T) {
		store := newStubRecordStore()
		store.err = &pgconn.PgError{Code: "23505", ConstraintName: "employees_employee_id_key"}
		h := newTestHandler(t, newStubStaging(), store, &stubSubmitter{})

		rec, resp := doRequest(t, h, http.MethodPost, "/api/employees/", "", validEmployeePayload())

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, resp.Message, "employee_id")
	})

	t.Run("maps a duplicate email to a client error", func(t *testing.T) {
		store := newStubRecordStore()
		store.err = &pgconn.PgError{Code: "23505", ConstraintName: "employees_email_key"}
		h := newTestHandler(t, newStubStaging(), store, &stubSubmitter{})

		rec, resp := doRequest(t, h, http.MethodPost, "/api/employees/", "", validEmployeePayload())

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, resp.Message, "email")
	})
}

func TestGetEmployee(t *testing.T) {
	store := newStubRecordStore()
	store.employees[3] = &domain.Employee{ID: 3, EmployeeID: "EMP1003", Name: "B", Email: "b@x.com", Department: "HR", Position: "Manager", CreatedAt: time.Now()}
	h := newTestHandler(t, newStubStaging(), store, &stubSubmitter{})

	t.Run("found", func(t *testing.T) {
		rec, resp := doRequest(t, h, http.MethodGet, "/api/employees/3", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		data := resp.Data.(map[string]any)
		assert.Equal(t, "EMP1003", data["employee_id"])
	})

	t.Run("not found", func(t *testing.T) {
		rec, resp := doRequest(t, h, http.MethodGet, "/api/employees/99", "", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.False(t, resp.Success)
	})

	t.Run("non numeric id", func(t *testing.T) {
		rec, _ := doRequest(t, h, http.MethodGet, "/api/employees/abc", "", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateEmployee(t *testing.T) {
	t.Run("updates an existing employee", func(t *testing.T) {
		store := newStubRecordStore()
		store.employees[3] = &domain.Employee{ID: 3, EmployeeID: "EMP1003", Name: "B", Email: "b@x.com", Department: "HR", Position: "Manager", CreatedAt: time.Now()}
		h := newTestHandler(t, newStubStaging(), store, &stubSubmitter{})

		payload := validEmployeePayload()
		payload["department"] = "Finance"

		rec, resp := doRequest(t, h, http.MethodPut, "/api/employees/3", "", payload)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, resp.Success)
		assert.Equal(t, "Finance", store.employees[3].Department)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		h := newTestHandler(t, newStubStaging(), newStubRecordStore(), &stubSubmitter{})

		rec, _ := doRequest(t, h, http.MethodPut, "/api/employees/99", "", validEmployeePayload())

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeleteEmployee(t *testing.T) {
	store := newStubRecordStore()
	store.employees[3] = &domain.Employee{ID: 3, EmployeeID: "EMP1003", Name: "B", Email: "b@x.com", Department: "HR", Position: "Manager", CreatedAt: time.Now()}
	h := newTestHandler(t, newStubStaging(), store, &stubSubmitter{})

	rec, resp := doRequest(t, h, http.MethodDelete, "/api/employees/3", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.Empty(t, store.employees)

	rec, _ = doRequest(t, h, http.MethodDelete, "/api/employees/3", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetAllUsers(t *testing.T) {
	t.Run("returns stored users", func(t *testing.T) {
		store := newStubRecordStore()
		store.users[1] = &domain.UserRecord{ID: 1, Name: "A", Email: "a@x.com"}
		store.users[2] = &domain.UserRecord{ID: 2, Name: "B", Email: "b@x.com"}
		h := newTestHandler(t, newStubStaging(), store, &stubSubmitter{})

		rec, resp := doRequest(t, h, http.MethodGet, "/api/users/", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, resp.Data.([]any), 2)
	})

	t.Run("rejects bad pagination parameters", func(t *testing.T) {
		h := newTestHandler(t, newStubStaging(), newStubRecordStore(), &stubSubmitter{})

		for _, query := range []string{"skip=-1", "limit=0", "limit=1001", "skip=abc"} {
			rec, _ := doRequest(t, h, http.MethodGet, "/api/users/?"+query, "", nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code, query)
		}
	})
}

func TestGetUser(t *testing.T) {
	store := newStubRecordStore()
	store.users[7] = &domain.UserRecord{ID: 7, Name: "A", Email: "a@x.com"}
	h := newTestHandler(t, newStubStaging(), store, &stubSubmitter{})

	t.Run("found", func(t *testing.T) {
		rec, resp := doRequest(t, h, http.MethodGet, "/api/users/7", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		data := resp.Data.(map[string]any)
		assert.Equal(t, "a@x.com", data["email"])
	})

	t.Run("not found", func(t *testing.T) {
		rec, resp := doRequest(t, h, http.MethodGet, "/api/users/99", "", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.False(t, resp.Success)
	})
}

func TestDeleteUser(t *testing.T) {
	store := newStubRecordStore()
	store.users[7] = &domain.UserRecord{ID: 7, Name: "A", Email: "a@x.com"}
	h := newTestHandler(t, newStubStaging(), store, &stubSubmitter{})

	rec, resp := doRequest(t, h, http.MethodDelete, "/api/users/7", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.Empty(t, store.users)

	rec, _ = doRequest(t, h, http.MethodDelete, "/api/users/7", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
