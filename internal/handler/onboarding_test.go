package handler

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kunal2217/employee-registration/backend/internal/config"
	"github.com/kunal2217/employee-registration/backend/internal/domain"
	"github.com/kunal2217/employee-registration/backend/internal/session"
	"github.com/kunal2217/employee-registration/backend/internal/validation"
)

// stubStaging stages payloads in memory, round-tripping them through JSON the
// way the redis-backed store does.
type stubStaging struct {
	entries map[string][]byte
	saveErr error
}

func newStubStaging() *stubStaging {
	return &stubStaging{entries: make(map[string][]byte)}
}

func (s *stubStaging) key(sessionID string, step domain.Step) string {
	return sessionID + ":" + string(step)
}

func (s *stubStaging) Save(ctx context.Context, sessionID string, step domain.Step, payload any) error {
	if s.saveErr != nil {
		return s.saveErr
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	s.entries[s.key(sessionID, step)] = data
	return nil
}

func (s *stubStaging) Load(ctx context.Context, sessionID string, step domain.Step, dst any) (bool, error) {
	data, ok := s.entries[s.key(sessionID, step)]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dst)
}

type stubRecordStore struct {
	users     map[int64]*domain.UserRecord
	employees map[int64]*domain.Employee
	err       error
}

func newStubRecordStore() *stubRecordStore {
	return &stubRecordStore{
		users:     make(map[int64]*domain.UserRecord),
		employees: make(map[int64]*domain.Employee),
	}
}

func (s *stubRecordStore) GetAllUsers(skip int, limit int) ([]*domain.UserRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	users := make([]*domain.UserRecord, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	return users, nil
}

func (s *stubRecordStore) GetUserByID(id int64) (*domain.UserRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, sql.ErrNoRows
}

func (s *stubRecordStore) DeleteUser(id int64) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.users[id]; !ok {
		return sql.ErrNoRows
	}
	delete(s.users, id)
	return nil
}

func (s *stubRecordStore) CreateEmployee(employee *domain.Employee) error {
	if s.err != nil {
		return s.err
	}
	employee.ID = int64(len(s.employees) + 1)
	employee.CreatedAt = time.Now()
	s.employees[employee.ID] = employee
	return nil
}

func (s *stubRecordStore) GetAllEmployees(skip int, limit int) ([]*domain.Employee, error) {
	if s.err != nil {
		return nil, s.err
	}
	employees := make([]*domain.Employee, 0, len(s.employees))
	for _, e := range s.employees {
		employees = append(employees, e)
	}
	return employees, nil
}

func (s *stubRecordStore) GetEmployeeByID(id int64) (*domain.Employee, error) {
	if s.err != nil {
		return nil, s.err
	}
	if e, ok := s.employees[id]; ok {
		return e, nil
	}
	return nil, sql.ErrNoRows
}

func (s *stubRecordStore) UpdateEmployee(employee *domain.Employee) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.employees[employee.ID]; !ok {
		return sql.ErrNoRows
	}
	s.employees[employee.ID] = employee
	return nil
}

func (s *stubRecordStore) DeleteEmployee(id int64) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.employees[id]; !ok {
		return sql.ErrNoRows
	}
	delete(s.employees, id)
	return nil
}

type stubSubmitter struct {
	user      *domain.UserRecord
	err       error
	sessionID string
}

func (s *stubSubmitter) Submit(ctx context.Context, sessionID string) (*domain.UserRecord, error) {
	s.sessionID = sessionID
	return s.user, s.err
}

func newTestHandler(t *testing.T, staging *stubStaging, store *stubRecordStore, submitter Submitter) *Handler {
	t.Helper()

	validator, err := validation.New()
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.CORS.AllowedOrigins = []string{"http://localhost:3000"}

	h := NewHandler(cfg, validator, staging, store, submitter)
	h.RegisterRoutes()
	return h
}

func doRequest(t *testing.T, h *Handler, method string, path string, sessionID string, body any) (*httptest.ResponseRecorder, Response) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if sessionID != "" {
		req.Header.Set(session.Header, sessionID)
	}

	rec := httptest.NewRecorder()
	h.Mux.ServeHTTP(rec, req)

	resp := Response{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func TestCreateSession(t *testing.T) {
	h := newTestHandler(t, newStubStaging(), newStubRecordStore(), &stubSubmitter{})

	rec, resp := doRequest(t, h, http.MethodPost, "/api/create-session", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.SessionID)
}

func TestSavePersonal(t *testing.T) {
	valid := map[string]any{
		"name":          "A",
		"phone_number":  "1234567890",
		"email":         "a@x.com",
		"date_of_birth": "2000-01-01",
	}

	t.Run("stages valid payload under the supplied session", func(t *testing.T) {
		staging := newStubStaging()
		h := newTestHandler(t, staging, newStubRecordStore(), &stubSubmitter{})

		rec, resp := doRequest(t, h, http.MethodPost, "/api/personal", "sess-1", valid)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, resp.Success)
		assert.Equal(t, "sess-1", resp.SessionID)
		assert.Contains(t, staging.entries, "sess-1:personal")
	})

	t.Run("mints a session when the header is absent", func(t *testing.T) {
		staging := newStubStaging()
		h := newTestHandler(t, staging, newStubRecordStore(), &stubSubmitter{})

		rec, resp := doRequest(t, h, http.MethodPost, "/api/personal", "", valid)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, resp.SessionID)
		assert.Contains(t, staging.entries, resp.SessionID+":personal")
	})

	t.Run("rejects a five digit phone naming the field", func(t *testing.T) {
		staging := newStubStaging()
		h := newTestHandler(t, staging, newStubRecordStore(), &stubSubmitter{})

		payload := map[string]any{
			"name":          "A",
			"phone_number":  "12345",
			"email":         "a@x.com",
			"date_of_birth": "2000-01-01",
		}
		rec, resp := doRequest(t, h, http.MethodPost, "/api/personal", "sess-1", payload)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, resp.Success)
		assert.Contains(t, resp.Message, "phone_number")
		assert.Empty(t, staging.entries)
	})

	t.Run("rejects a malformed body", func(t *testing.T) {
		h := newTestHandler(t, newStubStaging(), newStubRecordStore(), &stubSubmitter{})

		req := httptest.NewRequest(http.MethodPost, "/api/personal", bytes.NewReader([]byte("{not json")))
		rec := httptest.NewRecorder()
		h.Mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("staging failure is a server error", func(t *testing.T) {
		staging := newStubStaging()
		staging.saveErr = errors.New("connection refused")
		h := newTestHandler(t, staging, newStubRecordStore(), &stubSubmitter{})

		rec, _ := doRequest(t, h, http.MethodPost, "/api/personal", "sess-1", valid)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestSaveEducation_RejectsOutOfRangePercentage(t *testing.T) {
	staging := newStubStaging()
	h := newTestHandler(t, staging, newStubRecordStore(), &stubSubmitter{})

	payload := map[string]any{
		"tenth_percentage":   105,
		"twelfth_percentage": 85,
		"graduation_marks":   75,
	}
	rec, resp := doRequest(t, h, http.MethodPost, "/api/education", "sess-1", payload)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp.Message, "tenth_percentage")
	assert.Empty(t, staging.entries)
}

func TestGetPersonal(t *testing.T) {
	t.Run("returns the staged payload", func(t *testing.T) {
		staging := newStubStaging()
		h := newTestHandler(t, staging, newStubRecordStore(), &stubSubmitter{})

		payload := map[string]any{
			"name":          "A",
			"phone_number":  "1234567890",
			"email":         "a@x.com",
			"date_of_birth": "2000-01-01",
		}
		_, _ = doRequest(t, h, http.MethodPost, "/api/personal", "sess-1", payload)

		rec, resp := doRequest(t, h, http.MethodGet, "/api/personal", "sess-1", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, resp.Data)
		data := resp.Data.(map[string]any)
		assert.Equal(t, "a@x.com", data["email"])
	})

	t.Run("empty session yields no data", func(t *testing.T) {
		h := newTestHandler(t, newStubStaging(), newStubRecordStore(), &stubSubmitter{})

		rec, resp := doRequest(t, h, http.MethodGet, "/api/personal", "sess-unknown", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, resp.Success)
		assert.Nil(t, resp.Data)
	})
}

func TestSubmitFinal(t *testing.T) {
	tests := []struct {
		name        string
		submitter   *stubSubmitter
		wantStatus  int
		wantMessage string
	}{
		{
			name: "incomplete submission",
			submitter: &stubSubmitter{
				err: &domain.IncompleteSubmissionError{Missing: []domain.Step{domain.StepExperience}},
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "experience",
		},
		{
			name: "validation failure",
			submitter: &stubSubmitter{
				err: &domain.ValidationFailedError{
					Step:   domain.StepPersonal,
					Fields: []domain.FieldError{{Field: "phone_number", Message: "phone_number must be exactly 10 digits"}},
				},
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "phone_number",
		},
		{
			name:        "duplicate email",
			submitter:   &stubSubmitter{err: domain.ErrDuplicateEmail},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "email",
		},
		{
			name:       "store unavailable",
			submitter:  &stubSubmitter{err: &domain.StoreUnavailableError{Store: "durable", Err: errors.New("down")}},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, newStubStaging(), newStubRecordStore(), tt.submitter)

			rec, resp := doRequest(t, h, http.MethodPost, "/api/submit-final", "sess-1", nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.False(t, resp.Success)
			assert.Equal(t, "sess-1", tt.submitter.sessionID)
			if tt.wantMessage != "" {
				assert.Contains(t, resp.Message, tt.wantMessage)
			}
		})
	}

	t.Run("success returns the committed record", func(t *testing.T) {
		submitter := &stubSubmitter{
			user: &domain.UserRecord{
				ID:    7,
				Name:  "A",
				Email: "a@x.com",
			},
		}
		h := newTestHandler(t, newStubStaging(), newStubRecordStore(), submitter)

		rec, resp := doRequest(t, h, http.MethodPost, "/api/submit-final", "sess-1", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, resp.Success)
		assert.Equal(t, "sess-1", resp.SessionID)

		data := resp.Data.(map[string]any)
		assert.Equal(t, float64(7), data["id"])
		assert.Equal(t, "a@x.com", data["email"])
	})
}
