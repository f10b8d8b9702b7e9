package handler

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/kunal2217/employee-registration/backend/internal/config"
	"github.com/kunal2217/employee-registration/backend/internal/domain"
	"github.com/kunal2217/employee-registration/backend/internal/validation"
)

// StagingStore is the staging-side surface the step endpoints use.
type StagingStore interface {
	Save(ctx context.Context, sessionID string, step domain.Step, payload any) error
	Load(ctx context.Context, sessionID string, step domain.Step, dst any) (bool, error)
}

// RecordStore is the durable-side surface of the admin and employee
// endpoints. Satisfied by *repository.Repository.
type RecordStore interface {
	GetAllUsers(skip int, limit int) ([]*domain.UserRecord, error)
	GetUserByID(id int64) (*domain.UserRecord, error)
	DeleteUser(id int64) error

	CreateEmployee(employee *domain.Employee) error
	GetAllEmployees(skip int, limit int) ([]*domain.Employee, error)
	GetEmployeeByID(id int64) (*domain.Employee, error)
	UpdateEmployee(employee *domain.Employee) error
	DeleteEmployee(id int64) error
}

// Submitter runs the final-submission saga.
type Submitter interface {
	Submit(ctx context.Context, sessionID string) (*domain.UserRecord, error)
}

type Handler struct {
	config    *config.Config
	validator *validation.Validator
	staging   StagingStore
	store     RecordStore
	submitter Submitter

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, validator *validation.Validator, staging StagingStore, store RecordStore, submitter Submitter) *Handler {
	return &Handler{
		config:    cfg,
		validator: validator,
		staging:   staging,
		store:     store,
		submitter: submitter,

		Mux: chi.NewRouter(),
	}
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)
	h.Mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.config.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Session-ID"},
		AllowCredentials: true,
	}))

	h.Mux.Get("/", h.Root)
	h.Mux.Get("/health", h.Health)

	h.Mux.Route("/api", func(r chi.Router) {
		r.Post("/create-session", h.CreateSession)

		// staged onboarding steps, namespaced by the session token
		r.Group(func(r chi.Router) {
			r.Use(h.session)
			r.Post("/personal", h.SavePersonal)
			r.Get("/personal", h.GetPersonal)
			r.Post("/education", h.SaveEducation)
			r.Get("/education", h.GetEducation)
			r.Post("/experience", h.SaveExperience)
			r.Post("/submit-final", h.SubmitFinal)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.GetAllUsers)
			r.Get("/{id}", h.GetUser)
			r.Delete("/{id}", h.DeleteUser)
		})

		r.Route("/employees", func(r chi.Router) {
			r.Post("/", h.CreateEmployee)
			r.Get("/", h.GetAllEmployees)
			r.Get("/{id}", h.GetEmployee)
			r.Put("/{id}", h.UpdateEmployee)
			r.Delete("/{id}", h.DeleteEmployee)
		})
	})
}
