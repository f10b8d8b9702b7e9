package submission

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/kunal2217/employee-registration/backend/internal/domain"
	"github.com/kunal2217/employee-registration/backend/internal/validation"
)

// StagingStore is the slice of the staging store the orchestrator reads from.
type StagingStore interface {
	LoadSession(ctx context.Context, sessionID string) (*domain.StagedSession, error)
	Purge(ctx context.Context, sessionID string) error
}

// UserStore is the slice of the durable store the orchestrator commits to.
type UserStore interface {
	EmailExists(email string) (bool, error)
	CreateUser(user *domain.UserRecord) error
}

// Notifier announces a completed registration. Failures never fail the
// submission.
type Notifier interface {
	RegistrationCompleted(user *domain.UserRecord) error
}

// Orchestrator runs the final-submission saga: read all staged steps, verify
// completeness, re-validate, check for an email conflict, commit one durable
// record, then purge the staged entries. Either all three payloads end up in
// one committed record or the durable store is left untouched.
type Orchestrator struct {
	staging   StagingStore
	users     UserStore
	validator *validation.Validator
	notifier  Notifier
}

func NewOrchestrator(staging StagingStore, users UserStore, validator *validation.Validator, notifier Notifier) *Orchestrator {
	return &Orchestrator{
		staging:   staging,
		users:     users,
		validator: validator,
		notifier:  notifier,
	}
}

// Submit commits the staged session identified by sessionID. On failure the
// staged data is left intact so the client can correct and resubmit; the TTL
// is the only cleanup. Store failures come back as StoreUnavailableError,
// never as raw infrastructure errors.
//
// Submit is not locked against a concurrent Submit for the same session: two
// racing calls can both pass the pre-check, and the unique constraint on
// users.email decides the winner. The loser observes ErrDuplicateEmail.
func (o *Orchestrator) Submit(ctx context.Context, sessionID string) (*domain.UserRecord, error) {
	staged, err := o.staging.LoadSession(ctx, sessionID)
	if err != nil {
		return nil, &domain.StoreUnavailableError{Store: "staging", Err: err}
	}

	if missing := staged.MissingSteps(); len(missing) > 0 {
		return nil, &domain.IncompleteSubmissionError{Missing: missing}
	}

	// second validation pass: the staged payloads were validated at save time,
	// this guards against stale or corrupted staged data
	if err := o.validator.Personal(staged.Personal); err != nil {
		return nil, err
	}
	if err := o.validator.Education(staged.Education); err != nil {
		return nil, err
	}
	if err := o.validator.Experience(staged.Experience); err != nil {
		return nil, err
	}

	// fast-path duplicate check for a better error message; the unique
	// constraint below is the authoritative guard
	exists, err := o.users.EmailExists(staged.Personal.Email)
	if err != nil {
		return nil, &domain.StoreUnavailableError{Store: "durable", Err: err}
	}
	if exists {
		return nil, domain.ErrDuplicateEmail
	}

	user := domain.NewUserRecord(staged.Personal, staged.Education, staged.Experience)
	if err := o.users.CreateUser(user); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName == "users_email_key" {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, &domain.StoreUnavailableError{Store: "durable", Err: err}
	}

	// the durable commit is the source of truth from here on: staged entries
	// that survive a failed purge expire via TTL
	if err := o.staging.Purge(ctx, sessionID); err != nil {
		slog.Error("failed to purge staged session data after commit", "session_id", sessionID, "error", err)
	}

	if o.notifier != nil {
		if err := o.notifier.RegistrationCompleted(user); err != nil {
			slog.Error("failed to publish registration notification", "email", user.Email, "error", err)
		}
	}

	return user, nil
}
