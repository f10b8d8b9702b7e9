package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/kunal2217/employee-registration/backend/internal/config"
)

type Repository struct {
	cfg    *config.Config
	dbpool *sql.DB
}

func NewRepository(cfg *config.Config, dbpool *sql.DB) *Repository {
	return &Repository{
		cfg:    cfg,
		dbpool: dbpool,
	}
}

func (r *Repository) queryContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
}

// Bootstrap creates the tables and uniqueness constraints if they do not
// exist yet. The email constraints are the authoritative duplicate guard for
// concurrent submissions.
func (r *Repository) Bootstrap(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id bigserial PRIMARY KEY,
			name varchar(255) NOT NULL,
			phone_number varchar(20) NOT NULL,
			email varchar(255) NOT NULL,
			date_of_birth date NOT NULL,
			tenth_percentage numeric(5, 2),
			twelfth_percentage numeric(5, 2),
			graduation_marks numeric(5, 2),
			company_name varchar(255),
			domain varchar(255),
			years_of_experience numeric(4, 1),
			last_salary numeric(12, 2),
			created_at timestamptz NOT NULL DEFAULT now(),
			updated_at timestamptz,
			CONSTRAINT users_email_key UNIQUE (email)
		)`,
		`CREATE TABLE IF NOT EXISTS employees (
			id bigserial PRIMARY KEY,
			employee_id varchar(50) NOT NULL,
			name varchar(255) NOT NULL,
			email varchar(255) NOT NULL,
			department varchar(255) NOT NULL,
			position varchar(255) NOT NULL,
			salary numeric(12, 2) NOT NULL,
			created_at timestamptz NOT NULL DEFAULT now(),
			updated_at timestamptz,
			CONSTRAINT employees_employee_id_key UNIQUE (employee_id),
			CONSTRAINT employees_email_key UNIQUE (email)
		)`,
	}

	for _, stmt := range statements {
		if _, err := r.dbpool.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	return nil
}
