package repository

import (
	"database/sql"

	"github.com/kunal2217/employee-registration/backend/internal/domain"
)

// CreateUser commits a merged user record in a single INSERT. The unique
// constraint on email rejects a concurrent duplicate submission here even
// when the pre-check passed.
func (r *Repository) CreateUser(user *domain.UserRecord) error {
	query := `
		INSERT INTO users (name, phone_number, email, date_of_birth, tenth_percentage, twelfth_percentage, graduation_marks, company_name, domain, years_of_experience, last_salary)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	args := []any{
		user.Name, user.PhoneNumber, user.Email, user.DateOfBirth,
		user.TenthPercentage, user.TwelfthPercentage, user.GraduationMarks,
		user.CompanyName, user.Domain, user.YearsOfExperience, user.LastSalary,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&user.ID, &user.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) EmailExists(email string) (bool, error) {
	isExists := false

	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)
	`
	if err := r.dbpool.QueryRowContext(ctx, query, email).Scan(&isExists); err != nil {
		return false, err
	}

	return isExists, nil
}

func (r *Repository) GetUserByID(id int64) (*domain.UserRecord, error) {
	query := `
		SELECT name, phone_number, email, date_of_birth, tenth_percentage, twelfth_percentage, graduation_marks, company_name, domain, years_of_experience, last_salary, created_at, updated_at
		FROM users WHERE id = $1
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	user := &domain.UserRecord{
		ID: id,
	}

	dst := []any{
		&user.Name, &user.PhoneNumber, &user.Email, &user.DateOfBirth,
		&user.TenthPercentage, &user.TwelfthPercentage, &user.GraduationMarks,
		&user.CompanyName, &user.Domain, &user.YearsOfExperience, &user.LastSalary,
		&user.CreatedAt, &user.UpdatedAt,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return user, nil
}

func (r *Repository) GetUserByEmail(email string) (*domain.UserRecord, error) {
	query := `
		SELECT id, name, phone_number, date_of_birth, tenth_percentage, twelfth_percentage, graduation_marks, company_name, domain, years_of_experience, last_salary, created_at, updated_at
		FROM users WHERE email = $1
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	user := &domain.UserRecord{
		Email: email,
	}

	dst := []any{
		&user.ID, &user.Name, &user.PhoneNumber, &user.DateOfBirth,
		&user.TenthPercentage, &user.TwelfthPercentage, &user.GraduationMarks,
		&user.CompanyName, &user.Domain, &user.YearsOfExperience, &user.LastSalary,
		&user.CreatedAt, &user.UpdatedAt,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, email).Scan(dst...); err != nil {
		return nil, err
	}

	return user, nil
}

func (r *Repository) GetAllUsers(skip int, limit int) ([]*domain.UserRecord, error) {
	query := `
		SELECT id, name, phone_number, email, date_of_birth, tenth_percentage, twelfth_percentage, graduation_marks, company_name, domain, years_of_experience, last_salary, created_at, updated_at
		FROM users ORDER BY id OFFSET $1 LIMIT $2
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*domain.UserRecord, 0)
	for rows.Next() {
		user := &domain.UserRecord{}
		dst := []any{
			&user.ID, &user.Name, &user.PhoneNumber, &user.Email, &user.DateOfBirth,
			&user.TenthPercentage, &user.TwelfthPercentage, &user.GraduationMarks,
			&user.CompanyName, &user.Domain, &user.YearsOfExperience, &user.LastSalary,
			&user.CreatedAt, &user.UpdatedAt,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

func (r *Repository) DeleteUser(id int64) error {
	query := `
		DELETE FROM users WHERE id = $1
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	result, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
