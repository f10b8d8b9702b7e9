package repository

import (
	"database/sql"

	"github.com/kunal2217/employee-registration/backend/internal/domain"
)

func (r *Repository) CreateEmployee(employee *domain.Employee) error {
	query := `
		INSERT INTO employees (employee_id, name, email, department, position, salary)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	args := []any{employee.EmployeeID, employee.Name, employee.Email, employee.Department, employee.Position, employee.Salary}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&employee.ID, &employee.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetEmployeeByID(id int64) (*domain.Employee, error) {
	query := `
		SELECT employee_id, name, email, department, position, salary, created_at, updated_at
		FROM employees WHERE id = $1
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	employee := &domain.Employee{
		ID: id,
	}

	dst := []any{
		&employee.EmployeeID, &employee.Name, &employee.Email,
		&employee.Department, &employee.Position, &employee.Salary,
		&employee.CreatedAt, &employee.UpdatedAt,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return employee, nil
}

func (r *Repository) GetAllEmployees(skip int, limit int) ([]*domain.Employee, error) {
	query := `
		SELECT id, employee_id, name, email, department, position, salary, created_at, updated_at
		FROM employees ORDER BY id OFFSET $1 LIMIT $2
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]*domain.Employee, 0)
	for rows.Next() {
		employee := &domain.Employee{}
		dst := []any{
			&employee.ID, &employee.EmployeeID, &employee.Name, &employee.Email,
			&employee.Department, &employee.Position, &employee.Salary,
			&employee.CreatedAt, &employee.UpdatedAt,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

func (r *Repository) UpdateEmployee(employee *domain.Employee) error {
	query := `
		UPDATE employees
		SET
			employee_id = $1,
			name = $2,
			email = $3,
			department = $4,
			position = $5,
			salary = $6,
			updated_at = now()
		WHERE id = $7
		RETURNING created_at, updated_at
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	args := []any{employee.EmployeeID, employee.Name, employee.Email, employee.Department, employee.Position, employee.Salary, employee.ID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&employee.CreatedAt, &employee.UpdatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteEmployee(id int64) error {
	query := `
		DELETE FROM employees WHERE id = $1
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
