package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID         int64           `json:"id"`
	EmployeeID string          `json:"employee_id" validate:"required"`
	Name       string          `json:"name" validate:"required"`
	Email      string          `json:"email" validate:"required,email"`
	Department string          `json:"department" validate:"required"`
	Position   string          `json:"position" validate:"required"`
	Salary     decimal.Decimal `json:"salary" validate:"gte=0"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  *time.Time      `json:"updated_at,omitempty"`
}
