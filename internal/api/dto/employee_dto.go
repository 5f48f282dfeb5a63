package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeRequest payload for creating or replacing an employee profile.
// Omitted is_fresher and leave_balance keep their stored values on replace.
type EmployeeRequest struct {
	UserID            string           `json:"user_id" validate:"required,uuid"`
	Address           map[string]any   `json:"address"`
	Contact           string           `json:"contact" validate:"max=15"`
	DepartmentID      *string          `json:"department_id" validate:"omitempty,uuid"`
	Position          string           `json:"position" validate:"max=100"`
	YearsOfExperience int              `json:"years_of_experience" validate:"gte=0"`
	IsFresher         *bool            `json:"is_fresher"`
	Skills            []any            `json:"skills"`
	MonthlySalary     *decimal.Decimal `json:"monthly_salary" validate:"required"`
	PaymentDetails    map[string]any   `json:"payment_details"`
	LeaveBalance      *int             `json:"leave_balance" validate:"omitempty,gte=0"`
}

// EmployeeResponse renders an employee profile with its decoded JSON fields.
type EmployeeResponse struct {
	ID                string          `json:"id"`
	UserID            string          `json:"user_id"`
	Username          string          `json:"username"`
	Address           map[string]any  `json:"address"`
	Contact           string          `json:"contact"`
	DepartmentID      *string         `json:"department_id"`
	Position          string          `json:"position"`
	YearsOfExperience int             `json:"years_of_experience"`
	IsFresher         bool            `json:"is_fresher"`
	Skills            []any           `json:"skills"`
	MonthlySalary     decimal.Decimal `json:"monthly_salary"`
	YearlySalary      decimal.Decimal `json:"yearly_salary"`
	EmploymentDate    string          `json:"employment_date"`
	PaymentDetails    map[string]any  `json:"payment_details"`
	LeaveBalance      int             `json:"leave_balance"`
	Display           string          `json:"display"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}
