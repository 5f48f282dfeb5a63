package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollRequest payload for a payroll slip. The salary is derived and cannot be sent.
type PayrollRequest struct {
	UserID    string `json:"user_id" validate:"required,uuid"`
	Year      int    `json:"year" validate:"required,gte=1"`
	Month     int    `json:"month" validate:"required,min=1,max=12"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

// PayrollResponse renders a payroll slip.
type PayrollResponse struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Year      int             `json:"year"`
	Month     int             `json:"month"`
	StartDate string          `json:"start_date"`
	EndDate   string          `json:"end_date"`
	Salary    decimal.Decimal `json:"salary"`
	Display   string          `json:"display"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
