package dto

import "time"

// DepartmentRequest payload for creating or replacing a department.
type DepartmentRequest struct {
	Name             string  `json:"name" validate:"required,max=100"`
	Description      string  `json:"description"`
	DepartmentHeadID *string `json:"department_head_id" validate:"omitempty,uuid"`
}

// DepartmentResponse renders a department.
type DepartmentResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	DepartmentHeadID  *string   `json:"department_head_id"`
	NumberOfEmployees int       `json:"number_of_employees"`
	Display           string    `json:"display"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// HolidayRequest payload for a holiday calendar entry.
type HolidayRequest struct {
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	Occasion string `json:"occasion" validate:"required,max=100"`
}

// HolidayResponse renders a holiday calendar entry.
type HolidayResponse struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Occasion  string    `json:"occasion"`
	Display   string    `json:"display"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
