package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportPeriodRequest selects the user and month of a report.
type ReportPeriodRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
	Month  int    `json:"month" validate:"required,min=1,max=12"`
	Year   int    `json:"year" validate:"required,gte=1"`
}

// AttendanceReportRequest payload for an attendance snapshot.
type AttendanceReportRequest struct {
	ReportPeriodRequest
	TotalPresent int `json:"total_present" validate:"gte=0"`
	TotalAbsent  int `json:"total_absent" validate:"gte=0"`
	TotalLeave   int `json:"total_leave" validate:"gte=0"`
}

// LeaveReportRequest payload for a leave snapshot.
type LeaveReportRequest struct {
	ReportPeriodRequest
	TotalLeaves int `json:"total_leaves" validate:"gte=0"`
}

// PayrollReportRequest payload for a payroll snapshot.
type PayrollReportRequest struct {
	ReportPeriodRequest
	TotalSalary decimal.Decimal `json:"total_salary"`
}

// ReportPeriodResponse is embedded in every report response.
type ReportPeriodResponse struct {
	UserID string `json:"user_id"`
	Month  int    `json:"month"`
	Year   int    `json:"year"`
}

// AttendanceReportResponse renders an attendance snapshot.
type AttendanceReportResponse struct {
	ID string `json:"id"`
	ReportPeriodResponse
	TotalPresent int       `json:"total_present"`
	TotalAbsent  int       `json:"total_absent"`
	TotalLeave   int       `json:"total_leave"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LeaveReportResponse renders a leave snapshot.
type LeaveReportResponse struct {
	ID string `json:"id"`
	ReportPeriodResponse
	TotalLeaves int       `json:"total_leaves"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PayrollReportResponse renders a payroll snapshot.
type PayrollReportResponse struct {
	ID string `json:"id"`
	ReportPeriodResponse
	TotalSalary decimal.Decimal `json:"total_salary"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
