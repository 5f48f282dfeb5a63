package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ReportPeriod identifies the user and month a report snapshot covers.
type ReportPeriod struct {
	UserID string
	Month  int
	Year   int
}

// Bounds returns the first day of the month and the first day of the next one.
func (p ReportPeriod) Bounds() (time.Time, time.Time) {
	start := time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// AttendanceReport is a monthly attendance snapshot.
type AttendanceReport struct {
	ID string
	ReportPeriod
	TotalPresent int
	TotalAbsent  int
	TotalLeave   int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// LeaveReport is a monthly leave snapshot.
type LeaveReport struct {
	ID string
	ReportPeriod
	TotalLeaves int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PayrollReport is a monthly payroll snapshot.
type PayrollReport struct {
	ID string
	ReportPeriod
	TotalSalary decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (r AttendanceReport) String() string {
	return fmt.Sprintf("AttendanceReport object (%s)", r.ID)
}

func (r LeaveReport) String() string {
	return fmt.Sprintf("LeaveReport object (%s)", r.ID)
}

func (r PayrollReport) String() string {
	return fmt.Sprintf("PayrollReport object (%s)", r.ID)
}
