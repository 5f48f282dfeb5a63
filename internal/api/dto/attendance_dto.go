package dto

import "time"

// AttendanceRequest payload for an attendance entry. Times use HH:MM or HH:MM:SS.
type AttendanceRequest struct {
	UserID    string  `json:"user_id" validate:"required,uuid"`
	Date      string  `json:"date" validate:"required,datetime=2006-01-02"`
	InTime    *string `json:"in_time"`
	OutTime   *string `json:"out_time"`
	IsPresent bool    `json:"is_present"`
	IsAbsent  bool    `json:"is_absent"`
	OnLeave   bool    `json:"on_leave"`
}

// AttendanceResponse renders an attendance entry.
type AttendanceResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Date      string    `json:"date"`
	InTime    *string   `json:"in_time"`
	OutTime   *string   `json:"out_time"`
	IsPresent bool      `json:"is_present"`
	IsAbsent  bool      `json:"is_absent"`
	OnLeave   bool      `json:"on_leave"`
	Display   string    `json:"display"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LeaveRequest payload for a leave request.
type LeaveRequest struct {
	UserID             string  `json:"user_id" validate:"required,uuid"`
	LeaveType          string  `json:"leave_type" validate:"required,max=100"`
	Reason             string  `json:"reason"`
	IsAccepted         bool    `json:"is_accepted"`
	IsRejected         bool    `json:"is_rejected"`
	ReasonForRejecting *string `json:"reason_for_rejecting"`
}

// LeaveRejectRequest payload for POST /admin/leaves/:id/reject.
type LeaveRejectRequest struct {
	Reason string `json:"reason"`
}

// LeaveResponse renders a leave request.
type LeaveResponse struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"user_id"`
	LeaveType          string    `json:"leave_type"`
	Reason             string    `json:"reason"`
	IsAccepted         bool      `json:"is_accepted"`
	IsRejected         bool      `json:"is_rejected"`
	ReasonForRejecting *string   `json:"reason_for_rejecting"`
	Display            string    `json:"display"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
