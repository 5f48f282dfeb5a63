package handlers

import (
	"github.com/spec-kit/hr-service/internal/api/dto"
	"github.com/spec-kit/hr-service/internal/domain"
)

func userResponse(u domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Role:        string(u.Role),
		IsActive:    u.IsActive,
		IsStaff:     u.IsStaff,
		IsSuperuser: u.IsSuperuser,
		DateJoined:  u.DateJoined,
		LastLogin:   u.LastLogin,
		Display:     u.String(),
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// employeeResponse decodes the JSON text columns. Malformed text renders as empty values.
func employeeResponse(e domain.Employee) dto.EmployeeResponse {
	address, err := e.GetAddress()
	if err != nil {
		address = map[string]any{}
	}
	skills, err := e.GetSkills()
	if err != nil {
		skills = []any{}
	}
	payment, err := e.GetPaymentDetails()
	if err != nil {
		payment = map[string]any{}
	}
	return dto.EmployeeResponse{
		ID:                e.ID,
		UserID:            e.UserID,
		Username:          e.Username,
		Address:           address,
		Contact:           e.Contact,
		DepartmentID:      e.DepartmentID,
		Position:          e.Position,
		YearsOfExperience: e.YearsOfExperience,
		IsFresher:         e.IsFresher,
		Skills:            skills,
		MonthlySalary:     e.MonthlySalary,
		YearlySalary:      e.YearlySalary(),
		EmploymentDate:    e.EmploymentDate.Format(domain.DateLayout),
		PaymentDetails:    payment,
		LeaveBalance:      e.LeaveBalance,
		Display:           e.String(),
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

func departmentResponse(d domain.Department) dto.DepartmentResponse {
	return dto.DepartmentResponse{
		ID:                d.ID,
		Name:              d.Name,
		Description:       d.Description,
		DepartmentHeadID:  d.DepartmentHeadID,
		NumberOfEmployees: d.NumberOfEmployees,
		Display:           d.String(),
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

func holidayResponse(h domain.HolidayCalendar) dto.HolidayResponse {
	return dto.HolidayResponse{
		ID:        h.ID,
		Date:      h.Date.Format(domain.DateLayout),
		Occasion:  h.Occasion,
		Display:   h.String(),
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}

func timeOfDayString(t *domain.TimeOfDay) *string {
	if t == nil {
		return nil
	}
	s := t.String()
	return &s
}

func attendanceResponse(a domain.Attendance) dto.AttendanceResponse {
	return dto.AttendanceResponse{
		ID:        a.ID,
		UserID:    a.UserID,
		Username:  a.Username,
		Date:      a.Date.Format(domain.DateLayout),
		InTime:    timeOfDayString(a.InTime),
		OutTime:   timeOfDayString(a.OutTime),
		IsPresent: a.IsPresent,
		IsAbsent:  a.IsAbsent,
		OnLeave:   a.OnLeave,
		Display:   a.String(),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func leaveResponse(l domain.Leave) dto.LeaveResponse {
	return dto.LeaveResponse{
		ID:                 l.ID,
		UserID:             l.UserID,
		LeaveType:          l.LeaveType,
		Reason:             l.Reason,
		IsAccepted:         l.IsAccepted,
		IsRejected:         l.IsRejected,
		ReasonForRejecting: l.ReasonForRejecting,
		Display:            l.String(),
		CreatedAt:          l.CreatedAt,
		UpdatedAt:          l.UpdatedAt,
	}
}

func payrollResponse(p domain.Payroll) dto.PayrollResponse {
	return dto.PayrollResponse{
		ID:        p.ID,
		UserID:    p.UserID,
		Year:      p.Year,
		Month:     p.Month,
		StartDate: p.StartDate.Format(domain.DateLayout),
		EndDate:   p.EndDate.Format(domain.DateLayout),
		Salary:    p.Salary,
		Display:   p.String(),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func documentResponse(d domain.Document) dto.DocumentResponse {
	return dto.DocumentResponse{
		ID:           d.ID,
		UserID:       d.UserID,
		DocumentType: d.DocumentType,
		File:         d.File,
		Display:      d.String(),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func periodResponse(p domain.ReportPeriod) dto.ReportPeriodResponse {
	return dto.ReportPeriodResponse{UserID: p.UserID, Month: p.Month, Year: p.Year}
}

func attendanceReportResponse(r domain.AttendanceReport) dto.AttendanceReportResponse {
	return dto.AttendanceReportResponse{
		ID:                   r.ID,
		ReportPeriodResponse: periodResponse(r.ReportPeriod),
		TotalPresent:         r.TotalPresent,
		TotalAbsent:          r.TotalAbsent,
		TotalLeave:           r.TotalLeave,
		CreatedAt:            r.CreatedAt,
		UpdatedAt:            r.UpdatedAt,
	}
}

func leaveReportResponse(r domain.LeaveReport) dto.LeaveReportResponse {
	return dto.LeaveReportResponse{
		ID:                   r.ID,
		ReportPeriodResponse: periodResponse(r.ReportPeriod),
		TotalLeaves:          r.TotalLeaves,
		CreatedAt:            r.CreatedAt,
		UpdatedAt:            r.UpdatedAt,
	}
}

func payrollReportResponse(r domain.PayrollReport) dto.PayrollReportResponse {
	return dto.PayrollReportResponse{
		ID:                   r.ID,
		ReportPeriodResponse: periodResponse(r.ReportPeriod),
		TotalSalary:          r.TotalSalary,
		CreatedAt:            r.CreatedAt,
		UpdatedAt:            r.UpdatedAt,
	}
}

func adminLogResponse(e domain.AdminLogEntry) dto.AdminLogResponse {
	return dto.AdminLogResponse{
		ID:            e.ID,
		ActionTime:    e.ActionTime,
		Resource:      e.Resource,
		ObjectID:      e.ObjectID,
		ObjectRepr:    e.ObjectRepr,
		Action:        string(e.Action),
		ChangeMessage: e.ChangeMessage,
	}
}
