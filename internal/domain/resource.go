package domain

// Resource names used in admin routes, events and the admin log.
const (
	ResourceUsers             = "users"
	ResourceEmployees         = "employees"
	ResourceAttendances       = "attendances"
	ResourceLeaves            = "leaves"
	ResourcePayrolls          = "payrolls"
	ResourceDepartments       = "departments"
	ResourceDocuments         = "documents"
	ResourceAttendanceReports = "attendance-reports"
	ResourceLeaveReports      = "leave-reports"
	ResourcePayrollReports    = "payroll-reports"
	ResourceHolidays          = "holidays"
)

// AdminResource describes one model registered with the admin interface.
type AdminResource struct {
	Name         string `json:"name"`
	VerboseName  string `json:"verbose_name"`
	VerboseNames string `json:"verbose_name_plural"`
}

// AdminRegistry lists the registered models in display order.
var AdminRegistry = []AdminResource{
	{Name: ResourceUsers, VerboseName: "user", VerboseNames: "users"},
	{Name: ResourceEmployees, VerboseName: "employee", VerboseNames: "employees"},
	{Name: ResourceAttendances, VerboseName: "attendance", VerboseNames: "attendances"},
	{Name: ResourceLeaves, VerboseName: "leave", VerboseNames: "leaves"},
	{Name: ResourcePayrolls, VerboseName: "payroll", VerboseNames: "payrolls"},
	{Name: ResourceDepartments, VerboseName: "department", VerboseNames: "departments"},
	{Name: ResourceDocuments, VerboseName: "document", VerboseNames: "documents"},
	{Name: ResourceAttendanceReports, VerboseName: "attendance report", VerboseNames: "attendance reports"},
	{Name: ResourceLeaveReports, VerboseName: "leave report", VerboseNames: "leave reports"},
	{Name: ResourcePayrollReports, VerboseName: "payroll report", VerboseNames: "payroll reports"},
	{Name: ResourceHolidays, VerboseName: "holiday calendar", VerboseNames: "holiday calendars"},
}
