package domain

import "time"

// UserRole enumerates the roles a user record can carry.
type UserRole string

const (
	UserRoleEmployee UserRole = "EMPLOYEE"
	UserRoleHR       UserRole = "HR"
	UserRoleAdmin    UserRole = "ADMIN"
)

// Valid reports whether r is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case UserRoleEmployee, UserRoleHR, UserRoleAdmin:
		return true
	}
	return false
}

// User is an account record. Employees, attendance and the rest hang off it.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         UserRole
	IsActive     bool
	IsStaff      bool
	IsSuperuser  bool
	DateJoined   time.Time
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u User) String() string {
	return u.Username
}
