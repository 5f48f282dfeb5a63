package domain

import "time"

// Department represents an organizational unit employees belong to.
type Department struct {
	ID                string
	Name              string
	Description       string
	DepartmentHeadID  *string
	NumberOfEmployees int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (d Department) String() string {
	return d.Name
}
