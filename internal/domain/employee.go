package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// MonthsPerYear converts monthly to yearly salary.
const MonthsPerYear = 12

// DefaultLeaveBalance is the leave allowance granted to a new employee.
const DefaultLeaveBalance = 2

// Employee is the HR profile attached one-to-one to a user.
// Address, Skills and PaymentDetails hold JSON encoded text.
type Employee struct {
	ID                string
	UserID            string
	Username          string
	Address           string
	Contact           string
	DepartmentID      *string
	Position          string
	YearsOfExperience int
	IsFresher         bool
	Skills            string
	MonthlySalary     decimal.Decimal
	EmploymentDate    time.Time
	PaymentDetails    string
	LeaveBalance      int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (e Employee) String() string {
	return e.Username
}

// YearlySalary is always derived, never stored.
func (e Employee) YearlySalary() decimal.Decimal {
	return e.MonthlySalary.Mul(decimal.NewFromInt(MonthsPerYear))
}

// SetAddress stores the address object as JSON text.
func (e *Employee) SetAddress(address map[string]any) error {
	if address == nil {
		address = map[string]any{}
	}
	encoded, err := encodeJSONText(address)
	if err != nil {
		return err
	}
	e.Address = encoded
	return nil
}

// GetAddress decodes the stored address; empty text yields an empty object.
func (e Employee) GetAddress() (map[string]any, error) {
	result := map[string]any{}
	if e.Address == "" {
		return result, nil
	}
	if err := json.Unmarshal([]byte(e.Address), &result); err != nil {
		return nil, err
	}
	return result, nil
}

// SetSkills stores the skill list as JSON text. Items may be any JSON value.
func (e *Employee) SetSkills(skills []any) error {
	if skills == nil {
		skills = []any{}
	}
	encoded, err := encodeJSONText(skills)
	if err != nil {
		return err
	}
	e.Skills = encoded
	return nil
}

// GetSkills decodes the stored skills; empty text yields an empty list.
func (e Employee) GetSkills() ([]any, error) {
	if e.Skills == "" {
		return []any{}, nil
	}
	var result []any
	if err := json.Unmarshal([]byte(e.Skills), &result); err != nil {
		return nil, err
	}
	if result == nil {
		result = []any{}
	}
	return result, nil
}

// SetPaymentDetails stores the payment details object as JSON text.
func (e *Employee) SetPaymentDetails(details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	encoded, err := encodeJSONText(details)
	if err != nil {
		return err
	}
	e.PaymentDetails = encoded
	return nil
}

// GetPaymentDetails decodes the stored payment details; empty text yields an empty object.
func (e Employee) GetPaymentDetails() (map[string]any, error) {
	result := map[string]any{}
	if e.PaymentDetails == "" {
		return result, nil
	}
	if err := json.Unmarshal([]byte(e.PaymentDetails), &result); err != nil {
		return nil, err
	}
	return result, nil
}

func encodeJSONText(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
