package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PayrollDaysPerMonth is the divisor used to turn a monthly salary into a daily rate.
const PayrollDaysPerMonth = 30

// MaxAmount is the largest magnitude a NUMERIC(10,2) money column holds.
var MaxAmount = decimal.RequireFromString("99999999.99")

// AmountFits reports whether amount, rounded to cents, fits a money column.
func AmountFits(amount decimal.Decimal) bool {
	return amount.Round(2).Abs().LessThanOrEqual(MaxAmount)
}

// Payroll is a salary slip for a user and period.
type Payroll struct {
	ID        string
	UserID    string
	Year      int
	Month     int
	StartDate time.Time
	EndDate   time.Time
	Salary    decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CalculateSalary pays a daily rate of monthlySalary/30 for every present or on-leave day.
// The result is rounded to cents with banker's rounding.
func CalculateSalary(monthlySalary decimal.Decimal, counts AttendanceCounts) decimal.Decimal {
	days := decimal.NewFromInt(int64(counts.Present + counts.Leave))
	daily := monthlySalary.Div(decimal.NewFromInt(PayrollDaysPerMonth))
	return daily.Mul(days).RoundBank(2)
}

func (p Payroll) String() string {
	return fmt.Sprintf("Payroll object (%s)", p.ID)
}
