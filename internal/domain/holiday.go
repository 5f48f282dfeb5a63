package domain

import (
	"fmt"
	"time"
)

// HolidayCalendar is a company holiday.
type HolidayCalendar struct {
	ID        string
	Date      time.Time
	Occasion  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (h HolidayCalendar) String() string {
	return fmt.Sprintf("%s (%s)", h.Occasion, h.Date.Format(DateLayout))
}
