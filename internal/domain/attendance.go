package domain

import (
	"fmt"
	"time"
)

// DateLayout is the wire and display format for calendar dates.
const DateLayout = "2006-01-02"

// TimeOfDay is a wall-clock time without a date, stored as microseconds since midnight.
type TimeOfDay struct {
	Microseconds int64
}

// ParseTimeOfDay accepts HH:MM or HH:MM:SS.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			d := time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute + time.Duration(t.Second())*time.Second
			return TimeOfDay{Microseconds: d.Microseconds()}, nil
		}
	}
	return TimeOfDay{}, fmt.Errorf("invalid time of day %q", s)
}

func (t TimeOfDay) String() string {
	d := time.Duration(t.Microseconds) * time.Microsecond
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	s := int(d % time.Minute / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// Attendance is one user's presence record for a day.
type Attendance struct {
	ID        string
	UserID    string
	Username  string
	Date      time.Time
	InTime    *TimeOfDay
	OutTime   *TimeOfDay
	IsPresent bool
	IsAbsent  bool
	OnLeave   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (a Attendance) String() string {
	return fmt.Sprintf("%s - %s", a.Username, a.Date.Format(DateLayout))
}

// AttendanceCounts summarises attendance flags for a user.
type AttendanceCounts struct {
	Present int
	Absent  int
	Leave   int
}
