package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/hr-service/internal/domain"
)

func TestParseTimeOfDay(t *testing.T) {
	t.Parallel()

	tod, err := domain.ParseTimeOfDay("09:30")
	require.NoError(t, err)
	assert.Equal(t, (9*time.Hour + 30*time.Minute).Microseconds(), tod.Microseconds)
	assert.Equal(t, "09:30:00", tod.String())

	tod, err = domain.ParseTimeOfDay("17:45:10")
	require.NoError(t, err)
	assert.Equal(t, "17:45:10", tod.String())

	_, err = domain.ParseTimeOfDay("25:00")
	require.Error(t, err)
}

func TestDisplayStrings(t *testing.T) {
	t.Parallel()

	day := time.Date(2024, time.March, 8, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "asha - 2024-03-08", domain.Attendance{Username: "asha", Date: day}.String())
	assert.Equal(t, "Women's Day (2024-03-08)", domain.HolidayCalendar{Occasion: "Women's Day", Date: day}.String())
	assert.Equal(t, "Finance", domain.Department{Name: "Finance"}.String())
	assert.Equal(t, "asha", domain.User{Username: "asha"}.String())
}

func TestReportPeriod_Bounds(t *testing.T) {
	t.Parallel()

	start, end := domain.ReportPeriod{Month: 12, Year: 2023}.Bounds()
	assert.Equal(t, time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestLeave_Decisions(t *testing.T) {
	t.Parallel()

	leave := domain.Leave{IsAccepted: true, IsRejected: true}
	require.ErrorIs(t, leave.Validate(), domain.ErrLeaveDecisionConflict)

	leave.Reject("short staffed")
	require.NoError(t, leave.Validate())
	assert.True(t, leave.IsRejected)
	require.NotNil(t, leave.ReasonForRejecting)
	assert.Equal(t, "short staffed", *leave.ReasonForRejecting)

	leave.Accept()
	require.NoError(t, leave.Validate())
	assert.True(t, leave.IsAccepted)
	assert.Nil(t, leave.ReasonForRejecting)
}
