package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/repository"
)

func TestLeaveReportRepository_Create(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now().UTC()
	report := &domain.LeaveReport{
		ReportPeriod: domain.ReportPeriod{UserID: "u-1", Month: 4, Year: 2024},
		TotalLeaves:  3,
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO leave_reports")).
		WithArgs("u-1", 4, 2024, 3).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow("lr-1", now, now))

	repo := repository.NewLeaveReportRepository(mock)
	require.NoError(t, repo.Create(context.Background(), report))

	assert.Equal(t, "lr-1", report.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceReportRepository_ListByUser(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now().UTC()
	userID := "u-1"

	mock.ExpectQuery(regexp.QuoteMeta("FROM attendance_reports WHERE user_id=$1 ORDER BY year DESC")).
		WithArgs("u-1").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "user_id", "month", "year", "total_present", "total_absent", "total_leave", "created_at", "updated_at",
		}).
			AddRow("ar-1", "u-1", 4, 2024, 19, 1, 2, now, now).
			AddRow("ar-2", "u-1", 3, 2024, 21, 0, 0, now, now))

	repo := repository.NewAttendanceReportRepository(mock)
	reports, err := repo.List(context.Background(), repository.ReportFilter{UserID: &userID})

	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, 19, reports[0].TotalPresent)
	assert.Equal(t, 4, reports[0].Month)
	require.NoError(t, mock.ExpectationsWereMet())
}
