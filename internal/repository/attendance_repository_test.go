package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/repository"
)

func TestAttendanceRepository_CountByUserAllTime(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM attendances WHERE user_id=$1")).
		WithArgs("u-1").
		WillReturnRows(pgxmock.NewRows([]string{"present", "absent", "leave"}).AddRow(18, 2, 3))

	repo := repository.NewAttendanceRepository(mock)
	counts, err := repo.CountByUser(context.Background(), "u-1", nil, nil)

	require.NoError(t, err)
	assert.Equal(t, domain.AttendanceCounts{Present: 18, Absent: 2, Leave: 3}, counts)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepository_CountByUserBounded(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	start, end := domain.ReportPeriod{Month: 2, Year: 2024}.Bounds()

	mock.ExpectQuery(regexp.QuoteMeta("FROM attendances WHERE user_id=$1 AND date >= $2 AND date < $3")).
		WithArgs("u-1", start, end).
		WillReturnRows(pgxmock.NewRows([]string{"present", "absent", "leave"}).AddRow(20, 0, 1))

	repo := repository.NewAttendanceRepository(mock)
	counts, err := repo.CountByUser(context.Background(), "u-1", &start, &end)

	require.NoError(t, err)
	assert.Equal(t, 20, counts.Present)
	assert.Equal(t, 1, counts.Leave)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepository_GetByIDTimes(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	day := time.Date(2024, time.March, 8, 0, 0, 0, 0, time.UTC)
	now := time.Now().UTC()
	in := pgtype.Time{Microseconds: (9 * time.Hour).Microseconds(), Valid: true}

	mock.ExpectQuery(regexp.QuoteMeta("FROM attendances a")).
		WithArgs("a-1").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "user_id", "username", "date", "in_time", "out_time",
			"is_present", "is_absent", "on_leave", "created_at", "updated_at",
		}).AddRow("a-1", "u-1", "asha", day, in, pgtype.Time{}, true, false, false, now, now))

	repo := repository.NewAttendanceRepository(mock)
	att, err := repo.GetByID(context.Background(), "a-1")

	require.NoError(t, err)
	require.NotNil(t, att.InTime)
	assert.Equal(t, "09:00:00", att.InTime.String())
	assert.Nil(t, att.OutTime)
	assert.Equal(t, "asha - 2024-03-08", att.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepository_CreateNullTimes(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	day := time.Date(2024, time.March, 8, 0, 0, 0, 0, time.UTC)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO attendances")).
		WithArgs("u-1", day, pgtype.Time{}, pgtype.Time{}, false, true, false).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow("a-2", now, now))

	repo := repository.NewAttendanceRepository(mock)
	att := &domain.Attendance{UserID: "u-1", Date: day, IsAbsent: true}
	require.NoError(t, repo.Create(context.Background(), att))

	assert.Equal(t, "a-2", att.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}
