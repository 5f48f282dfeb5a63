package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/hr-service/internal/domain"
)

func TestCalculateSalary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		monthly string
		counts  domain.AttendanceCounts
		want    string
	}{
		{"no attendance", "3000", domain.AttendanceCounts{}, "0"},
		{"present only", "3000", domain.AttendanceCounts{Present: 10}, "1000"},
		{"present and leave", "3000", domain.AttendanceCounts{Present: 20, Leave: 2, Absent: 8}, "2200"},
		{"absent days are unpaid", "3000", domain.AttendanceCounts{Absent: 30}, "0"},
		{"rounds to cents", "1000", domain.AttendanceCounts{Present: 1}, "33.33"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := domain.CalculateSalary(decimal.RequireFromString(tc.monthly), tc.counts)
			assert.True(t, decimal.RequireFromString(tc.want).Equal(got), "got %s", got)
		})
	}
}

func TestAmountFits(t *testing.T) {
	t.Parallel()

	assert.True(t, domain.AmountFits(decimal.RequireFromString("99999999.99")))
	assert.True(t, domain.AmountFits(decimal.RequireFromString("-99999999.99")))
	assert.True(t, domain.AmountFits(decimal.RequireFromString("99999999.994")))
	assert.False(t, domain.AmountFits(decimal.RequireFromString("99999999.995")))
	assert.False(t, domain.AmountFits(decimal.RequireFromString("100000000")))
	assert.False(t, domain.AmountFits(decimal.RequireFromString("1e12")))
}
