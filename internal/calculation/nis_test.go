package calculation

import (
	"errors"
	"testing"
	"time"

	"github.com/kareemschultz/gk-nexus/internal/domain"
	"github.com/kareemschultz/gk-nexus/internal/rates"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNisCeilingClamp(t *testing.T) {
	// Earnings above the 280,000 monthly ceiling always produce the
	// documented maximum contributions, however far the earnings exceed it.
	calc := NewNisCalculator(rates.Builtin())

	for _, earnings := range []int64{280000, 300000, 1000000, 50000000} {
		res, err := calc.Compute(domain.NisInput{
			InsurableEarnings: decimal.NewFromInt(earnings),
			Period:            domain.PeriodMonthly,
		}, asOf2025)
		require.NoError(t, err)

		assert.True(t, res.ContributionBase.Equal(decimal.NewFromInt(280000)),
			"earnings %d: base %s", earnings, res.ContributionBase)
		assert.True(t, res.EmployeeContribution.Equal(decimal.NewFromInt(15680)),
			"earnings %d: employee %s", earnings, res.EmployeeContribution)
		assert.True(t, res.EmployerContribution.Equal(decimal.NewFromInt(23520)),
			"earnings %d: employer %s", earnings, res.EmployerContribution)
		assert.True(t, res.TotalContribution.Equal(decimal.NewFromInt(39200)),
			"earnings %d: total %s", earnings, res.TotalContribution)
	}
}

func TestNisBelowCeiling(t *testing.T) {
	calc := NewNisCalculator(rates.Builtin())

	res, err := calc.Compute(domain.NisInput{
		InsurableEarnings: decimal.NewFromInt(100000),
		Period:            domain.PeriodMonthly,
	}, asOf2025)
	require.NoError(t, err)

	assert.True(t, res.ContributionBase.Equal(decimal.NewFromInt(100000)))
	assert.True(t, res.EmployeeContribution.Equal(decimal.NewFromInt(5600)))
	assert.True(t, res.EmployerContribution.Equal(decimal.NewFromInt(8400)))
	assert.True(t, res.TotalContribution.Equal(decimal.NewFromInt(14000)))
}

func TestNisWeeklyPeriod(t *testing.T) {
	calc := NewNisCalculator(rates.Builtin())

	res, err := calc.Compute(domain.NisInput{
		InsurableEarnings: decimal.NewFromInt(70000),
		Period:            domain.PeriodWeekly,
	}, asOf2025)
	require.NoError(t, err)

	assert.True(t, res.ContributionBase.Equal(decimal.NewFromInt(64615)))
	assert.True(t, res.EmployeeContribution.Equal(decimal.RequireFromString("3618.44")),
		"employee: got %s", res.EmployeeContribution)
	assert.True(t, res.EmployerContribution.Equal(decimal.RequireFromString("5427.66")),
		"employer: got %s", res.EmployerContribution)
}

func TestNisPublishedMaximumWins(t *testing.T) {
	// Under the 2024 table the weekly rate-times-ceiling product lands a
	// fraction of a cent above the scheme's published maximum; the published
	// figure must win.
	calc := NewNisCalculator(rates.Builtin())

	res, err := calc.Compute(domain.NisInput{
		InsurableEarnings: decimal.NewFromInt(100000),
		Period:            domain.PeriodWeekly,
	}, asOf2024)
	require.NoError(t, err)

	assert.True(t, res.EmployeeContribution.Equal(decimal.RequireFromString("3318.67")),
		"employee: got %s", res.EmployeeContribution)
	assert.True(t, res.EmployerContribution.Equal(decimal.RequireFromString("4978.01")),
		"employer: got %s", res.EmployerContribution)
}

func TestNisPriorYearCeiling(t *testing.T) {
	calc := NewNisCalculator(rates.Builtin())

	res, err := calc.Compute(domain.NisInput{
		InsurableEarnings: decimal.NewFromInt(300000),
		Period:            domain.PeriodMonthly,
	}, asOf2024)
	require.NoError(t, err)

	assert.True(t, res.ContributionBase.Equal(decimal.NewFromInt(256800)))
	assert.True(t, res.EmployeeContribution.Equal(decimal.RequireFromString("14380.80")))
}

func TestNisDueDateMetadata(t *testing.T) {
	calc := NewNisCalculator(rates.Builtin())

	res, err := calc.Compute(domain.NisInput{
		InsurableEarnings: decimal.NewFromInt(100000),
		Period:            domain.PeriodMonthly,
	}, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC), res.DueDate)

	// December rolls into January of the next year.
	res, err = calc.Compute(domain.NisInput{
		InsurableEarnings: decimal.NewFromInt(100000),
		Period:            domain.PeriodMonthly,
	}, time.Date(2025, 12, 3, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), res.DueDate)
}

func TestNisInvalidInput(t *testing.T) {
	calc := NewNisCalculator(rates.Builtin())

	_, err := calc.Compute(domain.NisInput{
		InsurableEarnings: decimal.NewFromInt(-1),
		Period:            domain.PeriodMonthly,
	}, asOf2025)
	var validationErr *domain.ValidationError
	require.True(t, errors.As(err, &validationErr))

	_, err = calc.Compute(domain.NisInput{
		InsurableEarnings: decimal.NewFromInt(100000),
		Period:            "fortnightly",
	}, asOf2025)
	require.True(t, errors.As(err, &validationErr))
}
