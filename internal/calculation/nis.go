package calculation

import (
	"time"

	"github.com/kareemschultz/gk-nexus/internal/domain"
	"github.com/kareemschultz/gk-nexus/internal/rates"
	"github.com/shopspring/decimal"
)

// NisCalculator computes employee and employer NIS contributions.
type NisCalculator struct {
	tables *rates.Set
}

// NewNisCalculator creates an NIS calculator over the given tables.
func NewNisCalculator(tables *rates.Set) *NisCalculator {
	return &NisCalculator{tables: tables}
}

// Compute clamps insurable earnings to the period ceiling and applies the
// employee and employer rates. Each side is additionally capped at the
// scheme's published maximum for the period, so a rounding mismatch between
// rate and ceiling can never produce a contribution above the documented
// figure.
//
// The returned DueDate (the 15th of the month after the effective date) is
// informational; remittance scheduling is the caller's concern.
func (c *NisCalculator) Compute(input domain.NisInput, asOf time.Time) (*domain.NisResult, error) {
	if err := requireNonNegative("insurable_earnings", input.InsurableEarnings); err != nil {
		return nil, err
	}
	if _, err := domain.ParsePeriodType(string(input.Period)); err != nil {
		return nil, err
	}

	date := effectiveDate(asOf)
	table, err := c.tables.Resolve(date)
	if err != nil {
		return nil, err
	}
	n := table.Nis

	base := decimal.Min(input.InsurableEarnings, n.CeilingFor(input.Period))
	maxEmployee, maxEmployer := n.MaximaFor(input.Period)
	employee := decimal.Min(base.Mul(n.EmployeeRate), maxEmployee)
	employer := decimal.Min(base.Mul(n.EmployerRate), maxEmployer)

	return &domain.NisResult{
		ContributionBase:     base,
		EmployeeContribution: employee,
		EmployerContribution: employer,
		TotalContribution:    employee.Add(employer),
		DueDate:              contributionDueDate(date),
	}, nil
}

// contributionDueDate is the statutory remittance date: the 15th of the month
// following the earnings period.
func contributionDueDate(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month()+1, 15, 0, 0, 0, 0, date.Location())
}
