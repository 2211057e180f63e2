package calculation

import (
	"context"
	"testing"

	"github.com/kareemschultz/gk-nexus/internal/domain"
	"github.com/kareemschultz/gk-nexus/internal/rates"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPayrollAggregates(t *testing.T) {
	engine := NewEngine(rates.Builtin())

	employees := []PayrollEmployee{
		{
			Name: "A. Persaud",
			TIN:  "123456789",
			Paye: domain.PayeInput{GrossMonthlyIncome: decimal.NewFromInt(300000)},
		},
		{
			Name: "B. Singh",
			Paye: domain.PayeInput{GrossMonthlyIncome: decimal.NewFromInt(130000)},
		},
		{
			Name: "C. Fraser",
			Paye: domain.PayeInput{GrossMonthlyIncome: decimal.NewFromInt(200000)},
		},
	}

	res, err := engine.RunPayroll(context.Background(), employees, asOf2025)
	require.NoError(t, err)
	require.Len(t, res.Employees, 3)

	// Input order is preserved regardless of scheduling.
	assert.Equal(t, "A. Persaud", res.Employees[0].Name)
	assert.Equal(t, "B. Singh", res.Employees[1].Name)
	assert.Equal(t, "C. Fraser", res.Employees[2].Name)

	// A: PAYE 46,500, NIS employee 15,680 (insurable defaults to gross,
	// clamped at the ceiling).
	a := res.Employees[0]
	assert.True(t, a.Paye.TotalTax.Equal(decimal.NewFromInt(46500)))
	assert.True(t, a.Nis.EmployeeContribution.Equal(decimal.NewFromInt(15680)))
	assert.True(t, a.TakeHome.Equal(decimal.NewFromInt(237820)), "got %s", a.TakeHome)

	// B: below the allowance, PAYE zero, NIS 5.6% of 130,000.
	b := res.Employees[1]
	assert.True(t, b.Paye.TotalTax.IsZero())
	assert.True(t, b.Nis.EmployeeContribution.Equal(decimal.NewFromInt(7280)))

	assert.True(t, res.Totals.Gross.Equal(decimal.NewFromInt(630000)), "gross: got %s", res.Totals.Gross)
	assert.True(t, res.Totals.Paye.Equal(decimal.NewFromInt(64000)), "paye: got %s", res.Totals.Paye)
	assert.True(t, res.Totals.NisEmployee.Equal(decimal.NewFromInt(34160)), "nis employee: got %s", res.Totals.NisEmployee)
	assert.True(t, res.Totals.NisEmployer.Equal(decimal.NewFromInt(51240)), "nis employer: got %s", res.Totals.NisEmployer)
	assert.True(t, res.Totals.TakeHome.Equal(decimal.NewFromInt(531840)), "take-home: got %s", res.Totals.TakeHome)
}

func TestRunPayrollSeparateInsurableEarnings(t *testing.T) {
	// Insurable earnings can differ from PAYE gross (e.g. non-insurable
	// allowances in gross).
	engine := NewEngine(rates.Builtin())

	res, err := engine.RunPayroll(context.Background(), []PayrollEmployee{
		{
			Name:              "D. Ally",
			Paye:              domain.PayeInput{GrossMonthlyIncome: decimal.NewFromInt(400000)},
			InsurableEarnings: decimal.NewFromInt(250000),
		},
	}, asOf2025)
	require.NoError(t, err)

	assert.True(t, res.Employees[0].Nis.ContributionBase.Equal(decimal.NewFromInt(250000)))
}

func TestRunPayrollReportsFailingEmployee(t *testing.T) {
	engine := NewEngine(rates.Builtin())

	_, err := engine.RunPayroll(context.Background(), []PayrollEmployee{
		{
			Name: "E. Ok",
			Paye: domain.PayeInput{GrossMonthlyIncome: decimal.NewFromInt(200000)},
		},
		{
			Name: "F. Broken",
			Paye: domain.PayeInput{GrossMonthlyIncome: decimal.NewFromInt(-5)},
		},
	}, asOf2025)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "F. Broken")
}

func TestRunPayrollLargeBatch(t *testing.T) {
	// The parallel fan-out must produce the same figures as computing
	// serially.
	engine := NewEngine(rates.Builtin())
	calc := NewPayeCalculator(rates.Builtin())

	employees := make([]PayrollEmployee, 200)
	for i := range employees {
		employees[i] = PayrollEmployee{
			Name: "worker",
			Paye: domain.PayeInput{GrossMonthlyIncome: decimal.NewFromInt(int64(100000 + i*5000))},
		}
	}

	res, err := engine.RunPayroll(context.Background(), employees, asOf2025)
	require.NoError(t, err)

	for i, line := range res.Employees {
		expected, err := calc.Compute(employees[i].Paye, asOf2025)
		require.NoError(t, err)
		assert.True(t, line.Paye.TotalTax.Equal(expected.TotalTax), "employee %d", i)
	}
}
