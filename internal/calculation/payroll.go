package calculation

import (
	"context"
	"fmt"
	"time"

	"github.com/kareemschultz/gk-nexus/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// payrollParallelism bounds the batch fan-out. Calculations are CPU-only and
// O(brackets), so a small bound is plenty.
const payrollParallelism = 8

// PayrollEmployee is one employee's inputs for a batch payroll run. A zero
// InsurableEarnings defaults to the PAYE gross.
type PayrollEmployee struct {
	Name              string
	TIN               string
	Paye              domain.PayeInput
	InsurableEarnings decimal.Decimal
}

// EmployeePayroll is one employee's computed payroll line.
type EmployeePayroll struct {
	Name     string
	TIN      string
	Paye     *domain.PayeResult
	Nis      *domain.NisResult
	TakeHome decimal.Decimal
}

// PayrollTotals aggregates a payroll run.
type PayrollTotals struct {
	Gross       decimal.Decimal
	Paye        decimal.Decimal
	NisEmployee decimal.Decimal
	NisEmployer decimal.Decimal
	TakeHome    decimal.Decimal
}

// PayrollResult is the outcome of a batch payroll run. Employees retain the
// input order regardless of scheduling.
type PayrollResult struct {
	AsOf      time.Time
	Employees []EmployeePayroll
	Totals    PayrollTotals
}

// RunPayroll computes PAYE and NIS for every employee and aggregates the
// totals. Employees are computed in parallel; the calculators are pure, so
// the only coordination needed is each goroutine writing its own slot. Any
// per-employee failure aborts the run, identifying the employee.
func (e *Engine) RunPayroll(ctx context.Context, employees []PayrollEmployee, asOf time.Time) (*PayrollResult, error) {
	date := effectiveDate(asOf)
	e.Log.Infof("payroll run: %d employees as of %s", len(employees), date.Format("2006-01-02"))

	lines := make([]EmployeePayroll, len(employees))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(payrollParallelism)
	for i, emp := range employees {
		i, emp := i, emp
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			line, err := e.computeEmployee(emp, date)
			if err != nil {
				return fmt.Errorf("employee %q: %w", emp.Name, err)
			}
			lines[i] = *line
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var totals PayrollTotals
	for _, line := range lines {
		totals.Gross = totals.Gross.Add(line.Paye.NetPay.Add(line.Paye.TotalTax))
		totals.Paye = totals.Paye.Add(line.Paye.TotalTax)
		totals.NisEmployee = totals.NisEmployee.Add(line.Nis.EmployeeContribution)
		totals.NisEmployer = totals.NisEmployer.Add(line.Nis.EmployerContribution)
		totals.TakeHome = totals.TakeHome.Add(line.TakeHome)
	}

	return &PayrollResult{AsOf: date, Employees: lines, Totals: totals}, nil
}

func (e *Engine) computeEmployee(emp PayrollEmployee, date time.Time) (*EmployeePayroll, error) {
	paye, err := e.Paye.Compute(emp.Paye, date)
	if err != nil {
		return nil, err
	}
	insurable := emp.InsurableEarnings
	if insurable.IsZero() {
		insurable = emp.Paye.GrossMonthlyIncome
	}
	nis, err := e.Nis.Compute(domain.NisInput{
		InsurableEarnings: insurable,
		Period:            domain.PeriodMonthly,
	}, date)
	if err != nil {
		return nil, err
	}
	return &EmployeePayroll{
		Name:     emp.Name,
		TIN:      emp.TIN,
		Paye:     paye,
		Nis:      nis,
		TakeHome: paye.NetPay.Sub(nis.EmployeeContribution),
	}, nil
}
