package calculation

import (
	"time"

	"github.com/kareemschultz/gk-nexus/internal/domain"
	"github.com/kareemschultz/gk-nexus/internal/rates"
	"github.com/shopspring/decimal"
)

var three = decimal.NewFromInt(3)

// PayeCalculator computes monthly PAYE under the progressive schedule in
// force on the effective date.
type PayeCalculator struct {
	tables *rates.Set
}

// NewPayeCalculator creates a PAYE calculator over the given tables.
func NewPayeCalculator(tables *rates.Set) *PayeCalculator {
	return &PayeCalculator{tables: tables}
}

// Compute derives chargeable income and applies the marginal brackets.
//
// Chargeable income is gross less the statutory deductions:
//   - personal allowance: the greater of the table threshold and one third of
//     gross,
//   - child allowance per dependent child,
//   - insurance premiums actually paid, limited to 10% of gross and the
//     table cap,
//   - overtime income up to the exemption cap,
//
// floored at zero. Each bracket then taxes only the portion of chargeable
// income falling inside it; the per-bracket amounts are returned for audit
// display. NetPay nets off PAYE only; NIS is computed separately.
//
// A zero asOf means "now".
func (c *PayeCalculator) Compute(input domain.PayeInput, asOf time.Time) (*domain.PayeResult, error) {
	if err := requireNonNegative("gross_monthly_income", input.GrossMonthlyIncome); err != nil {
		return nil, err
	}
	if err := requireNonNegative("insurance_premium_paid", input.InsurancePremiumPaid); err != nil {
		return nil, err
	}
	if err := requireNonNegative("overtime_income", input.OvertimeIncome); err != nil {
		return nil, err
	}
	if input.DependentChildren < 0 {
		return nil, domain.NewValidationError("dependent_children", "must not be negative, got %d", input.DependentChildren)
	}

	table, err := c.tables.Resolve(effectiveDate(asOf))
	if err != nil {
		return nil, err
	}
	p := table.Paye

	gross := input.GrossMonthlyIncome
	allowance := decimal.Max(p.PersonalAllowance, gross.Div(three))
	children := p.ChildAllowance.Mul(decimal.NewFromInt(int64(input.DependentChildren)))
	insurance := decimal.Min(input.InsurancePremiumPaid,
		decimal.Min(gross.Mul(p.InsuranceGrossFraction), p.InsurancePremiumCap))
	overtime := decimal.Min(input.OvertimeIncome, p.OvertimeExemptionCap)

	taxable := gross.Sub(allowance).Sub(children).Sub(insurance).Sub(overtime)
	if taxable.IsNegative() {
		taxable = decimal.Zero
	}

	totalTax := decimal.Zero
	var breakdown []domain.BracketTax
	for _, b := range p.Brackets {
		if taxable.LessThanOrEqual(b.Min) {
			break
		}
		upper := taxable
		if b.Max != nil {
			upper = decimal.Min(taxable, *b.Max)
		}
		portion := upper.Sub(b.Min)
		if !portion.IsPositive() {
			continue
		}
		tax := portion.Mul(b.Rate)
		totalTax = totalTax.Add(tax)
		breakdown = append(breakdown, domain.BracketTax{
			Label:         b.Label,
			Rate:          b.Rate,
			TaxableAmount: portion,
			Tax:           tax,
		})
	}

	return &domain.PayeResult{
		TaxableIncome: taxable,
		Brackets:      breakdown,
		TotalTax:      totalTax,
		NetPay:        gross.Sub(totalTax),
	}, nil
}
