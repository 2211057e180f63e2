package calculation

import (
	"time"

	"github.com/kareemschultz/gk-nexus/internal/domain"
	"github.com/kareemschultz/gk-nexus/internal/rates"
	"github.com/shopspring/decimal"
)

// VatCalculator computes VAT in both directions: adding VAT to an exclusive
// price and extracting it from an inclusive gross. Return reconciliation
// needs both, since clients supply gross figures while invoices are priced
// net.
type VatCalculator struct {
	tables *rates.Set
}

// NewVatCalculator creates a VAT calculator over the given tables.
func NewVatCalculator(tables *rates.Set) *VatCalculator {
	return &VatCalculator{tables: tables}
}

// Compute applies the standard rate for the effective date. Zero-rated and
// exempt supplies bear no VAT regardless of basis: net and gross both equal
// the input amount.
func (c *VatCalculator) Compute(input domain.VatInput, asOf time.Time) (*domain.VatResult, error) {
	if err := requireNonNegative("amount", input.Amount); err != nil {
		return nil, err
	}
	if _, err := domain.ParseVatCategory(string(input.Category)); err != nil {
		return nil, err
	}
	if _, err := domain.ParseAmountBasis(string(input.Basis)); err != nil {
		return nil, err
	}

	table, err := c.tables.Resolve(effectiveDate(asOf))
	if err != nil {
		return nil, err
	}

	if input.Category != domain.VatStandard {
		return &domain.VatResult{
			NetAmount:   input.Amount,
			VatAmount:   decimal.Zero,
			GrossAmount: input.Amount,
		}, nil
	}

	rate := table.Vat.StandardRate
	if input.Basis == domain.BasisInclusive {
		net := input.Amount.Div(one.Add(rate))
		return &domain.VatResult{
			NetAmount:   net,
			VatAmount:   input.Amount.Sub(net),
			GrossAmount: input.Amount,
		}, nil
	}

	vat := input.Amount.Mul(rate)
	return &domain.VatResult{
		NetAmount:   input.Amount,
		VatAmount:   vat,
		GrossAmount: input.Amount.Add(vat),
	}, nil
}

var one = decimal.NewFromInt(1)
