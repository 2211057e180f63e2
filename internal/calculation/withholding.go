package calculation

import (
	"time"

	"github.com/kareemschultz/gk-nexus/internal/domain"
	"github.com/kareemschultz/gk-nexus/internal/rates"
)

// WithholdingTaxCalculator computes tax deducted at source from a payment.
type WithholdingTaxCalculator struct {
	tables *rates.Set
}

// NewWithholdingTaxCalculator creates a withholding tax calculator over the
// given tables.
func NewWithholdingTaxCalculator(tables *rates.Set) *WithholdingTaxCalculator {
	return &WithholdingTaxCalculator{tables: tables}
}

// Compute looks the category rate up in the table's enumerated schedule and
// splits the gross payment into withheld amount and net payment.
func (c *WithholdingTaxCalculator) Compute(input domain.WithholdingInput, asOf time.Time) (*domain.WithholdingResult, error) {
	if err := requireNonNegative("gross_payment", input.GrossPayment); err != nil {
		return nil, err
	}

	table, err := c.tables.Resolve(effectiveDate(asOf))
	if err != nil {
		return nil, err
	}

	rate, err := table.WithholdingTax.RateFor(input.Category)
	if err != nil {
		return nil, err
	}

	withheld := input.GrossPayment.Mul(rate)
	return &domain.WithholdingResult{
		WithheldAmount: withheld,
		NetPayment:     input.GrossPayment.Sub(withheld),
	}, nil
}
