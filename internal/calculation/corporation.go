package calculation

import (
	"time"

	"github.com/kareemschultz/gk-nexus/internal/domain"
	"github.com/kareemschultz/gk-nexus/internal/rates"
)

// CorporationTaxCalculator computes corporation tax with the turnover-based
// minimum floor.
type CorporationTaxCalculator struct {
	tables *rates.Set
}

// NewCorporationTaxCalculator creates a corporation tax calculator over the
// given tables.
func NewCorporationTaxCalculator(tables *rates.Set) *CorporationTaxCalculator {
	return &CorporationTaxCalculator{tables: tables}
}

// Compute taxes profit at the category rate and, when the table applies the
// minimum tax to the company's category, floors the payable amount at the
// turnover-based minimum. Which categories the floor covers is table data
// (minimum_tax_categories), not a hard-coded rule. The result records which
// rule produced the payable figure; MinimumTax is nil when the floor does not
// apply.
func (c *CorporationTaxCalculator) Compute(input domain.CorporationTaxInput, asOf time.Time) (*domain.CorporationTaxResult, error) {
	if err := requireNonNegative("taxable_profit", input.TaxableProfit); err != nil {
		return nil, err
	}
	if err := requireNonNegative("annual_turnover", input.AnnualTurnover); err != nil {
		return nil, err
	}

	table, err := c.tables.Resolve(effectiveDate(asOf))
	if err != nil {
		return nil, err
	}
	ct := table.CorporationTax

	rate, err := ct.RateFor(input.Category)
	if err != nil {
		return nil, err
	}
	base := input.TaxableProfit.Mul(rate)

	result := &domain.CorporationTaxResult{
		BaseTax:     base,
		PayableTax:  base,
		RuleApplied: domain.RuleBase,
	}
	if ct.MinimumApplies(input.Category) {
		minimum := input.AnnualTurnover.Mul(ct.MinimumTaxRate)
		result.MinimumTax = &minimum
		if minimum.GreaterThan(base) {
			result.PayableTax = minimum
			result.RuleApplied = domain.RuleMinimum
		}
	}
	return result, nil
}
