package calculation

import (
	"time"

	"github.com/kareemschultz/gk-nexus/internal/domain"
	"github.com/kareemschultz/gk-nexus/internal/rates"
)

// The property, capital gains and excise taxes are single-rate linear
// calculators. They share the rate table dependency and the effective-date
// resolution with the bracketed calculators but involve no schedules.

// PropertyTaxCalculator computes property tax on a net property value.
type PropertyTaxCalculator struct {
	tables *rates.Set
}

// NewPropertyTaxCalculator creates a property tax calculator over the given
// tables.
func NewPropertyTaxCalculator(tables *rates.Set) *PropertyTaxCalculator {
	return &PropertyTaxCalculator{tables: tables}
}

// Compute applies the residential or commercial rate to the net property
// value.
func (c *PropertyTaxCalculator) Compute(input domain.PropertyTaxInput, asOf time.Time) (*domain.FlatTaxResult, error) {
	if err := requireNonNegative("net_property_value", input.NetPropertyValue); err != nil {
		return nil, err
	}
	table, err := c.tables.Resolve(effectiveDate(asOf))
	if err != nil {
		return nil, err
	}
	rate, err := table.PropertyTax.RateFor(input.Class)
	if err != nil {
		return nil, err
	}
	return &domain.FlatTaxResult{
		Base: input.NetPropertyValue,
		Rate: rate,
		Tax:  input.NetPropertyValue.Mul(rate),
	}, nil
}

// CapitalGainsCalculator computes capital gains tax on a chargeable gain.
type CapitalGainsCalculator struct {
	tables *rates.Set
}

// NewCapitalGainsCalculator creates a capital gains calculator over the given
// tables.
func NewCapitalGainsCalculator(tables *rates.Set) *CapitalGainsCalculator {
	return &CapitalGainsCalculator{tables: tables}
}

// Compute applies the capital gains rate to the chargeable gain.
func (c *CapitalGainsCalculator) Compute(input domain.CapitalGainsInput, asOf time.Time) (*domain.FlatTaxResult, error) {
	if err := requireNonNegative("chargeable_gain", input.ChargeableGain); err != nil {
		return nil, err
	}
	table, err := c.tables.Resolve(effectiveDate(asOf))
	if err != nil {
		return nil, err
	}
	rate := table.CapitalGains.Rate
	return &domain.FlatTaxResult{
		Base: input.ChargeableGain,
		Rate: rate,
		Tax:  input.ChargeableGain.Mul(rate),
	}, nil
}

// ExciseCalculator computes excise tax on a dutiable amount.
type ExciseCalculator struct {
	tables *rates.Set
}

// NewExciseCalculator creates an excise calculator over the given tables.
func NewExciseCalculator(tables *rates.Set) *ExciseCalculator {
	return &ExciseCalculator{tables: tables}
}

// Compute applies the product category rate to the dutiable amount.
func (c *ExciseCalculator) Compute(input domain.ExciseInput, asOf time.Time) (*domain.FlatTaxResult, error) {
	if err := requireNonNegative("dutiable_amount", input.DutiableAmount); err != nil {
		return nil, err
	}
	table, err := c.tables.Resolve(effectiveDate(asOf))
	if err != nil {
		return nil, err
	}
	rate, err := table.Excise.RateFor(input.Product)
	if err != nil {
		return nil, err
	}
	return &domain.FlatTaxResult{
		Base: input.DutiableAmount,
		Rate: rate,
		Tax:  input.DutiableAmount.Mul(rate),
	}, nil
}
