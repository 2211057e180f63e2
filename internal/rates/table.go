// Package rates holds the versioned statutory rate tables and the resolver
// that selects the table in force on a given date. Tables are immutable after
// a Set is built; calculators only read them.
package rates

import (
	"time"

	"github.com/kareemschultz/gk-nexus/internal/domain"
	"github.com/shopspring/decimal"
)

// Bracket is one band of a progressive schedule over chargeable income.
// Min is inclusive; a nil Max marks the open-ended top band.
type Bracket struct {
	Min   decimal.Decimal  `yaml:"min"`
	Max   *decimal.Decimal `yaml:"max,omitempty"`
	Rate  decimal.Decimal  `yaml:"rate"`
	Label string           `yaml:"label"`
}

// PayeRates are the PAYE parameters for one effective period. The statutory
// allowance formula (greater of the threshold and one third of gross) is
// fixed in the calculator; the table carries the amounts that change year to
// year.
type PayeRates struct {
	PersonalAllowance      decimal.Decimal `yaml:"personal_allowance"`
	ChildAllowance         decimal.Decimal `yaml:"child_allowance"`
	InsuranceGrossFraction decimal.Decimal `yaml:"insurance_gross_fraction"`
	InsurancePremiumCap    decimal.Decimal `yaml:"insurance_premium_cap"`
	OvertimeExemptionCap   decimal.Decimal `yaml:"overtime_exemption_cap"`
	Brackets               []Bracket       `yaml:"brackets"`
}

// NisRates are the NIS contribution parameters. The per-period maxima are the
// scheme's published figures, applied as an independent cap on top of the
// ceiling clamp so a rate/ceiling rounding mismatch can never overcharge.
type NisRates struct {
	EmployeeRate       decimal.Decimal `yaml:"employee_rate"`
	EmployerRate       decimal.Decimal `yaml:"employer_rate"`
	MonthlyCeiling     decimal.Decimal `yaml:"monthly_ceiling"`
	WeeklyCeiling      decimal.Decimal `yaml:"weekly_ceiling"`
	MaxEmployeeMonthly decimal.Decimal `yaml:"max_employee_monthly"`
	MaxEmployerMonthly decimal.Decimal `yaml:"max_employer_monthly"`
	MaxEmployeeWeekly  decimal.Decimal `yaml:"max_employee_weekly"`
	MaxEmployerWeekly  decimal.Decimal `yaml:"max_employer_weekly"`
}

// CeilingFor returns the insurable-earnings ceiling for the period type.
func (n NisRates) CeilingFor(period domain.PeriodType) decimal.Decimal {
	if period == domain.PeriodWeekly {
		return n.WeeklyCeiling
	}
	return n.MonthlyCeiling
}

// MaximaFor returns the published maximum employee and employer contributions
// for the period type.
func (n NisRates) MaximaFor(period domain.PeriodType) (employee, employer decimal.Decimal) {
	if period == domain.PeriodWeekly {
		return n.MaxEmployeeWeekly, n.MaxEmployerWeekly
	}
	return n.MaxEmployeeMonthly, n.MaxEmployerMonthly
}

// VatRates are the VAT parameters.
type VatRates struct {
	StandardRate decimal.Decimal `yaml:"standard_rate"`
}

// CorporationTaxRates are the corporation tax parameters. Which company
// categories the turnover-based minimum applies to is table data, not code:
// the statute's scope for the floor is unsettled, so each period's table
// states it explicitly.
type CorporationTaxRates struct {
	NonCommercialRate    decimal.Decimal          `yaml:"non_commercial_rate"`
	CommercialRate       decimal.Decimal          `yaml:"commercial_rate"`
	TelephoneRate        decimal.Decimal          `yaml:"telephone_rate"`
	MinimumTaxRate       decimal.Decimal          `yaml:"minimum_tax_rate"`
	MinimumTaxCategories []domain.CompanyCategory `yaml:"minimum_tax_categories"`
}

// RateFor returns the profit tax rate for a company category.
func (c CorporationTaxRates) RateFor(category domain.CompanyCategory) (decimal.Decimal, error) {
	switch category {
	case domain.CompanyNonCommercial:
		return c.NonCommercialRate, nil
	case domain.CompanyCommercial:
		return c.CommercialRate, nil
	case domain.CompanyTelephone:
		return c.TelephoneRate, nil
	}
	return decimal.Decimal{}, domain.NewValidationError("category", "unknown company category %q", category)
}

// MinimumApplies reports whether the turnover-based minimum tax floor applies
// to the category under this table.
func (c CorporationTaxRates) MinimumApplies(category domain.CompanyCategory) bool {
	for _, mc := range c.MinimumTaxCategories {
		if mc == category {
			return true
		}
	}
	return false
}

// WithholdingRates hold the per-category withholding rates. One field per
// category keeps the lookup an exhaustive switch rather than a string-keyed
// map.
type WithholdingRates struct {
	Dividends        decimal.Decimal `yaml:"dividends"`
	Interest         decimal.Decimal `yaml:"interest"`
	Royalties        decimal.Decimal `yaml:"royalties"`
	ContractPayments decimal.Decimal `yaml:"contract_payments"`
	Section7B1       decimal.Decimal `yaml:"section_7b1"`
	Section7B2       decimal.Decimal `yaml:"section_7b2"`
	Section7B3       decimal.Decimal `yaml:"section_7b3"`
}

// RateFor returns the withholding rate for a payment category.
func (w WithholdingRates) RateFor(category domain.WithholdingCategory) (decimal.Decimal, error) {
	switch category {
	case domain.WithholdingDividends:
		return w.Dividends, nil
	case domain.WithholdingInterest:
		return w.Interest, nil
	case domain.WithholdingRoyalties:
		return w.Royalties, nil
	case domain.WithholdingContractPayments:
		return w.ContractPayments, nil
	case domain.WithholdingSection7B1:
		return w.Section7B1, nil
	case domain.WithholdingSection7B2:
		return w.Section7B2, nil
	case domain.WithholdingSection7B3:
		return w.Section7B3, nil
	}
	return decimal.Decimal{}, domain.NewValidationError("category", "unknown withholding category %q", category)
}

// PropertyTaxRates are the property tax parameters.
type PropertyTaxRates struct {
	ResidentialRate decimal.Decimal `yaml:"residential_rate"`
	CommercialRate  decimal.Decimal `yaml:"commercial_rate"`
}

// RateFor returns the property tax rate for a property class.
func (p PropertyTaxRates) RateFor(class domain.PropertyClass) (decimal.Decimal, error) {
	switch class {
	case domain.PropertyResidential:
		return p.ResidentialRate, nil
	case domain.PropertyCommercial:
		return p.CommercialRate, nil
	}
	return decimal.Decimal{}, domain.NewValidationError("class", "unknown property class %q", class)
}

// CapitalGainsRates are the capital gains tax parameters.
type CapitalGainsRates struct {
	Rate decimal.Decimal `yaml:"rate"`
}

// ExciseRates are the excise tax parameters by product category.
type ExciseRates struct {
	AlcoholRate decimal.Decimal `yaml:"alcohol_rate"`
	TobaccoRate decimal.Decimal `yaml:"tobacco_rate"`
	FuelRate    decimal.Decimal `yaml:"fuel_rate"`
}

// RateFor returns the excise rate for a product category.
func (e ExciseRates) RateFor(product domain.ExciseProduct) (decimal.Decimal, error) {
	switch product {
	case domain.ExciseAlcohol:
		return e.AlcoholRate, nil
	case domain.ExciseTobacco:
		return e.TobaccoRate, nil
	case domain.ExciseFuel:
		return e.FuelRate, nil
	}
	return decimal.Decimal{}, domain.NewValidationError("product", "unknown excise product %q", product)
}

// Table is the full statutory rate table for one effective period
// [EffectiveFrom, EffectiveTo). A nil EffectiveTo means the table is
// open-ended (the current budget year).
type Table struct {
	Version        string              `yaml:"version"`
	EffectiveFrom  time.Time           `yaml:"effective_from"`
	EffectiveTo    *time.Time          `yaml:"effective_to,omitempty"`
	Paye           PayeRates           `yaml:"paye"`
	Nis            NisRates            `yaml:"nis"`
	Vat            VatRates            `yaml:"vat"`
	CorporationTax CorporationTaxRates `yaml:"corporation_tax"`
	WithholdingTax WithholdingRates    `yaml:"withholding_tax"`
	PropertyTax    PropertyTaxRates    `yaml:"property_tax"`
	CapitalGains   CapitalGainsRates   `yaml:"capital_gains"`
	Excise         ExciseRates         `yaml:"excise"`
}

// Covers reports whether the table is in force on the given date.
func (t *Table) Covers(date time.Time) bool {
	if date.Before(t.EffectiveFrom) {
		return false
	}
	return t.EffectiveTo == nil || date.Before(*t.EffectiveTo)
}
