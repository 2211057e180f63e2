package rates

import (
	"github.com/kareemschultz/gk-nexus/internal/domain"
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// validateTable checks one table's internal consistency. Defects here mean
// the source data is wrong, so everything reports a ConfigurationError.
func validateTable(t *Table) error {
	if t.Version == "" {
		return domain.NewConfigurationError("table missing version")
	}
	if t.EffectiveFrom.IsZero() {
		return domain.NewConfigurationError("table %s missing effective_from", t.Version)
	}
	if t.EffectiveTo != nil && !t.EffectiveFrom.Before(*t.EffectiveTo) {
		return domain.NewConfigurationError("table %s: effective_to not after effective_from", t.Version)
	}

	if err := validateBrackets(t.Version, t.Paye.Brackets); err != nil {
		return err
	}
	for name, v := range map[string]decimal.Decimal{
		"paye personal_allowance": t.Paye.PersonalAllowance,
		"paye child_allowance":    t.Paye.ChildAllowance,
		"paye insurance_cap":      t.Paye.InsurancePremiumCap,
		"paye overtime_cap":       t.Paye.OvertimeExemptionCap,
		"nis monthly_ceiling":     t.Nis.MonthlyCeiling,
		"nis weekly_ceiling":      t.Nis.WeeklyCeiling,
	} {
		if v.IsNegative() {
			return domain.NewConfigurationError("table %s: %s is negative", t.Version, name)
		}
	}

	rateFields := map[string]decimal.Decimal{
		"paye insurance_gross_fraction": t.Paye.InsuranceGrossFraction,
		"nis employee_rate":             t.Nis.EmployeeRate,
		"nis employer_rate":             t.Nis.EmployerRate,
		"vat standard_rate":             t.Vat.StandardRate,
		"corporation non_commercial":    t.CorporationTax.NonCommercialRate,
		"corporation commercial":        t.CorporationTax.CommercialRate,
		"corporation telephone":         t.CorporationTax.TelephoneRate,
		"corporation minimum":           t.CorporationTax.MinimumTaxRate,
		"withholding dividends":         t.WithholdingTax.Dividends,
		"withholding interest":          t.WithholdingTax.Interest,
		"withholding royalties":         t.WithholdingTax.Royalties,
		"withholding contract":          t.WithholdingTax.ContractPayments,
		"withholding 7B1":               t.WithholdingTax.Section7B1,
		"withholding 7B2":               t.WithholdingTax.Section7B2,
		"withholding 7B3":               t.WithholdingTax.Section7B3,
		"property residential":          t.PropertyTax.ResidentialRate,
		"property commercial":           t.PropertyTax.CommercialRate,
		"capital gains rate":            t.CapitalGains.Rate,
	}
	for name, r := range rateFields {
		if r.IsNegative() || r.GreaterThan(one) {
			return domain.NewConfigurationError("table %s: %s rate %s outside [0,1]", t.Version, name, r)
		}
	}
	// Excise rates on tobacco can legitimately exceed 100% of value.
	for name, r := range map[string]decimal.Decimal{
		"excise alcohol": t.Excise.AlcoholRate,
		"excise tobacco": t.Excise.TobaccoRate,
		"excise fuel":    t.Excise.FuelRate,
	} {
		if r.IsNegative() {
			return domain.NewConfigurationError("table %s: %s rate is negative", t.Version, name)
		}
	}

	for _, c := range t.CorporationTax.MinimumTaxCategories {
		if _, err := domain.ParseCompanyCategory(string(c)); err != nil {
			return domain.NewConfigurationError("table %s: minimum_tax_categories contains unknown category %q", t.Version, c)
		}
	}

	return nil
}

// validateBrackets enforces the progressive-schedule invariant: contiguous,
// non-overlapping bands starting at zero and covering [0, inf) via an
// open-ended top band.
func validateBrackets(version string, brackets []Bracket) error {
	if len(brackets) == 0 {
		return domain.NewConfigurationError("table %s: no PAYE brackets", version)
	}
	if !brackets[0].Min.IsZero() {
		return domain.NewConfigurationError("table %s: first bracket starts at %s, not zero", version, brackets[0].Min)
	}
	for i, b := range brackets {
		if b.Rate.IsNegative() || b.Rate.GreaterThan(one) {
			return domain.NewConfigurationError("table %s: bracket %d rate %s outside [0,1]", version, i, b.Rate)
		}
		last := i == len(brackets)-1
		if last {
			if b.Max != nil {
				return domain.NewConfigurationError("table %s: top bracket must be open-ended", version)
			}
			continue
		}
		if b.Max == nil {
			return domain.NewConfigurationError("table %s: bracket %d is open-ended but not last", version, i)
		}
		if !b.Max.GreaterThan(b.Min) {
			return domain.NewConfigurationError("table %s: bracket %d max %s not above min %s", version, i, b.Max, b.Min)
		}
		if !brackets[i+1].Min.Equal(*b.Max) {
			return domain.NewConfigurationError(
				"table %s: gap or overlap between brackets %d and %d (%s vs %s)",
				version, i, i+1, b.Max, brackets[i+1].Min)
		}
	}
	return nil
}
