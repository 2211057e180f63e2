package rates

import (
	"time"

	"github.com/kareemschultz/gk-nexus/internal/domain"
	"github.com/shopspring/decimal"
)

// Built-in tables carry the published Guyana figures for the 2024 and 2025
// income years. The 2025 budget cut the PAYE rates from 28%/40% to 25%/35%,
// raised the monthly personal allowance from 100,000 to 130,000, and lifted
// the NIS monthly ceiling to 280,000; the resolver picks the right table from
// the effective date so no calculator carries year logic.

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func ds(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func dptr(v decimal.Decimal) *decimal.Decimal { return &v }

func tableFY2024() Table {
	end := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return Table{
		Version:       "FY2024",
		EffectiveFrom: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EffectiveTo:   &end,
		Paye: PayeRates{
			PersonalAllowance:      d(100000),
			ChildAllowance:         d(10000),
			InsuranceGrossFraction: ds("0.10"),
			InsurancePremiumCap:    d(50000),
			OvertimeExemptionCap:   d(50000),
			Brackets: []Bracket{
				{Min: d(0), Max: dptr(d(200000)), Rate: ds("0.28"), Label: "28% band"},
				{Min: d(200000), Rate: ds("0.40"), Label: "40% band"},
			},
		},
		Nis: NisRates{
			EmployeeRate:       ds("0.056"),
			EmployerRate:       ds("0.084"),
			MonthlyCeiling:     d(256800),
			WeeklyCeiling:      d(59262),
			MaxEmployeeMonthly: ds("14380.80"),
			MaxEmployerMonthly: ds("21571.20"),
			MaxEmployeeWeekly:  ds("3318.67"),
			MaxEmployerWeekly:  ds("4978.01"),
		},
		Vat: VatRates{StandardRate: ds("0.14")},
		CorporationTax: CorporationTaxRates{
			NonCommercialRate:    ds("0.25"),
			CommercialRate:       ds("0.40"),
			TelephoneRate:        ds("0.45"),
			MinimumTaxRate:       ds("0.02"),
			MinimumTaxCategories: []domain.CompanyCategory{domain.CompanyCommercial},
		},
		WithholdingTax: WithholdingRates{
			Dividends:        ds("0.20"),
			Interest:         ds("0.20"),
			Royalties:        ds("0.20"),
			ContractPayments: ds("0.02"),
			Section7B1:       ds("0.10"),
			Section7B2:       ds("0.15"),
			Section7B3:       ds("0.20"),
		},
		PropertyTax: PropertyTaxRates{
			ResidentialRate: ds("0.005"),
			CommercialRate:  ds("0.0075"),
		},
		CapitalGains: CapitalGainsRates{Rate: ds("0.20")},
		Excise: ExciseRates{
			AlcoholRate: ds("0.40"),
			TobaccoRate: ds("1.00"),
			FuelRate:    ds("0.10"),
		},
	}
}

func tableFY2025() Table {
	return Table{
		Version:       "FY2025",
		EffectiveFrom: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Paye: PayeRates{
			PersonalAllowance:      d(130000),
			ChildAllowance:         d(10000),
			InsuranceGrossFraction: ds("0.10"),
			InsurancePremiumCap:    d(50000),
			OvertimeExemptionCap:   d(50000),
			Brackets: []Bracket{
				{Min: d(0), Max: dptr(d(130000)), Rate: ds("0.25"), Label: "25% band"},
				{Min: d(130000), Rate: ds("0.35"), Label: "35% band"},
			},
		},
		Nis: NisRates{
			EmployeeRate:       ds("0.056"),
			EmployerRate:       ds("0.084"),
			MonthlyCeiling:     d(280000),
			WeeklyCeiling:      d(64615),
			MaxEmployeeMonthly: ds("15680.00"),
			MaxEmployerMonthly: ds("23520.00"),
			MaxEmployeeWeekly:  ds("3618.44"),
			MaxEmployerWeekly:  ds("5427.66"),
		},
		Vat: VatRates{StandardRate: ds("0.14")},
		CorporationTax: CorporationTaxRates{
			NonCommercialRate:    ds("0.25"),
			CommercialRate:       ds("0.40"),
			TelephoneRate:        ds("0.45"),
			MinimumTaxRate:       ds("0.02"),
			MinimumTaxCategories: []domain.CompanyCategory{domain.CompanyCommercial},
		},
		WithholdingTax: WithholdingRates{
			Dividends:        ds("0.20"),
			Interest:         ds("0.20"),
			Royalties:        ds("0.20"),
			ContractPayments: ds("0.02"),
			Section7B1:       ds("0.10"),
			Section7B2:       ds("0.15"),
			Section7B3:       ds("0.20"),
		},
		PropertyTax: PropertyTaxRates{
			ResidentialRate: ds("0.005"),
			CommercialRate:  ds("0.0075"),
		},
		CapitalGains: CapitalGainsRates{Rate: ds("0.20")},
		Excise: ExciseRates{
			AlcoholRate: ds("0.40"),
			TobaccoRate: ds("1.00"),
			FuelRate:    ds("0.10"),
		},
	}
}

// Builtin returns the compiled-in table set. It panics only if the built-in
// data itself is inconsistent, which is a programming error caught by the
// package tests.
func Builtin() *Set {
	set, err := NewSet(tableFY2024(), tableFY2025())
	if err != nil {
		panic(err)
	}
	return set
}
