package domain

import "fmt"

// PeriodType selects the NIS contribution period.
type PeriodType string

const (
	PeriodMonthly PeriodType = "monthly"
	PeriodWeekly  PeriodType = "weekly"
)

// ParsePeriodType parses a contribution period name.
func ParsePeriodType(s string) (PeriodType, error) {
	switch PeriodType(s) {
	case PeriodMonthly, PeriodWeekly:
		return PeriodType(s), nil
	}
	return "", NewValidationError("period", "must be %q or %q, got %q", PeriodMonthly, PeriodWeekly, s)
}

// VatCategory classifies a transaction for VAT purposes. Zero-rated and
// exempt supplies both bear no VAT; they differ only in input-VAT recovery,
// which is outside the engine's scope.
type VatCategory string

const (
	VatStandard  VatCategory = "standard"
	VatZeroRated VatCategory = "zero_rated"
	VatExempt    VatCategory = "exempt"
)

// ParseVatCategory parses a VAT category name.
func ParseVatCategory(s string) (VatCategory, error) {
	switch VatCategory(s) {
	case VatStandard, VatZeroRated, VatExempt:
		return VatCategory(s), nil
	}
	return "", NewValidationError("category", "unknown VAT category %q", s)
}

// AmountBasis states whether a VAT input amount already includes VAT.
type AmountBasis string

const (
	BasisExclusive AmountBasis = "exclusive"
	BasisInclusive AmountBasis = "inclusive"
)

// ParseAmountBasis parses a VAT amount basis name.
func ParseAmountBasis(s string) (AmountBasis, error) {
	switch AmountBasis(s) {
	case BasisExclusive, BasisInclusive:
		return AmountBasis(s), nil
	}
	return "", NewValidationError("basis", "must be %q or %q, got %q", BasisExclusive, BasisInclusive, s)
}

// CompanyCategory classifies a company for corporation tax.
type CompanyCategory string

const (
	CompanyNonCommercial CompanyCategory = "non_commercial"
	CompanyCommercial    CompanyCategory = "commercial"
	CompanyTelephone     CompanyCategory = "telephone"
)

// ParseCompanyCategory parses a company category name.
func ParseCompanyCategory(s string) (CompanyCategory, error) {
	switch CompanyCategory(s) {
	case CompanyNonCommercial, CompanyCommercial, CompanyTelephone:
		return CompanyCategory(s), nil
	}
	return "", NewValidationError("category", "unknown company category %q", s)
}

// PropertyClass distinguishes residential from commercial property.
type PropertyClass string

const (
	PropertyResidential PropertyClass = "residential"
	PropertyCommercial  PropertyClass = "commercial"
)

// ParsePropertyClass parses a property class name.
func ParsePropertyClass(s string) (PropertyClass, error) {
	switch PropertyClass(s) {
	case PropertyResidential, PropertyCommercial:
		return PropertyClass(s), nil
	}
	return "", NewValidationError("class", "unknown property class %q", s)
}

// ExciseProduct classifies a product for excise tax.
type ExciseProduct string

const (
	ExciseAlcohol ExciseProduct = "alcohol"
	ExciseTobacco ExciseProduct = "tobacco"
	ExciseFuel    ExciseProduct = "fuel"
)

// ParseExciseProduct parses an excise product category name.
func ParseExciseProduct(s string) (ExciseProduct, error) {
	switch ExciseProduct(s) {
	case ExciseAlcohol, ExciseTobacco, ExciseFuel:
		return ExciseProduct(s), nil
	}
	return "", NewValidationError("product", "unknown excise product %q", s)
}

// WithholdingCategory is the closed set of payment categories subject to
// withholding tax. The 7B codes are statute section references; modeling them
// as enum values rather than strings rules out mistyped-key bugs.
type WithholdingCategory int

const (
	WithholdingDividends WithholdingCategory = iota
	WithholdingInterest
	WithholdingRoyalties
	WithholdingContractPayments
	WithholdingSection7B1
	WithholdingSection7B2
	WithholdingSection7B3
)

// WithholdingCategories lists every withholding category, in declaration
// order.
var WithholdingCategories = []WithholdingCategory{
	WithholdingDividends,
	WithholdingInterest,
	WithholdingRoyalties,
	WithholdingContractPayments,
	WithholdingSection7B1,
	WithholdingSection7B2,
	WithholdingSection7B3,
}

func (c WithholdingCategory) String() string {
	switch c {
	case WithholdingDividends:
		return "dividends"
	case WithholdingInterest:
		return "interest"
	case WithholdingRoyalties:
		return "royalties"
	case WithholdingContractPayments:
		return "contract_payments"
	case WithholdingSection7B1:
		return "7B1"
	case WithholdingSection7B2:
		return "7B2"
	case WithholdingSection7B3:
		return "7B3"
	}
	return fmt.Sprintf("WithholdingCategory(%d)", int(c))
}

// ParseWithholdingCategory parses a withholding category name or 7B section
// code.
func ParseWithholdingCategory(s string) (WithholdingCategory, error) {
	for _, c := range WithholdingCategories {
		if c.String() == s {
			return c, nil
		}
	}
	return 0, NewValidationError("category", "unknown withholding category %q", s)
}
