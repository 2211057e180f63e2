package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Monetary values are carried as decimals in GYD major units throughout a
// calculation; rounding to two places happens exactly once, when a result is
// formatted for display or export.

// PayeInput holds one employee-month of PAYE inputs.
type PayeInput struct {
	GrossMonthlyIncome   decimal.Decimal
	DependentChildren    int
	InsurancePremiumPaid decimal.Decimal
	OvertimeIncome       decimal.Decimal
}

// BracketTax is the tax charged by a single bracket of a progressive
// schedule, kept for audit display.
type BracketTax struct {
	Label         string
	Rate          decimal.Decimal
	TaxableAmount decimal.Decimal
	Tax           decimal.Decimal
}

// PayeResult is the outcome of a PAYE computation. NetPay nets off PAYE only;
// NIS is a separate calculator's concern.
type PayeResult struct {
	TaxableIncome decimal.Decimal
	Brackets      []BracketTax
	TotalTax      decimal.Decimal
	NetPay        decimal.Decimal
}

// NisInput holds one period of insurable earnings.
type NisInput struct {
	InsurableEarnings decimal.Decimal
	Period            PeriodType
}

// NisResult is the outcome of an NIS contribution computation.
// ContributionBase is the earnings after the ceiling clamp. DueDate is the
// statutory 15th-of-following-month remittance date, returned as descriptive
// metadata; enforcement is a scheduling concern outside the engine.
type NisResult struct {
	ContributionBase     decimal.Decimal
	EmployeeContribution decimal.Decimal
	EmployerContribution decimal.Decimal
	TotalContribution    decimal.Decimal
	DueDate              time.Time
}

// VatInput holds a single transaction amount with its category and basis.
type VatInput struct {
	Amount   decimal.Decimal
	Category VatCategory
	Basis    AmountBasis
}

// VatResult is the outcome of a VAT computation in both directions:
// GrossAmount = NetAmount + VatAmount always holds.
type VatResult struct {
	NetAmount   decimal.Decimal
	VatAmount   decimal.Decimal
	GrossAmount decimal.Decimal
}

// CorporationTaxInput holds one year of company figures.
type CorporationTaxInput struct {
	TaxableProfit  decimal.Decimal
	AnnualTurnover decimal.Decimal
	Category       CompanyCategory
}

// AppliedRule records which corporation tax rule produced the payable amount.
type AppliedRule string

const (
	RuleBase    AppliedRule = "base"
	RuleMinimum AppliedRule = "minimum"
)

// CorporationTaxResult is the outcome of a corporation tax computation.
// MinimumTax is nil when the turnover floor does not apply to the company's
// category.
type CorporationTaxResult struct {
	BaseTax     decimal.Decimal
	MinimumTax  *decimal.Decimal
	PayableTax  decimal.Decimal
	RuleApplied AppliedRule
}

// WithholdingInput holds a single payment subject to withholding at source.
type WithholdingInput struct {
	GrossPayment decimal.Decimal
	Category     WithholdingCategory
}

// WithholdingResult is the outcome of a withholding tax computation.
type WithholdingResult struct {
	WithheldAmount decimal.Decimal
	NetPayment     decimal.Decimal
}

// PropertyTaxInput holds a property value and its class.
type PropertyTaxInput struct {
	NetPropertyValue decimal.Decimal
	Class            PropertyClass
}

// CapitalGainsInput holds a chargeable gain.
type CapitalGainsInput struct {
	ChargeableGain decimal.Decimal
}

// ExciseInput holds a dutiable amount and its product category.
type ExciseInput struct {
	DutiableAmount decimal.Decimal
	Product        ExciseProduct
}

// FlatTaxResult is the outcome of a single-rate linear calculator
// (property tax, capital gains, excise).
type FlatTaxResult struct {
	Base decimal.Decimal
	Rate decimal.Decimal
	Tax  decimal.Decimal
}
