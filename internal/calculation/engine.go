// Package calculation implements the tax calculators. Every calculator is a
// pure function over its input and the rate table resolved for the effective
// date: no shared mutable state, no I/O, safe to call concurrently.
package calculation

import (
	"time"

	"github.com/kareemschultz/gk-nexus/internal/domain"
	"github.com/kareemschultz/gk-nexus/internal/rates"
	"github.com/shopspring/decimal"
)

// Logger is the minimal logging surface the engine needs. Calculators are
// pure and never log; only the batch runner reports progress.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}

// Engine bundles the calculators over one shared rate table set.
type Engine struct {
	Paye           *PayeCalculator
	Nis            *NisCalculator
	Vat            *VatCalculator
	CorporationTax *CorporationTaxCalculator
	Withholding    *WithholdingTaxCalculator
	PropertyTax    *PropertyTaxCalculator
	CapitalGains   *CapitalGainsCalculator
	Excise         *ExciseCalculator

	Log Logger
}

// NewEngine creates an engine over the given rate table set.
func NewEngine(tables *rates.Set) *Engine {
	return &Engine{
		Paye:           NewPayeCalculator(tables),
		Nis:            NewNisCalculator(tables),
		Vat:            NewVatCalculator(tables),
		CorporationTax: NewCorporationTaxCalculator(tables),
		Withholding:    NewWithholdingTaxCalculator(tables),
		PropertyTax:    NewPropertyTaxCalculator(tables),
		CapitalGains:   NewCapitalGainsCalculator(tables),
		Excise:         NewExciseCalculator(tables),
		Log:            nopLogger{},
	}
}

// effectiveDate applies the default of "now" when the caller did not pick a
// date.
func effectiveDate(asOf time.Time) time.Time {
	if asOf.IsZero() {
		return time.Now()
	}
	return asOf
}

// requireNonNegative rejects a negative monetary input before any table work.
func requireNonNegative(field string, v decimal.Decimal) error {
	if v.IsNegative() {
		return domain.NewValidationError(field, "must not be negative, got %s", v)
	}
	return nil
}
