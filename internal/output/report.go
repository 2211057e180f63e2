package output

import (
	"fmt"
	"io"

	"github.com/kareemschultz/gk-nexus/internal/calculation"
	"github.com/kareemschultz/gk-nexus/internal/domain"
)

// WritePayeResult renders a PAYE result with its per-bracket audit breakdown.
func WritePayeResult(w io.Writer, res *domain.PayeResult) {
	fmt.Fprintf(w, "Taxable Income:  %s\n", FormatGYD(res.TaxableIncome))
	for _, b := range res.Brackets {
		fmt.Fprintf(w, "  %-10s %s on %s = %s\n",
			b.Label, FormatPercent(b.Rate), FormatGYD(b.TaxableAmount), FormatGYD(b.Tax))
	}
	fmt.Fprintf(w, "Total PAYE:      %s\n", FormatGYD(res.TotalTax))
	fmt.Fprintf(w, "Net Pay:         %s\n", FormatGYD(res.NetPay))
}

// WriteNisResult renders an NIS contribution result.
func WriteNisResult(w io.Writer, res *domain.NisResult) {
	fmt.Fprintf(w, "Contribution Base:     %s\n", FormatGYD(res.ContributionBase))
	fmt.Fprintf(w, "Employee Contribution: %s\n", FormatGYD(res.EmployeeContribution))
	fmt.Fprintf(w, "Employer Contribution: %s\n", FormatGYD(res.EmployerContribution))
	fmt.Fprintf(w, "Total Contribution:    %s\n", FormatGYD(res.TotalContribution))
	fmt.Fprintf(w, "Remittance Due:        %s\n", res.DueDate.Format("2006-01-02"))
}

// WriteVatResult renders a VAT result.
func WriteVatResult(w io.Writer, res *domain.VatResult) {
	fmt.Fprintf(w, "Net Amount:   %s\n", FormatGYD(res.NetAmount))
	fmt.Fprintf(w, "VAT:          %s\n", FormatGYD(res.VatAmount))
	fmt.Fprintf(w, "Gross Amount: %s\n", FormatGYD(res.GrossAmount))
}

// WriteCorporationTaxResult renders a corporation tax result.
func WriteCorporationTaxResult(w io.Writer, res *domain.CorporationTaxResult) {
	fmt.Fprintf(w, "Base Tax:    %s\n", FormatGYD(res.BaseTax))
	if res.MinimumTax != nil {
		fmt.Fprintf(w, "Minimum Tax: %s\n", FormatGYD(*res.MinimumTax))
	} else {
		fmt.Fprintf(w, "Minimum Tax: not applicable\n")
	}
	fmt.Fprintf(w, "Payable:     %s (%s rule)\n", FormatGYD(res.PayableTax), res.RuleApplied)
}

// WriteWithholdingResult renders a withholding tax result.
func WriteWithholdingResult(w io.Writer, res *domain.WithholdingResult) {
	fmt.Fprintf(w, "Withheld:    %s\n", FormatGYD(res.WithheldAmount))
	fmt.Fprintf(w, "Net Payment: %s\n", FormatGYD(res.NetPayment))
}

// WriteFlatTaxResult renders a single-rate calculation result.
func WriteFlatTaxResult(w io.Writer, res *domain.FlatTaxResult) {
	fmt.Fprintf(w, "Base:   %s\n", FormatGYD(res.Base))
	fmt.Fprintf(w, "Rate:   %s\n", FormatPercent(res.Rate))
	fmt.Fprintf(w, "Tax:    %s\n", FormatGYD(res.Tax))
}

// WritePayrollReport renders a batch payroll run with per-employee lines and
// aggregate totals.
func WritePayrollReport(w io.Writer, res *calculation.PayrollResult) {
	fmt.Fprintf(w, "PAYROLL RUN %s (%d employees)\n", res.AsOf.Format("January 2006"), len(res.Employees))
	fmt.Fprintln(w, "=================================================================")
	for _, line := range res.Employees {
		gross := line.Paye.NetPay.Add(line.Paye.TotalTax)
		fmt.Fprintf(w, "%-24s gross %-16s paye %-14s nis %-12s take-home %s\n",
			line.Name,
			FormatGYD(gross),
			FormatGYD(line.Paye.TotalTax),
			FormatGYD(line.Nis.EmployeeContribution),
			FormatGYD(line.TakeHome))
	}
	fmt.Fprintln(w, "-----------------------------------------------------------------")
	fmt.Fprintf(w, "Totals: gross %s, PAYE %s, NIS employee %s, NIS employer %s, take-home %s\n",
		FormatGYD(res.Totals.Gross),
		FormatGYD(res.Totals.Paye),
		FormatGYD(res.Totals.NisEmployee),
		FormatGYD(res.Totals.NisEmployer),
		FormatGYD(res.Totals.TakeHome))
}
