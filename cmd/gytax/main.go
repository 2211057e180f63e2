package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/kareemschultz/gk-nexus/internal/calculation"
	"github.com/kareemschultz/gk-nexus/internal/config"
	"github.com/kareemschultz/gk-nexus/internal/domain"
	"github.com/kareemschultz/gk-nexus/internal/identifier"
	"github.com/kareemschultz/gk-nexus/internal/output"
	"github.com/kareemschultz/gk-nexus/internal/rates"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "gytax",
	Short: "Guyana tax computation engine CLI",
	Long:  "Calculators for PAYE, NIS, VAT, corporation, withholding, property, capital gains and excise tax under Guyana's statutory rate tables",
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "gytax %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

// newEngine builds an engine over the built-in tables or, when --rates is
// given, a YAML rate-table file.
func newEngine(cmd *cobra.Command) (*calculation.Engine, error) {
	ratesFile, _ := cmd.Flags().GetString("rates")
	tables := rates.Builtin()
	if ratesFile != "" {
		loaded, err := config.LoadRateTables(ratesFile)
		if err != nil {
			return nil, err
		}
		tables = loaded
	}
	engine := calculation.NewEngine(tables)
	engine.Log = simpleCLILogger{}
	return engine, nil
}

// asOfDate parses --date; a missing flag means "now".
func asOfDate(cmd *cobra.Command) (time.Time, error) {
	value, _ := cmd.Flags().GetString("date")
	if value == "" {
		return time.Time{}, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q: expected YYYY-MM-DD", value)
	}
	return parsed, nil
}

func decimalFlag(cmd *cobra.Command, name string) (decimal.Decimal, error) {
	value, _ := cmd.Flags().GetString(name)
	if value == "" {
		return decimal.Decimal{}, fmt.Errorf("--%s is required", name)
	}
	parsed, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid --%s %q: %w", name, value, err)
	}
	return parsed, nil
}

func payeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paye",
		Short: "Compute monthly PAYE",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine(cmd)
			if err != nil {
				return err
			}
			asOf, err := asOfDate(cmd)
			if err != nil {
				return err
			}
			gross, err := decimalFlag(cmd, "gross")
			if err != nil {
				return err
			}
			children, _ := cmd.Flags().GetInt("children")
			insurance := decimal.Zero
			if v, _ := cmd.Flags().GetString("insurance"); v != "" {
				if insurance, err = decimalFlag(cmd, "insurance"); err != nil {
					return err
				}
			}
			overtime := decimal.Zero
			if v, _ := cmd.Flags().GetString("overtime"); v != "" {
				if overtime, err = decimalFlag(cmd, "overtime"); err != nil {
					return err
				}
			}
			res, err := engine.Paye.Compute(domain.PayeInput{
				GrossMonthlyIncome:   gross,
				DependentChildren:    children,
				InsurancePremiumPaid: insurance,
				OvertimeIncome:       overtime,
			}, asOf)
			if err != nil {
				return err
			}
			output.WritePayeResult(os.Stdout, res)
			return nil
		},
	}
	cmd.Flags().String("gross", "", "gross monthly income")
	cmd.Flags().Int("children", 0, "number of dependent children")
	cmd.Flags().String("insurance", "", "insurance premium paid this month")
	cmd.Flags().String("overtime", "", "overtime income this month")
	return cmd
}

func nisCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nis",
		Short: "Compute NIS contributions",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine(cmd)
			if err != nil {
				return err
			}
			asOf, err := asOfDate(cmd)
			if err != nil {
				return err
			}
			earnings, err := decimalFlag(cmd, "earnings")
			if err != nil {
				return err
			}
			periodName, _ := cmd.Flags().GetString("period")
			period, err := domain.ParsePeriodType(periodName)
			if err != nil {
				return err
			}
			res, err := engine.Nis.Compute(domain.NisInput{
				InsurableEarnings: earnings,
				Period:            period,
			}, asOf)
			if err != nil {
				return err
			}
			output.WriteNisResult(os.Stdout, res)
			return nil
		},
	}
	cmd.Flags().String("earnings", "", "insurable earnings for the period")
	cmd.Flags().String("period", "monthly", "contribution period: monthly or weekly")
	return cmd
}

func vatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vat",
		Short: "Compute VAT (exclusive or inclusive basis)",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine(cmd)
			if err != nil {
				return err
			}
			asOf, err := asOfDate(cmd)
			if err != nil {
				return err
			}
			amount, err := decimalFlag(cmd, "amount")
			if err != nil {
				return err
			}
			categoryName, _ := cmd.Flags().GetString("category")
			category, err := domain.ParseVatCategory(categoryName)
			if err != nil {
				return err
			}
			basisName, _ := cmd.Flags().GetString("basis")
			basis, err := domain.ParseAmountBasis(basisName)
			if err != nil {
				return err
			}
			res, err := engine.Vat.Compute(domain.VatInput{
				Amount:   amount,
				Category: category,
				Basis:    basis,
			}, asOf)
			if err != nil {
				return err
			}
			output.WriteVatResult(os.Stdout, res)
			return nil
		},
	}
	cmd.Flags().String("amount", "", "transaction amount")
	cmd.Flags().String("category", "standard", "VAT category: standard, zero_rated or exempt")
	cmd.Flags().String("basis", "exclusive", "amount basis: exclusive or inclusive")
	return cmd
}

func corptaxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "corptax",
		Short: "Compute corporation tax with the minimum-tax floor",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine(cmd)
			if err != nil {
				return err
			}
			asOf, err := asOfDate(cmd)
			if err != nil {
				return err
			}
			profit, err := decimalFlag(cmd, "profit")
			if err != nil {
				return err
			}
			turnover, err := decimalFlag(cmd, "turnover")
			if err != nil {
				return err
			}
			categoryName, _ := cmd.Flags().GetString("category")
			category, err := domain.ParseCompanyCategory(categoryName)
			if err != nil {
				return err
			}
			res, err := engine.CorporationTax.Compute(domain.CorporationTaxInput{
				TaxableProfit:  profit,
				AnnualTurnover: turnover,
				Category:       category,
			}, asOf)
			if err != nil {
				return err
			}
			output.WriteCorporationTaxResult(os.Stdout, res)
			return nil
		},
	}
	cmd.Flags().String("profit", "", "taxable profit for the year")
	cmd.Flags().String("turnover", "", "annual turnover")
	cmd.Flags().String("category", "commercial", "company category: non_commercial, commercial or telephone")
	return cmd
}

func withholdingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withholding",
		Short: "Compute withholding tax on a payment",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine(cmd)
			if err != nil {
				return err
			}
			asOf, err := asOfDate(cmd)
			if err != nil {
				return err
			}
			amount, err := decimalFlag(cmd, "amount")
			if err != nil {
				return err
			}
			categoryName, _ := cmd.Flags().GetString("category")
			category, err := domain.ParseWithholdingCategory(categoryName)
			if err != nil {
				return err
			}
			res, err := engine.Withholding.Compute(domain.WithholdingInput{
				GrossPayment: amount,
				Category:     category,
			}, asOf)
			if err != nil {
				return err
			}
			output.WriteWithholdingResult(os.Stdout, res)
			return nil
		},
	}
	cmd.Flags().String("amount", "", "gross payment amount")
	cmd.Flags().String("category", "", "payment category: dividends, interest, royalties, contract_payments, 7B1, 7B2 or 7B3")
	return cmd
}

func propertyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "property",
		Short: "Compute property tax",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine(cmd)
			if err != nil {
				return err
			}
			asOf, err := asOfDate(cmd)
			if err != nil {
				return err
			}
			value, err := decimalFlag(cmd, "value")
			if err != nil {
				return err
			}
			className, _ := cmd.Flags().GetString("class")
			class, err := domain.ParsePropertyClass(className)
			if err != nil {
				return err
			}
			res, err := engine.PropertyTax.Compute(domain.PropertyTaxInput{
				NetPropertyValue: value,
				Class:            class,
			}, asOf)
			if err != nil {
				return err
			}
			output.WriteFlatTaxResult(os.Stdout, res)
			return nil
		},
	}
	cmd.Flags().String("value", "", "net property value")
	cmd.Flags().String("class", "residential", "property class: residential or commercial")
	return cmd
}

func capitalGainsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "capitalgains",
		Short: "Compute capital gains tax",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine(cmd)
			if err != nil {
				return err
			}
			asOf, err := asOfDate(cmd)
			if err != nil {
				return err
			}
			gain, err := decimalFlag(cmd, "gain")
			if err != nil {
				return err
			}
			res, err := engine.CapitalGains.Compute(domain.CapitalGainsInput{ChargeableGain: gain}, asOf)
			if err != nil {
				return err
			}
			output.WriteFlatTaxResult(os.Stdout, res)
			return nil
		},
	}
	cmd.Flags().String("gain", "", "chargeable gain")
	return cmd
}

func exciseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "excise",
		Short: "Compute excise tax",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine(cmd)
			if err != nil {
				return err
			}
			asOf, err := asOfDate(cmd)
			if err != nil {
				return err
			}
			amount, err := decimalFlag(cmd, "amount")
			if err != nil {
				return err
			}
			productName, _ := cmd.Flags().GetString("product")
			product, err := domain.ParseExciseProduct(productName)
			if err != nil {
				return err
			}
			res, err := engine.Excise.Compute(domain.ExciseInput{
				DutiableAmount: amount,
				Product:        product,
			}, asOf)
			if err != nil {
				return err
			}
			output.WriteFlatTaxResult(os.Stdout, res)
			return nil
		},
	}
	cmd.Flags().String("amount", "", "dutiable amount")
	cmd.Flags().String("product", "", "product category: alcohol, tobacco or fuel")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [kind] [value]",
		Short: "Validate and canonicalize a Guyana identifier",
		Long:  "Kinds: tin, nis, vat, phone, national_id, passport",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := identifier.ParseKind(args[0])
			if err != nil {
				return err
			}
			res := identifier.Validate(kind, args[1])
			if !res.Valid {
				fmt.Fprintf(os.Stdout, "invalid: %s\n", res.Err)
				return nil
			}
			fmt.Fprintf(os.Stdout, "valid: %s\n", res.Formatted)
			return nil
		},
	}
}

// payrollFile is the YAML batch input for a payroll run.
type payrollFile struct {
	AsOf      time.Time         `yaml:"as_of"`
	Employees []payrollEmployee `yaml:"employees"`
}

type payrollEmployee struct {
	Name                 string          `yaml:"name"`
	TIN                  string          `yaml:"tin"`
	GrossMonthlyIncome   decimal.Decimal `yaml:"gross_monthly_income"`
	DependentChildren    int             `yaml:"dependent_children"`
	InsurancePremiumPaid decimal.Decimal `yaml:"insurance_premium_paid"`
	OvertimeIncome       decimal.Decimal `yaml:"overtime_income"`
	InsurableEarnings    decimal.Decimal `yaml:"insurable_earnings"`
}

func payrollCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "payroll [input-file]",
		Short: "Run batch payroll (PAYE + NIS per employee) from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine(cmd)
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read payroll file: %w", err)
			}
			var file payrollFile
			if err := yaml.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("parse payroll file %s: %w", args[0], err)
			}
			if len(file.Employees) == 0 {
				return fmt.Errorf("payroll file %s has no employees", args[0])
			}

			employees := make([]calculation.PayrollEmployee, len(file.Employees))
			for i, emp := range file.Employees {
				if emp.TIN != "" {
					res := identifier.Validate(identifier.KindTIN, emp.TIN)
					if !res.Valid {
						return fmt.Errorf("employee %q: TIN %s", emp.Name, res.Err)
					}
					emp.TIN = res.Formatted
				}
				employees[i] = calculation.PayrollEmployee{
					Name: emp.Name,
					TIN:  emp.TIN,
					Paye: domain.PayeInput{
						GrossMonthlyIncome:   emp.GrossMonthlyIncome,
						DependentChildren:    emp.DependentChildren,
						InsurancePremiumPaid: emp.InsurancePremiumPaid,
						OvertimeIncome:       emp.OvertimeIncome,
					},
					InsurableEarnings: emp.InsurableEarnings,
				}
			}

			result, err := engine.RunPayroll(cmd.Context(), employees, file.AsOf)
			if err != nil {
				return err
			}
			output.WritePayrollReport(os.Stdout, result)
			return nil
		},
	}
}

func main() {
	rootCmd.PersistentFlags().String("rates", "", "YAML rate-table file (defaults to built-in tables)")
	rootCmd.PersistentFlags().String("date", "", "effective date YYYY-MM-DD (defaults to today)")

	rootCmd.AddCommand(
		payeCmd(),
		nisCmd(),
		vatCmd(),
		corptaxCmd(),
		withholdingCmd(),
		propertyCmd(),
		capitalGainsCmd(),
		exciseCmd(),
		validateCmd(),
		payrollCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
