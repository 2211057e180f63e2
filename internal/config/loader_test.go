package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kareemschultz/gk-nexus/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validTables = `
tables:
  - version: FY2025
    effective_from: 2025-01-01
    paye:
      personal_allowance: 130000
      child_allowance: 10000
      insurance_gross_fraction: 0.10
      insurance_premium_cap: 50000
      overtime_exemption_cap: 50000
      brackets:
        - min: 0
          max: 130000
          rate: 0.25
          label: 25% band
        - min: 130000
          rate: 0.35
          label: 35% band
    nis:
      employee_rate: 0.056
      employer_rate: 0.084
      monthly_ceiling: 280000
      weekly_ceiling: 64615
      max_employee_monthly: 15680
      max_employer_monthly: 23520
      max_employee_weekly: 3618.44
      max_employer_weekly: 5427.66
    vat:
      standard_rate: 0.14
    corporation_tax:
      non_commercial_rate: 0.25
      commercial_rate: 0.40
      telephone_rate: 0.45
      minimum_tax_rate: 0.02
      minimum_tax_categories: [commercial]
    withholding_tax:
      dividends: 0.20
      interest: 0.20
      royalties: 0.20
      contract_payments: 0.02
      section_7b1: 0.10
      section_7b2: 0.15
      section_7b3: 0.20
    property_tax:
      residential_rate: 0.005
      commercial_rate: 0.0075
    capital_gains:
      rate: 0.20
    excise:
      alcohol_rate: 0.40
      tobacco_rate: 1.00
      fuel_rate: 0.10
`

func writeFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rates.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadRateTables(t *testing.T) {
	set, err := LoadRateTables(writeFile(t, validTables))
	require.NoError(t, err)

	table, err := set.Resolve(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, "FY2025", table.Version)
	assert.True(t, table.Paye.PersonalAllowance.Equal(decimal.NewFromInt(130000)))
	assert.True(t, table.Vat.StandardRate.Equal(decimal.RequireFromString("0.14")))
	assert.True(t, table.Nis.EmployeeRate.Equal(decimal.RequireFromString("0.056")))
	require.Len(t, table.Paye.Brackets, 2)
	assert.Nil(t, table.Paye.Brackets[1].Max)
	assert.True(t, table.CorporationTax.MinimumApplies(domain.CompanyCommercial))
	assert.False(t, table.CorporationTax.MinimumApplies(domain.CompanyTelephone))
}

func TestLoadRateTablesMissingFile(t *testing.T) {
	_, err := LoadRateTables(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadRateTablesMalformedYAML(t *testing.T) {
	_, err := LoadRateTables(writeFile(t, "tables: [not: valid: yaml"))
	require.Error(t, err)

	var configErr *domain.ConfigurationError
	assert.True(t, errors.As(err, &configErr), "expected ConfigurationError, got %v", err)
}

func TestLoadRateTablesRejectsBadBrackets(t *testing.T) {
	// A gap between brackets is a data defect surfaced at load time.
	brokenYAML := `
tables:
  - version: BAD
    effective_from: 2025-01-01
    paye:
      personal_allowance: 130000
      child_allowance: 10000
      insurance_gross_fraction: 0.10
      insurance_premium_cap: 50000
      overtime_exemption_cap: 50000
      brackets:
        - min: 0
          max: 130000
          rate: 0.25
          label: 25% band
        - min: 150000
          rate: 0.35
          label: 35% band
    nis:
      employee_rate: 0.056
      employer_rate: 0.084
      monthly_ceiling: 280000
      weekly_ceiling: 64615
      max_employee_monthly: 15680
      max_employer_monthly: 23520
      max_employee_weekly: 3618.44
      max_employer_weekly: 5427.66
    vat:
      standard_rate: 0.14
    corporation_tax:
      non_commercial_rate: 0.25
      commercial_rate: 0.40
      telephone_rate: 0.45
      minimum_tax_rate: 0.02
      minimum_tax_categories: [commercial]
    withholding_tax:
      dividends: 0.20
      interest: 0.20
      royalties: 0.20
      contract_payments: 0.02
      section_7b1: 0.10
      section_7b2: 0.15
      section_7b3: 0.20
    property_tax:
      residential_rate: 0.005
      commercial_rate: 0.0075
    capital_gains:
      rate: 0.20
    excise:
      alcohol_rate: 0.40
      tobacco_rate: 1.00
      fuel_rate: 0.10
`

	_, err := LoadRateTables(writeFile(t, brokenYAML))
	require.Error(t, err)

	var configErr *domain.ConfigurationError
	assert.True(t, errors.As(err, &configErr), "expected ConfigurationError, got %v", err)
	assert.Contains(t, err.Error(), "gap or overlap")
}
