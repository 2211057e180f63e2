// Package config loads versioned rate tables from YAML. The engine itself
// never reads files; this loader fills that external-collaborator role at
// process start.
package config

import (
	"fmt"
	"os"

	"github.com/kareemschultz/gk-nexus/internal/domain"
	"github.com/kareemschultz/gk-nexus/internal/rates"
	"gopkg.in/yaml.v3"
)

type rateTableFile struct {
	Tables []rates.Table `yaml:"tables"`
}

// LoadRateTables reads a YAML rate-table file and assembles a validated Set.
// Any structural problem (unparseable YAML, overlapping periods, gapped
// brackets, negative rates) is a ConfigurationError wrapped with the file
// context: rate data defects are fatal at load time, never at calculation
// time.
func LoadRateTables(path string) (*rates.Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rate tables %s: %w", path, err)
	}

	var file rateTableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("rate tables %s: %w", path, domain.NewConfigurationError("parse: %v", err))
	}

	set, err := rates.NewSet(file.Tables...)
	if err != nil {
		return nil, fmt.Errorf("rate tables %s: %w", path, err)
	}
	return set, nil
}
