package rates

import (
	"sort"
	"time"

	"github.com/kareemschultz/gk-nexus/internal/domain"
)

// Set is an immutable, chronologically ordered collection of rate tables.
// Build one at process start and share it freely; it has no write path after
// construction, so concurrent reads need no locking.
type Set struct {
	tables []Table
}

// NewSet validates the tables and assembles them into a Set. Every table is
// fully validated and the periods are checked for overlap; any defect is a
// ConfigurationError, surfaced here rather than at calculation time.
func NewSet(tables ...Table) (*Set, error) {
	if len(tables) == 0 {
		return nil, domain.NewConfigurationError("no rate tables provided")
	}
	ordered := make([]Table, len(tables))
	copy(ordered, tables)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].EffectiveFrom.Before(ordered[j].EffectiveFrom)
	})

	for i := range ordered {
		if err := validateTable(&ordered[i]); err != nil {
			return nil, err
		}
	}
	for i := 0; i < len(ordered)-1; i++ {
		cur, next := &ordered[i], &ordered[i+1]
		if cur.EffectiveTo == nil {
			return nil, domain.NewConfigurationError(
				"table %s is open-ended but %s starts later", cur.Version, next.Version)
		}
		if next.EffectiveFrom.Before(*cur.EffectiveTo) {
			return nil, domain.NewConfigurationError(
				"tables %s and %s overlap", cur.Version, next.Version)
		}
	}

	return &Set{tables: ordered}, nil
}

// Resolve returns the table in force on the given date: the latest-starting
// table whose [EffectiveFrom, EffectiveTo) covers it. When none does, the
// caller gets an UnsupportedPeriodError.
func (s *Set) Resolve(date time.Time) (*Table, error) {
	for i := len(s.tables) - 1; i >= 0; i-- {
		if s.tables[i].Covers(date) {
			return &s.tables[i], nil
		}
	}
	return nil, &domain.UnsupportedPeriodError{Date: date}
}

// Versions lists the table versions in chronological order.
func (s *Set) Versions() []string {
	versions := make([]string, len(s.tables))
	for i, t := range s.tables {
		versions[i] = t.Version
	}
	return versions
}
