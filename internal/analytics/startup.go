package analytics

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"fundpulse/internal/dataset"
	"fundpulse/pkg/contracts/domain"
)

// Startup answers queries keyed by an exact startup name. A startup
// can appear in several funding rows; field lookups read the first
// matching row in table order.
type Startup struct {
	table *dataset.Table
}

// NewStartup creates the per-startup query set over a table.
func NewStartup(table *dataset.Table) *Startup {
	return &Startup{table: table}
}

// first returns the earliest record for the name, or ErrNotFound when
// the name matches zero rows.
func (s *Startup) first(name string) (domain.FundingRecord, error) {
	for _, rec := range s.table.Records() {
		if rec.StartupName == name {
			return rec, nil
		}
	}
	return domain.FundingRecord{}, fmt.Errorf("startup %q: %w", name, ErrNotFound)
}

// Sector returns the startup's vertical.
func (s *Startup) Sector(name string) (string, error) {
	rec, err := s.first(name)
	return rec.Vertical, err
}

// Subsector returns the startup's subvertical.
func (s *Startup) Subsector(name string) (string, error) {
	rec, err := s.first(name)
	return rec.Subvertical, err
}

// Location returns the startup's city.
func (s *Startup) Location(name string) (string, error) {
	rec, err := s.first(name)
	return rec.City, err
}

// Stage returns the startup's funding round type.
func (s *Startup) Stage(name string) (string, error) {
	rec, err := s.first(name)
	return rec.RoundType, err
}

// Investors returns the startup's raw investors field.
func (s *Startup) Investors(name string) (string, error) {
	rec, err := s.first(name)
	return rec.Investors, err
}

// InvestmentDate returns the date of the startup's first recorded round.
func (s *Startup) InvestmentDate(name string) (time.Time, error) {
	rec, err := s.first(name)
	return rec.Date, err
}

// TotalFunding sums the amount of every round the startup received.
func (s *Startup) TotalFunding(name string) (decimal.Decimal, error) {
	if _, err := s.first(name); err != nil {
		return decimal.Decimal{}, err
	}
	total := decimal.Zero
	for _, rec := range s.table.Records() {
		if rec.StartupName == name {
			total = total.Add(rec.Amount)
		}
	}
	return total, nil
}

// SimilarStartups returns the other distinct startups sharing the
// queried startup's vertical. The queried name itself is never
// included; order follows first appearance in the table.
func (s *Startup) SimilarStartups(name string) ([]string, error) {
	rec, err := s.first(name)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var similar []string
	for _, other := range s.table.Records() {
		if other.Vertical != rec.Vertical || other.StartupName == name {
			continue
		}
		if _, dup := seen[other.StartupName]; dup {
			continue
		}
		seen[other.StartupName] = struct{}{}
		similar = append(similar, other.StartupName)
	}
	return similar, nil
}
