package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FundingRecord represents a single startup funding event.
type FundingRecord struct {
	Date        time.Time       `json:"date"`
	Year        int             `json:"year"`
	Month       int             `json:"month"`
	StartupName string          `json:"startup_name" validate:"required"`
	Vertical    string          `json:"vertical"`
	Subvertical string          `json:"subvertical"`
	City        string          `json:"city"`
	Investors   string          `json:"investors"`
	RoundType   string          `json:"round_type"`
	Amount      decimal.Decimal `json:"amount"`
}

// InvestorNames splits the raw comma-separated investors field into
// individual names. The field is the source of truth for investor
// membership; spacing around separators is inconsistent in the source
// data, so each fragment is trimmed. Empty fragments are dropped.
func (r FundingRecord) InvestorNames() []string {
	parts := strings.Split(r.Investors, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// HasInvestor reports whether the raw investors field contains the
// given query as a substring. This is deliberately imprecise: a name
// that is a prefix of another name will over-match. All investor
// membership checks go through this single method so the ambiguity
// stays in one place.
func (r FundingRecord) HasInvestor(query string) bool {
	return strings.Contains(r.Investors, query)
}
