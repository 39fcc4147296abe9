package analytics

import (
	"sort"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"fundpulse/pkg/contracts/domain"
)

// Matches reports whether an investor query hits a record's raw
// investors field. Membership is substring containment against the
// unnormalized field, so a name that is a prefix of another name will
// over-match. Every investor filter in this package goes through this
// function so the imprecision is testable in one place.
func Matches(investorField, query string) bool {
	return strings.Contains(investorField, query)
}

// Explode unpivots the delimited investors field into one synthetic
// record per investor name. Each synthetic record carries the full
// round amount, so a multi-investor round is counted once per listed
// investor. The double counting is intentional: per-investor totals
// credit every participant with the whole round.
func Explode(records []domain.FundingRecord) []domain.FundingRecord {
	out := make([]domain.FundingRecord, 0, len(records))
	for _, rec := range records {
		for _, name := range rec.InvestorNames() {
			exploded := rec
			exploded.Investors = name
			out = append(out, exploded)
		}
	}
	return out
}

// isPlaceholder reports whether a name is one of the header-like or
// junk entries the source data is known to carry. Name listings filter
// through this instead of positionally dropping the first sorted
// entries, so legitimate names survive dataset changes.
func isPlaceholder(name string) bool {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return true
	}
	for _, r := range trimmed {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	// Only punctuation: stray separators such as "\\xc2\\xa0" or "&".
	return true
}

// sumByLabel groups records by the given key function and sums amounts
// per group. First-seen group order is preserved.
func sumByLabel(records []domain.FundingRecord, key func(domain.FundingRecord) string) []LabelAmount {
	totals := make(map[string]decimal.Decimal)
	var order []string
	for _, rec := range records {
		k := key(rec)
		if _, seen := totals[k]; !seen {
			order = append(order, k)
		}
		totals[k] = totals[k].Add(rec.Amount)
	}

	rows := make([]LabelAmount, 0, len(order))
	for _, k := range order {
		rows = append(rows, LabelAmount{Label: k, Amount: totals[k]})
	}
	return rows
}

// sortByAmountDesc orders rows by amount descending, breaking ties by
// label ascending so result tables are deterministic.
func sortByAmountDesc(rows []LabelAmount) {
	sort.SliceStable(rows, func(i, j int) bool {
		if c := rows[i].Amount.Cmp(rows[j].Amount); c != 0 {
			return c > 0
		}
		return rows[i].Label < rows[j].Label
	})
}

// sortByLabelAsc orders rows lexicographically by label.
func sortByLabelAsc(rows []LabelAmount) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Label < rows[j].Label
	})
}

// dropZero removes zero-amount groups.
func dropZero(rows []LabelAmount) []LabelAmount {
	out := rows[:0]
	for _, row := range rows {
		if !row.Amount.IsZero() {
			out = append(out, row)
		}
	}
	return out
}

// head truncates rows to the first n entries.
func head(rows []LabelAmount, n int) []LabelAmount {
	if n > 0 && len(rows) > n {
		return rows[:n]
	}
	return rows
}
