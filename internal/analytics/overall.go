package analytics

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"fundpulse/internal/dataset"
	"fundpulse/pkg/contracts/domain"
)

// Overall answers whole-dataset aggregation queries. All methods are
// read-only single passes over the table; none retain state between
// calls.
type Overall struct {
	table *dataset.Table
}

// NewOverall creates the whole-dataset query set over a table.
func NewOverall(table *dataset.Table) *Overall {
	return &Overall{table: table}
}

// TotalInvested sums the amount of every record exactly once, rounded
// to the nearest integer unit.
func (o *Overall) TotalInvested() decimal.Decimal {
	total := decimal.Zero
	for _, rec := range o.table.Records() {
		total = total.Add(rec.Amount)
	}
	return total.Round(0)
}

// MaxSingleStartupFunding returns the largest single funding amount
// any startup received in one round.
func (o *Overall) MaxSingleStartupFunding() decimal.Decimal {
	maxByStartup := make(map[string]decimal.Decimal)
	for _, rec := range o.table.Records() {
		if cur, ok := maxByStartup[rec.StartupName]; !ok || rec.Amount.GreaterThan(cur) {
			maxByStartup[rec.StartupName] = rec.Amount
		}
	}
	best := decimal.Zero
	for _, amount := range maxByStartup {
		if amount.GreaterThan(best) {
			best = amount
		}
	}
	return best
}

// AverageTicketSize returns the mean of per-startup funding totals,
// not the mean of individual rows.
func (o *Overall) AverageTicketSize() decimal.Decimal {
	totals := sumByLabel(o.table.Records(), func(r domain.FundingRecord) string {
		return r.StartupName
	})
	if len(totals) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, row := range totals {
		sum = sum.Add(row.Amount)
	}
	return sum.Div(decimal.NewFromInt(int64(len(totals))))
}

// FundedStartupCount counts distinct startup names. The count is
// invariant under row reordering.
func (o *Overall) FundedStartupCount() int {
	seen := make(map[string]struct{})
	for _, rec := range o.table.Records() {
		seen[rec.StartupName] = struct{}{}
	}
	return len(seen)
}

// FundingByMonth sums amounts per (year, month), ordered ascending.
func (o *Overall) FundingByMonth() []MonthlyPoint {
	return o.byMonth()
}

// FundedCountByMonth counts funding rounds per (year, month), ordered
// ascending. The Count field carries the result; Amount is the monthly
// sum and comes along for free.
func (o *Overall) FundedCountByMonth() []MonthlyPoint {
	return o.byMonth()
}

func (o *Overall) byMonth() []MonthlyPoint {
	type ym struct{ year, month int }
	sums := make(map[ym]decimal.Decimal)
	counts := make(map[ym]int)
	for _, rec := range o.table.Records() {
		k := ym{rec.Year, rec.Month}
		sums[k] = sums[k].Add(rec.Amount)
		counts[k]++
	}

	keys := make([]ym, 0, len(sums))
	for k := range sums {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	points := make([]MonthlyPoint, 0, len(keys))
	for _, k := range keys {
		points = append(points, MonthlyPoint{
			Year:   k.year,
			Month:  k.month,
			Label:  fmt.Sprintf("%d-%d", k.month, k.year),
			Amount: sums[k],
			Count:  counts[k],
		})
	}
	return points
}

// TopSectors returns the highest-funded verticals, zero-amount groups
// dropped, descending by amount.
func (o *Overall) TopSectors(limit int) []LabelAmount {
	rows := sumByLabel(o.table.Records(), func(r domain.FundingRecord) string {
		return r.Vertical
	})
	rows = dropZero(rows)
	sortByAmountDesc(rows)
	return head(rows, limit)
}

// TopRoundTypes returns the highest-funded round types.
func (o *Overall) TopRoundTypes(limit int) []LabelAmount {
	rows := sumByLabel(o.table.Records(), func(r domain.FundingRecord) string {
		return r.RoundType
	})
	rows = dropZero(rows)
	sortByAmountDesc(rows)
	return head(rows, limit)
}

// TopCities returns the highest-funded cities. "Bengaluru" is folded
// into "Bangalore" before ranking: the source data uses both spellings
// for the same city, so the result never contains both.
func (o *Overall) TopCities(limit int) []LabelAmount {
	rows := sumByLabel(o.table.Records(), func(r domain.FundingRecord) string {
		if r.City == "Bengaluru" {
			return "Bangalore"
		}
		return r.City
	})
	rows = dropZero(rows)
	sortByAmountDesc(rows)
	return head(rows, limit)
}

// TopStartupPerYear returns, for each year, the startup with the
// highest summed funding. Ties go to the lexicographically smallest
// name. Results are ordered by year ascending.
func (o *Overall) TopStartupPerYear() []YearlyTop {
	type key struct {
		year int
		name string
	}
	sums := make(map[key]decimal.Decimal)
	for _, rec := range o.table.Records() {
		k := key{rec.Year, rec.StartupName}
		sums[k] = sums[k].Add(rec.Amount)
	}

	best := make(map[int]YearlyTop)
	for k, amount := range sums {
		cur, ok := best[k.year]
		switch {
		case !ok,
			amount.GreaterThan(cur.Amount),
			amount.Equal(cur.Amount) && k.name < cur.Startup:
			best[k.year] = YearlyTop{Year: k.year, Startup: k.name, Amount: amount}
		}
	}

	tops := make([]YearlyTop, 0, len(best))
	for _, t := range best {
		tops = append(tops, t)
	}
	sort.Slice(tops, func(i, j int) bool { return tops[i].Year < tops[j].Year })
	return tops
}

// TopInvestors explodes multi-investor rounds into one row per
// investor (each carrying the full round amount), sums per investor,
// merges the "Softbank" spelling into "SoftBank Group", and returns
// the top earners descending.
func (o *Overall) TopInvestors(limit int) []LabelAmount {
	exploded := Explode(o.table.Records())
	rows := sumByLabel(exploded, func(r domain.FundingRecord) string {
		if r.Investors == "Softbank" {
			return "SoftBank Group"
		}
		return r.Investors
	})
	sortByAmountDesc(rows)
	return head(rows, limit)
}

// FundingPivot builds the year × month funding matrix. Cells with no
// data are absent rather than zero-filled.
func (o *Overall) FundingPivot() Pivot {
	cells := make(map[int]map[int]decimal.Decimal)
	monthSet := make(map[int]struct{})
	for _, rec := range o.table.Records() {
		row, ok := cells[rec.Year]
		if !ok {
			row = make(map[int]decimal.Decimal)
			cells[rec.Year] = row
		}
		row[rec.Month] = row[rec.Month].Add(rec.Amount)
		monthSet[rec.Month] = struct{}{}
	}

	years := make([]int, 0, len(cells))
	for y := range cells {
		years = append(years, y)
	}
	sort.Ints(years)

	months := make([]int, 0, len(monthSet))
	for m := range monthSet {
		months = append(months, m)
	}
	sort.Ints(months)

	return Pivot{Years: years, Months: months, Cells: cells}
}

// DistinctInvestors returns every investor name appearing in any
// record's investors field, deduplicated, placeholder entries
// filtered, sorted ascending.
func (o *Overall) DistinctInvestors() []string {
	seen := make(map[string]struct{})
	for _, rec := range o.table.Records() {
		for _, name := range rec.InvestorNames() {
			seen[name] = struct{}{}
		}
	}
	return sortedNames(seen)
}

// DistinctStartups returns the deduplicated, placeholder-filtered,
// ascending list of startup names. Repeated calls return identical
// sequences.
func (o *Overall) DistinctStartups() []string {
	seen := make(map[string]struct{})
	for _, rec := range o.table.Records() {
		seen[rec.StartupName] = struct{}{}
	}
	return sortedNames(seen)
}

func sortedNames(seen map[string]struct{}) []string {
	names := make([]string, 0, len(seen))
	for name := range seen {
		if isPlaceholder(name) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
