package analytics

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrNotFound is returned by per-startup lookups when the name matches
// zero records. Callers surface it as an explicit error value; it is
// never a panic.
var ErrNotFound = errors.New("analytics: no matching records")

// LabelAmount is one row of a label → summed amount result table.
type LabelAmount struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// MonthlyPoint is one row of a month-over-month trend. Label carries
// the "{month}-{year}" display form expected by the dashboard.
type MonthlyPoint struct {
	Year   int             `json:"year"`
	Month  int             `json:"month"`
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
}

// YearAmount is one row of a year → summed amount trend.
type YearAmount struct {
	Year   int             `json:"year"`
	Amount decimal.Decimal `json:"amount"`
}

// YearlyTop names the highest-funded startup of one year.
type YearlyTop struct {
	Year    int             `json:"year"`
	Startup string          `json:"startup"`
	Amount  decimal.Decimal `json:"amount"`
}

// InvestmentDetail is the fixed projection returned for an investor's
// investment listing.
type InvestmentDetail struct {
	Date      time.Time       `json:"date"`
	Startup   string          `json:"startup"`
	Vertical  string          `json:"vertical"`
	City      string          `json:"city"`
	Investors string          `json:"investors"`
	RoundType string          `json:"round_type"`
	Amount    decimal.Decimal `json:"amount"`
}

// Pivot is a 2-D funding table: rows are years, columns are months,
// cells are summed amounts. Cells absent from the data are absent from
// the map; there is no implicit zero fill.
type Pivot struct {
	Years  []int                               `json:"years"`
	Months []int                               `json:"months"`
	Cells  map[int]map[int]decimal.Decimal     `json:"cells"`
}

// Cell returns the amount for (year, month) and whether it exists.
func (p Pivot) Cell(year, month int) (decimal.Decimal, bool) {
	row, ok := p.Cells[year]
	if !ok {
		return decimal.Decimal{}, false
	}
	amount, ok := row[month]
	return amount, ok
}
