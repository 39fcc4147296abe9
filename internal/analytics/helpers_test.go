package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"fundpulse/internal/dataset"
	"fundpulse/pkg/contracts/domain"
)

// rec builds a funding record with the fields the query tests care
// about. Date is derived from year/month so trend assertions line up.
func rec(startup, vertical, city, investors, round string, amount float64, year, month int) domain.FundingRecord {
	return domain.FundingRecord{
		Date:        time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC),
		Year:        year,
		Month:       month,
		StartupName: startup,
		Vertical:    vertical,
		City:        city,
		Investors:   investors,
		RoundType:   round,
		Amount:      decimal.NewFromFloat(amount),
	}
}

func table(records ...domain.FundingRecord) *dataset.Table {
	return dataset.NewTable(records)
}

func amt(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}
