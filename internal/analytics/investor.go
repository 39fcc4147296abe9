package analytics

import (
	"sort"
	"strings"

	"fundpulse/internal/dataset"
	"fundpulse/pkg/contracts/domain"
)

// similarInvestorCount is how many similar investors a query returns
// at most.
const similarInvestorCount = 4

// undisclosedInvestors is the placeholder investor label excluded from
// similarity candidates, matched case-insensitively.
const undisclosedInvestors = "Undisclosed Investors"

// Investor answers queries keyed by a substring match against the raw
// investors field (see Matches for the imprecision this carries). A
// query matching zero rows yields empty results, never an error.
type Investor struct {
	table   *dataset.Table
	sampler Sampler
}

// NewInvestor creates the per-investor query set. The sampler drives
// SimilarInvestors; pass NewRandSampler() in production.
func NewInvestor(table *dataset.Table, sampler Sampler) *Investor {
	if sampler == nil {
		sampler = NewRandSampler()
	}
	return &Investor{table: table, sampler: sampler}
}

// filter returns the records whose investors field contains the query,
// preserving table order.
func (v *Investor) filter(query string) []domain.FundingRecord {
	var out []domain.FundingRecord
	for _, rec := range v.table.Records() {
		if Matches(rec.Investors, query) {
			out = append(out, rec)
		}
	}
	return out
}

// RecentInvestments returns the first five matching rounds in table
// order. Table order is load order, which for the known datasets is
// chronologically ascending — so despite the name this yields the
// earliest rounds, not the latest. The dashboard has always shown it
// this way; changing it would silently change every saved view.
func (v *Investor) RecentInvestments(query string) []InvestmentDetail {
	matched := v.filter(query)
	if len(matched) > 5 {
		matched = matched[:5]
	}
	details := make([]InvestmentDetail, 0, len(matched))
	for _, rec := range matched {
		details = append(details, InvestmentDetail{
			Date:      rec.Date,
			Startup:   rec.StartupName,
			Vertical:  rec.Vertical,
			City:      rec.City,
			Investors: rec.Investors,
			RoundType: rec.RoundType,
			Amount:    rec.Amount,
		})
	}
	return details
}

// BiggestInvestments returns the five startups into which the investor
// put the most money, descending by summed amount.
func (v *Investor) BiggestInvestments(query string) []LabelAmount {
	rows := sumByLabel(v.filter(query), func(r domain.FundingRecord) string {
		return r.StartupName
	})
	sortByAmountDesc(rows)
	return head(rows, 5)
}

// SectorBreakdown sums the investor's amounts by vertical.
func (v *Investor) SectorBreakdown(query string) []LabelAmount {
	return v.breakdown(query, func(r domain.FundingRecord) string { return r.Vertical })
}

// SubsectorBreakdown sums the investor's amounts by subvertical.
func (v *Investor) SubsectorBreakdown(query string) []LabelAmount {
	return v.breakdown(query, func(r domain.FundingRecord) string { return r.Subvertical })
}

// CityBreakdown sums the investor's amounts by city.
func (v *Investor) CityBreakdown(query string) []LabelAmount {
	return v.breakdown(query, func(r domain.FundingRecord) string { return r.City })
}

// RoundTypeBreakdown sums the investor's amounts by round type.
func (v *Investor) RoundTypeBreakdown(query string) []LabelAmount {
	return v.breakdown(query, func(r domain.FundingRecord) string { return r.RoundType })
}

func (v *Investor) breakdown(query string, key func(domain.FundingRecord) string) []LabelAmount {
	rows := sumByLabel(v.filter(query), key)
	sortByLabelAsc(rows)
	return rows
}

// YearlyTrend sums the investor's amounts per year, ascending.
func (v *Investor) YearlyTrend(query string) []YearAmount {
	byYear := make(map[int]YearAmount)
	for _, rec := range v.filter(query) {
		cur := byYear[rec.Year]
		cur.Year = rec.Year
		cur.Amount = cur.Amount.Add(rec.Amount)
		byYear[rec.Year] = cur
	}
	years := make([]YearAmount, 0, len(byYear))
	for _, ya := range byYear {
		years = append(years, ya)
	}
	sort.Slice(years, func(i, j int) bool { return years[i].Year < years[j].Year })
	return years
}

// SimilarInvestors finds investors active in the same vertical as the
// queried investor's first matching round. Rows whose investors field
// is exactly the undisclosed placeholder (case-insensitive) or exactly
// the query itself are excluded; the remaining fields are split,
// flattened, and sorted, and up to four names are drawn by the
// injected sampler. A query matching nothing yields an empty result.
func (v *Investor) SimilarInvestors(query string) []string {
	matched := v.filter(query)
	if len(matched) == 0 {
		return nil
	}
	vertical := matched[0].Vertical

	var candidates []string
	for _, rec := range v.table.Records() {
		if rec.Vertical != vertical {
			continue
		}
		if strings.EqualFold(rec.Investors, undisclosedInvestors) {
			continue
		}
		if rec.Investors == query {
			continue
		}
		candidates = append(candidates, rec.InvestorNames()...)
	}
	sort.Strings(candidates)

	return v.sampler.Sample(candidates, similarInvestorCount)
}
