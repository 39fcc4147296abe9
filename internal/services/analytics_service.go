// Package services wires the immutable dataset table to the query
// layer and exposes context-aware methods to the transport handlers.
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"fundpulse/internal/analytics"
	"fundpulse/internal/dataset"
)

// OverallSummary carries the four headline metrics of the dashboard.
type OverallSummary struct {
	TotalInvested     decimal.Decimal `json:"total_invested"`
	MaxSingleFunding  decimal.Decimal `json:"max_single_funding"`
	AverageTicketSize decimal.Decimal `json:"average_ticket_size"`
	FundedStartups    int             `json:"funded_startups"`
}

// StartupProfile aggregates everything the dashboard shows for one
// startup.
type StartupProfile struct {
	Name            string          `json:"name"`
	Sector          string          `json:"sector"`
	Subsector       string          `json:"subsector"`
	Location        string          `json:"location"`
	Stage           string          `json:"stage"`
	Investors       string          `json:"investors"`
	InvestmentDate  time.Time       `json:"investment_date"`
	TotalFunding    decimal.Decimal `json:"total_funding"`
	SimilarStartups []string        `json:"similar_startups"`
}

// AnalyticsService executes query-layer operations against the loaded
// table. It holds no mutable state: every call is an independent
// read-only pass, safe for concurrent use.
type AnalyticsService struct {
	table    *dataset.Table
	overall  *analytics.Overall
	startup  *analytics.Startup
	investor *analytics.Investor
	logger   *slog.Logger
}

// NewAnalyticsService builds the query layer over a loaded table.
func NewAnalyticsService(table *dataset.Table, sampler analytics.Sampler, logger *slog.Logger) *AnalyticsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalyticsService{
		table:    table,
		overall:  analytics.NewOverall(table),
		startup:  analytics.NewStartup(table),
		investor: analytics.NewInvestor(table, sampler),
		logger:   logger.With(slog.String("component", "analytics_service")),
	}
}

// DatasetSize returns the number of loaded records.
func (s *AnalyticsService) DatasetSize() int {
	return s.table.Len()
}

// Summary computes the headline metrics.
func (s *AnalyticsService) Summary(ctx context.Context) (OverallSummary, error) {
	s.logger.DebugContext(ctx, "computing overall summary")
	return OverallSummary{
		TotalInvested:     s.overall.TotalInvested(),
		MaxSingleFunding:  s.overall.MaxSingleStartupFunding(),
		AverageTicketSize: s.overall.AverageTicketSize(),
		FundedStartups:    s.overall.FundedStartupCount(),
	}, nil
}

// FundingByMonth returns the month-over-month funding trend.
func (s *AnalyticsService) FundingByMonth(ctx context.Context) ([]analytics.MonthlyPoint, error) {
	return s.overall.FundingByMonth(), nil
}

// FundedCountByMonth returns the month-over-month round-count trend.
func (s *AnalyticsService) FundedCountByMonth(ctx context.Context) ([]analytics.MonthlyPoint, error) {
	return s.overall.FundedCountByMonth(), nil
}

// TopSectors returns the highest-funded verticals.
func (s *AnalyticsService) TopSectors(ctx context.Context, limit int) ([]analytics.LabelAmount, error) {
	return s.overall.TopSectors(limit), nil
}

// TopRoundTypes returns the highest-funded round types.
func (s *AnalyticsService) TopRoundTypes(ctx context.Context, limit int) ([]analytics.LabelAmount, error) {
	return s.overall.TopRoundTypes(limit), nil
}

// TopCities returns the highest-funded cities.
func (s *AnalyticsService) TopCities(ctx context.Context, limit int) ([]analytics.LabelAmount, error) {
	return s.overall.TopCities(limit), nil
}

// TopInvestors returns the highest-spending investors.
func (s *AnalyticsService) TopInvestors(ctx context.Context, limit int) ([]analytics.LabelAmount, error) {
	return s.overall.TopInvestors(limit), nil
}

// TopStartupsYearly returns the top-funded startup of each year.
func (s *AnalyticsService) TopStartupsYearly(ctx context.Context) ([]analytics.YearlyTop, error) {
	return s.overall.TopStartupPerYear(), nil
}

// FundingPivot returns the year × month funding matrix.
func (s *AnalyticsService) FundingPivot(ctx context.Context) (analytics.Pivot, error) {
	return s.overall.FundingPivot(), nil
}

// StartupNames lists all startups, placeholder entries removed.
func (s *AnalyticsService) StartupNames(ctx context.Context) ([]string, error) {
	return s.overall.DistinctStartups(), nil
}

// InvestorNames lists all investors, placeholder entries removed.
func (s *AnalyticsService) InvestorNames(ctx context.Context) ([]string, error) {
	return s.overall.DistinctInvestors(), nil
}

// Startup builds the full profile for one startup. Returns
// analytics.ErrNotFound when the name matches zero records.
func (s *AnalyticsService) Startup(ctx context.Context, name string) (StartupProfile, error) {
	s.logger.DebugContext(ctx, "building startup profile", slog.String("startup", name))

	sector, err := s.startup.Sector(name)
	if err != nil {
		return StartupProfile{}, err
	}

	// The remaining lookups cannot fail once the first one succeeded:
	// they read the same first matching record.
	subsector, _ := s.startup.Subsector(name)
	location, _ := s.startup.Location(name)
	stage, _ := s.startup.Stage(name)
	investors, _ := s.startup.Investors(name)
	date, _ := s.startup.InvestmentDate(name)
	total, _ := s.startup.TotalFunding(name)
	similar, _ := s.startup.SimilarStartups(name)

	return StartupProfile{
		Name:            name,
		Sector:          sector,
		Subsector:       subsector,
		Location:        location,
		Stage:           stage,
		Investors:       investors,
		InvestmentDate:  date,
		TotalFunding:    total,
		SimilarStartups: similar,
	}, nil
}

// InvestorRecent returns the investor's first five recorded rounds.
func (s *AnalyticsService) InvestorRecent(ctx context.Context, query string) ([]analytics.InvestmentDetail, error) {
	return s.investor.RecentInvestments(query), nil
}

// InvestorBiggest returns the investor's five largest positions.
func (s *AnalyticsService) InvestorBiggest(ctx context.Context, query string) ([]analytics.LabelAmount, error) {
	return s.investor.BiggestInvestments(query), nil
}

// InvestorSectors returns the investor's per-vertical totals.
func (s *AnalyticsService) InvestorSectors(ctx context.Context, query string) ([]analytics.LabelAmount, error) {
	return s.investor.SectorBreakdown(query), nil
}

// InvestorSubsectors returns the investor's per-subvertical totals.
func (s *AnalyticsService) InvestorSubsectors(ctx context.Context, query string) ([]analytics.LabelAmount, error) {
	return s.investor.SubsectorBreakdown(query), nil
}

// InvestorCities returns the investor's per-city totals.
func (s *AnalyticsService) InvestorCities(ctx context.Context, query string) ([]analytics.LabelAmount, error) {
	return s.investor.CityBreakdown(query), nil
}

// InvestorRoundTypes returns the investor's per-round-type totals.
func (s *AnalyticsService) InvestorRoundTypes(ctx context.Context, query string) ([]analytics.LabelAmount, error) {
	return s.investor.RoundTypeBreakdown(query), nil
}

// InvestorYearly returns the investor's year-over-year totals.
func (s *AnalyticsService) InvestorYearly(ctx context.Context, query string) ([]analytics.YearAmount, error) {
	return s.investor.YearlyTrend(query), nil
}

// InvestorSimilar samples up to four investors active in the same
// vertical.
func (s *AnalyticsService) InvestorSimilar(ctx context.Context, query string) ([]string, error) {
	return s.investor.SimilarInvestors(query), nil
}
