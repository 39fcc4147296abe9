// Package http holds the chi handlers translating the dashboard's
// REST surface into query-layer calls.
package http

import (
	"context"

	"fundpulse/internal/analytics"
	"fundpulse/internal/services"
)

// AnalyticsServiceInterface is the handler-facing contract of the
// analytics service. Tests substitute a mock.
type AnalyticsServiceInterface interface {
	Summary(ctx context.Context) (services.OverallSummary, error)
	FundingByMonth(ctx context.Context) ([]analytics.MonthlyPoint, error)
	FundedCountByMonth(ctx context.Context) ([]analytics.MonthlyPoint, error)
	TopSectors(ctx context.Context, limit int) ([]analytics.LabelAmount, error)
	TopRoundTypes(ctx context.Context, limit int) ([]analytics.LabelAmount, error)
	TopCities(ctx context.Context, limit int) ([]analytics.LabelAmount, error)
	TopInvestors(ctx context.Context, limit int) ([]analytics.LabelAmount, error)
	TopStartupsYearly(ctx context.Context) ([]analytics.YearlyTop, error)
	FundingPivot(ctx context.Context) (analytics.Pivot, error)
	StartupNames(ctx context.Context) ([]string, error)
	InvestorNames(ctx context.Context) ([]string, error)
	Startup(ctx context.Context, name string) (services.StartupProfile, error)
	InvestorRecent(ctx context.Context, query string) ([]analytics.InvestmentDetail, error)
	InvestorBiggest(ctx context.Context, query string) ([]analytics.LabelAmount, error)
	InvestorSectors(ctx context.Context, query string) ([]analytics.LabelAmount, error)
	InvestorSubsectors(ctx context.Context, query string) ([]analytics.LabelAmount, error)
	InvestorCities(ctx context.Context, query string) ([]analytics.LabelAmount, error)
	InvestorRoundTypes(ctx context.Context, query string) ([]analytics.LabelAmount, error)
	InvestorYearly(ctx context.Context, query string) ([]analytics.YearAmount, error)
	InvestorSimilar(ctx context.Context, query string) ([]string, error)
}
