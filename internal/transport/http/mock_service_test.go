package http

import (
	"context"

	"github.com/stretchr/testify/mock"

	"fundpulse/internal/analytics"
	"fundpulse/internal/services"
)

// MockAnalyticsService is a testify mock of AnalyticsServiceInterface.
type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) Summary(ctx context.Context) (services.OverallSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).(services.OverallSummary), args.Error(1)
}

func (m *MockAnalyticsService) FundingByMonth(ctx context.Context) ([]analytics.MonthlyPoint, error) {
	args := m.Called(ctx)
	return args.Get(0).([]analytics.MonthlyPoint), args.Error(1)
}

func (m *MockAnalyticsService) FundedCountByMonth(ctx context.Context) ([]analytics.MonthlyPoint, error) {
	args := m.Called(ctx)
	return args.Get(0).([]analytics.MonthlyPoint), args.Error(1)
}

func (m *MockAnalyticsService) TopSectors(ctx context.Context, limit int) ([]analytics.LabelAmount, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]analytics.LabelAmount), args.Error(1)
}

func (m *MockAnalyticsService) TopRoundTypes(ctx context.Context, limit int) ([]analytics.LabelAmount, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]analytics.LabelAmount), args.Error(1)
}

func (m *MockAnalyticsService) TopCities(ctx context.Context, limit int) ([]analytics.LabelAmount, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]analytics.LabelAmount), args.Error(1)
}

func (m *MockAnalyticsService) TopInvestors(ctx context.Context, limit int) ([]analytics.LabelAmount, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]analytics.LabelAmount), args.Error(1)
}

func (m *MockAnalyticsService) TopStartupsYearly(ctx context.Context) ([]analytics.YearlyTop, error) {
	args := m.Called(ctx)
	return args.Get(0).([]analytics.YearlyTop), args.Error(1)
}

func (m *MockAnalyticsService) FundingPivot(ctx context.Context) (analytics.Pivot, error) {
	args := m.Called(ctx)
	return args.Get(0).(analytics.Pivot), args.Error(1)
}

func (m *MockAnalyticsService) StartupNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockAnalyticsService) InvestorNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockAnalyticsService) Startup(ctx context.Context, name string) (services.StartupProfile, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(services.StartupProfile), args.Error(1)
}

func (m *MockAnalyticsService) InvestorRecent(ctx context.Context, query string) ([]analytics.InvestmentDetail, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]analytics.InvestmentDetail), args.Error(1)
}

func (m *MockAnalyticsService) InvestorBiggest(ctx context.Context, query string) ([]analytics.LabelAmount, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]analytics.LabelAmount), args.Error(1)
}

func (m *MockAnalyticsService) InvestorSectors(ctx context.Context, query string) ([]analytics.LabelAmount, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]analytics.LabelAmount), args.Error(1)
}

func (m *MockAnalyticsService) InvestorSubsectors(ctx context.Context, query string) ([]analytics.LabelAmount, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]analytics.LabelAmount), args.Error(1)
}

func (m *MockAnalyticsService) InvestorCities(ctx context.Context, query string) ([]analytics.LabelAmount, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]analytics.LabelAmount), args.Error(1)
}

func (m *MockAnalyticsService) InvestorRoundTypes(ctx context.Context, query string) ([]analytics.LabelAmount, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]analytics.LabelAmount), args.Error(1)
}

func (m *MockAnalyticsService) InvestorYearly(ctx context.Context, query string) ([]analytics.YearAmount, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]analytics.YearAmount), args.Error(1)
}

func (m *MockAnalyticsService) InvestorSimilar(ctx context.Context, query string) ([]string, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]string), args.Error(1)
}
