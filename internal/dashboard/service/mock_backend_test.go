package service

import (
	"context"

	"stock-sentiment-dashboard/internal/entity"

	"github.com/stretchr/testify/mock"
)

type mockBackend struct {
	mock.Mock
}

func (m *mockBackend) FetchSnapshot(ctx context.Context, keyword string) (*entity.DashboardSnapshot, error) {
	args := m.Called(ctx, keyword)
	snapshot, _ := args.Get(0).(*entity.DashboardSnapshot)
	return snapshot, args.Error(1)
}

func (m *mockBackend) RequestEmailReport(ctx context.Context, req *entity.EmailReportRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

// gatedBackend blocks each fetch until a result is pushed for its keyword.
type gatedBackend struct {
	results map[string]chan fetchResult
}

type fetchResult struct {
	snapshot *entity.DashboardSnapshot
	err      error
}

func newGatedBackend(keywords ...string) *gatedBackend {
	b := &gatedBackend{results: make(map[string]chan fetchResult)}
	for _, k := range keywords {
		b.results[k] = make(chan fetchResult, 1)
	}
	return b
}

func (b *gatedBackend) FetchSnapshot(ctx context.Context, keyword string) (*entity.DashboardSnapshot, error) {
	r := <-b.results[keyword]
	return r.snapshot, r.err
}

func (b *gatedBackend) RequestEmailReport(ctx context.Context, req *entity.EmailReportRequest) error {
	return nil
}

func sampleSnapshot(updatedAt string) *entity.DashboardSnapshot {
	published := "2024-01-03T10:00:00Z"
	return &entity.DashboardSnapshot{
		UpdatedAt:             updatedAt,
		KPIs:                  entity.KPISummary{TotalArticles: 42, Bullish: 20, Bearish: 10, Neutral: 12},
		SentimentDistribution: entity.SentimentDistribution{Positive: 20, Neutral: 12, Negative: 10},
		Trend: []entity.TrendPoint{
			{Time: "2024-01-01", Positive: 5, Neutral: 3, Negative: 2},
			{Time: "2024-01-02", Positive: 15, Neutral: 9, Negative: 8},
		},
		Articles: []entity.ArticleRow{
			{Title: "Apple beats", URL: "https://example.com/a", Source: "Reuters", PublishedAt: &published, Sentiment: entity.SentimentPositive, Confidence: 0.75},
		},
	}
}
