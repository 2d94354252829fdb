package terminal

import (
	"bytes"
	"testing"

	"stock-sentiment-dashboard/internal/dashboard/render"
	"stock-sentiment-dashboard/internal/dashboard/service"
	"stock-sentiment-dashboard/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatter_Loading(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(&buf, false).Render(service.ViewState{Display: service.Loading{}}))

	assert.Equal(t, "Loading dashboard...\n", buf.String())
}

func TestFormatter_Failed(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf, false)

	require.NoError(t, f.Render(service.ViewState{Display: service.Failed{Message: "Dashboard request failed: 503"}}))
	assert.Equal(t, "✗ Dashboard request failed: 503\n", buf.String())

	buf.Reset()
	require.NoError(t, f.Render(service.ViewState{Display: service.Failed{}}))
	assert.Equal(t, "✗ Dashboard unavailable\n", buf.String())
}

func TestFormatter_Loaded(t *testing.T) {
	snapshot := &entity.DashboardSnapshot{
		UpdatedAt:             "2024-01-03 10:00",
		KPIs:                  entity.KPISummary{TotalArticles: 1042, Bullish: 20, Bearish: 10, Neutral: 12},
		SentimentDistribution: entity.SentimentDistribution{Positive: 20, Neutral: 12, Negative: 10},
		Trend:                 []entity.TrendPoint{{Time: "Jan 1", Positive: 5, Neutral: 3, Negative: 2}},
		Articles: []entity.ArticleRow{
			{Title: "Apple beats", URL: "https://example.com/1", Source: "Reuters", Sentiment: entity.SentimentPositive, Confidence: 0.75},
			{Title: "Apple mixed", URL: "https://example.com/2", Sentiment: "Mixed", Confidence: 0.1},
		},
	}
	state := service.ViewState{
		Display:     service.Loaded{Snapshot: snapshot},
		Draft:       service.Draft{Keyword: "AAPL"},
		EmailStatus: &service.EmailStatus{Kind: service.EmailStatusSuccess, Text: service.MessageEmailQueued},
	}

	var buf bytes.Buffer
	require.NoError(t, NewFormatter(&buf, false).Render(state))
	out := buf.String()

	assert.Contains(t, out, "Stock Sentiment Dashboard: AAPL")
	assert.Contains(t, out, "Last updated: 2024-01-03 10:00")
	assert.Contains(t, out, service.MessageEmailQueued)
	assert.Contains(t, out, "1,042")
	assert.Contains(t, out, "47.6%")
	assert.Contains(t, out, "28.6%")
	assert.Contains(t, out, "23.8%")
	assert.Contains(t, out, "Jan 1")
	assert.Contains(t, out, "📈 Positive")
	assert.Contains(t, out, "0.75")
	assert.Contains(t, out, "• Mixed")
	assert.Contains(t, out, "0.10")
	assert.Contains(t, out, render.SourceUnknown)
	assert.Contains(t, out, "Latest Articles (2)")
	assert.NotContains(t, out, "\x1b[")
}

func TestFormatter_Colors(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(&buf, true).Render(service.ViewState{Display: service.Failed{Message: "boom"}}))

	assert.Contains(t, buf.String(), "\x1b[31m")
	assert.Contains(t, buf.String(), "boom")
}

func TestFormatter_EmailStatus(t *testing.T) {
	f := NewFormatter(&bytes.Buffer{}, false)

	assert.Equal(t, "✗ invalid email", f.EmailStatus(render.EmailStatusView{Kind: "failure", Text: "✗ invalid email"}))
}
