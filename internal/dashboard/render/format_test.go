package render

import (
	"testing"

	"stock-sentiment-dashboard/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestSentiment(t *testing.T) {
	tests := []struct {
		sentiment entity.Sentiment
		want      SentimentBadge
	}{
		{entity.SentimentPositive, SentimentBadge{Label: "Positive", Icon: "📈", Tone: ToneGreen}},
		{entity.SentimentNegative, SentimentBadge{Label: "Negative", Icon: "📉", Tone: ToneRed}},
		{entity.SentimentNeutral, SentimentBadge{Label: "Neutral", Icon: "➖", Tone: ToneAmber}},
		{"Mixed", SentimentBadge{Label: "Mixed", Tone: ToneGray}},
		{"positive", SentimentBadge{Label: "positive", Tone: ToneGray}},
	}
	for _, tt := range tests {
		t.Run(string(tt.sentiment), func(t *testing.T) {
			assert.Equal(t, tt.want, Sentiment(tt.sentiment))
		})
	}
}

func TestSentimentIcon(t *testing.T) {
	assert.Equal(t, "📈", SentimentIcon(entity.SentimentPositive))
	assert.Equal(t, "➖", SentimentIcon(entity.SentimentNeutral))
	assert.Equal(t, "•", SentimentIcon("Mixed"))
}

func TestConfidence(t *testing.T) {
	tests := []struct {
		confidence float64
		tier       ConfidenceTier
		percent    string
		fraction   string
	}{
		{0.75, ConfidenceHigh, "75%", "0.75"},
		{0.70, ConfidenceHigh, "70%", "0.70"},
		{0.55, ConfidenceMedium, "55%", "0.55"},
		{0.40, ConfidenceMedium, "40%", "0.40"},
		{0.39, ConfidenceLow, "39%", "0.39"},
		{0.10, ConfidenceLow, "10%", "0.10"},
		{1, ConfidenceHigh, "100%", "1.00"},
		{0, ConfidenceLow, "0%", "0.00"},
		{0.125, ConfidenceLow, "13%", "0.13"},
		{0.625, ConfidenceMedium, "63%", "0.63"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.tier, Confidence(tt.confidence), "tier for %v", tt.confidence)
		assert.Equal(t, tt.percent, ConfidencePercent(tt.confidence), "percent for %v", tt.confidence)
		assert.Equal(t, tt.fraction, ConfidenceFraction(tt.confidence), "fraction for %v", tt.confidence)
	}
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "0", FormatCount(0))
	assert.Equal(t, "42", FormatCount(42))
	assert.Equal(t, "1,000", FormatCount(1000))
	assert.Equal(t, "1,234,567", FormatCount(1234567))
}

func TestKPICards(t *testing.T) {
	cards := KPICards(entity.KPISummary{TotalArticles: 1500, Bullish: 20, Bearish: 10, Neutral: 12})

	assert.Equal(t, []KPICard{
		{Title: "Articles", Value: "1,500", Tone: ToneInk, Icon: "📊"},
		{Title: "Bullish", Value: "20", Tone: ToneGreen, Icon: "📈"},
		{Title: "Bearish", Value: "10", Tone: ToneRed, Icon: "📉"},
		{Title: "Neutral", Value: "12", Tone: ToneGold, Icon: "➖"},
	}, cards)
}
