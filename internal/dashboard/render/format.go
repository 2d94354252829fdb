// Package render turns a dashboard view state into HTML.
package render

import (
	"math"
	"strconv"

	"stock-sentiment-dashboard/internal/entity"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Tone names a colour treatment shared by badges, cards and charts.
type Tone string

const (
	ToneGreen Tone = "green"
	ToneRed   Tone = "red"
	ToneAmber Tone = "amber"
	ToneGray  Tone = "gray"
	ToneInk   Tone = "ink"
	ToneGold  Tone = "gold"
)

const (
	ColorPositive = "#10b981"
	ColorNeutral  = "#f59e0b"
	ColorNegative = "#ef4444"
)

const (
	IconPositive = "📈"
	IconNegative = "📉"
	IconNeutral  = "➖"
	IconUnknown  = "•"
	IconArticles = "📊"
)

// SentimentBadge is the visual treatment of an article's sentiment. Label is always
// the sentiment string as received.
type SentimentBadge struct {
	Label string
	Icon  string
	Tone  Tone
}

// Sentiment returns the badge for s. Unknown sentiments get a gray badge and no icon.
func Sentiment(s entity.Sentiment) SentimentBadge {
	badge := SentimentBadge{Label: string(s), Tone: ToneGray}
	switch s {
	case entity.SentimentPositive:
		badge.Icon, badge.Tone = IconPositive, ToneGreen
	case entity.SentimentNegative:
		badge.Icon, badge.Tone = IconNegative, ToneRed
	case entity.SentimentNeutral:
		badge.Icon, badge.Tone = IconNeutral, ToneAmber
	}
	return badge
}

// SentimentIcon is the icon used by the single-series article table, with a bullet
// for unknown sentiments.
func SentimentIcon(s entity.Sentiment) string {
	if icon := Sentiment(s).Icon; icon != "" {
		return icon
	}
	return IconUnknown
}

type ConfidenceTier string

const (
	ConfidenceHigh   ConfidenceTier = "high"
	ConfidenceMedium ConfidenceTier = "medium"
	ConfidenceLow    ConfidenceTier = "low"
)

// Confidence buckets a 0..1 confidence score.
func Confidence(confidence float64) ConfidenceTier {
	switch {
	case confidence >= 0.70:
		return ConfidenceHigh
	case confidence >= 0.40:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// ConfidencePercent formats confidence as a whole percentage, e.g. "75%".
func ConfidencePercent(confidence float64) string {
	return fixed(confidence*100, 0) + "%"
}

// ConfidenceFraction formats confidence with two decimals, e.g. "0.75".
func ConfidenceFraction(confidence float64) string {
	return fixed(confidence, 2)
}

// fixed formats v with the given number of decimals, rounding halves up.
func fixed(v float64, decimals int) string {
	scale := math.Pow10(decimals)
	return strconv.FormatFloat(math.Round(v*scale)/scale, 'f', decimals, 64)
}

// FormatCount groups n with English thousands separators.
func FormatCount(n int) string {
	return message.NewPrinter(language.English).Sprintf("%d", n)
}

// KPICard is one headline tally.
type KPICard struct {
	Title string
	Value string
	Tone  Tone
	Icon  string
}

// KPICards returns the Articles, Bullish, Bearish and Neutral cards in display order.
func KPICards(k entity.KPISummary) []KPICard {
	return []KPICard{
		{Title: "Articles", Value: FormatCount(k.TotalArticles), Tone: ToneInk, Icon: IconArticles},
		{Title: "Bullish", Value: FormatCount(k.Bullish), Tone: ToneGreen, Icon: IconPositive},
		{Title: "Bearish", Value: FormatCount(k.Bearish), Tone: ToneRed, Icon: IconNegative},
		{Title: "Neutral", Value: FormatCount(k.Neutral), Tone: ToneGold, Icon: IconNeutral},
	}
}
