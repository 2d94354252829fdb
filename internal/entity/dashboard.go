package entity

// Sentiment is the tone the backend assigned to an article. Values outside the known
// constants are passed through unchanged.
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNeutral  Sentiment = "Neutral"
	SentimentNegative Sentiment = "Negative"
)

// KPISummary holds the headline tallies of a snapshot.
type KPISummary struct {
	TotalArticles int `json:"totalArticles"`
	Bullish       int `json:"bullish"`
	Bearish       int `json:"bearish"`
	Neutral       int `json:"neutral"`
}

// SentimentDistribution counts articles per sentiment tier.
type SentimentDistribution struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// Total returns positive+neutral+negative.
func (d SentimentDistribution) Total() int {
	return d.Positive + d.Neutral + d.Negative
}

// TrendPoint is one bucket of the sentiment trend. Points are chronological as received.
type TrendPoint struct {
	Time     string `json:"time"`
	Positive int    `json:"positive"`
	Neutral  int    `json:"neutral"`
	Negative int    `json:"negative"`
}

// ArticleRow is a single analysed article.
type ArticleRow struct {
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Source      string    `json:"source"`
	PublishedAt *string   `json:"published_at"`
	Sentiment   Sentiment `json:"sentiment"`
	Confidence  float64   `json:"confidence"`
}

// DashboardSnapshot is the complete analytics payload for one keyword.
type DashboardSnapshot struct {
	UpdatedAt             string                `json:"updated_at"`
	KPIs                  KPISummary            `json:"kpis"`
	SentimentDistribution SentimentDistribution `json:"sentimentDistribution"`
	Trend                 []TrendPoint          `json:"trend"`
	Articles              []ArticleRow          `json:"articles"`
}
