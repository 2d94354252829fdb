package render

import (
	"stock-sentiment-dashboard/internal/dashboard/service"
	"stock-sentiment-dashboard/internal/entity"
)

const (
	StateLoading = "loading"
	StateFailed  = "failed"
	StateLoaded  = "loaded"

	MessageUnavailable = "Dashboard unavailable"
	SourceUnknown      = "Unknown"
)

// ArticleView is one row of the news table.
type ArticleView struct {
	Title          string
	URL            string
	Source         string
	PublishedAt    string
	Sentiment      SentimentBadge
	ConfidenceTier ConfidenceTier
	ConfidenceText string
}

// EmailStatusView is the line under the email form.
type EmailStatusView struct {
	Kind string
	Text string
}

// Page is everything page.html needs. It is derived from a ViewState and never mutated.
type Page struct {
	State   string
	Refresh bool
	Message string

	Keyword        string
	Email          string
	StartDate      string
	EndDate        string
	EmailStatus    *EmailStatusView
	SearchInFlight bool
	EmailInFlight  bool

	UpdatedAt    string
	KPIs         []KPICard
	Distribution DistributionChart
	Trend        TrendChart
	Articles     []ArticleView
	ArticleCount int
}

// NewPage maps a view state to its page model.
func NewPage(state service.ViewState) Page {
	page := Page{
		Keyword:        state.Draft.Keyword,
		Email:          state.Draft.Email,
		StartDate:      state.Draft.StartDate,
		EndDate:        state.Draft.EndDate,
		SearchInFlight: state.SearchInFlight,
		EmailInFlight:  state.EmailInFlight,
	}
	if state.EmailStatus != nil {
		page.EmailStatus = &EmailStatusView{Kind: string(state.EmailStatus.Kind), Text: state.EmailStatus.Text}
	}

	switch d := state.Display.(type) {
	case service.Loaded:
		page.State = StateLoaded
		page.setSnapshot(d.Snapshot)
	case service.Failed:
		page.State = StateFailed
		page.Message = d.Message
		if page.Message == "" {
			page.Message = MessageUnavailable
		}
	default:
		page.State = StateLoading
	}

	page.Refresh = page.State == StateLoading || state.SearchInFlight || state.EmailInFlight
	return page
}

func (p *Page) setSnapshot(snapshot *entity.DashboardSnapshot) {
	if snapshot == nil {
		p.State = StateFailed
		p.Message = MessageUnavailable
		return
	}

	p.UpdatedAt = snapshot.UpdatedAt
	p.KPIs = KPICards(snapshot.KPIs)
	p.Distribution = Distribution(snapshot.SentimentDistribution)
	p.Trend = Trend(snapshot.Trend)
	p.ArticleCount = len(snapshot.Articles)
	p.Articles = make([]ArticleView, 0, len(snapshot.Articles))
	for _, a := range snapshot.Articles {
		row := ArticleView{
			Title:          a.Title,
			URL:            a.URL,
			Source:         a.Source,
			Sentiment:      Sentiment(a.Sentiment),
			ConfidenceTier: Confidence(a.Confidence),
			ConfidenceText: ConfidencePercent(a.Confidence),
		}
		if row.Source == "" {
			row.Source = SourceUnknown
		}
		if a.PublishedAt != nil {
			row.PublishedAt = *a.PublishedAt
		}
		p.Articles = append(p.Articles, row)
	}
}
