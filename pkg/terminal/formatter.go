// Package terminal prints a dashboard view state as colored text tables.
package terminal

import (
	"fmt"
	"io"
	"strconv"

	"stock-sentiment-dashboard/internal/dashboard/render"
	"stock-sentiment-dashboard/internal/dashboard/service"
	"stock-sentiment-dashboard/internal/entity"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// Formatter writes dashboard states to a terminal.
type Formatter struct {
	out       io.Writer
	useColors bool
}

func NewFormatter(out io.Writer, useColors bool) *Formatter {
	return &Formatter{out: out, useColors: useColors}
}

// Render prints the loading, failed or loaded view of state.
func (f *Formatter) Render(state service.ViewState) error {
	page := render.NewPage(state)

	switch page.State {
	case render.StateLoading:
		fmt.Fprintln(f.out, f.paint("Loading dashboard...", color.FgCyan))
		return nil
	case render.StateFailed:
		fmt.Fprintln(f.out, f.paint("✗ "+page.Message, color.FgRed))
		return nil
	}

	loaded := state.Display.(service.Loaded)
	f.header("Stock Sentiment Dashboard: " + page.Keyword)
	fmt.Fprintf(f.out, "Last updated: %s\n", page.UpdatedAt)
	fmt.Fprintln(f.out, f.paint("Last 3 Days · Latest 100 articles", color.Faint))
	if page.EmailStatus != nil {
		fmt.Fprintln(f.out, f.EmailStatus(*page.EmailStatus))
	}

	f.header("Overview")
	kpiHeaders := make([]string, 0, len(page.KPIs))
	kpiRow := make([]string, 0, len(page.KPIs))
	for _, card := range page.KPIs {
		kpiHeaders = append(kpiHeaders, card.Icon+" "+card.Title)
		kpiRow = append(kpiRow, f.paint(card.Value, toneAttribute(card.Tone)))
	}
	if err := f.table(kpiHeaders, [][]string{kpiRow}); err != nil {
		return err
	}

	f.header("Sentiment Distribution (" + page.Distribution.Total + " articles)")
	distribution := make([][]string, 0, len(page.Distribution.Segments))
	for _, s := range page.Distribution.Segments {
		distribution = append(distribution, []string{s.Icon + " " + s.Name, s.Count, s.Legend})
	}
	if err := f.table([]string{"Sentiment", "Articles", "Share"}, distribution); err != nil {
		return err
	}

	f.header("Sentiment Trend")
	trend := make([][]string, 0, len(loaded.Snapshot.Trend))
	for _, p := range loaded.Snapshot.Trend {
		trend = append(trend, []string{p.Time, strconv.Itoa(p.Positive), strconv.Itoa(p.Neutral), strconv.Itoa(p.Negative)})
	}
	if err := f.table([]string{"Time", "Positive", "Neutral", "Negative"}, trend); err != nil {
		return err
	}

	f.header(fmt.Sprintf("Latest Articles (%d)", page.ArticleCount))
	articles := make([][]string, 0, len(loaded.Snapshot.Articles))
	for _, a := range loaded.Snapshot.Articles {
		articles = append(articles, f.articleRow(a))
	}
	return f.table([]string{"Title", "Source", "Sentiment", "Confidence"}, articles)
}

// EmailStatus formats the advisory line under the email form.
func (f *Formatter) EmailStatus(status render.EmailStatusView) string {
	switch service.EmailStatusKind(status.Kind) {
	case service.EmailStatusSuccess:
		return f.paint(status.Text, color.FgGreen)
	case service.EmailStatusFailure:
		return f.paint(status.Text, color.FgRed)
	default:
		return f.paint(status.Text, color.FgYellow)
	}
}

func (f *Formatter) articleRow(a entity.ArticleRow) []string {
	source := a.Source
	if source == "" {
		source = render.SourceUnknown
	}
	badge := render.Sentiment(a.Sentiment)
	sentiment := f.paint(render.SentimentIcon(a.Sentiment)+" "+badge.Label, toneAttribute(badge.Tone))
	return []string{a.Title, source, sentiment, render.ConfidenceFraction(a.Confidence)}
}

func (f *Formatter) header(title string) {
	fmt.Fprintf(f.out, "\n%s\n", f.paint(title, color.Bold))
}

func (f *Formatter) paint(text string, attr color.Attribute) string {
	if !f.useColors {
		return text
	}
	c := color.New(attr)
	c.EnableColor()
	return c.Sprint(text)
}

func (f *Formatter) table(headers []string, rows [][]string) error {
	table := tablewriter.NewTable(f.out,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoWrap: tw.WrapNone},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoFormat: tw.Off},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{ShowHeader: tw.On},
			},
		}),
	)

	table.Header(headers)
	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("failed to add table rows: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}

func toneAttribute(tone render.Tone) color.Attribute {
	switch tone {
	case render.ToneGreen:
		return color.FgGreen
	case render.ToneRed:
		return color.FgRed
	case render.ToneAmber, render.ToneGold:
		return color.FgYellow
	case render.ToneGray:
		return color.FgHiBlack
	default:
		return color.FgWhite
	}
}
