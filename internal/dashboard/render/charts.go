package render

import (
	"fmt"
	"math"
	"strings"

	"stock-sentiment-dashboard/internal/entity"
)

const (
	donutCenter      = 60.0
	donutRadius      = 42.0
	donutLabelRadius = 56.0
)

// DistributionSegment is one arc of the sentiment donut.
type DistributionSegment struct {
	Name  string
	Icon  string
	Color string
	Count string
	// Legend is the share with one decimal, "0.0%" when the total is zero.
	Legend string
	// Label is the in-chart whole percent, empty for an empty segment.
	Label      string
	DashArray  string
	DashOffset string
	LabelX     string
	LabelY     string
}

// DistributionChart is the donut chart model.
type DistributionChart struct {
	Total         string
	Circumference string
	Segments      []DistributionSegment
}

// Distribution lays out the positive, neutral and negative arcs clockwise from the top.
func Distribution(d entity.SentimentDistribution) DistributionChart {
	total := d.Total()
	circumference := 2 * math.Pi * donutRadius
	chart := DistributionChart{
		Total:         FormatCount(total),
		Circumference: svgNumber(circumference),
	}

	parts := []struct {
		name, icon, color string
		count             int
	}{
		{"Positive", IconPositive, ColorPositive, d.Positive},
		{"Neutral", IconNeutral, ColorNeutral, d.Neutral},
		{"Negative", IconNegative, ColorNegative, d.Negative},
	}

	var cumulative float64
	for _, p := range parts {
		segment := DistributionSegment{
			Name:   p.name,
			Icon:   p.icon,
			Color:  p.color,
			Count:  FormatCount(p.count),
			Legend: "0.0%",
		}
		if total > 0 {
			share := float64(p.count) / float64(total)
			length := share * circumference
			segment.Legend = fixed(share*100, 1) + "%"
			segment.DashArray = svgNumber(length) + " " + svgNumber(circumference-length)
			segment.DashOffset = svgNumber(-cumulative)
			if p.count > 0 {
				mid := -math.Pi/2 + 2*math.Pi*(cumulative+length/2)/circumference
				segment.Label = fixed(share*100, 0) + "%"
				segment.LabelX = svgNumber(donutCenter + donutLabelRadius*math.Cos(mid))
				segment.LabelY = svgNumber(donutCenter + donutLabelRadius*math.Sin(mid))
			}
			cumulative += length
		}
		chart.Segments = append(chart.Segments, segment)
	}
	return chart
}

const (
	trendWidth        = 480.0
	trendHeight       = 240.0
	trendPadLeft      = 40.0
	trendPadRight     = 12.0
	trendPadTop       = 12.0
	trendPadBottom    = 32.0
	trendTickCount    = 4
	trendTickMinScale = 4
)

// TrendSeries is one polyline of the trend chart.
type TrendSeries struct {
	Name   string
	Color  string
	Points string
	Dots   []TrendDot
}

type TrendDot struct {
	X, Y  string
	Value int
}

// AxisLabel is a positioned axis tick label.
type AxisLabel struct {
	Text string
	X, Y string
}

// TrendChart is the line chart model.
type TrendChart struct {
	Width, Height string
	Series        []TrendSeries
	XLabels       []AxisLabel
	YTicks        []AxisLabel
	Empty         bool
}

// Trend lays out positive, neutral and negative series in the order the points were received.
func Trend(points []entity.TrendPoint) TrendChart {
	chart := TrendChart{
		Width:  svgNumber(trendWidth),
		Height: svgNumber(trendHeight),
		Empty:  len(points) == 0,
	}

	maxValue := 0
	for _, p := range points {
		maxValue = max(maxValue, p.Positive, p.Neutral, p.Negative)
	}
	scale := trendTickCount * int(math.Ceil(float64(maxValue)/trendTickCount))
	scale = max(scale, trendTickMinScale)

	plotWidth := trendWidth - trendPadLeft - trendPadRight
	plotHeight := trendHeight - trendPadTop - trendPadBottom
	x := func(i int) float64 {
		if len(points) == 1 {
			return trendPadLeft + plotWidth/2
		}
		return trendPadLeft + plotWidth*float64(i)/float64(len(points)-1)
	}
	y := func(v int) float64 {
		return trendPadTop + plotHeight*(1-float64(v)/float64(scale))
	}

	for i := 0; i <= trendTickCount; i++ {
		value := scale * i / trendTickCount
		chart.YTicks = append(chart.YTicks, AxisLabel{
			Text: FormatCount(value),
			X:    svgNumber(trendPadLeft - 6),
			Y:    svgNumber(y(value)),
		})
	}
	for i, p := range points {
		chart.XLabels = append(chart.XLabels, AxisLabel{
			Text: p.Time,
			X:    svgNumber(x(i)),
			Y:    svgNumber(trendHeight - trendPadBottom + 18),
		})
	}

	series := []struct {
		name, color string
		value       func(entity.TrendPoint) int
	}{
		{"Positive", ColorPositive, func(p entity.TrendPoint) int { return p.Positive }},
		{"Neutral", ColorNeutral, func(p entity.TrendPoint) int { return p.Neutral }},
		{"Negative", ColorNegative, func(p entity.TrendPoint) int { return p.Negative }},
	}
	for _, s := range series {
		line := TrendSeries{Name: s.name, Color: s.color}
		coords := make([]string, 0, len(points))
		for i, p := range points {
			v := s.value(p)
			px, py := svgNumber(x(i)), svgNumber(y(v))
			coords = append(coords, px+","+py)
			line.Dots = append(line.Dots, TrendDot{X: px, Y: py, Value: v})
		}
		line.Points = strings.Join(coords, " ")
		chart.Series = append(chart.Series, line)
	}
	return chart
}

func svgNumber(f float64) string {
	s := fmt.Sprintf("%.2f", f)
	if s == "-0.00" {
		return "0.00"
	}
	return s
}
