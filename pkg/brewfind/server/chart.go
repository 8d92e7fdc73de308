package server

import (
	"math"

	"github.com/nekruzvatanshoev/brewfind/pkg/brewfind/dal"
)

const (
	chartTitle  = "Breweries by Postal Code"
	chartWidth  = 400
	chartHeight = 200

	chartMarginTop    = 20
	chartMarginRight  = 10
	chartMarginBottom = 40
	chartMarginLeft   = 30

	maxTicks = 5
)

// BarChart is the geometry of an SVG bar chart of a postal histogram. All
// coordinates are in SVG user units with the origin at the top left.
type BarChart struct {
	Title   string
	Width   int
	Height  int
	Left    int
	Right   int
	Top     int
	Bottom  int
	LabelY  int
	MaxTick int
	Bars    []Bar
	Ticks   []Tick
}

// Bar is one postal code column.
type Bar struct {
	Label  string
	Count  int
	X      int
	Y      int
	Width  int
	Height int
	// LabelX is the horizontal center of the bar.
	LabelX int
}

// Tick is a y axis gridline.
type Tick struct {
	Value int
	Y     int
}

// NewBarChart lays out one bar per histogram bucket on a y axis that starts
// at zero.
func NewBarChart(h dal.PostalHistogram) BarChart {
	c := BarChart{
		Title:  chartTitle,
		Width:  chartWidth,
		Height: chartHeight,
		Left:   chartMarginLeft,
		Right:  chartWidth - chartMarginRight,
		Top:    chartMarginTop,
		Bottom: chartHeight - chartMarginBottom,
	}
	c.LabelY = c.Bottom + 16

	entries := h.Entries()
	if len(entries) == 0 {
		return c
	}

	step := tickStep(h.Max())
	c.MaxTick = step * int(math.Ceil(float64(h.Max())/float64(step)))

	plotWidth := float64(c.Right - c.Left)
	plotHeight := float64(c.Bottom - c.Top)

	for v := 0; v <= c.MaxTick; v += step {
		c.Ticks = append(c.Ticks, Tick{
			Value: v,
			Y:     c.Bottom - round(float64(v)/float64(c.MaxTick)*plotHeight),
		})
	}

	slot := plotWidth / float64(len(entries))
	barWidth := math.Max(1, slot*0.8)
	for i, e := range entries {
		height := round(float64(e.Count) / float64(c.MaxTick) * plotHeight)
		x := float64(c.Left) + slot*float64(i) + (slot-barWidth)/2
		c.Bars = append(c.Bars, Bar{
			Label:  e.Label,
			Count:  e.Count,
			X:      round(x),
			Y:      c.Bottom - height,
			Width:  round(barWidth),
			Height: height,
			LabelX: round(x + barWidth/2),
		})
	}
	return c
}

// tickStep picks an integer spacing that keeps at most maxTicks intervals.
func tickStep(highest int) int {
	if highest <= maxTicks {
		return 1
	}
	return int(math.Ceil(float64(highest) / maxTicks))
}

func round(f float64) int {
	return int(math.Round(f))
}
