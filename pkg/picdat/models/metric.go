// Package models defines data structures for chart assembly and report emission.
package models

import "math"

// ChartKind is the rendering hint of a metric group.
type ChartKind string

const (
	// KindLine renders the group as a line chart.
	KindLine ChartKind = "line"
	// KindBar renders the group as a bar chart.
	KindBar ChartKind = "bar"
)

// Valid reports whether k is one of the known chart kinds.
func (k ChartKind) Valid() bool {
	return k == KindLine || k == KindBar
}

// Series represents one labeled counter sampled over the group's time window.
type Series struct {
	// Name is the legend label.
	Name string `json:"name"`
	// Values holds one sample per group timestamp; NaN marks a missing sample.
	Values []float64 `json:"values"`
}

// Sum returns the aggregate magnitude of the series, ignoring missing samples.
func (s Series) Sum() float64 {
	var sum float64
	for _, v := range s.Values {
		if math.IsNaN(v) {
			continue
		}
		sum += v
	}
	return sum
}

// MetricGroup represents a set of counters sharing a unit and a chart.
type MetricGroup struct {
	// Title is the chart title; it must be unique within a report.
	Title string `json:"title"`
	// Unit is the physical unit as reported by the counter dump (e.g. "b/s").
	Unit string `json:"unit"`
	// Kind is the preferred chart type.
	Kind ChartKind `json:"kind"`
	// XLabel is the x axis label; empty means "time".
	XLabel string `json:"x_label,omitempty"`
	// Timestamps is the time column of the backing table.
	Timestamps []string `json:"timestamps"`
	// Series is the list of counters in discovery order.
	Series []Series `json:"series"`
}

// DefaultXLabel is used when a group does not name its x axis.
const DefaultXLabel = "time"

// XAxisLabel returns the x axis label, falling back to DefaultXLabel.
func (g MetricGroup) XAxisLabel() string {
	if g.XLabel == "" {
		return DefaultXLabel
	}
	return g.XLabel
}

// SeriesByName returns the series with the given name.
func (g MetricGroup) SeriesByName(name string) (Series, bool) {
	for _, s := range g.Series {
		if s.Name == name {
			return s, true
		}
	}
	return Series{}, false
}
