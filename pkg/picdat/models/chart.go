package models

// ChartDescriptor is the derived, immutable description of one chart.
type ChartDescriptor struct {
	// ID is a unique identifier, usable as a script variable and DOM id.
	ID string `json:"id"`
	// Title is the chart title.
	Title string `json:"title"`
	// XLabel is the x axis label.
	XLabel string `json:"x_label"`
	// YLabel is the y axis label after unit normalization.
	YLabel string `json:"y_label"`
	// IsBarChart is the rendering hint.
	IsBarChart bool `json:"is_barchart"`
	// OrderedSeries holds the series names in legend order.
	OrderedSeries []string `json:"ordered_series"`
	// TableRef is the backing table file name, relative to the report.
	TableRef string `json:"table_ref"`
	// Scale is the factor every raw value is divided by before it is
	// written to the backing table. It always matches YLabel.
	Scale float64 `json:"scale"`
}
