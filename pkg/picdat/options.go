// Package picdat builds interactive chart reports from performance counter data.
package picdat

import (
	"time"

	"github.com/TrellixVulnTeam/picdat-KKDF/pkg/picdat/models"
)

// SortMode selects the legend ordering policy.
type SortMode = models.SortMode

const (
	// SortByRelevance orders legend entries by descending sum of values.
	SortByRelevance = models.SortByRelevance
	// SortByName orders legend entries alphabetically.
	SortByName = models.SortByName
)

// ParseSortMode converts an option value to a SortMode.
func ParseSortMode(s string) (SortMode, error) {
	return models.ParseSortMode(s)
}

const (
	// DefaultHTMLName is the report document file name.
	DefaultHTMLName = "charts.html"
	// DefaultOutputDir is the output directory used when none is given.
	DefaultOutputDir = "results"
)

// Options configures a report build.
type Options struct {
	// Sort is the legend ordering policy.
	Sort SortMode
	// Title is the report caption.
	Title string
	// Timezone is the timezone annotation printed under the caption.
	Timezone string
	// OutputDir receives the report document and its backing tables.
	OutputDir string
	// HTMLName is the report document file name inside OutputDir.
	HTMLName string
	// TemplatePath is the head template. Empty uses the built-in one.
	TemplatePath string
	// AssetsDir holds dygraph.js and dygraph.css to copy next to the report.
	// Empty skips copying.
	AssetsDir string
	// WorkbookName, when set, exports all tables to this xlsx file in OutputDir.
	WorkbookName string
}

// DefaultOptions returns default build options.
func DefaultOptions() Options {
	return Options{
		Sort:      SortByRelevance,
		Timezone:  LocalTimezone(),
		OutputDir: DefaultOutputDir,
		HTMLName:  DefaultHTMLName,
	}
}

// LocalTimezone returns the name of the local timezone, e.g. "CET".
func LocalTimezone() string {
	name, _ := time.Now().Zone()
	return name
}

// Validate checks the options for values a build cannot use.
func (o Options) Validate() error {
	if !o.Sort.Valid() {
		return models.NewConfigurationError("sort", string(o.Sort))
	}
	if o.OutputDir == "" {
		return models.NewConfigurationError("outputdir", o.OutputDir)
	}
	return nil
}

// htmlName returns the document file name, falling back to DefaultHTMLName.
func (o Options) htmlName() string {
	if o.HTMLName == "" {
		return DefaultHTMLName
	}
	return o.HTMLName
}
