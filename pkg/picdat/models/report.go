package models

// ReportSummary describes the files produced by one report build.
type ReportSummary struct {
	// Title is the report caption.
	Title string `json:"title"`
	// Timezone is the timezone annotation printed under the caption.
	Timezone string `json:"timezone"`
	// ReportPath is the path of the emitted document.
	ReportPath string `json:"report_path"`
	// TablePaths lists the backing tables, in chart order.
	TablePaths []string `json:"table_paths"`
	// WorkbookPath is the xlsx export path, if one was requested.
	WorkbookPath string `json:"workbook_path,omitempty"`
	// Charts lists the descriptors in emission order.
	Charts []ChartDescriptor `json:"charts"`
}
