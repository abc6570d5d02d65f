package table

import (
	"fmt"
	"math"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/TrellixVulnTeam/picdat-KKDF/pkg/picdat/chart"
	"github.com/TrellixVulnTeam/picdat-KKDF/pkg/picdat/models"
)

// MetaSheet is the workbook sheet holding per-chart metadata.
const MetaSheet = "_meta"

// MetaHeader is the header row of MetaSheet.
var MetaHeader = []string{"sheet", "title", "unit", "kind"}

// maxSheetNameLen is the Excel limit on sheet name length.
const maxSheetNameLen = 31

// ExportWorkbook writes all backing tables into one xlsx workbook, one sheet
// per chart in descriptor order, plus a MetaSheet naming each sheet's title,
// display unit and chart kind. Values are scaled exactly like WriteCSV.
func ExportWorkbook(path string, descriptors []models.ChartDescriptor, groups []models.MetricGroup) error {
	if len(descriptors) != len(groups) {
		return fmt.Errorf("%d descriptors for %d groups", len(descriptors), len(groups))
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", MetaSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(MetaSheet, "A1", toRow(MetaHeader)); err != nil {
		return err
	}

	used := map[string]bool{strings.ToLower(MetaSheet): true}
	for i, d := range descriptors {
		rows, err := Rows(d, groups[i])
		if err != nil {
			return err
		}

		name := sheetName(d.Title, i, used)
		used[strings.ToLower(name)] = true
		if _, err := f.NewSheet(name); err != nil {
			return err
		}

		for r, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(name, cell, tableRow(row, r == 0, groups[i], d, r-1)); err != nil {
				return err
			}
		}

		kind := models.KindLine
		if d.IsBarChart {
			kind = models.KindBar
		}
		metaCell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		meta := []string{name, d.Title, d.YLabel, string(kind)}
		if err := f.SetSheetRow(MetaSheet, metaCell, toRow(meta)); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return models.NewIOError("write", path, err)
	}
	return nil
}

// tableRow converts a rendered table row to workbook cells. Data cells are
// written as numbers, missing samples as empty cells.
func tableRow(row []string, header bool, g models.MetricGroup, d models.ChartDescriptor, dataIdx int) *[]interface{} {
	cells := make([]interface{}, len(row))
	for c, v := range row {
		if header || c == 0 {
			cells[c] = v
			continue
		}
		s, _ := g.SeriesByName(d.OrderedSeries[c-1])
		raw := s.Values[dataIdx]
		if math.IsNaN(raw) {
			cells[c] = nil
			continue
		}
		cells[c] = chart.Rescale(raw, d.Scale)
	}
	return &cells
}

func toRow(values []string) *[]interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return &cells
}

// sheetName derives a valid, unused sheet name from a chart title.
// used holds lower-cased names, sheet names are case-insensitive.
func sheetName(title string, idx int, used map[string]bool) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '_'
		}
		return r
	}, strings.Trim(title, "'"))

	if runes := []rune(name); len(runes) > maxSheetNameLen {
		name = string(runes[:maxSheetNameLen])
	}
	for n := idx + 1; name == "" || used[strings.ToLower(name)]; n++ {
		name = fmt.Sprintf("chart%d", n)
	}
	return name
}
