package input

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/TrellixVulnTeam/picdat-KKDF/pkg/picdat/models"
	"github.com/TrellixVulnTeam/picdat-KKDF/pkg/picdat/table"
)

// sheetMeta holds the metadata row of one data sheet.
type sheetMeta struct {
	title string
	unit  string
	kind  models.ChartKind
}

// LoadWorkbook reads metric groups from an xlsx workbook.
//
// Every sheet except table.MetaSheet is one group. Row 1 holds the x axis
// label followed by the series names; each following row holds a timestamp
// followed by one value per series. Empty cells are missing samples.
func LoadWorkbook(path string) (*Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, models.NewIOError("read", path, err)
	}
	defer f.Close()

	meta, err := readMeta(f)
	if err != nil {
		return nil, err
	}

	ds := &Dataset{}
	for _, sheetName := range f.GetSheetList() {
		if strings.EqualFold(sheetName, table.MetaSheet) {
			continue
		}

		m, ok := meta[sheetName]
		if !ok {
			m = sheetMeta{title: sheetName, kind: models.KindLine}
		}

		g, err := readSheet(f, sheetName, m)
		if err != nil {
			return nil, err
		}
		ds.Groups = append(ds.Groups, g)
	}
	return ds, nil
}

// readMeta reads the optional metadata sheet, keyed by sheet name.
func readMeta(f *excelize.File) (map[string]sheetMeta, error) {
	result := make(map[string]sheetMeta)
	if idx, err := f.GetSheetIndex(table.MetaSheet); err != nil || idx < 0 {
		return result, nil
	}

	rows, err := f.GetRows(table.MetaSheet)
	if err != nil {
		return nil, err
	}

	for rowIdx, row := range rows {
		if rowIdx == 0 || len(row) == 0 || row[0] == "" {
			continue
		}
		m := sheetMeta{title: row[0], kind: models.KindLine}
		if len(row) > 1 && row[1] != "" {
			m.title = row[1]
		}
		if len(row) > 2 {
			m.unit = row[2]
		}
		if len(row) > 3 {
			kind, err := ParseKind(row[3])
			if err != nil {
				return nil, models.NewMalformedInputError(m.title, err.Error())
			}
			m.kind = kind
		}
		result[row[0]] = m
	}
	return result, nil
}

// readSheet converts one data sheet into a metric group.
func readSheet(f *excelize.File, sheetName string, m sheetMeta) (models.MetricGroup, error) {
	g := models.MetricGroup{
		Title: m.title,
		Unit:  m.unit,
		Kind:  m.kind,
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return g, err
	}
	if len(rows) == 0 {
		return g, nil
	}

	header := rows[0]
	if len(header) > 0 {
		g.XLabel = header[0]
	}
	for colIdx := 1; colIdx < len(header); colIdx++ {
		g.Series = append(g.Series, models.Series{Name: header[colIdx]})
	}

	for rowIdx, row := range rows[1:] {
		if len(row) == 0 || row[0] == "" {
			continue
		}
		if len(row) > len(header) {
			return g, models.NewMalformedInputError(m.title,
				fmt.Sprintf("row %d has %d cells for %d columns", rowIdx+2, len(row), len(header)))
		}

		g.Timestamps = append(g.Timestamps, row[0])
		for i := range g.Series {
			col := i + 1
			v := math.NaN()
			if col < len(row) {
				v, err = parseValue(row[col])
				if err != nil {
					cell, _ := excelize.CoordinatesToCellName(col+1, rowIdx+2)
					return g, models.NewMalformedInputError(m.title,
						fmt.Sprintf("cell %s: %v", cell, err))
				}
			}
			g.Series[i].Values = append(g.Series[i].Values, v)
		}
	}
	return g, nil
}

// parseValue parses a sample. Empty cells are missing samples (NaN).
func parseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN(), nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return float64(i), nil
	}
	return strconv.ParseFloat(s, 64)
}
