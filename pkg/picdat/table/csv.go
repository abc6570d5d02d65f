// Package table writes the backing tables referenced by chart descriptors.
package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/TrellixVulnTeam/picdat-KKDF/pkg/picdat/chart"
	"github.com/TrellixVulnTeam/picdat-KKDF/pkg/picdat/models"
)

// Rows returns the header and data rows of the backing table of d.
// Columns follow d.OrderedSeries and every value is divided by d.Scale.
// Missing samples are empty cells.
func Rows(d models.ChartDescriptor, g models.MetricGroup) ([][]string, error) {
	columns := make([][]float64, len(d.OrderedSeries))
	for i, name := range d.OrderedSeries {
		s, ok := g.SeriesByName(name)
		if !ok {
			return nil, models.NewMalformedInputError(g.Title, fmt.Sprintf("series %q not in group", name))
		}
		if len(s.Values) != len(g.Timestamps) {
			return nil, models.NewMalformedInputError(g.Title,
				fmt.Sprintf("series %q has %d values for %d timestamps", name, len(s.Values), len(g.Timestamps)))
		}
		columns[i] = s.Values
	}

	header := make([]string, 0, len(d.OrderedSeries)+1)
	header = append(header, d.XLabel)
	header = append(header, d.OrderedSeries...)

	rows := make([][]string, 0, len(g.Timestamps)+1)
	rows = append(rows, header)
	for r, ts := range g.Timestamps {
		row := make([]string, 0, len(columns)+1)
		row = append(row, ts)
		for _, col := range columns {
			row = append(row, formatValue(chart.Rescale(col[r], d.Scale)))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// WriteCSV writes the backing table of d into dir and returns its path.
func WriteCSV(dir string, d models.ChartDescriptor, g models.MetricGroup) (string, error) {
	rows, err := Rows(d, g)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, d.TableRef)
	err = writeFile(path, func(w io.Writer) error {
		return csv.NewWriter(w).WriteAll(rows)
	})
	if err != nil {
		return "", err
	}
	return path, nil
}

// writeFile creates path and fills it with write. A partially written file
// is removed on failure.
func writeFile(path string, write func(w io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return models.NewIOError("create", path, err)
	}
	defer func() {
		f.Close()
		if err != nil {
			os.Remove(path)
		}
	}()

	if err := write(f); err != nil {
		return models.NewIOError("write", path, err)
	}
	if err := f.Close(); err != nil {
		return models.NewIOError("write", path, err)
	}
	return nil
}

// formatValue renders v with the shortest exact representation.
func formatValue(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
