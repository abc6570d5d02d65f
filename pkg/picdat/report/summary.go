package report

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/TrellixVulnTeam/picdat-KKDF/pkg/picdat/models"
)

// summaryHeaders are the columns of the chart summary table.
var summaryHeaders = []string{"#", "ID", "Title", "Y Label", "Kind", "Series"}

// WriteSummary renders one row per chart, in emission order, as a markdown table.
func WriteSummary(w io.Writer, descriptors []models.ChartDescriptor) error {
	table := newSummaryTable(w)
	for i, d := range descriptors {
		kind := string(models.KindLine)
		if d.IsBarChart {
			kind = string(models.KindBar)
		}
		row := []string{
			strconv.Itoa(i + 1),
			d.ID,
			d.Title,
			d.YLabel,
			kind,
			strconv.Itoa(len(d.OrderedSeries)),
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

func newSummaryTable(w io.Writer) *tablewriter.Table {
	cfg := tablewriter.Config{
		Header: tw.CellConfig{
			Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			Formatting: tw.CellFormatting{AutoFormat: tw.Off},
		},
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignLeft},
		},
		MaxWidth: 120,
		Behavior: tw.Behavior{TrimSpace: tw.Off},
	}
	return tablewriter.NewTable(w,
		tablewriter.WithConfig(cfg),
		tablewriter.WithHeader(summaryHeaders),
		tablewriter.WithRenderer(renderer.NewBlueprint()),
		tablewriter.WithRendition(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleMarkdown),
			Borders: tw.Border{
				Left:   tw.On,
				Top:    tw.Off,
				Right:  tw.On,
				Bottom: tw.Off,
			},
		}),
		tablewriter.WithRowAutoWrap(tw.WrapNone),
	)
}
