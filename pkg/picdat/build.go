package picdat

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/chainguard-dev/clog"

	"github.com/TrellixVulnTeam/picdat-KKDF/pkg/picdat/chart"
	"github.com/TrellixVulnTeam/picdat-KKDF/pkg/picdat/models"
	"github.com/TrellixVulnTeam/picdat-KKDF/pkg/picdat/report"
	"github.com/TrellixVulnTeam/picdat-KKDF/pkg/picdat/table"
)

// Build runs the whole pipeline over groups: it assembles one chart per
// group, writes the backing tables and emits the report document.
//
// Every group is assembled before anything is written, so malformed input
// fails without touching the output directory. If a later step fails, the
// files written by this build are removed and no report document is left.
func Build(ctx context.Context, groups []models.MetricGroup, opts Options) (summary *models.ReportSummary, err error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	log := clog.FromContext(ctx)

	head, err := report.LoadHead(opts.TemplatePath)
	if err != nil {
		return nil, err
	}

	descriptors, err := chart.AssembleAll(ctx, groups, opts.Sort)
	if err != nil {
		return nil, err
	}
	steps, err := report.Plan(head, descriptors, opts.Title, opts.Timezone)
	if err != nil {
		return nil, err
	}

	outDir := opts.OutputDir
	createdDir, err := ensureDir(outDir)
	if err != nil {
		return nil, err
	}

	var written []string
	defer func() {
		if err == nil {
			return
		}
		for _, path := range written {
			if rmErr := os.Remove(path); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
				log.Warnf("removing %s: %v", path, rmErr)
			}
		}
		if createdDir {
			os.Remove(outDir)
		}
	}()

	summary = &models.ReportSummary{
		Title:      opts.Title,
		Timezone:   opts.Timezone,
		ReportPath: filepath.Join(outDir, opts.htmlName()),
		Charts:     descriptors,
	}

	for i, d := range descriptors {
		path, err := table.WriteCSV(outDir, d, groups[i])
		if err != nil {
			return nil, err
		}
		written = append(written, path)
		summary.TablePaths = append(summary.TablePaths, path)
		log.Infof("Wrote chart values of %q to %s", d.Title, path)
	}

	if opts.WorkbookName != "" {
		path := filepath.Join(outDir, opts.WorkbookName)
		if err := table.ExportWorkbook(path, descriptors, groups); err != nil {
			return nil, err
		}
		written = append(written, path)
		summary.WorkbookPath = path
		log.Infof("Exported workbook to %s", path)
	}

	if opts.AssetsDir != "" {
		paths, err := CopyAssets(opts.AssetsDir, outDir)
		written = append(written, paths...)
		if err != nil {
			return nil, err
		}
	}

	if err := report.Emit(ctx, summary.ReportPath, outDir, steps); err != nil {
		return nil, err
	}
	return summary, nil
}

// ensureDir creates dir if needed and reports whether it did.
func ensureDir(dir string) (bool, error) {
	info, err := os.Stat(dir)
	switch {
	case err == nil && info.IsDir():
		return false, nil
	case err == nil:
		return false, models.NewIOError("create", dir, errors.New("not a directory"))
	case !errors.Is(err, os.ErrNotExist):
		return false, models.NewIOError("stat", dir, err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, models.NewIOError("create", dir, err)
	}
	return true, nil
}
