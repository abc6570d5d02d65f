// Package main provides the CLI entry point for picdat.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chainguard-dev/clog"
	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/cobra"

	"github.com/TrellixVulnTeam/picdat-KKDF/pkg/picdat"
	"github.com/TrellixVulnTeam/picdat-KKDF/pkg/picdat/input"
	"github.com/TrellixVulnTeam/picdat-KKDF/pkg/picdat/report"
)

// logFileName is the log file written into the output directory with --logfile.
const logFileName = "picdat.log"

// config holds defaults taken from the environment; flags override them.
type config struct {
	Sort      string `env:"PICDAT_SORT,default=by_relevance"`
	Timezone  string `env:"PICDAT_TIMEZONE"`
	LogLevel  string `env:"PICDAT_LOG_LEVEL,default=info"`
	AssetsDir string `env:"PICDAT_ASSETS_DIR"`
}

var (
	inputFile    string
	outputDir    string
	sortByName   bool
	logLevel     string
	logToFile    bool
	title        string
	timezone     string
	templatePath string
	assetsDir    string
	workbookName string
	showSummary  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "picdat [input]",
		Short: "Visualize performance counter data",
		Long: `picdat turns performance counter data into an HTML report with one
interactive chart per metric group, backed by one CSV table per chart.

Input is a YAML/JSON document or an xlsx workbook (.yaml, .yml, .json, .xlsx).`,
		Args:          cobra.MaximumNArgs(1),
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringVarP(&inputFile, "inputfile", "i", "", "Input file (alternative to the positional argument)")
	rootCmd.Flags().StringVarP(&outputDir, "outputdir", "o", "", "Output directory (default: ./results, numbered if it exists)")
	rootCmd.Flags().BoolVarP(&sortByName, "sortbyname", "s", false, "Sort legends alphabetically instead of by relevance")
	rootCmd.Flags().StringVarP(&logLevel, "debug", "d", "", "Log level: debug, info, warning, error, critical")
	rootCmd.Flags().BoolVarP(&logToFile, "logfile", "l", false, "Write logs to "+logFileName+" in the output directory")
	rootCmd.Flags().StringVar(&title, "title", "", "Report caption (default: input path)")
	rootCmd.Flags().StringVar(&timezone, "timezone", "", "Timezone annotation (default: local timezone)")
	rootCmd.Flags().StringVar(&templatePath, "template", "", "Head template file (default: built-in)")
	rootCmd.Flags().StringVar(&assetsDir, "assets", "", "Directory holding dygraph.js and dygraph.css to copy")
	rootCmd.Flags().StringVar(&workbookName, "xlsx", "", "Also export all tables to this xlsx file in the output directory")
	rootCmd.Flags().BoolVar(&showSummary, "summary", false, "Print a summary table of the emitted charts")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var cfg config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return fmt.Errorf("processing environment: %w", err)
	}

	inputPath := inputFile
	if len(args) == 1 {
		inputPath = args[0]
	}
	if inputPath == "" {
		return fmt.Errorf("no input file given")
	}
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	opts, err := buildOptions(cfg, inputPath)
	if err != nil {
		return err
	}

	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	ctx, closeLog, err := setupLogging(ctx, level, opts.OutputDir)
	if err != nil {
		return err
	}
	defer closeLog()

	clog.FromContext(ctx).Infof("inputfile: %s, outputdir: %s", absPath(inputPath), absPath(opts.OutputDir))

	ds, err := input.Load(inputPath)
	if err != nil {
		return fmt.Errorf("loading input failed: %w", err)
	}
	if title == "" && ds.Title != "" {
		opts.Title = ds.Title
	}
	if timezone == "" && cfg.Timezone == "" && ds.Timezone != "" {
		opts.Timezone = ds.Timezone
	}

	summary, err := picdat.Build(ctx, ds.Groups, opts)
	if err != nil {
		return fmt.Errorf("report build failed: %w", err)
	}

	if showSummary {
		if err := report.WriteSummary(cmd.OutOrStdout(), summary.Charts); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
	}
	return nil
}

// buildOptions merges environment defaults and flags.
func buildOptions(cfg config, inputPath string) (picdat.Options, error) {
	opts := picdat.DefaultOptions()

	sort, err := picdat.ParseSortMode(cfg.Sort)
	if err != nil {
		return opts, err
	}
	if sortByName {
		sort = picdat.SortByName
	}
	opts.Sort = sort

	opts.Title = absPath(inputPath)
	if title != "" {
		opts.Title = title
	}
	if cfg.Timezone != "" {
		opts.Timezone = cfg.Timezone
	}
	if timezone != "" {
		opts.Timezone = timezone
	}

	opts.OutputDir = outputDir
	if opts.OutputDir == "" {
		opts.OutputDir = nextFreeDir(picdat.DefaultOutputDir)
	}

	opts.TemplatePath = templatePath
	opts.AssetsDir = cfg.AssetsDir
	if assetsDir != "" {
		opts.AssetsDir = assetsDir
	}
	opts.WorkbookName = workbookName
	return opts, nil
}

// nextFreeDir returns base, or base followed by the first number that does
// not name an existing path.
func nextFreeDir(base string) string {
	if _, err := os.Stat(base); os.IsNotExist(err) {
		return base
	}
	for i := 1; ; i++ {
		dir := base + strconv.Itoa(i)
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			return dir
		}
	}
}

// setupLogging installs a clog logger at level into ctx. With --logfile the
// output goes to a file in outDir.
func setupLogging(ctx context.Context, level, outDir string) (context.Context, func(), error) {
	lvl, err := parseLogLevel(level)
	if err != nil {
		return ctx, func() {}, err
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	if logToFile {
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return ctx, closeFn, fmt.Errorf("failed to create output directory: %w", err)
		}
		f, err := os.Create(filepath.Join(outDir, logFileName))
		if err != nil {
			return ctx, closeFn, fmt.Errorf("failed to create log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := clog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
	return clog.WithLogger(ctx, logger), closeFn, nil
}

// parseLogLevel maps the level names of the original command line to slog levels.
func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warning", "warn":
		return slog.LevelWarn, nil
	case "error", "critical":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level: %s (must be debug, info, warning, error, or critical)", s)
	}
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
