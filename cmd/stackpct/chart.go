package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/stackpct-go/pkg/stackpct"
	"github.com/ukaji3/stackpct-go/pkg/stackpct/config"
	"github.com/ukaji3/stackpct-go/pkg/stackpct/models"
	"github.com/ukaji3/stackpct-go/pkg/stackpct/output"
	"github.com/ukaji3/stackpct-go/pkg/stackpct/render"
)

var (
	configPath        string
	chartType         string
	xAxis             string
	yAxes             []string
	startRow          int
	endRow            int
	filterColumn      string
	filterValue       string
	chartFilterColumn string
	chartFilterValue  string
	hidden            []int
	format            string
	title             string
	width             int
	height            int
)

func newChartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart [input.xlsx]",
		Short: "Generate chart data and its percentage view",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runChart,
	}

	f := cmd.Flags()
	f.StringVarP(&configPath, "config", "c", "", "YAML chart definition")
	f.StringVar(&sheetName, "sheet", "", "Sheet name")
	f.StringVar(&rangeRef, "range", "", "Cell range to read, e.g. A1:F40")
	f.StringVar(&chartType, "type", string(stackpct.ChartPercentStackedBar), "Chart type: line, bar, stackedBar, percentStackedBar")
	f.StringVarP(&xAxis, "x", "x", "", "Category column header")
	f.StringSliceVarP(&yAxes, "y", "y", nil, "Value column headers (comma separated or repeated)")
	f.IntVar(&startRow, "start-row", 0, "First Excel row to include")
	f.IntVar(&endRow, "end-row", 0, "Last Excel row to include")
	f.StringVar(&filterColumn, "filter-column", "", "Keep rows where this column equals --filter-value")
	f.StringVar(&filterValue, "filter-value", "", "Value for --filter-column")
	f.StringVar(&chartFilterColumn, "chart-filter-column", "", "Column whose distinct values are reported as chart filters")
	f.StringVar(&chartFilterValue, "chart-filter-value", "", "Selected chart filter value")
	f.IntSliceVar(&hidden, "hide", nil, "Series indices hidden from percentage totals")
	f.StringVar(&format, "format", "json", "Output format: json, svg, png")
	f.StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	f.StringVar(&title, "title", "", "Image title")
	f.IntVar(&width, "width", 0, "Image width in pixels")
	f.IntVar(&height, "height", 0, "Image height in pixels")
	return cmd
}

func runChart(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	result, err := stackpct.Build(cfg.Input, cfg.Chart)
	if err != nil {
		return fmt.Errorf("chart generation failed: %w", err)
	}
	slog.Debug("chart built",
		"sheet", result.Sheet,
		"type", result.ChartType,
		"categories", len(result.Data.Labels),
		"series", len(result.Data.Datasets),
		"rows", result.RowCount,
		"hidden", result.Hidden.HiddenIndices(),
		"filter_values", len(result.FilteredData),
	)

	data, err := encode(result, cfg.Output, pretty || cfg.Output.Pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if cfg.Output.Path == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(cfg.Output.Path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	slog.Info("chart written", "path", cfg.Output.Path, "format", cfg.Output.Format)
	return nil
}

// resolveConfig loads the optional config file and applies the flags the user set.
func resolveConfig(cmd *cobra.Command, args []string) (config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		slog.Debug("config loaded", "path", configPath)
	}

	if len(args) == 1 {
		cfg.Input = args[0]
	}
	if cfg.Input == "" {
		return config.Config{}, fmt.Errorf("no input file given")
	}
	if _, err := os.Stat(cfg.Input); os.IsNotExist(err) {
		return config.Config{}, fmt.Errorf("file not found: %s", cfg.Input)
	}

	flags := cmd.Flags()
	if flags.Changed("sheet") {
		cfg.Chart.Sheet = sheetName
	}
	if flags.Changed("range") {
		cfg.Chart.Range = rangeRef
	}
	if flags.Changed("type") || configPath == "" {
		ct, err := stackpct.ParseChartType(chartType)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Chart.ChartType = ct
	}
	if flags.Changed("x") {
		cfg.Chart.XAxis = xAxis
	}
	if flags.Changed("y") {
		cfg.Chart.YAxes = yAxes
	}
	if flags.Changed("start-row") {
		cfg.Chart.Filter.StartRow = startRow
	}
	if flags.Changed("end-row") {
		cfg.Chart.Filter.EndRow = endRow
	}
	if flags.Changed("filter-column") {
		cfg.Chart.Filter.Column = filterColumn
	}
	if flags.Changed("filter-value") {
		cfg.Chart.Filter.Value = filterValue
	}
	if flags.Changed("chart-filter-column") {
		cfg.Chart.ChartFilter.Column = chartFilterColumn
	}
	if flags.Changed("chart-filter-value") {
		cfg.Chart.ChartFilter.Value = chartFilterValue
	}
	if flags.Changed("hide") {
		cfg.Chart.Hidden = hidden
	}
	if flags.Changed("format") || configPath == "" {
		cfg.Output.Format = format
	}
	if flags.Changed("output") {
		cfg.Output.Path = outputPath
	}
	if flags.Changed("title") {
		cfg.Output.Title = title
	}
	if flags.Changed("width") {
		cfg.Output.Width = width
	}
	if flags.Changed("height") {
		cfg.Output.Height = height
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// encode serializes the result in the configured output format.
func encode(result *models.ChartResult, out config.OutputConfig, prettyJSON bool) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeResult(&buf, result, out, prettyJSON); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeResult(w io.Writer, result *models.ChartResult, out config.OutputConfig, prettyJSON bool) error {
	if out.Format == "json" {
		return output.WriteJSON(w, result, prettyJSON)
	}
	opts := render.Options{Title: out.Title, Width: out.Width, Height: out.Height}
	return render.Write(w, result, render.Format(out.Format), opts)
}
