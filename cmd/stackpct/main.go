// Package main provides the CLI entry point for stackpct-go.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/stackpct-go/pkg/stackpct"
	"github.com/ukaji3/stackpct-go/pkg/stackpct/config"
	"github.com/ukaji3/stackpct-go/pkg/stackpct/output"
)

var (
	verbose    bool
	pretty     bool
	sheetName  string
	rangeRef   string
	outputPath string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "stackpct",
		Short: "Build percentage stacked bar charts from Excel files",
		Long: `stackpct-go reads a sheet, aggregates the chosen columns into chart series
and computes each series' share of the visible category total.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(verbose)
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	rootCmd.AddCommand(newSheetsCmd(), newColumnsCmd(), newChartCmd(), newConfigCmd())
	return rootCmd
}

func setupLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func newSheetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sheets [input.xlsx]",
		Short: "List sheets with their columns and row counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := stackpct.Inspect(args[0])
			if err != nil {
				return fmt.Errorf("inspection failed: %w", err)
			}
			slog.Debug("workbook inspected", "book", info.BookName, "sheets", len(info.Sheets))
			for _, sheet := range info.Sheets {
				if sheet.Error != "" {
					slog.Warn("sheet could not be read", "sheet", sheet.Name, "error", sheet.Error)
				}
			}
			return output.WriteJSON(cmd.OutOrStdout(), info, pretty)
		},
	}
}

func newColumnsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "columns [input.xlsx]",
		Short: "Print the header and rows of a sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if sheetName == "" {
				return fmt.Errorf("--sheet is required")
			}
			table, err := stackpct.ReadTable(args[0], sheetName, rangeRef)
			if err != nil {
				return fmt.Errorf("read failed: %w", err)
			}
			slog.Debug("sheet read", "sheet", table.Sheet, "columns", len(table.Columns), "rows", len(table.Rows))
			return output.WriteJSON(cmd.OutOrStdout(), table, pretty)
		},
	}
	cmd.Flags().StringVar(&sheetName, "sheet", "", "Sheet name")
	cmd.Flags().StringVar(&rangeRef, "range", "", "Cell range to read, e.g. A1:F40")
	return cmd
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print an example chart configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), config.Example())
			return err
		},
	}
}
