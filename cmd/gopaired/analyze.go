package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopaired/app"
	"gopaired/domain/ttest"
	"gopaired/internal"
	"gopaired/internal/config"
	"gopaired/internal/container"
	"gopaired/internal/errors"
	"gopaired/internal/render"

	"github.com/spf13/cobra"
)

type analyzeFlags struct {
	iv, dv     string
	col1, col2 string
	sheet      string
	format     string
	alpha      float64
	seed       int64
}

func newAnalyzeCmd() *cobra.Command {
	var flags analyzeFlags

	cmd := &cobra.Command{
		Use:   "analyze FILE",
		Short: "Run a paired-samples t-test on a CSV, TSV or Excel file",
		Long: `Run a paired-samples t-test and print the ten-step walkthrough.

The first two numerical columns are compared unless --col1 and --col2 are given.

Example: gopaired analyze scores.csv --iv "Training" --dv "Words recalled" --alpha 0.01`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.iv, "iv", "", "Independent variable name (default from TTEST_IV_NAME)")
	cmd.Flags().StringVar(&flags.dv, "dv", "", "Dependent variable name (default from TTEST_DV_NAME)")
	cmd.Flags().Float64Var(&flags.alpha, "alpha", 0, "Significance level (default from TTEST_ALPHA, else 0.05)")
	cmd.Flags().StringVar(&flags.col1, "col1", "", "Column holding condition 1")
	cmd.Flags().StringVar(&flags.col2, "col2", "", "Column holding condition 2")
	cmd.Flags().StringVar(&flags.sheet, "sheet", "", "Excel sheet to read (default: first sheet)")
	cmd.Flags().Int64Var(&flags.seed, "seed", 0, "Seed for hypothesis phrasing (0: random)")
	cmd.Flags().StringVar(&flags.format, "format", "markdown", "Output format: markdown, json or html")

	return cmd
}

func runAnalyze(cmd *cobra.Command, path string, flags analyzeFlags) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if flags.sheet != "" {
		cfg.Upload.Sheet = flags.sheet
	}
	if cmd.Flags().Changed("seed") {
		cfg.Analysis.Seed = flags.seed
	}
	if cmd.Flags().Changed("alpha") && !(flags.alpha > 0 && flags.alpha < 1) {
		return errors.InvalidInput("--alpha must be between 0 and 1")
	}

	// Logs go to stderr so the report can be piped
	logger := internal.NewLoggerTo(cmd.ErrOrStderr(), cfg.LogLevel)
	c, err := container.New(cfg, logger)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	report, err := c.Service.AnalyzeFile(cmd.Context(), app.AnalysisRequest{
		Filename: filepath.Base(path),
		Data:     data,
		Options: ttest.Options{
			Alpha:          flags.alpha,
			IndependentVar: flags.iv,
			DependentVar:   flags.dv,
			Columns:        ttest.ColumnPair{First: flags.col1, Second: flags.col2},
		},
	})
	if err != nil {
		return err
	}
	return writeReport(cmd.OutOrStdout(), *report, flags.format)
}

func writeReport(w io.Writer, report ttest.AnalysisReport, format string) error {
	switch strings.ToLower(format) {
	case "markdown", "md":
		_, err := io.WriteString(w, render.Markdown(report))
		return err
	case "json":
		data, err := render.JSON(report)
		if err != nil {
			return err
		}
		_, err = w.Write(append(data, '\n'))
		return err
	case "html":
		_, err := w.Write(render.HTML(report))
		return err
	default:
		return errors.InvalidInput(fmt.Sprintf("unknown format %q (use markdown, json or html)", format))
	}
}
