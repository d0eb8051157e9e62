// Package render is a subcommand of the root command. It renders the MSE, PSNR, and SSIM charts.
package render

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"reconcharts/internal/app"
	"reconcharts/internal/dashboard"
	"reconcharts/internal/progress"
	"reconcharts/internal/report"
	"reconcharts/internal/series"
	"reconcharts/internal/util"

	"github.com/spf13/cobra"
)

const cmdName = "render"

var examples = []string{
	fmt.Sprintf("  Render html page of the embedded data:  $ %s %s", app.Name, cmdName),
	fmt.Sprintf("  Render png and xlsx charts:             $ %s %s --format png,xlsx", app.Name, cmdName),
	fmt.Sprintf("  Render charts from an attack run:       $ %s %s --input results.yaml --strict", app.Name, cmdName),
}

var Cmd = &cobra.Command{
	Use:           cmdName,
	Short:         "Render the reconstruction quality charts",
	Long:          "",
	Example:       strings.Join(examples, "\n"),
	RunE:          runCmd,
	PreRunE:       validateFlags,
	GroupID:       "primary",
	Args:          cobra.NoArgs,
	SilenceErrors: true,
}

var (
	flagFormat []string
	flagInput  string
	flagStrict bool
	flagWidth  int
	flagHeight int
	flagTitle  string
)

const (
	flagFormatName = "format"
	flagStrictName = "strict"
	flagWidthName  = "width"
	flagHeightName = "height"
	flagTitleName  = "title"
)

// minimum image dimension in pixels
const minDimension = 100

func init() {
	Cmd.Flags().StringSliceVar(&flagFormat, flagFormatName, []string{report.FormatHtml}, "")
	Cmd.Flags().StringVar(&flagInput, app.FlagInputName, "", "")
	Cmd.Flags().BoolVar(&flagStrict, flagStrictName, false, "")
	Cmd.Flags().IntVar(&flagWidth, flagWidthName, report.DefaultWidth, "")
	Cmd.Flags().IntVar(&flagHeight, flagHeightName, report.DefaultHeight, "")
	Cmd.Flags().StringVar(&flagTitle, flagTitleName, report.DefaultTitle, "")

	Cmd.SetUsageFunc(app.UsageFunc(getFlagGroups))
}

func getFlagGroups() []app.FlagGroup {
	var groups []app.FlagGroup
	flags := []app.Flag{
		{
			Name: flagFormatName,
			Help: fmt.Sprintf("choose output format(s) from: %s", strings.Join(append([]string{report.FormatAll}, report.FormatOptions...), ", ")),
		},
		{
			Name: flagTitleName,
			Help: "title of the html page and xlsx workbook",
		},
		{
			Name: flagWidthName,
			Help: "png and svg image width in pixels",
		},
		{
			Name: flagHeightName,
			Help: "png and svg image height in pixels",
		},
	}
	groups = append(groups, app.FlagGroup{
		GroupName: "Output Options",
		Flags:     flags,
	})
	flags = []app.Flag{
		{
			Name: app.FlagInputName,
			Help: "\".yaml\" or \".json\" file holding the mse, psnr, and ssim series. Uses the embedded data when not set.",
		},
		{
			Name: flagStrictName,
			Help: "fail when the series have different lengths",
		},
	}
	groups = append(groups, app.FlagGroup{
		GroupName: "Input Options",
		Flags:     flags,
	})
	return groups
}

func validateFlags(cmd *cobra.Command, args []string) error {
	formats, err := report.ExpandFormats(flagFormat)
	if err != nil {
		return app.FlagValidationError(cmd, err.Error())
	}
	flagFormat = formats
	if flagWidth < minDimension {
		return app.FlagValidationError(cmd, fmt.Sprintf("width must be %d or greater", minDimension))
	}
	if flagHeight < minDimension {
		return app.FlagValidationError(cmd, fmt.Sprintf("height must be %d or greater", minDimension))
	}
	if flagInput != "" {
		exists, err := util.FileExists(flagInput)
		if err != nil {
			return app.FlagValidationError(cmd, err.Error())
		}
		if !exists {
			return app.FlagValidationError(cmd, fmt.Sprintf("input file does not exist: %s", flagInput))
		}
	}
	return nil
}

func runCmd(cmd *cobra.Command, args []string) error {
	appContext, err := app.GetContext(cmd)
	if err != nil {
		return err
	}
	set, err := LoadSeries(flagInput)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		slog.Error(err.Error())
		cmd.SilenceUsage = true
		return err
	}
	if flagStrict {
		if err := set.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			slog.Error(err.Error())
			cmd.SilenceUsage = true
			return err
		}
	}
	// we have data so create the output directory
	if err := app.CreateOutputDir(appContext.OutputDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		slog.Error(err.Error())
		cmd.SilenceUsage = true
		return err
	}
	options := report.Options{Title: flagTitle, Width: flagWidth, Height: flagHeight}
	// setup and start the progress indicator
	multiSpinner := progress.NewMultiSpinner()
	for _, format := range flagFormat {
		if err := multiSpinner.AddSpinner(format); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			slog.Error(err.Error())
			cmd.SilenceUsage = true
			return err
		}
	}
	multiSpinner.Start()
	reportFilePaths, renderErr := renderFormats(flagFormat, set, options, appContext.OutputDir, multiSpinner.Status)
	multiSpinner.Finish()
	fmt.Println()
	if len(reportFilePaths) > 0 {
		fmt.Println("Report files:")
	}
	for _, reportFilePath := range reportFilePaths {
		fmt.Printf("  %s\n", reportFilePath)
	}
	if renderErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", renderErr)
		cmd.SilenceUsage = true
		return renderErr
	}
	return nil
}

// LoadSeries reads the series from input, or returns the embedded series when input is empty
func LoadSeries(input string) (series.Set, error) {
	if input == "" {
		slog.Debug("using embedded series")
		return series.Embedded(), nil
	}
	return series.Load(input)
}

// renderFormats renders the charts in every format, continuing past failures.
// It returns the paths of the files written and the first error.
func renderFormats(formats []string, set series.Set, options report.Options, outputDir string, statusUpdate progress.StatusFunc) ([]string, error) {
	var paths []string
	var firstErr error
	for _, format := range formats {
		_ = statusUpdate(format, "rendering")
		formatPaths, err := renderFormat(format, set, options, outputDir)
		paths = append(paths, formatPaths...)
		if err != nil {
			slog.Error("failed to render charts", slog.String("format", format), slog.String("error", err.Error()))
			_ = statusUpdate(format, fmt.Sprintf("Error: %v", err))
			if firstErr == nil {
				firstErr = fmt.Errorf("failed to render %s charts: %w", format, err)
			}
			continue
		}
		_ = statusUpdate(format, fmt.Sprintf("done, %d file(s)", len(formatPaths)))
	}
	return paths, firstErr
}

// renderFormat initializes the charts on the builder for format and writes its outputs
func renderFormat(format string, set series.Set, options report.Options, outputDir string) ([]string, error) {
	builder, err := report.NewBuilder(format, options)
	if err != nil {
		return nil, err
	}
	if err := dashboard.Initialize(builder, set); err != nil {
		return nil, err
	}
	outputs, err := builder.Finish()
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, output := range outputs {
		path, err := util.WriteFileInDir(outputDir, output.Name, output.Bytes)
		if err != nil {
			return paths, err
		}
		slog.Debug("wrote chart output", slog.String("format", format), slog.String("path", path), slog.Int("bytes", len(output.Bytes)))
		paths = append(paths, path)
	}
	return paths, nil
}
