// Package dashboard renders the MSE, PSNR, and SSIM charts of a reconstruction run.
package dashboard

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"fmt"
	"log/slog"

	"reconcharts/internal/chart"
	"reconcharts/internal/series"

	mapset "github.com/deckarep/golang-set/v2"
)

const (
	SurfaceMSE  = "mseChart"
	SurfacePSNR = "psnrChart"
	SurfaceSSIM = "ssimChart"

	// FillAlpha is the transparency of the area under each line
	FillAlpha = 0.2
	// Tension is the curve smoothing factor of each line
	Tension = 0.1
)

// Definition describes the chart of one metric
type Definition struct {
	Metric       series.Metric
	Surface      string // identifier of the display surface
	Name         string // human readable metric name
	Abbreviation string
	DatasetLabel string
	Color        chart.Color
	YMin         *float64 // fixed y axis bounds, nil to autoscale from zero
	YMax         *float64
}

// Title returns the chart title, e.g., "Mean Squared Error (MSE) Over Samples"
func (d Definition) Title() string {
	return fmt.Sprintf("%s (%s) Over Samples", d.Name, d.Abbreviation)
}

// YAxisLabel returns the y axis label, e.g., "MSE Value"
func (d Definition) YAxisLabel() string {
	return d.Abbreviation + " Value"
}

// Overrides returns the chart specific options
func (d Definition) Overrides() chart.Overrides {
	return chart.Overrides{
		Title:      d.Title(),
		YAxisLabel: d.YAxisLabel(),
		YMin:       d.YMin,
		YMax:       d.YMax,
	}
}

// Dataset returns the single dataset of the chart. values are passed through unmodified.
func (d Definition) Dataset(values []float64) chart.Dataset {
	return chart.Dataset{
		Label:           d.DatasetLabel,
		Data:            values,
		BorderColor:     d.Color.Stroke(),
		BackgroundColor: d.Color.Fill(FillAlpha),
		Tension:         Tension,
		Fill:            true,
	}
}

// Options returns the base options overlaid with the chart's overrides
func (d Definition) Options() chart.Options {
	return chart.BaseOptions().Overlay(d.Overrides())
}

// Definitions returns the chart definitions in rendering order
func Definitions() []Definition {
	definitions := []Definition{
		{
			Metric:       series.MetricMSE,
			Surface:      SurfaceMSE,
			Name:         "Mean Squared Error",
			Abbreviation: "MSE",
			DatasetLabel: "Mean Squared Error",
			Color:        chart.Color{R: 75, G: 192, B: 192},
		},
		{
			Metric:       series.MetricPSNR,
			Surface:      SurfacePSNR,
			Name:         "Peak Signal-to-Noise Ratio",
			Abbreviation: "PSNR",
			DatasetLabel: "Peak Signal-to-Noise Ratio",
			Color:        chart.Color{R: 255, G: 99, B: 132},
		},
		{
			Metric:       series.MetricSSIM,
			Surface:      SurfaceSSIM,
			Name:         "Structural Similarity Index",
			Abbreviation: "SSIM",
			DatasetLabel: "SSIM",
			Color:        chart.Color{R: 153, G: 102, B: 255},
			YMin:         chart.Float(-0.5), // SSIM is bounded, keep the full range in view
			YMax:         chart.Float(1.5),
		},
	}
	checkSurfaces(definitions)
	return definitions
}

func checkSurfaces(definitions []Definition) {
	surfaces := mapset.NewSet[string]()
	for _, d := range definitions {
		if !surfaces.Add(d.Surface) {
			panic(fmt.Sprintf("duplicate chart surface: %s", d.Surface))
		}
	}
}

// Initialize renders the three charts of set, one Render call per chart, in order.
// Mismatched series lengths are logged, not rejected. The labels are sized to the longest series.
func Initialize(r chart.Renderer, set series.Set) error {
	if err := set.Validate(); err != nil {
		slog.Warn("rendering misaligned series", slog.String("reason", err.Error()))
	}
	labels := set.Labels()
	for _, d := range Definitions() {
		data := chart.Data{
			Labels:   labels,
			Datasets: []chart.Dataset{d.Dataset(set.Values(d.Metric))},
		}
		slog.Debug("rendering chart", slog.String("surface", d.Surface), slog.Int("points", len(data.Datasets[0].Data)))
		if err := r.Render(d.Surface, chart.TypeLine, data, d.Options()); err != nil {
			return fmt.Errorf("failed to render %s: %w", d.Surface, err)
		}
	}
	return nil
}
