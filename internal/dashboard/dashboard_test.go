package dashboard

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"errors"
	"strings"
	"testing"

	"reconcharts/internal/chart"
	"reconcharts/internal/series"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type invocation struct {
	surface   string
	chartType chart.Type
	data      chart.Data
	options   chart.Options
}

type recorder struct {
	calls  []invocation
	failOn string
}

func (r *recorder) Render(surface string, chartType chart.Type, data chart.Data, options chart.Options) error {
	if surface == r.failOn {
		return errors.New("surface not found")
	}
	r.calls = append(r.calls, invocation{surface, chartType, data, options})
	return nil
}

func TestInitialize(t *testing.T) {
	set := series.Embedded()
	r := &recorder{}
	require.NoError(t, Initialize(r, set))
	require.Len(t, r.calls, 3)

	surfaces := []string{}
	titles := map[string]bool{}
	for _, call := range r.calls {
		surfaces = append(surfaces, call.surface)
		assert.Equal(t, chart.TypeLine, call.chartType)
		assert.Equal(t, series.SampleIndex(25), call.data.Labels)
		require.Len(t, call.data.Datasets, 1)
		assert.False(t, call.options.Plugins.Legend.Display)
		assert.Equal(t, "Sample Index", call.options.Scales.X.Title.Text)
		assert.True(t, strings.HasSuffix(call.options.Plugins.Title.Text, "Over Samples"))
		titles[call.options.Plugins.Title.Text] = true
	}
	assert.Equal(t, []string{"mseChart", "psnrChart", "ssimChart"}, surfaces)
	assert.Len(t, titles, 3, "titles must be distinct")

	// values pass through verbatim and in order
	assert.Equal(t, set.MSE, r.calls[0].data.Datasets[0].Data)
	assert.Equal(t, set.PSNR, r.calls[1].data.Datasets[0].Data)
	assert.Equal(t, set.SSIM, r.calls[2].data.Datasets[0].Data)
}

func TestInitializeAxes(t *testing.T) {
	r := &recorder{}
	require.NoError(t, Initialize(r, series.Embedded()))
	require.Len(t, r.calls, 3)
	for _, call := range r.calls[:2] {
		assert.Nil(t, call.options.Scales.Y.Min, call.surface)
		assert.Nil(t, call.options.Scales.Y.Max, call.surface)
		assert.True(t, call.options.Scales.Y.BeginAtZero, call.surface)
	}
	ssim := r.calls[2].options.Scales.Y
	require.True(t, ssim.Bounded())
	assert.Equal(t, -0.5, *ssim.Min)
	assert.Equal(t, 1.5, *ssim.Max)
	assert.Equal(t, "MSE Value", r.calls[0].options.Scales.Y.Title.Text)
	assert.Equal(t, "PSNR Value", r.calls[1].options.Scales.Y.Title.Text)
	assert.Equal(t, "SSIM Value", r.calls[2].options.Scales.Y.Title.Text)
}

func TestInitializeDatasets(t *testing.T) {
	r := &recorder{}
	require.NoError(t, Initialize(r, series.Embedded()))
	expected := []chart.Dataset{
		{Label: "Mean Squared Error", BorderColor: "rgb(75, 192, 192)", BackgroundColor: "rgba(75, 192, 192, 0.2)", Tension: 0.1, Fill: true},
		{Label: "Peak Signal-to-Noise Ratio", BorderColor: "rgb(255, 99, 132)", BackgroundColor: "rgba(255, 99, 132, 0.2)", Tension: 0.1, Fill: true},
		{Label: "SSIM", BorderColor: "rgb(153, 102, 255)", BackgroundColor: "rgba(153, 102, 255, 0.2)", Tension: 0.1, Fill: true},
	}
	for i, call := range r.calls {
		got := call.data.Datasets[0]
		got.Data = nil
		assert.Equal(t, expected[i], got)
	}
	assert.Equal(t, "Mean Squared Error (MSE) Over Samples", r.calls[0].options.Plugins.Title.Text)
	assert.Equal(t, "Peak Signal-to-Noise Ratio (PSNR) Over Samples", r.calls[1].options.Plugins.Title.Text)
	assert.Equal(t, "Structural Similarity Index (SSIM) Over Samples", r.calls[2].options.Plugins.Title.Text)
}

func TestInitializeMisalignedSeries(t *testing.T) {
	set := series.Set{
		MSE:  []float64{1, 2, 3},
		PSNR: []float64{4, 5},
		SSIM: []float64{0.1, 0.2, 0.3},
	}
	r := &recorder{}
	require.NoError(t, Initialize(r, set), "mismatched lengths are rendered as-is")
	require.Len(t, r.calls, 3)
	assert.Equal(t, []int{1, 2, 3}, r.calls[1].data.Labels)
	assert.Equal(t, []float64{4, 5}, r.calls[1].data.Datasets[0].Data)
}

func TestInitializeStopsOnRenderError(t *testing.T) {
	r := &recorder{failOn: SurfacePSNR}
	err := Initialize(r, series.Embedded())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "psnrChart")
	assert.Len(t, r.calls, 1)
}

func TestDefinitionsUniqueSurfaces(t *testing.T) {
	assert.NotPanics(t, func() { Definitions() })
	definitions := Definitions()
	definitions[1].Surface = definitions[0].Surface
	assert.Panics(t, func() { checkSurfaces(definitions) })
}
