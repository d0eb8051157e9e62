package report

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"reconcharts/internal/chart"
	"reconcharts/internal/dashboard"
	"reconcharts/internal/series"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"github.com/xuri/excelize/v2"
)

// buildCharts renders the embedded charts with the builder for format
func buildCharts(t *testing.T, format string) []Output {
	t.Helper()
	builder, err := NewBuilder(format, Options{})
	require.NoError(t, err)
	assert.Equal(t, format, builder.Format())
	require.NoError(t, dashboard.Initialize(builder, series.Embedded()))
	outputs, err := builder.Finish()
	require.NoError(t, err)
	return outputs
}

func TestNewBuilderUnknownFormat(t *testing.T) {
	_, err := NewBuilder("pdf", Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "got pdf")
}

func TestExpandFormats(t *testing.T) {
	tests := []struct {
		name     string
		formats  []string
		expected []string
		wantErr  bool
	}{
		{"single", []string{FormatHtml}, []string{FormatHtml}, false},
		{"all", []string{FormatAll}, FormatOptions, false},
		{"duplicates", []string{FormatTxt, FormatHtml, FormatTxt}, []string{FormatTxt, FormatHtml}, false},
		{"all after one", []string{FormatPng, FormatAll}, []string{FormatPng, FormatHtml, FormatSvg, FormatXlsx, FormatJson, FormatTxt, FormatProm}, false},
		{"unknown", []string{FormatHtml, "pdf"}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandFormats(tt.formats)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRenderRejects(t *testing.T) {
	b := &jsonBuilder{}
	options := chart.BaseOptions()
	assert.Error(t, b.Render("mseChart", chart.Type("scatter"), chart.Data{}, options))
	assert.Error(t, b.Render("", chart.TypeLine, chart.Data{}, options))
	assert.Error(t, b.Render("mse chart</canvas>", chart.TypeLine, chart.Data{}, options))
	require.NoError(t, b.Render("mseChart", chart.TypeLine, chart.Data{}, options))
	assert.Error(t, b.Render("mseChart", chart.TypeLine, chart.Data{}, options), "a surface holds one chart")
}

func TestHtmlBuilder(t *testing.T) {
	outputs := buildCharts(t, FormatHtml)
	require.Len(t, outputs, 1)
	assert.Equal(t, "charts.html", outputs[0].Name)
	page := string(outputs[0].Bytes)
	assert.Contains(t, page, "chart.js@3.7.1")
	assert.Contains(t, page, "<title>Reconstruction Quality</title>")
	for _, surface := range []string{"mseChart", "psnrChart", "ssimChart"} {
		assert.Contains(t, page, `<canvas id="`+surface+`"></canvas>`)
		assert.Contains(t, page, `new Chart(document.getElementById('`+surface+`'), {"type":"line"`)
		assert.Contains(t, page, `<a href="#`+surface+`">`)
	}
	assert.Equal(t, 3, strings.Count(page, `"legend":{"display":false}`))
	assert.Equal(t, 3, strings.Count(page, `"x":{"title":{"display":true,"text":"Sample Index"}}`))
	assert.Equal(t, 1, strings.Count(page, `"min":-0.5,"max":1.5`))
	assert.Contains(t, page, `"labels":[1,2,3,4,5,6,7,8,9,10,11,12,13,14,15,16,17,18,19,20,21,22,23,24,25]`)
	assert.Contains(t, page, `"data":[16841.215169270832,1374.7542317708333,`)
}

func TestHtmlBuilderEscapesTitle(t *testing.T) {
	builder, err := NewBuilder(FormatHtml, Options{Title: "<b>run</b>"})
	require.NoError(t, err)
	outputs, err := builder.Finish()
	require.NoError(t, err)
	page := string(outputs[0].Bytes)
	assert.Contains(t, page, "<h1>&lt;b&gt;run&lt;/b&gt;</h1>")
	assert.NotContains(t, page, "<b>run</b>")
}

func TestJsonBuilder(t *testing.T) {
	outputs := buildCharts(t, FormatJson)
	require.Len(t, outputs, 1)
	assert.Equal(t, "charts.json", outputs[0].Name)
	var charts []invocation
	require.NoError(t, json.Unmarshal(outputs[0].Bytes, &charts))
	require.Len(t, charts, 3)
	set := series.Embedded()
	assert.Equal(t, set.MSE, charts[0].Data.Datasets[0].Data)
	assert.Equal(t, set.PSNR, charts[1].Data.Datasets[0].Data)
	assert.Equal(t, set.SSIM, charts[2].Data.Datasets[0].Data)
	for i, d := range dashboard.Definitions() {
		assert.Equal(t, d.Surface, charts[i].Surface)
		assert.Equal(t, chart.TypeLine, charts[i].Type)
		assert.Equal(t, d.Options(), charts[i].Options)
	}
}

func TestJsonBuilderEmpty(t *testing.T) {
	outputs, err := (&jsonBuilder{}).Finish()
	require.NoError(t, err)
	assert.Equal(t, "[]", string(outputs[0].Bytes))
}

func TestTextBuilder(t *testing.T) {
	outputs := buildCharts(t, FormatTxt)
	require.Len(t, outputs, 1)
	text := string(outputs[0].Bytes)
	title := "Mean Squared Error (MSE) Over Samples"
	assert.Contains(t, text, title+"\n"+strings.Repeat("=", len(title))+"\n")
	assert.Contains(t, text, "Sample Index")
	assert.Contains(t, text, "16,841.2152")
	assert.Contains(t, text, "Y Axis: SSIM Value (-0.5 to 1.5)\n")
	assert.Equal(t, 1, strings.Count(text, "Y Axis:"))
}

func TestTextBuilderNoData(t *testing.T) {
	b := &textBuilder{}
	require.NoError(t, b.Render("emptyChart", chart.TypeLine, chart.Data{}, chart.BaseOptions()))
	outputs, err := b.Finish()
	require.NoError(t, err)
	assert.Equal(t, "emptyChart\n==========\nNo data found.\n\n", string(outputs[0].Bytes))
}

func TestPromBuilder(t *testing.T) {
	outputs := buildCharts(t, FormatProm)
	require.Len(t, outputs, 1)
	assert.Equal(t, "charts.prom", outputs[0].Name)
	text := string(outputs[0].Bytes)
	assert.Contains(t, text, "# TYPE reconcharts_sample_value gauge\n")
	assert.Contains(t, text, `reconcharts_sample_value{chart="mseChart",dataset="Mean Squared Error",sample="1"} 16841.215169270832`)
	assert.Contains(t, text, `reconcharts_sample_value{chart="ssimChart",dataset="SSIM",sample="25"} 0.9989665239517435`)
	assert.Equal(t, 75, strings.Count(text, "reconcharts_sample_value{"))
}

func TestImageBuilders(t *testing.T) {
	png := buildCharts(t, FormatPng)
	require.Len(t, png, 3)
	for i, surface := range []string{"mseChart", "psnrChart", "ssimChart"} {
		assert.Equal(t, surface+".png", png[i].Name)
		assert.True(t, bytes.HasPrefix(png[i].Bytes, []byte("\x89PNG")), surface)
	}
	svg := buildCharts(t, FormatSvg)
	require.Len(t, svg, 3)
	assert.Equal(t, "ssimChart.svg", svg[2].Name)
	assert.Contains(t, string(svg[2].Bytes), "<svg")
	assert.Contains(t, string(svg[2].Bytes), "Structural Similarity Index (SSIM) Over Samples")
}

func TestImageGraph(t *testing.T) {
	b := newImageBuilder(FormatPng, Options{}.withDefaults())
	definitions := dashboard.Definitions()
	data := chart.Data{
		Labels:   []int{1, 2, 3},
		Datasets: []chart.Dataset{definitions[2].Dataset([]float64{0.1, 0.9})},
	}
	graph, err := b.graph(invocation{Surface: "ssimChart", Type: chart.TypeLine, Data: data, Options: definitions[2].Options()})
	require.NoError(t, err)
	assert.Equal(t, DefaultWidth, graph.Width)
	assert.Equal(t, "Sample Index", graph.XAxis.Name)
	assert.Equal(t, "SSIM Value", graph.YAxis.Name)
	assert.Empty(t, graph.Elements, "legend hidden")
	require.Len(t, graph.Series, 1)
	assert.Len(t, graph.XAxis.Ticks, 3)

	data.Datasets = []chart.Dataset{definitions[0].Dataset([]float64{5, 10, 20})}
	graph, err = b.graph(invocation{Surface: "mseChart", Type: chart.TypeLine, Data: data, Options: definitions[0].Options()})
	require.NoError(t, err)
	assert.Equal(t, "Mean Squared Error (MSE) Over Samples", graph.Title)
}

func TestIndexTicks(t *testing.T) {
	assert.Len(t, indexTicks(series.SampleIndex(25)), 25)
	ticks := indexTicks(series.SampleIndex(100))
	assert.Len(t, ticks, 25)
	assert.Equal(t, "1", ticks[0].Label)
	assert.Equal(t, "5", ticks[1].Label)
}

func TestXlsxBuilder(t *testing.T) {
	outputs := buildCharts(t, FormatXlsx)
	require.Len(t, outputs, 1)
	assert.Equal(t, "charts.xlsx", outputs[0].Name)
	f, err := excelize.OpenReader(bytes.NewReader(outputs[0].Bytes))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"mseChart", "psnrChart", "ssimChart"}, f.GetSheetList())
	header, err := f.GetCellValue("mseChart", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Sample Index", header)
	label, err := f.GetCellValue("psnrChart", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Peak Signal-to-Noise Ratio", label)
	last, err := f.GetCellValue("ssimChart", "A26")
	require.NoError(t, err)
	assert.Equal(t, "25", last)
	value, err := f.GetCellValue("mseChart", "B2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "16841.215169270832", value)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in       string
		expected drawing.Color
		wantErr  bool
	}{
		{"rgb(75, 192, 192)", drawing.Color{R: 75, G: 192, B: 192, A: 255}, false},
		{"rgba(255, 99, 132, 0.2)", drawing.Color{R: 255, G: 99, B: 132, A: 51}, false},
		{"#9966FF", drawing.Color{R: 153, G: 102, B: 255, A: 255}, false},
		{"#96", drawing.Color{}, true},
		{"chartreuse", drawing.Color{}, true},
		{"", drawing.Color{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSeriesStyle(t *testing.T) {
	d := dashboard.Definitions()[0]
	dataset := d.Dataset([]float64{1})
	style, err := seriesStyle(dataset.BorderColor, dataset.BackgroundColor, dataset.Fill)
	require.NoError(t, err)
	assert.Equal(t, drawing.Color{R: 75, G: 192, B: 192, A: 255}, style.StrokeColor)
	assert.Equal(t, drawing.Color{R: 75, G: 192, B: 192, A: 51}, style.FillColor)

	style, err = seriesStyle(dataset.BorderColor, "", false)
	require.NoError(t, err)
	assert.True(t, style.FillColor.IsZero(), "no fill without the fill flag")

	_, err = seriesStyle("not a color", dataset.BackgroundColor, true)
	assert.Error(t, err)
}
