package report

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// maxTicks limits the number of labelled x axis ticks
const maxTicks = 25

// imageBuilder renders one image per chart, as png or svg
type imageBuilder struct {
	invocations
	format   string
	options  Options
	provider gochart.RendererProvider
}

func newImageBuilder(format string, options Options) *imageBuilder {
	b := &imageBuilder{format: format, options: options, provider: gochart.PNG}
	if format == FormatSvg {
		b.provider = gochart.SVG
	}
	return b
}

func (b *imageBuilder) Format() string {
	return b.format
}

func (b *imageBuilder) Finish() ([]Output, error) {
	var outputs []Output
	for _, c := range b.charts {
		graph, err := b.graph(c)
		if err != nil {
			return nil, fmt.Errorf("failed to build %s chart: %w", c.Surface, err)
		}
		var buf bytes.Buffer
		if err := graph.Render(b.provider, &buf); err != nil {
			return nil, fmt.Errorf("failed to render %s chart as %s: %w", c.Surface, b.format, err)
		}
		outputs = append(outputs, Output{Name: c.Surface + "." + b.format, Bytes: buf.Bytes()})
	}
	return outputs, nil
}

// graph converts the chart configuration. Line tension has no equivalent and is ignored.
func (b *imageBuilder) graph(c invocation) (gochart.Chart, error) {
	var allSeries []gochart.Series
	minY, maxY := math.MaxFloat64, -math.MaxFloat64
	for _, dataset := range c.Data.Datasets {
		n := min(len(dataset.Data), len(c.Data.Labels))
		xs := make([]float64, n)
		ys := make([]float64, n)
		for i := range n {
			xs[i] = float64(c.Data.Labels[i])
			ys[i] = dataset.Data[i]
			minY = min(minY, ys[i])
			maxY = max(maxY, ys[i])
		}
		style, err := seriesStyle(dataset.BorderColor, dataset.BackgroundColor, dataset.Fill)
		if err != nil {
			return gochart.Chart{}, err
		}
		allSeries = append(allSeries, gochart.ContinuousSeries{Name: dataset.Label, XValues: xs, YValues: ys, Style: style})
	}
	if minY > maxY { // no points
		minY, maxY = 0, 1
	}
	yAxis := c.Options.Scales.Y
	var yRange *gochart.ContinuousRange
	switch {
	case yAxis.Bounded():
		yRange = &gochart.ContinuousRange{Min: *yAxis.Min, Max: *yAxis.Max}
	case yAxis.BeginAtZero:
		yRange = &gochart.ContinuousRange{Min: min(0, minY), Max: max(0, maxY)}
	default:
		yRange = &gochart.ContinuousRange{Min: minY, Max: maxY}
	}
	if yRange.Max <= yRange.Min {
		yRange.Max = yRange.Min + 1
	}
	n := len(c.Data.Labels)
	graph := gochart.Chart{
		Width:      b.options.Width,
		Height:     b.options.Height,
		Background: gochart.Style{Padding: gochart.Box{Top: 24, Left: 16, Right: 16, Bottom: 16}},
		XAxis: gochart.XAxis{
			Range: &gochart.ContinuousRange{Min: 0.5, Max: float64(n) + 0.5},
			Ticks: indexTicks(c.Data.Labels),
		},
		YAxis: gochart.YAxis{
			Range: yRange,
		},
		Series: allSeries,
	}
	if c.Options.Plugins.Title.Display {
		graph.Title = c.Options.Plugins.Title.Text
	}
	if c.Options.Scales.X.Title.Display {
		graph.XAxis.Name = c.Options.Scales.X.Title.Text
	}
	if yAxis.Title.Display {
		graph.YAxis.Name = yAxis.Title.Text
	}
	if c.Options.Plugins.Legend.Display {
		graph.Elements = []gochart.Renderable{gochart.Legend(&graph)}
	}
	return graph, nil
}

func seriesStyle(border, background string, fill bool) (gochart.Style, error) {
	stroke, err := parseColor(border)
	if err != nil {
		return gochart.Style{}, err
	}
	style := gochart.Style{
		StrokeWidth: 2,
		StrokeColor: stroke,
		DotWidth:    3,
		DotColor:    stroke,
	}
	if fill {
		area, err := parseColor(background)
		if err != nil {
			return gochart.Style{}, err
		}
		style.FillColor = area
	}
	return style, nil
}

// parseColor parses the CSS colour forms written by chart.Color, rejecting what drawing cannot parse
func parseColor(s string) (drawing.Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") && len(s) != 4 && len(s) != 7 {
		return drawing.Color{}, fmt.Errorf("unsupported color: %q", s)
	}
	c := drawing.ParseColor(s)
	if c.IsZero() {
		return drawing.Color{}, fmt.Errorf("unsupported color: %q", s)
	}
	return c, nil
}

// indexTicks labels the x axis with the sample index, thinning the labels on long series
func indexTicks(labels []int) []gochart.Tick {
	step := 1
	if len(labels) > maxTicks {
		step = int(math.Ceil(float64(len(labels)) / maxTicks))
	}
	var ticks []gochart.Tick
	for i := 0; i < len(labels); i += step {
		ticks = append(ticks, gochart.Tick{Value: float64(labels[i]), Label: strconv.Itoa(labels[i])})
	}
	return ticks
}
