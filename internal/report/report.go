// Package report provides chart renderers that produce the charts in various formats such as html, png, svg, xlsx, json, txt, prom.
package report

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"reconcharts/internal/chart"

	mapset "github.com/deckarep/golang-set/v2"
)

const (
	FormatHtml = "html"
	FormatPng  = "png"
	FormatSvg  = "svg"
	FormatXlsx = "xlsx"
	FormatJson = "json"
	FormatTxt  = "txt"
	FormatProm = "prom"
	FormatAll  = "all"
)

var FormatOptions = []string{FormatHtml, FormatPng, FormatSvg, FormatXlsx, FormatJson, FormatTxt, FormatProm}

// BaseName is the file name, without extension, of the formats that hold all charts in one file
const BaseName = "charts"

const (
	DefaultTitle  = "Reconstruction Quality"
	DefaultWidth  = 900
	DefaultHeight = 450
)

// Options apply to all builders. Zero values select the defaults.
type Options struct {
	Title  string // page or workbook title
	Width  int    // image width in pixels
	Height int    // image height in pixels
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	return o
}

// Output is one file produced by a builder
type Output struct {
	Name  string
	Bytes []byte
}

// Builder is a chart.Renderer that collects the rendered charts.
// Finish produces the output files, after all Render calls.
type Builder interface {
	chart.Renderer
	Format() string
	Finish() ([]Output, error)
}

// NewBuilder returns the builder for the given format
func NewBuilder(format string, options Options) (Builder, error) {
	options = options.withDefaults()
	switch format {
	case FormatHtml:
		return &htmlBuilder{options: options}, nil
	case FormatPng:
		return newImageBuilder(FormatPng, options), nil
	case FormatSvg:
		return newImageBuilder(FormatSvg, options), nil
	case FormatXlsx:
		return &xlsxBuilder{options: options}, nil
	case FormatJson:
		return &jsonBuilder{}, nil
	case FormatTxt:
		return &textBuilder{}, nil
	case FormatProm:
		return &promBuilder{}, nil
	}
	return nil, fmt.Errorf("expected one of %s, got %s", strings.Join(FormatOptions, ", "), format)
}

// ExpandFormats replaces "all" with every format and removes duplicates, keeping the order given
func ExpandFormats(formats []string) ([]string, error) {
	known := mapset.NewSet(FormatOptions...)
	seen := mapset.NewSet[string]()
	var expanded []string
	for _, format := range formats {
		candidates := []string{format}
		if format == FormatAll {
			candidates = FormatOptions
		} else if !known.Contains(format) {
			return nil, fmt.Errorf("format options are: %s", strings.Join(append([]string{FormatAll}, FormatOptions...), ", "))
		}
		for _, candidate := range candidates {
			if seen.Add(candidate) {
				expanded = append(expanded, candidate)
			}
		}
	}
	return expanded, nil
}

var rxSurface = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// invocation is one Render call
type invocation struct {
	Surface string        `json:"surface"`
	Type    chart.Type    `json:"type"`
	Data    chart.Data    `json:"data"`
	Options chart.Options `json:"options"`
}

// invocations records Render calls for the builders
type invocations struct {
	charts []invocation
}

func (i *invocations) Render(surface string, chartType chart.Type, data chart.Data, options chart.Options) error {
	if chartType != chart.TypeLine {
		return fmt.Errorf("unsupported chart type: %s", chartType)
	}
	if !rxSurface.MatchString(surface) {
		return fmt.Errorf("invalid surface identifier: %q", surface)
	}
	if slices.ContainsFunc(i.charts, func(c invocation) bool { return c.Surface == surface }) {
		return fmt.Errorf("surface %s already holds a chart", surface)
	}
	slog.Debug("chart received", slog.String("surface", surface), slog.Int("labels", len(data.Labels)), slog.Int("datasets", len(data.Datasets)))
	i.charts = append(i.charts, invocation{Surface: surface, Type: chartType, Data: data, Options: options})
	return nil
}
