package report

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	NoDataFound   = "No data found."
	columnSpacing = 3
)

// textBuilder writes each chart as a table of sample index and values
type textBuilder struct {
	invocations
}

func (b *textBuilder) Format() string {
	return FormatTxt
}

func (b *textBuilder) Finish() ([]Output, error) {
	var sb strings.Builder
	for _, c := range b.charts {
		sb.WriteString(renderTextChart(c))
		sb.WriteString("\n")
	}
	return []Output{{Name: BaseName + "." + FormatTxt, Bytes: []byte(sb.String())}}, nil
}

func renderTextChart(c invocation) string {
	var sb strings.Builder
	name := c.Options.Plugins.Title.Text
	if name == "" {
		name = c.Surface
	}
	sb.WriteString(name + "\n")
	sb.WriteString(strings.Repeat("=", len(name)) + "\n")
	if len(c.Data.Labels) == 0 || len(c.Data.Datasets) == 0 {
		sb.WriteString(NoDataFound + "\n")
		return sb.String()
	}
	yAxis := c.Options.Scales.Y
	if yAxis.Bounded() {
		sb.WriteString(fmt.Sprintf("Y Axis: %s (%g to %g)\n", yAxis.Title.Text, *yAxis.Min, *yAxis.Max))
	}
	// use printer to get commas at thousands, e.g., 16,841.2152
	p := message.NewPrinter(language.English)
	headers := []string{c.Options.Scales.X.Title.Text}
	if headers[0] == "" {
		headers[0] = "Sample"
	}
	columns := [][]string{{}}
	for _, label := range c.Data.Labels {
		columns[0] = append(columns[0], strconv.Itoa(label))
	}
	for _, dataset := range c.Data.Datasets {
		headers = append(headers, dataset.Label)
		values := make([]string, len(c.Data.Labels))
		for i := range values {
			if i < len(dataset.Data) {
				values[i] = p.Sprintf("%.4f", dataset.Data[i])
			}
		}
		columns = append(columns, values)
	}
	// the last column shouldn't occupy more space than the value
	widths := make([]int, len(headers))
	for col := range len(headers) - 1 {
		widths[col] = len(headers[col])
		for _, value := range columns[col] {
			widths[col] = max(widths[col], len(value))
		}
	}
	for col, header := range headers {
		sb.WriteString(fmt.Sprintf("%-*s", widths[col]+columnSpacing, header))
	}
	sb.WriteString("\n")
	for col, header := range headers {
		sb.WriteString(fmt.Sprintf("%-*s", widths[col]+columnSpacing, strings.Repeat("-", len(header))))
	}
	sb.WriteString("\n")
	for row := range c.Data.Labels {
		for col := range headers {
			sb.WriteString(fmt.Sprintf("%-*s", widths[col]+columnSpacing, columns[col][row]))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
