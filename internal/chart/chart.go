// Package chart defines the chart configuration record handed to a charting library and
// the Renderer capability that consumes it.
package chart

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"fmt"
)

// Type is the chart type understood by the charting library
type Type string

const TypeLine Type = "line"

// Renderer renders one chart into the display surface identified by surface.
// Ownership of data and options passes to the renderer; callers do not reuse them.
type Renderer interface {
	Render(surface string, chartType Type, data Data, options Options) error
}

// RendererFunc adapts a function to the Renderer interface
type RendererFunc func(surface string, chartType Type, data Data, options Options) error

func (f RendererFunc) Render(surface string, chartType Type, data Data, options Options) error {
	return f(surface, chartType, data, options)
}

// Data is the labels and datasets of one chart
type Data struct {
	Labels   []int     `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Dataset is one plotted series and its styling
type Dataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BorderColor     string    `json:"borderColor"`
	BackgroundColor string    `json:"backgroundColor"`
	Tension         float64   `json:"tension"`
	Fill            bool      `json:"fill"`
}

// Color is an RGB colour
type Color struct {
	R, G, B uint8
}

// Stroke returns the CSS form used for line colours, e.g., rgb(75, 192, 192)
func (c Color) Stroke() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Fill returns the CSS form with transparency, e.g., rgba(75, 192, 192, 0.2)
func (c Color) Fill(alpha float64) string {
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", c.R, c.G, c.B, alpha)
}

// Hex returns the colour as #RRGGBB
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
