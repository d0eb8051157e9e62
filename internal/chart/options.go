package chart

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

// options.go defines the chart options record, the shared base options, and the per-chart overlay.

const (
	InteractionModeIndex = "index"
	XAxisTitle           = "Sample Index"
)

// Options are the chart options. JSON keys match the Chart.js option keys.
type Options struct {
	Responsive  bool        `json:"responsive"`
	Interaction Interaction `json:"interaction"`
	Scales      Scales      `json:"scales"`
	Plugins     Plugins     `json:"plugins"`
}

// Interaction controls which points are reported on hover
type Interaction struct {
	Mode      string `json:"mode"`
	Intersect bool   `json:"intersect"`
}

type Scales struct {
	X Axis `json:"x"`
	Y Axis `json:"y"`
}

// Axis configures one axis. Min and Max are nil when the axis autoscales.
type Axis struct {
	BeginAtZero bool     `json:"beginAtZero,omitempty"`
	Title       Title    `json:"title"`
	Min         *float64 `json:"min,omitempty"`
	Max         *float64 `json:"max,omitempty"`
}

// Bounded reports whether both axis bounds are fixed
func (a Axis) Bounded() bool {
	return a.Min != nil && a.Max != nil
}

type Title struct {
	Display bool   `json:"display"`
	Text    string `json:"text,omitempty"`
}

type Plugins struct {
	Title  Title  `json:"title"`
	Legend Legend `json:"legend"`
}

type Legend struct {
	Display bool `json:"display"`
}

// BaseOptions returns the options shared by every chart: responsive, nearest-by-index
// interaction without intersection, a titled x axis, a zero-based y axis, and no legend.
func BaseOptions() Options {
	return Options{
		Responsive: true,
		Interaction: Interaction{
			Mode:      InteractionModeIndex,
			Intersect: false,
		},
		Scales: Scales{
			X: Axis{
				Title: Title{Display: true, Text: XAxisTitle},
			},
			Y: Axis{
				BeginAtZero: true,
				Title:       Title{Display: true},
			},
		},
		Plugins: Plugins{
			Legend: Legend{Display: false},
		},
	}
}

// Overrides are the chart specific parts of the options
type Overrides struct {
	Title      string
	YAxisLabel string
	YMin       *float64 // fixed y axis bounds, set both or neither
	YMax       *float64
}

// Overlay returns a copy of o with the overrides applied. o is not modified.
func (o Options) Overlay(over Overrides) Options {
	out := o
	out.Scales.X.Min = clonePtr(o.Scales.X.Min)
	out.Scales.X.Max = clonePtr(o.Scales.X.Max)
	out.Scales.Y.Min = clonePtr(o.Scales.Y.Min)
	out.Scales.Y.Max = clonePtr(o.Scales.Y.Max)
	if over.Title != "" {
		out.Plugins.Title = Title{Display: true, Text: over.Title}
	}
	if over.YAxisLabel != "" {
		out.Scales.Y.Title = Title{Display: true, Text: over.YAxisLabel}
	}
	if over.YMin != nil {
		out.Scales.Y.Min = clonePtr(over.YMin)
	}
	if over.YMax != nil {
		out.Scales.Y.Max = clonePtr(over.YMax)
	}
	return out
}

// Float returns a pointer to v, for use in Overrides
func Float(v float64) *float64 {
	return &v
}

func clonePtr(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
