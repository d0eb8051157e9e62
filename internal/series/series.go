// Package series holds the image reconstruction quality metric series (MSE, PSNR, SSIM)
// and the shared sample index used to label them.
package series

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"fmt"
	"slices"
	"strings"
)

// Metric identifies one of the quality metrics
type Metric string

const (
	MetricMSE  Metric = "mse"
	MetricPSNR Metric = "psnr"
	MetricSSIM Metric = "ssim"
)

// Metrics lists the metrics in rendering order
var Metrics = []Metric{MetricMSE, MetricPSNR, MetricSSIM}

// Set holds one series per metric. The series are measured per sample, and
// sample i of each series is expected to describe the same reconstruction.
type Set struct {
	MSE  []float64 `yaml:"mse" json:"mse"`
	PSNR []float64 `yaml:"psnr" json:"psnr"`
	SSIM []float64 `yaml:"ssim" json:"ssim"`
}

// Values returns the series for the given metric. The slice is shared with the Set.
func (s Set) Values(metric Metric) []float64 {
	switch metric {
	case MetricMSE:
		return s.MSE
	case MetricPSNR:
		return s.PSNR
	case MetricSSIM:
		return s.SSIM
	}
	panic(fmt.Sprintf("unknown metric: %s", metric))
}

// Len returns the length of the longest series
func (s Set) Len() int {
	return max(len(s.MSE), len(s.PSNR), len(s.SSIM))
}

// Labels returns the sample index sequence shared by all charts, sized to the longest series.
func (s Set) Labels() []int {
	return SampleIndex(len(s.MSE), len(s.PSNR), len(s.SSIM))
}

// Clone returns a deep copy of the set
func (s Set) Clone() Set {
	return Set{
		MSE:  slices.Clone(s.MSE),
		PSNR: slices.Clone(s.PSNR),
		SSIM: slices.Clone(s.SSIM),
	}
}

// Validate returns a *LengthMismatchError if the series do not all have the same length.
func (s Set) Validate() error {
	lengths := map[Metric]int{
		MetricMSE:  len(s.MSE),
		MetricPSNR: len(s.PSNR),
		MetricSSIM: len(s.SSIM),
	}
	n := lengths[MetricMSE]
	for _, metric := range Metrics {
		if lengths[metric] != n {
			return &LengthMismatchError{Lengths: lengths}
		}
	}
	return nil
}

// SampleIndex returns 1..N where N is the largest of the given lengths
func SampleIndex(lengths ...int) []int {
	n := 0
	for _, l := range lengths {
		n = max(n, l)
	}
	labels := make([]int, n)
	for i := range labels {
		labels[i] = i + 1
	}
	return labels
}

// LengthMismatchError reports series of differing lengths
type LengthMismatchError struct {
	Lengths map[Metric]int
}

func (e *LengthMismatchError) Error() string {
	parts := make([]string, 0, len(Metrics))
	for _, metric := range Metrics {
		parts = append(parts, fmt.Sprintf("%s=%d", metric, e.Lengths[metric]))
	}
	return "metric series lengths differ: " + strings.Join(parts, ", ")
}
