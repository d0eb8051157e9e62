package report

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const promMetricName = "reconcharts_sample_value"

// promBuilder writes the chart values in the Prometheus text format, e.g., for the
// node exporter textfile collector
type promBuilder struct {
	invocations
}

func (b *promBuilder) Format() string {
	return FormatProm
}

func (b *promBuilder) Finish() ([]Output, error) {
	registry := prometheus.NewRegistry()
	gaugeVec := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: promMetricName,
			Help: "Charted value of a dataset at a sample index",
		},
		[]string{"chart", "dataset", "sample"},
	)
	if err := registry.Register(gaugeVec); err != nil {
		return nil, err
	}
	for _, c := range b.charts {
		for _, dataset := range c.Data.Datasets {
			for i, value := range dataset.Data {
				if i >= len(c.Data.Labels) {
					break
				}
				gaugeVec.WithLabelValues(c.Surface, dataset.Label, strconv.Itoa(c.Data.Labels[i])).Set(value)
			}
		}
	}
	families, err := registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("failed to gather chart values: %w", err)
	}
	var buf bytes.Buffer
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(&buf, family); err != nil {
			return nil, fmt.Errorf("failed to encode chart values: %w", err)
		}
	}
	return []Output{{Name: BaseName + "." + FormatProm, Bytes: buf.Bytes()}}, nil
}
