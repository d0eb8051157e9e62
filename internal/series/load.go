package series

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Record is the result of one reconstruction, as written by an attack run
type Record struct {
	MSE   float64 `yaml:"mse" json:"mse"`
	PSNR  float64 `yaml:"psnr" json:"psnr"`
	SSIM  float64 `yaml:"ssim" json:"ssim"`
	Noise float64 `yaml:"noise,omitempty" json:"noise,omitempty"` // gradient noise scale, informational only
}

// FromRecords transposes per-sample records into a Set, preserving order
func FromRecords(records []Record) Set {
	set := Set{
		MSE:  make([]float64, 0, len(records)),
		PSNR: make([]float64, 0, len(records)),
		SSIM: make([]float64, 0, len(records)),
	}
	for _, record := range records {
		set.MSE = append(set.MSE, record.MSE)
		set.PSNR = append(set.PSNR, record.PSNR)
		set.SSIM = append(set.SSIM, record.SSIM)
	}
	return set
}

// Load reads a Set from a YAML (.yaml, .yml) or JSON (.json) file.
// The file holds either one list per metric:
//
//	mse: [16841.2, 1374.7]
//	psnr: [5.86, 16.74]
//	ssim: [-0.004, 0.853]
//
// or a list of per-sample records, in which keys other than the metrics are ignored:
//
//	# results.yaml
//	- {mse: 16841.2, psnr: 5.86, ssim: -0.004}
//	- {mse: 1374.7, psnr: 16.74, ssim: 0.853}
func Load(path string) (Set, error) {
	content, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return Set{}, errors.Wrapf(err, "failed to read input file %s", path)
	}
	var set Set
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		set, err = parseYAML(content)
	case ".json":
		set, err = parseJSON(content)
	default:
		return Set{}, errors.Errorf("unsupported input file extension %q, expected .yaml, .yml, or .json", ext)
	}
	if err != nil {
		return Set{}, errors.Wrapf(err, "failed to parse input file %s", path)
	}
	if set.Len() == 0 {
		return Set{}, errors.Errorf("no samples found in input file %s", path)
	}
	if err := checkFinite(set); err != nil {
		return Set{}, errors.Wrapf(err, "invalid input file %s", path)
	}
	slog.Debug("loaded metric series", slog.String("path", path), slog.Int("mse", len(set.MSE)), slog.Int("psnr", len(set.PSNR)), slog.Int("ssim", len(set.SSIM)))
	return set, nil
}

func parseYAML(content []byte) (Set, error) {
	var probe any
	if err := yaml.Unmarshal(content, &probe); err != nil {
		return Set{}, err
	}
	if _, ok := probe.([]any); ok {
		// attack runs write extra per-sample keys, e.g., image and predicted_label
		var records []Record
		if err := yaml.Unmarshal(content, &records); err != nil {
			return Set{}, err
		}
		return FromRecords(records), nil
	}
	var set Set
	if err := yaml.UnmarshalStrict(content, &set); err != nil {
		return Set{}, err
	}
	return set, nil
}

func parseJSON(content []byte) (Set, error) {
	trimmed := bytes.TrimSpace(content)
	if bytes.HasPrefix(trimmed, []byte("[")) {
		var records []Record
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return Set{}, err
		}
		return FromRecords(records), nil
	}
	var set Set
	if err := json.Unmarshal(trimmed, &set); err != nil {
		return Set{}, err
	}
	return set, nil
}

// checkFinite rejects NaN and infinite values, e.g., the PSNR of a perfect reconstruction
func checkFinite(set Set) error {
	for _, metric := range Metrics {
		for i, v := range set.Values(metric) {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return errors.Errorf("%s value at sample %d is not a finite number: %v", metric, i+1, v)
			}
		}
	}
	return nil
}
