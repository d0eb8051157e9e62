// Package check evaluates per-sample consistency rules over the metric series.
package check

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"fmt"
	"log/slog"
	"math"
	"os"

	"reconcharts/internal/series"

	"github.com/casbin/govaluate"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	// Peak is the maximum pixel value of the 8-bit images the metrics were measured on
	Peak = 255.0
	// Tolerance is the default allowed absolute difference in rule comparisons
	Tolerance = 0.01
)

// Rule is a boolean expression evaluated once per sample. Variables: mse, psnr, ssim, peak, tolerance.
type Rule struct {
	Name       string `yaml:"name"`
	Expression string `yaml:"expression"`
}

// DefaultRules hold for any run where PSNR was derived from MSE
var DefaultRules = []Rule{
	{Name: "psnr-matches-mse", Expression: "abs(psnr - 10 * log10(peak * peak / mse)) <= tolerance"},
	{Name: "ssim-in-range", Expression: "ssim >= -1 && ssim <= 1"},
}

// Result is the outcome of one rule for one sample
type Result struct {
	Rule   string
	Sample int // 1-based sample index
	Passed bool
}

// LoadRules reads a list of rules from a YAML file
func LoadRules(path string) ([]Rule, error) {
	content, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read rules file %s", path)
	}
	var rules []Rule
	if err := yaml.UnmarshalStrict(content, &rules); err != nil {
		return nil, errors.Wrapf(err, "failed to parse rules file %s", path)
	}
	if len(rules) == 0 {
		return nil, errors.Errorf("no rules found in %s", path)
	}
	for i, rule := range rules {
		if rule.Name == "" || rule.Expression == "" {
			return nil, errors.Errorf("rule %d in %s needs a name and an expression", i+1, path)
		}
	}
	return rules, nil
}

// Evaluate applies every rule to every sample of set. The series must have equal lengths.
func Evaluate(set series.Set, rules []Rule) ([]Result, error) {
	if err := set.Validate(); err != nil {
		return nil, err
	}
	functions := getEvaluatorFunctions()
	expressions := make([]*govaluate.EvaluableExpression, len(rules))
	for i, rule := range rules {
		var err error
		if expressions[i], err = govaluate.NewEvaluableExpressionWithFunctions(rule.Expression, functions); err != nil {
			slog.Error("failed to create evaluable expression for rule", slog.String("error", err.Error()), slog.String("name", rule.Name), slog.String("expression", rule.Expression))
			return nil, errors.Wrapf(err, "invalid expression for rule %s", rule.Name)
		}
	}
	var results []Result
	for sample := range set.Len() {
		parameters := map[string]any{
			"mse":       set.MSE[sample],
			"psnr":      set.PSNR[sample],
			"ssim":      set.SSIM[sample],
			"peak":      Peak,
			"tolerance": Tolerance,
		}
		for i, expression := range expressions {
			value, err := expression.Evaluate(parameters)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to evaluate rule %s at sample %d", rules[i].Name, sample+1)
			}
			passed, ok := value.(bool)
			if !ok {
				return nil, errors.Errorf("rule %s did not evaluate to true or false, got %v", rules[i].Name, value)
			}
			results = append(results, Result{Rule: rules[i].Name, Sample: sample + 1, Passed: passed})
		}
	}
	return results, nil
}

// Failures returns the results that did not pass
func Failures(results []Result) []Result {
	var failed []Result
	for _, result := range results {
		if !result.Passed {
			failed = append(failed, result)
		}
	}
	return failed
}

// getEvaluatorFunctions defines functions that can be called in rule expressions
func getEvaluatorFunctions() (functions map[string]govaluate.ExpressionFunction) {
	functions = make(map[string]govaluate.ExpressionFunction)
	functions["abs"] = func(args ...any) (any, error) {
		v, err := floatArgs("abs", 1, args)
		if err != nil {
			return nil, err
		}
		return math.Abs(v[0]), nil
	}
	functions["log10"] = func(args ...any) (any, error) {
		v, err := floatArgs("log10", 1, args)
		if err != nil {
			return nil, err
		}
		return math.Log10(v[0]), nil
	}
	functions["min"] = func(args ...any) (any, error) {
		v, err := floatArgs("min", 2, args)
		if err != nil {
			return nil, err
		}
		return min(v[0], v[1]), nil
	}
	functions["max"] = func(args ...any) (any, error) {
		v, err := floatArgs("max", 2, args)
		if err != nil {
			return nil, err
		}
		return max(v[0], v[1]), nil
	}
	return
}

func floatArgs(name string, count int, args []any) ([]float64, error) {
	if len(args) != count {
		return nil, fmt.Errorf("%s expects %d argument(s), got %d", name, count, len(args))
	}
	values := make([]float64, count)
	for i, arg := range args {
		switch t := arg.(type) {
		case int:
			values[i] = float64(t)
		case float64:
			values[i] = t
		default:
			return nil, fmt.Errorf("%s expects numeric arguments, got %T", name, arg)
		}
	}
	return values, nil
}
