// Package check is a subcommand of the root command. It evaluates consistency rules over the metric series.
package check

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"reconcharts/internal/app"
	checker "reconcharts/internal/check"
	"reconcharts/internal/series"
	"reconcharts/internal/util"

	"github.com/spf13/cobra"
)

const cmdName = "check"

var examples = []string{
	fmt.Sprintf("  Check the embedded data:            $ %s %s", app.Name, cmdName),
	fmt.Sprintf("  Check an attack run:                $ %s %s --input results.yaml", app.Name, cmdName),
	fmt.Sprintf("  Check an attack run with own rules: $ %s %s --input results.json --rules rules.yaml", app.Name, cmdName),
}

var Cmd = &cobra.Command{
	Use:           cmdName,
	Short:         "Check the metric series for per-sample consistency",
	Long:          "",
	Example:       strings.Join(examples, "\n"),
	RunE:          runCmd,
	PreRunE:       validateFlags,
	GroupID:       "primary",
	Args:          cobra.NoArgs,
	SilenceErrors: true,
}

var (
	flagInput string
	flagRules string
)

const flagRulesName = "rules"

func init() {
	Cmd.Flags().StringVar(&flagInput, app.FlagInputName, "", "")
	Cmd.Flags().StringVar(&flagRules, flagRulesName, "", "")

	Cmd.SetUsageFunc(app.UsageFunc(getFlagGroups))
}

func getFlagGroups() []app.FlagGroup {
	var ruleNames []string
	for _, rule := range checker.DefaultRules {
		ruleNames = append(ruleNames, rule.Name)
	}
	return []app.FlagGroup{
		{
			GroupName: "Options",
			Flags: []app.Flag{
				{
					Name: app.FlagInputName,
					Help: "\".yaml\" or \".json\" file holding the mse, psnr, and ssim series. Uses the embedded data when not set.",
				},
				{
					Name: flagRulesName,
					Help: fmt.Sprintf("\".yaml\" file holding a list of rules (name, expression). Default rules: %s", strings.Join(ruleNames, ", ")),
				},
			},
		},
	}
}

func validateFlags(cmd *cobra.Command, args []string) error {
	for _, path := range []string{flagInput, flagRules} {
		if path == "" {
			continue
		}
		exists, err := util.FileExists(path)
		if err != nil {
			return app.FlagValidationError(cmd, err.Error())
		}
		if !exists {
			return app.FlagValidationError(cmd, fmt.Sprintf("file does not exist: %s", path))
		}
	}
	return nil
}

func runCmd(cmd *cobra.Command, args []string) error {
	err := runCheck(cmd.OutOrStdout(), flagInput, flagRules)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		slog.Error(err.Error())
		cmd.SilenceUsage = true
	}
	return err
}

// runCheck evaluates the rules over the series and reports failing samples to out
func runCheck(out io.Writer, input string, rulesPath string) error {
	set := series.Embedded()
	if input != "" {
		var err error
		if set, err = series.Load(input); err != nil {
			return err
		}
	}
	rules := checker.DefaultRules
	if rulesPath != "" {
		var err error
		if rules, err = checker.LoadRules(rulesPath); err != nil {
			return err
		}
	}
	results, err := checker.Evaluate(set, rules)
	if err != nil {
		return err
	}
	failed := checker.Failures(results)
	slog.Info("checked series", slog.Int("samples", set.Len()), slog.Int("rules", len(rules)), slog.Int("failures", len(failed)))
	fmt.Fprintf(out, "Checked %d samples against %d rules\n", set.Len(), len(rules))
	for _, result := range failed {
		fmt.Fprintf(out, "  sample %d: %s failed\n", result.Sample, result.Rule)
	}
	if len(failed) > 0 {
		return fmt.Errorf("%d of %d checks failed", len(failed), len(results))
	}
	fmt.Fprintln(out, "All checks passed")
	return nil
}
