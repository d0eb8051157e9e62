// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/pprof"

	"reconcharts/cmd"
)

// profileEnv names the directory that receives cpu.prof and mem.prof, profiling is off when unset
const profileEnv = "RECONCHARTS_PROFILE"

func main() {
	if dir := os.Getenv(profileEnv); dir != "" {
		stop, err := startProfiling(dir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to start profiling: %v\n", err)
			os.Exit(1)
		}
		defer stop()
	}
	cmd.Execute()
}

// startProfiling starts CPU profiling into dir. The returned function stops it and writes the heap profile.
func startProfiling(dir string) (func(), error) {
	if dir == "1" || dir == "true" {
		dir = "."
	}
	cpuPath := filepath.Join(dir, "cpu.prof")
	memPath := filepath.Join(dir, "mem.prof")
	cpuFile, err := os.Create(cpuPath) // #nosec G304
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(cpuFile); err != nil {
		cpuFile.Close()
		return nil, err
	}
	return func() {
		pprof.StopCPUProfile()
		cpuFile.Close()
		memFile, err := os.Create(memPath) // #nosec G304
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to create heap profile: %v\n", err)
			return
		}
		defer memFile.Close()
		if err := pprof.WriteHeapProfile(memFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to write heap profile: %v\n", err)
			return
		}
		fmt.Printf("Profiling data written to %s and %s\n", cpuPath, memPath)
		fmt.Printf("To analyze, use:\n")
		fmt.Printf("  go tool pprof %s\n", cpuPath)
		fmt.Printf("  go tool pprof -http=:8080 %s\n", memPath)
	}, nil
}
