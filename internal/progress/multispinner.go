// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

/*
Package progress provides a CLI progress indicator with one line per task.
*/
package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

var spinChars []string = []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}

// StatusFunc updates the status shown for a labelled task
type StatusFunc func(label string, status string) error

type spinnerState struct {
	label       string
	status      string
	statusIsNew bool
	spinIndex   int
}

// MultiSpinner draws one spinner line per task. On a terminal the lines are
// redrawn in place, otherwise only status changes are written.
type MultiSpinner struct {
	mu         sync.Mutex
	out        io.Writer
	isTerminal bool
	interval   time.Duration
	spinners   []spinnerState
	ticker     *time.Ticker
	done       chan struct{}
	spinning   bool
}

// NewMultiSpinner creates a MultiSpinner that writes to stderr
func NewMultiSpinner() *MultiSpinner {
	return NewMultiSpinnerWriter(os.Stderr)
}

// NewMultiSpinnerWriter creates a MultiSpinner that writes to out
func NewMultiSpinnerWriter(out io.Writer) *MultiSpinner {
	ms := &MultiSpinner{out: out, interval: 250 * time.Millisecond}
	if f, ok := out.(*os.File); ok {
		ms.isTerminal = term.IsTerminal(int(f.Fd())) // #nosec G115
	}
	return ms
}

// AddSpinner adds a task line. Labels must be unique.
func (ms *MultiSpinner) AddSpinner(label string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	for _, spinner := range ms.spinners {
		if spinner.label == label {
			return fmt.Errorf("spinner with label %s already exists", label)
		}
	}
	ms.spinners = append(ms.spinners, spinnerState{label: label, status: "?"})
	return nil
}

// Start draws the spinners and begins redrawing them on each tick
func (ms *MultiSpinner) Start() {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if ms.spinning {
		return
	}
	ms.draw(true)
	ms.ticker = time.NewTicker(ms.interval)
	ms.done = make(chan struct{})
	ms.spinning = true
	go ms.onTick(ms.ticker, ms.done)
}

// Finish stops the spinners and draws their final state
func (ms *MultiSpinner) Finish() {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if !ms.spinning {
		return
	}
	ms.ticker.Stop()
	close(ms.done)
	ms.draw(false)
	ms.spinning = false
}

// Status sets the status of the task with label
func (ms *MultiSpinner) Status(label string, status string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	for i, spinner := range ms.spinners {
		if spinner.label == label {
			if status != spinner.status {
				ms.spinners[i].status = status
				ms.spinners[i].statusIsNew = true
			}
			return nil
		}
	}
	return fmt.Errorf("did not find spinner with label %s", label)
}

func (ms *MultiSpinner) onTick(ticker *time.Ticker, done chan struct{}) {
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			ms.mu.Lock()
			if ms.spinning {
				ms.draw(true)
			}
			ms.mu.Unlock()
		}
	}
}

// draw must be called with mu held
func (ms *MultiSpinner) draw(goUp bool) {
	for i, spinner := range ms.spinners {
		if !ms.isTerminal && !spinner.statusIsNew {
			continue
		}
		fmt.Fprintf(ms.out, "%-20s  %s  %-40s\n", spinner.label, spinChars[spinner.spinIndex], spinner.status)
		ms.spinners[i].statusIsNew = false
		ms.spinners[i].spinIndex = (spinner.spinIndex + 1) % len(spinChars)
	}
	if goUp && ms.isTerminal {
		for range ms.spinners {
			fmt.Fprintf(ms.out, "\x1b[1A")
		}
	}
}
