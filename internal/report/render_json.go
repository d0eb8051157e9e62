package report

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import "encoding/json"

// jsonBuilder writes the render calls, in order, as they were received
type jsonBuilder struct {
	invocations
}

func (b *jsonBuilder) Format() string {
	return FormatJson
}

func (b *jsonBuilder) Finish() ([]Output, error) {
	charts := b.charts
	if charts == nil {
		charts = []invocation{}
	}
	out, err := json.MarshalIndent(charts, "", " ")
	if err != nil {
		return nil, err
	}
	return []Output{{Name: BaseName + "." + FormatJson, Bytes: out}}, nil
}
