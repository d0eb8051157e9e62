package report

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	xlsxChartCell   = "D2"
	xlsxChartWidth  = 720
	xlsxChartHeight = 360
)

// xlsxBuilder writes one sheet per chart holding the values and a native line chart
type xlsxBuilder struct {
	invocations
	options Options
}

func (b *xlsxBuilder) Format() string {
	return FormatXlsx
}

func cellName(col int, row int) (name string) {
	columnName, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return
	}
	name, err = excelize.JoinCellName(columnName, row)
	if err != nil {
		return
	}
	return
}

func (b *xlsxBuilder) Finish() ([]Output, error) {
	f := excelize.NewFile()
	defer f.Close()
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
	})
	if err != nil {
		return nil, err
	}
	for i, c := range b.charts {
		sheetName := c.Surface
		if i == 0 {
			err = f.SetSheetName("Sheet1", sheetName)
		} else {
			_, err = f.NewSheet(sheetName)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create sheet %s: %w", sheetName, err)
		}
		if err := b.renderSheet(f, sheetName, c, headerStyle); err != nil {
			return nil, fmt.Errorf("failed to render %s chart: %w", c.Surface, err)
		}
	}
	if err := f.SetDocProps(&excelize.DocProperties{Title: b.options.Title}); err != nil {
		return nil, err
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return []Output{{Name: BaseName + "." + FormatXlsx, Bytes: buf.Bytes()}}, nil
}

func (b *xlsxBuilder) renderSheet(f *excelize.File, sheetName string, c invocation, headerStyle int) error {
	xTitle := c.Options.Scales.X.Title.Text
	if xTitle == "" {
		xTitle = "Sample"
	}
	row := 1
	_ = f.SetCellValue(sheetName, cellName(1, row), xTitle)
	for col, dataset := range c.Data.Datasets {
		_ = f.SetCellValue(sheetName, cellName(col+2, row), dataset.Label)
	}
	_ = f.SetCellStyle(sheetName, cellName(1, row), cellName(len(c.Data.Datasets)+1, row), headerStyle)
	for i, label := range c.Data.Labels {
		row = i + 2
		_ = f.SetCellValue(sheetName, cellName(1, row), label)
		for col, dataset := range c.Data.Datasets {
			// shorter series leave their trailing cells empty
			if i < len(dataset.Data) {
				_ = f.SetCellValue(sheetName, cellName(col+2, row), dataset.Data[i])
			}
		}
	}
	if len(c.Data.Labels) == 0 {
		return nil
	}
	lastRow := len(c.Data.Labels) + 1
	var chartSeries []excelize.ChartSeries
	for col, dataset := range c.Data.Datasets {
		stroke, err := parseColor(dataset.BorderColor)
		if err != nil {
			return err
		}
		columnName, err := excelize.ColumnNumberToName(col + 2)
		if err != nil {
			return err
		}
		chartSeries = append(chartSeries, excelize.ChartSeries{
			Name:       fmt.Sprintf("%s!$%s$1", sheetName, columnName),
			Categories: fmt.Sprintf("%s!$A$2:$A$%d", sheetName, lastRow),
			Values:     fmt.Sprintf("%s!$%s$2:$%s$%d", sheetName, columnName, columnName, lastRow),
			Fill:       excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{fmt.Sprintf("%02X%02X%02X", stroke.R, stroke.G, stroke.B)}},
			Line:       excelize.ChartLine{Smooth: dataset.Tension > 0, Width: 2},
		})
	}
	xlsxChart := &excelize.Chart{
		Type:   excelize.Line,
		Series: chartSeries,
		XAxis: excelize.ChartAxis{
			Title: []excelize.RichTextRun{{Text: xTitle}},
		},
		YAxis: excelize.ChartAxis{
			Minimum: c.Options.Scales.Y.Min,
			Maximum: c.Options.Scales.Y.Max,
		},
		Dimension: excelize.ChartDimension{Width: xlsxChartWidth, Height: xlsxChartHeight},
	}
	if c.Options.Plugins.Title.Display {
		xlsxChart.Title = []excelize.RichTextRun{{Text: c.Options.Plugins.Title.Text}}
	}
	if c.Options.Scales.Y.Title.Display {
		xlsxChart.YAxis.Title = []excelize.RichTextRun{{Text: c.Options.Scales.Y.Title.Text}}
	}
	if !c.Options.Plugins.Legend.Display {
		xlsxChart.Legend = excelize.ChartLegend{Position: "none"}
	}
	return f.AddChart(sheetName, xlsxChartCell, xlsxChart)
}
