package report

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"strings"
	texttemplate "text/template" // nosemgrep
)

const lineChartTemplate = `<div class="chart-container" style="max-width: 900px">
<canvas id="{{.ID}}"></canvas>
</div>
<script>
new Chart(document.getElementById('{{.ID}}'), {{.Config}});
</script>
`

// chartConfig is the second argument of the Chart constructor
type chartConfig struct {
	Type    string `json:"type"`
	Data    any    `json:"data"`
	Options any    `json:"options"`
}

type htmlBuilder struct {
	invocations
	options Options
}

func (b *htmlBuilder) Format() string {
	return FormatHtml
}

func (b *htmlBuilder) Finish() ([]Output, error) {
	var sb strings.Builder
	sb.WriteString(getHtmlReportBegin(b.options.Title))
	sb.WriteString("<body>\n")
	sb.WriteString("<main class=\"content\">\n")
	sb.WriteString(b.getHtmlReportMenu())
	sb.WriteString("<div id=\"myCharts\">\n")
	sb.WriteString(fmt.Sprintf("<h1>%s</h1>\n", html.EscapeString(b.options.Title)))
	sb.WriteString(`
<noscript>
	<h3>JavaScript is disabled. Charts cannot be displayed.</h3>
</noscript>
`)
	tmpl := texttemplate.Must(texttemplate.New("lineChartTemplate").Parse(lineChartTemplate))
	for _, c := range b.charts {
		// encoding/json escapes <, >, and & so the config cannot close the script element
		config, err := json.Marshal(chartConfig{Type: string(c.Type), Data: c.Data, Options: c.Options})
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s chart config: %w", c.Surface, err)
		}
		buf := new(bytes.Buffer)
		err = tmpl.Execute(buf, struct {
			ID     string
			Config string
		}{
			ID:     c.Surface,
			Config: string(config),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to render %s chart: %w", c.Surface, err)
		}
		sb.WriteString(buf.String())
	}
	sb.WriteString("</div>\n") // end of myCharts
	sb.WriteString("</main>\n")
	sb.WriteString("</body>\n")
	sb.WriteString("</html>\n")
	return []Output{{Name: BaseName + "." + FormatHtml, Bytes: []byte(sb.String())}}, nil
}

func getHtmlReportBegin(title string) string {
	var sb strings.Builder
	sb.WriteString(`<!DOCTYPE html>
<html lang="en">
`)
	sb.WriteString("<head>\n")
	sb.WriteString(fmt.Sprintf(`    <meta charset="UTF-8">
    <title>%s</title>
    <meta name="viewport" content="width=device-width, initial-scale=1">
`, html.EscapeString(title)))
	// link the style sheets and javascript
	sb.WriteString(`
    <link rel="stylesheet" href="https://unpkg.com/normalize.css@8.0.1/normalize.css" integrity="sha384-M86HUGbBFILBBZ9ykMAbT3nVb0+2C7yZlF8X2CiKNpDOQjKroMJqIeGZ/Le8N2Qp" crossorigin="anonymous" referrerpolicy="no-referrer" />
    <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/purecss@3.0.0/build/pure-min.css" integrity="sha384-X38yfunGUhNzHpBaEBsWLO+A0HDYOQi8ufWDkZ0k9e0eXz/tH3II7uKZ9msv++Ls" crossorigin="anonymous" referrerpolicy="no-referrer" />
    <script src="https://unpkg.com/chart.js@3.7.1/dist/chart.min.js" integrity="sha384-7NrRHqlWUj2hJl3a/dZj/a1GxuQc56mJ3aYsEnydBYrY1jR+RSt6SBvK3sHfj+mJ" crossorigin="anonymous"  referrerpolicy="no-referrer"></script>
`)
	sb.WriteString(`
	<style>
        .content {
            padding: 0 2em;
            line-height: 1.6em;
        }
        .menu a {
            padding-right: 1em;
            color: #1f8dd6;
        }
        .chart-container {
            margin-bottom: 2em;
        }
	</style>
`)
	sb.WriteString("</head>\n")
	return sb.String()
}

// getHtmlReportMenu links to each chart, labelled with the chart title
func (b *htmlBuilder) getHtmlReportMenu() string {
	if len(b.charts) < 2 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("<nav class=\"menu\">\n")
	for _, c := range b.charts {
		label := c.Options.Plugins.Title.Text
		if label == "" {
			label = c.Surface
		}
		sb.WriteString(fmt.Sprintf("<a href=\"#%s\">%s</a>\n", html.EscapeString(c.Surface), html.EscapeString(label)))
	}
	sb.WriteString("</nav>\n")
	return sb.String()
}
