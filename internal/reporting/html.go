package reporting

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
)

// PlotlyCDN is the Plotly bundle referenced by generated reports.
const PlotlyCDN = "https://cdn.plot.ly/plotly-2.35.2.min.js"

const darkStyle = "body{background:#000;margin:0;color:#ddd;font-family:Arial,Helvetica,sans-serif}"

const plotDivID = "price-impact-report"

var pageTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>{{.Style}}</style>
<script src="{{.PlotlyURL}}" charset="utf-8"></script>
</head>
<body>
<div id="{{.DivID}}"></div>
<script>
var figure = {{.Figure}};
Plotly.newPlot({{.DivID}}, figure.data, figure.layout, {displaylogo: false});
</script>
</body>
</html>
`))

type page struct {
	Title     string
	Style     template.CSS
	PlotlyURL string
	DivID     string
	Figure    template.JS
}

// RenderHTML renders a standalone HTML document for the figure.
func RenderHTML(fig *Figure, title string) ([]byte, error) {
	// json.Marshal escapes <, > and &, so the payload cannot close the script element.
	payload, err := json.Marshal(fig)
	if err != nil {
		return nil, fmt.Errorf("marshal figure: %w", err)
	}

	var buf bytes.Buffer
	err = pageTemplate.Execute(&buf, page{
		Title:     title,
		Style:     template.CSS(darkStyle),
		PlotlyURL: PlotlyCDN,
		DivID:     plotDivID,
		Figure:    template.JS(payload),
	})
	if err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}
	return buf.Bytes(), nil
}
