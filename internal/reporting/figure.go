package reporting

import "encoding/json"

// Figure is a Plotly figure: traces plus layout, serialized as Plotly JSON.
type Figure struct {
	Data   []*Trace `json:"data"`
	Layout *Layout  `json:"layout"`
}

// Trace is one Plotly trace. Only the attributes used by the report are modelled.
type Trace struct {
	Type       string     `json:"type"`
	Name       string     `json:"name,omitempty"`
	X          []string   `json:"x"`
	Y          any        `json:"y,omitempty"`
	Open       []float64  `json:"open,omitempty"`
	High       []float64  `json:"high,omitempty"`
	Low        []float64  `json:"low,omitempty"`
	Close      []float64  `json:"close,omitempty"`
	Mode       string     `json:"mode,omitempty"`
	Line       *Line      `json:"line,omitempty"`
	Marker     *Marker    `json:"marker,omitempty"`
	Increasing *Direction `json:"increasing,omitempty"`
	Decreasing *Direction `json:"decreasing,omitempty"`
	XAxis      string     `json:"xaxis,omitempty"`
	YAxis      string     `json:"yaxis,omitempty"`
	ShowLegend *bool      `json:"showlegend,omitempty"`
	HoverInfo  string     `json:"hoverinfo,omitempty"`
	Text       string     `json:"text,omitempty"`
}

// Line styles a line trace or a candlestick direction.
type Line struct {
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width,omitempty"`
	Dash  string  `json:"dash,omitempty"`
}

// Marker styles bars.
type Marker struct {
	Color string `json:"color,omitempty"`
}

// Direction styles increasing or decreasing candles.
type Direction struct {
	Line *Line `json:"line,omitempty"`
}

// Font styles text.
type Font struct {
	Color string  `json:"color,omitempty"`
	Size  float64 `json:"size,omitempty"`
}

// Title is a layout or axis title.
type Title struct {
	Text string `json:"text"`
}

// Margin is the plot margin in pixels.
type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

// Legend positions the legend.
type Legend struct {
	Orientation string  `json:"orientation,omitempty"`
	X           float64 `json:"x"`
	XAnchor     string  `json:"xanchor,omitempty"`
	Y           float64 `json:"y"`
	YAnchor     string  `json:"yanchor,omitempty"`
}

// RangeSlider toggles the range slider under an x axis.
type RangeSlider struct {
	Visible bool `json:"visible"`
}

// Axis is a Plotly cartesian axis.
type Axis struct {
	Domain         []float64    `json:"domain,omitempty"`
	Anchor         string       `json:"anchor,omitempty"`
	Matches        string       `json:"matches,omitempty"`
	Overlaying     string       `json:"overlaying,omitempty"`
	Side           string       `json:"side,omitempty"`
	Type           string       `json:"type,omitempty"`
	Title          *Title       `json:"title,omitempty"`
	Range          []float64    `json:"range,omitempty"`
	ShowTickLabels *bool        `json:"showticklabels,omitempty"`
	ShowGrid       *bool        `json:"showgrid,omitempty"`
	CategoryOrder  string       `json:"categoryorder,omitempty"`
	CategoryArray  []string     `json:"categoryarray,omitempty"`
	RangeSlider    *RangeSlider `json:"rangeslider,omitempty"`
	GridColor      string       `json:"gridcolor,omitempty"`
	ZeroLineColor  string       `json:"zerolinecolor,omitempty"`
}

// Shape is a layout shape; the report uses rectangles for strategy bands.
type Shape struct {
	Type      string  `json:"type"`
	XRef      string  `json:"xref"`
	YRef      string  `json:"yref"`
	X0        string  `json:"x0"`
	X1        string  `json:"x1"`
	Y0        float64 `json:"y0"`
	Y1        float64 `json:"y1"`
	FillColor string  `json:"fillcolor,omitempty"`
	Opacity   float64 `json:"opacity,omitempty"`
	Layer     string  `json:"layer,omitempty"`
	Line      *Line   `json:"line,omitempty"`
}

// Annotation is a text label placed on the figure.
type Annotation struct {
	Text      string  `json:"text"`
	X         any     `json:"x"`
	Y         float64 `json:"y"`
	XRef      string  `json:"xref"`
	YRef      string  `json:"yref"`
	XAnchor   string  `json:"xanchor,omitempty"`
	YAnchor   string  `json:"yanchor,omitempty"`
	ShowArrow bool    `json:"showarrow"`
	Font      *Font   `json:"font,omitempty"`
}

// Layout is the Plotly layout. Axes are keyed by their layout name
// ("xaxis", "xaxis2", "yaxis3", ...) and flattened into the layout object.
type Layout struct {
	Title        *Title           `json:"title,omitempty"`
	Font         *Font            `json:"font,omitempty"`
	PaperBgColor string           `json:"paper_bgcolor,omitempty"`
	PlotBgColor  string           `json:"plot_bgcolor,omitempty"`
	BarGap       float64          `json:"bargap,omitempty"`
	Height       int              `json:"height,omitempty"`
	Width        int              `json:"width,omitempty"`
	Margin       *Margin          `json:"margin,omitempty"`
	Legend       *Legend          `json:"legend,omitempty"`
	Shapes       []*Shape         `json:"shapes,omitempty"`
	Annotations  []*Annotation    `json:"annotations,omitempty"`
	Axes         map[string]*Axis `json:"-"`
}

// MarshalJSON writes the layout with its axes as top-level keys.
func (l *Layout) MarshalJSON() ([]byte, error) {
	type plain Layout
	raw, err := json.Marshal((*plain)(l))
	if err != nil {
		return nil, err
	}
	if len(l.Axes) == 0 {
		return raw, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	for name, axis := range l.Axes {
		b, err := json.Marshal(axis)
		if err != nil {
			return nil, err
		}
		fields[name] = b
	}
	return json.Marshal(fields)
}

func boolPtr(b bool) *bool {
	return &b
}
