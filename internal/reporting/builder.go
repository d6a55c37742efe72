package reporting

import (
	"errors"
	"fmt"
	"time"

	"price-impact-report/internal/domain"
	"price-impact-report/internal/normalization"
)

// LayoutMode selects how strategy intervals are drawn.
type LayoutMode string

const (
	// LayoutTimeline adds a fourth row with one bar per strategy interval.
	LayoutTimeline LayoutMode = "timeline"
	// LayoutBands shades each interval across the whole plot area.
	LayoutBands LayoutMode = "bands"
)

// IsValid reports whether the layout mode is known.
func (m LayoutMode) IsValid() bool {
	return m == LayoutTimeline || m == LayoutBands
}

// ErrUnknownLayout is returned for layout modes other than timeline and bands.
var ErrUnknownLayout = errors.New("unknown layout")

const (
	plotTimeLayout  = "2006-01-02 15:04:05.999999"
	hoverTimeLayout = "15:04:05"

	figureWidth  = 1550
	figureHeight = 1000

	gridColor      = "#283442"
	increasingGrn  = "#26e665"
	decreasingRed  = "#ff4136"
	imbalanceColor = "#F5A623"
	buyBarColor    = "rgba(38,230,101,0.55)"
	sellBarColor   = "rgba(255,65,54,0.55)"
	buyPowerColor  = "#1f77b4"
	positionColor  = "#ff7f0e"
	pnlColor       = "#17becf"
	transparent    = "rgba(0,0,0,0)"

	timelineWidth  = 14
	bandOpacity    = 0.15
	volumeHeadroom = 1.1
)

// Options control figure construction.
type Options struct {
	Mode           LayoutMode
	Palette        Palette
	CandleInterval time.Duration
}

// FigureTitle returns the document and figure title for a run.
func FigureTitle(run domain.RunID) string {
	return fmt.Sprintf("PriceImpactSimulator – run %s", run)
}

// BuildFigure assembles the dashboard for one run.
func BuildFigure(ds *Dataset, opts Options) (*Figure, error) {
	if opts.Mode == "" {
		opts.Mode = LayoutTimeline
	}
	if !opts.Mode.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLayout, opts.Mode)
	}
	if opts.Palette == nil {
		opts.Palette = DefaultPalette
	}
	if opts.CandleInterval <= 0 {
		opts.CandleInterval = domain.DefaultCandleInterval
	}

	layout := baseLayout(ds.RunID)
	panels := []panel{
		{title: fmt.Sprintf("Price – %s candles", opts.CandleInterval), height: 0.40},
		{title: "Market depth & tape", height: 0.25, secondary: true},
		{title: "Strategy metrics", height: 0.23, secondary: true},
	}
	if opts.Mode == LayoutTimeline {
		panels = append(panels, panel{title: "Strategy timeline", height: 0.12})
	} else {
		panels[0].height = 0.45
		panels[1].height = 0.30
		panels[2].height = 0.25
	}
	rows := layoutPanels(layout, panels)
	layout.Axes[axisKey(rows[0].x)].RangeSlider = &RangeSlider{Visible: false}

	fig := &Figure{Layout: layout}
	fig.Data = append(fig.Data, candleTrace(ds.Candles, rows[0]))
	fig.Data = append(fig.Data, depthTraces(ds.Imbalance, ds.Volume, rows[1], layout)...)
	fig.Data = append(fig.Data, metricTraces(ds.Stats, rows[2])...)

	switch opts.Mode {
	case LayoutTimeline:
		fig.Data = append(fig.Data, timelineTraces(ds.Intervals, rows[3], layout, opts.Palette)...)
	case LayoutBands:
		addBands(layout, ds.Intervals, opts.Palette)
	}
	return fig, nil
}

func baseLayout(run domain.RunID) *Layout {
	return &Layout{
		Title:        &Title{Text: FigureTitle(run)},
		Font:         &Font{Color: "#f2f5fa"},
		PaperBgColor: "black",
		PlotBgColor:  "black",
		BarGap:       0.05,
		Height:       figureHeight,
		Width:        figureWidth,
		Margin:       &Margin{L: 60, R: 30, T: 60, B: 60},
		Legend: &Legend{
			Orientation: "h",
			X:           1,
			XAnchor:     "right",
			Y:           1.02,
			YAnchor:     "bottom",
		},
		Axes: make(map[string]*Axis),
	}
}

func candleTrace(candles []*domain.Candle, row panelAxes) *Trace {
	tr := &Trace{
		Type:       "candlestick",
		Name:       "Price",
		X:          make([]string, len(candles)),
		Open:       make([]float64, len(candles)),
		High:       make([]float64, len(candles)),
		Low:        make([]float64, len(candles)),
		Close:      make([]float64, len(candles)),
		Increasing: &Direction{Line: &Line{Color: increasingGrn}},
		Decreasing: &Direction{Line: &Line{Color: decreasingRed}},
		XAxis:      row.x,
		YAxis:      row.y,
		ShowLegend: boolPtr(false),
	}
	for i, c := range candles {
		tr.X[i] = formatTime(c.Start)
		tr.Open[i] = c.Open.InexactFloat64()
		tr.High[i] = c.High.InexactFloat64()
		tr.Low[i] = c.Low.InexactFloat64()
		tr.Close[i] = c.Close.InexactFloat64()
	}
	return tr
}

func depthTraces(imb []*domain.ImbalancePoint, vol []*domain.VolumeBucket, row panelAxes, layout *Layout) []*Trace {
	imbX := make([]string, len(imb))
	imbY := make([]*float64, len(imb))
	for i, p := range imb {
		imbX[i] = formatTime(p.Timestamp)
		imbY[i] = p.Value
	}

	volX := make([]string, len(vol))
	buys := make([]int64, len(vol))
	sells := make([]int64, len(vol))
	for i, b := range vol {
		volX[i] = formatTime(b.Start)
		buys[i] = b.BuyVolume
		sells[i] = -b.SellVolume
	}

	layout.Axes[axisKey(row.y)].Title = &Title{Text: "Imb."}
	if peak := normalization.MaxSideVolume(vol); peak > 0 {
		limit := float64(peak) * volumeHeadroom
		layout.Axes[axisKey(row.y2)].Range = []float64{-limit, limit}
	}

	return []*Trace{
		{
			Type:  "scatter",
			Name:  "Imbalance",
			Mode:  "lines",
			X:     imbX,
			Y:     imbY,
			Line:  &Line{Color: imbalanceColor, Width: 1.3},
			XAxis: row.x,
			YAxis: row.y,
		},
		{
			Type:   "bar",
			Name:   "Buy Vol",
			X:      volX,
			Y:      buys,
			Marker: &Marker{Color: buyBarColor},
			XAxis:  row.x,
			YAxis:  row.y2,
		},
		{
			Type:   "bar",
			Name:   "Sell Vol",
			X:      volX,
			Y:      sells,
			Marker: &Marker{Color: sellBarColor},
			XAxis:  row.x,
			YAxis:  row.y2,
		},
	}
}

func metricTraces(stats []*domain.StatsRecord, row panelAxes) []*Trace {
	x := make([]string, len(stats))
	buyPower := make([]float64, len(stats))
	position := make([]int64, len(stats))
	pnl := make([]float64, len(stats))
	for i, r := range stats {
		x[i] = formatTime(r.Timestamp)
		buyPower[i] = r.BuyPower.InexactFloat64()
		position[i] = r.Position
		pnl[i] = r.PnL.InexactFloat64()
	}

	return []*Trace{
		{
			Type:  "scatter",
			Name:  "Buy-Power €",
			Mode:  "lines",
			X:     x,
			Y:     buyPower,
			Line:  &Line{Color: buyPowerColor},
			XAxis: row.x,
			YAxis: row.y,
		},
		{
			Type:  "scatter",
			Name:  "Position",
			Mode:  "lines",
			X:     x,
			Y:     position,
			Line:  &Line{Color: positionColor, Dash: "dot"},
			XAxis: row.x,
			YAxis: row.y2,
		},
		{
			Type:  "scatter",
			Name:  "PnL €",
			Mode:  "lines",
			X:     x,
			Y:     pnl,
			Line:  &Line{Color: pnlColor, Dash: "dash"},
			XAxis: row.x,
			YAxis: row.y2,
		},
	}
}

func timelineTraces(intervals []*domain.StrategyInterval, row panelAxes, layout *Layout, palette Palette) []*Trace {
	names := normalization.StrategyNames(intervals)

	axis := layout.Axes[axisKey(row.y)]
	axis.Type = "category"
	axis.CategoryOrder = "array"
	axis.CategoryArray = names
	axis.ShowTickLabels = boolPtr(false)

	traces := make([]*Trace, 0, len(intervals))
	for _, iv := range intervals {
		traces = append(traces, &Trace{
			Type:       "scatter",
			Name:       iv.Strategy,
			Mode:       "lines",
			X:          []string{formatTime(iv.Start), formatTime(iv.End)},
			Y:          []string{iv.Strategy, iv.Strategy},
			Line:       &Line{Color: palette.Color(iv.Strategy), Width: timelineWidth},
			XAxis:      row.x,
			YAxis:      row.y,
			ShowLegend: boolPtr(false),
			HoverInfo:  "text",
			Text:       hoverText(iv),
		})
	}
	return traces
}

func addBands(layout *Layout, intervals []*domain.StrategyInterval, palette Palette) {
	for _, iv := range intervals {
		color := palette.Color(iv.Strategy)
		x0 := formatTime(iv.Start)
		layout.Shapes = append(layout.Shapes, &Shape{
			Type:      "rect",
			XRef:      "x",
			YRef:      "paper",
			X0:        x0,
			X1:        formatTime(iv.End),
			Y0:        0,
			Y1:        1,
			FillColor: color,
			Opacity:   bandOpacity,
			Layer:     "below",
			Line:      &Line{Color: transparent},
		})
		layout.Annotations = append(layout.Annotations, &Annotation{
			Text:      iv.Strategy,
			X:         x0,
			Y:         1,
			XRef:      "x",
			YRef:      "paper",
			XAnchor:   "left",
			YAnchor:   "top",
			ShowArrow: false,
			Font:      &Font{Color: color, Size: 10},
		})
	}
}

func hoverText(iv *domain.StrategyInterval) string {
	return fmt.Sprintf("%s: %s -> %s", iv.Strategy, iv.Start.Format(hoverTimeLayout), iv.End.Format(hoverTimeLayout))
}

func formatTime(ts time.Time) string {
	return ts.UTC().Format(plotTimeLayout)
}
