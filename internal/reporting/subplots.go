package reporting

import "fmt"

const (
	verticalSpacing = 0.03
	// xDomainEnd leaves room on the right for secondary y axes.
	xDomainEnd = 0.94
)

// panel describes one subplot row.
type panel struct {
	title     string
	height    float64
	secondary bool
}

// panelAxes holds the trace references ("x2", "y3") of one row.
type panelAxes struct {
	x  string
	y  string
	y2 string
	// top is the upper edge of the row in paper coordinates.
	top float64
}

// axisRef returns the trace reference for axis n of the given letter.
func axisRef(letter string, n int) string {
	if n == 1 {
		return letter
	}
	return fmt.Sprintf("%s%d", letter, n)
}

// axisKey returns the layout key for a trace reference ("y3" -> "yaxis3").
func axisKey(ref string) string {
	return ref[:1] + "axis" + ref[1:]
}

// layoutPanels stacks the panels top to bottom with shared x axes and
// registers every axis on the layout. Heights are relative.
func layoutPanels(layout *Layout, panels []panel) []panelAxes {
	if layout.Axes == nil {
		layout.Axes = make(map[string]*Axis)
	}

	var total float64
	for _, p := range panels {
		total += p.height
	}
	avail := 1 - verticalSpacing*float64(len(panels)-1)

	result := make([]panelAxes, len(panels))
	top := 1.0
	yn := 1
	for i, p := range panels {
		bottom := top - p.height/total*avail
		if bottom < 0 || i == len(panels)-1 {
			bottom = 0
		}

		axes := panelAxes{x: axisRef("x", i+1), y: axisRef("y", yn), top: top}
		yn++
		if p.secondary {
			axes.y2 = axisRef("y", yn)
			yn++
		}

		x := &Axis{
			Domain:         []float64{0, xDomainEnd},
			Anchor:         axes.y,
			ShowTickLabels: boolPtr(i == len(panels)-1),
			GridColor:      gridColor,
			ZeroLineColor:  gridColor,
		}
		if i > 0 {
			x.Matches = "x"
		}
		layout.Axes[axisKey(axes.x)] = x
		layout.Axes[axisKey(axes.y)] = &Axis{
			Domain:        []float64{bottom, top},
			Anchor:        axes.x,
			GridColor:     gridColor,
			ZeroLineColor: gridColor,
		}
		if p.secondary {
			layout.Axes[axisKey(axes.y2)] = &Axis{
				Anchor:     axes.x,
				Overlaying: axes.y,
				Side:       "right",
				ShowGrid:   boolPtr(false),
			}
		}

		layout.Annotations = append(layout.Annotations, &Annotation{
			Text:      p.title,
			X:         xDomainEnd / 2,
			Y:         top,
			XRef:      "paper",
			YRef:      "paper",
			XAnchor:   "center",
			YAnchor:   "bottom",
			ShowArrow: false,
			Font:      &Font{Size: 16},
		})

		result[i] = axes
		top = bottom - verticalSpacing
	}
	return result
}
