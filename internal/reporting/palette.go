package reporting

// FallbackColor is used for strategies missing from the palette.
const FallbackColor = "#888"

// Palette maps strategy names to display colours.
type Palette map[string]string

// DefaultPalette covers the strategies shipped with the simulator.
var DefaultPalette = Palette{
	"LadderLiftStrategy":        "#ffaa00",
	"DripFlipStrategy":          "#00d2d5",
	"LadderBidStrategy":         "#b07aff",
	"DripAccumThenDumpStrategy": "#ff6fb5",
	"NoOpStrategy":              "#5f9ea0",
}

// Color returns the strategy colour or FallbackColor.
func (p Palette) Color(strategy string) string {
	if c, ok := p[strategy]; ok && c != "" {
		return c
	}
	return FallbackColor
}

// Merge returns a new palette with overrides applied on top of p.
func (p Palette) Merge(overrides map[string]string) Palette {
	merged := make(Palette, len(p)+len(overrides))
	for k, v := range p {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}
