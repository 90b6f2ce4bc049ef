package render

import (
	"image/color"
	"strings"
)

// defaultColors maps the well-known state labels to display colors. Labels
// the table does not know cycle through the fallback ramp so multi-state
// sims still render something distinguishable.
var defaultColors = map[string]color.RGBA{
	"dead":  {R: 0x00, G: 0x00, B: 0x00, A: 0xFF},
	"alive": {R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
}

var fallbackRamp = []color.RGBA{
	{R: 0x22, G: 0x22, B: 0x22, A: 0xFF},
	{R: 0x55, G: 0xAA, B: 0xFF, A: 0xFF},
	{R: 0xFF, G: 0x88, B: 0x22, A: 0xFF},
	{R: 0xAA, G: 0xFF, B: 0x55, A: 0xFF},
}

// LabelPalette builds a per-state color palette from a sim's state labels.
// Index i of the result colors cell value i.
func LabelPalette(labels []string) []color.RGBA {
	if len(labels) == 0 {
		return []color.RGBA{defaultColors["dead"], defaultColors["alive"]}
	}
	out := make([]color.RGBA, len(labels))
	for i, label := range labels {
		if col, ok := defaultColors[strings.ToLower(label)]; ok {
			out[i] = col
			continue
		}
		out[i] = fallbackRamp[i%len(fallbackRamp)]
	}
	return out
}
