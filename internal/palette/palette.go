// Package palette maps layer names to display colours for the chart legend.
package palette

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Colours cycled through for layers without an explicit entry.
var defaultCycle = []string{"#238636", "#8957e5", "#1f6feb", "#d29922", "#db61a2"}

// Named colours for the layers the original survey sheets always carry.
var defaultColors = map[string]string{
	"Subgrade":      "#238636",
	"Embankment EW": "#8957e5",
}

// Palette resolves per-layer display colours.
type Palette struct {
	colors map[string]string
}

// Default returns the built-in palette.
func Default() Palette {
	colors := make(map[string]string, len(defaultColors))
	for k, v := range defaultColors {
		colors[k] = v
	}
	return Palette{colors: colors}
}

// Load reads a YAML file mapping layer names to hex colours and merges it
// over the built-in palette. File entries win.
func Load(path string) (Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Palette{}, fmt.Errorf("read palette file: %w", err)
	}

	var entries map[string]string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return Palette{}, fmt.Errorf("parse palette file: %w", err)
	}

	p := Default()
	for layer, color := range entries {
		p.colors[layer] = color
	}
	return p, nil
}

// Color returns the colour for a layer. index is the layer's position in the
// sorted layer list, used to cycle the fallback colours deterministically.
func (p Palette) Color(layer string, index int) string {
	if c, ok := p.colors[layer]; ok {
		return c
	}
	if index < 0 {
		index = 0
	}
	return defaultCycle[index%len(defaultCycle)]
}
