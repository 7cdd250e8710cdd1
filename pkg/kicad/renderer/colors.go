package renderer

import (
	"fmt"
	"image/color"
	"strings"
)

// ColorTheme selects a KiCad-like colour palette
type ColorTheme int

const (
	ThemeClassic ColorTheme = iota
	ThemeKiCad2020
	ThemeBlueTone
	ThemeEagle
	ThemeNord
)

// ThemeNames maps theme enum to display name
var ThemeNames = map[ColorTheme]string{
	ThemeClassic:   "Classic",
	ThemeKiCad2020: "KiCad 2020",
	ThemeBlueTone:  "Blue Tone",
	ThemeEagle:     "Eagle",
	ThemeNord:      "Nord",
}

func (t ColorTheme) String() string {
	if name, ok := ThemeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("theme(%d)", int(t))
}

// ParseTheme looks a theme up by display name. Case, spaces and dashes are
// ignored, so "kicad-2020" selects "KiCad 2020".
func ParseTheme(name string) (ColorTheme, error) {
	norm := func(s string) string {
		s = strings.ToLower(s)
		return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
	}
	for theme, display := range ThemeNames {
		if norm(display) == norm(name) {
			return theme, nil
		}
	}
	return ThemeClassic, fmt.Errorf("unknown theme %q", name)
}

// Palette is the set of colours used to draw one footprint
type Palette struct {
	Background color.NRGBA
	Pad        color.NRGBA
	Drill      color.NRGBA
	Origin     color.NRGBA
	layers     map[string]color.NRGBA
}

// Layer returns the colour of a graphic layer, grey for unknown layers
func (p Palette) Layer(name string) color.NRGBA {
	if c, ok := p.layers[name]; ok {
		return c
	}
	return color.NRGBA{R: 128, G: 128, B: 128, A: 255}
}

// Palette returns the colours of t
func (t ColorTheme) Palette() Palette {
	p := Palette{
		Pad:    color.NRGBA{R: 227, G: 183, B: 46, A: 255},
		Drill:  color.NRGBA{R: 20, G: 20, B: 20, A: 255},
		Origin: color.NRGBA{R: 255, G: 255, B: 255, A: 160},
	}

	switch t {
	case ThemeKiCad2020:
		p.Background = color.NRGBA{R: 0, G: 16, B: 35, A: 255}
		p.layers = kicad2020Colors
	case ThemeBlueTone:
		p.Background = color.NRGBA{R: 20, G: 60, B: 90, A: 255}
		p.layers = blueToneColors
	case ThemeEagle:
		p.Background = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
		p.Pad = color.NRGBA{R: 51, G: 204, B: 51, A: 255}
		p.layers = eagleColors
	case ThemeNord:
		p.Background = color.NRGBA{R: 46, G: 52, B: 64, A: 255} // Nord0
		p.Pad = color.NRGBA{R: 235, G: 203, B: 139, A: 255}     // Nord13
		p.Drill = p.Background
		p.layers = nordColors
	default:
		p.Background = color.NRGBA{R: 0, G: 16, B: 35, A: 255}
		p.layers = classicColors
	}
	return p
}

var classicColors = map[string]color.NRGBA{
	"F.Cu":    {R: 200, G: 52, B: 52, A: 255},
	"F.Paste": {R: 180, G: 160, B: 154, A: 230},
	"F.Mask":  {R: 216, G: 100, B: 255, A: 102},
	"F.SilkS": {R: 242, G: 237, B: 161, A: 255},
	"F.Fab":   {R: 175, G: 175, B: 175, A: 255},
	"F.CrtYd": {R: 255, G: 38, B: 226, A: 255},
}

var kicad2020Colors = map[string]color.NRGBA{
	"F.Cu":    {R: 179, G: 31, B: 31, A: 255},
	"F.Paste": {R: 180, G: 160, B: 154, A: 230},
	"F.Mask":  {R: 132, G: 0, B: 132, A: 102},
	"F.SilkS": {R: 242, G: 237, B: 161, A: 255},
	"F.Fab":   {R: 128, G: 128, B: 128, A: 255},
	"F.CrtYd": {R: 255, G: 0, B: 255, A: 255},
}

var blueToneColors = map[string]color.NRGBA{
	"F.Cu":    {R: 72, G: 72, B: 200, A: 255},
	"F.Paste": {R: 150, G: 200, B: 255, A: 230},
	"F.Mask":  {R: 52, G: 52, B: 255, A: 102},
	"F.SilkS": {R: 242, G: 242, B: 255, A: 255},
	"F.Fab":   {R: 175, G: 175, B: 200, A: 255},
	"F.CrtYd": {R: 150, G: 150, B: 255, A: 255},
}

var eagleColors = map[string]color.NRGBA{
	"F.Cu":    {R: 204, G: 0, B: 0, A: 255},
	"F.Paste": {R: 128, G: 128, B: 128, A: 230},
	"F.Mask":  {R: 200, G: 61, B: 217, A: 102},
	"F.SilkS": {R: 255, G: 255, B: 255, A: 255},
	"F.Fab":   {R: 200, G: 200, B: 200, A: 255},
	"F.CrtYd": {R: 255, G: 0, B: 255, A: 255},
}

var nordColors = map[string]color.NRGBA{
	"F.Cu":    {R: 191, G: 97, B: 106, A: 255},  // Nord11
	"F.Paste": {R: 208, G: 135, B: 112, A: 230}, // Nord12
	"F.Mask":  {R: 180, G: 142, B: 173, A: 102}, // Nord15
	"F.SilkS": {R: 236, G: 239, B: 244, A: 255}, // Nord6
	"F.Fab":   {R: 216, G: 222, B: 233, A: 255}, // Nord4
	"F.CrtYd": {R: 180, G: 142, B: 173, A: 255},
}
