package footprint

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/OpenTraceLab/OpenTraceFootprint/pkg/kicad/sexp"
)

// Naming selects how a grid labels its pads
type Naming int

const (
	// SignalNaming numbers pads 1..N row-major
	SignalNaming Naming = iota
	// PowerNaming labels pads Power1..PowerN row-major
	PowerNaming
	// FixNaming gives every pad the no-connect label
	FixNaming
)

// Label returns the label of the pad at column x, row y of a grid nx wide
func (n Naming) Label(x, y, nx int) string {
	idx := y*nx + x + 1
	switch n {
	case PowerNaming:
		return fmt.Sprintf("Power%d", idx)
	case FixNaming:
		return NoConnectLabel
	default:
		return fmt.Sprint(idx)
	}
}

func (n Naming) String() string {
	switch n {
	case SignalNaming:
		return "signal"
	case PowerNaming:
		return "power"
	case FixNaming:
		return "fix"
	default:
		return fmt.Sprintf("naming(%d)", int(n))
	}
}

// GridArray places NX x NY copies of a pad template on a rectangular grid
// centred on Centre.
type GridArray struct {
	Pad    Pad
	NX, NY int
	PitchX float64
	PitchY float64
	Centre sexp.Position
	Naming Naming
}

// Pads computes the grid. Pads are produced column by column, top to bottom
// within a column.
func (g GridArray) Pads() []Pad {
	if g.NX <= 0 || g.NY <= 0 {
		return nil
	}

	pitch := r2.Vec{X: g.PitchX, Y: g.PitchY}
	origin := r2.Sub(
		r2.Vec{X: g.Centre.X, Y: g.Centre.Y},
		r2.Vec{X: pitch.X * float64(g.NX-1) / 2, Y: pitch.Y * float64(g.NY-1) / 2},
	)

	pads := make([]Pad, 0, g.NX*g.NY)
	for x := 0; x < g.NX; x++ {
		for y := 0; y < g.NY; y++ {
			pos := r2.Add(origin, r2.Vec{X: pitch.X * float64(x), Y: pitch.Y * float64(y)})

			pad := g.Pad
			pad.Layers = append([]string(nil), g.Pad.Layers...)
			pad.Position = sexp.Position{X: pos.X, Y: pos.Y}
			pad.Number = g.Naming.Label(x, y, g.NX)
			if g.Naming == FixNaming {
				pad.NoConnect = true
			}
			pads = append(pads, pad)
		}
	}
	return pads
}

// AddTo emits the grid's pads to s
func (g GridArray) AddTo(s Surface) {
	for _, p := range g.Pads() {
		s.AddPad(p)
	}
}
