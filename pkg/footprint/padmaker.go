package footprint

import "github.com/OpenTraceLab/OpenTraceFootprint/pkg/kicad/sexp"

// Default layer sets for each pad technology
var (
	smdLayers = []string{LayerFrontCopper, LayerFrontPaste, LayerFrontMask}
	thtLayers = []string{LayerAllCopper, LayerAllMask}
)

// PadMaker builds pad templates. Sizes follow the vertical-then-horizontal
// argument order KiCad's wizard helpers use.
type PadMaker struct{}

// SMDPad returns a surface-mount pad template
func (PadMaker) SMDPad(vsize, hsize float64, shape PadShape) Pad {
	return Pad{
		Type:   PadSMD,
		Shape:  shape,
		Size:   sizeOf(hsize, vsize),
		Layers: append([]string(nil), smdLayers...),
	}
}

// THPad returns a plated through-hole pad template
func (PadMaker) THPad(vsize, hsize, drill float64, shape PadShape) Pad {
	return Pad{
		Type:   PadThroughHole,
		Shape:  shape,
		Size:   sizeOf(hsize, vsize),
		Drill:  drill,
		Layers: append([]string(nil), thtLayers...),
	}
}

// NPTHPad returns a non-plated hole; the copper size equals the drill
func (PadMaker) NPTHPad(drill float64) Pad {
	return Pad{
		Type:      PadNPTH,
		Shape:     ShapeCircle,
		Size:      sizeOf(drill, drill),
		Drill:     drill,
		Layers:    append([]string(nil), thtLayers...),
		NoConnect: true,
		Number:    NoConnectLabel,
	}
}

func sizeOf(h, v float64) sexp.Size {
	return sexp.Size{Width: h, Height: v}
}
