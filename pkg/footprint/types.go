// Package footprint is the host side of a footprint wizard: the drawing
// surface a wizard emits into, the pad helpers it builds pads with, the
// parameter list it declares and the in-memory footprint that results.
package footprint

import (
	"github.com/OpenTraceLab/OpenTraceFootprint/pkg/kicad/sexp"
)

// Layer names as they appear in footprint files
const (
	LayerFrontCopper     = "F.Cu"
	LayerFrontPaste      = "F.Paste"
	LayerFrontMask       = "F.Mask"
	LayerFrontSilkscreen = "F.SilkS"
	LayerFrontFab        = "F.Fab"
	LayerFrontCourtyard  = "F.CrtYd"
	LayerAllCopper       = "*.Cu"
	LayerAllMask         = "*.Mask"
)

// NoConnectLabel marks a pad that never joins a net, such as a mechanical
// fixing pin.
const NoConnectLabel = "~"

// DefaultReference is the placeholder designator placed on new footprints
const DefaultReference = "REF**"

// PadType is the technology of a pad
type PadType string

const (
	PadSMD         PadType = "smd"
	PadThroughHole PadType = "thru_hole"
	PadNPTH        PadType = "np_thru_hole"
)

// PadShape is the copper outline of a pad
type PadShape string

const (
	ShapeRect      PadShape = "rect"
	ShapeCircle    PadShape = "circle"
	ShapeOval      PadShape = "oval"
	ShapeRoundRect PadShape = "roundrect"
)

// Attribute is the mount technology of a whole footprint
type Attribute string

const (
	AttributeSMD         Attribute = "smd"
	AttributeThroughHole Attribute = "through_hole"
)

// Pad describes a single pad. Size is (horizontal, vertical) in mm; Drill is
// zero for SMD pads.
type Pad struct {
	Number    string
	Type      PadType
	Shape     PadShape
	Position  sexp.Position
	Size      sexp.Size
	Drill     float64
	Layers    []string
	NoConnect bool
}

// Line is a straight graphic segment on a non-copper layer
type Line struct {
	Start sexp.Position
	End   sexp.Position
	Layer string
	Width float64
}

// TextKind distinguishes the reference and value fields from free text
type TextKind string

const (
	TextReference TextKind = "reference"
	TextValue     TextKind = "value"
	TextUser      TextKind = "user"
)

// Text is a footprint text field
type Text struct {
	Kind      TextKind
	Text      string
	Position  sexp.PositionAngle
	Layer     string
	Size      float64
	Thickness float64
}

// Footprint is the result of running a wizard
type Footprint struct {
	Name        string
	Description string
	Value       string
	Attribute   Attribute
	Pads        []Pad
	Lines       []Line
	Texts       []Text
}

// PadsByType returns the pads of the given type in emission order
func (fp *Footprint) PadsByType(t PadType) []Pad {
	var pads []Pad
	for _, p := range fp.Pads {
		if p.Type == t {
			pads = append(pads, p)
		}
	}
	return pads
}

// LinesOnLayer returns the lines drawn on layer
func (fp *Footprint) LinesOnLayer(layer string) []Line {
	var lines []Line
	for _, l := range fp.Lines {
		if l.Layer == layer {
			lines = append(lines, l)
		}
	}
	return lines
}

// Text returns the first text field of the given kind
func (fp *Footprint) Text(kind TextKind) (Text, bool) {
	for _, t := range fp.Texts {
		if t.Kind == kind {
			return t, true
		}
	}
	return Text{}, false
}

// LayerBoundingBox returns the extent of the lines drawn on layer, ignoring
// stroke width.
func (fp *Footprint) LayerBoundingBox(layer string) sexp.BoundingBox {
	bbox := sexp.NewBoundingBox()
	for _, l := range fp.LinesOnLayer(layer) {
		bbox.Expand(l.Start)
		bbox.Expand(l.End)
	}
	return bbox
}

// BoundingBox returns the extent of all pads and lines
func (fp *Footprint) BoundingBox() sexp.BoundingBox {
	bbox := sexp.NewBoundingBox()
	for _, p := range fp.Pads {
		bbox.ExpandRect(p.Position, p.Size)
	}
	for _, l := range fp.Lines {
		bbox.Expand(l.Start)
		bbox.Expand(l.End)
	}
	return bbox
}
