// Package fx23 implements the footprint wizard for the Hirose FX23
// board-to-board connector: two rows of fine-pitch SMD signal pads flanked by
// four plated power pins and four mechanical fixing pins.
package fx23

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceFootprint/pkg/footprint"
	"github.com/OpenTraceLab/OpenTraceFootprint/pkg/kicad/sexp"
)

// Parameter contract
const (
	PageName        = "Pins"
	PinCountKey     = "pin count"
	DefaultPinCount = 100
	pinCountInfo    = "Pads must be multiple of 2"
)

const (
	lineThickness   = 0.12 // KLC F5.1
	indicatorWidth  = 1.0
	indicatorOffset = 0.5
)

// PackageSpec holds the package constants, all in millimetres
type PackageSpec struct {
	BodyHeight      float64
	BodyWidthOffset float64 // body overhang beyond the outermost signal pad, each side
	PadOuterHeight  float64 // outer edge to outer edge of the two pad rows
	PadInnerHeight  float64 // inner edge to inner edge of the two pad rows
	PadWidth        float64
	PadPitch        float64

	PowerPinPadSize   float64
	PowerPinDrillSize float64
	PowerPinOffsetX   float64 // beyond the outermost signal pad
	PowerPinCenterY   float64

	FixPinPadSize   float64
	FixPinDrillSize float64
	FixPinOffsetX   float64 // beyond the outermost signal pad
	FixPinCenterY   float64
}

// DefaultPackage returns the FX23 dimensions from the Hirose datasheet
func DefaultPackage() PackageSpec {
	return PackageSpec{
		BodyHeight:      7.6,
		BodyWidthOffset: (17.2 - 4.5) / 2,
		PadOuterHeight:  8.2,
		PadInnerHeight:  4.4,
		PadWidth:        0.3,
		PadPitch:        0.5,

		PowerPinPadSize:   1.6,
		PowerPinDrillSize: 1.2,
		PowerPinOffsetX:   (9.5 - 4.5) / 2,
		PowerPinCenterY:   6.1 / 2,

		FixPinPadSize:   1.4,
		FixPinDrillSize: 1.0,
		FixPinOffsetX:   (15.7 - 4.5) / 2,
		FixPinCenterY:   2.6 / 2,
	}
}

// Geometry is everything derived from a PackageSpec and a pin count
type Geometry struct {
	PinCount   int
	PadsPerRow int
	RowPitch   float64
	PadLength  float64

	PowerPitch    float64
	PowerRowPitch float64
	FixPitch      float64
	FixRowPitch   float64

	BodyWidth  float64
	BodyHeight float64

	// FirstPin is the centre of pad 1 (top-left)
	FirstPin sexp.Position
	// Indicator holds the apex, left and right corners of the pin 1 marker
	Indicator [3]sexp.Position
}

// ValidatePinCount rejects anything but a positive multiple of two
func ValidatePinCount(n int) error {
	if n < 2 || n%2 != 0 {
		return &footprint.InvalidParameterError{
			Page:   PageName,
			Name:   PinCountKey,
			Value:  n,
			Reason: "not a positive multiple of 2",
			Info:   pinCountInfo,
		}
	}
	return nil
}

// Layout computes the footprint geometry for pinCount pins
func (s PackageSpec) Layout(pinCount int) (Geometry, error) {
	if err := ValidatePinCount(pinCount); err != nil {
		return Geometry{}, err
	}

	perRow := pinCount / 2
	span := s.PadPitch * float64(perRow-1) // centre of first to centre of last pad

	g := Geometry{
		PinCount:      pinCount,
		PadsPerRow:    perRow,
		RowPitch:      (s.PadInnerHeight + s.PadOuterHeight) / 2,
		PadLength:     (s.PadOuterHeight - s.PadInnerHeight) / 2,
		PowerPitch:    2 * (s.PowerPinOffsetX + span/2),
		PowerRowPitch: 2 * s.PowerPinCenterY,
		FixPitch:      2 * (s.FixPinOffsetX + span/2),
		FixRowPitch:   2 * s.FixPinCenterY,
		BodyWidth:     span + 2*s.BodyWidthOffset,
		BodyHeight:    s.BodyHeight,
	}

	g.FirstPin = sexp.Position{X: -span / 2, Y: -g.RowPitch / 2}

	h := indicatorWidth * 1.732 / 2
	apex := sexp.Position{X: g.FirstPin.X, Y: g.FirstPin.Y - g.PadLength/2 - indicatorOffset}
	g.Indicator = [3]sexp.Position{
		apex,
		{X: apex.X - indicatorWidth/2, Y: apex.Y - h},
		{X: apex.X + indicatorWidth/2, Y: apex.Y - h},
	}
	return g, nil
}

// Wizard builds FX23 footprints for a PackageSpec
type Wizard struct {
	Spec PackageSpec
}

// New returns a wizard for the standard FX23 package
func New() *Wizard {
	return &Wizard{Spec: DefaultPackage()}
}

func (w *Wizard) Name() string { return "Hirose_FX23" }

func (w *Wizard) Description() string { return "Hirose FX23 Board to Board footprint" }

func (w *Wizard) Parameters() *footprint.Params {
	p := footprint.NewParams()
	p.Add(PageName, PinCountKey, footprint.UnitUInteger, DefaultPinCount, "total number of signal pins")
	return p
}

// Value returns the Hirose part number, e.g. FX23-60S
func (w *Wizard) Value(p *footprint.Params) string {
	return fmt.Sprintf("FX23-%dS", p.Int(PageName, PinCountKey))
}

func (w *Wizard) Check(p *footprint.Params) error {
	return p.CheckParam(PageName, PinCountKey,
		footprint.Multiple(2),
		footprint.MinValue(2),
		footprint.Info(pinCountInfo),
	)
}

// Build emits signal pads, power pads, fix pads, the body outline, the
// pin 1 indicator and the text fields, in that order.
func (w *Wizard) Build(p *footprint.Params, s footprint.Surface) error {
	spec := w.Spec
	g, err := spec.Layout(p.Int(PageName, PinCountKey))
	if err != nil {
		return err
	}

	var mk footprint.PadMaker

	footprint.GridArray{
		Pad:    mk.SMDPad(g.PadLength, spec.PadWidth, footprint.ShapeRect),
		NX:     g.PadsPerRow,
		NY:     2,
		PitchX: spec.PadPitch,
		PitchY: g.RowPitch,
		Naming: footprint.SignalNaming,
	}.AddTo(s)

	footprint.GridArray{
		Pad:    mk.THPad(spec.PowerPinPadSize, spec.PowerPinPadSize, spec.PowerPinDrillSize, footprint.ShapeCircle),
		NX:     2,
		NY:     2,
		PitchX: g.PowerPitch,
		PitchY: g.PowerRowPitch,
		Naming: footprint.PowerNaming,
	}.AddTo(s)

	footprint.GridArray{
		Pad:    mk.THPad(spec.FixPinPadSize, spec.FixPinPadSize, spec.FixPinDrillSize, footprint.ShapeCircle),
		NX:     2,
		NY:     2,
		PitchX: g.FixPitch,
		PitchY: g.FixRowPitch,
		Naming: footprint.FixNaming,
	}.AddTo(s)

	s.SetLayer(footprint.LayerFrontFab)
	s.SetLineThickness(lineThickness)
	s.Box(0, 0, g.BodyWidth, g.BodyHeight)

	apex, left, right := g.Indicator[0], g.Indicator[1], g.Indicator[2]
	s.SetLayer(footprint.LayerFrontSilkscreen)
	s.SetLineThickness(lineThickness)
	s.Line(apex.X, apex.Y, left.X, left.Y)
	s.Line(apex.X, apex.Y, right.X, right.Y)
	s.Line(left.X, left.Y, right.X, right.Y)

	textSize := s.TextSize()
	s.Value(0, 0, textSize)
	s.Reference(-(g.BodyWidth/2 + textSize), 0, textSize, 90)

	s.SetAttribute(footprint.AttributeSMD)
	return nil
}
