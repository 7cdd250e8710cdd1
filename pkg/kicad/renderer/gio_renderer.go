// Package renderer draws footprints with Gio
package renderer

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/font"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"

	"github.com/OpenTraceLab/OpenTraceFootprint/pkg/footprint"
	"github.com/OpenTraceLab/OpenTraceFootprint/pkg/kicad/sexp"
)

// Graphic layers in drawing order, bottom to top
var graphicLayers = []string{
	footprint.LayerFrontCourtyard,
	footprint.LayerFrontFab,
	footprint.LayerFrontSilkscreen,
}

// Options controls RenderFootprint
type Options struct {
	Layers  *LayerConfig
	Theme   ColorTheme
	Shaper  *text.Shaper
	NoTexts bool
}

var defaultShaper *text.Shaper

func shaper(opts Options) *text.Shaper {
	if opts.Shaper != nil {
		return opts.Shaper
	}
	if defaultShaper == nil {
		defaultShaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	}
	return defaultShaper
}

// RenderFootprint draws fp: background, graphic lines, pads with their
// drills, text fields and the origin marker.
func RenderFootprint(gtx layout.Context, camera *Camera, fp *footprint.Footprint, opts Options) {
	pal := opts.Theme.Palette()

	paint.FillShape(gtx.Ops, pal.Background, clip.Rect{Max: gtx.Constraints.Max}.Op())
	if fp == nil {
		return
	}

	for _, layer := range graphicLayers {
		if !opts.Layers.IsVisible(layer) {
			continue
		}
		renderLines(gtx, camera, fp.LinesOnLayer(layer), pal.Layer(layer))
	}

	if opts.Layers.IsVisible(footprint.LayerFrontCopper) {
		renderPads(gtx, camera, fp.Pads, pal)
	}

	if !opts.NoTexts {
		for _, t := range fp.Texts {
			if opts.Layers.IsVisible(t.Layer) {
				renderText(gtx, camera, t, pal.Layer(t.Layer), shaper(opts))
			}
		}
	}

	renderOrigin(gtx, camera, pal.Origin)
}

func renderLines(gtx layout.Context, camera *Camera, lines []footprint.Line, c color.NRGBA) {
	for _, l := range lines {
		x1, y1 := camera.WorldToScreen(l.Start)
		x2, y2 := camera.WorldToScreen(l.End)
		renderLine(gtx, x1, y1, x2, y2, math.Max(camera.Scale(l.Width), 1.0), c)
	}
}

func renderPads(gtx layout.Context, camera *Camera, pads []footprint.Pad, pal Palette) {
	for _, pad := range pads {
		sx, sy := camera.WorldToScreen(pad.Position)
		width := camera.Scale(pad.Size.Width)
		height := camera.Scale(pad.Size.Height)

		// Enforce a minimum size while preserving aspect ratio
		if width < 2.0 || height < 2.0 {
			aspect := pad.Size.Width / pad.Size.Height
			if width < height {
				width, height = 2.0, 2.0/aspect
			} else {
				width, height = 2.0*aspect, 2.0
			}
		}

		// The view rotation turns pads with it
		radians := camera.Rotation * math.Pi / 180.0

		if pad.Type != footprint.PadNPTH {
			switch pad.Shape {
			case footprint.ShapeCircle:
				renderCircle(gtx, sx, sy, (width+height)/4.0, pal.Pad)
			case footprint.ShapeOval:
				renderRotatedRRect(gtx, sx, sy, width, height, radians, math.Min(width, height)*0.5, pal.Pad)
			case footprint.ShapeRoundRect:
				renderRotatedRRect(gtx, sx, sy, width, height, radians, math.Min(width, height)*0.25, pal.Pad)
			default:
				renderRotatedRect(gtx, sx, sy, width, height, radians, pal.Pad)
			}
		}

		if pad.Drill > 0 {
			renderCircle(gtx, sx, sy, math.Max(camera.Scale(pad.Drill)/2.0, 0.5), pal.Drill)
		}
	}
}

func renderCircle(gtx layout.Context, x, y, radius float64, fillColor color.NRGBA) {
	if radius < 1.0 {
		radius = 1.0
	}
	stack := op.Affine(f32.Affine2D{}.Offset(f32.Pt(float32(x), float32(y)))).Push(gtx.Ops)
	defer stack.Pop()

	r := int(math.Round(radius))
	path := clip.Ellipse(image.Rect(-r, -r, r, r)).Op(gtx.Ops)
	paint.FillShape(gtx.Ops, fillColor, path)
}

func renderRotatedRect(gtx layout.Context, x, y, width, height, radians float64, fillColor color.NRGBA) {
	stack := op.Affine(f32.Affine2D{}.Offset(f32.Pt(float32(x), float32(y)))).Push(gtx.Ops)
	defer stack.Pop()

	cos := float32(math.Cos(radians))
	sin := float32(math.Sin(radians))
	hw := float32(width / 2)
	hh := float32(height / 2)

	var path clip.Path
	path.Begin(gtx.Ops)
	for i, corner := range [4][2]float32{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}} {
		pt := f32.Pt(corner[0]*cos-corner[1]*sin, corner[0]*sin+corner[1]*cos)
		if i == 0 {
			path.MoveTo(pt)
		} else {
			path.LineTo(pt)
		}
	}
	path.Close()

	paint.FillShape(gtx.Ops, fillColor, clip.Outline{Path: path.End()}.Op())
}

func renderRotatedRRect(gtx layout.Context, x, y, width, height, radians, cornerRadius float64, fillColor color.NRGBA) {
	transform := f32.Affine2D{}.
		Rotate(f32.Pt(0, 0), float32(radians)).
		Offset(f32.Pt(float32(x), float32(y)))

	stack := op.Affine(transform).Push(gtx.Ops)
	defer stack.Pop()

	rrect := clip.UniformRRect(
		image.Rectangle{
			Min: image.Pt(int(-width/2), int(-height/2)),
			Max: image.Pt(int(width/2), int(height/2)),
		},
		int(cornerRadius),
	).Op(gtx.Ops)

	paint.FillShape(gtx.Ops, fillColor, rrect)
}

func renderLine(gtx layout.Context, x1, y1, x2, y2, width float64, lineColor color.NRGBA) {
	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(float32(x1), float32(y1)))
	path.LineTo(f32.Pt(float32(x2), float32(y2)))

	stroke := clip.Stroke{
		Path:  path.End(),
		Width: float32(width),
	}.Op()

	paint.FillShape(gtx.Ops, lineColor, stroke)
}

// renderText draws a text field centred on its anchor. Text too small to
// read at the current zoom is skipped.
func renderText(gtx layout.Context, camera *Camera, t footprint.Text, c color.NRGBA, sh *text.Shaper) {
	fontSize := camera.Scale(t.Size)
	if fontSize < 6.0 {
		return
	}
	fontSize = math.Min(fontSize, 80.0)

	x, y := camera.WorldToScreen(t.Position.Position)

	// KiCad angles are counter-clockwise, screen Y points down
	angle := -float64(t.Position.Angle) + camera.Rotation
	if camera.FlipView {
		angle = -angle
	}

	macro := op.Record(gtx.Ops)
	transform := f32.Affine2D{}.
		Offset(f32.Pt(-float32(fontSize)*float32(len(t.Text))*0.3, -float32(fontSize)*0.6)).
		Rotate(f32.Pt(0, 0), float32(angle*math.Pi/180.0)).
		Offset(f32.Pt(float32(x), float32(y)))
	stack := op.Affine(transform).Push(gtx.Ops)

	paint.ColorOp{Color: c}.Add(gtx.Ops)
	label := widget.Label{Alignment: text.Start, MaxLines: 1}
	lgtx := gtx
	lgtx.Constraints = layout.Constraints{Max: image.Pt(1<<14, 1<<14)}
	label.Layout(lgtx, sh, font.Font{}, unit.Sp(fontSize), t.Text, op.CallOp{})

	stack.Pop()
	macro.Stop().Add(gtx.Ops)
}

// renderOrigin marks the footprint anchor with a small cross
func renderOrigin(gtx layout.Context, camera *Camera, c color.NRGBA) {
	x, y := camera.WorldToScreen(sexp.Position{})
	const arm = 6.0
	renderLine(gtx, x-arm, y, x+arm, y, 1, c)
	renderLine(gtx, x, y-arm, x, y+arm, 1, c)
}
