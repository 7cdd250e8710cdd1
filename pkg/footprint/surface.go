package footprint

import (
	"github.com/OpenTraceLab/OpenTraceFootprint/pkg/kicad/sexp"
)

// Nominal text policy used when the host does not override it
const (
	DefaultTextSize      = 1.0
	DefaultTextThickness = 0.15
	DefaultLineThickness = 0.12
)

// Surface is the drawing canvas a wizard emits into. Layer and line
// thickness are sticky and apply to every following Line and Box call.
type Surface interface {
	SetLayer(layer string)
	SetLineThickness(mm float64)

	AddPad(p Pad)
	Line(x1, y1, x2, y2 float64)
	// Box draws a rectangle of size w x h centred on (x, y)
	Box(x, y, w, h float64)

	// Value places the value field; Reference places the designator
	Value(x, y, size float64)
	Reference(x, y, size float64, orientation sexp.Angle)

	SetAttribute(a Attribute)

	// TextSize is the host's nominal text height in mm
	TextSize() float64
}

// Recorder is a Surface that records every call into a Footprint
type Recorder struct {
	fp            *Footprint
	layer         string
	thickness     float64
	textSize      float64
	textThickness float64
	reference     string
}

// NewRecorder creates a recorder for a footprint called name whose value
// field reads value
func NewRecorder(name, value string, opts ...Option) *Recorder {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Recorder{
		fp:            &Footprint{Name: name, Value: value},
		layer:         LayerFrontSilkscreen,
		thickness:     DefaultLineThickness,
		textSize:      cfg.textSize,
		textThickness: cfg.textThickness,
		reference:     cfg.reference,
	}
}

// Footprint returns what has been recorded so far
func (r *Recorder) Footprint() *Footprint {
	return r.fp
}

func (r *Recorder) SetLayer(layer string)       { r.layer = layer }
func (r *Recorder) SetLineThickness(mm float64) { r.thickness = mm }
func (r *Recorder) SetAttribute(a Attribute)    { r.fp.Attribute = a }
func (r *Recorder) TextSize() float64           { return r.textSize }

func (r *Recorder) AddPad(p Pad) {
	p.Layers = append([]string(nil), p.Layers...)
	r.fp.Pads = append(r.fp.Pads, p)
}

func (r *Recorder) Line(x1, y1, x2, y2 float64) {
	r.fp.Lines = append(r.fp.Lines, Line{
		Start: sexp.Position{X: x1, Y: y1},
		End:   sexp.Position{X: x2, Y: y2},
		Layer: r.layer,
		Width: r.thickness,
	})
}

// Box is drawn as a closed polyline of four lines starting at the top-left corner
func (r *Recorder) Box(x, y, w, h float64) {
	x0, y0 := x-w/2, y-h/2
	x1, y1 := x+w/2, y+h/2
	r.Line(x0, y0, x1, y0)
	r.Line(x1, y0, x1, y1)
	r.Line(x1, y1, x0, y1)
	r.Line(x0, y1, x0, y0)
}

func (r *Recorder) Value(x, y, size float64) {
	r.setText(Text{
		Kind:      TextValue,
		Text:      r.fp.Value,
		Position:  sexp.PositionAngle{Position: sexp.Position{X: x, Y: y}},
		Layer:     LayerFrontFab,
		Size:      size,
		Thickness: r.textThickness,
	})
}

func (r *Recorder) Reference(x, y, size float64, orientation sexp.Angle) {
	r.setText(Text{
		Kind:      TextReference,
		Text:      r.reference,
		Position:  sexp.PositionAngle{Position: sexp.Position{X: x, Y: y}, Angle: orientation},
		Layer:     LayerFrontSilkscreen,
		Size:      size,
		Thickness: r.textThickness,
	})
}

// setText replaces an existing field of the same kind; a footprint has one
// reference and one value.
func (r *Recorder) setText(t Text) {
	for i := range r.fp.Texts {
		if r.fp.Texts[i].Kind == t.Kind {
			r.fp.Texts[i] = t
			return
		}
	}
	r.fp.Texts = append(r.fp.Texts, t)
}

// Option tunes the host text policy of a Recorder or a Generate call
type Option func(*options)

type options struct {
	textSize      float64
	textThickness float64
	reference     string
}

func defaultOptions() options {
	return options{
		textSize:      DefaultTextSize,
		textThickness: DefaultTextThickness,
		reference:     DefaultReference,
	}
}

// WithTextSize overrides the nominal text height in mm
func WithTextSize(mm float64) Option {
	return func(o *options) {
		if mm > 0 {
			o.textSize = mm
		}
	}
}

// WithTextThickness overrides the text stroke thickness in mm
func WithTextThickness(mm float64) Option {
	return func(o *options) {
		if mm > 0 {
			o.textThickness = mm
		}
	}
}

// WithReference overrides the REF** designator
func WithReference(ref string) Option {
	return func(o *options) {
		if ref != "" {
			o.reference = ref
		}
	}
}
