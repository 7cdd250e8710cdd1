// Package modfile reads and writes KiCad 6 footprint files (.kicad_mod)
package modfile

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"

	"github.com/OpenTraceLab/OpenTraceFootprint/pkg/footprint"
	"github.com/OpenTraceLab/OpenTraceFootprint/pkg/kicad/sexp/kicadsexp"
)

// File format constants
const (
	Extension        = ".kicad_mod"
	FormatVersion    = 20211014
	DefaultGenerator = "fpwiz"
)

// namespace seeds the per-element tstamp UUIDs
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/OpenTraceLab/OpenTraceFootprint"))

// WriteOption tunes Write
type WriteOption func(*writeConfig)

type writeConfig struct {
	generator string
	library   string
}

// WithGenerator overrides the generator token written in the header
func WithGenerator(name string) WriteOption {
	return func(c *writeConfig) { c.generator = name }
}

// WithLibrary prefixes the footprint name with "library:"
func WithLibrary(lib string) WriteOption {
	return func(c *writeConfig) { c.library = lib }
}

// LibraryPath returns where a footprint called name lives in a .pretty
// library directory
func LibraryPath(dir, name string) string {
	return filepath.Join(dir, name+Extension)
}

// Write serialises fp. Identical footprints produce identical bytes: element
// timestamps are derived from the footprint name and element index.
func Write(w io.Writer, fp *footprint.Footprint, opts ...WriteOption) error {
	cfg := writeConfig{generator: DefaultGenerator}
	for _, opt := range opts {
		opt(&cfg)
	}
	if fp.Name == "" {
		return fmt.Errorf("footprint has no name")
	}

	name := fp.Name
	if cfg.library != "" {
		name = cfg.library + ":" + name
	}

	stamps := &stamper{name: fp.Name}
	root := kicadsexp.NewList(kicadsexp.Symbol("footprint"), kicadsexp.String(name))
	root.Append(
		kicadsexp.Node("version", kicadsexp.Int(FormatVersion)),
		kicadsexp.Node("generator", kicadsexp.Symbol(cfg.generator)),
		kicadsexp.Node("layer", kicadsexp.String(footprint.LayerFrontCopper)),
	)
	if fp.Description != "" {
		root.Append(kicadsexp.Node("descr", kicadsexp.String(fp.Description)))
	}
	if fp.Attribute != "" {
		root.Append(kicadsexp.Node("attr", kicadsexp.Symbol(string(fp.Attribute))))
	}

	for _, t := range orderedTexts(fp.Texts) {
		root.Append(textNode(t, stamps.next()))
	}
	for _, l := range fp.Lines {
		root.Append(lineNode(l, stamps.next()))
	}
	for _, p := range fp.Pads {
		root.Append(padNode(p, stamps.next()))
	}

	if err := kicadsexp.Write(w, root); err != nil {
		return fmt.Errorf("failed to write footprint %s: %w", fp.Name, err)
	}
	return nil
}

// WriteFile writes fp to path, creating the parent directory if needed
func WriteFile(path string, fp *footprint.Footprint, opts ...WriteOption) error {
	var buf bytes.Buffer
	if err := Write(&buf, fp, opts...); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create library directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

type stamper struct {
	name  string
	index int
}

func (s *stamper) next() kicadsexp.Sexp {
	id := uuid.NewSHA1(namespace, []byte(s.name+"/"+strconv.Itoa(s.index)))
	s.index++
	return kicadsexp.Node("tstamp", kicadsexp.Symbol(id.String()))
}

// orderedTexts puts reference before value before user text, as KiCad does
func orderedTexts(texts []footprint.Text) []footprint.Text {
	var out []footprint.Text
	for _, kind := range []footprint.TextKind{footprint.TextReference, footprint.TextValue, footprint.TextUser} {
		for _, t := range texts {
			if t.Kind == kind {
				out = append(out, t)
			}
		}
	}
	return out
}

func atNode(x, y float64, angle float64) *kicadsexp.List {
	at := kicadsexp.Node("at", kicadsexp.Float(x), kicadsexp.Float(y))
	if angle != 0 {
		at.Append(kicadsexp.Float(angle))
	}
	return at
}

func textNode(t footprint.Text, stamp kicadsexp.Sexp) *kicadsexp.List {
	font := kicadsexp.Node("font",
		kicadsexp.Node("size", kicadsexp.Float(t.Size), kicadsexp.Float(t.Size)),
		kicadsexp.Node("thickness", kicadsexp.Float(t.Thickness)),
	)
	return kicadsexp.Node("fp_text",
		kicadsexp.Symbol(string(t.Kind)),
		kicadsexp.String(t.Text),
		atNode(t.Position.X, t.Position.Y, float64(t.Position.Angle)),
		kicadsexp.Node("layer", kicadsexp.String(t.Layer)),
		kicadsexp.Node("effects", font),
		stamp,
	)
}

func lineNode(l footprint.Line, stamp kicadsexp.Sexp) *kicadsexp.List {
	return kicadsexp.Node("fp_line",
		kicadsexp.Node("start", kicadsexp.Float(l.Start.X), kicadsexp.Float(l.Start.Y)),
		kicadsexp.Node("end", kicadsexp.Float(l.End.X), kicadsexp.Float(l.End.Y)),
		kicadsexp.Node("layer", kicadsexp.String(l.Layer)),
		kicadsexp.Node("width", kicadsexp.Float(l.Width)),
		stamp,
	)
}

func padNode(p footprint.Pad, stamp kicadsexp.Sexp) *kicadsexp.List {
	number := p.Number
	if p.NoConnect && number == "" {
		number = footprint.NoConnectLabel
	}

	n := kicadsexp.Node("pad",
		kicadsexp.String(number),
		kicadsexp.Symbol(string(p.Type)),
		kicadsexp.Symbol(string(p.Shape)),
		atNode(p.Position.X, p.Position.Y, 0),
		kicadsexp.Node("size", kicadsexp.Float(p.Size.Width), kicadsexp.Float(p.Size.Height)),
	)
	if p.Drill > 0 {
		n.Append(kicadsexp.Node("drill", kicadsexp.Float(p.Drill)))
	}

	layers := kicadsexp.Node("layers")
	for _, l := range p.Layers {
		layers.Append(kicadsexp.String(l))
	}
	n.Append(layers, stamp)
	return n
}
