package modfile

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/OpenTraceLab/OpenTraceFootprint/pkg/footprint"
	"github.com/OpenTraceLab/OpenTraceFootprint/pkg/kicad/sexp"
	"github.com/OpenTraceLab/OpenTraceFootprint/pkg/kicad/sexp/kicadsexp"
)

// Parse reads a footprint file. Both (footprint ...) and the older
// (module ...) root are accepted.
func Parse(r io.Reader) (*footprint.Footprint, error) {
	exprs, err := kicadsexp.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	if len(exprs) == 0 {
		return nil, fmt.Errorf("empty file")
	}

	root := exprs[0]
	kind, err := sexp.GetNodeName(root)
	if err != nil || root.IsLeaf() {
		return nil, fmt.Errorf("expected footprint list")
	}
	if kind != "footprint" && kind != "module" {
		return nil, fmt.Errorf("expected footprint, got %q", kind)
	}

	return parseFootprint(root)
}

// ParseString parses a footprint held in memory
func ParseString(s string) (*footprint.Footprint, error) {
	return Parse(strings.NewReader(s))
}

// ParseFile parses a .kicad_mod file
func ParseFile(filename string) (*footprint.Footprint, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	fp, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return fp, nil
}

func parseFootprint(node kicadsexp.Sexp) (*footprint.Footprint, error) {
	fp := &footprint.Footprint{}

	name, err := sexp.GetString(node, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to parse footprint name: %w", err)
	}
	// Strip an optional "library:" prefix
	if i := strings.IndexByte(name, ':'); i > 0 {
		name = name[i+1:]
	}
	fp.Name = name

	if descr, ok := sexp.FindNode(node, "descr"); ok {
		fp.Description, _ = sexp.GetString(descr, 1)
	}
	if attr, ok := sexp.FindNode(node, "attr"); ok {
		switch {
		case sexp.HasSymbol(attr, string(footprint.AttributeSMD)):
			fp.Attribute = footprint.AttributeSMD
		case sexp.HasSymbol(attr, string(footprint.AttributeThroughHole)):
			fp.Attribute = footprint.AttributeThroughHole
		}
	}

	for _, textNode := range sexp.FindAllNodes(node, "fp_text") {
		t, err := parseText(textNode)
		if err != nil {
			return nil, fmt.Errorf("fp_text: %w", err)
		}
		if t.Kind == footprint.TextValue {
			fp.Value = t.Text
		}
		fp.Texts = append(fp.Texts, t)
	}

	for _, lineNode := range sexp.FindAllNodes(node, "fp_line") {
		l, err := parseLine(lineNode)
		if err != nil {
			return nil, fmt.Errorf("fp_line: %w", err)
		}
		fp.Lines = append(fp.Lines, l)
	}

	for i, padNode := range sexp.FindAllNodes(node, "pad") {
		p, err := parsePad(padNode)
		if err != nil {
			return nil, fmt.Errorf("pad %d: %w", i, err)
		}
		fp.Pads = append(fp.Pads, p)
	}

	return fp, nil
}

// parseText reads (fp_text kind "text" (at x y [angle]) (layer L) (effects (font (size h w) (thickness t))))
func parseText(node kicadsexp.Sexp) (footprint.Text, error) {
	var t footprint.Text

	kind, err := sexp.GetString(node, 1)
	if err != nil {
		return t, fmt.Errorf("failed to parse text kind: %w", err)
	}
	t.Kind = footprint.TextKind(kind)

	if t.Text, err = sexp.GetString(node, 2); err != nil {
		return t, fmt.Errorf("failed to parse text: %w", err)
	}

	at, ok := sexp.FindNode(node, "at")
	if !ok {
		return t, fmt.Errorf("missing required 'at' position")
	}
	if t.Position, err = sexp.GetPosition(at); err != nil {
		return t, err
	}

	if layer, ok := sexp.FindNode(node, "layer"); ok {
		t.Layer, _ = sexp.GetString(layer, 1)
	}

	t.Size = footprint.DefaultTextSize
	t.Thickness = footprint.DefaultTextThickness
	if effects, ok := sexp.FindNode(node, "effects"); ok {
		if font, ok := sexp.FindNode(effects, "font"); ok {
			if size, ok := sexp.FindNode(font, "size"); ok {
				if s, err := sexp.GetSize(size); err == nil {
					t.Size = s.Height
				}
			}
			if thickness, ok := sexp.FindNode(font, "thickness"); ok {
				if v, err := sexp.GetFloat(thickness, 1); err == nil {
					t.Thickness = v
				}
			}
		}
	}
	return t, nil
}

// parseLine reads (fp_line (start x y) (end x y) (layer L) (width w))
func parseLine(node kicadsexp.Sexp) (footprint.Line, error) {
	var l footprint.Line

	start, ok := sexp.FindNode(node, "start")
	if !ok {
		return l, fmt.Errorf("missing required 'start' field")
	}
	end, ok := sexp.FindNode(node, "end")
	if !ok {
		return l, fmt.Errorf("missing required 'end' field")
	}

	var err error
	if l.Start, err = sexp.GetPositionXY(start); err != nil {
		return l, err
	}
	if l.End, err = sexp.GetPositionXY(end); err != nil {
		return l, err
	}
	if layer, ok := sexp.FindNode(node, "layer"); ok {
		l.Layer, _ = sexp.GetString(layer, 1)
	}
	l.Width = sexp.GetStroke(node).Width
	return l, nil
}

// parsePad reads (pad "number" type shape (at x y [angle]) (size w h) [(drill d)] (layers ...))
func parsePad(node kicadsexp.Sexp) (footprint.Pad, error) {
	var p footprint.Pad

	number, err := sexp.GetString(node, 1)
	if err != nil {
		return p, fmt.Errorf("failed to parse pad number: %w", err)
	}
	p.Number = number
	p.NoConnect = number == "" || number == footprint.NoConnectLabel

	padType, err := sexp.GetString(node, 2)
	if err != nil {
		return p, fmt.Errorf("failed to parse pad type: %w", err)
	}
	p.Type = footprint.PadType(padType)

	shape, err := sexp.GetString(node, 3)
	if err != nil {
		return p, fmt.Errorf("failed to parse pad shape: %w", err)
	}
	p.Shape = footprint.PadShape(shape)

	at, ok := sexp.FindNode(node, "at")
	if !ok {
		return p, fmt.Errorf("missing required 'at' position")
	}
	if p.Position, err = sexp.GetPositionXY(at); err != nil {
		return p, err
	}

	size, ok := sexp.FindNode(node, "size")
	if !ok {
		return p, fmt.Errorf("missing required 'size' field")
	}
	if p.Size, err = sexp.GetSize(size); err != nil {
		return p, err
	}

	// Drill is (drill d) or (drill oval w h)
	if drill, ok := sexp.FindNode(node, "drill"); ok {
		if d, err := sexp.GetFloat(drill, 1); err == nil {
			p.Drill = d
		} else if d, err := sexp.GetFloat(drill, 2); err == nil {
			p.Drill = d
		}
	}

	layers, ok := sexp.FindNode(node, "layers")
	if !ok {
		return p, fmt.Errorf("missing required 'layers' field")
	}
	for _, item := range sexp.GetListItems(layers) {
		if item.IsLeaf() {
			p.Layers = append(p.Layers, kicadsexp.AtomValue(item))
		}
	}
	return p, nil
}
