package modfile

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenTraceLab/OpenTraceFootprint/pkg/footprint"
	"github.com/OpenTraceLab/OpenTraceFootprint/pkg/footprint/fx23"
	"github.com/OpenTraceLab/OpenTraceFootprint/pkg/kicad/sexp"
)

func testFootprint() *footprint.Footprint {
	return &footprint.Footprint{
		Name:        "Test_FP",
		Description: "Test footprint",
		Value:       "TEST",
		Attribute:   footprint.AttributeSMD,
		Texts: []footprint.Text{
			{Kind: footprint.TextValue, Text: "TEST", Layer: "F.Fab", Size: 1, Thickness: 0.15},
			{
				Kind:      footprint.TextReference,
				Text:      "REF**",
				Position:  sexp.PositionAngle{Position: sexp.Position{X: -2}, Angle: 90},
				Layer:     "F.SilkS",
				Size:      1,
				Thickness: 0.15,
			},
		},
		Lines: []footprint.Line{
			{Start: sexp.Position{X: -1, Y: -0.5}, End: sexp.Position{X: 1, Y: -0.5}, Layer: "F.Fab", Width: 0.12},
		},
		Pads: []footprint.Pad{
			{
				Number:   "1",
				Type:     footprint.PadSMD,
				Shape:    footprint.ShapeRect,
				Position: sexp.Position{X: 0.25, Y: -3.15},
				Size:     sexp.Size{Width: 0.3, Height: 1.9},
				Layers:   []string{"F.Cu", "F.Paste", "F.Mask"},
			},
		},
	}
}

const testFootprintText = `(footprint "Test_FP"
  (version 20211014)
  (generator fpwiz)
  (layer "F.Cu")
  (descr "Test footprint")
  (attr smd)
  (fp_text reference "REF**" (at -2 0 90) (layer "F.SilkS") (effects (font (size 1 1) (thickness 0.15))) (tstamp 07b1cc3b-c4ba-55ee-b69e-1b89be916966))
  (fp_text value "TEST" (at 0 0) (layer "F.Fab") (effects (font (size 1 1) (thickness 0.15))) (tstamp 24c81636-f651-5135-9ebe-dab6a16d92d9))
  (fp_line (start -1 -0.5) (end 1 -0.5) (layer "F.Fab") (width 0.12) (tstamp 8fc0f104-49ae-5322-bd5c-bffb2a68146e))
  (pad "1" smd rect (at 0.25 -3.15) (size 0.3 1.9) (layers "F.Cu" "F.Paste" "F.Mask") (tstamp ff200a59-d4bb-5fe4-af6d-12b866043d05))
)
`

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testFootprint()))

	if diff := cmp.Diff(testFootprintText, buf.String()); diff != "" {
		t.Errorf("Write() mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteOptions(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testFootprint(), WithGenerator("kicad-wizard"), WithLibrary("Connector_Hirose")))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, `(footprint "Connector_Hirose:Test_FP"`))
	assert.Contains(t, out, "(generator kicad-wizard)")

	// tstamps depend on the footprint name, not the library prefix
	assert.Contains(t, out, "07b1cc3b-c4ba-55ee-b69e-1b89be916966")
}

func TestWriteRequiresName(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Write(&buf, &footprint.Footprint{}))
}

func TestParseRoundTrip(t *testing.T) {
	want := testFootprint()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, want))

	got, err := Parse(&buf)
	require.NoError(t, err)

	// texts come back in file order: reference first
	sortTexts := cmpopts.SortSlices(func(a, b footprint.Text) bool { return a.Kind < b.Kind })
	if diff := cmp.Diff(want, got, sortTexts); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFX23RoundTrip(t *testing.T) {
	w := fx23.New()
	p := w.Parameters()
	require.NoError(t, p.Set(fx23.PageName, fx23.PinCountKey, 40))

	fp, err := footprint.Generate(w, p)
	require.NoError(t, err)

	var first, second bytes.Buffer
	require.NoError(t, Write(&first, fp))
	require.NoError(t, Write(&second, fp))
	assert.Equal(t, first.Bytes(), second.Bytes(), "output must be byte-identical across runs")

	got, err := Parse(&first)
	require.NoError(t, err)

	assert.Equal(t, "FX23-40S", got.Value)
	assert.Equal(t, footprint.AttributeSMD, got.Attribute)
	require.Len(t, got.Pads, len(fp.Pads))
	for i := range fp.Pads {
		assert.Equal(t, fp.Pads[i].Number, got.Pads[i].Number)
		assert.Equal(t, fp.Pads[i].NoConnect, got.Pads[i].NoConnect)
		assert.InDelta(t, fp.Pads[i].Position.X, got.Pads[i].Position.X, 1e-6)
		assert.InDelta(t, fp.Pads[i].Position.Y, got.Pads[i].Position.Y, 1e-6)
		assert.InDelta(t, fp.Pads[i].Drill, got.Pads[i].Drill, 1e-6)
	}

	assert.Len(t, got.PadsByType(footprint.PadSMD), 40)
	assert.Len(t, got.PadsByType(footprint.PadThroughHole), 8)
	assert.InDelta(t, fp.LayerBoundingBox(footprint.LayerFrontFab).Width(), got.LayerBoundingBox(footprint.LayerFrontFab).Width(), 1e-6)
}

func TestParseLegacy(t *testing.T) {
	const legacy = `(module Conn:Legacy (layer F.Cu) (tedit 5A02FF57)
  (descr "legacy file")
  (attr smd)
  (fp_text reference REF** (at 0 -3) (layer F.SilkS)
    (effects (font (size 1.2 1.2) (thickness 0.2))))
  (fp_text value Legacy (at 0 3) (layer F.Fab))
  (fp_line (start 0 0) (end 1 0) (layer F.SilkS) (width 0.15))
  (fp_line (start 0 0) (end 0 1) (stroke (width 0.1) (type solid)) (layer F.Fab))
  (pad "" np_thru_hole circle (at 2 0) (size 1 1) (drill 1) (layers *.Cu *.Mask))
  (pad 1 thru_hole oval (at -2 0) (size 1.2 2) (drill oval 0.6 1.2) (layers *.Cu *.Mask))
)`

	fp, err := ParseString(legacy)
	require.NoError(t, err)

	assert.Equal(t, "Legacy", fp.Name)
	assert.Equal(t, "Legacy", fp.Value)
	assert.Equal(t, "legacy file", fp.Description)

	ref, ok := fp.Text(footprint.TextReference)
	require.True(t, ok)
	assert.Equal(t, 1.2, ref.Size)
	assert.Equal(t, 0.2, ref.Thickness)

	val, ok := fp.Text(footprint.TextValue)
	require.True(t, ok)
	assert.Equal(t, footprint.DefaultTextSize, val.Size)

	require.Len(t, fp.Lines, 2)
	assert.Equal(t, 0.15, fp.Lines[0].Width)
	assert.Equal(t, 0.1, fp.Lines[1].Width)

	require.Len(t, fp.Pads, 2)
	assert.True(t, fp.Pads[0].NoConnect)
	assert.Equal(t, footprint.PadNPTH, fp.Pads[0].Type)
	assert.Equal(t, []string{"*.Cu", "*.Mask"}, fp.Pads[0].Layers)
	assert.False(t, fp.Pads[1].NoConnect)
	assert.Equal(t, 0.6, fp.Pads[1].Drill)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"not a footprint", `(kicad_pcb (version 1))`},
		{"unterminated", `(footprint "x" (layer "F.Cu")`},
		{"pad without at", `(footprint "x" (pad "1" smd rect (size 1 1) (layers "F.Cu")))`},
		{"pad without layers", `(footprint "x" (pad "1" smd rect (at 0 0) (size 1 1)))`},
		{"line without end", `(footprint "x" (fp_line (start 0 0) (layer "F.Fab")))`},
		{"bad coordinate", `(footprint "x" (pad "1" smd rect (at a 0) (size 1 1) (layers "F.Cu")))`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestWriteFileAndLibraryPath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Connector_Hirose.pretty")
	path := LibraryPath(dir, "Test_FP")
	assert.Equal(t, filepath.Join(dir, "Test_FP.kicad_mod"), path)

	require.NoError(t, WriteFile(path, testFootprint()))

	fp, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Test_FP", fp.Name)

	_, err = ParseFile(filepath.Join(dir, "missing.kicad_mod"))
	assert.Error(t, err)
}
