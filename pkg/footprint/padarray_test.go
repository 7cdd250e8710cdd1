package footprint

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenTraceLab/OpenTraceFootprint/pkg/kicad/sexp"
)

func TestNamingLabel(t *testing.T) {
	tests := []struct {
		naming  Naming
		x, y    int
		nx      int
		want    string
	}{
		{SignalNaming, 0, 0, 50, "1"},
		{SignalNaming, 49, 0, 50, "50"},
		{SignalNaming, 0, 1, 50, "51"},
		{SignalNaming, 49, 1, 50, "100"},
		{PowerNaming, 0, 0, 2, "Power1"},
		{PowerNaming, 1, 0, 2, "Power2"},
		{PowerNaming, 0, 1, 2, "Power3"},
		{PowerNaming, 1, 1, 2, "Power4"},
		{FixNaming, 1, 1, 2, NoConnectLabel},
	}

	for _, tt := range tests {
		t.Run(tt.naming.String()+"/"+tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.naming.Label(tt.x, tt.y, tt.nx))
		})
	}
}

func TestGridArrayPositions(t *testing.T) {
	var mk PadMaker
	g := GridArray{
		Pad:    mk.SMDPad(2, 1, ShapeRect),
		NX:     3,
		NY:     2,
		PitchX: 1,
		PitchY: 4,
		Naming: SignalNaming,
	}

	pads := g.Pads()
	require.Len(t, pads, 6)

	got := make([]string, 0, len(pads))
	for _, p := range pads {
		got = append(got, p.Number)
	}
	// column by column, top row first
	if diff := cmp.Diff([]string{"1", "4", "2", "5", "3", "6"}, got); diff != "" {
		t.Errorf("pad order (-want +got):\n%s", diff)
	}

	assert.Equal(t, sexp.Position{X: -1, Y: -2}, pads[0].Position)
	assert.Equal(t, sexp.Position{X: -1, Y: 2}, pads[1].Position)
	assert.Equal(t, sexp.Position{X: 1, Y: 2}, pads[5].Position)
	assert.Equal(t, sexp.Size{Width: 1, Height: 2}, pads[0].Size)
}

func TestGridArrayCentre(t *testing.T) {
	var mk PadMaker
	g := GridArray{
		Pad:    mk.THPad(1.6, 1.6, 1.2, ShapeCircle),
		NX:     1,
		NY:     1,
		Centre: sexp.Position{X: 5, Y: -2},
		Naming: PowerNaming,
	}

	pads := g.Pads()
	require.Len(t, pads, 1)
	assert.Equal(t, sexp.Position{X: 5, Y: -2}, pads[0].Position)
	assert.Equal(t, "Power1", pads[0].Number)
	assert.Equal(t, 1.2, pads[0].Drill)
	assert.Equal(t, []string{LayerAllCopper, LayerAllMask}, pads[0].Layers)
}

func TestGridArrayFixNaming(t *testing.T) {
	var mk PadMaker
	g := GridArray{Pad: mk.THPad(1.4, 1.4, 1.0, ShapeCircle), NX: 2, NY: 2, PitchX: 10, PitchY: 2, Naming: FixNaming}

	for _, p := range g.Pads() {
		assert.True(t, p.NoConnect)
		assert.Equal(t, NoConnectLabel, p.Number)
	}
	assert.Empty(t, GridArray{NX: 0, NY: 2}.Pads())
}

func TestGridArrayDoesNotShareLayers(t *testing.T) {
	var mk PadMaker
	pads := GridArray{Pad: mk.SMDPad(1, 1, ShapeRect), NX: 2, NY: 1, Naming: SignalNaming}.Pads()
	pads[0].Layers[0] = "B.Cu"
	assert.Equal(t, LayerFrontCopper, pads[1].Layers[0])
	assert.Equal(t, LayerFrontCopper, mk.SMDPad(1, 1, ShapeRect).Layers[0])
}

func TestNPTHPad(t *testing.T) {
	var mk PadMaker
	p := mk.NPTHPad(3.2)
	assert.Equal(t, PadNPTH, p.Type)
	assert.True(t, p.NoConnect)
	assert.Equal(t, sexp.Size{Width: 3.2, Height: 3.2}, p.Size)
}
