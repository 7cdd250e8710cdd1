package cmd

import (
	"testing"

	"gioui.org/io/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenTraceLab/OpenTraceFootprint/pkg/footprint"
	"github.com/OpenTraceLab/OpenTraceFootprint/pkg/footprint/fx23"
	"github.com/OpenTraceLab/OpenTraceFootprint/pkg/kicad/renderer"
)

func TestViewerKeys(t *testing.T) {
	fp, err := footprint.Generate(fx23.New(), nil)
	require.NoError(t, err)

	v := &viewer{
		fp:     fp,
		camera: renderer.NewCamera(1200, 600),
		opts:   renderer.Options{Layers: renderer.NewLayerConfig(), Theme: renderer.ThemeNord},
	}
	v.fit()
	zoom := v.camera.Zoom

	assert.False(t, v.handleKey("R"))
	assert.Equal(t, 90.0, v.camera.Rotation)
	assert.False(t, v.handleKey(key.NameLeftArrow))
	assert.Equal(t, 0.0, v.camera.Rotation)

	v.handleKey("F")
	assert.True(t, v.camera.FlipView)

	v.camera.ZoomAt(0, 0, 3)
	v.handleKey(key.NameSpace)
	assert.Equal(t, zoom, v.camera.Zoom)

	v.handleKey("2")
	assert.False(t, v.opts.Layers.IsVisible(footprint.LayerFrontFab))

	v.handleKey("X")
	assert.True(t, v.opts.NoTexts)

	v.handleKey("T")
	assert.Equal(t, renderer.ThemeClassic, v.opts.Theme, "theme cycling wraps around")

	assert.True(t, v.handleKey(key.NameEscape))
	assert.True(t, v.handleKey("Q"))
}
