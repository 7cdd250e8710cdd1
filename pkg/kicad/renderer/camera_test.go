package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OpenTraceLab/OpenTraceFootprint/pkg/kicad/sexp"
)

func TestCameraRoundTrip(t *testing.T) {
	cases := []struct {
		name   string
		rotate float64
		flip   bool
	}{
		{"plain", 0, false},
		{"rotated", 90, false},
		{"flipped", 0, true},
		{"rotated and flipped", 270, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cam := NewCamera(800, 600)
			cam.CenterX, cam.CenterY = 3, -1
			cam.RotationCenterX, cam.RotationCenterY = 1, 1
			cam.Rotate(tc.rotate)
			cam.FlipView = tc.flip

			p := sexp.Position{X: -12.25, Y: 3.15}
			sx, sy := cam.WorldToScreen(p)
			back := cam.ScreenToWorld(sx, sy)

			assert.InDelta(t, p.X, back.X, 1e-9)
			assert.InDelta(t, p.Y, back.Y, 1e-9)
		})
	}
}

func TestCameraCentre(t *testing.T) {
	cam := NewCamera(800, 600)
	x, y := cam.WorldToScreen(sexp.Position{})
	assert.Equal(t, 400.0, x)
	assert.Equal(t, 300.0, y)

	// Y grows downward on screen as in the footprint
	_, y = cam.WorldToScreen(sexp.Position{Y: 1})
	assert.Equal(t, 310.0, y)
}

func TestCameraFit(t *testing.T) {
	cam := NewCamera(1000, 500)
	bbox := sexp.BoundingBox{Min: sexp.Position{X: -20, Y: -5}, Max: sexp.Position{X: 20, Y: 5}}
	cam.Fit(bbox)

	assert.Equal(t, 0.0, cam.CenterX)
	assert.Equal(t, 0.0, cam.CenterY)
	// width limits: 1000*0.9/40
	assert.InDelta(t, 22.5, cam.Zoom, 1e-9)

	zoom := cam.Zoom
	cam.Fit(sexp.NewBoundingBox())
	assert.Equal(t, zoom, cam.Zoom, "empty box leaves the camera alone")
}

func TestCameraZoomAt(t *testing.T) {
	cam := NewCamera(800, 600)
	before := cam.ScreenToWorld(100, 50)
	cam.ZoomAt(100, 50, 2)

	assert.Equal(t, 20.0, cam.Zoom)
	after := cam.ScreenToWorld(100, 50)
	assert.InDelta(t, before.X, after.X, 1e-9)
	assert.InDelta(t, before.Y, after.Y, 1e-9)

	cam.ZoomAt(0, 0, 1e9)
	assert.Equal(t, MaxZoom, cam.Zoom)
	cam.ZoomAt(0, 0, 1e-12)
	assert.Equal(t, MinZoom, cam.Zoom)
}

func TestCameraRotateNormalises(t *testing.T) {
	cam := NewCamera(10, 10)
	cam.Rotate(-90)
	assert.Equal(t, 270.0, cam.Rotation)
	cam.Rotate(180)
	assert.Equal(t, 90.0, cam.Rotation)
}

func TestCameraPanAndVisibleBounds(t *testing.T) {
	cam := NewCamera(200, 100)
	cam.Pan(-100, 0)
	assert.Equal(t, 10.0, cam.CenterX)

	bbox := cam.VisibleBounds()
	assert.InDelta(t, 0.0, bbox.Min.X, 1e-9)
	assert.InDelta(t, 20.0, bbox.Max.X, 1e-9)
	assert.InDelta(t, -5.0, bbox.Min.Y, 1e-9)
	assert.InDelta(t, 5.0, bbox.Max.Y, 1e-9)
}
