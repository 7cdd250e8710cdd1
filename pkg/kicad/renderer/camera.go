package renderer

import (
	"math"

	"github.com/OpenTraceLab/OpenTraceFootprint/pkg/kicad/sexp"
)

// Zoom limits in pixels per mm
const (
	MinZoom = 0.1
	MaxZoom = 1000.0
)

// Camera maps footprint coordinates (mm, Y down) to screen pixels
type Camera struct {
	// Center position in world coordinates (mm)
	CenterX float64
	CenterY float64

	// Zoom level (pixels per mm)
	Zoom float64

	// Screen dimensions (pixels)
	ScreenWidth  int
	ScreenHeight int

	// View controls
	FlipView bool    // mirror around the rotation centre, as seen from the bottom side
	Rotation float64 // degrees

	// Rotation center (world coordinates in mm)
	RotationCenterX float64
	RotationCenterY float64
}

// NewCamera creates a camera looking at the footprint origin
func NewCamera(screenWidth, screenHeight int) *Camera {
	return &Camera{
		Zoom:         10.0,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

// WorldToScreen converts world coordinates (mm) to screen coordinates (pixels)
func (c *Camera) WorldToScreen(pos sexp.Position) (float64, float64) {
	pos = c.applyViewTransform(pos)

	x := (pos.X-c.CenterX)*c.Zoom + float64(c.ScreenWidth)/2.0
	y := (pos.Y-c.CenterY)*c.Zoom + float64(c.ScreenHeight)/2.0
	return x, y
}

// ScreenToWorld converts screen coordinates (pixels) to world coordinates (mm)
func (c *Camera) ScreenToWorld(screenX, screenY float64) sexp.Position {
	x := (screenX-float64(c.ScreenWidth)/2.0)/c.Zoom + c.CenterX
	y := (screenY-float64(c.ScreenHeight)/2.0)/c.Zoom + c.CenterY

	return c.applyInverseViewTransform(sexp.Position{X: x, Y: y})
}

// Scale converts a length in mm to pixels
func (c *Camera) Scale(mm float64) float64 {
	return mm * c.Zoom
}

// Pan moves the camera by screen pixel offsets
func (c *Camera) Pan(deltaX, deltaY float64) {
	c.CenterX -= deltaX / c.Zoom
	c.CenterY -= deltaY / c.Zoom
}

// ZoomAt zooms by factor keeping the world point under (screenX, screenY)
// fixed. factor > 1 zooms in.
func (c *Camera) ZoomAt(screenX, screenY, factor float64) {
	before := c.ScreenToWorld(screenX, screenY)

	c.Zoom = math.Max(MinZoom, math.Min(MaxZoom, c.Zoom*factor))

	after := c.ScreenToWorld(screenX, screenY)
	c.CenterX += before.X - after.X
	c.CenterY += before.Y - after.Y
}

// Fit centres bbox and zooms so it fills 90% of the smaller screen dimension
func (c *Camera) Fit(bbox sexp.BoundingBox) {
	width, height := bbox.Width(), bbox.Height()
	if width <= 0 || height <= 0 {
		return
	}

	centre := bbox.Center()
	c.CenterX, c.CenterY = centre.X, centre.Y
	c.RotationCenterX, c.RotationCenterY = centre.X, centre.Y

	zoomX := float64(c.ScreenWidth) * 0.9 / width
	zoomY := float64(c.ScreenHeight) * 0.9 / height
	c.Zoom = math.Max(MinZoom, math.Min(MaxZoom, math.Min(zoomX, zoomY)))
}

// UpdateScreenSize updates camera when window is resized
func (c *Camera) UpdateScreenSize(width, height int) {
	c.ScreenWidth = width
	c.ScreenHeight = height
}

// Flip toggles the mirrored view
func (c *Camera) Flip() {
	c.FlipView = !c.FlipView
}

// Rotate rotates the view by the given degrees, normalised to [0, 360)
func (c *Camera) Rotate(degrees float64) {
	c.Rotation = math.Mod(c.Rotation+degrees, 360)
	if c.Rotation < 0 {
		c.Rotation += 360
	}
}

func (c *Camera) applyViewTransform(pos sexp.Position) sexp.Position {
	x := pos.X - c.RotationCenterX
	y := pos.Y - c.RotationCenterY

	if c.Rotation != 0 {
		x, y = rotate(x, y, c.Rotation)
	}
	if c.FlipView {
		x = -x
	}

	return sexp.Position{X: x + c.RotationCenterX, Y: y + c.RotationCenterY}
}

func (c *Camera) applyInverseViewTransform(pos sexp.Position) sexp.Position {
	x := pos.X - c.RotationCenterX
	y := pos.Y - c.RotationCenterY

	// undo in reverse order: flip, then rotation
	if c.FlipView {
		x = -x
	}
	if c.Rotation != 0 {
		x, y = rotate(x, y, -c.Rotation)
	}

	return sexp.Position{X: x + c.RotationCenterX, Y: y + c.RotationCenterY}
}

func rotate(x, y, degrees float64) (float64, float64) {
	rad := degrees * math.Pi / 180.0
	cos, sin := math.Cos(rad), math.Sin(rad)
	return x*cos - y*sin, x*sin + y*cos
}

// VisibleBounds returns the world-space area currently on screen
func (c *Camera) VisibleBounds() sexp.BoundingBox {
	bbox := sexp.NewBoundingBox()
	w, h := float64(c.ScreenWidth), float64(c.ScreenHeight)
	for _, corner := range [][2]float64{{0, 0}, {w, 0}, {0, h}, {w, h}} {
		bbox.Expand(c.ScreenToWorld(corner[0], corner[1]))
	}
	return bbox
}
