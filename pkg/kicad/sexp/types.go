// Package sexp provides shared S-expression infrastructure for KiCad footprint files.
// It holds the geometry types common to the footprint writer, parser and renderer.
package sexp

import "math"

// Footprint files store lengths in millimetres and angles in degrees.
// Values are rounded to this resolution before they are written.
const Resolution = 1e-6

// Position represents a 2D coordinate in millimetres. Y grows downward, as in KiCad.
type Position struct {
	X float64
	Y float64
}

// Add returns p translated by q
func (p Position) Add(q Position) Position {
	return Position{X: p.X + q.X, Y: p.Y + q.Y}
}

// Distance returns the euclidean distance between p and q
func (p Position) Distance(q Position) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Angle represents rotation in degrees
type Angle float64

// PositionAngle combines position with rotation
type PositionAngle struct {
	Position
	Angle Angle
}

// Size represents dimensions in millimetres
type Size struct {
	Width  float64
	Height float64
}

// Stroke defines line appearance
type Stroke struct {
	Width float64 // Line width in mm
	Type  string  // solid, dash, dot...
}

// BoundingBox represents a rectangular boundary
type BoundingBox struct {
	Min Position
	Max Position
}

// NewBoundingBox creates an empty bounding box
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Position{X: math.Inf(1), Y: math.Inf(1)},
		Max: Position{X: math.Inf(-1), Y: math.Inf(-1)},
	}
}

// IsEmpty checks if the bounding box is empty
func (bb BoundingBox) IsEmpty() bool {
	return bb.Min.X > bb.Max.X || bb.Min.Y > bb.Max.Y
}

// Expand grows the box to include pos
func (bb *BoundingBox) Expand(pos Position) {
	bb.Min.X = math.Min(bb.Min.X, pos.X)
	bb.Min.Y = math.Min(bb.Min.Y, pos.Y)
	bb.Max.X = math.Max(bb.Max.X, pos.X)
	bb.Max.Y = math.Max(bb.Max.Y, pos.Y)
}

// ExpandRect grows the box to include a rectangle of the given size centred on pos
func (bb *BoundingBox) ExpandRect(pos Position, size Size) {
	bb.Expand(Position{X: pos.X - size.Width/2, Y: pos.Y - size.Height/2})
	bb.Expand(Position{X: pos.X + size.Width/2, Y: pos.Y + size.Height/2})
}

// ExpandBox expands to include another bounding box
func (bb *BoundingBox) ExpandBox(other BoundingBox) {
	if !other.IsEmpty() {
		bb.Expand(other.Min)
		bb.Expand(other.Max)
	}
}

// Contains checks if a position is within the bounding box
func (bb BoundingBox) Contains(pos Position) bool {
	return pos.X >= bb.Min.X && pos.X <= bb.Max.X &&
		pos.Y >= bb.Min.Y && pos.Y <= bb.Max.Y
}

// Width returns the width of the bounding box
func (bb BoundingBox) Width() float64 {
	if bb.IsEmpty() {
		return 0
	}
	return bb.Max.X - bb.Min.X
}

// Height returns the height of the bounding box
func (bb BoundingBox) Height() float64 {
	if bb.IsEmpty() {
		return 0
	}
	return bb.Max.Y - bb.Min.Y
}

// Center returns the center point of the bounding box
func (bb BoundingBox) Center() Position {
	return Position{
		X: (bb.Min.X + bb.Max.X) / 2.0,
		Y: (bb.Min.Y + bb.Max.Y) / 2.0,
	}
}

// UUID is the element identifier KiCad stores in tstamp/uuid nodes
type UUID string
