package sexp

import (
	"fmt"
	"strconv"

	"github.com/OpenTraceLab/OpenTraceFootprint/pkg/kicad/sexp/kicadsexp"
)

// S-expression navigation helpers

// FindNode searches for a child list whose first symbol is key.
// Example: FindNode(pad, "at") finds (at 1.5 -3.15) in a pad list
func FindNode(s kicadsexp.Sexp, key string) (kicadsexp.Sexp, bool) {
	for _, item := range GetListItems(s) {
		if item.IsLeaf() {
			continue
		}
		if name, err := GetNodeName(item); err == nil && name == key {
			return item, true
		}
	}
	return nil, false
}

// FindAllNodes finds all child lists with the given key, in document order
func FindAllNodes(s kicadsexp.Sexp, key string) []kicadsexp.Sexp {
	var results []kicadsexp.Sexp
	for _, item := range GetListItems(s) {
		if item.IsLeaf() {
			continue
		}
		if name, err := GetNodeName(item); err == nil && name == key {
			results = append(results, item)
		}
	}
	return results
}

// GetListItems returns all items in a list excluding the leading key.
// Example: GetListItems((layers "F.Cu" "F.Mask")) returns ["F.Cu", "F.Mask"]
func GetListItems(s kicadsexp.Sexp) []kicadsexp.Sexp {
	items := SexpToSlice(s)
	if len(items) <= 1 {
		return nil
	}
	return items[1:]
}

// SexpToSlice converts an s-expression list to a Go slice
func SexpToSlice(s kicadsexp.Sexp) []kicadsexp.Sexp {
	if s == nil || s.IsLeaf() {
		return nil
	}
	if l, ok := s.(*kicadsexp.List); ok {
		return l.Items()
	}

	var items []kicadsexp.Sexp
	for s != nil && !s.IsLeaf() && s.LeafCount() > 0 {
		if head := s.Head(); head != nil {
			items = append(items, head)
		}
		s = s.Tail()
	}
	return items
}

// Typed value extraction helpers

// GetString extracts the atom at index. Index 0 is the key, 1 is the first value.
func GetString(s kicadsexp.Sexp, index int) (string, error) {
	if s == nil || s.IsLeaf() {
		return "", fmt.Errorf("expected list, got leaf")
	}

	items := SexpToSlice(s)
	if index < 0 || index >= len(items) {
		return "", fmt.Errorf("index %d out of bounds (length %d)", index, len(items))
	}

	if !items[index].IsLeaf() {
		return "", fmt.Errorf("expected atom at index %d, got list", index)
	}
	return kicadsexp.AtomValue(items[index]), nil
}

// GetFloat extracts a float64 value at the given index
func GetFloat(s kicadsexp.Sexp, index int) (float64, error) {
	str, err := GetString(s, index)
	if err != nil {
		return 0, err
	}

	val, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse float %q: %w", str, err)
	}
	return val, nil
}

// GetInt extracts an int value at the given index
func GetInt(s kicadsexp.Sexp, index int) (int, error) {
	str, err := GetString(s, index)
	if err != nil {
		return 0, err
	}

	val, err := strconv.Atoi(str)
	if err != nil {
		return 0, fmt.Errorf("failed to parse int %q: %w", str, err)
	}
	return val, nil
}

// GetNodeName returns the first symbol of a list (the node type)
func GetNodeName(s kicadsexp.Sexp) (string, error) {
	if s == nil {
		return "", fmt.Errorf("nil node")
	}
	if s.IsLeaf() {
		return kicadsexp.AtomValue(s), nil
	}

	head := s.Head()
	if head == nil || !head.IsLeaf() {
		return "", fmt.Errorf("expected symbol at head of list")
	}
	return kicadsexp.AtomValue(head), nil
}

// HasSymbol checks if a list contains a specific bare atom
func HasSymbol(s kicadsexp.Sexp, symbol string) bool {
	for _, item := range GetListItems(s) {
		if item.IsLeaf() && kicadsexp.AtomValue(item) == symbol {
			return true
		}
	}
	return false
}

// Domain-specific extraction helpers

// GetPosition extracts a position from an (at X Y [angle]) node.
// Footprint files are already in mm and degrees.
func GetPosition(s kicadsexp.Sexp) (PositionAngle, error) {
	key, err := GetNodeName(s)
	if err != nil {
		return PositionAngle{}, err
	}
	if key != "at" {
		return PositionAngle{}, fmt.Errorf("expected 'at', got %q", key)
	}

	xy, err := GetPositionXY(s)
	if err != nil {
		return PositionAngle{}, err
	}

	result := PositionAngle{Position: xy}
	if angle, err := GetFloat(s, 3); err == nil {
		result.Angle = Angle(angle)
	}
	return result, nil
}

// GetPositionXY extracts X,Y from (start X Y), (end X Y), (center X Y) and friends
func GetPositionXY(s kicadsexp.Sexp) (Position, error) {
	x, err := GetFloat(s, 1)
	if err != nil {
		return Position{}, fmt.Errorf("failed to parse X: %w", err)
	}
	y, err := GetFloat(s, 2)
	if err != nil {
		return Position{}, fmt.Errorf("failed to parse Y: %w", err)
	}
	return Position{X: x, Y: y}, nil
}

// GetSize extracts (size W H)
func GetSize(s kicadsexp.Sexp) (Size, error) {
	w, err := GetFloat(s, 1)
	if err != nil {
		return Size{}, fmt.Errorf("failed to parse width: %w", err)
	}
	h, err := GetFloat(s, 2)
	if err != nil {
		return Size{}, fmt.Errorf("failed to parse height: %w", err)
	}
	return Size{Width: w, Height: h}, nil
}

// GetStroke extracts the line width of a graphic item. KiCad 6 writes
// (stroke (width W) (type solid)); older files use a bare (width W).
func GetStroke(s kicadsexp.Sexp) Stroke {
	stroke := Stroke{Width: 0.12, Type: "solid"}

	if strokeNode, ok := FindNode(s, "stroke"); ok {
		s = strokeNode
		if typeNode, ok := FindNode(s, "type"); ok {
			if t, err := GetString(typeNode, 1); err == nil {
				stroke.Type = t
			}
		}
	}
	if widthNode, ok := FindNode(s, "width"); ok {
		if w, err := GetFloat(widthNode, 1); err == nil {
			stroke.Width = w
		}
	}
	return stroke
}

// GetUUID extracts an identifier from a (uuid ...) or (tstamp ...) child
func GetUUID(s kicadsexp.Sexp) (UUID, bool) {
	for _, key := range []string{"tstamp", "uuid"} {
		if node, ok := FindNode(s, key); ok {
			if id, err := GetString(node, 1); err == nil {
				return UUID(id), true
			}
		}
	}
	return "", false
}
