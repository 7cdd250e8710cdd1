// Package kicadsexp provides a lightweight streaming S-expression reader and
// writer for KiCad footprint files. Quoted strings and bare symbols are kept
// apart so a parsed tree can be written back without losing its quoting.
package kicadsexp

import (
	"io"
	"strings"
)

// Sexp represents an S-expression node.
// It can be either a leaf (atom) or a list.
type Sexp interface {
	// IsLeaf returns true if this is an atom (not a list)
	IsLeaf() bool

	// LeafCount returns the number of elements in a list (1 for atoms)
	LeafCount() int

	// Head returns the first element of a list (the atom itself for atoms)
	Head() Sexp

	// Tail returns the rest of the list after the first element (nil for atoms)
	Tail() Sexp

	// String returns the S-expression text of the node
	String() string
}

// Symbol represents a bare atom (keyword, number, identifier)
type Symbol string

func (s Symbol) IsLeaf() bool   { return true }
func (s Symbol) LeafCount() int { return 1 }
func (s Symbol) Head() Sexp     { return s }
func (s Symbol) Tail() Sexp     { return nil }
func (s Symbol) String() string { return string(s) }

// String represents a quoted atom. String() renders it with quotes and escapes.
type String string

func (s String) IsLeaf() bool   { return true }
func (s String) LeafCount() int { return 1 }
func (s String) Head() Sexp     { return s }
func (s String) Tail() Sexp     { return nil }
func (s String) String() string { return quote(string(s)) }

// AtomValue returns the unquoted text of an atom, or "" for lists
func AtomValue(s Sexp) string {
	switch v := s.(type) {
	case Symbol:
		return string(v)
	case String:
		return string(v)
	default:
		return ""
	}
}

// List represents a list of S-expressions
type List struct {
	elements []Sexp
}

func (l *List) IsLeaf() bool { return false }

func (l *List) LeafCount() int {
	return len(l.elements)
}

func (l *List) Head() Sexp {
	if len(l.elements) == 0 {
		return nil
	}
	return l.elements[0]
}

func (l *List) Tail() Sexp {
	if len(l.elements) <= 1 {
		return nil
	}
	return &List{elements: l.elements[1:]}
}

func (l *List) String() string {
	var sb strings.Builder
	writeInline(&sb, l)
	return sb.String()
}

// Get returns the element at the given index
func (l *List) Get(index int) Sexp {
	if index < 0 || index >= len(l.elements) {
		return nil
	}
	return l.elements[index]
}

// Len returns the number of elements in the list
func (l *List) Len() int {
	return len(l.elements)
}

// Items returns the elements of the list. The slice must not be modified.
func (l *List) Items() []Sexp {
	return l.elements
}

// Parse parses all top-level S-expressions from an io.Reader.
func Parse(r io.Reader) ([]Sexp, error) {
	return NewParser(r).ParseAll()
}

// ParseString parses S-expressions from a string
func ParseString(s string) ([]Sexp, error) {
	return Parse(strings.NewReader(s))
}
