package kicadsexp

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"
)

// NewList builds a list from its elements
func NewList(elements ...Sexp) *List {
	return &List{elements: elements}
}

// Node builds a keyword list such as (at 1 2)
func Node(key string, args ...Sexp) *List {
	return &List{elements: append([]Sexp{Symbol(key)}, args...)}
}

// Append adds elements to the end of l and returns it
func (l *List) Append(elements ...Sexp) *List {
	l.elements = append(l.elements, elements...)
	return l
}

// Float renders a millimetre or degree value with at most six decimals and
// no trailing zeros, the way KiCad writes coordinates.
func Float(v float64) Symbol {
	v = math.Round(v*1e6) / 1e6
	if v == 0 {
		// avoid "-0"
		v = 0
	}
	s := strconv.FormatFloat(v, 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return Symbol(s)
}

// Int renders an integer atom
func Int(v int) Symbol {
	return Symbol(strconv.Itoa(v))
}

func quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// Write renders s to w. The children of the top-level list are placed on
// their own lines, indented by two spaces; everything below is inline.
func Write(w io.Writer, s Sexp) error {
	bw := bufio.NewWriter(w)

	l, ok := s.(*List)
	if !ok {
		bw.WriteString(s.String())
		bw.WriteByte('\n')
		return bw.Flush()
	}

	bw.WriteByte('(')
	for i, elem := range l.elements {
		if i > 0 && !elem.IsLeaf() {
			bw.WriteString("\n  ")
		} else if i > 0 {
			bw.WriteByte(' ')
		}
		var sb strings.Builder
		writeInline(&sb, elem)
		bw.WriteString(sb.String())
	}
	bw.WriteString("\n)\n")
	return bw.Flush()
}

func writeInline(sb *strings.Builder, s Sexp) {
	l, ok := s.(*List)
	if !ok {
		sb.WriteString(s.String())
		return
	}
	sb.WriteByte('(')
	for i, elem := range l.elements {
		if i > 0 {
			sb.WriteByte(' ')
		}
		writeInline(sb, elem)
	}
	sb.WriteByte(')')
}
