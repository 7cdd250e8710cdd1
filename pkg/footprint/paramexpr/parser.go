// Package paramexpr parses wizard parameter overrides written as
//
//	Page.param name = value
//
// one per line or separated by semicolons. Values are integers, decimals,
// true/false, double-quoted strings or a single bare word. Lines starting
// with # are comments.
package paramexpr

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"

	"github.com/OpenTraceLab/OpenTraceFootprint/pkg/footprint"
)

var parser = participle.MustBuild[File](
	participle.Lexer(Lexer),
	participle.Elide("Comment", "Whitespace"),
	participle.Unquote("String"),
	participle.UseLookahead(2),
)

// Assignment sets one parameter
type Assignment struct {
	Page  string
	Key   string
	Value any
}

func (a Assignment) String() string {
	var v string
	switch val := a.Value.(type) {
	case string:
		v = strconv.Quote(val)
	case float64:
		v = strconv.FormatFloat(val, 'f', -1, 64)
		if !strings.ContainsAny(v, ".eE") {
			v += ".0"
		}
	default:
		v = fmt.Sprint(val)
	}
	return fmt.Sprintf("%s.%s = %s", a.Page, a.Key, v)
}

// ParseString parses overrides from a string
func ParseString(input string) ([]Assignment, error) {
	f, err := parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return assignments(f), nil
}

// Parse parses overrides from a reader
func Parse(r io.Reader) ([]Assignment, error) {
	f, err := parser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return assignments(f), nil
}

// ParseFile parses an overrides file
func ParseFile(filename string) ([]Assignment, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	f, err := parser.Parse(filename, file)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return assignments(f), nil
}

func assignments(f *File) []Assignment {
	out := make([]Assignment, 0, len(f.Entries))
	for _, e := range f.Entries {
		out = append(out, Assignment{
			Page:  strings.Join(e.Page, " "),
			Key:   strings.Join(e.Key, " "),
			Value: e.Value.Any(),
		})
	}
	return out
}

// Apply sets every assignment on p, in order. It stops at the first failure;
// unknown parameters and values of the wrong type are both errors.
func Apply(p *footprint.Params, as []Assignment) error {
	for _, a := range as {
		if err := p.Set(a.Page, a.Key, a.Value); err != nil {
			return err
		}
	}
	return nil
}
