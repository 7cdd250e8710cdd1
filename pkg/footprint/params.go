package footprint

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unit is the value type of a wizard parameter
type Unit string

const (
	UnitInteger  Unit = "integer"
	UnitUInteger Unit = "unsigned"
	UnitMM       Unit = "mm"
	UnitBool     Unit = "bool"
	UnitString   Unit = "string"
)

// Param is one wizard parameter. Values are normalised on Set: integer units
// hold int, mm holds float64, bool holds bool and string holds string.
type Param struct {
	Page    string
	Name    string
	Unit    Unit
	Default any
	Hint    string
	value   any
}

// Value returns the current value, or the default when unset
func (p *Param) Value() any {
	if p.value == nil {
		return p.Default
	}
	return p.value
}

// Key returns the "Page.name" form used in messages and overrides
func (p *Param) Key() string {
	return p.Page + "." + p.Name
}

// Params is an ordered list of parameters grouped by page
type Params struct {
	list []*Param
}

// NewParams creates an empty parameter list
func NewParams() *Params {
	return &Params{}
}

// Add declares a parameter. Declaring the same page/name twice replaces the
// previous declaration.
func (ps *Params) Add(page, name string, unit Unit, def any, hint string) *Param {
	p := &Param{Page: page, Name: name, Unit: unit, Hint: hint}
	if v, err := coerce(unit, def); err == nil {
		p.Default = v
	} else {
		p.Default = def
	}

	for i, existing := range ps.list {
		if existing.Page == page && existing.Name == name {
			ps.list[i] = p
			return p
		}
	}
	ps.list = append(ps.list, p)
	return p
}

// All returns the parameters in declaration order
func (ps *Params) All() []*Param {
	return ps.list
}

// Pages returns the distinct page names in declaration order
func (ps *Params) Pages() []string {
	var pages []string
	seen := make(map[string]bool)
	for _, p := range ps.list {
		if !seen[p.Page] {
			seen[p.Page] = true
			pages = append(pages, p.Page)
		}
	}
	return pages
}

// Lookup finds a parameter by page and name. Names match case-insensitively.
func (ps *Params) Lookup(page, name string) (*Param, bool) {
	for _, p := range ps.list {
		if strings.EqualFold(p.Page, page) && strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return nil, false
}

// Set assigns a value, converting strings and numbers to the parameter's unit
func (ps *Params) Set(page, name string, raw any) error {
	p, ok := ps.Lookup(page, name)
	if !ok {
		return fmt.Errorf("unknown parameter %s.%s", page, name)
	}

	v, err := coerce(p.Unit, raw)
	if err != nil {
		return &InvalidParameterError{Page: p.Page, Name: p.Name, Value: raw, Reason: err.Error()}
	}
	p.value = v
	return nil
}

// Int returns an integer parameter, or 0 when it is missing or not an integer
func (ps *Params) Int(page, name string) int {
	if p, ok := ps.Lookup(page, name); ok {
		if v, ok := p.Value().(int); ok {
			return v
		}
	}
	return 0
}

// MM returns a millimetre parameter, or 0 when missing
func (ps *Params) MM(page, name string) float64 {
	if p, ok := ps.Lookup(page, name); ok {
		switch v := p.Value().(type) {
		case float64:
			return v
		case int:
			return float64(v)
		}
	}
	return 0
}

// Clone returns a deep copy, so a wizard's defaults are never mutated
func (ps *Params) Clone() *Params {
	out := &Params{list: make([]*Param, len(ps.list))}
	for i, p := range ps.list {
		cp := *p
		out.list[i] = &cp
	}
	return out
}

func coerce(unit Unit, raw any) (any, error) {
	switch unit {
	case UnitInteger, UnitUInteger:
		var n int
		switch v := raw.(type) {
		case int:
			n = v
		case int64:
			n = int(v)
		case float64:
			if v != math.Trunc(v) {
				return nil, fmt.Errorf("%v is not an integer", v)
			}
			n = int(v)
		case string:
			parsed, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return nil, fmt.Errorf("%q is not an integer", v)
			}
			n = parsed
		default:
			return nil, fmt.Errorf("expected integer, got %T", raw)
		}
		if unit == UnitUInteger && n < 0 {
			return nil, fmt.Errorf("%d is negative", n)
		}
		return n, nil

	case UnitMM:
		switch v := raw.(type) {
		case float64:
			return v, nil
		case int:
			return float64(v), nil
		case int64:
			return float64(v), nil
		case string:
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return nil, fmt.Errorf("%q is not a number", v)
			}
			return f, nil
		default:
			return nil, fmt.Errorf("expected number, got %T", raw)
		}

	case UnitBool:
		switch v := raw.(type) {
		case bool:
			return v, nil
		case string:
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				return nil, fmt.Errorf("%q is not a boolean", v)
			}
			return b, nil
		default:
			return nil, fmt.Errorf("expected boolean, got %T", raw)
		}

	case UnitString:
		return fmt.Sprint(raw), nil
	}
	return nil, fmt.Errorf("unknown unit %q", unit)
}

// CheckOption adds a constraint to CheckParam
type CheckOption func(*checkConfig)

type checkConfig struct {
	min      *float64
	max      *float64
	multiple int
	info     string
}

// MinValue rejects values below v
func MinValue(v float64) CheckOption {
	return func(c *checkConfig) { c.min = &v }
}

// MaxValue rejects values above v
func MaxValue(v float64) CheckOption {
	return func(c *checkConfig) { c.max = &v }
}

// Multiple rejects integers that are not a multiple of n
func Multiple(n int) CheckOption {
	return func(c *checkConfig) { c.multiple = n }
}

// Info attaches the explanation shown when the check fails
func Info(s string) CheckOption {
	return func(c *checkConfig) { c.info = s }
}

// CheckParam validates one numeric parameter against the given constraints.
// Every failing constraint yields an *InvalidParameterError; several are
// combined with errors.Join.
func (ps *Params) CheckParam(page, name string, opts ...CheckOption) error {
	var cfg checkConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	p, ok := ps.Lookup(page, name)
	if !ok {
		return &InvalidParameterError{Page: page, Name: name, Reason: "not declared", Info: cfg.info}
	}

	var errs []error
	fail := func(reason string) {
		errs = append(errs, &InvalidParameterError{Page: p.Page, Name: p.Name, Value: p.Value(), Reason: reason, Info: cfg.info})
	}

	var value float64
	switch v := p.Value().(type) {
	case int:
		value = float64(v)
		if cfg.multiple > 0 && v%cfg.multiple != 0 {
			fail(fmt.Sprintf("not a multiple of %d", cfg.multiple))
		}
	case float64:
		value = v
		if cfg.multiple > 0 {
			fail("not an integer")
		}
	default:
		fail(fmt.Sprintf("not numeric (%T)", v))
		return errs[0]
	}

	if cfg.min != nil && value < *cfg.min {
		fail(fmt.Sprintf("below minimum %g", *cfg.min))
	}
	if cfg.max != nil && value > *cfg.max {
		fail(fmt.Sprintf("above maximum %g", *cfg.max))
	}

	if len(errs) == 1 {
		return errs[0]
	}
	return errors.Join(errs...)
}
