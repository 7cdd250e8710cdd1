package footprint

import "fmt"

// Wizard generates a footprint from a parameter list
type Wizard interface {
	// Name is the registry key and the footprint name
	Name() string
	Description() string

	// Parameters returns a fresh parameter list holding the defaults
	Parameters() *Params

	// Value is the text of the footprint's value field
	Value(p *Params) string

	// Check validates p; it returns nil or errors wrapping *InvalidParameterError
	Check(p *Params) error

	// Build emits the footprint into s. p has already passed Check.
	Build(p *Params, s Surface) error
}

// Generate validates p against w and records the footprint w builds. A nil p
// means the wizard's defaults. Nothing is built when validation fails.
func Generate(w Wizard, p *Params, opts ...Option) (*Footprint, error) {
	if p == nil {
		p = w.Parameters()
	}

	if err := w.Check(p); err != nil {
		return nil, err
	}

	rec := NewRecorder(w.Name(), w.Value(p), opts...)
	if err := w.Build(p, rec); err != nil {
		return nil, fmt.Errorf("build %s: %w", w.Name(), err)
	}

	fp := rec.Footprint()
	fp.Description = w.Description()
	return fp, nil
}
