package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/OpenTraceLab/OpenTraceFootprint/internal/config"
	"github.com/OpenTraceLab/OpenTraceFootprint/pkg/footprint"
	"github.com/OpenTraceLab/OpenTraceFootprint/pkg/footprint/paramexpr"
)

// paramFlags are the override flags shared by generate and view
type paramFlags struct {
	sets       []string
	paramsFile string
}

// resolve builds w's parameter list. Later sources win: wizard defaults,
// the config file, --params, then each --set in order.
func (f paramFlags) resolve(ctx context.Context, w footprint.Wizard) (*footprint.Params, error) {
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)

	p := w.Parameters()

	if defaults := cfg.WizardDefaults(w.Name()); len(defaults) > 0 {
		as, err := configAssignments(defaults)
		if err != nil {
			return nil, fmt.Errorf("config defaults for %s: %w", w.Name(), err)
		}
		if err := paramexpr.Apply(p, as); err != nil {
			return nil, fmt.Errorf("config defaults for %s: %w", w.Name(), err)
		}
		logger.Debug("applied config defaults", "wizard", w.Name(), "count", len(as))
	}

	if f.paramsFile != "" {
		as, err := paramexpr.ParseFile(f.paramsFile)
		if err != nil {
			return nil, err
		}
		if err := paramexpr.Apply(p, as); err != nil {
			return nil, fmt.Errorf("%s: %w", f.paramsFile, err)
		}
		logger.Debug("applied parameter file", "path", f.paramsFile, "count", len(as))
	}

	for _, s := range f.sets {
		as, err := paramexpr.ParseString(s)
		if err != nil {
			return nil, fmt.Errorf("--set %q: %w", s, err)
		}
		if err := paramexpr.Apply(p, as); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// configAssignments turns the [defaults.<wizard>] table of the config into
// assignments, sorted by key so they apply in a stable order.
func configAssignments(defaults map[string]any) ([]paramexpr.Assignment, error) {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]paramexpr.Assignment, 0, len(keys))
	for _, k := range keys {
		page, key, ok := strings.Cut(k, ".")
		if !ok || page == "" || key == "" {
			return nil, fmt.Errorf("bad parameter key %q, want Page.param name", k)
		}

		v := defaults[k]
		if n, ok := v.(int64); ok {
			v = int(n)
		}
		out = append(out, paramexpr.Assignment{Page: page, Key: key, Value: v})
	}
	return out, nil
}

// textOptions turns the [text] config into recorder options
func textOptions(cfg *config.Config) []footprint.Option {
	return []footprint.Option{
		footprint.WithTextSize(cfg.Text.SizeMM),
		footprint.WithTextThickness(cfg.Text.ThicknessMM),
		footprint.WithReference(cfg.Text.Reference),
	}
}

// generate runs w with the resolved parameters. The footprint is named
// after its value, as KiCad names wizard output.
func generate(ctx context.Context, w footprint.Wizard, flags paramFlags) (*footprint.Footprint, error) {
	p, err := flags.resolve(ctx, w)
	if err != nil {
		return nil, err
	}

	fp, err := footprint.Generate(w, p, textOptions(configFromContext(ctx))...)
	if err != nil {
		return nil, err
	}
	if fp.Value != "" {
		fp.Name = fp.Value
	}

	loggerFromContext(ctx).Debug("footprint generated",
		"wizard", w.Name(), "name", fp.Name, "pads", len(fp.Pads), "lines", len(fp.Lines))
	return fp, nil
}
