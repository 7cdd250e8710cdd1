package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenTraceLab/OpenTraceFootprint/pkg/footprint"
	"github.com/OpenTraceLab/OpenTraceFootprint/pkg/footprint/fx23"
)

type namedWizard struct {
	footprint.Wizard
	name string
}

func (w namedWizard) Name() string { return w.name }

func TestRegisterAndLookup(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(fx23.New()))

	w, err := r.Lookup("hirose_fx23")
	require.NoError(t, err)
	assert.Equal(t, "Hirose_FX23", w.Name())

	_, err = r.Lookup("qfn")
	assert.Error(t, err)
}

func TestRegisterDuplicate(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(fx23.New()))
	assert.Error(t, r.Register(namedWizard{Wizard: fx23.New(), name: "HIROSE_FX23"}))
	assert.Error(t, r.Register(namedWizard{Wizard: fx23.New()}))
	assert.Len(t, r.Names(), 1)
}

func TestNamesSorted(t *testing.T) {
	r := New()
	r.MustRegister(
		namedWizard{Wizard: fx23.New(), name: "b"},
		namedWizard{Wizard: fx23.New(), name: "C"},
		namedWizard{Wizard: fx23.New(), name: "a"},
	)

	assert.Equal(t, []string{"C", "a", "b"}, r.Names())

	ws := r.Wizards()
	require.Len(t, ws, 3)
	assert.Equal(t, "C", ws[0].Name())

	assert.Panics(t, func() { r.MustRegister(namedWizard{Wizard: fx23.New(), name: "a"}) })
}
