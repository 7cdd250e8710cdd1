package paramexpr

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenTraceLab/OpenTraceFootprint/pkg/footprint"
)

func TestParseString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Assignment
	}{
		{
			name:  "integer",
			input: "Pins.pin count = 60",
			want:  []Assignment{{Page: "Pins", Key: "pin count", Value: 60}},
		},
		{
			name:  "negative and decimal",
			input: "Pads.offset = -2; Pads.pitch = 0.5",
			want: []Assignment{
				{Page: "Pads", Key: "offset", Value: -2},
				{Page: "Pads", Key: "pitch", Value: 0.5},
			},
		},
		{
			name:  "bool string and word",
			input: "Body.silk = false\nText.label = \"FX23 #1\"\nText.font = mono\n",
			want: []Assignment{
				{Page: "Body", Key: "silk", Value: false},
				{Page: "Text", Key: "label", Value: "FX23 #1"},
				{Page: "Text", Key: "font", Value: "mono"},
			},
		},
		{
			name:  "comments and blank lines",
			input: "# overrides\n\nPins.pin count=24   # smallest stocked\n\n",
			want:  []Assignment{{Page: "Pins", Key: "pin count", Value: 24}},
		},
		{
			name:  "empty",
			input: "",
			want:  []Assignment{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseString(tt.input)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseString() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseStringErrors(t *testing.T) {
	for _, input := range []string{
		"pin count = 60",
		"Pins.pin count 60",
		"Pins.pin count = ",
		"Pins. = 3",
	} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseString(input)
			assert.Error(t, err)
		})
	}
}

func TestAssignmentString(t *testing.T) {
	assert.Equal(t, "Pins.pin count = 60", Assignment{Page: "Pins", Key: "pin count", Value: 60}.String())
	assert.Equal(t, "Pads.pitch = 1.0", Assignment{Page: "Pads", Key: "pitch", Value: 1.0}.String())
	assert.Equal(t, `Text.label = "a b"`, Assignment{Page: "Text", Key: "label", Value: "a b"}.String())

	// String output parses back to the same assignment
	a := Assignment{Page: "Pads", Key: "pitch", Value: 0.65}
	got, err := ParseString(a.String())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, a, got[0])
}

func TestApply(t *testing.T) {
	p := footprint.NewParams()
	p.Add("Pins", "pin count", footprint.UnitUInteger, 100, "")
	p.Add("Pads", "pitch", footprint.UnitMM, 0.5, "")

	as, err := ParseString("pins.PIN COUNT = 40\nPads.pitch = 1")
	require.NoError(t, err)
	require.NoError(t, Apply(p, as))

	assert.Equal(t, 40, p.Int("Pins", "pin count"))
	assert.Equal(t, 1.0, p.MM("Pads", "pitch"))

	as, err = ParseString("Pins.pin count = 1.5")
	require.NoError(t, err)
	assert.ErrorIs(t, Apply(p, as), footprint.ErrInvalidParameter)

	as, err = ParseString("Pins.rows = 2")
	require.NoError(t, err)
	assert.Error(t, Apply(p, as))
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fx23.params")
	require.NoError(t, os.WriteFile(path, []byte("Pins.pin count = 80\n"), 0o644))

	got, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, []Assignment{{Page: "Pins", Key: "pin count", Value: 80}}, got)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
