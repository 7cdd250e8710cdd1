package config

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	const doc = `
[output]
library_dir = "lib/Connector_Hirose.pretty"

[text]
size_mm = 1.2

[view]
theme = "Nord"

[defaults.Hirose_FX23]
"Pins.pin count" = 60
`
	cfg, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, "lib/Connector_Hirose.pretty", cfg.Output.LibraryDir)
	assert.Equal(t, 1.2, cfg.Text.SizeMM)
	assert.Equal(t, 0.15, cfg.Text.ThicknessMM, "unset keys keep their defaults")
	assert.Equal(t, "Nord", cfg.View.Theme)
	assert.Equal(t, 1200, cfg.View.Width)

	defaults := cfg.WizardDefaults("hirose_fx23")
	require.NotNil(t, defaults)
	assert.Equal(t, int64(60), defaults["Pins.pin count"])
	assert.Nil(t, cfg.WizardDefaults("other"))
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"syntax", "[text\nsize_mm = 1", "invalid config"},
		{"unknown key", "[text]\nfont = \"mono\"", "unknown config keys: text.font"},
		{"bad size", "[text]\nsize_mm = 0", "text.size_mm must be positive"},
		{"bad view", "[view]\nwidth = -1", "view size must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err, "an explicit path must exist")

	path := filepath.Join(dir, "sub", "config.toml")
	want := Default()
	want.View.Theme = "Eagle"
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Eagle", got.View.Theme)
	assert.Equal(t, want.Text, got.Text)
}

func TestLoadDefaultPathMissing(t *testing.T) {
	t.Setenv("APPDATA", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Default().Encode(&buf))
	assert.Contains(t, buf.String(), "[text]")
	assert.Contains(t, buf.String(), "size_mm = 1.0")
}
