package kicadsexp

import (
	"bytes"
	"testing"
)

func TestFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{-3.15, "-3.15"},
		{0.1 + 0.2, "0.3"},
		{37.2, "37.2"},
		{-0.0000001, "0"},
		{12.3456789, "12.345679"},
	}
	for _, tt := range tests {
		if got := Float(tt.in); string(got) != tt.want {
			t.Errorf("Float(%v) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestWriteRoundTrip(t *testing.T) {
	tree := Node("footprint", String("Hirose_FX23"),
		Node("layer", String("F.Cu")),
		Node("descr", String(`say "hi"`)),
		Node("pad", String("1"), Symbol("smd"), Symbol("rect"),
			Node("at", Float(-12.25), Float(-3.15)),
			Node("size", Float(0.3), Float(1.9))),
	)

	var buf bytes.Buffer
	if err := Write(&buf, tree); err != nil {
		t.Fatal(err)
	}

	want := "(footprint \"Hirose_FX23\"\n" +
		"  (layer \"F.Cu\")\n" +
		"  (descr \"say \\\"hi\\\"\")\n" +
		"  (pad \"1\" smd rect (at -12.25 -3.15) (size 0.3 1.9))\n" +
		")\n"
	if buf.String() != want {
		t.Errorf("Write() =\n%s\nwant\n%s", buf.String(), want)
	}

	parsed, err := Parse(&buf)
	if err != nil {
		t.Fatalf("re-parse failed: %v", err)
	}
	if parsed[0].String() != tree.String() {
		t.Errorf("round trip mismatch:\n%s\n%s", parsed[0].String(), tree.String())
	}
}
