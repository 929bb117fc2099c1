package version

import (
	"testing"

	"github.com/fatih/color"
)

func TestColoredPlain(t *testing.T) {
	prevNoColor, prevVersion := color.NoColor, Version
	t.Cleanup(func() { color.NoColor, Version = prevNoColor, prevVersion })
	color.NoColor = true

	cases := map[string]string{
		"1.2.3":            "1.2.3",
		"0.1.0-dev":        "0.1.0-dev",
		"1.0.0-rc.1+build": "1.0.0-rc.1+build",
		"nightly":          "nightly",
		"":                 "dev",
	}
	for in, want := range cases {
		Version = in
		if got := Colored(); got != want {
			t.Errorf("Colored() with Version=%q = %q, want %q", in, got, want)
		}
	}
}

func TestColoredAddsEscapes(t *testing.T) {
	prevNoColor, prevVersion := color.NoColor, Version
	t.Cleanup(func() { color.NoColor, Version = prevNoColor, prevVersion })
	color.NoColor = false
	Version = "1.2.3"

	if got := Colored(); got == "1.2.3" {
		t.Fatal("Colored() should add colour escapes when colour is on")
	}
}
