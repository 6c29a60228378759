package config

import "testing"

func TestOutputRoot(t *testing.T) {
	c := Config{ContentDir: "/content"}
	if got := c.OutputRoot(); got != "/content" {
		t.Errorf("OutputRoot = %q, want content dir", got)
	}
	if !c.InPlace() {
		t.Error("expected in-place build when no output dir set")
	}

	c.OutputDir = "/public"
	if got := c.OutputRoot(); got != "/public" {
		t.Errorf("OutputRoot = %q, want output dir", got)
	}
	if c.InPlace() {
		t.Error("expected separate-output build")
	}
}

func TestAbsoluteBase(t *testing.T) {
	c := Config{BaseURL: "https://example.org/"}
	if got := c.AbsoluteBase(); got != "https://example.org" {
		t.Errorf("AbsoluteBase = %q", got)
	}
}

func TestLocation(t *testing.T) {
	c := Config{Timezone: "America/New_York"}
	if _, err := c.Location(); err != nil {
		t.Errorf("Location: %v", err)
	}
	c.Timezone = "Not/AZone"
	if _, err := c.Location(); err == nil {
		t.Error("expected error for unknown timezone")
	}
}
