package theme

import "testing"

func TestResolve(t *testing.T) {
	if got := Resolve("catppuccin", true).Name; got != "catppuccin-mocha" {
		t.Fatalf("catppuccin dark = %s", got)
	}
	if got := Resolve("catppuccin", false).Name; got != "catppuccin-latte" {
		t.Fatalf("catppuccin light = %s", got)
	}
	if got := Resolve("no-such-palette", true).Name; got != "flexoki-dark" {
		t.Fatalf("unknown palette dark = %s, want flexoki-dark", got)
	}
}

func TestSetActive(t *testing.T) {
	defer func() { Active = FlexokiLight }()

	SetActive("tokyo-night", false)
	if Active.Name != "tokyo-night-day" {
		t.Fatalf("Active = %s", Active.Name)
	}
}
