package ui

import (
	"testing"
)

func TestSetThemeByName(t *testing.T) {
	original := GetCurrentTheme()
	defer SetCurrentTheme(original)

	cases := []struct {
		name string
		want string
	}{
		{"dark", "dark"},
		{"light", "light"},
		{"none", "none"},
		{"does-not-exist", "dark"},
	}
	for _, tc := range cases {
		SetTheme(tc.name)
		if got := GetCurrentTheme().Name; got != tc.want {
			t.Errorf("SetTheme(%q): active theme = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestInitThemeRespectsNoColorEnv(t *testing.T) {
	original := GetCurrentTheme()
	defer SetCurrentTheme(original)

	t.Setenv("NO_COLOR", "1")
	InitTheme(false)
	if GetCurrentTheme().Name != "none" {
		t.Errorf("with NO_COLOR set, theme = %q, want none", GetCurrentTheme().Name)
	}
}

func TestInitThemeFlagOverride(t *testing.T) {
	original := GetCurrentTheme()
	defer SetCurrentTheme(original)

	InitTheme(true)
	if GetCurrentTheme().Name != "none" {
		t.Errorf("InitTheme(true): theme = %q, want none", GetCurrentTheme().Name)
	}
}

func TestColorAccessorsFollowTheme(t *testing.T) {
	original := GetCurrentTheme()
	defer SetCurrentTheme(original)

	SetCurrentTheme(DarkTheme)
	if ColorGreen() != DarkTheme.Success {
		t.Errorf("ColorGreen() = %q, want %q", ColorGreen(), DarkTheme.Success)
	}
	if ColorReset() != DarkTheme.Reset {
		t.Errorf("ColorReset() = %q, want %q", ColorReset(), DarkTheme.Reset)
	}

	SetCurrentTheme(NoColorTheme)
	if ColorRed() != "" || ColorBold() != "" || ColorReset() != "" {
		t.Error("NoColorTheme accessors should all return empty strings")
	}
}

func TestNoColorTUIThemeSelected(t *testing.T) {
	original := GetCurrentTheme()
	defer SetCurrentTheme(original)

	SetCurrentTheme(NoColorTheme)
	if GetCurrentTUITheme() != NoColorTUITheme {
		t.Error("none theme should map to NoColorTUITheme")
	}
	SetCurrentTheme(DarkTheme)
	if GetCurrentTUITheme() != DarkTUITheme {
		t.Error("dark theme should map to DarkTUITheme")
	}
}
