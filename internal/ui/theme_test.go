package ui

import "testing"

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	want := []string{"Phosphor", "Amber", "Mono"}
	if len(names) != len(want) {
		t.Fatalf("ThemeNames() returned %d names, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("ThemeNames() = %v, want %v", names, want)
		}
	}
}

func TestNextTheme(t *testing.T) {
	tests := []struct {
		current string
		want    string
	}{
		{"Phosphor", "Amber"},
		{"Amber", "Mono"},
		{"Mono", "Phosphor"},
		{"Unknown", "Phosphor"},
	}
	for _, tt := range tests {
		if got := NextTheme(tt.current); got != tt.want {
			t.Fatalf("NextTheme(%q) = %q, want %q", tt.current, got, tt.want)
		}
	}
}

func TestGetTheme(t *testing.T) {
	for _, name := range ThemeNames() {
		if got := GetTheme(name).Name; got != name {
			t.Fatalf("GetTheme(%q).Name = %q, want %q", name, got, name)
		}
	}
	if got := GetTheme("Unknown").Name; got != "Phosphor" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Phosphor (fallback)", got)
	}
}

func TestThemesDefineEveryColor(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		colors := map[string]string{
			"Background": th.Background,
			"Surface":    th.Surface,
			"Border":     th.Border,
			"Text":       th.Text,
			"Muted":      th.Muted,
			"Faint":      th.Faint,
			"Accent":     th.Accent,
			"Success":    th.Success,
			"Warning":    th.Warning,
			"Danger":     th.Danger,
		}
		for field, c := range colors {
			if len(c) != 7 || c[0] != '#' {
				t.Fatalf("%s.%s = %q, want #rrggbb", name, field, c)
			}
		}
	}
}
