package ui

import "testing"

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames() returned %d names, want 3", len(names))
	}
	if names[0] != "Pokedex" || names[1] != "Nightfox" || names[2] != "Kanagawa" {
		t.Fatalf("ThemeNames() = %v, want [Pokedex Nightfox Kanagawa]", names)
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Pokedex"); got != "Nightfox" {
		t.Fatalf("NextTheme(Pokedex) = %q, want Nightfox", got)
	}
	if got := NextTheme("Kanagawa"); got != "Pokedex" {
		t.Fatalf("NextTheme(Kanagawa) = %q, want Pokedex", got)
	}
	if got := NextTheme("Unknown"); got != "Pokedex" {
		t.Fatalf("NextTheme(Unknown) = %q, want Pokedex", got)
	}
}

func TestGetTheme_FallsBack(t *testing.T) {
	if got := GetTheme("Nope").Name; got != "Pokedex" {
		t.Fatalf("GetTheme(Nope).Name = %q, want Pokedex", got)
	}
	if got := GetTheme("Kanagawa").Name; got != "Kanagawa" {
		t.Fatalf("GetTheme(Kanagawa).Name = %q, want Kanagawa", got)
	}
}

func TestTypeColor(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		if len(th.TypeColors) != 18 {
			t.Fatalf("%s has %d type colors, want 18", name, len(th.TypeColors))
		}
		if got := th.TypeColor("  Fire "); got != th.TypeColors["fire"] {
			t.Fatalf("%s TypeColor(Fire) = %q, want %q", name, got, th.TypeColors["fire"])
		}
		if got := th.TypeColor("shadow"); got != th.Muted {
			t.Fatalf("%s TypeColor(shadow) = %q, want Muted %q", name, got, th.Muted)
		}
	}
}
