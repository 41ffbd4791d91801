package gamedata

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettings(t *testing.T) {
	settings, err := LoadSettings()
	if err != nil {
		t.Fatalf("Failed to load settings: %v", err)
	}

	if err := settings.Validate(); err != nil {
		t.Errorf("Embedded settings should be valid: %v", err)
	}
	if settings.Tiles.Floor != "floor" {
		t.Errorf("Expected floor tile 'floor', got %q", settings.Tiles.Floor)
	}
	if len(settings.EnemyKinds) != 2 {
		t.Fatalf("Expected 2 enemy kinds, got %d", len(settings.EnemyKinds))
	}
}

func TestSettingsReferencesResolve(t *testing.T) {
	settings := MustLoadSettings()
	tiles := MustLoadTileRegistry()
	actors := MustLoadActorDefRegistry()

	for _, id := range []string{settings.Tiles.Floor, settings.Tiles.Wall, settings.Tiles.OuterWall} {
		if tiles.GetByID(id) == nil {
			t.Errorf("Tile %q referenced by settings not found", id)
		}
	}
	for _, id := range settings.EnemyKinds {
		if actors.GetByID(id) == nil {
			t.Errorf("Actor %q referenced by settings not found", id)
		}
	}
}

func TestTileRegistry(t *testing.T) {
	registry, err := LoadTileRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	if registry.Count() != 3 {
		t.Errorf("Expected 3 tile types, got %d", registry.Count())
	}

	wall := registry.GetByID("wall")
	if wall == nil {
		t.Fatal("Wall not found by ID")
	}
	if wall.GlyphRune() != '#' {
		t.Errorf("Expected wall glyph '#', got %c", wall.GlyphRune())
	}
	if !wall.Destructible {
		t.Error("Expected wall to be destructible")
	}

	for _, def := range registry.All() {
		if def.MaxHealth <= 0 {
			t.Errorf("Tile %q has non-positive max health %d", def.ID, def.MaxHealth)
		}
	}

	if registry.GetByID("lava") != nil {
		t.Error("Unknown tile should not be found")
	}
}

func TestActorDefRegistry(t *testing.T) {
	registry, err := LoadActorDefRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	expected := map[string]string{"cow": "Cow", "fly": "Fly"}
	if registry.Count() != len(expected) {
		t.Errorf("Expected %d actor types, got %d", len(expected), registry.Count())
	}
	for id, name := range expected {
		def := registry.GetByID(id)
		if def == nil {
			t.Errorf("Actor %q not found", id)
			continue
		}
		if def.Name != name {
			t.Errorf("Expected name %q, got %q", name, def.Name)
		}
	}
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"zero width", func(s *Settings) { s.Grid.Width = 0 }},
		{"no interior column", func(s *Settings) { s.Grid.Width = 2 }},
		{"no interior row", func(s *Settings) { s.Grid.Height = 1 }},
		{"negative tile size", func(s *Settings) { s.Grid.TileHeight = -1 }},
		{"wall amount too high", func(s *Settings) { s.Grid.WallAmount = 101 }},
		{"negative enemy amount", func(s *Settings) { s.Grid.EnemyAmount = -1 }},
		{"missing floor", func(s *Settings) { s.Tiles.Floor = "" }},
		{"one enemy kind", func(s *Settings) { s.EnemyKinds = []string{"cow"} }},
	}

	for _, tt := range tests {
		settings := MustLoadSettings()
		tt.mutate(&settings)
		if err := settings.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestLoadSettingsOverride(t *testing.T) {
	base := MustLoadSettings()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := "grid:\n  width: 9\n  enemyAmount: 100\nplayer:\n  rayDamage: 3\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	settings, err := LoadSettingsOverride(base, path)
	if err != nil {
		t.Fatalf("Failed to load override: %v", err)
	}

	if settings.Grid.Width != 9 || settings.Grid.EnemyAmount != 100 || settings.Player.RayDamage != 3 {
		t.Errorf("Override not applied: %+v", settings)
	}
	if settings.Grid.Height != base.Grid.Height {
		t.Errorf("Height should keep base value %d, got %d", base.Grid.Height, settings.Grid.Height)
	}
	if settings.Tiles != base.Tiles {
		t.Errorf("Tile refs should be unchanged, got %+v", settings.Tiles)
	}
}

func TestLoadSettingsOverrideFallsBack(t *testing.T) {
	base := MustLoadSettings()
	dir := t.TempDir()

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("grid:\n  wallAmount: 250\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("grid: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{invalid, broken, filepath.Join(dir, "missing.yaml")} {
		settings, err := LoadSettingsOverride(base, path)
		if err == nil {
			t.Errorf("%s: expected error", filepath.Base(path))
		}
		if settings.Grid != base.Grid {
			t.Errorf("%s: expected base settings on error, got %+v", filepath.Base(path), settings.Grid)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#0000FF", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"invalid", false},
		{"#GG0000", false},
		{"#FFF", false}, // Too short
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestColorOr(t *testing.T) {
	if got := ColorOr("nope", 42); got != 42 {
		t.Errorf("ColorOr fallback = %v, want 42", got)
	}
	if got := ColorOr("#FF0000", 42); got == 42 {
		t.Error("ColorOr should parse a valid color")
	}
}
