package renderer

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"mazegen/pkg/engine/rng"
	"mazegen/pkg/engine/world"
	"mazegen/pkg/game/levelgen"
)

func TestGlyphMap_FullRoom(t *testing.T) {
	gen := levelgen.New(levelgen.Options{CellSize: 1, Room: levelgen.RoomOptions{Size: 4}}, zerolog.Nop())
	// anchor 0, top side, door offset 1, goal offset 2
	layout, err := gen.Generate(world.Lattice(4, 4, 1, world.Vec3{}), rng.NewScripted(0, 0, 0, 1))
	if err != nil {
		t.Fatalf("Generate err = %v", err)
	}

	lines := NewGlyphMap(layout).Lines()
	want := []string{
		"#D##",
		"#,,#",
		"#,E#",
		"####",
	}
	if strings.Join(lines, "\n") != strings.Join(want, "\n") {
		t.Errorf("Lines() =\n%s\nwant\n%s", strings.Join(lines, "\n"), strings.Join(want, "\n"))
	}
}

func TestGlyphMap_MissingAndFeatures(t *testing.T) {
	anchors := []world.Anchor{
		world.NewMarker("a", 0, 0, 0),
		world.NewMarker("b", 2, 0, 0),
		world.NewMarker("c", 2, 0, 1),
	}
	gen := levelgen.New(levelgen.Options{
		CellSize: 1,
		Requests: []levelgen.FeatureRequest{{Kind: levelgen.Trap, Quota: 1, AttemptMultiplier: 1}},
	}, zerolog.Nop())
	layout, err := gen.Generate(anchors, rng.NewScripted(1))
	if err != nil {
		t.Fatalf("Generate err = %v", err)
	}

	m := NewGlyphMap(layout)
	if m.Rows() != 2 || m.Cols() != 3 {
		t.Fatalf("Rows, Cols = %d, %d, want 2, 3", m.Rows(), m.Cols())
	}
	tests := []struct {
		row, col int
		want     Glyph
	}{
		{0, 0, GlyphFree},
		{0, 1, GlyphMissing},
		{0, 2, GlyphTrap},
		{1, 2, GlyphFree},
		{1, 0, GlyphMissing},
	}
	for _, tt := range tests {
		if got := m.At(tt.row, tt.col); got != tt.want {
			t.Errorf("At(%d, %d) = %v, want %v", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestGlyph_RunesDistinct(t *testing.T) {
	seen := make(map[rune]Glyph)
	for _, g := range AllGlyphs() {
		if other, ok := seen[g.Rune()]; ok {
			t.Errorf("glyphs %v and %v share rune %q", g, other, g.Rune())
		}
		seen[g.Rune()] = g
		if g.LegendKey() == "" {
			t.Errorf("glyph %v has no legend key", g)
		}
	}
}
