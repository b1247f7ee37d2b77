package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"mazegen/pkg/engine/rng"
	"mazegen/pkg/engine/world"
	"mazegen/pkg/game/levelgen"
)

func generate(t *testing.T, rows, cols int) *levelgen.Layout {
	t.Helper()
	gen := levelgen.New(levelgen.Options{
		CellSize: 1,
		Room:     levelgen.RoomOptions{Size: 3},
		Requests: []levelgen.FeatureRequest{{Kind: levelgen.Trap, Quota: 2, AttemptMultiplier: 10}},
	}, zerolog.Nop())
	layout, err := gen.Generate(world.Lattice(rows, cols, 1, world.Vec3{}), rng.NewSeeded(7))
	if err != nil {
		t.Fatalf("Generate err = %v", err)
	}
	return layout
}

func TestRender_PlainMap(t *testing.T) {
	layout := generate(t, 5, 6)
	r := &TUIRenderer{NoColor: true, Width: 80}

	out := r.Render(layout)
	lines := strings.Split(out, "\n")

	if !strings.Contains(lines[0], layout.ID) {
		t.Errorf("first line %q does not name layout %s", lines[0], layout.ID)
	}

	var mapLines []string
	for _, l := range lines {
		if len(l) == 6 && strings.Trim(l, ".,D#^kE@ ") == "" {
			mapLines = append(mapLines, l)
		}
	}
	if len(mapLines) != 5 {
		t.Fatalf("map lines = %d, want 5\n%s", len(mapLines), out)
	}
	if got := strings.Count(strings.Join(mapLines, ""), "E"); got != 1 {
		t.Errorf("exit glyphs = %d, want 1", got)
	}
	if got := strings.Count(strings.Join(mapLines, ""), "D"); got != 1 {
		t.Errorf("door glyphs = %d, want 1", got)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("NoColor output contains escape codes")
	}
}

func TestRender_Truncates(t *testing.T) {
	layout := generate(t, 3, 20)
	r := &TUIRenderer{NoColor: true, Width: 8}

	out := r.Render(layout)
	if !strings.Contains(out, "(map truncated to 8 columns)") {
		t.Errorf("Render() missing truncation notice:\n%s", out)
	}
}

func TestShow_WritesToOut(t *testing.T) {
	layout := generate(t, 4, 4)
	var buf bytes.Buffer
	r := &TUIRenderer{Out: &buf, NoColor: true, Width: 80}
	r.Init()

	if err := r.Show(layout); err != nil {
		t.Fatalf("Show err = %v", err)
	}
	if !strings.Contains(buf.String(), "Legend:") {
		t.Errorf("Show output missing legend:\n%s", buf.String())
	}
}

func TestSummary_ReportsShortfalls(t *testing.T) {
	gen := levelgen.New(levelgen.Options{
		CellSize: 1,
		Requests: []levelgen.FeatureRequest{{Kind: levelgen.Key, Quota: 3, AttemptMultiplier: 1}},
	}, zerolog.Nop())
	layout, err := gen.Generate(world.Lattice(1, 1, 1, world.Vec3{}), rng.NewSeeded(1))
	if err != nil {
		t.Fatalf("Generate err = %v", err)
	}

	lines := Summary(layout)
	found := false
	for _, l := range lines {
		if l == "Placed 1 of 3 key tiles." {
			found = true
		}
	}
	if !found {
		t.Errorf("Summary() = %q, want a quota line", lines)
	}
}
