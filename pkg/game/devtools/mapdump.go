// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"mazegen/pkg/game/levelgen"
	"mazegen/pkg/game/renderer"
)

// DumpFilename returns the file name used for a layout dump
func DumpFilename(layout *levelgen.Layout) string {
	return fmt.Sprintf("layout-%d.txt", layout.Seed)
}

// DumpLayoutToFile writes a full debug dump of the layout into dir and
// returns the absolute path. Format is human-readable (sections, key: value).
func DumpLayoutToFile(layout *levelgen.Layout, dir string) (string, error) {
	if layout == nil || layout.Grid == nil {
		return "", fmt.Errorf("no grid")
	}

	absPath, err := filepath.Abs(filepath.Join(dir, DumpFilename(layout)))
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteLayout(f, layout); err != nil {
		return "", err
	}
	return absPath, f.Close()
}

// WriteLayout writes the dump sections to w
func WriteLayout(w io.Writer, layout *levelgen.Layout) error {
	d := &dumper{w: w}
	grid := layout.Grid

	// --- Metadata ---
	d.println("=== LAYOUT DUMP ===")
	d.println("")
	d.println("--- Metadata ---")
	d.printf("id: %s\n", layout.ID)
	d.printf("seed: %d\n", layout.Seed)
	d.printf("tiles: %d\n", grid.Len())
	d.printf("grid_rows: %d\n", grid.MaxRow()+1)
	d.printf("grid_cols: %d\n", grid.MaxCol()+1)
	d.printf("free_tiles: %d\n", grid.FreeCount())
	d.printf("cell_size: %g\n", layout.Frame.CellSize)
	d.printf("origin: %g,%g\n", layout.Frame.MinX, layout.Frame.MinZ)
	d.println("coordinate_system: row,col (0-based, row=world z, col=world x)")
	if r := layout.Room; r != nil {
		d.printf("room_anchor: %s\n", r.Anchor)
		d.printf("room_size: %d\n", r.Size)
		d.printf("door_side: %s\n", r.DoorSide)
		d.printf("door: %s\n", r.Door)
		if p, ok := layout.PlacementAt(r.Goal); ok {
			d.printf("goal: %s (%s)\n", r.Goal, p.Kind)
		} else {
			d.printf("goal: %s (empty)\n", r.Goal)
		}
	} else {
		d.println("room: none")
	}
	if dupes := grid.Duplicates(); len(dupes) > 0 {
		d.printf("duplicate_tiles: %v\n", dupes)
	}
	d.println("")

	// --- Legend ---
	d.println("--- Legend ---")
	for _, g := range renderer.AllGlyphs() {
		d.printf("%c  %s\n", g.Rune(), g.LegendKey())
	}
	d.println("")

	// --- Map (top row is the highest row) ---
	d.println("--- Map ---")
	for _, line := range renderer.NewGlyphMap(layout).Lines() {
		d.println(line)
	}
	d.println("")

	// --- Placements ---
	d.printf("--- Placements (%d) ---\n", len(layout.Placements))
	for i, p := range layout.Placements {
		at := "off-grid"
		if c, ok := p.Coord(); ok {
			at = c.String()
		}
		pos := "-"
		if p.Anchor != nil {
			pos = p.Anchor.Position().String()
		}
		d.printf("%d: kind=%s tile=%s anchor=%s offset=%g\n", i, p.Kind, at, pos, p.Offset)
	}
	d.println("")

	// --- Shortfalls ---
	d.printf("--- Shortfalls (%d) ---\n", len(layout.Shortfalls))
	for _, s := range layout.Shortfalls {
		d.printf("%s: placed=%d quota=%d attempts=%d\n", s.Kind, s.Placed, s.Quota, s.Attempts)
	}
	d.println("")

	// --- Dropped markers ---
	d.printf("--- Dropped markers (%d) ---\n", len(layout.Dropped))
	for _, m := range layout.Dropped {
		pos := "-"
		if m.Anchor != nil {
			pos = m.Anchor.Position().String()
		}
		d.printf("%s: anchor=%s\n", m.Kind, pos)
	}

	return d.err
}

// dumper keeps the first write error
type dumper struct {
	w   io.Writer
	err error
}

func (d *dumper) printf(format string, args ...any) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, format, args...)
}

func (d *dumper) println(s string) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintln(d.w, s)
}
