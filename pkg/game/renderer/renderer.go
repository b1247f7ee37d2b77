// Package renderer holds what every layout preview shares: how a tile is
// classified and which symbol stands for it.
package renderer

import (
	"mazegen/pkg/engine/world"
	"mazegen/pkg/game/levelgen"
)

// Glyph classifies one grid position for display
type Glyph int

const (
	GlyphMissing Glyph = iota
	GlyphFree
	GlyphRoom
	GlyphDoor
	GlyphWall
	GlyphTrap
	GlyphKey
	GlyphExit
	GlyphPlayer
)

// AllGlyphs returns every glyph in legend order
func AllGlyphs() []Glyph {
	return []Glyph{GlyphFree, GlyphMissing, GlyphWall, GlyphTrap, GlyphKey, GlyphExit, GlyphPlayer, GlyphDoor, GlyphRoom}
}

// Rune returns the single-character symbol for the glyph
func (g Glyph) Rune() rune {
	switch g {
	case GlyphFree:
		return '.'
	case GlyphRoom:
		return ','
	case GlyphDoor:
		return 'D'
	case GlyphWall:
		return '#'
	case GlyphTrap:
		return '^'
	case GlyphKey:
		return 'k'
	case GlyphExit:
		return 'E'
	case GlyphPlayer:
		return '@'
	default:
		return ' '
	}
}

// LegendKey returns the message key describing the glyph
func (g Glyph) LegendKey() string {
	switch g {
	case GlyphFree:
		return "LEGEND_FREE"
	case GlyphRoom:
		return "LEGEND_ROOM"
	case GlyphDoor:
		return "LEGEND_DOOR"
	case GlyphWall:
		return "LEGEND_WALL"
	case GlyphTrap:
		return "LEGEND_TRAP"
	case GlyphKey:
		return "LEGEND_KEY"
	case GlyphExit:
		return "LEGEND_EXIT"
	case GlyphPlayer:
		return "LEGEND_PLAYER"
	default:
		return "LEGEND_MISSING"
	}
}

func glyphForKind(kind levelgen.FeatureKind) Glyph {
	switch kind {
	case levelgen.Wall:
		return GlyphWall
	case levelgen.Trap:
		return GlyphTrap
	case levelgen.Key:
		return GlyphKey
	case levelgen.Exit:
		return GlyphExit
	case levelgen.Player:
		return GlyphPlayer
	default:
		return GlyphFree
	}
}

// GlyphMap classifies every position of a layout's bounding box
type GlyphMap struct {
	layout *levelgen.Layout
	kinds  map[world.Coord]levelgen.FeatureKind
}

// NewGlyphMap indexes a layout's placements by tile
func NewGlyphMap(layout *levelgen.Layout) *GlyphMap {
	m := &GlyphMap{
		layout: layout,
		kinds:  make(map[world.Coord]levelgen.FeatureKind),
	}
	for _, p := range layout.Placements {
		if c, ok := p.Coord(); ok {
			m.kinds[c] = p.Kind
		}
	}
	return m
}

// Rows returns the number of rows to draw
func (m *GlyphMap) Rows() int {
	if m.layout.Grid == nil {
		return 0
	}
	return m.layout.Grid.MaxRow() + 1
}

// Cols returns the number of columns to draw
func (m *GlyphMap) Cols() int {
	if m.layout.Grid == nil {
		return 0
	}
	return m.layout.Grid.MaxCol() + 1
}

// At returns the glyph for the given position
func (m *GlyphMap) At(row, col int) Glyph {
	if m.layout.Grid == nil {
		return GlyphMissing
	}
	tile := m.layout.Grid.GetTile(row, col)
	if tile == nil {
		return GlyphMissing
	}

	c := tile.Coord()
	if kind, ok := m.kinds[c]; ok {
		return glyphForKind(kind)
	}
	if room := m.layout.Room; room != nil && room.Contains(c) {
		if c == room.Door {
			return GlyphDoor
		}
		return GlyphRoom
	}
	return GlyphFree
}

// Lines returns the map as text, highest row first so world +Z points up
func (m *GlyphMap) Lines() []string {
	rows, cols := m.Rows(), m.Cols()
	lines := make([]string, 0, rows)
	for row := rows - 1; row >= 0; row-- {
		line := make([]rune, cols)
		for col := 0; col < cols; col++ {
			line[col] = m.At(row, col).Rune()
		}
		lines = append(lines, string(line))
	}
	return lines
}
