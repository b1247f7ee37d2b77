// Package world provides generic 2D grid primitives for tile-based levels:
// tiles snapped from world-space anchors, occupancy, and cardinal sides.
package world

import "fmt"

// Coord is an integer (row, column) lattice position
type Coord struct {
	Row int
	Col int
}

// String returns the coordinate as "row:col"
func (c Coord) String() string {
	return fmt.Sprintf("%v:%v", c.Row, c.Col)
}

// Tile represents a single logical cell of the occupancy grid.
type Tile struct {
	// Grid position
	Row int
	Col int

	// Anchor links the tile back to the caller's world. Never mutated by the grid.
	Anchor Anchor

	// Occupied is set once a room or feature claims the tile. It never reverts.
	Occupied bool
}

// NewTile creates a new free tile at the given position
func NewTile(row, col int, anchor Anchor) *Tile {
	return &Tile{
		Row:    row,
		Col:    col,
		Anchor: anchor,
	}
}

// Coord returns the tile's lattice position
func (t *Tile) Coord() Coord {
	return Coord{Row: t.Row, Col: t.Col}
}

// Claim marks the tile as occupied. Returns false if it was already occupied.
func (t *Tile) Claim() bool {
	if t == nil || t.Occupied {
		return false
	}
	t.Occupied = true
	return true
}

// IsFree returns true if the tile exists and nothing has claimed it
func (t *Tile) IsFree() bool {
	return t != nil && !t.Occupied
}

// Position returns the world position of the tile's anchor, or the zero vector
// if the tile has no anchor.
func (t *Tile) Position() Vec3 {
	if t == nil || t.Anchor == nil {
		return Vec3{}
	}
	return t.Anchor.Position()
}
