package world

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// Grid is the occupancy grid for one generation run.
// Tiles keep their insertion order; lookup is by (row, col).
// Membership is fixed once built; only occupancy changes afterwards.
type Grid struct {
	tiles   []*Tile
	tileMap map[int]map[int]*Tile
	dupes   mapset.Set[Coord]
	stacked map[Coord][]*Tile // every tile at a duplicated coordinate

	maxRow int
	maxCol int
}

// NewGrid creates an empty grid
func NewGrid() *Grid {
	return &Grid{
		tileMap: make(map[int]map[int]*Tile),
		dupes:   mapset.New[Coord](),
		stacked: make(map[Coord][]*Tile),
		maxRow:  -1,
		maxCol:  -1,
	}
}

// Add appends a tile to the grid. A tile sharing its coordinates with an earlier
// tile is kept in the ordered list and replaces the earlier one for lookups;
// the tiles at one coordinate are claimed together from then on.
func (g *Grid) Add(t *Tile) {
	if t == nil {
		return
	}

	rowMap, found := g.tileMap[t.Row]
	if !found {
		rowMap = make(map[int]*Tile)
		g.tileMap[t.Row] = rowMap
	}
	if prev, exists := rowMap[t.Col]; exists {
		c := t.Coord()
		g.dupes.Put(c)
		if len(g.stacked[c]) == 0 {
			g.stacked[c] = []*Tile{prev}
		}
		g.stacked[c] = append(g.stacked[c], t)
		if t.Occupied || prev.Occupied {
			for _, other := range g.stacked[c] {
				other.Occupied = true
			}
		}
	}
	rowMap[t.Col] = t

	g.tiles = append(g.tiles, t)

	if t.Row > g.maxRow {
		g.maxRow = t.Row
	}
	if t.Col > g.maxCol {
		g.maxCol = t.Col
	}
}

// Len returns the number of tiles, duplicates included
func (g *Grid) Len() int {
	return len(g.tiles)
}

// IsEmpty returns true if the grid has no tiles
func (g *Grid) IsEmpty() bool {
	return len(g.tiles) == 0
}

// MaxRow returns the highest row present, or -1 for an empty grid
func (g *Grid) MaxRow() int {
	return g.maxRow
}

// MaxCol returns the highest column present, or -1 for an empty grid
func (g *Grid) MaxCol() int {
	return g.maxCol
}

// At returns the tile at index i in insertion order
func (g *Grid) At(i int) *Tile {
	if i < 0 || i >= len(g.tiles) {
		return nil
	}
	return g.tiles[i]
}

// Lookup returns the tile at the given position and whether one exists
func (g *Grid) Lookup(row, col int) (*Tile, bool) {
	if g.tileMap == nil {
		return nil, false
	}

	rowMap, found := g.tileMap[row]
	if !found {
		return nil, false
	}

	t, found := rowMap[col]
	return t, found
}

// GetTile returns the tile at the given position, or nil if there is none
func (g *Grid) GetTile(row, col int) *Tile {
	t, _ := g.Lookup(row, col)
	return t
}

// GetTileAt returns the tile at the given coordinate, or nil if there is none
func (g *Grid) GetTileAt(c Coord) *Tile {
	return g.GetTile(c.Row, c.Col)
}

// IsFree returns true if a tile exists at the position and is unoccupied
func (g *Grid) IsFree(row, col int) bool {
	return g.GetTile(row, col).IsFree()
}

// Claim marks the tile at the given position as occupied.
// Returns false if there is no tile there or it is already occupied.
func (g *Grid) Claim(row, col int) bool {
	return g.ClaimTile(g.GetTile(row, col))
}

// ClaimTile marks t and every other tile at its coordinates as occupied.
// Returns false if t is nil or already occupied.
func (g *Grid) ClaimTile(t *Tile) bool {
	if !t.Claim() {
		return false
	}
	for _, other := range g.stacked[t.Coord()] {
		other.Occupied = true
	}
	return true
}

// FreeCount returns the number of unoccupied tiles
func (g *Grid) FreeCount() int {
	n := 0
	for _, t := range g.tiles {
		if !t.Occupied {
			n++
		}
	}
	return n
}

// ForEachTile iterates over all tiles in insertion order
func (g *Grid) ForEachTile(fn func(t *Tile)) {
	for _, t := range g.tiles {
		fn(t)
	}
}

// Duplicates returns the coordinates produced by more than one tile, sorted by row then column
func (g *Grid) Duplicates() []Coord {
	if g.dupes.Size() == 0 {
		return nil
	}
	coords := make([]Coord, 0, g.dupes.Size())
	g.dupes.Each(func(c Coord) {
		coords = append(coords, c)
	})
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].Row != coords[j].Row {
			return coords[i].Row < coords[j].Row
		}
		return coords[i].Col < coords[j].Col
	})
	return coords
}

// BlockFree returns true if every tile of the size x size block anchored at
// (row, col) exists and is unoccupied
func (g *Grid) BlockFree(row, col, size int) bool {
	for r := row; r < row+size; r++ {
		for c := col; c < col+size; c++ {
			if !g.IsFree(r, c) {
				return false
			}
		}
	}
	return true
}
