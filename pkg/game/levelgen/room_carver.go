package levelgen

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"mazegen/pkg/engine/rng"
	"mazegen/pkg/engine/world"
)

// RoomSpec describes the carved exit room. Anchor is the block's lowest
// row and column; the block spans Size tiles along both axes.
type RoomSpec struct {
	Anchor   world.Coord
	Size     int
	DoorSide world.Side
	Door     world.Coord
	Goal     world.Coord
}

// MaxRow returns the block's highest row
func (r RoomSpec) MaxRow() int {
	return r.Anchor.Row + r.Size - 1
}

// MaxCol returns the block's highest column
func (r RoomSpec) MaxCol() int {
	return r.Anchor.Col + r.Size - 1
}

// Contains returns true if c lies inside the block
func (r RoomSpec) Contains(c world.Coord) bool {
	return c.Row >= r.Anchor.Row && c.Row <= r.MaxRow() &&
		c.Col >= r.Anchor.Col && c.Col <= r.MaxCol()
}

// OnBorder returns true if c lies on the block's outer ring
func (r RoomSpec) OnBorder(c world.Coord) bool {
	if !r.Contains(c) {
		return false
	}
	return c.Row == r.Anchor.Row || c.Row == r.MaxRow() ||
		c.Col == r.Anchor.Col || c.Col == r.MaxCol()
}

// IsCorner returns true if c is one of the block's four corners
func (r RoomSpec) IsCorner(c world.Coord) bool {
	return (c.Row == r.Anchor.Row || c.Row == r.MaxRow()) &&
		(c.Col == r.Anchor.Col || c.Col == r.MaxCol())
}

// Coords returns every coordinate of the block in row-major order
func (r RoomSpec) Coords() []world.Coord {
	coords := make([]world.Coord, 0, r.Size*r.Size)
	for row := r.Anchor.Row; row <= r.MaxRow(); row++ {
		for col := r.Anchor.Col; col <= r.MaxCol(); col++ {
			coords = append(coords, world.Coord{Row: row, Col: col})
		}
	}
	return coords
}

// edge returns the tile on the given side, offset cells along that side from the
// block's lower corner
func (r RoomSpec) edge(side world.Side, offset int) world.Coord {
	switch side {
	case world.Top:
		return world.Coord{Row: r.MaxRow(), Col: r.Anchor.Col + offset}
	case world.Bottom:
		return world.Coord{Row: r.Anchor.Row, Col: r.Anchor.Col + offset}
	case world.Left:
		return world.Coord{Row: r.Anchor.Row + offset, Col: r.Anchor.Col}
	default:
		return world.Coord{Row: r.Anchor.Row + offset, Col: r.MaxCol()}
	}
}

// Carver finds and fences a square exit room
type Carver struct {
	Size       int
	WallOffset float64
	GoalOffset float64
}

// CarveRoom carves a size x size room with default offsets
func CarveRoom(grid *world.Grid, size int, src rng.Source) (RoomSpec, []Placement, error) {
	return Carver{Size: size}.Carve(grid, src)
}

// Candidates returns every anchor whose full block exists and is free,
// in grid order
func (c Carver) Candidates(grid *world.Grid) []world.Coord {
	if grid == nil || grid.IsEmpty() || c.Size <= 0 {
		return nil
	}

	maxRow := grid.MaxRow() - (c.Size - 1)
	maxCol := grid.MaxCol() - (c.Size - 1)

	var valid []world.Coord
	seen := mapset.New[world.Coord]()
	grid.ForEachTile(func(t *world.Tile) {
		coord := t.Coord()
		if seen.Has(coord) {
			return
		}
		seen.Put(coord)

		if coord.Row > maxRow || coord.Col > maxCol {
			return
		}
		if grid.BlockFree(coord.Row, coord.Col, c.Size) {
			valid = append(valid, coord)
		}
	})
	return valid
}

// Carve picks a random valid anchor, a door on a random side away from the
// corners, and a goal one step in from the opposite side. Every block tile is
// claimed; walls are emitted for the border minus the door, then the goal.
// On error the grid is left untouched and no random numbers are drawn.
func (c Carver) Carve(grid *world.Grid, src rng.Source) (RoomSpec, []Placement, error) {
	if c.Size < 3 {
		return RoomSpec{}, nil, fmt.Errorf("%w: got %d", ErrInvalidRoomSize, c.Size)
	}

	valid := c.Candidates(grid)
	if len(valid) == 0 {
		return RoomSpec{}, nil, fmt.Errorf("%w for size %d", ErrNotFound, c.Size)
	}

	room := RoomSpec{
		Anchor: valid[src.Intn(len(valid))],
		Size:   c.Size,
	}

	sides := world.AllSides()
	room.DoorSide = sides[src.Intn(len(sides))]

	// Offsets 1..Size-2 keep doors and goals off the corners
	doorOffset := 1 + src.Intn(c.Size-2)
	goalOffset := 1 + src.Intn(c.Size-2)

	room.Door = room.edge(room.DoorSide, doorOffset)

	far := room.DoorSide.Opposite()
	goal := room.edge(far, goalOffset)
	dr, dc := far.Inward()
	room.Goal = world.Coord{Row: goal.Row + dr, Col: goal.Col + dc}

	placements := make([]Placement, 0, 4*(c.Size-1))
	for _, coord := range room.Coords() {
		tile := grid.GetTileAt(coord)
		grid.ClaimTile(tile)

		if room.OnBorder(coord) && coord != room.Door {
			placements = append(placements, newTilePlacement(Wall, tile, c.WallOffset))
		}
	}
	placements = append(placements, newTilePlacement(Exit, grid.GetTileAt(room.Goal), c.GoalOffset))

	return room, placements, nil
}
