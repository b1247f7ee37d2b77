package levelgen

import (
	"testing"

	"mazegen/pkg/engine/world"
)

// latticeGrid builds a rows x cols grid from a unit lattice at the origin.
func latticeGrid(t *testing.T, rows, cols int) *world.Grid {
	t.Helper()
	grid, err := BuildGrid(world.Lattice(rows, cols, 1, world.Vec3{}), 1)
	if err != nil {
		t.Fatalf("BuildGrid(%dx%d) err = %v", rows, cols, err)
	}
	return grid
}

// occupiedCoords returns the set of occupied coordinates as a map.
func occupiedCoords(grid *world.Grid) map[world.Coord]bool {
	occupied := make(map[world.Coord]bool)
	grid.ForEachTile(func(tile *world.Tile) {
		if tile.Occupied {
			occupied[tile.Coord()] = true
		}
	})
	return occupied
}
