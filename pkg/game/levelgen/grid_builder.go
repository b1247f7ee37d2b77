package levelgen

import (
	"fmt"
	"math"

	"mazegen/pkg/engine/world"
)

// Frame maps world positions onto the grid lattice. Its origin is the
// minimum X and Z over the anchors the grid was built from.
type Frame struct {
	MinX     float64
	MinZ     float64
	CellSize float64
}

// NewFrame computes the frame for a set of anchors
func NewFrame(anchors []world.Anchor, cellSize float64) (Frame, error) {
	if cellSize <= 0 || math.IsNaN(cellSize) || math.IsInf(cellSize, 0) {
		return Frame{}, fmt.Errorf("%w: %v", ErrInvalidCellSize, cellSize)
	}
	if len(anchors) == 0 {
		return Frame{CellSize: cellSize}, ErrNoSpawnPoints
	}

	f := Frame{MinX: math.Inf(1), MinZ: math.Inf(1), CellSize: cellSize}
	for i, a := range anchors {
		p := a.Position()
		if !isFinite(p) {
			return Frame{CellSize: cellSize}, fmt.Errorf("%w: anchor %d at %v", ErrInvalidPosition, i, p)
		}
		if p.X < f.MinX {
			f.MinX = p.X
		}
		if p.Z < f.MinZ {
			f.MinZ = p.Z
		}
	}
	return f, nil
}

func isFinite(p world.Vec3) bool {
	for _, v := range []float64{p.X, p.Y, p.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Snap returns the lattice coordinate nearest to p.
// Exact halves round to even, like the engine the spawn points come from.
func (f Frame) Snap(p world.Vec3) world.Coord {
	return world.Coord{
		Row: int(math.RoundToEven((p.Z - f.MinZ) / f.CellSize)),
		Col: int(math.RoundToEven((p.X - f.MinX) / f.CellSize)),
	}
}

// Build creates one tile per anchor, in anchor order
func (f Frame) Build(anchors []world.Anchor) *world.Grid {
	grid := world.NewGrid()
	for _, a := range anchors {
		c := f.Snap(a.Position())
		grid.Add(world.NewTile(c.Row, c.Col, a))
	}
	return grid
}

// BuildGrid snaps every anchor to the lattice and returns the resulting grid.
// An empty anchor set yields an empty grid and ErrNoSpawnPoints.
func BuildGrid(anchors []world.Anchor, cellSize float64) (*world.Grid, error) {
	grid, _, err := buildGrid(anchors, cellSize)
	return grid, err
}

func buildGrid(anchors []world.Anchor, cellSize float64) (*world.Grid, Frame, error) {
	frame, err := NewFrame(anchors, cellSize)
	if err != nil {
		return world.NewGrid(), frame, err
	}
	return frame.Build(anchors), frame, nil
}
