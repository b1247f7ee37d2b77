package levelgen

import (
	"mazegen/pkg/engine/world"
)

// PinnedMarker is a designer-placed feature at a fixed anchor, such as the
// player start or a hand-placed key
type PinnedMarker struct {
	Kind   FeatureKind
	Anchor world.Anchor
	Offset float64
}

// PinMarkers emits a placement for every marker at its own anchor. A marker that
// snaps onto a grid tile claims it; if the tile is already taken the marker is
// dropped instead, as is a marker whose position is not finite. Markers off
// the grid are placed without a tile.
func PinMarkers(grid *world.Grid, frame Frame, markers []PinnedMarker) ([]Placement, []PinnedMarker) {
	var placements []Placement
	var dropped []PinnedMarker

	for _, m := range markers {
		if m.Anchor == nil {
			continue
		}
		if !isFinite(m.Anchor.Position()) {
			dropped = append(dropped, m)
			continue
		}

		var tile *world.Tile
		onGrid := false
		if grid != nil && frame.CellSize > 0 {
			c := frame.Snap(m.Anchor.Position())
			tile, onGrid = grid.Lookup(c.Row, c.Col)
		}
		if onGrid && !grid.ClaimTile(tile) {
			dropped = append(dropped, m)
			continue
		}

		p := Placement{Kind: m.Kind, Anchor: m.Anchor, Offset: m.Offset}
		if onGrid {
			p.Tile = tile
		}
		placements = append(placements, p)
	}

	return placements, dropped
}
