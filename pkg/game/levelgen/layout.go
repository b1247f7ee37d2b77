package levelgen

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"mazegen/pkg/engine/world"
)

// Layout is the result of one generation run
type Layout struct {
	ID   string
	Seed int64

	Grid  *world.Grid
	Frame Frame

	// Room is nil when no room was requested or none fit
	Room *RoomSpec

	// Placements in emission order: pinned markers, room walls, goal, features
	Placements []Placement

	Shortfalls []Shortfall
	Dropped    []PinnedMarker
}

// Count returns the number of placements of the given kind
func (l *Layout) Count(kind FeatureKind) int {
	n := 0
	for _, p := range l.Placements {
		if p.Kind == kind {
			n++
		}
	}
	return n
}

// PlacementAt returns the placement on the given tile coordinate, if any
func (l *Layout) PlacementAt(c world.Coord) (Placement, bool) {
	for _, p := range l.Placements {
		if pc, ok := p.Coord(); ok && pc == c {
			return p, true
		}
	}
	return Placement{}, false
}

// Validate checks that no two placements share a tile coordinate, that every
// placed tile is occupied, and that the room's door is left open.
func (l *Layout) Validate() error {
	if l.Grid == nil {
		return fmt.Errorf("layout has no grid")
	}

	used := mapset.New[world.Coord]()
	for i, p := range l.Placements {
		c, ok := p.Coord()
		if !ok {
			continue
		}
		if !p.Tile.Occupied {
			return fmt.Errorf("placement %d (%v at %v) is on an unoccupied tile", i, p.Kind, c)
		}
		if used.Has(c) {
			return fmt.Errorf("placement %d (%v) collides at %v", i, p.Kind, c)
		}
		used.Put(c)
	}

	if l.Room != nil {
		if !l.Room.OnBorder(l.Room.Door) || l.Room.IsCorner(l.Room.Door) {
			return fmt.Errorf("door %v is not a non-corner border tile", l.Room.Door)
		}
		if used.Has(l.Room.Door) {
			return fmt.Errorf("door %v has a placement on it", l.Room.Door)
		}
	}

	return nil
}
