package levelgen

import (
	"fmt"
	"strings"

	"mazegen/pkg/engine/world"
)

// FeatureKind is the type of thing placed on a tile
type FeatureKind int

// Feature kinds
const (
	Wall FeatureKind = iota
	Trap
	Key
	Exit
	Player
)

var featureKindNames = map[FeatureKind]string{
	Wall:   "wall",
	Trap:   "trap",
	Key:    "key",
	Exit:   "exit",
	Player: "player",
}

// AllFeatureKinds returns every feature kind in declaration order
func AllFeatureKinds() []FeatureKind {
	return []FeatureKind{Wall, Trap, Key, Exit, Player}
}

// String returns the lower-case name of the kind
func (k FeatureKind) String() string {
	if name, ok := featureKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("FeatureKind(%d)", int(k))
}

// ParseFeatureKind parses a kind name, ignoring case and surrounding space
func ParseFeatureKind(s string) (FeatureKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range featureKindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown feature kind %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (k FeatureKind) MarshalText() ([]byte, error) {
	if _, ok := featureKindNames[k]; !ok {
		return nil, fmt.Errorf("unknown feature kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (k *FeatureKind) UnmarshalText(text []byte) error {
	parsed, err := ParseFeatureKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// FeatureRequest asks for Quota features of one kind, trying at most
// Quota*AttemptMultiplier random tiles.
type FeatureRequest struct {
	Kind              FeatureKind
	Quota             int
	AttemptMultiplier int
	VerticalOffset    float64 // passed through to the executor
}

// MaxAttempts returns the sampling budget for the request
func (r FeatureRequest) MaxAttempts() int {
	if r.Quota <= 0 || r.AttemptMultiplier <= 0 {
		return 0
	}
	return r.Quota * r.AttemptMultiplier
}

// Placement is an instruction to put one feature at an anchor.
// Tile is nil for markers that lie outside the grid.
type Placement struct {
	Kind   FeatureKind
	Tile   *world.Tile
	Anchor world.Anchor
	Offset float64
}

// Coord returns the placement's tile coordinate and whether it has one
func (p Placement) Coord() (world.Coord, bool) {
	if p.Tile == nil {
		return world.Coord{}, false
	}
	return p.Tile.Coord(), true
}

func newTilePlacement(kind FeatureKind, t *world.Tile, offset float64) Placement {
	return Placement{
		Kind:   kind,
		Tile:   t,
		Anchor: t.Anchor,
		Offset: offset,
	}
}

// Shortfall records a request that ran out of attempts before meeting its quota
type Shortfall struct {
	Kind     FeatureKind
	Quota    int
	Placed   int
	Attempts int
}

// Missing returns how many features could not be placed
func (s Shortfall) Missing() int {
	return s.Quota - s.Placed
}
