package world

// Side is one edge of a rectangular block of tiles.
// Rows grow with world Z, so Top is the block's highest row.
type Side int

// Side constants
const (
	Top Side = iota
	Bottom
	Left
	Right
)

// AllSides returns all sides in draw order
func AllSides() []Side {
	return []Side{Top, Bottom, Left, Right}
}

// String returns the string representation of a side
func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// IsValid returns true if the side is one of the four block edges
func (s Side) IsValid() bool {
	return s >= Top && s <= Right
}

// Opposite returns the opposite side
func (s Side) Opposite() Side {
	switch s {
	case Top:
		return Bottom
	case Bottom:
		return Top
	case Left:
		return Right
	case Right:
		return Left
	default:
		return s
	}
}

// Inward returns the row and column step pointing from this side into the block
func (s Side) Inward() (rowDelta, colDelta int) {
	switch s {
	case Top:
		return -1, 0
	case Bottom:
		return 1, 0
	case Left:
		return 0, 1
	case Right:
		return 0, -1
	default:
		return 0, 0
	}
}
