package levelgen

import "errors"

var (
	// ErrNoSpawnPoints is returned when a grid is built from an empty anchor set
	ErrNoSpawnPoints = errors.New("no spawn points")

	// ErrInvalidCellSize is returned when the cell size is not positive
	ErrInvalidCellSize = errors.New("cell size must be positive")

	// ErrInvalidPosition is returned when a spawn point has a NaN or infinite coordinate
	ErrInvalidPosition = errors.New("spawn point position is not finite")

	// ErrInvalidRoomSize is returned for rooms too small to have a non-corner door
	ErrInvalidRoomSize = errors.New("room size must be at least 3")

	// ErrNotFound is returned when no free block of the requested size exists
	ErrNotFound = errors.New("no valid room anchor")
)
