// Package levelgen turns designer spawn points into a maze level layout:
// an occupancy grid, a fenced exit room with one door and a goal, and
// randomly scattered walls, traps and keys.
package levelgen

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"mazegen/pkg/engine/rng"
	"mazegen/pkg/engine/world"
)

// RoomOptions configures the exit room. A zero Size disables it.
type RoomOptions struct {
	Size       int
	Required   bool // fail the run when no room fits
	WallOffset float64
	GoalOffset float64
}

// Options configures a generation run
type Options struct {
	CellSize float64
	Room     RoomOptions
	Requests []FeatureRequest
	Markers  []PinnedMarker
}

// Generator runs the layout stages in order: grid, pinned markers, room, features
type Generator struct {
	Options Options
	Log     zerolog.Logger
}

// New creates a generator
func New(opts Options, log zerolog.Logger) *Generator {
	return &Generator{Options: opts, Log: log}
}

// seeder is implemented by sources that know their seed
type seeder interface {
	Seed() int64
}

// Generate builds a layout from the anchors using src for every random draw.
// ErrNoSpawnPoints, ErrInvalidCellSize and ErrInvalidPosition are returned with
// an empty layout.
// ErrNotFound is only returned when the room is required; the layout then holds
// the grid with only the pinned markers placed.
func (g *Generator) Generate(anchors []world.Anchor, src rng.Source) (*Layout, error) {
	layout := &Layout{ID: uuid.NewString()}
	if s, ok := src.(seeder); ok {
		layout.Seed = s.Seed()
	}

	log := g.Log.With().Str("layout", layout.ID).Logger()

	grid, frame, err := buildGrid(anchors, g.Options.CellSize)
	layout.Grid = grid
	layout.Frame = frame
	if err != nil {
		log.Warn().Err(err).Msg("Grid build failed")
		return layout, err
	}
	log.Debug().
		Int("tiles", grid.Len()).
		Int("rows", grid.MaxRow()+1).
		Int("cols", grid.MaxCol()+1).
		Msg("Grid built")

	if dupes := grid.Duplicates(); len(dupes) > 0 {
		log.Warn().Int("count", len(dupes)).Str("first", dupes[0].String()).Msg("Spawn points share grid coordinates")
	}

	pinned, dropped := PinMarkers(grid, frame, g.Options.Markers)
	layout.Placements = append(layout.Placements, pinned...)
	layout.Dropped = dropped
	for _, m := range dropped {
		log.Warn().Stringer("kind", m.Kind).Stringer("position", m.Anchor.Position()).Msg("Marker dropped")
	}

	if g.Options.Room.Size > 0 {
		if err := g.carve(layout, src, log); err != nil {
			return layout, err
		}
	}

	placements, shortfalls := PlaceFeatures(grid, g.Options.Requests, src)
	layout.Placements = append(layout.Placements, placements...)
	layout.Shortfalls = shortfalls
	for _, s := range shortfalls {
		log.Warn().
			Stringer("kind", s.Kind).
			Int("quota", s.Quota).
			Int("placed", s.Placed).
			Int("attempts", s.Attempts).
			Msg("Feature quota not met")
	}

	log.Info().
		Int("placements", len(layout.Placements)).
		Int("free", grid.FreeCount()).
		Bool("room", layout.Room != nil).
		Msg("Layout generated")

	return layout, nil
}

func (g *Generator) carve(layout *Layout, src rng.Source, log zerolog.Logger) error {
	carver := Carver{
		Size:       g.Options.Room.Size,
		WallOffset: g.Options.Room.WallOffset,
		GoalOffset: g.Options.Room.GoalOffset,
	}

	room, placements, err := carver.Carve(layout.Grid, src)
	switch {
	case err == nil:
		layout.Room = &room
		layout.Placements = append(layout.Placements, placements...)
		log.Debug().
			Str("anchor", room.Anchor.String()).
			Stringer("door_side", room.DoorSide).
			Str("door", room.Door.String()).
			Str("goal", room.Goal.String()).
			Msg("Room carved")
		return nil
	case errors.Is(err, ErrNotFound) && !g.Options.Room.Required:
		log.Warn().Err(err).Msg("No exit room fits, continuing without one")
		return nil
	default:
		return fmt.Errorf("carve room: %w", err)
	}
}
