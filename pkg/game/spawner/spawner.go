// Package spawner hands generated placements to whatever creates the
// level's objects: a game engine, a preview, or a log.
package spawner

import (
	"fmt"

	"github.com/rs/zerolog"

	"mazegen/pkg/engine/world"
	"mazegen/pkg/game/levelgen"
)

// Executor creates the object for one placement. It must not modify the tile.
type Executor interface {
	Spawn(p levelgen.Placement) error
}

// ExecutorFunc adapts a function to the Executor interface
type ExecutorFunc func(p levelgen.Placement) error

// Spawn implements Executor
func (f ExecutorFunc) Spawn(p levelgen.Placement) error {
	return f(p)
}

// WorldPosition returns where the placement's object goes: its anchor raised by
// the vertical offset
func WorldPosition(p levelgen.Placement) world.Vec3 {
	var pos world.Vec3
	if p.Anchor != nil {
		pos = p.Anchor.Position()
	}
	return pos.Add(world.Vec3{Y: p.Offset})
}

// Apply spawns every placement of the layout in order and stops at the first failure
func Apply(exec Executor, layout *levelgen.Layout) error {
	if layout == nil {
		return nil
	}
	for i, p := range layout.Placements {
		if err := exec.Spawn(p); err != nil {
			return fmt.Errorf("spawn %v (placement %d): %w", p.Kind, i, err)
		}
	}
	return nil
}

// Spawned is one recorded spawn
type Spawned struct {
	Kind     levelgen.FeatureKind
	Coord    world.Coord
	OnGrid   bool
	Position world.Vec3
}

// Recorder keeps every spawn in memory
type Recorder struct {
	Spawns []Spawned
}

// Spawn implements Executor
func (r *Recorder) Spawn(p levelgen.Placement) error {
	c, onGrid := p.Coord()
	r.Spawns = append(r.Spawns, Spawned{
		Kind:     p.Kind,
		Coord:    c,
		OnGrid:   onGrid,
		Position: WorldPosition(p),
	})
	return nil
}

// Count returns how many spawns of the given kind were recorded
func (r *Recorder) Count(kind levelgen.FeatureKind) int {
	n := 0
	for _, s := range r.Spawns {
		if s.Kind == kind {
			n++
		}
	}
	return n
}

// LogExecutor writes one debug line per spawn
type LogExecutor struct {
	Log zerolog.Logger
}

// Spawn implements Executor
func (l LogExecutor) Spawn(p levelgen.Placement) error {
	ev := l.Log.Debug().
		Stringer("kind", p.Kind).
		Stringer("position", WorldPosition(p))
	if c, ok := p.Coord(); ok {
		ev = ev.Str("tile", c.String())
	}
	ev.Msg("Spawn")
	return nil
}

// Multi fans each spawn out to several executors in order
type Multi []Executor

// Spawn implements Executor
func (m Multi) Spawn(p levelgen.Placement) error {
	for _, exec := range m {
		if err := exec.Spawn(p); err != nil {
			return err
		}
	}
	return nil
}
