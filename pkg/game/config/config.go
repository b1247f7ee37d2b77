// Package config loads level generation settings from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"mazegen/pkg/engine/world"
	"mazegen/pkg/game/levelgen"
)

// Defaults are the hand-tuned values of the stock level spawner
const (
	DefaultCellSize          = 1.0
	DefaultRoomSize          = 4
	DefaultAttemptMultiplier = 10
	DefaultWallOffset        = 3.0
	DefaultFeatureOffset     = 4.0
	DefaultKeyQuota          = 1
	DefaultWallQuota         = 5
	DefaultTrapQuota         = 15
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Room configures the exit room
type Room struct {
	Size       int     `yaml:"size"`
	Required   bool    `yaml:"required"`
	WallOffset float64 `yaml:"wall_offset"`
	GoalOffset float64 `yaml:"goal_offset"`
}

// Feature is one placement request
type Feature struct {
	Kind              levelgen.FeatureKind `yaml:"kind"`
	Quota             int                  `yaml:"quota"`
	AttemptMultiplier int                  `yaml:"attempt_multiplier"`
	VerticalOffset    float64              `yaml:"vertical_offset"`
}

// Lattice generates a rectangular block of spawn points
type Lattice struct {
	Rows    int        `yaml:"rows"`
	Cols    int        `yaml:"cols"`
	Spacing float64    `yaml:"spacing"`
	Origin  world.Vec3 `yaml:"origin"`
}

// Config is the full generation setup, read once at start
type Config struct {
	Seed     int64     `yaml:"seed"` // 0 picks a time-based seed
	CellSize float64   `yaml:"cell_size"`
	Room     Room      `yaml:"room"`
	Features []Feature `yaml:"features"`

	SpawnPoints []world.Vec3 `yaml:"spawn_points"`
	Lattice     *Lattice     `yaml:"lattice"`

	PlayerPoint  *world.Vec3  `yaml:"player_point"`
	PlayerOffset float64      `yaml:"player_offset"`
	KeyPoints    []world.Vec3 `yaml:"key_points"`
	KeyOffset    float64      `yaml:"key_offset"`
}

// Default returns the stock configuration: a 10x10 unit lattice, a 4x4 exit room,
// and one key, five walls and fifteen traps placed in that order.
func Default() *Config {
	return &Config{
		CellSize: DefaultCellSize,
		Room: Room{
			Size:       DefaultRoomSize,
			WallOffset: DefaultWallOffset,
			GoalOffset: DefaultFeatureOffset,
		},
		Features: []Feature{
			{Kind: levelgen.Key, Quota: DefaultKeyQuota, AttemptMultiplier: DefaultAttemptMultiplier, VerticalOffset: DefaultFeatureOffset},
			{Kind: levelgen.Wall, Quota: DefaultWallQuota, AttemptMultiplier: DefaultAttemptMultiplier, VerticalOffset: DefaultWallOffset},
			{Kind: levelgen.Trap, Quota: DefaultTrapQuota, AttemptMultiplier: DefaultAttemptMultiplier, VerticalOffset: DefaultFeatureOffset},
		},
		Lattice:   &Lattice{Rows: 10, Cols: 10, Spacing: DefaultCellSize},
		KeyOffset: DefaultFeatureOffset,
	}
}

// Load reads and validates a YAML config file. Fields missing from the file
// keep their Default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates YAML config data
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	// an explicit spawn point list replaces the default lattice
	if len(cfg.SpawnPoints) > 0 && !hasLatticeKey(data) {
		cfg.Lattice = nil
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func hasLatticeKey(data []byte) bool {
	var keys struct {
		Lattice yaml.Node `yaml:"lattice"`
	}
	if err := yaml.Unmarshal(data, &keys); err != nil {
		return false
	}
	return keys.Lattice.Kind != 0
}

// Validate checks the ranges the generator relies on
func (c *Config) Validate() error {
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: cell_size must be positive, got %v", ErrInvalid, c.CellSize)
	}
	if c.Room.Size != 0 && c.Room.Size < 3 {
		return fmt.Errorf("%w: room.size must be 0 or at least 3, got %d", ErrInvalid, c.Room.Size)
	}
	for i, f := range c.Features {
		if f.Quota < 0 {
			return fmt.Errorf("%w: features[%d] (%v) quota must not be negative", ErrInvalid, i, f.Kind)
		}
		if f.AttemptMultiplier < 1 {
			return fmt.Errorf("%w: features[%d] (%v) attempt_multiplier must be at least 1", ErrInvalid, i, f.Kind)
		}
		if f.Kind == levelgen.Exit || f.Kind == levelgen.Player {
			return fmt.Errorf("%w: features[%d] kind %v is placed by the generator, not requested", ErrInvalid, i, f.Kind)
		}
	}
	if c.Lattice != nil {
		if c.Lattice.Rows <= 0 || c.Lattice.Cols <= 0 {
			return fmt.Errorf("%w: lattice needs positive rows and cols", ErrInvalid)
		}
		if c.Lattice.Spacing <= 0 {
			return fmt.Errorf("%w: lattice.spacing must be positive", ErrInvalid)
		}
	}
	if c.Lattice == nil && len(c.SpawnPoints) == 0 {
		return fmt.Errorf("%w: no spawn_points or lattice given", ErrInvalid)
	}
	return nil
}

// Anchors returns the spawn points, lattice first, then explicit points
func (c *Config) Anchors() []world.Anchor {
	var anchors []world.Anchor
	if c.Lattice != nil {
		anchors = append(anchors, world.Lattice(c.Lattice.Rows, c.Lattice.Cols, c.Lattice.Spacing, c.Lattice.Origin)...)
	}
	for i, p := range c.SpawnPoints {
		anchors = append(anchors, &world.Marker{Name: fmt.Sprintf("spawn-%d", i), Pos: p})
	}
	return anchors
}

// Options converts the config into generator options
func (c *Config) Options() levelgen.Options {
	opts := levelgen.Options{
		CellSize: c.CellSize,
		Room: levelgen.RoomOptions{
			Size:       c.Room.Size,
			Required:   c.Room.Required,
			WallOffset: c.Room.WallOffset,
			GoalOffset: c.Room.GoalOffset,
		},
	}

	for _, f := range c.Features {
		opts.Requests = append(opts.Requests, levelgen.FeatureRequest{
			Kind:              f.Kind,
			Quota:             f.Quota,
			AttemptMultiplier: f.AttemptMultiplier,
			VerticalOffset:    f.VerticalOffset,
		})
	}

	if c.PlayerPoint != nil {
		opts.Markers = append(opts.Markers, levelgen.PinnedMarker{
			Kind:   levelgen.Player,
			Anchor: &world.Marker{Name: "player", Pos: *c.PlayerPoint},
			Offset: c.PlayerOffset,
		})
	}
	for i, p := range c.KeyPoints {
		opts.Markers = append(opts.Markers, levelgen.PinnedMarker{
			Kind:   levelgen.Key,
			Anchor: &world.Marker{Name: fmt.Sprintf("key-%d", i), Pos: p},
			Offset: c.KeyOffset,
		})
	}

	return opts
}
