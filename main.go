package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"mazegen/pkg/engine/input"
	"mazegen/pkg/engine/rng"
	"mazegen/pkg/engine/terminal"
	"mazegen/pkg/game/config"
	"mazegen/pkg/game/devtools"
	"mazegen/pkg/game/i18n"
	"mazegen/pkg/game/levelgen"
	"mazegen/pkg/game/renderer"
	"mazegen/pkg/game/renderer/ebiten"
	"mazegen/pkg/game/renderer/tui"
	"mazegen/pkg/game/spawner"
)

// session holds everything one run of the tool needs between regenerations
type session struct {
	cfg     *config.Config
	gen     *levelgen.Generator
	log     zerolog.Logger
	seed    int64
	dumpDir string
	layout  *levelgen.Layout
}

func newLogger(level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}

	if terminal.IsInteractive() {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl).With().Timestamp().Logger(), nil
	}
	return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger(), nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// generate runs the generator with the session seed; seed 0 picks one from the clock
func (s *session) generate() (*levelgen.Layout, error) {
	var src *rng.Seeded
	if s.seed != 0 {
		src = rng.NewSeeded(s.seed)
	} else {
		src = rng.NewTimeSeeded()
	}
	s.seed = src.Seed()

	layout, err := s.gen.Generate(s.cfg.Anchors(), src)
	if err != nil {
		return nil, err
	}
	s.layout = layout

	if err := spawner.Apply(spawner.LogExecutor{Log: s.log}, layout); err != nil {
		return nil, err
	}
	return layout, nil
}

// next regenerates with the following seed
func (s *session) next() (*levelgen.Layout, error) {
	s.seed++
	return s.generate()
}

func (s *session) dump() {
	path, err := devtools.DumpLayoutToFile(s.layout, s.dumpDir)
	if err != nil {
		s.log.Error().Err(err).Msg("Dump failed")
		return
	}
	renderer.ShowMessage(i18n.Get("DUMP_WRITTEN", path))
}

// userMessage maps generation errors to catalog messages
func userMessage(err error) string {
	switch {
	case errors.Is(err, levelgen.ErrNoSpawnPoints):
		return i18n.Get("NO_SPAWN_POINTS")
	case errors.Is(err, levelgen.ErrNotFound):
		return i18n.Get("NO_EXIT_ROOM")
	default:
		return err.Error()
	}
}

func (s *session) interactive() {
	in := input.NewReader(os.Stdin)
	for {
		fmt.Print(i18n.Get("PROMPT"))
		action, err := in.Next()
		if err != nil {
			s.log.Error().Err(err).Msg("Reading input failed")
			return
		}

		switch action {
		case input.ActionNone:
		case input.ActionRegenerate:
			layout, err := s.next()
			if err != nil {
				renderer.ShowMessage(userMessage(err))
				continue
			}
			if err := renderer.Show(layout); err != nil {
				s.log.Error().Err(err).Msg("Show failed")
			}
		case input.ActionDump:
			s.dump()
		case input.ActionQuit:
			renderer.ShowMessage(i18n.Get("GOODBYE"))
			return
		default:
			renderer.ShowMessage(i18n.Get("UNKNOWN_COMMAND"))
		}
	}
}

func main() {
	configPath := flag.String("config", "", "level config file (YAML); defaults to a 10x10 lattice")
	seed := flag.Int64("seed", 0, "random seed, overrides the config seed (0 = time based)")
	dumpDir := flag.String("dump", "", "write a layout dump into this directory")
	window := flag.Bool("window", false, "show the layout in a window instead of the terminal")
	interactive := flag.Bool("interactive", false, "prompt to regenerate or dump after each layout")
	logLevel := flag.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	lang := flag.String("lang", i18n.DefaultLanguage, "message language")
	noColor := flag.Bool("no-color", false, "disable colored output")
	flag.Parse()

	log, err := newLogger(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := i18n.SetLanguage(*lang); err != nil {
		log.Warn().Err(err).Str("lang", *lang).Msg("Language not available")
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, i18n.Get("INVALID_CONFIG", err.Error()))
		os.Exit(2)
	}

	s := &session{
		cfg:     cfg,
		gen:     levelgen.New(cfg.Options(), log),
		log:     log,
		seed:    cfg.Seed,
		dumpDir: *dumpDir,
	}
	if *seed != 0 {
		s.seed = *seed
	}
	if s.dumpDir == "" {
		s.dumpDir = "."
	}

	if *window {
		preview := ebiten.New()
		preview.Regenerate = s.next
		renderer.SetRenderer(preview)
	} else {
		t := tui.New()
		t.NoColor = *noColor
		renderer.SetRenderer(t)
	}

	layout, err := s.generate()
	if err != nil {
		fmt.Fprintln(os.Stderr, userMessage(err))
		os.Exit(1)
	}

	if *dumpDir != "" {
		s.dump()
	}

	if err := renderer.Show(layout); err != nil {
		log.Error().Err(err).Msg("Show failed")
		os.Exit(1)
	}

	if *interactive && !*window {
		s.interactive()
	}
}
