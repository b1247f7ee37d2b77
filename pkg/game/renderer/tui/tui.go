// Package tui prints layouts to the terminal as colored text maps.
package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"

	"mazegen/pkg/engine/terminal"
	"mazegen/pkg/game/i18n"
	"mazegen/pkg/game/levelgen"
	"mazegen/pkg/game/renderer"
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	Out     io.Writer
	NoColor bool
	Width   int // 0 means the terminal width

	styles      map[renderer.Glyph]color.Style
	colorSubtle color.Style
	colorTitle  color.Style
}

// New creates a new TUI renderer writing to stdout
func New() *TUIRenderer {
	return &TUIRenderer{Out: os.Stdout}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.styles = map[renderer.Glyph]color.Style{
		renderer.GlyphFree:   {color.FgGray},
		renderer.GlyphRoom:   {color.FgBlue},
		renderer.GlyphDoor:   {color.FgYellow, color.OpBold},
		renderer.GlyphWall:   {color.FgWhite, color.OpBold},
		renderer.GlyphTrap:   {color.FgRed},
		renderer.GlyphKey:    {color.FgCyan, color.OpBold},
		renderer.GlyphExit:   {color.FgGreen, color.OpBold},
		renderer.GlyphPlayer: {color.FgGreen, color.BgBlack, color.OpBold},
	}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorTitle = color.Style{color.FgMagenta, color.OpBold}
	if t.Out == nil {
		t.Out = os.Stdout
	}
}

func (t *TUIRenderer) paint(style color.Style, s string) string {
	if t.NoColor || len(style) == 0 {
		return s
	}
	return style.Sprint(s)
}

func (t *TUIRenderer) width() int {
	if t.Width > 0 {
		return t.Width
	}
	return terminal.GetWidth()
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.Out, msg)
}

// Show prints the summary, map and legend of a layout
func (t *TUIRenderer) Show(layout *levelgen.Layout) error {
	_, err := io.WriteString(t.Out, t.Render(layout))
	return err
}

// Render returns the text Show prints
func (t *TUIRenderer) Render(layout *levelgen.Layout) string {
	if t.styles == nil {
		t.Init()
	}

	var sb strings.Builder
	for _, line := range Summary(layout) {
		sb.WriteString(t.paint(t.colorTitle, line))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	m := renderer.NewGlyphMap(layout)
	cols := m.Cols()
	truncated := false
	if w := t.width(); cols > w {
		cols = w
		truncated = true
	}

	for row := m.Rows() - 1; row >= 0; row-- {
		for col := 0; col < cols; col++ {
			g := m.At(row, col)
			sb.WriteString(t.paint(t.styles[g], string(g.Rune())))
		}
		sb.WriteString("\n")
	}
	if truncated {
		sb.WriteString(t.paint(t.colorSubtle, i18n.Get("MAP_TRUNCATED", cols)))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(i18n.Get("LEGEND"))
	sb.WriteString(":")
	for _, g := range renderer.AllGlyphs() {
		sb.WriteString("  ")
		sb.WriteString(t.paint(t.styles[g], fmt.Sprintf("%q", g.Rune())))
		sb.WriteString(" ")
		sb.WriteString(t.paint(t.colorSubtle, i18n.Get(g.LegendKey())))
	}
	sb.WriteString("\n")

	return sb.String()
}

// Summary returns the uncolored headline lines for a layout
func Summary(layout *levelgen.Layout) []string {
	tiles, free := 0, 0
	if layout.Grid != nil {
		tiles = layout.Grid.Len()
		free = layout.Grid.FreeCount()
	}

	lines := []string{
		i18n.Get("LAYOUT_SUMMARY", layout.ID, layout.Seed, tiles, len(layout.Placements), free),
	}
	if r := layout.Room; r != nil {
		lines = append(lines, i18n.Get("ROOM_SUMMARY", r.Anchor.String(), r.Size, r.DoorSide.String(), r.Door.String(), r.Goal.String()))
	}
	for _, s := range layout.Shortfalls {
		lines = append(lines, i18n.Get("QUOTA_UNMET", s.Placed, s.Quota, s.Kind.String()))
	}
	for _, m := range layout.Dropped {
		lines = append(lines, i18n.Get("MARKER_DROPPED", m.Kind.String()))
	}
	if layout.Grid != nil {
		if dupes := layout.Grid.Duplicates(); len(dupes) > 0 {
			lines = append(lines, i18n.Get("DUPLICATE_TILES", len(dupes)))
		}
	}
	return lines
}
