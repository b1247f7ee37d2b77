// Package ebiten shows a layout in a window, one filled square per tile.
package ebiten

import (
	"errors"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"mazegen/pkg/game/levelgen"
	"mazegen/pkg/game/renderer"
)

// errClosed ends the game loop when the user quits
var errClosed = errors.New("preview closed")

// EbitenRenderer previews layouts in a window
type EbitenRenderer struct {
	// Regenerate is called when R is pressed; nil disables regeneration
	Regenerate func() (*levelgen.Layout, error)

	tileSize int
	title    string

	mu      sync.Mutex
	layout  *levelgen.Layout
	glyphs  *renderer.GlyphMap
	message string
}

// New creates a new Ebiten renderer
func New() *EbitenRenderer {
	return &EbitenRenderer{tileSize: DefaultTileSize, title: "Maze Layout"}
}

// Init sets the window title
func (e *EbitenRenderer) Init() {
	ebiten.SetWindowTitle(e.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
}

// ShowMessage shows a message in the window header
func (e *EbitenRenderer) ShowMessage(msg string) {
	e.mu.Lock()
	e.message = msg
	e.mu.Unlock()
}

// Show opens the window and blocks until it is closed
func (e *EbitenRenderer) Show(layout *levelgen.Layout) error {
	e.setLayout(layout)

	w, h := e.windowSize()
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(e); err != nil && !errors.Is(err, errClosed) {
		return err
	}
	return nil
}

func (e *EbitenRenderer) setLayout(layout *levelgen.Layout) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.layout = layout
	e.glyphs = renderer.NewGlyphMap(layout)
	e.message = fmt.Sprintf("%s  seed %d", layout.ID, layout.Seed)
}

// windowSize returns the window size for the current layout, shrinking
// the tile size until it fits the maximum window
func (e *EbitenRenderer) windowSize() (int, int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	rows, cols := e.glyphs.Rows(), e.glyphs.Cols()
	for e.tileSize > 2 && (cols*e.tileSize > MaxWindowWidth || rows*e.tileSize+HeaderHeight > MaxWindowHeight) {
		e.tileSize--
	}
	return max(cols*e.tileSize, 320), rows*e.tileSize + HeaderHeight
}

// Update handles key input. Escape or Q closes the window, R regenerates.
func (e *EbitenRenderer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return errClosed
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && e.Regenerate != nil {
		layout, err := e.Regenerate()
		if err != nil {
			e.ShowMessage(err.Error())
			return nil
		}
		e.setLayout(layout)
	}
	return nil
}

// Draw renders the layout, highest row at the top
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	e.mu.Lock()
	defer e.mu.Unlock()

	screen.Fill(colorBackground)
	ebitenutil.DebugPrintAt(screen, e.message, 4, 2)

	if e.glyphs == nil {
		return
	}

	rows, cols := e.glyphs.Rows(), e.glyphs.Cols()
	size := float32(e.tileSize - TileGap)
	for row := 0; row < rows; row++ {
		y := float32(HeaderHeight + (rows-1-row)*e.tileSize)
		for col := 0; col < cols; col++ {
			c, ok := glyphColor(e.glyphs.At(row, col))
			if !ok {
				continue
			}
			x := float32(col * e.tileSize)
			vector.DrawFilledRect(screen, x, y, size, size, c, false)
		}
	}
}

// Layout returns the game's logical screen size
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
