package renderer

import (
	"mazegen/pkg/game/levelgen"
)

// Renderer defines the interface for layout preview backends
// Implementations include the TUI (terminal) and Ebiten (window) previews.
type Renderer interface {
	// Init initializes the renderer (colors, window size, etc.)
	Init()

	// Show displays the layout. Window backends block until closed.
	Show(layout *levelgen.Layout) error

	// ShowMessage displays a message to the user
	ShowMessage(msg string)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer and initializes it
func SetRenderer(r Renderer) {
	Current = r
	if r != nil {
		r.Init()
	}
}

// Show displays the layout with the current renderer
func Show(layout *levelgen.Layout) error {
	if Current != nil {
		return Current.Show(layout)
	}
	return nil
}

// ShowMessage displays a message with the current renderer
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}
