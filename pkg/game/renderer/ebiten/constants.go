package ebiten

import (
	"image/color"

	"mazegen/pkg/game/renderer"
)

// Color palette for the preview
var (
	colorBackground = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorFree       = color.RGBA{100, 100, 120, 255} // Medium gray
	colorRoom       = color.RGBA{60, 80, 100, 255}   // Dark blue-gray
	colorDoor       = color.RGBA{255, 255, 0, 255}   // Bright yellow
	colorWall       = color.RGBA{180, 180, 200, 255} // Light gray-blue
	colorTrap       = color.RGBA{255, 80, 80, 255}   // Bright red
	colorKey        = color.RGBA{100, 150, 255, 255} // Bright blue
	colorExit       = color.RGBA{100, 255, 100, 255} // Bright green
	colorPlayer     = color.RGBA{0, 255, 0, 255}     // Bright green
)

// Sizing
const (
	DefaultTileSize = 16
	TileGap         = 1
	HeaderHeight    = 20
	MaxWindowWidth  = 1600
	MaxWindowHeight = 1000
)

// glyphColor returns the fill color for a glyph; missing tiles are not drawn
func glyphColor(g renderer.Glyph) (color.Color, bool) {
	switch g {
	case renderer.GlyphFree:
		return colorFree, true
	case renderer.GlyphRoom:
		return colorRoom, true
	case renderer.GlyphDoor:
		return colorDoor, true
	case renderer.GlyphWall:
		return colorWall, true
	case renderer.GlyphTrap:
		return colorTrap, true
	case renderer.GlyphKey:
		return colorKey, true
	case renderer.GlyphExit:
		return colorExit, true
	case renderer.GlyphPlayer:
		return colorPlayer, true
	default:
		return nil, false
	}
}
