// Package ebiten provides an Ebiten-based preview window for generated mazes.
package ebiten

import "image/color"

// Color palette
var (
	colorBackground = color.RGBA{15, 15, 26, 255}    // Darker for map area
	colorWall       = color.RGBA{60, 60, 80, 255}    // Wall block
	colorFloor      = color.RGBA{160, 160, 180, 255} // Floor
	colorPlayer     = color.RGBA{0, 255, 0, 255}     // Bright green
	colorAgent      = color.RGBA{255, 80, 80, 255}   // Bright red
)

// Tile size constraints
const (
	defaultTileSize = 24
	minTileSize     = 6
	maxTileSize     = 96
	tileSizeStep    = 3 // Keeps tiles divisible into three bands
)
