// Package layout places components on the schematic grid and resolves pin
// positions from their declared sides. All geometry it produces is
// quantized to the same grid quantum the router searches on.
package layout

import "math"

// Quantum is the grid pitch in pixels. Component sizing, pin spacing and
// wire routing all quantize with this constant; if they ever diverged, pin
// access cells would drift off the obstacle grid.
const Quantum = 10.0

// ToGrid converts a pixel coordinate to the nearest grid cell index.
func ToGrid(px float64) int {
	return int(math.Round(px / Quantum))
}

// ToPx converts a grid cell index back to pixel space.
func ToPx(g int) float64 {
	return float64(g) * Quantum
}

// Snap quantizes a pixel coordinate to the nearest grid line.
func Snap(px float64) float64 {
	return ToPx(ToGrid(px))
}

// SnapUp rounds a dimension up to the next grid multiple.
func SnapUp(px float64) float64 {
	return math.Ceil(px/Quantum) * Quantum
}
