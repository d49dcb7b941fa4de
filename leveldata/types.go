// Package leveldata converts Tiled TMX maps into world-space level geometry.
// One tile is one world unit and y grows upward, so the controller can use
// the result without knowing anything about pixels or Tiled's row order.
package leveldata

// Rect is an axis-aligned box in world units. X, Y is the bottom-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Point is a position in world units.
type Point struct {
	X, Y  float64
	Index int // Tiled "spawnIndex" property
}

// Platform is a solid that bobs vertically above its resting Rect.
type Platform struct {
	Rect
	Travel float64 // units risen at the top of the cycle
	Period float64 // seconds for one full up and down cycle
}

// Level is everything the simulation needs from a map.
type Level struct {
	Name          string
	Width, Height float64
	Solids        []Rect
	Spawns        []Point
	Platforms     []Platform
}

// Spawn returns the leftmost spawn point, or fallback when the map has none.
func (l *Level) Spawn(fallback Point) Point {
	if len(l.Spawns) == 0 {
		return fallback
	}
	return l.Spawns[0]
}
