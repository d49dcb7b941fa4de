package systems

import (
	"image/color"

	"github.com/automoto/platformer-controller/components"
	cfg "github.com/automoto/platformer-controller/config"
	"github.com/automoto/platformer-controller/controller"
	"github.com/automoto/platformer-controller/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

var (
	colorCell    = color.RGBA{255, 255, 0, 40}
	colorOutline = color.RGBA{0, 255, 255, 255}
	colorContact = color.RGBA{255, 0, 0, 255}
)

// UpdateDebug flips the collider overlay on F3.
func UpdateDebug(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if input.Action(cfg.ActionToggleDebug).JustPressed {
		debug := getOrCreateDebug(ecs)
		debug.Enabled = !debug.Enabled
	}
}

// DrawDebug outlines every collider and shades the broad-phase cells the
// player's collision query walks. Colliders found in those cells are
// outlined red.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !getOrCreateDebug(ecs).Enabled {
		return
	}
	t, ok := newScreenTransform(ecs, screen)
	if !ok {
		return
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	candidates := make(map[*resolv.Object]struct{})
	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		body := components.Object.Get(playerEntry).Object
		if body.Space != nil {
			minX, minY, maxX, maxY := controller.QueryCells(body)
			cw, ch := float64(space.CellWidth), float64(space.CellHeight)
			for y := minY; y <= maxY; y++ {
				for x := minX; x <= maxX; x++ {
					cell := space.Cell(x, y)
					if cell == nil {
						continue
					}
					sx, sy := t.point(float64(x)*cw, float64(y+1)*ch)
					vector.FillRect(screen, sx, sy, float32(cw*t.ppu), float32(ch*t.ppu), colorCell, false)
					for _, o := range cell.Objects {
						if o != body {
							candidates[o] = struct{}{}
						}
					}
				}
			}
		}
	}

	for _, obj := range space.Objects() {
		c := colorOutline
		if _, hit := candidates[obj]; hit {
			c = colorContact
		}
		x, y, w, h := t.rect(obj)
		vector.StrokeRect(screen, x, y, w, h, 1, c, false)
	}
}

func getOrCreateDebug(ecs *ecs.ECS) *components.DebugData {
	entry, ok := components.Debug.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Debug))
	}
	return components.Debug.Get(entry)
}
