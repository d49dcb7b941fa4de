package systems

import (
	"image/color"

	"github.com/automoto/platformer-controller/components"
	"github.com/automoto/platformer-controller/config"
	"github.com/automoto/platformer-controller/controller"
	"github.com/automoto/platformer-controller/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

var (
	colorBackground = color.RGBA{24, 24, 32, 255}
	colorSolid      = color.RGBA{100, 100, 100, 255}
	colorPlatform   = color.RGBA{160, 120, 60, 255}
	colorPlayer     = map[controller.StateID]color.RGBA{
		controller.Idle:     {0, 120, 255, 255},
		controller.Running:  {0, 200, 120, 255},
		controller.Airborne: {120, 200, 255, 255},
		controller.Sliding:  {255, 160, 0, 255},
	}
)

// screenTransform maps world units (y up) to screen pixels (y down) around
// the camera.
type screenTransform struct {
	camX, camY float64
	ppu        float64
	halfW      float64
	halfH      float64
}

func newScreenTransform(e *ecs.ECS, screen *ebiten.Image) (screenTransform, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return screenTransform{}, false
	}
	camera := components.Camera.Get(cameraEntry)
	return screenTransform{
		camX:  camera.Position.X,
		camY:  camera.Position.Y,
		ppu:   config.World.PixelsPerUnit,
		halfW: float64(screen.Bounds().Dx()) / 2,
		halfH: float64(screen.Bounds().Dy()) / 2,
	}, true
}

// point maps a world position to screen pixels.
func (t screenTransform) point(wx, wy float64) (x, y float32) {
	return float32((wx-t.camX)*t.ppu + t.halfW), float32(t.halfH - (wy-t.camY)*t.ppu)
}

// rect returns the screen-space top-left corner and size of obj.
func (t screenTransform) rect(obj *resolv.Object) (x, y, w, h float32) {
	x, y = t.point(obj.X, obj.Y+obj.H)
	return x, y, float32(obj.W * t.ppu), float32(obj.H * t.ppu)
}

// DrawLevel draws every collider in the space as a filled box.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(colorBackground)

	t, ok := newScreenTransform(e, screen)
	if !ok {
		return
	}
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		var c color.Color
		switch {
		case obj.HasTags(tags.ResolvPlayer):
			continue
		case obj.HasTags(tags.ResolvPlatform):
			c = colorPlatform
		default:
			c = colorSolid
		}
		x, y, w, h := t.rect(obj)
		vector.FillRect(screen, x, y, w, h, c, false)
	}

	if playerEntry, ok := tags.Player.First(e.World); ok {
		obj := components.Object.Get(playerEntry).Object
		state := controller.DeriveState(components.Motion.Get(playerEntry))
		x, y, w, h := t.rect(obj)
		vector.FillRect(screen, x, y, w, h, colorPlayer[state], false)
	}
}
