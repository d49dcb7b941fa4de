package scenes

import (
	"fmt"
	"sync"

	"github.com/automoto/platformer-controller/archetypes"
	"github.com/automoto/platformer-controller/leveldata"
	"github.com/automoto/platformer-controller/levels"
	"github.com/automoto/platformer-controller/systems"
	"github.com/automoto/platformer-controller/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlatformerScene is the playground: one level, one controllable character.
type PlatformerScene struct {
	ecs       *ecs.ECS
	levelPath string
	once      sync.Once
	err       error
}

func NewPlatformerScene(levelPath string) *PlatformerScene {
	return &PlatformerScene{levelPath: levelPath}
}

func (ps *PlatformerScene) Update() error {
	ps.once.Do(ps.configure)
	if ps.err != nil {
		return ps.err
	}
	ps.ecs.Update()
	return nil
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	level, err := leveldata.Load(levels.FS, ps.levelPath)
	if err != nil {
		ps.err = fmt.Errorf("playground: %w", err)
		return
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateDebug)
	ecs.AddSystem(systems.UpdateReplay)
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateController))
	ecs.AddSystem(systems.UpdateCamera)

	ecs.AddRenderer(archetypes.LayerDefault, systems.DrawLevel)
	ecs.AddRenderer(archetypes.LayerDefault, systems.DrawDebug)
	ecs.AddRenderer(archetypes.LayerDefault, systems.DrawHUD)
	ecs.AddRenderer(archetypes.LayerDefault, systems.DrawPause)

	factory.CreateLevel(ecs, level)

	ps.ecs = ecs
}
