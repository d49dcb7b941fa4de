package main

import (
	"flag"
	"log"

	"github.com/automoto/platformer-controller/config"
	"github.com/automoto/platformer-controller/scenes"
	"github.com/automoto/platformer-controller/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(levelPath string) *Game {
	return &Game{
		scene: scenes.NewPlatformerScene(levelPath),
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.World.ScreenWidth, config.World.ScreenHeight
}

func main() {
	configPath := flag.String("config", "", "YAML config file (empty = built-in defaults)")
	level := flag.String("level", "", "Level file inside the embedded levels (empty = config world.level)")
	flag.Parse()

	if *configPath != "" {
		f, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		f.Apply()
	}
	if *level == "" {
		*level = config.World.Level
	}

	ebiten.SetWindowSize(config.World.ScreenWidth*2, config.World.ScreenHeight*2)
	ebiten.SetWindowTitle("Platformer controller playground")
	ebiten.SetTPS(config.Physics.TickRate)

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Replays will not be saved: %v", err)
	}

	if err := ebiten.RunGame(NewGame(*level)); err != nil {
		log.Fatal(err)
	}
}
