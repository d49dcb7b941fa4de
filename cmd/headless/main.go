package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	cfg "github.com/automoto/platformer-controller/config"
	"github.com/automoto/platformer-controller/controller"
	"github.com/automoto/platformer-controller/leveldata"
	"github.com/automoto/platformer-controller/levels"
	"github.com/automoto/platformer-controller/replay"
	"github.com/automoto/platformer-controller/sim"
	"github.com/quasilyte/gdata"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (empty = built-in defaults)")
	levelName := flag.String("level", "", "Level file to run (empty = config world.level)")
	levelsDir := flag.String("levels", "", "Directory of .tmx levels (empty = embedded levels)")
	replayPath := flag.String("replay", "", "Replay JSON file to play back")
	saved := flag.Bool("saved", false, "Play the replay last saved by the playground")
	seconds := flag.Float64("seconds", 10, "Length of the scripted run when no replay is given")
	realtime := flag.Bool("realtime", false, "Tick at the configured rate instead of as fast as possible")
	flag.Parse()

	if *configPath != "" {
		f, err := cfg.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		f.Apply()
	}

	rec, err := loadRecording(*replayPath, *saved)
	if err != nil {
		log.Fatalf("Failed to load replay: %v", err)
	}

	var levelFS fs.FS = levels.FS
	if *levelsDir != "" {
		levelFS = os.DirFS(*levelsDir)
	}
	level, err := leveldata.Load(levelFS, levelFile(*levelName, cfg.World.Level, rec))
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}
	if rec != nil {
		if err := rec.CheckLevel(level.Name); err != nil {
			log.Fatalf("Failed to play replay: %v", err)
		}
	}

	s, err := sim.New(level, sim.DefaultOptions())
	if err != nil {
		log.Fatalf("Failed to build simulation: %v", err)
	}

	tickRate := cfg.Physics.TickRate
	var source sim.TickSource
	if rec != nil {
		log.Printf("Playing %d frames (%.2fs) recorded on level %q", len(rec.Frames), rec.Duration(), rec.Level)
		source = replaySource(replay.NewPlayer(rec))
	} else {
		ticks := int(*seconds * float64(tickRate))
		source = scriptedSource(ticks, tickRate)
	}

	report := func(st sim.State, _ controller.Result) {
		if st.Tick%uint64(tickRate) == 0 {
			log.Println(st)
		}
	}

	if !*realtime {
		for {
			src, dt, ok := source()
			if !ok {
				break
			}
			res := s.Tick(src, dt)
			report(s.State(), res)
		}
		log.Printf("Finished: %s respawns=%d", s.State(), s.State().Respawns)
		return
	}

	loop := sim.NewGameLoop(s, source, tickRate)
	loop.OnTick = report

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down...")
		loop.Stop()
	}()

	loop.Run()
	log.Printf("Finished: %s respawns=%d", s.State(), s.State().Respawns)
}

func loadRecording(path string, saved bool) (*replay.Recording, error) {
	switch {
	case path != "":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return replay.Decode(data)
	case saved:
		store, err := gdata.Open(gdata.Config{AppName: replay.AppName})
		if err != nil {
			return nil, err
		}
		rec, err := replay.Load(store)
		if errors.Is(err, replay.ErrNoReplay) {
			log.Println("Warning: no saved replay, running the scripted input instead")
			return nil, nil
		}
		return rec, err
	}
	return nil, nil
}

// levelFile picks the level to run: the -level flag, then the level the
// recording was made on, then the configured default.
func levelFile(flagLevel, fallback string, rec *replay.Recording) string {
	switch {
	case flagLevel != "":
		return flagLevel
	case rec != nil && rec.Level != "":
		return rec.Level + leveldata.Ext
	}
	return fallback
}

func replaySource(p *replay.Player) sim.TickSource {
	return func() (controller.InputSource, float64, bool) {
		dt, ok := p.Next()
		return p, dt, ok
	}
}

// scriptedSource walks right, jumping every second and a half and sliding
// every four seconds of simulated time.
func scriptedSource(ticks, tickRate int) sim.TickSource {
	dt := 1 / float64(tickRate)
	jumpEvery := max(tickRate*3/2, 1)
	slideEvery := tickRate * 4
	tick := 0
	return func() (controller.InputSource, float64, bool) {
		if tick >= ticks {
			return nil, 0, false
		}
		tick++
		return controller.SnapshotSource{
			MoveAxis:     1,
			JumpPressed:  tick%jumpEvery == 0,
			SlidePressed: tick%slideEvery == 0,
		}, dt, true
	}
}
