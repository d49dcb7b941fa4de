package systems

import (
	"errors"
	"fmt"
	"log"

	"github.com/automoto/platformer-controller/components"
	cfg "github.com/automoto/platformer-controller/config"
	"github.com/automoto/platformer-controller/controller"
	"github.com/automoto/platformer-controller/leveldata"
	"github.com/automoto/platformer-controller/replay"
	"github.com/automoto/platformer-controller/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ReplayData is the playground's recorder and playback state.
type ReplayData struct {
	Recorder *replay.Recorder
	Playback *replay.Player // nil while the player is in control
	Status   string
}

var Replay = donburi.NewComponentType[ReplayData]()

// UpdateReplay handles the save (F5) and play (F9) actions. Must run after
// UpdateInput and before UpdateController.
func UpdateReplay(e *ecs.ECS) {
	input := getOrCreateInput(e)
	rs := getOrCreateReplay(e)

	if input.Action(cfg.ActionSaveReplay).JustPressed {
		rs.Status = saveReplay(rs.Recorder)
	}
	if input.Action(cfg.ActionPlayReplay).JustPressed {
		rec, err := loadReplay()
		if err != nil {
			rs.Status = err.Error()
			return
		}
		if err := rec.CheckLevel(currentLevelName(e)); err != nil {
			log.Printf("Warning: %v", err)
			rs.Status = fmt.Sprintf("replay is for level %q", rec.Level)
			return
		}
		ResetWorld(e)
		rs.Playback = replay.NewPlayer(rec)
		rs.Status = fmt.Sprintf("replaying %d frames", len(rec.Frames))
	}
}

func saveReplay(rec *replay.Recorder) string {
	store := replayStore()
	if store == nil {
		return "persistence unavailable"
	}
	if err := replay.Save(store, rec.Recording()); err != nil {
		log.Printf("Warning: Could not save replay: %v", err)
		return "save failed"
	}
	return fmt.Sprintf("saved %d frames", rec.Len())
}

func loadReplay() (*replay.Recording, error) {
	store := replayStore()
	if store == nil {
		return nil, errors.New("persistence unavailable")
	}
	rec, err := replay.Load(store)
	if errors.Is(err, replay.ErrNoReplay) {
		return nil, errors.New("nothing saved yet")
	}
	if err != nil {
		log.Printf("Warning: Could not load replay: %v", err)
		return nil, errors.New("load failed")
	}
	return rec, nil
}

// ResetWorld puts the level back in its initial state: player at the spawn,
// clock at zero, platforms at rest, recorder empty.
func ResetWorld(e *ecs.ECS) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		respawn(entry, level.Spawn)
		components.Player.Get(entry).Respawns = 0
	})

	if clockEntry, ok := components.Clock.First(e.World); ok {
		components.Clock.SetValue(clockEntry, components.ClockData{})
	}

	tags.FloatingPlatform.Each(e.World, func(entry *donburi.Entry) {
		components.Tween.Get(entry).Reset()
		obj := components.Object.Get(entry)
		obj.Y = components.Platform.Get(entry).BaseY
		obj.Update()
	})

	rs := getOrCreateReplay(e)
	rs.Recorder.Reset(levelName(level.CurrentLevel))
	rs.Playback = nil
}

// respawn moves a player back to spawn at rest.
func respawn(entry *donburi.Entry, spawn leveldata.Point) {
	obj := components.Object.Get(entry)
	obj.X, obj.Y = spawn.X, spawn.Y
	obj.Update()

	motion := components.Motion.Get(entry)
	*motion = components.MotionData{Facing: motion.Facing}
	controller.CancelSlideStops(components.SlideTimers.Get(entry))
}

func getOrCreateReplay(e *ecs.ECS) *ReplayData {
	entry, ok := Replay.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(Replay))
		Replay.SetValue(entry, ReplayData{
			Recorder: replay.NewRecorder(cfg.Physics.TickRate, currentLevelName(e)),
			Status:   "live",
		})
	}
	return Replay.Get(entry)
}

func currentLevelName(e *ecs.ECS) string {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return ""
	}
	return levelName(components.Level.Get(levelEntry).CurrentLevel)
}

func levelName(l *leveldata.Level) string {
	if l == nil {
		return ""
	}
	return l.Name
}
