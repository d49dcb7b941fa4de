package systems

import (
	"log"

	"github.com/automoto/platformer-controller/replay"
	"github.com/quasilyte/gdata"
)

var gdataManager *gdata.Manager

// InitPersistence opens the gdata store replays are saved to. The playground
// still runs without it; saving and loading replays are then disabled.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: replay.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	return nil
}

// replayStore returns the replay store, or nil when persistence is off.
func replayStore() replay.Store {
	if gdataManager == nil {
		return nil
	}
	return gdataManager
}
