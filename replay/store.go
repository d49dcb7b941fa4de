package replay

import "fmt"

const (
	// AppName scopes the gdata directory replays are saved under.
	AppName = "platformer-controller"
	// ItemKey is the storage key of the last saved recording.
	ItemKey = "last-replay"
)

// Store is the key/value persistence a recording is saved to. A
// *gdata.Manager satisfies it.
type Store interface {
	SaveItem(itemKey string, data []byte) error
	LoadItem(itemKey string) ([]byte, error)
}

func Save(s Store, r *Recording) error {
	data, err := Encode(r)
	if err != nil {
		return err
	}
	if err := s.SaveItem(ItemKey, data); err != nil {
		return fmt.Errorf("save replay: %w", err)
	}
	return nil
}

// Load reads the last saved recording. It returns ErrNoReplay when nothing
// has been saved yet.
func Load(s Store) (*Recording, error) {
	data, err := s.LoadItem(ItemKey)
	if err != nil {
		return nil, fmt.Errorf("load replay: %w", err)
	}
	if data == nil {
		return nil, ErrNoReplay
	}
	return Decode(data)
}
