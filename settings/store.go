package settings

import (
	"hexboard/core"
	"hexboard/microtonal"
	"hexboard/protocol"
)

// Load reads the saved preset. On any failure it returns the default
// preset together with the reason, so callers can always start.
func Load(store core.SettingsStore) (microtonal.Preset, error) {
	data, err := store.Load()
	if err != nil {
		return microtonal.DefaultPreset(), err
	}
	if len(data) == 0 {
		return microtonal.DefaultPreset(), nil
	}
	p, err := Decode(data)
	if err != nil {
		core.DebugPrintln("[SETTINGS] stored preset rejected: " + err.Error())
		return microtonal.DefaultPreset(), err
	}
	return p, nil
}

// Save writes p to store
func Save(store core.SettingsStore, p microtonal.Preset) error {
	out := protocol.NewScratchOutput()
	if err := Encode(out, p); err != nil {
		return err
	}
	return store.Save(out.Result())
}

// MemoryStore keeps the blob in RAM
type MemoryStore struct {
	data []byte
}

func (m *MemoryStore) Load() ([]byte, error) {
	return m.data, nil
}

func (m *MemoryStore) Save(data []byte) error {
	m.data = append(m.data[:0], data...)
	return nil
}
