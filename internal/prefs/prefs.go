package prefs

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"

	"skycast/internal/weather"
)

// Store holds the user's temperature unit preference and persists it across
// restarts. The preference changes only on an explicit toggle.
type Store struct {
	mu   sync.RWMutex
	path string
	unit weather.Unit
}

type persisted struct {
	Unit string `json:"unit"`
}

// Open loads the preference file, defaulting to celsius when the file is
// missing or unreadable.
func Open(path string) *Store {
	s := &Store{path: path, unit: weather.Celsius}

	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	var p persisted
	if err := json.Unmarshal(data, &p); err != nil {
		log.Printf("INFO: ignoring malformed preferences file %s: %v", path, err)
		return s
	}
	if u, err := weather.ParseUnit(p.Unit); err == nil {
		s.unit = u
	}
	return s
}

// Unit returns the active temperature unit.
func (s *Store) Unit() weather.Unit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unit
}

// Toggle flips the unit and writes it through to disk.
func (s *Store) Toggle() weather.Unit {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.unit = s.unit.Toggle()
	if err := s.save(); err != nil {
		log.Printf("failed to persist unit preference: %v", err)
	}
	return s.unit
}

func (s *Store) save() error {
	data, err := json.Marshal(persisted{Unit: string(s.unit)})
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, data, 0o644)
}
