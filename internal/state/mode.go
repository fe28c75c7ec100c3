package state

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Mode selects which tooltip variant is rendered.
type Mode string

// The two valid display modes. Any other persisted value reads as
// ModeDefault.
const (
	ModeDefault Mode = "default"
	ModeWeek    Mode = "weekview"
)

// Direction advances the two-element mode cycle.
type Direction int

const (
	Next Direction = iota
	Prev
)

const modeFile = "mode"

// ModeStore persists the display mode as a single trimmed line of text.
type ModeStore struct {
	path string
}

// NewModeStore creates a mode store under the given state directory.
func NewModeStore(dir string) *ModeStore {
	return &ModeStore{path: filepath.Join(dir, modeFile)}
}

// Get reads the persisted mode, defaulting to ModeDefault on a missing
// file or an unrecognized value.
func (s *ModeStore) Get() Mode {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return ModeDefault
	}
	if m := Mode(strings.TrimSpace(string(raw))); m == ModeWeek {
		return m
	}
	return ModeDefault
}

// Set persists an exact mode. Invalid modes are ignored.
func (s *ModeStore) Set(m Mode) error {
	if m != ModeDefault && m != ModeWeek {
		return nil
	}
	if err := os.WriteFile(s.path, []byte(string(m)+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to persist display mode: %w", err)
	}
	return nil
}

// Cycle advances the persisted mode one step in the given direction and
// returns the new mode. With two states, next and prev both flip the mode;
// keeping the direction makes the wraparound order explicit.
func (s *ModeStore) Cycle(dir Direction) (Mode, error) {
	order := []Mode{ModeDefault, ModeWeek}
	cur := s.Get()

	idx := 0
	for i, m := range order {
		if m == cur {
			idx = i
			break
		}
	}
	switch dir {
	case Prev:
		idx = (idx - 1 + len(order)) % len(order)
	default:
		idx = (idx + 1) % len(order)
	}

	next := order[idx]
	if err := s.Set(next); err != nil {
		return cur, err
	}
	return next, nil
}
