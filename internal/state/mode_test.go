package state

import (
	"os"
	"path/filepath"
	"testing"
)

func TestModeGetDefaults(t *testing.T) {
	store := NewModeStore(t.TempDir())

	if got := store.Get(); got != ModeDefault {
		t.Errorf("Missing file should read as default, got %s", got)
	}
}

func TestModeGetInvalidValue(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, modeFile), []byte("sideways\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	store := NewModeStore(dir)
	if got := store.Get(); got != ModeDefault {
		t.Errorf("Invalid persisted value should read as default, got %s", got)
	}
}

func TestModeSetAndGet(t *testing.T) {
	store := NewModeStore(t.TempDir())

	if err := store.Set(ModeWeek); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if got := store.Get(); got != ModeWeek {
		t.Errorf("Expected weekview after Set, got %s", got)
	}
}

func TestModeSetInvalidIsNoop(t *testing.T) {
	store := NewModeStore(t.TempDir())
	if err := store.Set(ModeWeek); err != nil {
		t.Fatal(err)
	}

	if err := store.Set(Mode("bogus")); err != nil {
		t.Fatalf("Invalid Set should not error: %v", err)
	}
	if got := store.Get(); got != ModeWeek {
		t.Errorf("Invalid Set should not change the mode, got %s", got)
	}
}

func TestModeCycleIsTwoCycle(t *testing.T) {
	store := NewModeStore(t.TempDir())

	first, err := store.Cycle(Next)
	if err != nil {
		t.Fatal(err)
	}
	if first != ModeWeek {
		t.Errorf("Cycle(Next) from default = %s, want weekview", first)
	}

	second, err := store.Cycle(Next)
	if err != nil {
		t.Fatal(err)
	}
	if second != ModeDefault {
		t.Errorf("Cycling twice should return to default, got %s", second)
	}
}

func TestModeCyclePrevInvertsNext(t *testing.T) {
	store := NewModeStore(t.TempDir())

	for _, start := range []Mode{ModeDefault, ModeWeek} {
		if err := store.Set(start); err != nil {
			t.Fatal(err)
		}
		if _, err := store.Cycle(Next); err != nil {
			t.Fatal(err)
		}
		got, err := store.Cycle(Prev)
		if err != nil {
			t.Fatal(err)
		}
		if got != start {
			t.Errorf("Cycle(Prev) after Cycle(Next) from %s = %s, want %s", start, got, start)
		}
	}
}
