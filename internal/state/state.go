// Package state persists the widget's two small cross-invocation files:
// the display-mode toggle and the last-successful-fetch cache snapshot.
// Both live in one per-user state directory. Execution is single-writer by
// construction (the bar runs one invocation at a time), so no locking.
package state

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const appDir = "meteobar"

// Dir resolves (and creates) the widget's state directory, normally
// $XDG_STATE_HOME/meteobar.
func Dir() (string, error) {
	dir := filepath.Join(xdg.StateHome, appDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create state directory %s: %w", dir, err)
	}
	return dir, nil
}
