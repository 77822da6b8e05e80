// Package adapter contains infrastructure adapters for the zmk2vial CLI.
// They hide direct os and network access so the domain pipeline can be
// tested without touching disk or the outside world.
package adapter

import (
	"fmt"
	"os"

	m "github.com/zmk-tools/zmk2vial/internal/model"
)

// KeymapSource obtains the raw source keymap text. Implementations hide
// whether the bytes come from disk or the network.
type KeymapSource interface {
	Fetch() ([]byte, error)

	// Location describes where the keymap comes from, for diagnostics and
	// for deriving a default output name.
	Location() string
}

// LocalKeymapSource reads a keymap from a local path.
type LocalKeymapSource struct {
	path m.Path
}

// NewLocalKeymapSource constructs a source backed by a local file.
func NewLocalKeymapSource(path m.Path) *LocalKeymapSource {
	return &LocalKeymapSource{path: path}
}

// Fetch reads the keymap file from disk.
func (s *LocalKeymapSource) Fetch() ([]byte, error) {
	data, err := os.ReadFile(string(s.path))
	if err != nil {
		return nil, fmt.Errorf("%w: read keymap %s: %v", m.ErrConfigNotFound, s.path, err)
	}
	return data, nil
}

// Location returns the local path.
func (s *LocalKeymapSource) Location() string {
	return string(s.path)
}
