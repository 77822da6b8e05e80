package adapter

import (
	"fmt"

	"github.com/google/renameio/v2"
	"github.com/rs/zerolog"

	"github.com/zmk-tools/zmk2vial/internal/log"
	m "github.com/zmk-tools/zmk2vial/internal/model"
)

// VilWriter persists the final document. Writes are atomic: the output file
// appears complete or not at all, never half-written.
type VilWriter interface {
	Write(path m.Path, data []byte) error
}

type atomicVilWriter struct {
	log zerolog.Logger
}

// NewVilWriter constructs a writer that replaces the output file atomically.
func NewVilWriter() VilWriter {
	return &atomicVilWriter{log: log.WithComponent("writer")}
}

func (w *atomicVilWriter) Write(path m.Path, data []byte) error {
	// renameio handles temp file creation, fsync and the atomic rename, and
	// removes the temp file when the write is not committed.
	pending, err := renameio.NewPendingFile(string(path))
	if err != nil {
		return fmt.Errorf("%w: create pending file for %s: %v", m.ErrWrite, path, err)
	}
	defer func() {
		if err := pending.Cleanup(); err != nil {
			w.log.Debug().Err(err).Msg("cleanup pending output file")
		}
	}()

	if _, err := pending.Write(data); err != nil {
		return fmt.Errorf("%w: write %s: %v", m.ErrWrite, path, err)
	}

	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("%w: atomically replace %s: %v", m.ErrWrite, path, err)
	}
	return nil
}
