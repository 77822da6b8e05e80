package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/zmk-tools/zmk2vial/internal/model"
)

func TestLocalKeymapSource_Fetch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.keymap")
	require.NoError(t, os.WriteFile(path, []byte("keymap { };"), 0o600))

	source := NewLocalKeymapSource(m.Path(path))

	data, err := source.Fetch()
	require.NoError(t, err)
	assert.Equal(t, "keymap { };", string(data))
	assert.Equal(t, path, source.Location())
}

func TestLocalKeymapSource_Missing(t *testing.T) {
	source := NewLocalKeymapSource(m.Path(filepath.Join(t.TempDir(), "absent.keymap")))

	_, err := source.Fetch()
	require.ErrorIs(t, err, m.ErrConfigNotFound)
}
