package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd(t *testing.T) {
	root, out := newTestRoot()
	root.SetArgs([]string{"list", "--local", "testdata/corne.keymap"})

	require.NoError(t, root.Execute())

	rendered := out.String()
	assert.Contains(t, rendered, "default")
	assert.Contains(t, rendered, "lower")
	assert.Contains(t, rendered, "raise")
	assert.Contains(t, strings.ToUpper(rendered), "TOTAL LAYERS 3")
}

func TestListCmd_MissingSource(t *testing.T) {
	root, _ := newTestRoot()
	root.SetArgs([]string{"list", "--local", "testdata/absent.keymap"})

	require.Error(t, root.Execute())
}

func TestListCmd_RejectsArguments(t *testing.T) {
	root, _ := newTestRoot()
	root.SetArgs([]string{"list", "extra", "--local", "testdata/corne.keymap"})

	require.Error(t, root.Execute())
}
