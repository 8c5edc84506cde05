package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCommand(t *testing.T) {
	root := NewRootCommand()

	assert.Equal(t, "appsweep", root.Use)
	assert.True(t, root.SilenceUsage)

	var names []string
	for _, sub := range root.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "clean")
	assert.Contains(t, names, "scan")
	assert.Contains(t, names, "history")
}

func TestRootCommandHelp(t *testing.T) {
	root := NewRootCommand()
	root.SetArgs([]string{"--help"})
	require.NoError(t, root.Execute())
}
