package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd(t *testing.T) {
	cmd := NewRootCmd()

	assert.Equal(t, "cssvar", cmd.Use)

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "convert")
	assert.Contains(t, names, "status")
	assert.Contains(t, names, "restore")

	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("base-dir"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("backup-suffix"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("async"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("debug"))
}

func TestConvertCommand_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	cssPath := filepath.Join(dir, "App.css")
	require.NoError(t, os.WriteFile(cssPath, []byte("body { color: #1a1f2d; }\n"), 0644))

	cfgPath := filepath.Join(dir, ".cssvar.yaml")
	cfgContent := fmt.Sprintf("base_dir: %s\ntargets:\n  - App.css\n", dir)
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgContent), 0644))

	logger := zerolog.Nop()
	ctx := logger.WithContext(context.Background())

	var console bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&console)
	cmd.SetArgs([]string{"convert", "--config", cfgPath})
	require.NoError(t, cmd.ExecuteContext(ctx))

	content, err := os.ReadFile(cssPath)
	require.NoError(t, err)
	assert.Equal(t, "body { color: var(--color-text-primary); }\n", string(content))

	backup, err := os.ReadFile(cssPath + ".bak")
	require.NoError(t, err)
	assert.Equal(t, "body { color: #1a1f2d; }\n", string(backup))

	// Header and closing line are printed on the command's output stream
	out := console.String()
	assert.Contains(t, out, "cssvar")
	assert.Contains(t, out, "rewriting hardcoded colors")
	assert.Contains(t, out, "all targets processed")
}
