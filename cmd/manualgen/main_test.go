package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/docfold/manualgen/internal/config"
	"github.com/docfold/manualgen/internal/source"
)

// TestResolveSource tests source selection from the positional argument
func TestResolveSource(t *testing.T) {
	log = newLogger()
	cfg := config.Default()
	cfg.Manual.Root = "docs/manual"

	t.Run("no argument uses configured root", func(t *testing.T) {
		src := resolveSource(cfg, nil)
		local, ok := src.(*source.Local)
		assert.True(t, ok)
		assert.Equal(t, "local", local.Name())
	})

	t.Run("directory argument", func(t *testing.T) {
		src := resolveSource(cfg, []string{"/srv/manual"})
		_, ok := src.(*source.Local)
		assert.True(t, ok)
	})

	t.Run("git url argument", func(t *testing.T) {
		src := resolveSource(cfg, []string{"https://github.com/user/repo.git"})
		_, ok := src.(*source.Git)
		assert.True(t, ok)
	})
}

// TestRootCmd_Flags tests that the key flags are registered
func TestRootCmd_Flags(t *testing.T) {
	for _, flag := range []string{
		"config", "verbose", "title", "start-text", "decode-item-names",
		"output", "format", "manifest", "manifest-path", "manifest-format",
		"force", "dry-run", "progress", "git-ref", "git-subdir",
	} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(flag), "missing flag %s", flag)
	}
}

// TestSubcommands tests that doctor and version are wired
func TestSubcommands(t *testing.T) {
	var names []string
	for _, cmd := range rootCmd.Commands() {
		names = append(names, cmd.Name())
	}
	assert.Contains(t, names, "doctor")
	assert.Contains(t, names, "version")
}
