package main

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig(t *testing.T) {
	t.Run("Flags override config", func(t *testing.T) {
		// Given: a command with player flags set
		opts := &flags{}
		cmd := newCmd(opts)
		require.NoError(t, cmd.ParseFlags([]string{
			"--config", filepath.Join(t.TempDir(), "missing.yml"),
			"--player_x", "Alice",
			"-o", "Bob",
			"--log-level", "debug",
		}))

		// When: the config is built
		conf := initConfig(cmd.Flags(), opts)

		// Then: flag values win
		assert.Equal(t, "Alice", conf.Players.First)
		assert.Equal(t, "Bob", conf.Players.Second)
		assert.Equal(t, "debug", conf.LogLevel)
	})

	t.Run("Unset flags keep defaults", func(t *testing.T) {
		opts := &flags{}
		cmd := newCmd(opts)
		require.NoError(t, cmd.ParseFlags([]string{"--config", filepath.Join(t.TempDir(), "missing.yml")}))

		conf := initConfig(cmd.Flags(), opts)

		assert.Equal(t, "Player 1", conf.Players.First)
		assert.Equal(t, "info", conf.LogLevel)
	})
}

func TestInitLogger(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
	}

	for name, level := range tests {
		logger := initLogger(&config.Config{LogLevel: name})

		assert.True(t, logger.Handler().Enabled(context.Background(), level), "level %q", name)
		if level > slog.LevelDebug {
			assert.False(t, logger.Handler().Enabled(context.Background(), level-1), "level %q", name)
		}
	}
}
