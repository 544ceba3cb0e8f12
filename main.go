package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	app "github.com/rocketscienceinc/tictactoe-hotseat/internal"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const releaseVersion = "0.1.0"

type flags struct {
	configPath string
	logLevel   string
	playerX    string
	playerO    string
}

// main - is the entry point of the application. It parses flags, loads the configuration and runs the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	cobra.CheckErr(newCmd(&flags{}).ExecuteContext(context.Background()))
}

func newCmd(opts *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tictactoe",
		Short:         "Two-player tic-tac-toe for a shared terminal.",
		Args:          cobra.NoArgs,
		Version:       releaseVersion,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf := initConfig(cmd.Flags(), opts)
			logger := initLogger(conf)

			if err := app.RunApp(cmd.Context(), logger, conf, os.Stdin, os.Stdout); err != nil {
				return fmt.Errorf("app run failed: %w", err)
			}

			return nil
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&opts.configPath, "config", "c", "./config.yml", "path to the config file")
	fs.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (env: TICTACTOE_LOG_LEVEL)")
	fs.StringVarP(&opts.playerX, "player-x", "x", "", "name of the player who moves first (env: TICTACTOE_PLAYER_FIRST)")
	fs.StringVarP(&opts.playerO, "player-o", "o", "", "name of the second player (env: TICTACTOE_PLAYER_SECOND)")

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetVersionTemplate("tictactoe v{{.Version}}\n")

	return cmd
}

// initialize config, explicit flags win over file and environment.
func initConfig(fs *pflag.FlagSet, opts *flags) *config.Config {
	conf := config.MustLoad(opts.configPath)

	if fs.Changed("log-level") {
		conf.LogLevel = opts.logLevel
	}

	if fs.Changed("player-x") {
		conf.Players.First = opts.playerX
	}

	if fs.Changed("player-o") {
		conf.Players.Second = opts.playerO
	}

	return conf
}

// initialize logger. Logs go to stderr, the game owns stdout.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
