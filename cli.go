package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/borgmon/tray-hello/pkg/hotkeys"
	"github.com/borgmon/tray-hello/pkg/logging"
)

// Version information, set at build time
var (
	version = "dev"
	commit  = "none"
)

const envPrefix = "TRAY_HELLO_"

// Settings holds everything the GUI needs from the command line
type Settings struct {
	Hidden    bool
	Debug     bool
	Chime     bool
	LogFormat string
	Hotkey    *hotkeys.Binding
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:    "tray-hello",
		Usage:   "Say hello, then hide in the system tray",
		Version: fmt.Sprintf("%s (commit: %s)", version, commit),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "hidden",
				Usage:   "Start hidden in the system tray",
				Sources: cli.EnvVars(envPrefix + "HIDDEN"),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "Enable debug logging",
				Sources: cli.EnvVars(envPrefix + "DEBUG"),
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "Log format: console or json",
				Value:   "console",
				Sources: cli.EnvVars(envPrefix + "LOG_FORMAT"),
			},
			&cli.StringFlag{
				Name:    "hotkey",
				Usage:   "Global shortcut that opens the window, empty to disable",
				Value:   "ctrl+shift+h",
				Sources: cli.EnvVars(envPrefix + "HOTKEY"),
			},
			&cli.BoolFlag{
				Name:    "chime",
				Usage:   "Play a chime when greeting",
				Sources: cli.EnvVars(envPrefix + "CHIME"),
			},
		},
		Commands: []*cli.Command{
			autostartCommand(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			settings, err := settingsFromCommand(cmd)
			if err != nil {
				return err
			}

			logger, err := logging.New(logging.Options{
				Debug:  settings.Debug,
				Format: settings.LogFormat,
			})
			if err != nil {
				return err
			}
			defer logger.Sync()

			logger.Infow("Starting Tray Hello", "version", version, "commit", commit)

			th := NewTrayHello(settings, logger)
			th.initialize()
			th.run(ctx)
			return nil
		},
	}
}

func settingsFromCommand(cmd *cli.Command) (*Settings, error) {
	binding, err := hotkeys.Parse(cmd.String("hotkey"))
	if err != nil {
		return nil, err
	}

	return &Settings{
		Hidden:    cmd.Bool("hidden"),
		Debug:     cmd.Bool("debug"),
		Chime:     cmd.Bool("chime"),
		LogFormat: cmd.String("log-format"),
		Hotkey:    binding,
	}, nil
}

func autostartCommand() *cli.Command {
	return &cli.Command{
		Name:  "autostart",
		Usage: "Manage launching at login",
		Commands: []*cli.Command{
			{
				Name:  "enable",
				Usage: "Launch Tray Hello hidden at login",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return setupAutostart(true, cmd.Root().Writer)
				},
			},
			{
				Name:  "disable",
				Usage: "Stop launching Tray Hello at login",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return setupAutostart(false, cmd.Root().Writer)
				},
			},
			{
				Name:  "status",
				Usage: "Print whether Tray Hello launches at login",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					app, err := autostartApp()
					if err != nil {
						return err
					}
					state := "disabled"
					if app.IsEnabled() {
						state = "enabled"
					}
					_, err = fmt.Fprintf(cmd.Root().Writer, "autostart %s\n", state)
					return err
				},
			},
		},
	}
}
