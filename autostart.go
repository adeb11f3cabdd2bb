package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/emersion/go-autostart"
)

func autostartApp() (*autostart.App, error) {
	// Get the executable path
	execPath, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("locate executable: %w", err)
	}

	// Resolve symlinks if any
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, fmt.Errorf("resolve executable: %w", err)
	}

	return &autostart.App{
		Name:        "tray-hello",
		DisplayName: "Tray Hello",
		Exec:        []string{execPath, "--hidden"},
	}, nil
}

func setupAutostart(enable bool, out io.Writer) error {
	app, err := autostartApp()
	if err != nil {
		return err
	}

	if enable {
		if !app.IsEnabled() {
			if err := app.Enable(); err != nil {
				return fmt.Errorf("enable autostart: %w", err)
			}
		}
		fmt.Fprintln(out, "Autostart enabled")
	} else {
		if app.IsEnabled() {
			if err := app.Disable(); err != nil {
				return fmt.Errorf("disable autostart: %w", err)
			}
		}
		fmt.Fprintln(out, "Autostart disabled")
	}

	return nil
}
