package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/systray"
	"go.uber.org/zap"
)

func (th *TrayHello) setupSystemTray() {
	if desk, ok := th.app.(desktop.App); ok {
		desk.SetSystemTrayMenu(th.buildTrayMenu())
		desk.SetSystemTrayIcon(trayIconResource)

		// fyne only exposes the menu; a click on the icon itself opens the
		// window and the menu moves to the secondary button.
		systray.SetOnTapped(th.trayTapped)
		th.tray.remove = removeSystrayIcon
		return
	}

	th.logger.Warn("System tray not supported by this driver")
}

func (th *TrayHello) buildTrayMenu() *fyne.Menu {
	openItem := fyne.NewMenuItem("Open", func() {
		th.controller.Open()
	})

	exitItem := fyne.NewMenuItem("Exit", func() {
		th.controller.Exit()
	})
	// Marked as the quit item so fyne does not append its own "Quit"
	exitItem.IsQuit = true

	return fyne.NewMenu(windowTitle, openItem, exitItem)
}

// trayTapped runs on the systray event loop
func (th *TrayHello) trayTapped() {
	fyne.Do(th.controller.Open)
}

func removeSystrayIcon() {
	systray.SetOnTapped(nil)
	systray.Quit()
}

// trayAdapter is the controller's view of the tray icon
type trayAdapter struct {
	logger  *zap.SugaredLogger
	remove  func()
	removed bool
}

func (t *trayAdapter) Remove() {
	if t.removed {
		return
	}
	t.removed = true

	if t.remove == nil {
		return
	}
	t.logger.Debug("Removing tray icon")
	t.remove()
}
