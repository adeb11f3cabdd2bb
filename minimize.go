package main

import (
	"errors"
	"time"

	"fyne.io/fyne/v2"

	"github.com/borgmon/tray-hello/pkg/controller"
	"github.com/borgmon/tray-hello/pkg/platform"
)

// minimizeSettleDelay gives the window manager time to finish iconifying
// before the native window is queried.
const minimizeSettleDelay = 150 * time.Millisecond

// watchMinimize hides the window to the tray when it gets minimized. fyne has
// no iconify event, so every loss of foreground triggers a native check.
func (th *TrayHello) watchMinimize() {
	th.app.Lifecycle().SetOnExitedForeground(func() {
		if th.controller.State() != controller.StateVisible {
			return
		}

		time.AfterFunc(minimizeSettleDelay, th.checkMinimized)
	})
}

// checkMinimized runs off the UI goroutine
func (th *TrayHello) checkMinimized() {
	minimized, err := platform.IsMinimized(th.mainWindow.window)
	if err != nil {
		if !errors.Is(err, platform.ErrNoNativeWindow) {
			th.logger.Debugw("Could not query window state", "error", err)
		}
		return
	}

	if minimized {
		fyne.Do(th.controller.Minimized)
	}
}
