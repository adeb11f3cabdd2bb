package main

import (
	"context"

	"fyne.io/fyne/v2"

	"github.com/borgmon/tray-hello/pkg/hotkeys"
)

// startHotkey binds the global shortcut to the tray "Open" action
func (th *TrayHello) startHotkey(ctx context.Context) {
	binding := th.settings.Hotkey
	if binding == nil {
		return
	}

	go func() {
		err := hotkeys.Listen(ctx, binding, func() {
			fyne.Do(th.controller.Open)
		}, th.logger)
		if err != nil {
			th.logger.Warnw("Global hotkey unavailable", "error", err)
		}
	}()
}
