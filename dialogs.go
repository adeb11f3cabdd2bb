package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// dialogAdapter shows the controller's message boxes over the main window
type dialogAdapter struct {
	parent fyne.Window
}

func (d *dialogAdapter) ShowWarning(title, message string) {
	content := container.NewHBox(
		widget.NewIcon(theme.WarningIcon()),
		widget.NewLabel(message),
	)

	dialog.NewCustom(title, "OK", content, d.parent).Show()
}

func (d *dialogAdapter) ShowInformation(title, message string, onDismissed func()) {
	dlg := dialog.NewInformation(title, message, d.parent)
	dlg.SetOnClosed(onDismissed)
	dlg.Show()
}
