package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/borgmon/tray-hello/pkg/platform"
)

const windowTitle = "Hello Tray App"

var windowSize = fyne.NewSize(360, 180)

// MainWindow is the name form shown on start and restored from the tray
type MainWindow struct {
	window fyne.Window

	firstNameEntry *widget.Entry
	lastNameEntry  *widget.Entry
	greetButton    *widget.Button

	onSubmit func(first, last string)
}

func NewMainWindow(app fyne.App, onSubmit func(first, last string)) *MainWindow {
	mw := &MainWindow{onSubmit: onSubmit}

	mw.window = app.NewWindow(windowTitle)
	mw.buildUI()

	return mw
}

func (mw *MainWindow) buildUI() {
	mw.firstNameEntry = widget.NewEntry()
	mw.lastNameEntry = widget.NewEntry()
	mw.lastNameEntry.OnSubmitted = func(string) {
		mw.submit()
	}

	mw.greetButton = widget.NewButton("Say hello", mw.submit)
	mw.greetButton.Importance = widget.HighImportance

	form := container.New(layout.NewFormLayout(),
		widget.NewLabel("First name:"),
		mw.firstNameEntry,
		widget.NewLabel("Last name:"),
		mw.lastNameEntry,
		layout.NewSpacer(),
		container.NewHBox(mw.greetButton),
	)

	mw.window.SetContent(container.NewPadded(form))
	mw.window.Resize(windowSize)
	mw.window.SetFixedSize(true)
	mw.window.CenterOnScreen()
}

func (mw *MainWindow) submit() {
	if mw.onSubmit != nil {
		mw.onSubmit(mw.firstNameEntry.Text, mw.lastNameEntry.Text)
	}
}

func (mw *MainWindow) Show() {
	mw.window.Show()
	mw.window.Canvas().Focus(mw.firstNameEntry)
}

// windowAdapter lets the controller drive the fyne window
type windowAdapter struct {
	window fyne.Window
	app    fyne.App
	logger *zap.SugaredLogger
}

func (wa *windowAdapter) Restore() {
	if err := platform.RestoreWindow(wa.window); err != nil {
		wa.logger.Debugw("Could not restore window", "error", err)
	}
}

func (wa *windowAdapter) Show() {
	wa.window.Show()
}

func (wa *windowAdapter) Hide() {
	wa.window.Hide()
}

func (wa *windowAdapter) RequestFocus() {
	wa.window.RequestFocus()
	if err := platform.RaiseWindow(wa.window); err != nil {
		wa.logger.Debugw("Could not raise window", "error", err)
	}
}

// Close closes the window and stops the app; with a tray menu set, fyne would
// otherwise keep running after the last window is gone.
func (wa *windowAdapter) Close() {
	wa.window.Close()
	wa.app.Quit()
}
