package main

import (
	"context"
	"fmt"
	"os"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/borgmon/tray-hello/pkg/audio"
	"github.com/borgmon/tray-hello/pkg/controller"
	"github.com/borgmon/tray-hello/pkg/models"
)

const appID = "io.github.borgmon.tray-hello"

type TrayHello struct {
	app        fyne.App
	settings   *Settings
	logger     *zap.SugaredLogger
	mainWindow *MainWindow
	controller *controller.Controller
	tray       *trayAdapter
	chime      []byte
	cancel     context.CancelFunc

	chimeMu      sync.Mutex
	chimePlaying stopper
	chimeStopped bool
}

type stopper interface {
	Stop()
}

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func NewTrayHello(settings *Settings, logger *zap.SugaredLogger) *TrayHello {
	return &TrayHello{
		app:      app.NewWithID(appID),
		settings: settings,
		logger:   logger,
	}
}

func (th *TrayHello) initialize() {
	th.app.SetIcon(trayIconResource)

	th.mainWindow = NewMainWindow(th.app, func(first, last string) {
		th.controller.Submit(first, last)
	})

	th.tray = &trayAdapter{logger: th.logger}
	th.controller = controller.New(
		&windowAdapter{window: th.mainWindow.window, app: th.app, logger: th.logger},
		&dialogAdapter{parent: th.mainWindow.window},
		th.tray,
		th.logger,
	)

	hintShown := false
	th.controller.OnStateChange(func(from, to controller.State) {
		switch {
		case to == controller.StateHidden && !hintShown:
			hintShown = true
			th.logger.Info("Window hidden; Tray Hello keeps running in the system tray")
		case to == controller.StateClosed:
			th.stopChime()
		}
	})

	if th.settings.Chime {
		th.chime = audio.Chime()
		th.controller.OnGreeting(th.playChime)
	}

	// Close requests from the window manager go through the controller
	th.mainWindow.window.SetCloseIntercept(func() {
		if th.controller.CloseRequested() {
			th.mainWindow.window.Close()
		}
	})

	th.setupSystemTray()
	th.watchMinimize()

	if th.settings.Hidden {
		th.controller.Hide()
	} else {
		th.mainWindow.Show()
	}
}

func (th *TrayHello) run(ctx context.Context) {
	ctx, th.cancel = context.WithCancel(ctx)

	th.app.Lifecycle().SetOnStarted(func() {
		th.startHotkey(ctx)
	})
	th.app.Lifecycle().SetOnStopped(func() {
		th.cancel()
		th.stopChime()
		th.logger.Info("Tray Hello stopped")
	})

	th.app.Run()
}

func (th *TrayHello) playChime(models.Greeting) {
	go func() {
		player, err := audio.Play(th.chime, audio.ChimeFormat, th.logger)
		if err != nil {
			th.logger.Warnw("Failed to play chime", "error", err)
			return
		}
		th.trackChime(player)
	}()
}

// trackChime keeps the latest chime so it can be cut short on exit.
// A new chime replaces one still playing.
func (th *TrayHello) trackChime(p stopper) {
	th.chimeMu.Lock()
	defer th.chimeMu.Unlock()

	if th.chimeStopped {
		p.Stop()
		return
	}
	if th.chimePlaying != nil {
		th.chimePlaying.Stop()
	}
	th.chimePlaying = p
}

func (th *TrayHello) stopChime() {
	th.chimeMu.Lock()
	defer th.chimeMu.Unlock()

	th.chimeStopped = true
	if th.chimePlaying != nil {
		th.chimePlaying.Stop()
		th.chimePlaying = nil
	}
}
