package controller

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/borgmon/tray-hello/pkg/models"
)

const (
	WarningTitle   = "Missing information"
	WarningMessage = "Please enter both first and last name."
	GreetingTitle  = "Greeting"
)

// State is the visibility state of the main window
type State int

const (
	StateVisible State = iota
	StateHidden
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateVisible:
		return "Visible"
	case StateHidden:
		return "Hidden"
	case StateClosed:
		return "Closed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Window is the part of the native window the controller drives
type Window interface {
	// Restore brings a minimized window back to its normal size
	Restore()
	Show()
	Hide()
	RequestFocus()
	Close()
}

// Dialogs shows modal message boxes over the main window
type Dialogs interface {
	ShowWarning(title, message string)
	// ShowInformation calls onDismissed once the user closes the dialog.
	ShowInformation(title, message string, onDismissed func())
}

// Tray is the notification area icon
type Tray interface {
	Remove()
}

// StateObserver is called after every state transition
type StateObserver func(from, to State)

// Controller owns the window visibility state machine and the allowClose flag.
// All methods must be called from the UI goroutine.
type Controller struct {
	window  Window
	dialogs Dialogs
	tray    Tray
	logger  *zap.SugaredLogger

	state      State
	allowClose bool
	observers  []StateObserver
	onGreeting []func(models.Greeting)
}

// New creates a controller for a window that is already on screen
func New(window Window, dialogs Dialogs, tray Tray, logger *zap.SugaredLogger) *Controller {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &Controller{
		window:  window,
		dialogs: dialogs,
		tray:    tray,
		logger:  logger,
		state:   StateVisible,
	}
}

// OnStateChange registers a callback for state transitions
func (c *Controller) OnStateChange(fn StateObserver) {
	c.observers = append(c.observers, fn)
}

// OnGreeting registers a callback invoked when a greeting dialog is shown
func (c *Controller) OnGreeting(fn func(models.Greeting)) {
	c.onGreeting = append(c.onGreeting, fn)
}

// State returns the current visibility state
func (c *Controller) State() State { return c.state }

// AllowClose reports whether a close request will be honoured
func (c *Controller) AllowClose() bool { return c.allowClose }

// Submit validates the names and either warns or greets and hides the window
func (c *Controller) Submit(first, last string) {
	if c.state == StateClosed {
		return
	}

	submitID := uuid.NewString()

	greeting, err := models.NewGreeting(first, last)
	if err != nil {
		c.logger.Infow("Submit rejected", "submit_id", submitID, "error", err)
		c.dialogs.ShowWarning(WarningTitle, WarningMessage)
		return
	}

	c.logger.Infow("Showing greeting", "submit_id", submitID)
	for _, fn := range c.onGreeting {
		fn(greeting)
	}

	c.dialogs.ShowInformation(GreetingTitle, greeting.Message(), func() {
		c.logger.Debugw("Greeting dismissed", "submit_id", submitID)
		c.Hide()
	})
}

// Minimized handles the window becoming minimized
func (c *Controller) Minimized() {
	c.logger.Debug("Window minimized")
	c.Hide()
}

// CloseRequested handles a close request from the window manager.
// It returns true if the close should proceed.
func (c *Controller) CloseRequested() bool {
	if c.allowClose {
		return true
	}

	c.logger.Debug("Close request redirected to tray")
	c.Hide()
	return false
}

// Hide sends the window to the tray
func (c *Controller) Hide() {
	if c.state != StateVisible {
		return
	}

	c.window.Hide()
	c.transition(StateHidden)
}

// Open restores the window from the tray, raises it and gives it focus
func (c *Controller) Open() {
	if c.state == StateClosed {
		return
	}

	c.window.Restore()
	c.window.Show()
	c.window.RequestFocus()
	c.transition(StateVisible)
}

// Exit removes the tray icon and closes the window for good
func (c *Controller) Exit() {
	if c.state == StateClosed {
		return
	}

	c.logger.Info("Exit requested from tray")
	c.allowClose = true
	c.tray.Remove()
	c.window.Close()
	c.transition(StateClosed)
}

func (c *Controller) transition(to State) {
	from := c.state
	if from == to {
		return
	}

	c.state = to
	c.logger.Debugw("Window state changed", "from", from, "to", to)
	for _, fn := range c.observers {
		fn(from, to)
	}
}
