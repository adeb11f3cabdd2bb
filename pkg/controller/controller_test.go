package controller

import (
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/borgmon/tray-hello/pkg/models"
)

type fakeWindow struct {
	visible   bool
	focused   bool
	closed    bool
	minimized bool
	calls     []string
}

func (w *fakeWindow) Restore() {
	w.minimized = false
	w.calls = append(w.calls, "restore")
}

func (w *fakeWindow) Show() {
	w.visible = true
	w.calls = append(w.calls, "show")
}

func (w *fakeWindow) Hide() {
	w.visible = false
	w.focused = false
	w.calls = append(w.calls, "hide")
}

func (w *fakeWindow) RequestFocus() {
	w.focused = true
	w.calls = append(w.calls, "focus")
}

func (w *fakeWindow) Close() {
	w.visible = false
	w.closed = true
	w.calls = append(w.calls, "close")
}

type shownDialog struct {
	kind    string
	title   string
	message string
}

// fakeDialogs dismisses information dialogs immediately unless hold is set
type fakeDialogs struct {
	shown   []shownDialog
	hold    bool
	pending []func()
}

func (d *fakeDialogs) ShowWarning(title, message string) {
	d.shown = append(d.shown, shownDialog{kind: "warning", title: title, message: message})
}

func (d *fakeDialogs) ShowInformation(title, message string, onDismissed func()) {
	d.shown = append(d.shown, shownDialog{kind: "info", title: title, message: message})
	if d.hold {
		d.pending = append(d.pending, onDismissed)
		return
	}
	onDismissed()
}

type fakeTray struct {
	removed   bool
	removedAt int
	window    *fakeWindow
}

func (t *fakeTray) Remove() {
	t.removed = true
	if t.window != nil {
		t.removedAt = len(t.window.calls)
	}
}

func newTestController(t *testing.T) (*Controller, *fakeWindow, *fakeDialogs, *fakeTray) {
	t.Helper()
	w := &fakeWindow{visible: true}
	d := &fakeDialogs{}
	tr := &fakeTray{window: w}
	return New(w, d, tr, zaptest.NewLogger(t).Sugar()), w, d, tr
}

func TestSubmitMissingNameWarns(t *testing.T) {
	inputs := [][2]string{
		{"", ""},
		{"Ada", ""},
		{"", "Lovelace"},
		{"   ", "Lovelace"},
		{"Ada", "\t \n"},
	}

	for _, in := range inputs {
		c, w, d, _ := newTestController(t)

		c.Submit(in[0], in[1])

		if len(d.shown) != 1 {
			t.Fatalf("%q: expected exactly one dialog, got %d", in, len(d.shown))
		}
		got := d.shown[0]
		if got.kind != "warning" || got.title != WarningTitle || got.message != WarningMessage {
			t.Errorf("%q: unexpected dialog %+v", in, got)
		}
		if c.State() != StateVisible || !w.visible {
			t.Errorf("%q: window should stay visible, state=%s visible=%v", in, c.State(), w.visible)
		}
	}
}

func TestSubmitGreetsAndHides(t *testing.T) {
	c, w, d, _ := newTestController(t)

	c.Submit("  Ada ", "Lovelace")

	if len(d.shown) != 1 {
		t.Fatalf("expected one dialog, got %d", len(d.shown))
	}
	got := d.shown[0]
	if got.kind != "info" || got.title != GreetingTitle {
		t.Errorf("unexpected dialog %+v", got)
	}
	if got.message != "Hello, Ada Lovelace!" {
		t.Errorf("unexpected message %q", got.message)
	}
	if c.State() != StateHidden || w.visible {
		t.Errorf("expected hidden window, state=%s visible=%v", c.State(), w.visible)
	}
	if w.closed {
		t.Error("submit must hide, not close")
	}
}

func TestSubmitHidesOnlyAfterDismiss(t *testing.T) {
	c, w, d, _ := newTestController(t)
	d.hold = true

	c.Submit("Ada", "Lovelace")

	if c.State() != StateVisible || !w.visible {
		t.Fatalf("window hid before the dialog was dismissed")
	}

	d.pending[0]()

	if c.State() != StateHidden {
		t.Errorf("expected Hidden after dismiss, got %s", c.State())
	}
}

func TestSubmitNotifiesGreetingObservers(t *testing.T) {
	c, _, _, _ := newTestController(t)

	var got []models.Greeting
	c.OnGreeting(func(g models.Greeting) { got = append(got, g) })

	c.Submit("", "Lovelace")
	c.Submit("Ada", "Lovelace")

	if len(got) != 1 || got[0] != (models.Greeting{First: "Ada", Last: "Lovelace"}) {
		t.Errorf("unexpected greetings %+v", got)
	}
}

func TestMinimizeHides(t *testing.T) {
	c, w, _, _ := newTestController(t)

	c.Minimized()

	if c.State() != StateHidden || w.visible {
		t.Errorf("expected hidden, state=%s visible=%v", c.State(), w.visible)
	}

	// Minimizing again while hidden changes nothing.
	c.Minimized()
	if n := len(w.calls); n != 1 {
		t.Errorf("expected a single hide call, got %v", w.calls)
	}
}

func TestCloseRequestWhileDisallowedHides(t *testing.T) {
	c, w, _, _ := newTestController(t)

	if c.CloseRequested() {
		t.Fatal("close should be cancelled")
	}
	if c.State() != StateHidden || w.closed {
		t.Errorf("expected Hidden and not closed, state=%s closed=%v", c.State(), w.closed)
	}

	// A second request from the hidden state is still cancelled.
	if c.CloseRequested() {
		t.Fatal("close should be cancelled while hidden")
	}
	if c.State() != StateHidden {
		t.Errorf("expected Hidden, got %s", c.State())
	}
}

func TestOpenRestoresWithFocus(t *testing.T) {
	c, w, _, _ := newTestController(t)
	w.minimized = true
	c.Minimized()
	w.calls = nil

	c.Open()

	if c.State() != StateVisible || !w.visible || !w.focused || w.minimized {
		t.Errorf("expected restored, visible and focused, state=%s visible=%v focused=%v minimized=%v",
			c.State(), w.visible, w.focused, w.minimized)
	}

	want := []string{"restore", "show", "focus"}
	if len(w.calls) != len(want) {
		t.Fatalf("got calls %v, want %v", w.calls, want)
	}
	for i := range want {
		if w.calls[i] != want[i] {
			t.Fatalf("got calls %v, want %v", w.calls, want)
		}
	}
}

func TestOpenWhileVisibleRefocuses(t *testing.T) {
	c, w, _, _ := newTestController(t)

	var transitions int
	c.OnStateChange(func(from, to State) { transitions++ })

	c.Open()

	if !w.focused {
		t.Error("expected focus")
	}
	if transitions != 0 {
		t.Errorf("expected no transition, got %d", transitions)
	}
}

func TestExitFromAnyState(t *testing.T) {
	prepare := map[string]func(c *Controller){
		"visible": func(c *Controller) {},
		"hidden":  func(c *Controller) { c.Minimized() },
		"reopened": func(c *Controller) {
			c.CloseRequested()
			c.Open()
		},
	}

	for name, prep := range prepare {
		t.Run(name, func(t *testing.T) {
			c, w, _, tr := newTestController(t)
			prep(c)

			c.Exit()

			if c.State() != StateClosed {
				t.Errorf("expected Closed, got %s", c.State())
			}
			if !tr.removed {
				t.Error("tray icon not removed")
			}
			if !w.closed {
				t.Error("window not closed")
			}
			if !c.AllowClose() {
				t.Error("allowClose should be set")
			}
		})
	}
}

func TestExitRemovesTrayBeforeClosing(t *testing.T) {
	c, w, _, tr := newTestController(t)
	c.Minimized()

	c.Exit()

	if tr.removedAt != len(w.calls)-1 || w.calls[len(w.calls)-1] != "close" {
		t.Errorf("tray must be removed right before close, calls=%v removedAt=%d", w.calls, tr.removedAt)
	}
}

func TestClosedIsTerminal(t *testing.T) {
	c, w, d, _ := newTestController(t)
	c.Exit()
	calls := len(w.calls)

	c.Open()
	c.Minimized()
	c.Submit("Ada", "Lovelace")
	c.Exit()

	if c.State() != StateClosed {
		t.Errorf("expected Closed, got %s", c.State())
	}
	if len(w.calls) != calls {
		t.Errorf("window touched after close: %v", w.calls[calls:])
	}
	if len(d.shown) != 0 {
		t.Errorf("dialog shown after close: %+v", d.shown)
	}
	if !c.CloseRequested() {
		t.Error("close must proceed once allowed")
	}
}

func TestDismissAfterExitKeepsClosed(t *testing.T) {
	c, _, d, _ := newTestController(t)
	d.hold = true

	c.Submit("Ada", "Lovelace")
	c.Exit()
	d.pending[0]()

	if c.State() != StateClosed {
		t.Errorf("expected Closed, got %s", c.State())
	}
}

func TestStateObservers(t *testing.T) {
	c, _, _, _ := newTestController(t)

	type change struct{ from, to State }
	var got []change
	c.OnStateChange(func(from, to State) { got = append(got, change{from, to}) })

	c.Minimized()
	c.Open()
	c.CloseRequested()
	c.Exit()

	want := []change{
		{StateVisible, StateHidden},
		{StateHidden, StateVisible},
		{StateVisible, StateHidden},
		{StateHidden, StateClosed},
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("transition %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestStateString(t *testing.T) {
	if StateHidden.String() != "Hidden" || State(42).String() != "State(42)" {
		t.Errorf("unexpected names %q %q", StateHidden, State(42))
	}
}
