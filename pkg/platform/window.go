package platform

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"
)

var (
	// ErrNoNativeWindow is returned for windows without a native handle, e.g. the test driver
	ErrNoNativeWindow = errors.New("window has no native handle")
	// ErrUnsupportedContext is returned when the driver hands over an unexpected native context
	ErrUnsupportedContext = errors.New("unsupported native window context")
)

// IsMinimized reports whether the native window behind w is minimized.
// It must not be called from the fyne UI goroutine.
func IsMinimized(w fyne.Window) (bool, error) {
	nw, ok := w.(driver.NativeWindow)
	if !ok {
		return false, ErrNoNativeWindow
	}

	var (
		minimized bool
		err       error
	)
	nw.RunNative(func(context any) {
		minimized, err = isMinimized(context)
	})
	return minimized, err
}

// RestoreWindow brings w back from the minimized state.
// A window that is not minimized is left alone.
func RestoreWindow(w fyne.Window) error {
	nw, ok := w.(driver.NativeWindow)
	if !ok {
		return ErrNoNativeWindow
	}

	var err error
	nw.RunNative(func(context any) {
		err = restoreWindow(context)
	})
	return err
}

// RaiseWindow puts w above other windows and activates the application
func RaiseWindow(w fyne.Window) error {
	ActivateApp()

	nw, ok := w.(driver.NativeWindow)
	if !ok {
		return ErrNoNativeWindow
	}

	var err error
	nw.RunNative(func(context any) {
		err = raiseWindow(context)
	})
	return err
}
