//go:build windows

package platform

import (
	"fmt"

	"fyne.io/fyne/v2/driver"
	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procIsIconic            = user32.NewProc("IsIconic")
	procShowWindow          = user32.NewProc("ShowWindow")
	procSetForegroundWindow = user32.NewProc("SetForegroundWindow")
)

// ActivateApp is a no-op on Windows; RaiseWindow does the work per window
func ActivateApp() {}

func isMinimized(context any) (bool, error) {
	hwnd, err := windowHandle(context)
	if err != nil {
		return false, err
	}

	r, _, _ := procIsIconic.Call(hwnd)
	return r != 0, nil
}

func restoreWindow(context any) error {
	hwnd, err := windowHandle(context)
	if err != nil {
		return err
	}

	if r, _, _ := procIsIconic.Call(hwnd); r == 0 {
		return nil
	}

	// The return value is the previous visibility, not an error
	procShowWindow.Call(hwnd, uintptr(windows.SW_RESTORE))
	return nil
}

func raiseWindow(context any) error {
	hwnd, err := windowHandle(context)
	if err != nil {
		return err
	}

	if r, _, callErr := procSetForegroundWindow.Call(hwnd); r == 0 {
		return fmt.Errorf("SetForegroundWindow: %w", callErr)
	}
	return nil
}

func windowHandle(context any) (uintptr, error) {
	var hwnd uintptr
	switch ctx := context.(type) {
	case driver.WindowsWindowContext:
		hwnd = ctx.HWND
	case *driver.WindowsWindowContext:
		hwnd = ctx.HWND
	default:
		return 0, fmt.Errorf("%w: %T", ErrUnsupportedContext, context)
	}

	if hwnd == 0 {
		return 0, ErrNoNativeWindow
	}
	return hwnd, nil
}
