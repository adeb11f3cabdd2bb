//go:build !darwin && !windows && !(linux && !wayland)

package platform

// ActivateApp is a no-op outside macOS, Windows and X11
func ActivateApp() {}

// Wayland does not let a client ask whether its surface is minimized, so
// minimize is never reported there.
func isMinimized(any) (bool, error) {
	return false, nil
}

func restoreWindow(any) error {
	return nil
}

func raiseWindow(any) error {
	return nil
}
