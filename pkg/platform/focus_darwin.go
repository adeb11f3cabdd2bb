//go:build darwin

package platform

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Cocoa -framework AppKit
#import <Cocoa/Cocoa.h>
#import <AppKit/AppKit.h>

void activateApp() {
    [NSApp activateIgnoringOtherApps:YES];
}

int isWindowMiniaturized(uintptr_t window) {
    return [(NSWindow *)window isMiniaturized] ? 1 : 0;
}

void deminiaturizeWindow(uintptr_t window) {
    NSWindow *w = (NSWindow *)window;
    if ([w isMiniaturized]) {
        [w deminiaturize:nil];
    }
}

void raiseWindow(uintptr_t window) {
    [(NSWindow *)window makeKeyAndOrderFront:nil];
}
*/
import "C"

import (
	"fmt"

	"fyne.io/fyne/v2/driver"
)

// ActivateApp brings the application in front of other applications
func ActivateApp() {
	C.activateApp()
}

func isMinimized(context any) (bool, error) {
	nsWindow, err := windowHandle(context)
	if err != nil {
		return false, err
	}
	return C.isWindowMiniaturized(nsWindow) == 1, nil
}

// AppKit calls below must run on the main thread, which is where fyne runs
// the controller.
func restoreWindow(context any) error {
	nsWindow, err := windowHandle(context)
	if err != nil {
		return err
	}
	C.deminiaturizeWindow(nsWindow)
	return nil
}

func raiseWindow(context any) error {
	nsWindow, err := windowHandle(context)
	if err != nil {
		return err
	}
	C.raiseWindow(nsWindow)
	return nil
}

func windowHandle(context any) (C.uintptr_t, error) {
	var nsWindow uintptr
	switch ctx := context.(type) {
	case driver.MacWindowContext:
		nsWindow = ctx.NSWindow
	case *driver.MacWindowContext:
		nsWindow = ctx.NSWindow
	default:
		return 0, fmt.Errorf("%w: %T", ErrUnsupportedContext, context)
	}

	if nsWindow == 0 {
		return 0, ErrNoNativeWindow
	}
	return C.uintptr_t(nsWindow), nil
}
