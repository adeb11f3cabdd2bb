//go:build linux && !wayland

package platform

/*
#cgo LDFLAGS: -lX11
#include <stdlib.h>
#include <X11/Xlib.h>
#include <X11/Xatom.h>

// Returns 1 when the window manager marks the window hidden, 0 when not,
// -1 when no display connection could be opened.
int isWindowHidden(unsigned long window) {
    Display *dpy = XOpenDisplay(NULL);
    if (dpy == NULL) {
        return -1;
    }

    int hidden = 0;
    Atom state = XInternAtom(dpy, "_NET_WM_STATE", True);
    Atom hiddenAtom = XInternAtom(dpy, "_NET_WM_STATE_HIDDEN", True);
    if (state != None && hiddenAtom != None) {
        Atom type;
        int format;
        unsigned long count, after;
        unsigned char *data = NULL;

        if (XGetWindowProperty(dpy, (Window)window, state, 0, 64, False, XA_ATOM,
                &type, &format, &count, &after, &data) == Success && data != NULL) {
            Atom *atoms = (Atom *)data;
            for (unsigned long i = 0; i < count; i++) {
                if (atoms[i] == hiddenAtom) {
                    hidden = 1;
                    break;
                }
            }
            XFree(data);
        }
    }

    XCloseDisplay(dpy);
    return hidden;
}
*/
import "C"

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2/driver"
)

var errNoDisplay = errors.New("cannot open X display")

// ActivateApp is a no-op on X11; the window manager decides stacking
func ActivateApp() {}

func isMinimized(context any) (bool, error) {
	var window uintptr
	switch ctx := context.(type) {
	case driver.X11WindowContext:
		window = ctx.WindowHandle
	case *driver.X11WindowContext:
		window = ctx.WindowHandle
	default:
		return false, fmt.Errorf("%w: %T", ErrUnsupportedContext, context)
	}

	if window == 0 {
		return false, ErrNoNativeWindow
	}

	switch C.isWindowHidden(C.ulong(window)) {
	case 1:
		return true, nil
	case 0:
		return false, nil
	default:
		return false, errNoDisplay
	}
}

// Hiding withdraws the window, so the next map comes back in the normal state
func restoreWindow(any) error {
	return nil
}

func raiseWindow(any) error {
	return nil
}
