package hotkeys

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.design/x/hotkey"
)

var letterKeys = map[string]hotkey.Key{
	"a": hotkey.KeyA, "b": hotkey.KeyB, "c": hotkey.KeyC, "d": hotkey.KeyD,
	"e": hotkey.KeyE, "f": hotkey.KeyF, "g": hotkey.KeyG, "h": hotkey.KeyH,
	"i": hotkey.KeyI, "j": hotkey.KeyJ, "k": hotkey.KeyK, "l": hotkey.KeyL,
	"m": hotkey.KeyM, "n": hotkey.KeyN, "o": hotkey.KeyO, "p": hotkey.KeyP,
	"q": hotkey.KeyQ, "r": hotkey.KeyR, "s": hotkey.KeyS, "t": hotkey.KeyT,
	"u": hotkey.KeyU, "v": hotkey.KeyV, "w": hotkey.KeyW, "x": hotkey.KeyX,
	"y": hotkey.KeyY, "z": hotkey.KeyZ,
}

// Binding is a parsed global shortcut such as "ctrl+shift+h"
type Binding struct {
	Text      string
	Modifiers []hotkey.Modifier
	Key       hotkey.Key
}

// Parse turns "ctrl+shift+h" into a Binding. An empty string disables the
// shortcut and yields a nil Binding.
func Parse(s string) (*Binding, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return nil, nil
	}

	b := &Binding{Text: s}
	seen := make(map[string]bool)
	var keySet bool

	for _, part := range strings.Split(s, "+") {
		part = strings.TrimSpace(part)
		if seen[part] {
			return nil, fmt.Errorf("hotkey %q: duplicate %q", s, part)
		}
		seen[part] = true

		switch part {
		case "ctrl":
			b.Modifiers = append(b.Modifiers, hotkey.ModCtrl)
		case "shift":
			b.Modifiers = append(b.Modifiers, hotkey.ModShift)
		default:
			key, ok := letterKeys[part]
			if !ok {
				return nil, fmt.Errorf("hotkey %q: unsupported key %q", s, part)
			}
			if keySet {
				return nil, fmt.Errorf("hotkey %q: more than one key", s)
			}
			b.Key = key
			keySet = true
		}
	}

	if !keySet {
		return nil, fmt.Errorf("hotkey %q: missing key", s)
	}
	if len(b.Modifiers) == 0 {
		return nil, fmt.Errorf("hotkey %q: at least one modifier is required", s)
	}

	return b, nil
}

// Listen registers the binding and calls fn on every key press until ctx is
// done. fn runs on the listener goroutine.
func Listen(ctx context.Context, b *Binding, fn func(), logger *zap.SugaredLogger) error {
	hk := hotkey.New(b.Modifiers, b.Key)
	if err := hk.Register(); err != nil {
		return fmt.Errorf("register hotkey %q: %w", b.Text, err)
	}
	defer func() {
		if err := hk.Unregister(); err != nil {
			logger.Warnw("Failed to unregister hotkey", "hotkey", b.Text, "error", err)
		}
	}()

	logger.Infow("Global hotkey registered", "hotkey", b.Text)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-hk.Keydown():
			logger.Debugw("Global hotkey pressed", "hotkey", b.Text)
			fn()
		}
	}
}
