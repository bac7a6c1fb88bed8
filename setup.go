package main

import (
	"context"
	"fmt"
)

// setup runs once after the runtime has created the main window. It
// subscribes the theme relay for the rest of the process lifetime and
// returns only after the subscription is live. Calls after the first are
// no-ops.
func (a *DesktopApp) setup(ctx context.Context) error {
	var err error
	ran := false
	a.setupOnce.Do(func() {
		ran = true
		err = a.runSetup(ctx)
	})
	if !ran {
		Log.Debug("setup already ran, skipping")
	}
	return err
}

func (a *DesktopApp) runSetup(ctx context.Context) error {
	win, err := a.lookupWindow(ctx)
	if err != nil {
		return fmt.Errorf("setup: %w", err)
	}

	observers := []func(Theme){a.recordTheme}
	for _, c := range a.caps {
		if o, ok := c.(themeObserver); ok {
			observers = append(observers, o.OnTheme)
		}
	}

	watchCtx, cancel := context.WithCancel(ctx)
	relay := NewThemeRelay(win, observers...)

	a.mu.Lock()
	a.window = win
	a.relay = relay
	a.stopWatch = cancel
	a.mu.Unlock()

	if _, err := relay.Attach(watchCtx, a.watcher); err != nil {
		cancel()
		return fmt.Errorf("setup: %w", err)
	}
	Log.Info("theme relay attached", "native", NativeThemeChanged, "event", EventThemeChanged)
	return nil
}
