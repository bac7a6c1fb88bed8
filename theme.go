package main

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
)

// Theme is the payload of a theme-change notification.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ErrThemeUnavailable is returned when the platform cannot report a theme.
var ErrThemeUnavailable = errors.New("system theme unavailable")

// ThemeWatcher is a source of native theme-change notifications.
type ThemeWatcher interface {
	// Current returns the theme the system is using right now.
	Current(ctx context.Context) (Theme, error)
	// Watch calls notify for every change until ctx is done. It calls ready
	// once the subscription is live and the baseline theme has been read;
	// any change after ready is reported.
	Watch(ctx context.Context, ready func(), notify func(Theme)) error
}

// themeFromPortal maps the xdg-desktop-portal color-scheme value.
// 0 = no preference, 1 = prefer dark, 2 = prefer light.
func themeFromPortal(v uint32) Theme {
	if v == 1 {
		return ThemeDark
	}
	return ThemeLight
}

// themeFromRegistry maps HKCU\...\Personalize\AppsUseLightTheme.
func themeFromRegistry(appsUseLightTheme uint64) Theme {
	if appsUseLightTheme == 0 {
		return ThemeDark
	}
	return ThemeLight
}

// themeFromAppleInterfaceStyle maps the output of
// `defaults read -g AppleInterfaceStyle`. The key is absent in light mode.
func themeFromAppleInterfaceStyle(out string) Theme {
	if strings.EqualFold(strings.TrimSpace(out), "dark") {
		return ThemeDark
	}
	return ThemeLight
}

// changeFilter forwards a theme only when it differs from the last one seen.
type changeFilter struct {
	mu     sync.Mutex
	last   Theme
	notify func(Theme)
}

func newChangeFilter(initial Theme, notify func(Theme)) *changeFilter {
	return &changeFilter{last: initial, notify: notify}
}

func (f *changeFilter) offer(t Theme) {
	f.mu.Lock()
	if t == f.last {
		f.mu.Unlock()
		return
	}
	f.last = t
	f.mu.Unlock()
	f.notify(t)
}

// pollWatcher samples the theme at a fixed interval.
// Used where the platform offers no change notification.
type pollWatcher struct {
	read     func(ctx context.Context) (Theme, error)
	interval time.Duration
}

func (w *pollWatcher) Current(ctx context.Context) (Theme, error) {
	return w.read(ctx)
}

func (w *pollWatcher) Watch(ctx context.Context, ready func(), notify func(Theme)) error {
	initial, err := w.read(ctx)
	if err != nil {
		Log.Warn("initial theme read failed", "error", err)
	}
	filter := newChangeFilter(initial, notify)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	ready()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			t, err := w.read(ctx)
			if err != nil {
				Log.Debug("theme poll failed", "error", err)
				continue
			}
			filter.offer(t)
		}
	}
}

// staticWatcher reports a fixed theme and never changes.
type staticWatcher struct {
	theme Theme
}

func (w staticWatcher) Current(ctx context.Context) (Theme, error) {
	return w.theme, nil
}

func (w staticWatcher) Watch(ctx context.Context, ready func(), notify func(Theme)) error {
	ready()
	<-ctx.Done()
	return nil
}
