//go:build windows

package main

import (
	"context"
	"fmt"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

const personalizeKey = `Software\Microsoft\Windows\CurrentVersion\Themes\Personalize`

// registryWatcher follows AppsUseLightTheme with RegNotifyChangeKeyValue.
type registryWatcher struct{}

func newThemeWatcher() ThemeWatcher {
	return registryWatcher{}
}

func (registryWatcher) Current(ctx context.Context) (Theme, error) {
	k, err := registry.OpenKey(registry.CURRENT_USER, personalizeKey, registry.QUERY_VALUE)
	if err != nil {
		return ThemeLight, fmt.Errorf("%w: %v", ErrThemeUnavailable, err)
	}
	defer k.Close()
	return readRegistryTheme(k)
}

func (registryWatcher) Watch(ctx context.Context, ready func(), notify func(Theme)) error {
	k, err := registry.OpenKey(registry.CURRENT_USER, personalizeKey, registry.QUERY_VALUE|registry.NOTIFY)
	if err != nil {
		return fmt.Errorf("open personalize key: %w", err)
	}
	defer k.Close()

	event, err := windows.CreateEvent(nil, 0, 0, nil)
	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	defer windows.CloseHandle(event)

	arm := func() error {
		return windows.RegNotifyChangeKeyValue(windows.Handle(k), false, windows.REG_NOTIFY_CHANGE_LAST_SET, event, true)
	}
	// Arm before reading the baseline so no change falls in between.
	if err := arm(); err != nil {
		return fmt.Errorf("watch personalize key: %w", err)
	}

	initial, err := readRegistryTheme(k)
	if err != nil {
		Log.Warn("registry theme read failed", "error", err)
	}
	filter := newChangeFilter(initial, notify)
	ready()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		s, err := windows.WaitForSingleObject(event, 500)
		if err != nil {
			return fmt.Errorf("wait for registry change: %w", err)
		}
		if s == uint32(windows.WAIT_TIMEOUT) {
			continue
		}

		if t, err := readRegistryTheme(k); err == nil {
			filter.offer(t)
		} else {
			Log.Debug("registry theme read failed", "error", err)
		}
		if err := arm(); err != nil {
			return fmt.Errorf("re-arm registry watch: %w", err)
		}
	}
}

func readRegistryTheme(k registry.Key) (Theme, error) {
	v, _, err := k.GetIntegerValue("AppsUseLightTheme")
	if err != nil {
		return ThemeLight, fmt.Errorf("%w: %v", ErrThemeUnavailable, err)
	}
	return themeFromRegistry(v), nil
}
