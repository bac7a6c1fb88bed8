//go:build darwin

package main

import (
	"context"
	"errors"
	"os/exec"
	"time"
)

func newThemeWatcher() ThemeWatcher {
	return &pollWatcher{read: readAppleInterfaceStyle, interval: 2 * time.Second}
}

func readAppleInterfaceStyle(ctx context.Context) (Theme, error) {
	out, err := exec.CommandContext(ctx, "defaults", "read", "-g", "AppleInterfaceStyle").Output()
	if err != nil {
		// The key does not exist in light mode; defaults exits 1.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return ThemeLight, nil
		}
		return ThemeLight, err
	}
	return themeFromAppleInterfaceStyle(string(out)), nil
}
