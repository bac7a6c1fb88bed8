//go:build !linux && !windows && !darwin

package main

func newThemeWatcher() ThemeWatcher {
	return staticWatcher{theme: ThemeLight}
}
