//go:build !windows

package main

// trayIcon returns the PNG icon bytes for non-Windows systray.
func trayIcon() []byte {
	return appIconPNG
}

func subclassSystray(dblClickFn func()) {}

// isAppWindowVisible cannot be queried here, so toggling always shows the window.
func isAppWindowVisible() (visible bool, minimized bool) {
	return false, false
}
