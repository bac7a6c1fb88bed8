package main

import (
	"context"
	"errors"
	"fmt"

	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"
)

// ErrMainWindowNotFound is returned when the startup context carries no window.
var ErrMainWindowNotFound = errors.New("main window not found")

// Window is the handle to the single application window.
type Window interface {
	// Emit sends an event to the web content hosted in the window.
	Emit(name string, payload any) error
	SetThemeMode(mode string)
	Size() (width, height int)
	Show()
	Hide()
	Quit()
}

// wailsWindow drives the main window through the Wails runtime.
// ctx must be the context Wails passes to OnStartup.
type wailsWindow struct {
	ctx context.Context
}

// isWailsContext reports whether ctx was produced by the Wails runtime.
// The runtime package calls log.Fatal on any other context, so every call is gated.
func isWailsContext(ctx context.Context) bool {
	return ctx != nil && ctx.Value("events") != nil && ctx.Value("frontend") != nil
}

// mainWindow returns the window bound to the startup context.
func mainWindow(ctx context.Context) (Window, error) {
	if !isWailsContext(ctx) {
		return nil, ErrMainWindowNotFound
	}
	return &wailsWindow{ctx: ctx}, nil
}

func (w *wailsWindow) Emit(name string, payload any) error {
	if !isWailsContext(w.ctx) {
		return fmt.Errorf("emit %s: %w", name, ErrMainWindowNotFound)
	}
	wailsRuntime.EventsEmit(w.ctx, name, payload)
	return nil
}

// SetThemeMode applies the window chrome theme. Only Windows honours it;
// elsewhere the web content styles itself from theme-changed.
func (w *wailsWindow) SetThemeMode(mode string) {
	switch mode {
	case ThemeModeLight:
		wailsRuntime.WindowSetLightTheme(w.ctx)
	case ThemeModeDark:
		wailsRuntime.WindowSetDarkTheme(w.ctx)
	default:
		wailsRuntime.WindowSetSystemDefaultTheme(w.ctx)
	}
}

func (w *wailsWindow) Size() (int, int) {
	return wailsRuntime.WindowGetSize(w.ctx)
}

// Show brings the application window to the foreground.
func (w *wailsWindow) Show() {
	wailsRuntime.Show(w.ctx)
	wailsRuntime.WindowUnminimise(w.ctx)
}

func (w *wailsWindow) Hide() {
	wailsRuntime.Hide(w.ctx)
}

func (w *wailsWindow) Quit() {
	wailsRuntime.Quit(w.ctx)
}
