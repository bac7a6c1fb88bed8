package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"sync"
	"time"
)

//go:embed build/appicon.png
var appIconPNG []byte

const appTitle = "OhMyBox"

// relayStopTimeout bounds how long shutdown waits for the theme watcher.
const relayStopTimeout = 2 * time.Second

// ErrInvalidThemeMode is returned by SetThemeMode for anything but light, dark or system.
var ErrInvalidThemeMode = errors.New("invalid theme mode")

// DesktopApp is the Wails application binding struct.
// Methods on this struct are exposed to the frontend via window.go.main.DesktopApp.
type DesktopApp struct {
	ctx     context.Context
	cfg     *AppConfig
	caps    []Capability
	watcher ThemeWatcher
	journal *ThemeJournal

	lookupWindow func(context.Context) (Window, error)
	onSetupError func(error)
	saveConfig   func(*AppConfig) error

	setupOnce sync.Once
	mu        sync.Mutex
	window    Window
	relay     *ThemeRelay
	stopWatch context.CancelFunc
}

// NewDesktopApp creates a new DesktopApp instance. journal may be nil.
func NewDesktopApp(cfg *AppConfig, caps []Capability, watcher ThemeWatcher, journal *ThemeJournal) *DesktopApp {
	return &DesktopApp{
		cfg:          cfg,
		caps:         caps,
		watcher:      watcher,
		journal:      journal,
		lookupWindow: mainWindow,
		saveConfig:   SaveConfig,
		onSetupError: setupErrorPolicy(false, nil),
	}
}

// startup is called when the Wails app starts.
func (a *DesktopApp) startup(ctx context.Context) {
	tStartup := time.Now()
	Log.Debug("Wails OnStartup", "capabilities", capabilityNames(a.caps))
	a.mu.Lock()
	a.ctx = ctx
	a.mu.Unlock()

	for _, c := range a.caps {
		if err := c.Startup(ctx, a); err != nil {
			Log.Error("capability startup failed", "capability", c.Name(), "error", err)
		}
	}

	if err := a.setup(ctx); err != nil {
		a.onSetupError(err)
	}
	Log.Debug("Wails OnStartup done", "elapsed", time.Since(tStartup))
}

// onDomReady is called when the DOM is fully loaded.
func (a *DesktopApp) onDomReady(ctx context.Context) {
	Log.Debug("Wails OnDomReady")
}

// shutdown is called when the Wails app is closing.
func (a *DesktopApp) shutdown(ctx context.Context) {
	a.mu.Lock()
	win, stop, relay := a.window, a.stopWatch, a.relay
	a.mu.Unlock()

	if stop != nil {
		stop()
	}
	// Observers below get closed; no notification may still be in flight.
	if relay != nil {
		select {
		case <-relay.Done():
		case <-time.After(relayStopTimeout):
			Log.Warn("theme watcher did not stop in time", "timeout", relayStopTimeout)
		}
	}

	// Save window size
	if win != nil {
		w, h := win.Size()
		if w > 0 && h > 0 {
			a.mu.Lock()
			a.cfg.WindowWidth = w
			a.cfg.WindowHeight = h
			a.mu.Unlock()
		}
	}

	a.mu.Lock()
	err := a.saveConfig(a.cfg)
	a.mu.Unlock()
	if err != nil {
		Log.Error("save config failed", "error", err)
	}

	for i := len(a.caps) - 1; i >= 0; i-- {
		a.caps[i].Shutdown()
	}

	if a.journal != nil {
		if err := a.journal.Close(); err != nil {
			Log.Warn("close journal failed", "error", err)
		}
	}
}

// recordTheme journals a relayed theme.
func (a *DesktopApp) recordTheme(t Theme) {
	if a.journal == nil || !a.cfg.IsJournalThemes() {
		return
	}
	if err := a.journal.Record(t, NativeThemeChanged); err != nil {
		Log.Warn("journal theme failed", "theme", t, "error", err)
	}
}

// Theme returns the current system theme, "light" or "dark".
// Falls back to light when the platform cannot tell.
func (a *DesktopApp) Theme() string {
	a.mu.Lock()
	ctx := a.ctx
	a.mu.Unlock()
	if ctx == nil {
		ctx = context.Background()
	}
	t, err := a.watcher.Current(ctx)
	if err != nil {
		Log.Warn("system theme lookup failed", "error", err)
		return string(ThemeLight)
	}
	return string(t)
}

// ThemeMode returns the persisted mode: light, dark or system.
func (a *DesktopApp) ThemeMode() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cfg.ThemeMode
}

// SetThemeMode persists the mode, applies it to the window chrome and
// tells the front end via theme-mode-changed.
func (a *DesktopApp) SetThemeMode(mode string) error {
	if !validThemeMode(mode) {
		return fmt.Errorf("%w: %q", ErrInvalidThemeMode, mode)
	}

	a.mu.Lock()
	a.cfg.ThemeMode = mode
	win := a.window
	err := a.saveConfig(a.cfg)
	a.mu.Unlock()
	if err != nil {
		Log.Error("save config failed", "error", err)
	}

	if win == nil {
		return nil
	}
	win.SetThemeMode(mode)
	if err := win.Emit(EventThemeModeChanged, mode); err != nil {
		return fmt.Errorf("announce theme mode: %w", err)
	}
	return nil
}

// ThemeHistory returns the most recent relayed themes, newest first.
func (a *DesktopApp) ThemeHistory(limit int) ([]ThemeEvent, error) {
	if a.journal == nil {
		return []ThemeEvent{}, nil
	}
	return a.journal.Recent(limit)
}

// LogLevel returns the active log level: error, warn, info or debug.
func (a *DesktopApp) LogLevel() string {
	return GetLogLevel()
}

// SetLogLevel changes verbosity without a restart and persists it.
// Unknown levels fall back to error. Returns the level now in effect.
func (a *DesktopApp) SetLogLevel(level string) string {
	SetLogLevel(level)
	applied := GetLogLevel()

	a.mu.Lock()
	a.cfg.LogLevel = applied
	err := a.saveConfig(a.cfg)
	a.mu.Unlock()
	if err != nil {
		Log.Error("save config failed", "error", err)
	}
	Log.Info("log level changed", "level", applied)
	return applied
}

// Capabilities lists the enabled capability names.
func (a *DesktopApp) Capabilities() []string {
	return capabilityNames(a.caps)
}

func (a *DesktopApp) currentWindow() Window {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.window
}

// showWindow brings the application window to the foreground.
func (a *DesktopApp) showWindow() {
	if win := a.currentWindow(); win != nil {
		win.Show()
	}
}

// toggleWindow shows the window if hidden/minimized, hides it if visible.
func (a *DesktopApp) toggleWindow() {
	win := a.currentWindow()
	if win == nil {
		return
	}
	visible, minimized := isAppWindowVisible()
	if visible && !minimized {
		win.Hide()
	} else {
		win.Show()
	}
}

func (a *DesktopApp) quit() {
	if win := a.currentWindow(); win != nil {
		win.Quit()
	}
}
