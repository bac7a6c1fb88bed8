package main

import (
	"context"
	"fmt"

	"github.com/ra1phdd/systray-on-wails"
)

// trayCapability puts a tray icon with window and theme controls next to the clock.
type trayCapability struct {
	app *DesktopApp
}

func newTrayCapability() *trayCapability { return &trayCapability{} }

func (c *trayCapability) Name() string            { return CapabilityTray }
func (c *trayCapability) Bindings() []interface{} { return nil }

func (c *trayCapability) Startup(ctx context.Context, app *DesktopApp) error {
	c.app = app
	systray.Register(c.onReady, nil)
	return nil
}

func (c *trayCapability) Shutdown() {
	systray.Quit()
}

// OnTheme keeps the tooltip in step with the relayed theme.
func (c *trayCapability) OnTheme(t Theme) {
	systray.SetTooltip(trayTooltip(t))
}

// onReady builds the tray menu.
// Right-click: context menu. Double-click (Windows): toggle window visibility.
func (c *trayCapability) onReady() {
	systray.SetIcon(trayIcon())
	systray.SetTooltip(c.initialTooltip())

	mShow := systray.AddMenuItem("Show window", "Open the OhMyBox window")
	systray.AddSeparator()
	mLight := systray.AddMenuItem("Light", "Always use the light theme")
	mDark := systray.AddMenuItem("Dark", "Always use the dark theme")
	mSystem := systray.AddMenuItem("Follow system", "Use the system theme")
	systray.AddSeparator()
	mQuit := systray.AddMenuItem("Quit", "Quit OhMyBox")

	subclassSystray(c.app.toggleWindow)

	setMode := func(mode string) {
		if err := c.app.SetThemeMode(mode); err != nil {
			Log.Error("tray: set theme mode failed", "mode", mode, "error", err)
		}
	}

	go func() {
		for {
			select {
			case <-mShow.ClickedCh:
				c.app.showWindow()
			case <-mLight.ClickedCh:
				setMode(ThemeModeLight)
			case <-mDark.ClickedCh:
				setMode(ThemeModeDark)
			case <-mSystem.ClickedCh:
				setMode(ThemeModeSystem)
			case <-mQuit.ClickedCh:
				c.app.quit()
				return
			}
		}
	}()
}

// initialTooltip shows the system theme before the first change arrives.
func (c *trayCapability) initialTooltip() string {
	return trayTooltip(Theme(c.app.Theme()))
}

func trayTooltip(t Theme) string {
	if t == "" {
		return fmt.Sprintf("%s v%s", appTitle, AppVersion)
	}
	return fmt.Sprintf("%s v%s - %s theme", appTitle, AppVersion, t)
}
