package main

import (
	"embed"

	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"github.com/wailsapp/wails/v2/pkg/options/mac"
	"github.com/wailsapp/wails/v2/pkg/options/windows"
)

//go:embed all:frontend/dist
var assets embed.FS

// buildAppOptions assembles the static context: window geometry, assets,
// lifecycle hooks, and the bindings of every enabled capability.
func buildAppOptions(app *DesktopApp) *options.App {
	bind := []interface{}{app}
	for _, c := range app.caps {
		bind = append(bind, c.Bindings()...)
	}

	return &options.App{
		Title:     appTitle,
		Width:     app.cfg.WindowWidth,
		Height:    app.cfg.WindowHeight,
		MinWidth:  800,
		MinHeight: 600,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 255, G: 255, B: 255, A: 1},
		OnStartup:        app.startup,
		OnDomReady:       app.onDomReady,
		OnShutdown:       app.shutdown,
		Bind:             bind,
		Windows: &windows.Options{
			WebviewIsTransparent: false,
			WindowIsTranslucent:  false,
			Theme:                windowsTheme(app.cfg.ThemeMode),
		},
		Mac: &mac.Options{
			About: &mac.AboutInfo{
				Title:   appTitle,
				Message: "Version " + AppVersion,
				Icon:    appIconPNG,
			},
		},
		Linux: &linux.Options{
			Icon:        appIconPNG,
			ProgramName: "ohmybox",
		},
	}
}

func windowsTheme(mode string) windows.Theme {
	switch mode {
	case ThemeModeLight:
		return windows.Light
	case ThemeModeDark:
		return windows.Dark
	default:
		return windows.SystemDefault
	}
}
