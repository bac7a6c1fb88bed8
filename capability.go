package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Capability names accepted in config and on the command line.
const (
	CapabilityOS     = "os"
	CapabilityTray   = "tray"
	CapabilityNotify = "notify"
)

// ErrUnknownCapability is returned for a capability name nothing provides.
var ErrUnknownCapability = errors.New("unknown capability")

// Capability is an optional native feature exposed to the web layer.
type Capability interface {
	Name() string
	// Bindings are the objects whose exported methods the front end may call.
	Bindings() []interface{}
	Startup(ctx context.Context, app *DesktopApp) error
	Shutdown()
}

// themeObserver is implemented by capabilities that react to relayed themes.
type themeObserver interface {
	OnTheme(t Theme)
}

// resolveCapabilities turns a list of names into capabilities, in order,
// ignoring duplicates and blanks.
func resolveCapabilities(names []string, cfg *AppConfig) ([]Capability, error) {
	var caps []Capability
	seen := make(map[string]bool)
	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		switch name {
		case CapabilityOS:
			caps = append(caps, newOSCapability())
		case CapabilityTray:
			caps = append(caps, newTrayCapability())
		case CapabilityNotify:
			caps = append(caps, newNotifyCapability(cfg.NotifyOnThemeChange))
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownCapability, raw)
		}
	}
	return caps, nil
}

func capabilityNames(caps []Capability) []string {
	names := make([]string, 0, len(caps))
	for _, c := range caps {
		names = append(names, c.Name())
	}
	return names
}
