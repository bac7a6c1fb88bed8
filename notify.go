package main

import (
	"context"
	"fmt"

	"github.com/gen2brain/beeep"
)

// Notifier sends native desktop notifications on behalf of the front end.
// Methods are reachable as window.go.main.Notifier.
type Notifier struct{}

// Notify shows a system notification.
func (n *Notifier) Notify(title, body string) error {
	return beeep.Notify(title, body, "")
}

type notifyCapability struct {
	notifier      *Notifier
	onThemeChange bool
}

func newNotifyCapability(onThemeChange bool) *notifyCapability {
	return &notifyCapability{notifier: &Notifier{}, onThemeChange: onThemeChange}
}

func (c *notifyCapability) Name() string            { return CapabilityNotify }
func (c *notifyCapability) Bindings() []interface{} { return []interface{}{c.notifier} }

func (c *notifyCapability) Startup(ctx context.Context, app *DesktopApp) error {
	beeep.AppName = appTitle
	return nil
}

func (c *notifyCapability) Shutdown() {}

// OnTheme announces theme switches when enabled in config.
// Delivery runs in a goroutine so a slow notification daemon never stalls the relay.
func (c *notifyCapability) OnTheme(t Theme) {
	if !c.onThemeChange {
		return
	}
	go func() {
		if err := c.notifier.Notify(appTitle, fmt.Sprintf("Switched to the %s theme", t)); err != nil {
			Log.Warn("theme notification failed", "theme", t, "error", err)
		}
	}()
}
