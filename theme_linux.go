//go:build linux

package main

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	portalDest      = "org.freedesktop.portal.Desktop"
	portalPath      = "/org/freedesktop/portal/desktop"
	portalSettings  = "org.freedesktop.portal.Settings"
	appearanceNS    = "org.freedesktop.appearance"
	colorSchemeKey  = "color-scheme"
	settingsChanged = "SettingChanged"
)

// portalWatcher reads the color scheme from xdg-desktop-portal over the session bus.
type portalWatcher struct{}

func newThemeWatcher() ThemeWatcher {
	return portalWatcher{}
}

func (portalWatcher) Current(ctx context.Context) (Theme, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return ThemeLight, fmt.Errorf("connect session bus: %w", err)
	}
	defer conn.Close()
	return readPortalTheme(ctx, conn)
}

func (portalWatcher) Watch(ctx context.Context, ready func(), notify func(Theme)) error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return fmt.Errorf("connect session bus: %w", err)
	}
	defer conn.Close()

	// Subscribe before reading the baseline so no change falls in between.
	if err := conn.AddMatchSignal(
		dbus.WithMatchObjectPath(portalPath),
		dbus.WithMatchInterface(portalSettings),
		dbus.WithMatchMember(settingsChanged),
	); err != nil {
		return fmt.Errorf("subscribe %s.%s: %w", portalSettings, settingsChanged, err)
	}

	signals := make(chan *dbus.Signal, 8)
	conn.Signal(signals)
	defer conn.RemoveSignal(signals)

	initial, err := readPortalTheme(ctx, conn)
	if err != nil {
		Log.Warn("portal theme read failed", "error", err)
	}
	filter := newChangeFilter(initial, notify)
	ready()

	for {
		select {
		case <-ctx.Done():
			return nil
		case sig, ok := <-signals:
			if !ok {
				return nil
			}
			if t, ok := themeFromSettingChanged(sig.Body); ok {
				filter.offer(t)
			}
		}
	}
}

func readPortalTheme(ctx context.Context, conn *dbus.Conn) (Theme, error) {
	obj := conn.Object(portalDest, portalPath)
	var v dbus.Variant
	if err := obj.CallWithContext(ctx, portalSettings+".Read", 0, appearanceNS, colorSchemeKey).Store(&v); err != nil {
		return ThemeLight, fmt.Errorf("%w: %v", ErrThemeUnavailable, err)
	}
	scheme, ok := portalUint(v)
	if !ok {
		return ThemeLight, fmt.Errorf("%w: unexpected color-scheme value %v", ErrThemeUnavailable, v)
	}
	return themeFromPortal(scheme), nil
}

// themeFromSettingChanged decodes a SettingChanged body (namespace, key, value).
func themeFromSettingChanged(body []interface{}) (Theme, bool) {
	if len(body) != 3 {
		return "", false
	}
	ns, _ := body[0].(string)
	key, _ := body[1].(string)
	if ns != appearanceNS || key != colorSchemeKey {
		return "", false
	}
	v, ok := body[2].(dbus.Variant)
	if !ok {
		return "", false
	}
	scheme, ok := portalUint(v)
	if !ok {
		return "", false
	}
	return themeFromPortal(scheme), true
}

// portalUint unwraps Read's variant-in-variant reply down to the uint32.
func portalUint(v dbus.Variant) (uint32, bool) {
	val := v.Value()
	for {
		inner, ok := val.(dbus.Variant)
		if !ok {
			break
		}
		val = inner.Value()
	}
	u, ok := val.(uint32)
	return u, ok
}
