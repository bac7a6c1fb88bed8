package main

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestResolveCapabilities(t *testing.T) {
	cases := []struct {
		in   []string
		want []string
	}{
		{nil, []string{}},
		{[]string{"os"}, []string{"os"}},
		{[]string{" OS ", "os", ""}, []string{"os"}},
		{[]string{"notify", "os", "tray"}, []string{"notify", "os", "tray"}},
	}
	for _, c := range cases {
		caps, err := resolveCapabilities(c.in, DefaultConfig())
		if err != nil {
			t.Fatalf("resolveCapabilities(%v): %v", c.in, err)
		}
		if got := capabilityNames(caps); !reflect.DeepEqual(got, c.want) {
			t.Fatalf("resolveCapabilities(%v) = %v; want %v", c.in, got, c.want)
		}
	}
}

func TestResolveCapabilitiesUnknown(t *testing.T) {
	_, err := resolveCapabilities([]string{"os", "clipboard"}, DefaultConfig())
	if !errors.Is(err, ErrUnknownCapability) {
		t.Fatalf("err = %v; want ErrUnknownCapability", err)
	}
}

func TestCapabilityBindings(t *testing.T) {
	caps, err := resolveCapabilities([]string{"os", "notify", "tray"}, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := caps[0].Bindings()[0].(*OSInfo); !ok {
		t.Fatalf("os binding is %T", caps[0].Bindings()[0])
	}
	if _, ok := caps[1].Bindings()[0].(*Notifier); !ok {
		t.Fatalf("notify binding is %T", caps[1].Bindings()[0])
	}
	if n := len(caps[2].Bindings()); n != 0 {
		t.Fatalf("tray has %d bindings; want 0", n)
	}
}

func TestThemeObserversAreWiredIntoRelay(t *testing.T) {
	win := &fakeWindow{}
	watcher := newFakeWatcher()
	app, _ := newTestApp(t, win, watcher)
	obs := &recordingCapability{}
	app.caps = []Capability{obs}

	if err := app.setup(t.Context()); err != nil {
		t.Fatal(err)
	}
	watcher.send(ThemeDark)

	if len(obs.seen) != 1 || obs.seen[0] != ThemeDark {
		t.Fatalf("capability saw %v", obs.seen)
	}
}

func TestNotifyCapabilityIgnoresThemesWhenDisabled(t *testing.T) {
	c := newNotifyCapability(false)
	// Must return without touching the notification daemon.
	c.OnTheme(ThemeDark)
}

type recordingCapability struct {
	seen []Theme
}

func (c *recordingCapability) Name() string                                       { return "recording" }
func (c *recordingCapability) Bindings() []interface{}                            { return nil }
func (c *recordingCapability) Startup(ctx context.Context, app *DesktopApp) error { return nil }
func (c *recordingCapability) Shutdown()                                          {}
func (c *recordingCapability) OnTheme(t Theme)                                    { c.seen = append(c.seen, t) }
