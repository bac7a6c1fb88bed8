package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "ohmybox-test-")
	if err != nil {
		panic(err)
	}
	os.Setenv("OHMYBOX_HOME", dir)
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

type emitted struct {
	name    string
	payload any
}

// fakeWindow records everything the app asks of the main window.
type fakeWindow struct {
	mu      sync.Mutex
	events  []emitted
	mode    string
	width   int
	height  int
	emitErr error
	shown   int
	hidden  int
	quit    int
}

func (w *fakeWindow) Emit(name string, payload any) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.emitErr != nil {
		return w.emitErr
	}
	w.events = append(w.events, emitted{name: name, payload: payload})
	return nil
}

func (w *fakeWindow) SetThemeMode(mode string) {
	w.mu.Lock()
	w.mode = mode
	w.mu.Unlock()
}

func (w *fakeWindow) Size() (int, int) { return w.width, w.height }
func (w *fakeWindow) Show()            { w.shown++ }
func (w *fakeWindow) Hide()            { w.hidden++ }
func (w *fakeWindow) Quit()            { w.quit++ }

func (w *fakeWindow) sent() []emitted {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]emitted(nil), w.events...)
}

// fakeWatcher captures the notify callback so tests can fire notifications
// by hand. It reports ready as soon as the callback is stored.
type fakeWatcher struct {
	current    Theme
	currentErr error
	watchErr   error

	watchCalls atomic.Int32

	mu     sync.Mutex
	notify func(Theme)
}

func newFakeWatcher() *fakeWatcher {
	return &fakeWatcher{current: ThemeLight}
}

func (w *fakeWatcher) Current(ctx context.Context) (Theme, error) {
	return w.current, w.currentErr
}

func (w *fakeWatcher) Watch(ctx context.Context, ready func(), notify func(Theme)) error {
	w.watchCalls.Add(1)
	if w.watchErr != nil {
		return w.watchErr
	}
	w.mu.Lock()
	w.notify = notify
	w.mu.Unlock()
	ready()
	<-ctx.Done()
	return nil
}

// send delivers a native notification synchronously.
func (w *fakeWatcher) send(t Theme) {
	w.mu.Lock()
	notify := w.notify
	w.mu.Unlock()
	notify(t)
}

// newTestApp wires a DesktopApp to fakes. Config saves are counted, not written.
func newTestApp(t *testing.T, win *fakeWindow, watcher *fakeWatcher) (*DesktopApp, *int) {
	t.Helper()
	app := NewDesktopApp(DefaultConfig(), nil, watcher, nil)
	lookups := 0
	app.lookupWindow = func(ctx context.Context) (Window, error) {
		lookups++
		return win, nil
	}
	app.saveConfig = func(*AppConfig) error { return nil }
	return app, &lookups
}

func TestApplyFlags(t *testing.T) {
	cmd := newRootCmd()
	if err := cmd.Flags().Set("capabilities", "os,notify"); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	cfg.LogLevel = "info"
	applyFlags(cmd, cfg, "", []string{"os", "notify"})

	if want := []string{"os", "notify"}; !reflect.DeepEqual(cfg.Capabilities, want) {
		t.Fatalf("capabilities = %v; want %v", cfg.Capabilities, want)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("log level overwritten without flag: %q", cfg.LogLevel)
	}
}

func TestRootCmdRejectsArguments(t *testing.T) {
	cmd := newRootCmd()
	if err := cmd.Args(cmd, []string{"extra"}); err == nil {
		t.Fatal("expected positional arguments to be rejected")
	}
	if err := cmd.Args(cmd, nil); err != nil {
		t.Fatalf("no arguments rejected: %v", err)
	}
}

func TestRunRejectsUnknownCapability(t *testing.T) {
	prev := Log
	defer func() {
		Log = prev
		SetLogLevel("error")
	}()

	cfg := DefaultConfig()
	cfg.Capabilities = []string{"os", "clipboard"}

	err := run(cfg, false)
	if !errors.Is(err, ErrUnknownCapability) {
		t.Fatalf("run err = %v; want ErrUnknownCapability", err)
	}
	if !strings.Contains(err.Error(), "clipboard") {
		t.Fatalf("diagnostic %q does not name the capability", err)
	}

	// The logger was up before the failure, so it is on disk too.
	files, _ := filepath.Glob(filepath.Join(LogDir(), "ohmybox_*.log"))
	logged := false
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err == nil && strings.Contains(string(data), "resolve capabilities failed") {
			logged = true
		}
	}
	if !logged {
		t.Fatalf("no log file in %s records the failure", LogDir())
	}
}

func TestSetupErrorPolicy(t *testing.T) {
	boom := fmt.Errorf("setup: %w", ErrMainWindowNotFound)

	failed := 0
	setupErrorPolicy(false, func(error) { failed++ })(boom)
	if failed != 0 {
		t.Fatal("default policy treated setup failure as fatal")
	}

	var got error
	setupErrorPolicy(true, func(err error) { got = err })(boom)
	if !errors.Is(got, ErrMainWindowNotFound) {
		t.Fatalf("strict policy passed %v; want ErrMainWindowNotFound", got)
	}
}
