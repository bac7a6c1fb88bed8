package main

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
)

// Emitter delivers events to web content.
type Emitter interface {
	Emit(name string, payload any) error
}

// ThemeRelay mirrors native theme notifications to the web layer as
// EventThemeChanged. The payload is forwarded untouched.
type ThemeRelay struct {
	emitter   Emitter
	observers []func(Theme)

	attached atomic.Bool
	relayed  atomic.Int64
	done     chan struct{}
	stopOnce sync.Once
}

// NewThemeRelay creates a relay. Observers run after each successful emit.
func NewThemeRelay(emitter Emitter, observers ...func(Theme)) *ThemeRelay {
	return &ThemeRelay{
		emitter:   emitter,
		observers: observers,
		done:      make(chan struct{}),
	}
}

// Handle forwards one native notification.
func (r *ThemeRelay) Handle(t Theme) error {
	Log.Debug("relaying theme", "native", NativeThemeChanged, "event", EventThemeChanged, "theme", t)
	if err := r.emitter.Emit(EventThemeChanged, t); err != nil {
		return fmt.Errorf("relay %s: %w", NativeThemeChanged, err)
	}
	r.relayed.Add(1)
	for _, observe := range r.observers {
		observe(t)
	}
	return nil
}

// ErrWatcherStopped is returned by Attach when the watcher exits before it
// has subscribed.
var ErrWatcherStopped = errors.New("theme watcher stopped before subscribing")

// Attach subscribes the relay to w for as long as ctx lives and returns once
// the subscription is live, so no change after Attach returns is missed.
// Only the first call subscribes; later calls return false.
func (r *ThemeRelay) Attach(ctx context.Context, w ThemeWatcher) (bool, error) {
	if !r.attached.CompareAndSwap(false, true) {
		return false, nil
	}

	ready := make(chan struct{})
	var readyOnce sync.Once
	exited := make(chan error, 1)
	go func() {
		defer r.stopOnce.Do(func() { close(r.done) })
		err := w.Watch(ctx,
			func() { readyOnce.Do(func() { close(ready) }) },
			func(t Theme) {
				if err := r.Handle(t); err != nil {
					Log.Error("theme relay failed", "theme", t, "error", err)
				}
			})
		if err != nil {
			Log.Error("theme watcher stopped", "error", err)
		}
		exited <- err
	}()

	select {
	case <-ready:
		return true, nil
	case err := <-exited:
		if err == nil {
			err = ErrWatcherStopped
		}
		return true, fmt.Errorf("subscribe %s: %w", NativeThemeChanged, err)
	}
}

// Done is closed once the attached watcher returns.
func (r *ThemeRelay) Done() <-chan struct{} {
	return r.done
}

// Relayed returns the number of events delivered so far.
func (r *ThemeRelay) Relayed() int64 {
	return r.relayed.Load()
}
