// Package connectivity tracks backend reachability for the terminal.
//
// A headless client has no ambient online/offline events, so the watcher
// probes the backend health endpoint on an interval and reports transitions
// (became-online, became-offline) to a subscriber. Capture is never gated by
// connectivity; only the sync action consults it.
package connectivity

import (
	"context"
	"sync/atomic"
	"time"
)

// Pinger is the probe the watcher runs; satisfied by the API client.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Watcher exposes a boolean online signal plus transition callbacks.
type Watcher struct {
	pinger   Pinger
	interval time.Duration
	online   atomic.Bool
	onChange func(online bool)
}

// NewWatcher returns a Watcher probing via pinger every interval. onChange,
// if non-nil, is invoked on every transition from the watcher goroutine.
// The watcher starts in the offline state until the first successful probe.
func NewWatcher(pinger Pinger, interval time.Duration, onChange func(online bool)) *Watcher {
	return &Watcher{pinger: pinger, interval: interval, onChange: onChange}
}

// Online reports the last observed state.
func (w *Watcher) Online() bool {
	return w.online.Load()
}

// Run probes immediately and then on every tick until ctx is done.
// It blocks; callers run it in a goroutine.
func (w *Watcher) Run(ctx context.Context) {
	w.probe(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.probe(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (w *Watcher) probe(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	err := w.pinger.Ping(ctx)
	cancel()

	now := err == nil
	if w.online.Swap(now) != now && w.onChange != nil {
		w.onChange(now)
	}
}
