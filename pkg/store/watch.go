package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType describes the nature of a preset change notification.
type EventType int

const (
	// EventPresetChanged indicates the named preset was written or removed.
	EventPresetChanged EventType = iota

	// EventPresetsInvalidated signals a change that could not be tied to a
	// single preset; callers should reload the full list.
	EventPresetsInvalidated
)

// Event is emitted by Presets.Watch when underlying storage changes.
type Event struct {
	Type EventType
	Name string
}

// Watch streams change events until ctx is cancelled. Callers should drain the
// returned channel to avoid blocking the watcher. The channel is closed once
// ctx is done or the watcher encounters an unrecoverable error.
func (p *presets) Watch(ctx context.Context) (<-chan Event, error) {
	dir := filepath.Join(p.basePath, presetsDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure presets directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("store: watch %s: %w", dir, err)
	}

	events := make(chan Event, 16)

	go func() {
		defer close(events)
		defer watcher.Close()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// Drop events if the consumer is not ready; the next
				// reload picks up the change anyway.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				throttle.Enqueue(Event{Type: EventPresetsInvalidated}, send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				name := p.presetForPath(evt.Name)
				if name == "" {
					throttle.Enqueue(Event{Type: EventPresetsInvalidated}, send)
					continue
				}
				throttle.Enqueue(Event{Type: EventPresetChanged, Name: name}, send)
			}
		}
	}()

	return events, nil
}

// presetForPath derives the preset name from a diskv file path.
func (p *presets) presetForPath(path string) string {
	if filepath.Dir(path) != filepath.Join(p.basePath, presetsDir) {
		return ""
	}
	base := filepath.Base(path)
	if base == "" || base[0] == '.' {
		return ""
	}
	return fromKey(base)
}

// eventThrottle coalesces rapid change notifications so a burst of writes
// to one preset is delivered once.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[EventType]map[string]struct{}
	delay   time.Duration
	stopped bool

	// flushing is held while events are sent so Stop can wait for them.
	flushing sync.Mutex
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[EventType]map[string]struct{}),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.pending[ev.Type] == nil {
		t.pending[ev.Type] = make(map[string]struct{})
	}
	t.pending[ev.Type][ev.Name] = struct{}{}

	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
}

func (t *eventThrottle) flush(send func(Event)) {
	t.flushing.Lock()
	defer t.flushing.Unlock()

	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}
	pending := t.pending
	t.pending = make(map[EventType]map[string]struct{})
	t.timer = nil
	t.mu.Unlock()

	for eventType, names := range pending {
		if eventType == EventPresetsInvalidated {
			send(Event{Type: eventType})
			continue
		}
		for name := range names {
			send(Event{Type: eventType, Name: name})
		}
	}
}

// Stop cancels pending events and waits for an in flight flush.
func (t *eventThrottle) Stop() {
	t.mu.Lock()
	t.stopped = true
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()

	t.flushing.Lock()
	t.flushing.Unlock()
}
