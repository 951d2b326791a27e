package mirror

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"
)

// EventType is what happened to a mirrored note.
type EventType string

const (
	EventPush   EventType = "PUSH"
	EventDelete EventType = "DELETE"
)

// Event reports one sync performed by Watch. Err is set when the remote call failed.
type Event struct {
	Type     EventType
	Category string
	Filename string
	Err      error
}

func (e Event) String() string {
	name := e.Filename
	if e.Category != "" {
		name = e.Category + "/" + e.Filename
	}
	if e.Err != nil {
		return fmt.Sprintf("%s %s failed: %v", e.Type, name, e.Err)
	}
	return fmt.Sprintf("%s %s", e.Type, name)
}

// DefaultDebounce is how long a path must stay quiet before it is synced.
const DefaultDebounce = 200 * time.Millisecond

// Watch follows changes below the root and mirrors them until ctx is done.
// Writes push the note, removals and renames delete it. The returned channel
// is closed once the watcher has stopped.
func (m *Mirror) Watch(ctx context.Context, debounce time.Duration) (<-chan Event, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := m.addDirs(watcher); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	events := make(chan Event, 16)
	d := newDebouncer(debounce)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer watcher.Close()
		// Wait for in-flight syncs before closing events.
		defer d.stopAndWait()

		for {
			select {
			case <-ctx.Done():
				return nil

			case ev, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				m.handle(ctx, watcher, d, ev, events)

			case werr, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				m.logger.Error("fsnotify error", "error", werr)
			}
		}
	}, lifecycle.WithErrorHandler(func(err error) {
		m.logger.Error("mirror watcher stopped", "error", err)
	}))

	m.logger.Info("watching for changes", "root", m.root)
	return events, nil
}

// addDirs watches the root and each first-level category directory.
func (m *Mirror) addDirs(watcher *fsnotify.Watcher) error {
	if err := watcher.Add(m.root); err != nil {
		return fmt.Errorf("failed to watch %s: %w", m.root, err)
	}
	entries, err := os.ReadDir(m.root)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() && !m.ignored(e.Name()) {
			if err := watcher.Add(filepath.Join(m.root, e.Name())); err != nil {
				return fmt.Errorf("failed to watch %s: %w", e.Name(), err)
			}
		}
	}
	return nil
}

func (m *Mirror) handle(ctx context.Context, watcher *fsnotify.Watcher, d *debouncer, ev fsnotify.Event, out chan<- Event) {
	m.logger.Debug("event received", "name", ev.Name, "op", ev.Op.String())

	// A new category directory appeared at the first level.
	if ev.Has(fsnotify.Create) && filepath.Dir(ev.Name) == m.root {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			if !m.ignored(filepath.Base(ev.Name)) {
				m.watchCategory(ctx, watcher, d, ev.Name, out)
			}
			return
		}
	}

	m.schedule(ctx, d, ev.Name, out)
}

// watchCategory watches a new category directory and queues the notes
// written into it before the watch was in place.
func (m *Mirror) watchCategory(ctx context.Context, watcher *fsnotify.Watcher, d *debouncer, dir string, out chan<- Event) {
	if err := watcher.Add(dir); err != nil {
		m.logger.Error("failed to watch category", "dir", dir, "error", err)
		return
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		m.logger.Error("failed to scan category", "dir", dir, "error", err)
		return
	}
	for _, e := range entries {
		if !e.IsDir() {
			m.schedule(ctx, d, filepath.Join(dir, e.Name()), out)
		}
	}
}

// schedule queues a debounced sync of localPath when it maps to a note.
func (m *Mirror) schedule(ctx context.Context, d *debouncer, localPath string, out chan<- Event) {
	category, filename, ok := m.resolve(localPath)
	if !ok {
		return
	}

	d.add(localPath, func() {
		var e Event
		if _, err := os.Stat(localPath); err == nil {
			e = Event{Type: EventPush, Category: category, Filename: filename, Err: m.push(ctx, localPath, category, filename)}
		} else {
			e = Event{Type: EventDelete, Category: category, Filename: filename, Err: m.remove(ctx, category, filename)}
		}
		select {
		case out <- e:
		case <-ctx.Done():
		}
	})
}

// debouncer runs the latest callback for a key once the key has been quiet for delay.
type debouncer struct {
	delay   time.Duration
	mu      sync.Mutex
	timers  map[string]*time.Timer
	stopped bool
	wg      sync.WaitGroup
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{delay: delay, timers: make(map[string]*time.Timer)}
}

func (d *debouncer) add(key string, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if t, ok := d.timers[key]; ok && t.Stop() {
		d.wg.Done()
	}
	d.wg.Add(1)
	var t *time.Timer
	t = time.AfterFunc(d.delay, func() {
		defer d.wg.Done()
		d.mu.Lock()
		if d.timers[key] == t {
			delete(d.timers, key)
		}
		d.mu.Unlock()
		fn()
	})
	d.timers[key] = t
}

// stopAndWait cancels pending callbacks and waits for running ones.
func (d *debouncer) stopAndWait() {
	d.mu.Lock()
	d.stopped = true
	for key, t := range d.timers {
		if t.Stop() {
			d.wg.Done()
		}
		delete(d.timers, key)
	}
	d.mu.Unlock()
	d.wg.Wait()
}
