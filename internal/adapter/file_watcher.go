package adapter

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	m "github.com/mouse-blink/graft/internal/model"
)

// FileWatcher reports changes to unit source files.
type FileWatcher interface {
	// Add watches the directory holding path.
	Add(path m.Path) error
	// Events yields the paths of changed sources. It is closed by Close.
	Events() <-chan m.Path
	Errors() <-chan error
	Close() error
}

// FSNotifyWatcher is a FileWatcher backed by fsnotify. Directories rather
// than files are watched so that editors replacing a file by rename are
// still observed.
type FSNotifyWatcher struct {
	w      *fsnotify.Watcher
	exts   []string
	events chan m.Path
	errs   chan error
	dirs   map[string]bool
	mu     sync.Mutex
	done   chan struct{}
	once   sync.Once
}

// NewFSNotifyWatcher starts a watcher filtering on exts.
func NewFSNotifyWatcher(exts []string) (*FSNotifyWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	if len(exts) == 0 {
		exts = DefaultExtensions
	}

	fw := &FSNotifyWatcher{
		w:      w,
		exts:   exts,
		events: make(chan m.Path, 16),
		errs:   make(chan error, 1),
		dirs:   make(map[string]bool),
		done:   make(chan struct{}),
	}

	go fw.forward()

	return fw, nil
}

func (fw *FSNotifyWatcher) Add(path m.Path) error {
	dir := filepath.Dir(string(path))

	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.dirs[dir] {
		return nil
	}

	if err := fw.w.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	fw.dirs[dir] = true

	return nil
}

func (fw *FSNotifyWatcher) Events() <-chan m.Path { return fw.events }
func (fw *FSNotifyWatcher) Errors() <-chan error  { return fw.errs }

func (fw *FSNotifyWatcher) Close() error {
	var err error

	fw.once.Do(func() {
		close(fw.done)
		err = fw.w.Close()
	})

	return err
}

func (fw *FSNotifyWatcher) forward() {
	defer close(fw.events)

	for {
		select {
		case <-fw.done:
			return
		case ev, ok := <-fw.w.Events:
			if !ok {
				return
			}

			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}

			if !HasExtension(m.Path(ev.Name), fw.exts) {
				continue
			}

			select {
			case fw.events <- m.Path(ev.Name):
			case <-fw.done:
				return
			}
		case err, ok := <-fw.w.Errors:
			if !ok {
				return
			}

			select {
			case fw.errs <- err:
			default:
			}
		}
	}
}
