package rebrand

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"
)

const watchDebounce = 100 * time.Millisecond

// Watch runs the answers file once, then again after every change to it,
// until ctx is done. Failed re-runs are logged and watching continues.
func Watch(ctx context.Context, o Options) error {
	o = o.withDefaults()
	if o.AnswersFile == "" {
		return errors.New("rebrand.Watch: an answers file is required")
	}
	answersPath, err := filepath.Abs(o.AnswersFile)
	if err != nil {
		return fmt.Errorf("rebrand.Watch: %w", err)
	}
	o.AnswersFile = answersPath

	if err := Run(o); err != nil {
		return err
	}

	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("rebrand.Watch: %w", err)
	}
	// Editors often replace the file, so watch its directory.
	if err := fsWatch.Add(filepath.Dir(answersPath)); err != nil {
		fsWatch.Close()
		return fmt.Errorf("rebrand.Watch: failed to watch %s: %w", filepath.Dir(answersPath), err)
	}

	d := newDebouncer(watchDebounce, func() {
		if err := Run(o); err != nil {
			o.Log.Error("Re-run failed", "error", err)
		}
	})
	defer d.stop()

	o.Log.Info("Watching for changes", "file", o.AnswersFile)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		<-egCtx.Done()
		return fsWatch.Close()
	})
	eg.Go(func() error {
		for {
			select {
			case evt, ok := <-fsWatch.Events:
				if !ok {
					return closedErr(egCtx)
				}
				if filepath.Clean(evt.Name) != answersPath || evt.Op == fsnotify.Chmod {
					continue
				}
				o.Log.Debug("Answers file changed", "op", evt.Op.String())
				d.trigger()
			case err, ok := <-fsWatch.Errors:
				if !ok {
					return closedErr(egCtx)
				}
				o.Log.Error("Watcher error", "error", err)
			}
		}
	})
	return eg.Wait()
}

func closedErr(ctx context.Context) error {
	if ctx.Err() != nil {
		return nil
	}
	return errors.New("rebrand.Watch: watcher closed unexpectedly")
}

// debouncer coalesces bursts of triggers into one callback and never runs
// two callbacks at once.
type debouncer struct {
	duration time.Duration
	callback func()
	mu       sync.Mutex
	timer    *time.Timer
	stopped  bool
	inFlight bool
	pending  bool
	running  sync.WaitGroup
}

func newDebouncer(d time.Duration, cb func()) *debouncer {
	return &debouncer{duration: d, callback: cb}
}

func (d *debouncer) trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, d.flush)
}

func (d *debouncer) flush() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	// A trigger during a running callback schedules one more run after it.
	if d.inFlight {
		d.pending = true
		d.mu.Unlock()
		return
	}
	d.inFlight = true
	d.running.Add(1)
	d.mu.Unlock()

	d.callback()

	d.mu.Lock()
	d.inFlight = false
	d.running.Done()
	if d.pending && !d.stopped {
		d.pending = false
		d.timer = time.AfterFunc(d.duration, d.flush)
	}
	d.mu.Unlock()
}

// stop cancels any scheduled callback and waits for a running one.
func (d *debouncer) stop() {
	d.mu.Lock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = false
	d.mu.Unlock()

	d.running.Wait()
}
