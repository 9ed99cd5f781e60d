package layoutfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-drift/carousel/cmd/carousel/internal/config"
	"github.com/go-drift/carousel/pkg/errors"
	"github.com/go-drift/carousel/pkg/geometry"
	"github.com/go-drift/carousel/pkg/resize"
	"github.com/zoobzio/clockz"
)

// DefaultDebounce coalesces the burst of events an editor save produces.
const DefaultDebounce = 50 * time.Millisecond

// Observer is a resize.Observer backed by a layout file. Each save is
// re-parsed and the nodes whose rects changed are delivered as one batch.
type Observer struct {
	path     string
	axis     geometry.Axis
	layout   *Layout
	clock    clockz.Clock
	debounce time.Duration
}

// NewObserver watches path and updates layout along axis.
func NewObserver(path string, axis geometry.Axis, layout *Layout) *Observer {
	return &Observer{
		path:     filepath.Clean(path),
		axis:     axis,
		layout:   layout,
		clock:    clockz.RealClock,
		debounce: DefaultDebounce,
	}
}

// WithClock sets the clock used for debouncing.
func (o *Observer) WithClock(clock clockz.Clock) *Observer {
	o.clock = clock
	return o
}

// WithDebounce sets the debounce duration. Zero reloads on every event.
func (o *Observer) WithDebounce(d time.Duration) *Observer {
	o.debounce = d
	return o
}

// Observe starts watching the file. The directory is watched rather than
// the file so saves that replace the file by rename are seen.
func (o *Observer) Observe(nodes []resize.Node, callback func([]resize.Entry)) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(o.path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", o.path, err)
	}

	watched := make(map[resize.Node]struct{}, len(nodes))
	for _, n := range nodes {
		watched[n] = struct{}{}
	}

	ctx, cancel := context.WithCancel(context.Background())
	go o.run(ctx, watcher, watched, callback)
	return cancel, nil
}

func (o *Observer) run(ctx context.Context, watcher *fsnotify.Watcher, watched map[resize.Node]struct{}, callback func([]resize.Entry)) {
	defer watcher.Close()

	var timer clockz.Timer
	for {
		var timerC <-chan time.Time
		if timer != nil {
			timerC = timer.C()
		}

		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != o.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if o.debounce <= 0 {
				o.deliver(watched, callback)
				continue
			}
			if timer == nil {
				timer = o.clock.NewTimer(o.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C():
					default:
					}
				}
				timer.Reset(o.debounce)
			}

		case <-timerC:
			o.deliver(watched, callback)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			errors.Report(&errors.CarouselError{
				Op:     "layoutfile.Observer",
				Kind:   errors.KindObserver,
				Err:    err,
				Source: o.path,
			})
		}
	}
}

func (o *Observer) deliver(watched map[resize.Node]struct{}, callback func([]resize.Entry)) {
	entries, err := o.Reload()
	if err != nil {
		errors.Report(err)
	}
	var batch []resize.Entry
	for _, entry := range entries {
		if _, ok := watched[entry.Target]; ok {
			batch = append(batch, entry)
		}
	}
	if len(batch) > 0 {
		callback(batch)
	}
}

// Reload reads the file, updates the layout and returns the entries of the
// nodes that changed. Entries may be returned alongside an error when only
// part of the file could be applied.
func (o *Observer) Reload() ([]resize.Entry, *errors.CarouselError) {
	data, err := os.ReadFile(o.path)
	if err != nil {
		return nil, o.fail(errors.KindObserver, err)
	}
	cfg, err := config.Parse(data)
	if err != nil {
		return nil, o.fail(errors.KindConfig, err)
	}
	container, slides, err := cfg.Layout.Rects(o.axis)
	if err != nil {
		return nil, o.fail(errors.KindConfig, err)
	}
	entries, err := o.layout.apply(container, slides)
	if err != nil {
		return entries, o.fail(errors.KindLayout, err)
	}
	return entries, nil
}

func (o *Observer) fail(kind errors.ErrorKind, err error) *errors.CarouselError {
	return &errors.CarouselError{
		Op:     "layoutfile.Reload",
		Kind:   kind,
		Err:    err,
		Source: o.path,
	}
}
