// Package carousel orchestrates the motion core of a draggable carousel.
//
// An [Engine] measures a container and its slides, derives the travel
// [motion.Limit], content size and scroll snaps, and on every frame runs
// boundary resistance, the scroll body integrator and loop wrap-around in
// that order. A [resize.Handler] watches the same nodes and re-measures the
// whole track when a genuine size change arrives.
//
// # Basic Usage
//
//	opts := carousel.DefaultOptions()
//	opts.Loop = true
//	engine := carousel.New(container, slides, opts, carousel.Dependencies{
//	    Observer: resize.NewPollingObserver(100 * time.Millisecond),
//	})
//	if err := engine.Init(); err != nil {
//	    return err
//	}
//	defer engine.Destroy()
//
//	engine.On(carousel.EventSelect, func(e *carousel.Engine, _ string) {
//	    fmt.Println("selected", e.SelectedIndex())
//	})
//	engine.Run(ctx, animation.DefaultFrameInterval) // returns when ctx is done
//
// # Threading
//
// An Engine is not safe for concurrent use. Input methods, [Engine.Frame]
// and [Engine.Run] must share one goroutine. Observers may deliver from any
// goroutine; their batches are queued and handled at the start of the next
// frame.
package carousel
