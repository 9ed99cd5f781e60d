package cmd

import (
	"fmt"

	"github.com/go-drift/carousel/cmd/carousel/internal/config"
	"github.com/go-drift/carousel/cmd/carousel/internal/layoutfile"
	"github.com/go-drift/carousel/pkg/carousel"
	"github.com/go-drift/carousel/pkg/resize"
	"github.com/zoobzio/clockz"
)

func init() {
	RegisterCommand(&Command{
		Name:  "simulate",
		Short: "Run a scripted drag and print every frame",
		Long: `Build an engine from the layout in carousel.yaml, press the pointer,
drag it over a number of frames, release it with a fling and print the
location, target and selected snap of each frame until the track settles.

Positions are percent of the view size. Negative drags move forward.

Flags:
  --config FILE    Configuration file (default: carousel.yaml)
  --drag PX        Total drag distance in pixels (default: 0)
  --steps N        Frames the drag is spread over (default: 10)
  --force PX       Fling added on release in pixels (default: 0)
  --scroll-to N    Animate to snap N instead of dragging
  --frames N       Maximum frames after release (default: 600)`,
		Usage: "carousel simulate [--config FILE] [--drag PX] [--steps N] [--force PX] [--scroll-to N] [--frames N]",
		Run:   runSimulate,
	})
}

type simulateOptions struct {
	configPath string
	drag       float64
	steps      int
	force      float64
	scrollTo   int
	frames     int
}

func parseSimulate(args []string) (simulateOptions, error) {
	fs, err := parseFlags(args, "config", "drag", "steps", "force", "scroll-to", "frames")
	if err != nil {
		return simulateOptions{}, err
	}
	opts := simulateOptions{configPath: fs.string("config", config.DefaultFile)}
	if opts.drag, err = fs.float("drag", 0); err != nil {
		return opts, err
	}
	if opts.steps, err = fs.int("steps", 10); err != nil {
		return opts, err
	}
	if opts.force, err = fs.float("force", 0); err != nil {
		return opts, err
	}
	if opts.scrollTo, err = fs.int("scroll-to", -1); err != nil {
		return opts, err
	}
	if opts.frames, err = fs.int("frames", 600); err != nil {
		return opts, err
	}
	if opts.steps < 1 {
		return opts, fmt.Errorf("--steps must be at least 1")
	}
	return opts, nil
}

func runSimulate(args []string) error {
	opts, err := parseSimulate(args)
	if err != nil {
		return err
	}
	resolved, err := config.Resolve(opts.configPath)
	if err != nil {
		return err
	}

	layout := layoutfile.NewLayout(resolved.Container, resolved.Slides)
	container, slides := layout.Nodes()
	engineOpts := resolved.Options
	engineOpts.WatchResize = resize.Disabled()

	engine := carousel.New(container, slides, engineOpts, carousel.Dependencies{
		Clock: clockz.NewFakeClock(),
	})
	if err := engine.Init(); err != nil {
		return err
	}
	defer engine.Destroy()

	fmt.Fprintf(stdout, "%s: %d snaps, content %.2f%%, limit [%.2f, %.2f], loop %v\n",
		engineOpts.Name, len(engine.ScrollSnaps()), engine.ContentSize(),
		engine.Limit().Min, engine.Limit().Max, engine.Looping())

	frame := 0
	engine.On(carousel.EventSelect, func(e *carousel.Engine, _ string) {
		fmt.Fprintf(stdout, "          select %d -> %d\n", e.PreviousIndex(), e.SelectedIndex())
	})
	engine.On(carousel.EventSettle, func(e *carousel.Engine, _ string) {
		fmt.Fprintf(stdout, "          settle at %.2f\n", e.Location())
	})
	step := func() {
		frame++
		engine.Frame()
		fmt.Fprintf(stdout, "frame %3d location %9.2f target %9.2f index %d\n",
			frame, engine.Location(), engine.Target(), engine.SelectedIndex())
	}

	if opts.scrollTo >= 0 {
		engine.ScrollTo(opts.scrollTo)
	} else {
		engine.PointerDown()
		for range opts.steps {
			engine.DragBy(opts.drag / float64(opts.steps))
			step()
		}
		engine.PointerUp(opts.force)
	}

	for range opts.frames {
		if !engine.Animating() {
			return nil
		}
		step()
	}
	if engine.Animating() {
		return fmt.Errorf("track did not settle within %d frames", opts.frames)
	}
	return nil
}
