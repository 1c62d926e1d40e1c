// Package navcube implements the navigation cube widget: a chamfered cube in
// its own small viewport that mirrors the orientation of a host camera and
// turns clicks on its facets into camera commands.
package navcube

import (
	"fmt"
	gomath "math"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/navcube/internal/logger"
	"github.com/Faultbox/navcube/internal/navcube/cube"
	"github.com/Faultbox/navcube/internal/navcube/label"
	"github.com/Faultbox/navcube/pkg/math"
)

// Sync tuning.
const (
	// SyncThreshold is the minimum dot product between the current and the
	// last applied forward (and up) directions for the view to count as
	// unchanged.
	SyncThreshold = 0.9999

	// DefaultChamfer is the bevel ratio used when none is configured.
	DefaultChamfer = 0.15
)

// DefaultRadius is the distance of the local camera from the cube center.
const DefaultRadius = 2 * gomath.Sqrt2

// DefaultHome is the isometric Front-Right-Top view.
var DefaultHome = (cube.Front | cube.Right | cube.Top).Normal()

// Options configures a Widget. Region and Camera are required.
type Options struct {
	Region Region
	Camera CameraPort

	// Renderer draws the scene. Nil selects a SoftwareSurface of the region
	// size.
	Renderer Renderer

	Chamfer   float32
	Palette   cube.Palette
	Decorator label.Decorator // Nil leaves faces flat
	Home      math.Vec3
	Radius    float32

	Logger *zap.Logger
}

// DefaultOptions returns options with every optional field filled.
func DefaultOptions() Options {
	return Options{
		Chamfer: DefaultChamfer,
		Palette: cube.DefaultPalette(),
		Home:    DefaultHome,
		Radius:  DefaultRadius,
	}
}

// Widget is one navigation cube bound to one host camera.
type Widget struct {
	mu sync.Mutex

	cam      CameraPort
	renderer Renderer
	scene    *Scene
	home     math.Vec3
	radius   float32
	log      *zap.Logger

	// Last applied external directions
	synced      bool
	lastForward math.Vec3
	lastUp      math.Vec3
	frames      uint64

	stop   func()
	closed bool
}

// New builds the cube, decorates it, creates the local camera and renders
// the first frame. Nothing is returned on error and any renderer created
// here is released.
func New(opts Options) (*Widget, error) {
	if opts.Region == nil {
		return nil, ErrNoRegion
	}
	width, height := opts.Region.Size()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyRegion, width, height)
	}
	if opts.Camera == nil {
		return nil, ErrNoCamera
	}
	if err := cube.ValidateChamfer(opts.Chamfer); err != nil {
		return nil, err
	}
	if opts.Palette == (cube.Palette{}) {
		opts.Palette = cube.DefaultPalette()
	}
	if opts.Radius <= 0 {
		opts.Radius = DefaultRadius
	}
	if opts.Home.Length() == 0 {
		opts.Home = DefaultHome
	}
	log := opts.Logger
	if log == nil {
		log = logger.Named("navcube")
	}

	cb, err := cube.Build(opts.Chamfer, opts.Palette)
	if err != nil {
		return nil, err
	}

	if opts.Decorator != nil {
		if err := label.Apply(opts.Decorator, cb); err != nil {
			log.Warn("face labels unavailable, using flat colors", zap.Error(err))
			if err := label.Apply(label.Flat{}, cb); err != nil {
				return nil, err
			}
		}
	}

	renderer := opts.Renderer
	if renderer == nil {
		renderer = NewSoftwareSurface(width, height)
	}

	pose := opts.Camera.Pose()
	w := &Widget{
		cam:      opts.Camera,
		renderer: renderer,
		scene:    NewScene(cb, width, height, opts.Radius, pose.Up),
		home:     opts.Home.Normalize(),
		radius:   opts.Radius,
		log:      log,
	}

	log.Info("navcube created",
		zap.Float32("chamfer", opts.Chamfer),
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Float32("radius", opts.Radius),
		zap.Int("facets", cb.Len()))

	w.Tick()
	return w, nil
}

// Scene returns the widget scene. Callers must not modify it while the
// widget is ticking.
func (w *Widget) Scene() *Scene {
	return w.scene
}

// Frames returns the number of frames rendered so far.
func (w *Widget) Frames() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.frames
}

// Start ticks the widget on s every interval until the returned stop
// function or Close is called. Starting again replaces the previous
// schedule.
func (w *Widget) Start(s Scheduler, interval time.Duration) (func(), error) {
	if interval <= 0 {
		interval = DefaultInterval
	}

	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil, ErrClosed
	}
	prev := w.stop
	w.stop = nil
	w.mu.Unlock()

	if prev != nil {
		prev()
	}

	cancel := s.Every(interval, func() { w.Tick() })
	var once sync.Once
	stop := func() { once.Do(cancel) }

	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		stop()
		return nil, ErrClosed
	}
	w.stop = stop
	w.mu.Unlock()
	return stop, nil
}

// Close stops ticking and releases the renderer. Later calls are no-ops.
func (w *Widget) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	stop := w.stop
	w.stop = nil
	w.mu.Unlock()

	// Waits for an in-flight tick, which sees closed and returns
	if stop != nil {
		stop()
	}

	w.log.Info("navcube closed", zap.Uint64("frames", w.Frames()))
	return w.renderer.Close()
}
