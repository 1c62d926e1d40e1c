package viewer

import (
	"fmt"
	gomath "math"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/navcube/internal/config"
	"github.com/Faultbox/navcube/internal/engine/camera"
	"github.com/Faultbox/navcube/internal/engine/debug"
	"github.com/Faultbox/navcube/internal/engine/input"
	"github.com/Faultbox/navcube/internal/engine/lighting"
	"github.com/Faultbox/navcube/internal/engine/model"
	"github.com/Faultbox/navcube/internal/engine/renderer"
	"github.com/Faultbox/navcube/internal/engine/window"
	"github.com/Faultbox/navcube/internal/logger"
	"github.com/Faultbox/navcube/internal/navcube"
	"github.com/Faultbox/navcube/pkg/math"
)

// Host view settings.
const (
	hostFov  = 45 // degrees
	hostNear = 0.1
	hostFar  = 1000

	// clickSlop is how far the pointer may travel between press and
	// release for the release to count as a click.
	clickSlop = 4
)

// Viewer is the interactive host: a window with an orbit camera around a
// stub model and the navigation cube in its top-right corner.
type Viewer struct {
	cfg *config.Config
	log *zap.Logger

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input

	orbit *camera.OrbitCamera
	model *renderer.Mesh
	rig   lighting.Rig

	widget  *navcube.Widget
	surface *GLSurface
	sched   *navcube.FrameScheduler
	shots   *debug.ScreenshotCapture

	// Window size in screen coordinates and the drawable scale factor
	width, height int
	scale         float32

	pressX, pressY int
	pressOnWidget  bool
	running        bool
}

// New opens the window and builds the scene. Close releases everything New
// acquired, even on a partial failure.
func New(cfg *config.Config) (_ *Viewer, err error) {
	v := &Viewer{
		cfg:   cfg,
		log:   logger.Named("viewer"),
		input: input.New(),
		rig:   lighting.DefaultRig(-45, 40),
		sched: navcube.NewFrameScheduler(),
		shots: debug.NewScreenshotCapture("screenshots", "navcube"),
	}
	defer func() {
		if err != nil {
			v.Close()
		}
	}()

	v.window, err = window.New(window.Config{
		Title:  cfg.Window.Title,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		VSync:  cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	v.measure()

	// Renderer needs the GL context the window created
	dw, dh := v.window.DrawableSize()
	v.renderer, err = renderer.New(renderer.Config{
		Width:      dw,
		Height:     dh,
		Background: cfg.Scene.Background.RGBA(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.orbit = camera.NewOrbitCamera()
	v.orbit.SetPose(math.Vec3From(cfg.Scene.CameraPos), math.Vec3{}, math.AxisZ)
	v.model = v.renderer.Upload(model.Box(1, 1, 2))

	px := int(float32(cfg.NavCube.Size) * v.scale)
	v.surface, err = NewGLSurface(v.renderer, px, px, v.log)
	if err != nil {
		return nil, fmt.Errorf("failed to create navcube surface: %w", err)
	}

	v.widget, err = NewWidget(cfg.NavCube, v.orbit, v.surface)
	if err != nil {
		v.surface.Close()
		return nil, err
	}
	if _, err = v.widget.Start(v.sched, navcube.DefaultInterval); err != nil {
		return nil, err
	}

	v.log.Info("viewer initialized",
		zap.Int("width", v.width),
		zap.Int("height", v.height),
		zap.Float32("scale", v.scale))
	return v, nil
}

// measure refreshes the window size and drawable scale.
func (v *Viewer) measure() {
	v.width, v.height = v.window.Size()
	dw, _ := v.window.DrawableSize()
	v.scale = 1
	if v.width > 0 {
		v.scale = float32(dw) / float32(v.width)
	}
}

// Run drives the event loop until the window closes or Escape is pressed.
func (v *Viewer) Run() error {
	v.running = true
	frameBudget := time.Second / time.Duration(v.cfg.Window.FPSLimit)

	frameCount := 0
	fpsTimer := time.Now()

	v.log.Info("starting render loop")
	for v.running {
		start := time.Now()

		if v.input.Update() {
			v.running = false
			break
		}
		for _, e := range v.input.Events() {
			v.handle(e)
		}

		// Widget ticks ride the frame so GL calls stay on this thread
		v.sched.Advance(start)
		v.render()
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			v.log.Debug("fps", zap.Int("count", frameCount), zap.Uint64("navcube_frames", v.widget.Frames()))
			frameCount = 0
			fpsTimer = time.Now()
		}

		if !v.cfg.Window.VSync {
			if rest := frameBudget - time.Since(start); rest > 0 {
				time.Sleep(rest)
			}
		}
	}
	return nil
}

func (v *Viewer) handle(e input.Event) {
	size := v.cfg.NavCube.Size
	rx, ry := widgetRect(v.width, size, v.cfg.NavCube.Margin)

	switch e.Type {
	case input.EventWindowResize:
		v.measure()
		dw, dh := v.window.DrawableSize()
		v.renderer.Resize(dw, dh)

	case input.EventKeyDown:
		switch e.Key {
		case sdl.SCANCODE_ESCAPE:
			v.running = false
		case sdl.SCANCODE_H:
			if _, err := v.widget.Home(); err != nil {
				v.log.Warn("home failed", zap.Error(err))
			}
		case sdl.SCANCODE_F12:
			v.screenshot()
		}

	case input.EventMouseDown:
		if e.Button == input.ButtonLeft {
			v.pressX, v.pressY = e.MouseX, e.MouseY
			v.pressOnWidget = inRect(e.MouseX, e.MouseY, rx, ry, size)
		}

	case input.EventMouseUp:
		if e.Button != input.ButtonLeft || !v.pressOnWidget {
			break
		}
		v.pressOnWidget = false
		dx, dy := e.MouseX-v.pressX, e.MouseY-v.pressY
		if dx*dx+dy*dy > clickSlop*clickSlop || !inRect(e.MouseX, e.MouseY, rx, ry, size) {
			break
		}
		if cmd, ok := v.widget.Click(float32(e.MouseX-rx), float32(e.MouseY-ry)); ok {
			v.log.Info("view changed", zap.Stringer("sides", cmd.Sides))
		}

	case input.EventMouseMove:
		if v.input.IsButtonDown(input.ButtonLeft) && !v.pressOnWidget {
			v.orbit.HandleDrag(float32(e.DX), float32(e.DY))
		}

	case input.EventMouseWheel:
		v.orbit.HandleZoom(float32(e.DY))
	}
}

func (v *Viewer) render() {
	v.renderer.Begin()

	aspect := float32(1)
	if v.height > 0 {
		aspect = float32(v.width) / float32(v.height)
	}
	proj := math.Perspective(hostFov*gomath.Pi/180, aspect, hostNear, hostFar)
	viewProj := proj.Mul(v.orbit.ViewMatrix())
	v.renderer.DrawMesh(v.model, viewProj, renderer.Material{
		Color: v.cfg.Scene.ModelColor.RGBA(),
		Lit:   true,
	}, v.rig)

	size := v.cfg.NavCube.Size
	rx, ry := widgetRect(v.width, size, v.cfg.NavCube.Margin)
	s := v.scale
	v.renderer.DrawOverlay(v.surface.Texture(),
		int(float32(rx)*s), int(float32(ry)*s), int(float32(size)*s), int(float32(size)*s))
}

// screenshot saves the current widget frame.
func (v *Viewer) screenshot() {
	path, err := v.shots.Capture(v.surface.Image())
	if err != nil {
		v.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases the widget, GPU resources and the window.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")
	if v.widget != nil {
		if err := v.widget.Close(); err != nil {
			v.log.Warn("closing navcube", zap.Error(err))
		}
	}
	if v.renderer != nil {
		if v.model != nil {
			v.renderer.DeleteMesh(v.model)
		}
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
