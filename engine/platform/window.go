package platform

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/spaghettifunk/prisma/engine/assets"
	"github.com/spaghettifunk/prisma/engine/canvas"
	"github.com/spaghettifunk/prisma/engine/core"
	"github.com/spaghettifunk/prisma/engine/scene"
)

// Window presents a scene's software framebuffer on screen. It implements
// ebiten.Game: every tick it drains pending asset reloads, runs the
// caller's frame hook, renders the scene and blits the canvas pixels.
type Window struct {
	title   string
	scene   *scene.Scene
	image   *canvas.Image
	clock   *core.Clock
	metrics *core.Metrics
	last    float64

	// Assets, when set, has its reload queue drained between frames.
	Assets *assets.Manager
	// OnFrame runs before the scene renders; delta is seconds since the
	// previous frame.
	OnFrame func(delta float64) error
	// HUD runs after the scene renders, with the frame stats, to draw
	// overlays directly on the framebuffer.
	HUD func(img *canvas.Image, fps, frameMS float64)
}

// NewWindow wraps a scene for presentation. The scene must paint on a
// *canvas.Image; any other surface has no pixels to present.
func NewWindow(title string, s *scene.Scene) (*Window, error) {
	img, ok := s.Surface().(*canvas.Image)
	if !ok {
		return nil, errors.New("platform: scene surface is not a software image")
	}
	return &Window{
		title:   title,
		scene:   s,
		image:   img,
		clock:   core.NewClock(),
		metrics: core.NewMetrics(),
	}, nil
}

func (w *Window) Update() error {
	if w.clock == nil {
		return errors.New("platform: window not initialized")
	}
	w.clock.Update()
	elapsed := w.clock.Elapsed()
	delta := elapsed - w.last
	w.last = elapsed

	if w.Assets != nil {
		w.Assets.Drain()
	}
	if w.OnFrame != nil {
		if err := w.OnFrame(delta); err != nil {
			return err
		}
	}
	if err := w.scene.Render(); err != nil {
		return err
	}

	w.metrics.Update(delta)
	if w.HUD != nil {
		fps, frameMS := w.metrics.Frame()
		w.HUD(w.image, fps, frameMS)
	}
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	screen.WritePixels(w.image.Pix())
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.image.Size()
}

// Run opens the window and blocks until it is closed or a frame fails.
func (w *Window) Run() error {
	width, height := w.image.Size()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(w.title)
	w.clock.Start()
	core.LogInfo("presenting %dx%d frames", width, height)
	return ebiten.RunGame(w)
}
