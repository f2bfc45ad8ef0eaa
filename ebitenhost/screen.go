package ebitenhost

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rs/zerolog"

	"github.com/phanxgames/minimap"
)

// Screen is an ebiten.Game that hosts a single overlay. It owns the Canvas
// the overlay draws to and the Pointer that feeds it, and reports the world
// size to the overlay as its minimap.Host.
//
// Build the overlay with the screen as both renderer and host, then attach:
//
//	scr := ebitenhost.NewScreen(1280, 720, world)
//	ov := minimap.New(size, minimap.Config{Renderer: scr.Canvas, Host: scr})
//	scr.Attach(ov)
//	ebiten.RunGame(scr)
type Screen struct {
	Canvas  *Canvas
	Pointer *Pointer
	Overlay *minimap.Overlay

	// World is the scene size reported through SceneSize.
	World minimap.Size

	// OnUpdate runs game logic after pointer input. consumed reports whether
	// the overlay took this frame's pointer events.
	OnUpdate func(consumed bool) error
	// OnDraw draws the game world beneath the overlay.
	OnDraw func(dst *ebiten.Image)

	// ShowStats prints FPS and the current gesture in the top-left corner.
	ShowStats bool
	// ScreenshotDir is where scripted screenshots are written.
	ScreenshotDir string

	// Log receives screenshot failures and script progress.
	Log zerolog.Logger

	width, height int
	background    color.Color
	script        *Script
	shots         []string
}

// NewScreen creates a screen with a logical size of width x height.
func NewScreen(width, height int, world minimap.Size) *Screen {
	return &Screen{
		Canvas:        NewCanvas(),
		World:         world,
		ScreenshotDir: "screenshots",
		Log:           zerolog.Nop(),
		width:         width,
		height:        height,
		background:    color.RGBA{R: 24, G: 28, B: 36, A: 255},
	}
}

// Attach sets the overlay and creates its Pointer.
func (s *Screen) Attach(o *minimap.Overlay) {
	s.Overlay = o
	s.Pointer = NewPointer(o)
}

// SceneSize implements minimap.Host.
func (s *Screen) SceneSize() minimap.Size { return s.World }

// SetBackground sets the clear color drawn before OnDraw.
func (s *Screen) SetBackground(c color.Color) { s.background = c }

// RunScript replays sc from the next frame on.
func (s *Screen) RunScript(sc *Script) { s.script = sc }

// ScriptDone reports whether the attached script, if any, has finished.
func (s *Screen) ScriptDone() bool {
	return s.script == nil || s.script.Done()
}

// Screenshot queues a labeled capture of the next drawn frame. The PNG is
// written to ScreenshotDir with a timestamped name.
func (s *Screen) Screenshot(label string) {
	s.shots = append(s.shots, label)
}

// Update implements ebiten.Game.
func (s *Screen) Update() error {
	if s.script != nil && s.Pointer != nil {
		s.script.step(s.Pointer, s.Screenshot)
		if s.script.Done() {
			s.Log.Debug().Msg("input script finished")
			s.script = nil
		}
	}
	consumed := false
	if s.Pointer != nil {
		s.Pointer.Update()
		consumed = s.Pointer.Consumed()
	}
	if s.Overlay != nil {
		s.Overlay.Update(1 / float32(ebiten.TPS()))
	}
	if s.OnUpdate != nil {
		return s.OnUpdate(consumed)
	}
	return nil
}

// Draw implements ebiten.Game.
func (s *Screen) Draw(screen *ebiten.Image) {
	if s.background != nil {
		screen.Fill(s.background)
	}
	if s.OnDraw != nil {
		s.OnDraw(screen)
	}
	s.Canvas.Draw(screen)
	if s.ShowStats {
		gesture := minimap.GestureIdle
		if s.Overlay != nil {
			gesture = s.Overlay.Gesture()
		}
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\ngesture: %s", ebiten.ActualFPS(), gesture))
	}
	s.flushScreenshots(screen)
}

// Layout implements ebiten.Game.
func (s *Screen) Layout(_, _ int) (int, int) {
	return s.width, s.height
}

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title string

	// Width and Height are the window size. Zero uses the screen's
	// logical size.
	Width, Height int

	// ShowFPS prints FPS and the current gesture in the top-left corner.
	ShowFPS bool

	// Resizable lets the user resize the window; the logical size stays fixed.
	Resizable bool
}

// Run opens a window and runs s until it is closed or Update returns an
// error.
func Run(s *Screen, cfg RunConfig) error {
	w, h := cfg.Width, cfg.Height
	if w <= 0 || h <= 0 {
		w, h = s.width, s.height
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(w, h)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	s.ShowStats = s.ShowStats || cfg.ShowFPS
	return ebiten.RunGame(s)
}

// flushScreenshots captures the rendered frame for every queued label.
func (s *Screen) flushScreenshots(screen *ebiten.Image) {
	if len(s.shots) == 0 {
		return
	}
	defer func() { s.shots = s.shots[:0] }()

	if err := os.MkdirAll(s.ScreenshotDir, 0o755); err != nil {
		s.Log.Error().Err(err).Str("dir", s.ScreenshotDir).Msg("screenshot")
		return
	}

	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	screen.ReadPixels(pixels)
	img := unpremultiply(pixels, w, h)

	stamp := time.Now().Format("20060102_150405")
	for _, label := range s.shots {
		path := filepath.Join(s.ScreenshotDir, stamp+"_"+sanitizeLabel(label)+".png")
		if err := writePNG(path, img); err != nil {
			s.Log.Error().Err(err).Msg("screenshot")
			continue
		}
		s.Log.Info().Str("path", path).Msg("screenshot written")
	}
}

// unpremultiply converts premultiplied RGBA pixels to straight alpha.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores; an empty label becomes "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
