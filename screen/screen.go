// Package screen hosts an arbor graph in an ebiten window. The Host polls
// mouse, wheel and touch input into the graph's surface every tick and
// draws the surface tree with ebiten's vector package.
//
// Usage:
//
//	g, _ := arbor.New(arbor.DefaultOptions())
//	g.AddNode("rect", arbor.Rect{X: 40, Y: 40, Width: 120, Height: 60}, "hello")
//	if err := screen.Run(g, screen.Config{Title: "arbor"}); err != nil {
//		log.Fatal(err)
//	}
package screen

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/arbor"
)

// Config configures the window.
type Config struct {
	Title string
	// Width and Height default to the graph's canvas size.
	Width, Height int
	// Background is the clear color; empty means white.
	Background string
	ShowFPS    bool
	// Script, if set, is replayed as input.
	Script *Script
}

// Host is an ebiten.Game driving one graph.
type Host struct {
	graph *arbor.Graph
	cfg   Config
	clear color.RGBA

	mouse mouseTracker
	touch touchTracker

	injectQueue []syntheticFrame
	script      *Script

	fpsImage  *ebiten.Image
	fpsUpdate float64
}

// New creates a host for g.
func New(g *arbor.Graph, cfg Config) *Host {
	c := g.Canvas()
	if cfg.Width <= 0 {
		cfg.Width = int(c.Width)
	}
	if cfg.Height <= 0 {
		cfg.Height = int(c.Height)
	}
	c.Width, c.Height = float64(cfg.Width), float64(cfg.Height)
	c.SetOrigin(0, 0)

	clear, ok := parseColor(cfg.Background)
	if !ok {
		clear = color.RGBA{0xff, 0xff, 0xff, 0xff}
	}
	return &Host{graph: g, cfg: cfg, clear: clear, script: cfg.Script}
}

// Update runs the attached script, polls input and advances graph
// animations.
func (h *Host) Update() error {
	if h.script != nil {
		h.script.step(h)
	}
	h.pollInput(h.graph.Surface())
	dt := 1.0 / float64(ebiten.TPS())
	h.graph.Update(float32(dt))
	if h.cfg.ShowFPS {
		h.updateFPS(dt)
	}
	return nil
}

// Draw paints the graph.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(h.clear)
	drawSurface(screen, h.graph)
	if h.cfg.ShowFPS && h.fpsImage != nil {
		screen.DrawImage(h.fpsImage, nil)
	}
}

// Layout keeps a fixed logical size.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	return h.cfg.Width, h.cfg.Height
}

// updateFPS refreshes the FPS/TPS overlay every ~0.5 seconds.
func (h *Host) updateFPS(dt float64) {
	if h.fpsImage == nil {
		// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
		h.fpsImage = ebiten.NewImage(100, 32)
		h.fpsUpdate = 0.5
	}
	h.fpsUpdate += dt
	if h.fpsUpdate < 0.5 {
		return
	}
	h.fpsUpdate = 0
	h.fpsImage.Clear()
	h.fpsImage.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(h.fpsImage, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

// Run opens a window and runs g until it is closed.
func Run(g *arbor.Graph, cfg Config) error {
	h := New(g, cfg)
	ebiten.SetWindowSize(h.cfg.Width, h.cfg.Height)
	if h.cfg.Title != "" {
		ebiten.SetWindowTitle(h.cfg.Title)
	}
	if err := ebiten.RunGame(h); err != nil {
		return fmt.Errorf("run graph window: %w", err)
	}
	return nil
}
