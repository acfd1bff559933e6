// fillstorm regenerates thousands of translucent color fills and a few
// hundred textured tiles on every logic tick while the draw loop flushes
// them at a capped rate. A stress test for the queue and draw path.
//
// Run with -thumbnail to capture one frame into docs/demos/fillstorm and
// exit.
package main

import (
	"flag"
	"image"
	"image/color"
	"log"
	"math"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/easel"
)

const (
	screenW  = 1280
	screenH  = 720
	fills    = 5_000
	tiles    = 500
	tileSize = 16
)

type particle struct {
	pos, vel easel.Vec2
	size     float64
	color    easel.Color
	phase    float64
	speed    float64
	tile     bool
}

type storm struct {
	parts []particle
	tex   image.Image
	items []easel.Renderable
	t     float64
}

// checker builds a small two-tone tile.
func checker() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, tileSize, tileSize))
	a := color.NRGBA{R: 255, G: 200, B: 80, A: 255}
	b := color.NRGBA{R: 120, G: 60, B: 200, A: 255}
	for y := 0; y < tileSize; y++ {
		for x := 0; x < tileSize; x++ {
			if (x/4+y/4)%2 == 0 {
				img.SetNRGBA(x, y, a)
			} else {
				img.SetNRGBA(x, y, b)
			}
		}
	}
	return img
}

func newStorm() *storm {
	s := &storm{
		parts: make([]particle, fills+tiles),
		tex:   ebiten.NewImageFromImage(checker()),
		items: make([]easel.Renderable, 0, fills+tiles+1),
	}
	for i := range s.parts {
		p := &s.parts[i]
		p.pos = easel.Vec2{X: rand.Float64() * screenW, Y: rand.Float64() * screenH}
		p.vel = easel.Vec2{X: (rand.Float64() - 0.5) * 240, Y: (rand.Float64() - 0.5) * 240}
		p.size = 4 + rand.Float64()*12
		p.color = easel.Color{R: 0.5 + rand.Float64()*0.5, G: 0.5 + rand.Float64()*0.5, B: 0.5 + rand.Float64()*0.5, A: 1}
		p.phase = rand.Float64() * math.Pi * 2
		p.speed = 0.5 + rand.Float64()*2
		p.tile = i >= fills
	}
	return s
}

func (s *storm) Update(dt time.Duration) error {
	sec := dt.Seconds()
	s.t += sec
	for i := range s.parts {
		p := &s.parts[i]
		p.pos.X += p.vel.X * sec
		p.pos.Y += p.vel.Y * sec
		if p.pos.X < 0 || p.pos.X+p.size > screenW {
			p.vel.X = -p.vel.X
		}
		if p.pos.Y < 0 || p.pos.Y+p.size > screenH {
			p.vel.Y = -p.vel.Y
		}
		p.color.A = 0.5 + 0.5*math.Sin(s.t*p.speed+p.phase)
	}
	return nil
}

func (s *storm) Renderables(w, h int) []easel.Renderable {
	s.items = s.items[:0]
	s.items = append(s.items, easel.ColorFill{
		Fill:   easel.Color{R: 0.06, G: 0.06, B: 0.09, A: 1},
		Extent: easel.Vec2{X: float64(w), Y: float64(h)},
	})
	for i := range s.parts {
		p := &s.parts[i]
		ext := easel.Vec2{X: p.size, Y: p.size}
		if p.tile {
			s.items = append(s.items, easel.Texture{Image: s.tex, Origin: p.pos, Extent: ext})
			continue
		}
		s.items = append(s.items, easel.ColorFill{Fill: p.color, Origin: p.pos, Extent: ext})
	}
	return s.items
}

func main() {
	thumbnail := flag.Bool("thumbnail", false, "capture one frame and exit")
	flag.Parse()

	s := newStorm()
	var frame int
	var host *easel.Host
	scene := easel.SceneFuncs{
		UpdateFunc: func(dt time.Duration) error {
			frame++
			if *thumbnail {
				if frame == 30 {
					host.Screenshot("thumbnail")
				}
				if frame == 32 {
					return ebiten.Termination
				}
			}
			return s.Update(dt)
		},
		RenderFunc: s.Renderables,
	}

	host, err := easel.NewHost(scene, easel.RunConfig{
		Title:         "Easel - Fill Storm",
		Width:         screenW,
		Height:        screenH,
		MaxFPS:        60,
		ShowFPS:       true,
		ScreenshotDir: "docs/demos/fillstorm",
	})
	if err != nil {
		log.Fatal(err)
	}
	if err := easel.RunHost(host); err != nil {
		log.Fatal(err)
	}
}
