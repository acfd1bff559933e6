// Package easel is a two-loop 2D rendering pipeline for [Ebitengine] and
// other drawing surfaces.
//
// A scene regenerates a complete, ordered list of [Renderable] values on a
// logic loop that runs at display rate. The list is handed to a [Renderer]
// queue. A separate draw loop, capped at the renderer's maximum frame rate,
// drains the queue and rasterizes each item onto a [Surface] in submission
// order. The two loops never wait on each other; the queue is the only
// thing they share.
//
// # Quick start
//
// [Run] opens a window and drives both loops from ebiten's callbacks:
//
//	scene := easel.SceneFuncs{
//		RenderFunc: func(w, h int) []easel.Renderable {
//			return []easel.Renderable{
//				easel.ColorFill{Fill: easel.MustParseColor("#7e7e7e"), Extent: easel.Vec2{X: float64(w), Y: float64(h)}},
//				easel.Text{Color: easel.MustParseColor("red"), Font: easel.MustParseFont("20px Arial"), Origin: easel.Vec2{X: 20, Y: 40}, Content: "hello"},
//			}
//		},
//	}
//	easel.Run(scene, easel.RunConfig{Title: "hello", Width: 640, Height: 480})
//
// Without a window, build a [Renderer] over any surface and compose it with
// a [Game], which supervises a logic [Loop] and a draw [Loop] on a [Clock]:
//
//	surface := easel.NewSoftwareSurface(640, 480)
//	r, _ := easel.NewRenderer(surface, 30)
//	g, _ := easel.NewGame(r, scene, easel.GameConfig{})
//	g.Run(ctx)
//
// # Renderables
//
// There are three kinds: [ColorFill] fills a rectangle, [Text] draws a
// single line at a baseline origin, and [Texture] draws an image scaled to a
// rectangle. Colors and fonts use CSS-style strings, see [ParseColor] and
// [ParseFont].
//
// # Surfaces
//
// [ImageSurface] draws on an ebiten image, [SoftwareSurface] rasterizes on
// the CPU with [gg], and [TerminalSurface] treats [tcell] cells as pixels.
//
// # Testing and scripted runs
//
// [ManualClock] makes loop timing deterministic. [Headless] steps a game in
// simulated time on a software surface, and [Script] drives it from JSON to
// capture frames.
//
// [Ebitengine]: https://ebitengine.org
// [gg]: https://github.com/gogpu/gg
// [tcell]: https://github.com/gdamore/tcell
package easel
