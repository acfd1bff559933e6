package easel

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields simultaneously. Scenes create
// one per animated property set and call Update from their logic tick; the
// group writes the interpolated values straight into the fields.
//
// There is no global animation manager. Scenes call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	fields [4]*float64
	count  int
	Done   bool
}

// NewTweenGroup creates a group moving each *fields[i] from its current
// value to to[i] over duration with the easing function fn. Extra fields
// beyond 4, or beyond len(to), are ignored.
func NewTweenGroup(fields []*float64, to []float64, duration time.Duration, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{}
	for i := 0; i < len(fields) && i < len(to) && i < len(g.tweens); i++ {
		g.tweens[i] = gween.New(float32(*fields[i]), float32(to[i]), float32(duration.Seconds()), fn)
		g.fields[i] = fields[i]
		g.count++
	}
	g.Done = g.count == 0
	return g
}

// TweenVec2 animates both components of v to the target.
func TweenVec2(v *Vec2, to Vec2, duration time.Duration, fn ease.TweenFunc) *TweenGroup {
	return NewTweenGroup([]*float64{&v.X, &v.Y}, []float64{to.X, to.Y}, duration, fn)
}

// TweenColor animates all four components of c to the target.
func TweenColor(c *Color, to Color, duration time.Duration, fn ease.TweenFunc) *TweenGroup {
	return NewTweenGroup(
		[]*float64{&c.R, &c.G, &c.B, &c.A},
		[]float64{to.R, to.G, to.B, to.A},
		duration, fn,
	)
}

// Update advances all tweens by dt and writes the values to the fields.
func (g *TweenGroup) Update(dt time.Duration) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(float32(dt.Seconds()))
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}
