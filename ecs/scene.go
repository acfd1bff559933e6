package ecs

import (
	"fmt"
	"sort"
	"time"

	"github.com/phanxgames/easel"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// DrawableData holds the renderable an entity contributes to each frame.
type DrawableData struct {
	Item easel.Renderable
}

// DrawOrderData sorts drawables. Lower layers draw first; within a layer,
// entities spawned earlier draw first.
type DrawOrderData struct {
	Layer int
	seq   uint64
}

var (
	// Drawable marks an entity as rendered.
	Drawable = donburi.NewComponentType[DrawableData]()
	// DrawOrder places a drawable in the frame.
	DrawOrder = donburi.NewComponentType[DrawOrderData]()
)

// FrameEvent describes the last frame the scene produced. It is published
// from Renderables and delivered before the systems of the next Update.
type FrameEvent struct {
	Width, Height int
	Items         int
}

// FrameEventType is the Donburi event type for FrameEvent.
var FrameEventType = events.NewEventType[FrameEvent]()

// System advances world state by dt.
type System func(world donburi.World, dt time.Duration) error

// Scene is an easel.Scene backed by a Donburi world.
type Scene struct {
	world   donburi.World
	systems []System
	query   *donburi.Query
	seq     uint64

	buf []sortable
}

type sortable struct {
	item  easel.Renderable
	layer int
	seq   uint64
}

// NewScene creates a scene over world.
func NewScene(world donburi.World) *Scene {
	return &Scene{
		world: world,
		query: donburi.NewQuery(filter.Contains(Drawable)),
	}
}

// World returns the scene's world.
func (s *Scene) World() donburi.World { return s.world }

// AddSystem appends a system. Systems run in the order they were added.
func (s *Scene) AddSystem(sys System) {
	s.systems = append(s.systems, sys)
}

// Spawn creates an entity drawing item on layer.
func (s *Scene) Spawn(item easel.Renderable, layer int) donburi.Entity {
	e := s.world.Create(Drawable, DrawOrder)
	entry := s.world.Entry(e)
	Drawable.SetValue(entry, DrawableData{Item: item})
	s.seq++
	DrawOrder.SetValue(entry, DrawOrderData{Layer: layer, seq: s.seq})
	return e
}

// Update delivers pending frame events and runs the systems.
func (s *Scene) Update(dt time.Duration) error {
	FrameEventType.ProcessEvents(s.world)
	for i, sys := range s.systems {
		if err := sys(s.world, dt); err != nil {
			return fmt.Errorf("ecs: system %d: %w", i, err)
		}
	}
	return nil
}

// Renderables collects every drawable in draw order. Entities without a
// DrawOrder sit on layer 0 and draw before spawned entities of that layer.
func (s *Scene) Renderables(width, height int) []easel.Renderable {
	s.buf = s.buf[:0]
	s.query.Each(s.world, func(entry *donburi.Entry) {
		d := Drawable.Get(entry)
		if d.Item == nil {
			return
		}
		st := sortable{item: d.Item}
		if entry.HasComponent(DrawOrder) {
			o := DrawOrder.Get(entry)
			st.layer, st.seq = o.Layer, o.seq
		}
		s.buf = append(s.buf, st)
	})
	sort.SliceStable(s.buf, func(i, j int) bool {
		if s.buf[i].layer != s.buf[j].layer {
			return s.buf[i].layer < s.buf[j].layer
		}
		return s.buf[i].seq < s.buf[j].seq
	})

	items := make([]easel.Renderable, len(s.buf))
	for i, st := range s.buf {
		items[i] = st.item
	}
	FrameEventType.Publish(s.world, FrameEvent{Width: width, Height: height, Items: len(items)})
	return items
}
