// Package ecs drives an easel pipeline from a [Donburi] world.
//
// Entities carrying a [Drawable] component become renderables; an optional
// [DrawOrder] component sorts them. Systems registered with
// [Scene.AddSystem] run once per logic tick.
//
// Usage:
//
//	world := donburi.NewWorld()
//	scene := ecs.NewScene(world)
//	scene.Spawn(easel.ColorFill{...}, 0)
//	scene.AddSystem(moveSystem)
//	easel.Run(scene, easel.RunConfig{})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
