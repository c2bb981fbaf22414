// Package world is a small entity store that hosts persistent shapes.
//
// A World implements [shapes.Commands], so a [shapes.Spawner] can spawn into
// it directly. Entities are generational handles: a despawned handle never
// aliases an entity spawned later in the same slot. Each frame, Extract
// expands every live shape into a [shapes.Queue] in spawn order, resolving
// parent transforms first.
//
//	w := world.New()
//	s := shapes.NewSpawner(w)
//	body := s.Rect(mgl32.Vec2{2, 1})
//	s.Translate(mgl32.Vec3{0, 1, 0})
//	flag := s.Polyline(points)
//	_ = w.SetParent(flag.ID, body.ID)
//
//	q := shapes.NewQueue()
//	w.Extract(q)
//
// A World is not safe for concurrent use.
package world
