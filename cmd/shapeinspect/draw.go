package main

import (
	"github.com/gogpu/shapes"
	"github.com/gogpu/shapes/world"
)

// paint draws s through a Painter into a fresh queue.
func paint(s *Scene) *shapes.Queue {
	q := shapes.NewQueue()
	p := shapes.NewPainter(q)
	for _, it := range s.items {
		*p.Config() = it.cfg
		switch it.kind {
		case "rect":
			p.Rect(it.size)
		case "line":
			p.Line(it.start, it.end)
		case "circle":
			p.Circle(it.radius)
		case "arc":
			p.Arc(it.radius, it.startAngle, it.endAngle)
		case "polyline":
			p.Polyline(it.strip)
		}
	}
	return q
}

// spawn spawns s into a world and extracts one frame from it.
func spawn(s *Scene) (*shapes.Queue, *world.World) {
	w := world.New()
	sp := shapes.NewSpawner(w)
	for _, it := range s.items {
		*sp.Config() = it.cfg
		switch it.kind {
		case "rect":
			sp.Rect(it.size)
		case "line":
			sp.Line(it.start, it.end)
		case "circle":
			sp.Circle(it.radius)
		case "arc":
			sp.Arc(it.radius, it.startAngle, it.endAngle)
		case "polyline":
			sp.Polyline(it.strip)
		}
	}
	q := shapes.NewQueue()
	w.Extract(q)
	return q, w
}
