package world

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/shapes"
)

var (
	// ErrNoEntity is returned when a handle does not name a live entity.
	ErrNoEntity = errors.New("world: no such entity")

	// ErrCycle is returned when a parent link would make an entity its own
	// ancestor.
	ErrCycle = errors.New("world: parent cycle")
)

// World owns persistent shapes and their parent links.
type World struct {
	entities entityStore

	// order holds live entities in spawn order.
	order []shapes.Entity

	// Per-frame world matrix cache, indexed by slot id - 1.
	frame  uint64
	stamps []uint64
	mats   []mgl32.Mat4
}

// New creates an empty world.
func New() *World {
	return &World{}
}

// Spawn implements shapes.Commands.
func (w *World) Spawn(s shapes.Shape) shapes.Entity {
	e := w.entities.create(s)
	w.order = append(w.order, e)
	return e
}

// Despawn removes e. Children of e become roots. It reports whether e was
// live; stale and unknown handles are ignored.
func (w *World) Despawn(e shapes.Entity) bool {
	if !w.entities.destroy(e) {
		return false
	}
	if i := slices.Index(w.order, e); i >= 0 {
		w.order = slices.Delete(w.order, i, i+1)
	}
	for _, c := range w.order {
		if sl, _ := w.entities.lookup(c); sl.parent == e {
			sl.parent = 0
		}
	}
	shapes.Logger().Debug("world: despawned", "entity", uint64(e), "live", len(w.order))
	return true
}

// Alive reports whether e names a live entity.
func (w *World) Alive(e shapes.Entity) bool {
	_, ok := w.entities.lookup(e)
	return ok
}

// Get returns the shape of e.
func (w *World) Get(e shapes.Entity) (shapes.Shape, bool) {
	sl, ok := w.entities.lookup(e)
	if !ok {
		return nil, false
	}
	return sl.shape, true
}

// GetAs returns the shape of e as type S, typically a *shapes.Bundle
// alias such as *shapes.PolylineBundle.
func GetAs[S shapes.Shape](w *World, e shapes.Entity) (S, bool) {
	s, ok := w.Get(e)
	if !ok {
		var zero S
		return zero, false
	}
	typed, ok := s.(S)
	return typed, ok
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return len(w.order)
}

// Entities yields the live entities in spawn order. The world must not be
// modified during iteration.
func (w *World) Entities() iter.Seq[shapes.Entity] {
	return slices.Values(w.order)
}

// SetParent makes child's transform relative to parent. A zero parent makes
// child a root again.
func (w *World) SetParent(child, parent shapes.Entity) error {
	sl, ok := w.entities.lookup(child)
	if !ok {
		return fmt.Errorf("world: set parent of %d: %w", uint64(child), ErrNoEntity)
	}
	if parent == 0 {
		sl.parent = 0
		return nil
	}
	for p := parent; p != 0; {
		if p == child {
			return fmt.Errorf("world: set parent of %d to %d: %w", uint64(child), uint64(parent), ErrCycle)
		}
		psl, ok := w.entities.lookup(p)
		if !ok {
			return fmt.Errorf("world: set parent of %d to %d: %w", uint64(child), uint64(p), ErrNoEntity)
		}
		p = psl.parent
	}
	sl.parent = parent
	return nil
}

// Parent returns the parent of e, or false when e is a root or not live.
func (w *World) Parent(e shapes.Entity) (shapes.Entity, bool) {
	sl, ok := w.entities.lookup(e)
	if !ok || sl.parent == 0 {
		return 0, false
	}
	return sl.parent, true
}

// WorldMatrix returns the matrix that places e in the world: the product of
// every ancestor's local matrix and its own.
func (w *World) WorldMatrix(e shapes.Entity) (mgl32.Mat4, bool) {
	sl, ok := w.entities.lookup(e)
	if !ok {
		return mgl32.Mat4{}, false
	}
	m := sl.shape.Local()
	for p := sl.parent; p != 0; {
		psl, _ := w.entities.lookup(p)
		m = psl.shape.Local().Mul4(m)
		p = psl.parent
	}
	return m, true
}

// Extract expands every live shape into q, in spawn order. Each shape
// receives the world matrix of its parent, or the identity for roots.
func (w *World) Extract(q *shapes.Queue) {
	w.frame++
	if n := len(w.entities.slots); len(w.mats) < n {
		w.mats = slices.Grow(w.mats[:0], n)[:n]
		w.stamps = slices.Grow(w.stamps[:0], n)[:n]
		clear(w.stamps)
	}
	for _, e := range w.order {
		sl, _ := w.entities.lookup(e)
		parent := mgl32.Ident4()
		if sl.parent != 0 {
			parent = w.cachedWorld(sl.parent)
		}
		sl.shape.Extract(q, parent)
	}
}

func (w *World) cachedWorld(e shapes.Entity) mgl32.Mat4 {
	i := entityID(e) - 1
	if w.stamps[i] == w.frame {
		return w.mats[i]
	}
	sl, _ := w.entities.lookup(e)
	m := sl.shape.Local()
	if sl.parent != 0 {
		m = w.cachedWorld(sl.parent).Mul4(m)
	}
	w.mats[i] = m
	w.stamps[i] = w.frame
	return m
}
