package world

import "github.com/gogpu/shapes"

// Handles pack a generation in the high 32 bits and a slot id in the low 32
// bits. Slot ids start at 1 so the zero handle is never valid.
const idBits = 32

func makeEntity(id, gen uint32) shapes.Entity {
	return shapes.Entity(uint64(gen)<<idBits | uint64(id))
}

func entityID(e shapes.Entity) uint32 {
	return uint32(e)
}

func entityGen(e shapes.Entity) uint32 {
	return uint32(uint64(e) >> idBits)
}

// slot is the storage of one entity id across its generations.
type slot struct {
	gen    uint32
	alive  bool
	shape  shapes.Shape
	parent shapes.Entity
}

// entityStore tracks entity generations and free ids.
type entityStore struct {
	slots []slot
	free  []uint32
}

func (s *entityStore) create(shape shapes.Shape) shapes.Entity {
	var id uint32
	if n := len(s.free); n > 0 {
		id = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.slots = append(s.slots, slot{})
		id = uint32(len(s.slots))
	}
	sl := &s.slots[id-1]
	sl.alive = true
	sl.shape = shape
	sl.parent = 0
	return makeEntity(id, sl.gen)
}

// lookup returns the slot of e when e is live.
func (s *entityStore) lookup(e shapes.Entity) (*slot, bool) {
	id := entityID(e)
	if id == 0 || int(id) > len(s.slots) {
		return nil, false
	}
	sl := &s.slots[id-1]
	if !sl.alive || sl.gen != entityGen(e) {
		return nil, false
	}
	return sl, true
}

func (s *entityStore) destroy(e shapes.Entity) bool {
	sl, ok := s.lookup(e)
	if !ok {
		return false
	}
	sl.gen++
	sl.alive = false
	sl.shape = nil
	sl.parent = 0
	s.free = append(s.free, entityID(e))
	return true
}
