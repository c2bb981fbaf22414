package shapes

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Batch holds the records of one kind in submission order.
type Batch[D ShapeData] struct {
	records []D
}

// Records returns the queued records. The slice is valid until the next
// Send or Reset on the owning queue.
func (b *Batch[D]) Records() []D { return b.records }

// Len returns the number of queued records.
func (b *Batch[D]) Len() int { return len(b.records) }

func (b *Batch[D]) size() int { return len(b.records) }

func (b *Batch[D]) encode(dst []byte) []byte { return Encode(dst, b.records) }

func (b *Batch[D]) reset() { b.records = b.records[:0] }

// anyBatch is the type-erased view of a Batch used by the queue.
type anyBatch interface {
	size() int
	encode(dst []byte) []byte
	reset()
}

// Queue collects the records of one frame, one batch per kind.
//
// A Queue is owned by the render submission stage and is not safe for
// concurrent use. Each Send appends one complete record.
type Queue struct {
	batches map[Kind]anyBatch
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{batches: make(map[Kind]anyBatch)}
}

// Send appends one record to the batch of its kind.
func Send[D ShapeData](q *Queue, d D) {
	b := BatchOf[D](q)
	b.records = append(b.records, d)
}

// SendAll drains seq into the batch of kind D, preserving order.
func SendAll[D ShapeData](q *Queue, seq iter.Seq[D]) {
	b := BatchOf[D](q)
	for d := range seq {
		b.records = append(b.records, d)
	}
}

// BatchOf returns the batch for records of type D, creating it on first use.
// Two record types reporting the same Kind is a programming error and panics.
func BatchOf[D ShapeData](q *Queue) *Batch[D] {
	var zero D
	k := zero.Kind()
	if b, ok := q.batches[k]; ok {
		tb, ok := b.(*Batch[D])
		if !ok {
			panic(fmt.Sprintf("shapes: kind %s is used by both %T and %T", k, b, tb))
		}
		return tb
	}
	tb := &Batch[D]{}
	q.batches[k] = tb
	return tb
}

// Kinds returns the kinds with at least one queued record, ascending.
func (q *Queue) Kinds() []Kind {
	kinds := slices.Sorted(maps.Keys(q.batches))
	return slices.DeleteFunc(kinds, func(k Kind) bool {
		return q.batches[k].size() == 0
	})
}

// Len returns the number of queued records of kind k.
func (q *Queue) Len(k Kind) int {
	if b, ok := q.batches[k]; ok {
		return b.size()
	}
	return 0
}

// Total returns the number of queued records of every kind.
func (q *Queue) Total() int {
	n := 0
	for _, b := range q.batches {
		n += b.size()
	}
	return n
}

// Encode appends the bytes of every queued record of kind k to dst.
func (q *Queue) Encode(k Kind, dst []byte) []byte {
	if b, ok := q.batches[k]; ok {
		return b.encode(dst)
	}
	return dst
}

// Reset empties every batch, keeping allocated capacity for the next frame.
func (q *Queue) Reset() {
	for _, b := range q.batches {
		b.reset()
	}
}
