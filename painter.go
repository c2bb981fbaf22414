package shapes

// Painter draws immediate-mode shapes: every call encodes records from the
// current config and sends them straight to the queue. Nothing outlives the
// frame.
//
// The embedded ShapeConfig is the style context; mutate it between calls:
//
//	p := shapes.NewPainter(q)
//	p.Color = shapes.Red
//	p.Thickness = 0.5
//	p.Polyline(points)
//	p.Hollow = true
//	p.Rect(mgl32.Vec2{2, 1})
//
// A Painter is owned by one emitter and is not safe for concurrent use.
type Painter struct {
	ShapeConfig

	base  ShapeConfig
	queue *Queue
}

// NewPainter creates a painter that sends records to q. The options define
// the config that Reset returns to.
func NewPainter(q *Queue, opts ...ConfigOption) *Painter {
	base := NewConfig(opts...)
	return &Painter{
		ShapeConfig: base,
		base:        base,
		queue:       q,
	}
}

// Queue returns the queue the painter sends to.
func (p *Painter) Queue() *Queue {
	return p.queue
}

// Reset restores the config the painter was created with. Call it between
// independent groups of draws, typically once per frame.
func (p *Painter) Reset() {
	p.ShapeConfig = p.base
}

// Config returns the current config.
func (p *Painter) Config() *ShapeConfig {
	return &p.ShapeConfig
}
